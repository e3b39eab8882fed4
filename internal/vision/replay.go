package vision

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/imjvdn/vision-snake/internal/core"
)

// recordedFrame is the JSONL wire form of one landmark frame.
// T is seconds since the start of the recording. Points is nil when no
// hand was detected.
type recordedFrame struct {
	T          float64      `json:"t"`
	Confidence float64      `json:"confidence,omitempty"`
	Points     [][2]float64 `json:"points,omitempty"`
}

// Recorder appends landmark frames to a JSONL file so a session can be
// replayed deterministically later.
type Recorder struct {
	mu      sync.Mutex
	file    *os.File
	writer  *bufio.Writer
	started time.Time
	path    string
	closed  bool
}

// NewRecorder creates a recording file under dir, named
// landmarks_{session}_{timestamp}.jsonl.
func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("recorder: cannot create directory %s: %w", dir, err)
	}

	session := uuid.New().String()[:8]
	name := fmt.Sprintf("landmarks_%s_%d.jsonl", session, time.Now().Unix())
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("recorder: cannot create %s: %w", path, err)
	}

	return &Recorder{
		file:    f,
		writer:  bufio.NewWriter(f),
		started: time.Now(),
		path:    path,
	}, nil
}

// Path returns the recording file path.
func (r *Recorder) Path() string {
	return r.path
}

// Record appends one frame. Errors are swallowed: recording is best-effort
// and must never stall the frame loop.
func (r *Recorder) Record(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	rec := recordedFrame{T: f.At.Sub(r.started).Seconds()}
	if rec.T < 0 {
		rec.T = 0
	}
	if f.Landmarks != nil {
		rec.Confidence = f.Landmarks.Confidence
		rec.Points = make([][2]float64, JointCount)
		for j := Joint(0); j < JointCount; j++ {
			p := f.Landmarks.Points[j]
			rec.Points[j] = [2]float64{p.X, p.Y}
		}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	r.writer.Write(data)       //nolint:errcheck // best-effort
	r.writer.WriteByte('\n')   //nolint:errcheck // best-effort
}

// Close flushes and closes the recording file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.writer.Flush(); err != nil {
		r.file.Close()
		return fmt.Errorf("recorder: flush: %w", err)
	}
	return r.file.Close()
}

// ReplaySource plays back a recorded landmark session with its original
// timing, implementing Source.
type ReplaySource struct {
	path   string
	frames chan Frame
	cancel context.CancelFunc
	once   sync.Once
}

// NewReplaySource creates a replay source for the given JSONL file.
func NewReplaySource(path string) *ReplaySource {
	return &ReplaySource{
		path:   path,
		frames: make(chan Frame, 8),
	}
}

// Kind implements Source.
func (s *ReplaySource) Kind() string { return "replay" }

// Frames implements Source.
func (s *ReplaySource) Frames() <-chan Frame { return s.frames }

// Start reads the whole recording up front (so malformed files fail fast,
// like a missing camera) and then emits frames on their recorded schedule.
func (s *ReplaySource) Start(ctx context.Context) error {
	recs, err := readRecording(s.path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	go func() {
		defer close(s.frames)
		start := time.Now()
		for _, rec := range recs {
			due := start.Add(time.Duration(rec.T * float64(time.Second)))
			if wait := time.Until(due); wait > 0 {
				select {
				case <-ctx.Done():
					return
				case <-time.After(wait):
				}
			}

			f := Frame{At: time.Now()}
			if rec.Points != nil {
				set := &LandmarkSet{Confidence: rec.Confidence}
				for j := 0; j < len(rec.Points) && j < int(JointCount); j++ {
					set.Points[j] = core.Point{X: rec.Points[j][0], Y: rec.Points[j][1]}
				}
				f.Landmarks = set
			}

			select {
			case <-ctx.Done():
				return
			case s.frames <- f:
			}
		}
	}()

	return nil
}

// Close implements Source.
func (s *ReplaySource) Close() error {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
	return nil
}

// readRecording parses a JSONL recording file.
func readRecording(path string) ([]recordedFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()

	var recs []recordedFrame
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec recordedFrame
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("replay: bad frame at %s:%d: %w", path, line, err)
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("replay: reading %s: %w", path, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("replay: %s contains no frames", path)
	}
	return recs, nil
}
