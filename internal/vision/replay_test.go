package vision

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/imjvdn/vision-snake/internal/core"
)

func makeHand(tip core.Point, conf float64) *LandmarkSet {
	set := &LandmarkSet{Confidence: conf}
	set.Points[IndexTip] = tip
	return set
}

func TestRecorderRoundTrip(t *testing.T) {
	dir := t.TempDir()

	rec, err := NewRecorder(dir)
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}

	base := time.Now()
	rec.Record(Frame{Landmarks: makeHand(core.Point{X: 100.5, Y: 200.25}, 0.9), At: base})
	rec.Record(Frame{At: base.Add(30 * time.Millisecond)}) // no hand
	rec.Record(Frame{Landmarks: makeHand(core.Point{X: 120, Y: 210}, 0.85), At: base.Add(60 * time.Millisecond)})

	if err := rec.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	recs, err := readRecording(rec.Path())
	if err != nil {
		t.Fatalf("readRecording failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(recs))
	}

	if recs[0].Points == nil {
		t.Fatal("first frame should carry landmarks")
	}
	if got := recs[0].Points[IndexTip]; got[0] != 100.5 || got[1] != 200.25 {
		t.Errorf("fingertip round trip = %v, expected (100.5, 200.25)", got)
	}
	if recs[1].Points != nil {
		t.Error("second frame should be a no-hand frame")
	}
	if recs[2].Confidence != 0.85 {
		t.Errorf("confidence round trip = %v, expected 0.85", recs[2].Confidence)
	}
}

func TestReplaySourceEmitsFrames(t *testing.T) {
	dir := t.TempDir()

	rec, err := NewRecorder(dir)
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	base := time.Now()
	for i := 0; i < 5; i++ {
		rec.Record(Frame{
			Landmarks: makeHand(core.Point{X: float64(100 + i*10), Y: 200}, 0.9),
			At:        base.Add(time.Duration(i) * 5 * time.Millisecond),
		})
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	src := NewReplaySource(rec.Path())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := src.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer src.Close()

	var got []Frame
	for f := range src.Frames() {
		got = append(got, f)
	}

	if len(got) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(got))
	}
	if got[0].Landmarks == nil {
		t.Fatal("frame lost its landmarks")
	}
	if tip := got[4].Landmarks.At(IndexTip); tip.X != 140 {
		t.Errorf("last fingertip X = %v, expected 140", tip.X)
	}
}

func TestReplaySourceMissingFile(t *testing.T) {
	src := NewReplaySource(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err := src.Start(context.Background()); err == nil {
		t.Fatal("Start on a missing file should fail")
	}
}

func TestDemoSourceProducesFingertip(t *testing.T) {
	src := NewDemoSource(640, 480, 120)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := src.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer src.Close()

	select {
	case f := <-src.Frames():
		if f.Landmarks == nil {
			t.Fatal("demo frame should always have landmarks")
		}
		tip := f.Landmarks.At(IndexTip)
		if tip.X < 0 || tip.X >= 640 || tip.Y < 0 || tip.Y >= 480 {
			t.Errorf("demo fingertip out of playfield: %v", tip)
		}
	case <-ctx.Done():
		t.Fatal("no demo frame produced within a second")
	}
}
