package vision

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/imjvdn/vision-snake/internal/core"
)

// DemoSource emits a synthetic hand tracing a Lissajous path across the
// playfield. Useful for smoke runs without a tracker client, and for the
// menu's idle animation.
type DemoSource struct {
	playW, playH float64
	rate         int // frames per second
	frames       chan Frame
	cancel       context.CancelFunc
	once         sync.Once
}

// NewDemoSource creates a demo source for the given playfield.
func NewDemoSource(playW, playH float64, rate int) *DemoSource {
	if rate <= 0 {
		rate = 30
	}
	return &DemoSource{
		playW:  playW,
		playH:  playH,
		rate:   rate,
		frames: make(chan Frame, 4),
	}
}

// Kind implements Source.
func (s *DemoSource) Kind() string { return "demo" }

// Frames implements Source.
func (s *DemoSource) Frames() <-chan Frame { return s.frames }

// Start implements Source. It never fails.
func (s *DemoSource) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	go func() {
		defer close(s.frames)
		ticker := time.NewTicker(time.Second / time.Duration(s.rate))
		defer ticker.Stop()

		start := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				t := now.Sub(start).Seconds()
				f := Frame{Landmarks: s.handAt(t), At: now}
				select {
				case <-ctx.Done():
					return
				case s.frames <- f:
				}
			}
		}
	}()

	return nil
}

// Close implements Source.
func (s *DemoSource) Close() error {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
	return nil
}

// handAt synthesizes a closed-fist hand whose index fingertip follows a
// Lissajous curve. The fist keeps the demo from triggering palm resets.
func (s *DemoSource) handAt(t float64) *LandmarkSet {
	cx, cy := s.playW/2, s.playH/2
	tip := core.Point{
		X: cx + 0.38*s.playW*math.Sin(0.9*t),
		Y: cy + 0.38*s.playH*math.Sin(1.3*t+math.Pi/3),
	}
	wrist := core.Point{X: cx, Y: s.playH * 0.9}

	set := &LandmarkSet{Confidence: 1.0}
	set.Points[Wrist] = wrist
	set.Points[IndexTip] = tip

	// Curled fingers: tips closer to the wrist than their knuckles.
	for _, fg := range Fingers {
		if fg.Tip == IndexTip {
			set.Points[fg.Knuckle] = core.Point{
				X: wrist.X + (tip.X-wrist.X)*0.6,
				Y: wrist.Y + (tip.Y-wrist.Y)*0.6,
			}
			continue
		}
		set.Points[fg.Knuckle] = core.Point{X: wrist.X + 30, Y: wrist.Y - 40}
		set.Points[fg.Tip] = core.Point{X: wrist.X + 20, Y: wrist.Y - 25}
	}
	return set
}
