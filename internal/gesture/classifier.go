// Package gesture derives discrete control signals from raw hand
// landmarks: the fingertip target driving the snake, and the timed
// open-palm hold that confirms a reset.
package gesture

import (
	"time"

	"github.com/imjvdn/vision-snake/internal/config"
	"github.com/imjvdn/vision-snake/internal/core"
	"github.com/imjvdn/vision-snake/internal/vision"
)

// Signal is the per-frame classification result.
type Signal struct {
	// Fingertip is the index fingertip in playfield coordinates, nil
	// when no hand is tracked this frame.
	Fingertip *core.Point
	// PalmOpen reports whether all five fingers are extended this frame.
	PalmOpen bool
	// HoldFor is the accumulated open-palm duration.
	HoldFor time.Duration
	// ResetConfirmed fires exactly once per continuous hold that crosses
	// the configured threshold.
	ResetConfirmed bool
}

// Classifier turns landmark sets into Signals. It carries the hold timer
// between frames; everything else is stateless.
type Classifier struct {
	cfg config.VisionConfig

	holdFor time.Duration
	fired   bool
}

// NewClassifier creates a classifier with the given vision tunables.
func NewClassifier(cfg config.VisionConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify processes one frame. lm is nil when no hand was detected; dt
// is the measured inter-frame duration used to advance the hold timer.
func (c *Classifier) Classify(lm *vision.LandmarkSet, dt time.Duration) Signal {
	if lm == nil || lm.Confidence < c.cfg.MinConfidence {
		// The instant the hand is lost the hold timer resets and the
		// one-shot latch re-arms.
		c.holdFor = 0
		c.fired = false
		return Signal{}
	}

	tip := lm.At(vision.IndexTip)
	open := PalmOpen(lm, c.cfg.PalmMargin)

	sig := Signal{
		Fingertip: &tip,
		PalmOpen:  open,
	}

	if !open {
		c.holdFor = 0
		c.fired = false
		return sig
	}

	c.holdFor += dt
	sig.HoldFor = c.holdFor

	threshold := time.Duration(c.cfg.HoldSeconds * float64(time.Second))
	if c.holdFor >= threshold && !c.fired {
		c.fired = true
		sig.ResetConfirmed = true
	}
	return sig
}

// HoldProgress returns the fraction [0,1] of the hold threshold reached,
// for the reset progress bar.
func (c *Classifier) HoldProgress() float64 {
	threshold := c.cfg.HoldSeconds * float64(time.Second)
	if threshold <= 0 {
		return 0
	}
	return core.ClampF(float64(c.holdFor)/threshold, 0, 1)
}

// PalmOpen reports whether all five fingers are extended: a finger counts
// as extended when its tip sits farther from the wrist than its knuckle
// by the relative margin.
func PalmOpen(lm *vision.LandmarkSet, margin float64) bool {
	wrist := lm.At(vision.Wrist)
	for _, f := range vision.Fingers {
		tipDist := core.Dist(lm.At(f.Tip), wrist)
		knuckleDist := core.Dist(lm.At(f.Knuckle), wrist)
		if tipDist <= knuckleDist*(1+margin) {
			return false
		}
	}
	return true
}
