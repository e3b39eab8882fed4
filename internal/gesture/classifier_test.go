package gesture

import (
	"testing"
	"time"

	"github.com/imjvdn/vision-snake/internal/config"
	"github.com/imjvdn/vision-snake/internal/core"
	"github.com/imjvdn/vision-snake/internal/vision"
)

func visionCfg() config.VisionConfig {
	return config.VisionConfig{
		MinConfidence: 0.7,
		PalmMargin:    0.1,
		HoldSeconds:   2.0,
	}
}

// openHand builds a hand with all five fingers extended.
func openHand() *vision.LandmarkSet {
	set := &vision.LandmarkSet{Confidence: 0.95}
	wrist := core.Point{X: 320, Y: 400}
	set.Points[vision.Wrist] = wrist
	for i, f := range vision.Fingers {
		x := wrist.X + float64(i-2)*30
		set.Points[f.Knuckle] = core.Point{X: x, Y: wrist.Y - 60}
		set.Points[f.Tip] = core.Point{X: x, Y: wrist.Y - 140}
	}
	return set
}

// fist curls every finger: tips closer to the wrist than the knuckles.
func fist() *vision.LandmarkSet {
	set := openHand()
	wrist := set.At(vision.Wrist)
	for _, f := range vision.Fingers {
		k := set.At(f.Knuckle)
		set.Points[f.Tip] = core.Point{
			X: wrist.X + (k.X-wrist.X)*0.5,
			Y: wrist.Y + (k.Y-wrist.Y)*0.5,
		}
	}
	return set
}

func TestFingertipExtraction(t *testing.T) {
	c := NewClassifier(visionCfg())
	hand := openHand()
	hand.Points[vision.IndexTip] = core.Point{X: 123.25, Y: 77.5}

	sig := c.Classify(hand, 33*time.Millisecond)
	if sig.Fingertip == nil {
		t.Fatal("expected a fingertip")
	}
	// Sub-pixel precision preserved.
	if sig.Fingertip.X != 123.25 || sig.Fingertip.Y != 77.5 {
		t.Errorf("fingertip = %v, expected (123.25, 77.5)", *sig.Fingertip)
	}
}

func TestNoHandProducesEmptySignal(t *testing.T) {
	c := NewClassifier(visionCfg())
	sig := c.Classify(nil, 33*time.Millisecond)
	if sig.Fingertip != nil || sig.PalmOpen || sig.HoldFor != 0 || sig.ResetConfirmed {
		t.Errorf("no-hand signal should be empty, got %+v", sig)
	}
}

func TestLowConfidenceTreatedAsAbsent(t *testing.T) {
	c := NewClassifier(visionCfg())
	hand := openHand()
	hand.Confidence = 0.5

	sig := c.Classify(hand, 33*time.Millisecond)
	if sig.Fingertip != nil {
		t.Error("below-threshold confidence should be treated as no hand")
	}
}

func TestPalmOpenGeometry(t *testing.T) {
	if !PalmOpen(openHand(), 0.1) {
		t.Error("open hand should classify as open palm")
	}
	if PalmOpen(fist(), 0.1) {
		t.Error("fist should not classify as open palm")
	}

	// Four fingers extended, index curled: not an open palm.
	partial := openHand()
	wrist := partial.At(vision.Wrist)
	partial.Points[vision.IndexTip] = core.Point{X: wrist.X, Y: wrist.Y - 20}
	if PalmOpen(partial, 0.1) {
		t.Error("a curled finger should break the open-palm test")
	}
}

func TestHoldTimerFiresOnceAtThreshold(t *testing.T) {
	c := NewClassifier(visionCfg())
	hand := openHand()
	dt := 100 * time.Millisecond

	fired := 0
	// 3 seconds of continuous open palm.
	for i := 0; i < 30; i++ {
		sig := c.Classify(hand, dt)
		if sig.ResetConfirmed {
			fired++
			if got := sig.HoldFor; got < 2*time.Second {
				t.Errorf("fired early at hold %v", got)
			}
		}
	}
	if fired != 1 {
		t.Fatalf("reset confirmed %d times during one continuous hold, expected exactly 1", fired)
	}
}

func TestHoldTimerResetsInstantly(t *testing.T) {
	c := NewClassifier(visionCfg())
	hand := openHand()
	dt := 100 * time.Millisecond

	// 1.9 seconds of hold, then one frame with the palm closed.
	for i := 0; i < 19; i++ {
		c.Classify(hand, dt)
	}
	sig := c.Classify(fist(), dt)
	if sig.HoldFor != 0 {
		t.Errorf("hold timer should reset the instant the palm closes, got %v", sig.HoldFor)
	}

	// A fresh hold must accumulate from zero and fire again.
	fired := 0
	for i := 0; i < 25; i++ {
		if c.Classify(hand, dt).ResetConfirmed {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("second hold fired %d times, expected 1", fired)
	}
}

func TestHoldTimerResetsOnHandLoss(t *testing.T) {
	c := NewClassifier(visionCfg())
	hand := openHand()
	dt := 100 * time.Millisecond

	for i := 0; i < 19; i++ {
		c.Classify(hand, dt)
	}
	c.Classify(nil, dt) // hand lost

	sig := c.Classify(hand, dt)
	if sig.HoldFor > 150*time.Millisecond {
		t.Errorf("hold should restart after hand loss, got %v", sig.HoldFor)
	}
}

func TestHoldProgress(t *testing.T) {
	c := NewClassifier(visionCfg())
	hand := openHand()

	if p := c.HoldProgress(); p != 0 {
		t.Errorf("initial progress = %v, expected 0", p)
	}

	c.Classify(hand, time.Second)
	if p := c.HoldProgress(); p != 0.5 {
		t.Errorf("progress after 1s = %v, expected 0.5", p)
	}

	c.Classify(hand, 2*time.Second)
	if p := c.HoldProgress(); p != 1 {
		t.Errorf("progress is clamped to 1, got %v", p)
	}
}
