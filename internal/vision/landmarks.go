// Package vision defines the landmark source contract: named 2D hand
// landmarks delivered per frame with a detection confidence. The hand-pose
// model itself is external; sources only transport its output.
package vision

import (
	"context"
	"time"

	"github.com/imjvdn/vision-snake/internal/core"
)

// Joint identifies a named landmark on a detected hand.
// The schema is fixed (tagged fields, not dynamic lookup) so the palm
// openness test can be written as a pure function over it.
type Joint int

const (
	Wrist Joint = iota
	ThumbKnuckle
	ThumbTip
	IndexKnuckle
	IndexTip
	MiddleKnuckle
	MiddleTip
	RingKnuckle
	RingTip
	PinkyKnuckle
	PinkyTip

	JointCount
)

// String returns the joint name.
func (j Joint) String() string {
	switch j {
	case Wrist:
		return "wrist"
	case ThumbKnuckle:
		return "thumb_knuckle"
	case ThumbTip:
		return "thumb_tip"
	case IndexKnuckle:
		return "index_knuckle"
	case IndexTip:
		return "index_tip"
	case MiddleKnuckle:
		return "middle_knuckle"
	case MiddleTip:
		return "middle_tip"
	case RingKnuckle:
		return "ring_knuckle"
	case RingTip:
		return "ring_tip"
	case PinkyKnuckle:
		return "pinky_knuckle"
	case PinkyTip:
		return "pinky_tip"
	default:
		return "unknown"
	}
}

// Finger pairs a fingertip with its knuckle for the openness test.
type Finger struct {
	Tip, Knuckle Joint
}

// Fingers lists the five tip/knuckle pairs of one hand.
var Fingers = [5]Finger{
	{Tip: ThumbTip, Knuckle: ThumbKnuckle},
	{Tip: IndexTip, Knuckle: IndexKnuckle},
	{Tip: MiddleTip, Knuckle: MiddleKnuckle},
	{Tip: RingTip, Knuckle: RingKnuckle},
	{Tip: PinkyTip, Knuckle: PinkyKnuckle},
}

// LandmarkSet holds one hand's landmarks in playfield pixel coordinates,
// plus the detector's confidence for the observation.
type LandmarkSet struct {
	Points     [JointCount]core.Point
	Confidence float64
}

// At returns the coordinate of the given joint.
func (s *LandmarkSet) At(j Joint) core.Point {
	return s.Points[j]
}

// Frame is one observation from a landmark source.
// Landmarks is nil when no hand was detected this frame.
type Frame struct {
	Landmarks *LandmarkSet
	At        time.Time
}

// Source produces landmark frames. Implementations: the websocket bridge,
// JSONL replay, and the synthetic demo source.
type Source interface {
	// Start begins producing frames. It returns an error only for fatal
	// startup failures (the "camera not found" class); after a successful
	// Start the Frames channel delivers observations until Close or
	// context cancellation.
	Start(ctx context.Context) error

	// Frames returns the frame channel. Closed when the source stops.
	Frames() <-chan Frame

	// Close stops the source and releases its resources.
	Close() error

	// Kind returns a short identifier ("bridge", "replay", "demo") used
	// for logging and run records.
	Kind() string
}
