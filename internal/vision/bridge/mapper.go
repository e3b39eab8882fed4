package bridge

import (
	"github.com/imjvdn/vision-snake/internal/core"
	"github.com/imjvdn/vision-snake/internal/vision"
)

// jointIndex maps each game joint to its MediaPipe landmark index.
// Knuckles use the PIP joints (thumb: IP): a curled fingertip drops below
// its PIP distance from the wrist, which is what the openness test needs.
var jointIndex = [vision.JointCount]int{
	vision.Wrist:         mpWrist,
	vision.ThumbKnuckle:  mpThumbIP,
	vision.ThumbTip:      mpThumbTip,
	vision.IndexKnuckle:  mpIndexPIP,
	vision.IndexTip:      mpIndexTip,
	vision.MiddleKnuckle: mpMiddlePIP,
	vision.MiddleTip:     mpMiddleTip,
	vision.RingKnuckle:   mpRingPIP,
	vision.RingTip:       mpRingTip,
	vision.PinkyKnuckle:  mpPinkyPIP,
	vision.PinkyTip:      mpPinkyTip,
}

// mapLandmarks converts a tracker message into the game's landmark set,
// scaling normalized coordinates to the playfield and mirroring X for the
// webcam mirror view. Returns nil for empty or malformed messages.
func mapLandmarks(msg trackMsg, playW, playH float64) *vision.LandmarkSet {
	if msg.Type != "landmarks" || len(msg.Points) < mpLandmarkCount {
		return nil
	}

	set := &vision.LandmarkSet{Confidence: msg.Confidence}
	for j := vision.Joint(0); j < vision.JointCount; j++ {
		raw := msg.Points[jointIndex[j]]
		nx := core.ClampF(raw[0], 0, 1)
		ny := core.ClampF(raw[1], 0, 1)
		set.Points[j] = core.Point{
			X: (1 - nx) * (playW - 1), // mirrored
			Y: ny * (playH - 1),
		}
	}
	return set
}
