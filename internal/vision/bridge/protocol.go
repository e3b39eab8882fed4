package bridge

// The tracker client (a browser page running MediaPipe Hands) speaks a
// small JSON protocol over the websocket. Coordinates on the wire are
// normalized to [0,1] in camera space; the server scales them to the
// playfield and mirrors X so the game behaves like a mirror.

// helloMsg is sent by the server right after the upgrade.
type helloMsg struct {
	Type    string  `json:"type"` // "hello"
	Client  string  `json:"client"`
	Camera  int     `json:"camera"`
	PlayW   float64 `json:"playWidth"`
	PlayH   float64 `json:"playHeight"`
	MaxFPS  int     `json:"maxFps"`
}

// trackMsg is sent by the client for every processed camera frame.
// Points carries the 21 MediaPipe hand landmarks in model order; it is
// omitted when no hand was detected.
type trackMsg struct {
	Type       string       `json:"type"` // "landmarks" or "empty"
	Confidence float64      `json:"confidence,omitempty"`
	Points     [][2]float64 `json:"points,omitempty"`
}

// MediaPipe Hands landmark indices for the joints the game consumes.
// https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	mpWrist         = 0
	mpThumbIP       = 3
	mpThumbTip      = 4
	mpIndexPIP      = 6
	mpIndexTip      = 8
	mpMiddlePIP     = 10
	mpMiddleTip     = 12
	mpRingPIP       = 14
	mpRingTip       = 16
	mpPinkyPIP      = 18
	mpPinkyTip      = 20
	mpLandmarkCount = 21
)
