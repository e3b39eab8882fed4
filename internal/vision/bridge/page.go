package bridge

import _ "embed"

//go:embed tracker.html
var trackerPage []byte
