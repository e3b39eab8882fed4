package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionStart) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionStart)
	f.Set(ActionPause)
	if !f.Has(ActionStart) || !f.Has(ActionPause) {
		t.Error("set actions should be reported")
	}
	if f.Has(ActionMenu) {
		t.Error("unset action reported as triggered")
	}

	f.Clear()
	if f.Has(ActionStart) || f.Has(ActionPause) {
		t.Error("cleared frame should be empty")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero-value frame should report nothing")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on a zero-value frame should allocate the map")
	}
}
