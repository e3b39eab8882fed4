package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imjvdn/vision-snake/internal/core"
	"github.com/imjvdn/vision-snake/internal/state"
)

// KeyMapper translates Bubble Tea key messages to session actions.
// The mapping depends on the current phase: "p" pauses while playing and
// resumes while paused, "r" only restarts after a game over.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action for the given phase.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase state.Phase) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	}

	switch key {
	case "enter", " ":
		if phase == state.PhaseMenu || phase == state.PhaseGameOver {
			return core.ActionStart, false
		}
	case "p":
		if phase == state.PhasePaused {
			return core.ActionResume, false
		}
		return core.ActionPause, false
	case "m", "b":
		return core.ActionMenu, false
	case "r":
		if phase == state.PhaseGameOver {
			return core.ActionRestart, false
		}
	}

	return core.ActionNone, false
}
