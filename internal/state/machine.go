// Package state owns the session lifecycle: the menu / playing / paused /
// game-over phases and the transitions between them. The engine only ever
// advances while the session is in the playing phase.
package state

import (
	"github.com/imjvdn/vision-snake/internal/core"
	"github.com/imjvdn/vision-snake/internal/game"
	"github.com/imjvdn/vision-snake/internal/gesture"
)

// Phase is the current session phase.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// TickResult reports what a tick did, so the caller can react once to
// edge events rather than polling phase changes.
type TickResult struct {
	Outcome  game.Outcome
	GameOver bool // this tick ended the run
	Reset    bool // this tick confirmed a palm reset
}

// Machine drives phase transitions from keyboard actions and gesture
// signals. It owns the engine reset policy: every entry into a fresh run
// reseeds the engine so consecutive runs differ while a fixed base seed
// still yields a reproducible session.
type Machine struct {
	phase    Phase
	engine   *game.Engine
	baseSeed int64
	runs     int64
}

// New creates a machine in the menu phase with a freshly reset engine.
func New(engine *game.Engine, seed int64) *Machine {
	m := &Machine{
		phase:    PhaseMenu,
		engine:   engine,
		baseSeed: seed,
	}
	m.resetEngine()
	return m
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Engine returns the engine the machine drives.
func (m *Machine) Engine() *game.Engine {
	return m.engine
}

func (m *Machine) resetEngine() {
	m.engine.Reset(m.baseSeed + m.runs)
	m.runs++
}

// Apply handles a keyboard action. Actions that do not apply to the
// current phase are ignored.
func (m *Machine) Apply(action core.Action) {
	switch m.phase {
	case PhaseMenu:
		if action == core.ActionStart {
			m.phase = PhasePlaying
		}
	case PhasePlaying:
		if action == core.ActionPause {
			m.phase = PhasePaused
		}
	case PhasePaused:
		switch action {
		case core.ActionResume, core.ActionPause:
			m.phase = PhasePlaying
		case core.ActionMenu:
			m.phase = PhaseMenu
			m.resetEngine()
		}
	case PhaseGameOver:
		switch action {
		case core.ActionRestart, core.ActionStart:
			m.phase = PhasePlaying
			m.resetEngine()
		case core.ActionMenu:
			m.phase = PhaseMenu
			m.resetEngine()
		}
	}
}

// Tick advances the session by one tick using the current gesture
// signal. The engine steps only while playing; in every other phase the
// run is frozen and only the palm reset gesture is honored. A reset
// confirmed mid-run abandons it without recording a game over.
func (m *Machine) Tick(sig gesture.Signal) TickResult {
	if sig.ResetConfirmed {
		if m.phase != PhaseMenu {
			m.phase = PhaseMenu
			m.resetEngine()
		}
		return TickResult{Reset: true}
	}

	if m.phase != PhasePlaying {
		return TickResult{}
	}

	out := m.engine.Step(sig.Fingertip)
	if out.Collided {
		m.phase = PhaseGameOver
		return TickResult{Outcome: out, GameOver: true}
	}
	return TickResult{Outcome: out}
}
