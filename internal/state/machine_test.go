package state

import (
	"testing"

	"github.com/imjvdn/vision-snake/internal/config"
	"github.com/imjvdn/vision-snake/internal/core"
	"github.com/imjvdn/vision-snake/internal/game"
	"github.com/imjvdn/vision-snake/internal/gesture"
)

func testMachine() *Machine {
	cfg := config.Default()
	cfg.Difficulty.Enabled = false
	return New(game.New(cfg.Engine, cfg.Difficulty), 1)
}

func TestInitialPhaseIsMenu(t *testing.T) {
	m := testMachine()
	if m.Phase() != PhaseMenu {
		t.Fatalf("phase = %v, want menu", m.Phase())
	}
}

func TestKeyboardTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   Phase
		action core.Action
		want   Phase
	}{
		{"start from menu", PhaseMenu, core.ActionStart, PhasePlaying},
		{"pause ignored in menu", PhaseMenu, core.ActionPause, PhaseMenu},
		{"pause while playing", PhasePlaying, core.ActionPause, PhasePaused},
		{"start ignored while playing", PhasePlaying, core.ActionStart, PhasePlaying},
		{"resume from paused", PhasePaused, core.ActionResume, PhasePlaying},
		{"pause toggles back", PhasePaused, core.ActionPause, PhasePlaying},
		{"menu from paused", PhasePaused, core.ActionMenu, PhaseMenu},
		{"restart after game over", PhaseGameOver, core.ActionRestart, PhasePlaying},
		{"start after game over", PhaseGameOver, core.ActionStart, PhasePlaying},
		{"menu after game over", PhaseGameOver, core.ActionMenu, PhaseMenu},
		{"resume ignored after game over", PhaseGameOver, core.ActionResume, PhaseGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMachine()
			m.phase = tt.from
			m.Apply(tt.action)
			if m.Phase() != tt.want {
				t.Errorf("Apply(%v) from %v: phase = %v, want %v", tt.action, tt.from, m.Phase(), tt.want)
			}
		})
	}
}

func TestEngineFrozenOutsidePlaying(t *testing.T) {
	m := testMachine()
	tip := core.Point{X: 10, Y: 10}
	sig := gesture.Signal{Fingertip: &tip}

	for _, phase := range []Phase{PhaseMenu, PhasePaused, PhaseGameOver} {
		m.phase = phase
		before := m.Engine().Snapshot()
		res := m.Tick(sig)
		after := m.Engine().Snapshot()
		if res.GameOver || res.Outcome.AteFood {
			t.Errorf("phase %v: tick produced events %+v", phase, res)
		}
		if after.Ticks != before.Ticks || after.Body[0] != before.Body[0] {
			t.Errorf("phase %v: engine advanced while frozen", phase)
		}
	}
}

func TestCollisionMovesPlayingToGameOver(t *testing.T) {
	m := testMachine()
	m.Apply(core.ActionStart)

	// Chase the food until the first eat. The body is a single segment
	// until then, so the approach cannot end the run.
	ate := false
	for i := 0; i < 200 && !ate; i++ {
		food := m.Engine().Food()
		res := m.Tick(gesture.Signal{Fingertip: &food})
		if res.GameOver {
			t.Fatal("single-segment approach ended the run")
		}
		ate = res.Outcome.AteFood
	}
	if !ate {
		t.Fatal("never reached the food")
	}

	// Park the fingertip on the head. Growth piles the body onto one
	// point, which is a self collision as soon as the length check goes
	// live.
	over := false
	for i := 0; i < 10 && !over; i++ {
		head := m.Engine().Head()
		over = m.Tick(gesture.Signal{Fingertip: &head}).GameOver
	}
	if !over {
		t.Fatal("stalled growth never collided")
	}
	if m.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v after collision, want game over", m.Phase())
	}

	// The run is frozen now: further ticks report nothing.
	head := m.Engine().Head()
	if res := m.Tick(gesture.Signal{Fingertip: &head}); res.GameOver {
		t.Error("game over reported twice for one run")
	}
}

func TestPausedNeverReachesGameOver(t *testing.T) {
	m := testMachine()
	m.phase = PhasePaused
	tip := core.Point{X: 320, Y: 240}
	for i := 0; i < 500; i++ {
		res := m.Tick(gesture.Signal{Fingertip: &tip})
		if res.GameOver || m.Phase() == PhaseGameOver {
			t.Fatalf("tick %d: paused session reached game over", i)
		}
	}
	if m.Phase() != PhasePaused {
		t.Fatalf("phase drifted to %v while paused", m.Phase())
	}
}

func TestPalmResetReturnsToMenu(t *testing.T) {
	for _, phase := range []Phase{PhasePlaying, PhasePaused, PhaseGameOver} {
		m := testMachine()
		m.phase = phase
		res := m.Tick(gesture.Signal{ResetConfirmed: true})
		if !res.Reset {
			t.Errorf("phase %v: reset signal not reported", phase)
		}
		if res.GameOver {
			t.Errorf("phase %v: abandoning a run recorded a game over", phase)
		}
		if m.Phase() != PhaseMenu {
			t.Errorf("phase %v: palm reset left phase %v, want menu", phase, m.Phase())
		}
		if m.Engine().Score() != 0 || m.Engine().Len() != 1 {
			t.Errorf("phase %v: engine not reset after palm confirm", phase)
		}
	}
}

func TestConsecutiveRunsReseed(t *testing.T) {
	m := testMachine()
	first := m.Engine().Food()
	m.phase = PhaseGameOver
	m.Apply(core.ActionRestart)
	second := m.Engine().Food()
	if first == second {
		t.Error("consecutive runs placed identical food, reseed missing")
	}
}
