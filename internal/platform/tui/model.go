package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/imjvdn/vision-snake/internal/config"
	"github.com/imjvdn/vision-snake/internal/core"
	"github.com/imjvdn/vision-snake/internal/game"
	"github.com/imjvdn/vision-snake/internal/gesture"
	"github.com/imjvdn/vision-snake/internal/state"
	"github.com/imjvdn/vision-snake/internal/storage"
	"github.com/imjvdn/vision-snake/internal/vision"
)

// FrameMsg delivers a landmark frame from the source. Only the newest
// frame matters; the model overwrites the previous one unconditionally.
type FrameMsg vision.Frame

// sourceClosedMsg is sent when the landmark source's channel closes.
type sourceClosedMsg struct{}

// Options bundles the collaborators the model needs.
type Options struct {
	Source     vision.Source
	Machine    *state.Machine
	Classifier *gesture.Classifier
	Store      *storage.Store // nil disables persistence
	Recorder   *vision.Recorder
	Config     config.Config
	Runtime    core.RuntimeConfig
	Logger     *log.Logger
}

// Model is the Bubble Tea model driving a vision-snake session.
type Model struct {
	opts    Options
	scene   *Scene
	screen  *core.Screen
	keys    *KeyMapper
	machine *state.Machine
	input   core.InputFrame

	lastFrame   *vision.Frame
	lastTick    time.Time
	frameCount  int
	fps         float64
	runStart    time.Time
	runSaved    bool
	best        int
	sourceGone  bool
	quitting    bool
	lastGameEnd game.Snapshot
}

// NewModel creates the session model. The engine inside opts.Machine must
// already be reset.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runtime.PlayW <= 0 || opts.Runtime.PlayH <= 0 {
		opts.Runtime.PlayW = opts.Config.Engine.PlayfieldW
		opts.Runtime.PlayH = opts.Config.Engine.PlayfieldH
	}
	m := Model{
		opts:    opts,
		scene:   NewScene(opts.Runtime.PlayW, opts.Runtime.PlayH),
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:    NewKeyMapper(),
		machine: opts.Machine,
		input:   core.NewInputFrame(),
	}
	if opts.Store != nil {
		if best, err := opts.Store.BestScore(); err == nil {
			m.best = best
		}
	}
	return m
}

// Init starts the tick loop and the frame listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.opts.Runtime.TickRate),
		listenCmd(m.opts.Source),
	)
}

// listenCmd blocks on the source's frame channel and converts the next
// frame into a message. Re-issued after every frame.
func listenCmd(src vision.Source) tea.Cmd {
	return func() tea.Msg {
		frame, ok := <-src.Frames()
		if !ok {
			return sourceClosedMsg{}
		}
		return FrameMsg(frame)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(vision.Frame(msg))

	case sourceClosedMsg:
		// Keep the session alive on stale frames; the HUD flips to
		// "hand lost" once the staleness window passes.
		m.sourceGone = true
		m.opts.Logger.Warn("landmark source closed")
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the mapped action; it is applied on the next tick so
// keys and vision frames land on the same boundary. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg, m.machine.Phase())
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// actionOrder fixes the drain order when several keys land in one tick.
var actionOrder = [...]core.Action{
	core.ActionMenu,
	core.ActionStart,
	core.ActionRestart,
	core.ActionPause,
	core.ActionResume,
}

func (m *Model) applyInput() {
	for _, a := range actionOrder {
		if m.input.Has(a) {
			m.machine.Apply(a)
		}
	}
	m.input.Clear()
}

func (m *Model) onPhaseChange(prev state.Phase) {
	now := m.machine.Phase()
	if now == prev {
		return
	}
	if now == state.PhasePlaying && prev != state.PhasePaused {
		m.runStart = time.Now()
		m.runSaved = false
	}
	m.opts.Logger.Debug("phase change", "from", prev.String(), "to", now.String())
}

func (m Model) handleFrame(f vision.Frame) (tea.Model, tea.Cmd) {
	m.lastFrame = &f
	m.frameCount++
	if m.opts.Recorder != nil {
		m.opts.Recorder.Record(f)
	}
	return m, listenCmd(m.opts.Source)
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	rate := m.opts.Runtime.TickRate
	if rate <= 0 {
		rate = 30
	}
	dt := time.Second / time.Duration(rate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now
	m.updateFPS(dt)

	prevPhase := m.machine.Phase()
	m.applyInput()
	sig := m.opts.Classifier.Classify(m.currentLandmarks(now), dt)
	res := m.machine.Tick(sig)
	m.onPhaseChange(prevPhase)

	if res.GameOver {
		m.lastGameEnd = m.machine.Engine().Snapshot()
		m.saveRun()
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// currentLandmarks returns the newest landmark set, or nil when no frame
// arrived yet or the last one is older than the staleness window.
func (m *Model) currentLandmarks(now time.Time) *vision.LandmarkSet {
	if m.lastFrame == nil {
		return nil
	}
	staleAfter := time.Duration(m.opts.Config.Vision.StaleAfterMs) * time.Millisecond
	if staleAfter > 0 && now.Sub(m.lastFrame.At) > staleAfter {
		return nil
	}
	return m.lastFrame.Landmarks
}

// menuFingertip returns the tracked index fingertip for menu hover, or
// nil when no fresh hand is available.
func (m *Model) menuFingertip() *core.Point {
	lm := m.currentLandmarks(time.Now())
	if lm == nil {
		return nil
	}
	p := lm.At(vision.IndexTip)
	return &p
}

func (m *Model) updateFPS(dt time.Duration) {
	if dt <= 0 {
		return
	}
	instant := float64(m.frameCount) / dt.Seconds()
	m.frameCount = 0
	// Exponential moving average keeps the HUD readable.
	m.fps = m.fps*0.8 + instant*0.2
}

// saveRun persists the finished run once. Storage failures are logged
// and ignored; the game keeps running without a scoreboard.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	snap := m.lastGameEnd
	if snap.Score > m.best {
		m.best = snap.Score
	}
	if m.opts.Store == nil || snap.Score <= 0 {
		return
	}
	duration := 0
	if !m.runStart.IsZero() {
		duration = int(time.Since(m.runStart).Seconds())
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		Score:        snap.Score,
		PeakLength:   snap.PeakLen,
		FoodEaten:    snap.FoodEaten,
		DurationSecs: duration,
		Source:       m.opts.Source.Kind(),
	})
	if err != nil {
		m.opts.Logger.Warn("cannot save run", "err", err)
	}
}

// View renders the current phase to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	engine := m.machine.Engine()
	switch m.machine.Phase() {
	case state.PhaseMenu:
		m.scene.DrawMenu(m.screen, m.best, m.menuFingertip())
	case state.PhasePlaying, state.PhasePaused:
		snap := engine.Snapshot()
		m.scene.DrawGame(m.screen, snap, engine.Food(), engine.FoodPulse(), m.hud(snap))
		if m.machine.Phase() == state.PhasePaused {
			m.scene.DrawPaused(m.screen)
		}
	case state.PhaseGameOver:
		snap := m.lastGameEnd
		m.scene.DrawGame(m.screen, snap, engine.Food(), 0, m.hud(snap))
		m.scene.DrawGameOver(m.screen, snap, m.best)
	}

	m.scene.drawHoldBar(m.screen, m.opts.Classifier.HoldProgress())
	return RenderScreen(m.screen)
}

func (m Model) hud(snap game.Snapshot) HUD {
	return HUD{
		Score:    snap.Score,
		Length:   snap.Length,
		Best:     m.best,
		FPS:      m.fps,
		Source:   m.opts.Source.Kind(),
		Tracking: m.lastFrame != nil && m.lastFrame.Landmarks != nil && !m.sourceGone,
	}
}

// Run starts the Bubble Tea program for the session and blocks until it
// exits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
