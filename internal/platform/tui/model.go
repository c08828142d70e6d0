package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickhero/internal/core"
	"github.com/vovakirdan/stickhero/internal/games/stickhero"
	"github.com/vovakirdan/stickhero/internal/storage"
)

// Game is what the terminal host needs from a game.
// Games contain pure logic with no Bubble Tea dependency; the host handles
// input mapping, timing, rendering and the run journal.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState

	// Seed returns the seed of the current run.
	Seed() int64
	// Recording returns the current run and whether it has finished.
	Recording() (stickhero.Recording, bool)
	// ConfigError reports a config problem the game recovered from on Reset.
	ConfigError() error
}

// RunStore persists finished runs.
type RunStore interface {
	SaveRun(rec stickhero.Recording) (int64, error)
}

// statusDuration is how long a status line stays on screen.
const statusDuration = 2 * time.Second

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      RunStore // Nil runs without a journal
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	pointer    core.Pointer
	inputFrame core.InputFrame
	gameState  core.GameState
	replayer   *stickhero.Replayer // Non-nil while playing back a recording
	status     string
	statusTill time.Time
	quitting   bool
	runSaved   bool // Whether the current finished run has been journaled
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, store RunStore, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// NewReplayModel creates a model that plays a recording back. Hold input
// comes from the recording; the player can still pause and quit.
func NewReplayModel(rec stickhero.Recording, logger *log.Logger, cfg core.RuntimeConfig) Model {
	m := NewModel(stickhero.NewReplay(rec), nil, logger, cfg)
	m.replayer = stickhero.NewReplayer(rec)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if err := m.game.ConfigError(); err != nil {
		m.logger.Warn("using default config", "error", err)
	}
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.game.Seed(), "replay", m.replayer != nil)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.replayer == nil {
			m.keyMapper.ApplyMouse(msg, &m.pointer)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.copyFrame()
		return m, nil
	}

	if m.replayer != nil {
		action, isQuit := m.keyMapper.MapKey(msg)
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if action == core.ActionPause {
			m.inputFrame.Set(action)
		}
		return m, nil
	}

	if m.keyMapper.ApplyKey(msg, &m.pointer, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The world is scaled to the screen, so the run continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.status != "" && now.After(m.statusTill) {
		m.status = ""
	}

	wasOver := m.gameState.GameOver

	if m.replayer != nil {
		m.stepReplay()
	} else {
		m.pointer.Apply(&m.inputFrame)
		m.gameState = m.game.Step(m.inputFrame).State
	}

	switch {
	case m.gameState.GameOver && !wasOver:
		m.finishRun()
	case !m.gameState.GameOver && wasOver:
		m.runSaved = false
		m.logger.Info("run started", "game", m.game.ID(), "seed", m.game.Seed())
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// stepReplay advances a playback by one tick. Recorded hold levels are
// consumed only on ticks that actually simulate, so pausing does not skip input.
func (m *Model) stepReplay() {
	if m.inputFrame.Has(core.ActionPause) || m.gameState.Paused {
		m.gameState = m.game.Step(m.inputFrame).State
		return
	}
	if m.replayer.Done() {
		return
	}
	m.gameState = m.game.Step(m.replayer.NextFrame()).State
}

// finishRun logs a missed landing and journals the run once.
func (m *Model) finishRun() {
	rec, finished := m.game.Recording()
	m.logger.Info("run over", "score", m.gameState.Score, "ticks", rec.Ticks, "seed", rec.Seed)

	if m.runSaved || !finished || m.store == nil || m.replayer != nil {
		return
	}
	m.runSaved = true

	id, err := m.store.SaveRun(rec)
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id)
	m.setStatus(fmt.Sprintf("run #%d saved", id))
}

// saveScreenshot saves the current screen to a file under the XDG data directory.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	path, err := xdg.DataFile(fmt.Sprintf("stickhero/screenshots/%s_%s.txt", m.game.ID(), timestamp))
	if err != nil {
		m.logger.Error("could not create screenshot directory", "error", err)
		m.setStatus("screenshot failed")
		return
	}

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("could not save screenshot", "path", path, "error", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("screenshot saved")
}

// copyFrame copies the current screen as plain text to the system clipboard.
func (m *Model) copyFrame() {
	m.game.Render(m.screen)

	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("could not copy frame", "error", err)
		m.setStatus("clipboard unavailable")
		return
	}
	m.setStatus("frame copied")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTill = time.Now().Add(statusDuration)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawText(2, m.screen.Height()-1, " "+m.status+" ")
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a live game.
func Run(game Game, store RunStore, logger *log.Logger, cfg core.RuntimeConfig) error {
	return runProgram(NewModel(game, store, logger, cfg))
}

// RunReplay starts the Bubble Tea program playing back a recording.
func RunReplay(rec stickhero.Recording, logger *log.Logger, cfg core.RuntimeConfig) error {
	return runProgram(NewReplayModel(rec, logger, cfg))
}

func runProgram(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse press and release drive the rod
	)

	_, err := p.Run()
	return err
}

var _ RunStore = (*storage.Store)(nil)
