// Package stickhero implements a Stick Hero-style game.
// The player holds to grow a rod, releases to drop it across the gap and
// walks over it; missing the next platform ends the run.
package stickhero

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/stickhero/internal/config"
	"github.com/vovakirdan/stickhero/internal/core"
)

const (
	GameID    = "stickhero"
	GameTitle = "Stick Hero"
)

// scoreOverlay remembers what the presentation layer was asked to show.
type scoreOverlay struct {
	visible bool
	score   int
}

func (o *scoreOverlay) Show(score int) {
	o.visible = true
	o.score = score
}

func (o *scoreOverlay) Hide() {
	o.visible = false
	o.score = 0
}

// Game adapts the simulation to the platform's game loop: it owns pause,
// restart, the recorded frame and the run recording.
type Game struct {
	sim      *Sim
	cfg      config.StickHeroConfig
	runtime  core.RuntimeConfig
	frame    DrawList
	overlay  scoreOverlay
	recorder *Recorder
	replay   *Recording // Non-nil when the game plays back a recording
	seed     int64      // Seed of the current run
	finished bool       // Current run has failed and its recording is complete
	paused   bool
	loadErr  error
}

// New creates a new Stick Hero game instance.
func New() *Game {
	return &Game{}
}

// NewReplay creates a game that reproduces a recorded run: it ignores the
// runtime seed and config path and uses the recording's instead.
func NewReplay(rec Recording) *Game {
	return &Game{replay: &rec}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.seed = runtime.Seed
	g.loadErr = nil

	switch {
	case g.replay != nil:
		g.cfg = g.replay.Config
		g.seed = g.replay.Seed
	default:
		cfg, err := config.Load(runtime.ConfigPath)
		if err != nil {
			g.loadErr = err
			cfg = config.DefaultStickHero()
		}
		g.cfg = cfg
	}

	g.sim = NewSim(g.cfg, NewRandGenerator(g.seed, g.cfg.Platforms), &g.overlay)
	g.recorder = NewRecorder(g.seed, g.cfg)
	g.finished = false
	g.paused = false
	g.sim.Draw(&g.frame)
}

// ConfigError returns the error hit while loading the config on the last
// Reset, if any. The game falls back to the built-in defaults in that case.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
	}

	// Toggling pause consumes the tick in both directions.
	if in.Has(core.ActionPause) && g.sim.Phase() != PhaseFailing {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	holding := in.Has(core.ActionHold)
	g.sim.Tick(holding, &g.frame)

	if !g.finished {
		g.recorder.Record(holding)
		g.finished = g.sim.Phase() == PhaseFailing
	}

	return core.StepResult{State: g.State()}
}

// restart begins the next run after a miss. The new seed derives from the
// previous one, so a run stays reproducible from its own seed alone.
func (g *Game) restart() {
	if !g.sim.RequestReset() {
		return
	}
	g.seed = nextSeed(g.seed)
	g.sim.SetGenerator(NewRandGenerator(g.seed, g.cfg.Platforms))
	g.recorder = NewRecorder(g.seed, g.cfg)
	g.finished = false
	g.paused = false
}

func nextSeed(seed int64) int64 {
	return rand.New(rand.NewSource(seed)).Int63()
}

// Recording returns the current run's recording. The second result is true
// once the run has failed and the recording is complete.
func (g *Game) Recording() (Recording, bool) {
	return g.recorder.Recording(), g.finished
}

// Render draws the last simulated frame, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	g.frame.Replay(newRaster(dst, g.cfg.World))

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.sim.Score()))
	if g.replay != nil {
		dst.DrawText(2, 1, " REPLAY ")
	}
	help := "hold: mouse/space  pause: p  quit: q "
	dst.DrawText(dst.Width()-len(help), 0, help)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.overlay.visible {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.overlay.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.Phase() == PhaseFailing,
		Paused:   g.paused,
	}
}

// Snapshot returns the simulation snapshot of the current run.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.seed
}
