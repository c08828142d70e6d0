package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stickhero/internal/core"
	"github.com/vovakirdan/stickhero/internal/games/stickhero"
)

type fakeStore struct {
	runs []stickhero.Recording
	err  error
}

func (s *fakeStore) SaveRun(rec stickhero.Recording) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.runs = append(s.runs, rec)
	return int64(len(s.runs)), nil
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	return m
}

var (
	press   = tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release = tea.MouseMsg{Action: tea.MouseActionRelease}
)

// playMiss holds the mouse for ten ticks, then waits for the run to fail.
func playMiss(t *testing.T, m Model) Model {
	t.Helper()
	m = update(t, m, press)
	m = tick(t, m, 10)
	m = update(t, m, release)
	for i := 0; i < 200 && !m.gameState.GameOver; i++ {
		m = tick(t, m, 1)
	}
	if !m.gameState.GameOver {
		t.Fatal("run did not fail")
	}
	return m
}

func TestModelMouseGrowsRod(t *testing.T) {
	game := stickhero.New()
	m := NewModel(game, nil, nil, testConfig())
	m.Init()

	m = update(t, m, press)
	m = tick(t, m, 5)
	if got := game.Snapshot().RodHeight; got != -10 {
		t.Errorf("RodHeight = %v after 5 held ticks, want -10", got)
	}

	m = update(t, m, release)
	tick(t, m, 1)
	if got := game.Snapshot().Phase; got != stickhero.PhaseRotating {
		t.Errorf("Phase = %s after release, want rotating", got)
	}
}

func TestModelSpaceTogglesHold(t *testing.T) {
	game := stickhero.New()
	m := NewModel(game, nil, nil, testConfig())
	m.Init()

	m = update(t, m, keyMsg(" "))
	m = tick(t, m, 3)
	m = update(t, m, keyMsg(" "))
	tick(t, m, 1)

	if got := game.Snapshot().Phase; got != stickhero.PhaseRotating {
		t.Errorf("Phase = %s, want rotating", got)
	}
	if got := game.Snapshot().RodHeight; got != -6 {
		t.Errorf("RodHeight = %v, want -6", got)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store := &fakeStore{}
	game := stickhero.New()
	m := NewModel(game, store, nil, testConfig())
	m.Init()

	m = playMiss(t, m)
	m = tick(t, m, 20)

	if len(store.runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(store.runs))
	}
	if rec := store.runs[0]; rec.Seed != 42 || rec.Ticks != 58 {
		t.Errorf("saved run seed %d ticks %d, want 42 and 58", rec.Seed, rec.Ticks)
	}
	if !strings.Contains(m.status, "saved") {
		t.Errorf("status = %q, want a saved notice", m.status)
	}

	// Restart and fail again: a second run is journaled.
	m = update(t, m, keyMsg("r"))
	m = tick(t, m, 1)
	if m.gameState.GameOver {
		t.Fatal("restart did not start a new run")
	}
	playMiss(t, m)
	if len(store.runs) != 2 {
		t.Errorf("saved %d runs, want 2", len(store.runs))
	}
	if store.runs[1].Seed == 42 {
		t.Error("second run reused the first seed")
	}
}

func TestModelSurvivesStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	m := NewModel(stickhero.New(), store, nil, testConfig())
	m.Init()

	m = playMiss(t, m)
	if m.quitting {
		t.Error("model quit after a storage error")
	}
}

func TestModelReplay(t *testing.T) {
	store := &fakeStore{}
	live := NewModel(stickhero.New(), store, nil, testConfig())
	live.Init()
	playMiss(t, live)

	replay := NewReplayModel(store.runs[0], nil, testConfig())
	replay.Init()

	// Player input is ignored during playback.
	replay = update(t, replay, press)
	replay = tick(t, replay, 10)
	replay = update(t, replay, keyMsg("p"))
	replay = tick(t, replay, 1)
	if !replay.gameState.Paused {
		t.Fatal("pause ignored during playback")
	}
	replay = tick(t, replay, 30)
	replay = update(t, replay, keyMsg("p"))
	replay = tick(t, replay, 100)

	if !replay.gameState.GameOver {
		t.Error("playback did not reach the recorded miss")
	}
	if !replay.replayer.Done() {
		t.Error("recording not fully consumed")
	}
	if len(store.runs) != 1 {
		t.Errorf("playback journaled a run")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := stickhero.New()
	m := NewModel(game, nil, nil, testConfig())
	m.Init()

	m = update(t, m, press)
	m = tick(t, m, 5)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
	if got := game.Snapshot().Tick; got != 5 {
		t.Errorf("Tick = %d after resize, want 5", got)
	}
}

func TestModelViewAndQuit(t *testing.T) {
	m := NewModel(stickhero.New(), nil, nil, testConfig())
	m.Init()

	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("view is missing the score")
	}

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Error("quit returned no command")
	}
	if !next.(Model).IsQuitting() || next.(Model).View() != "" {
		t.Error("model not quitting after q")
	}
}
