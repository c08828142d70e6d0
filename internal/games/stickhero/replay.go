package stickhero

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/stickhero/internal/config"
	"github.com/vovakirdan/stickhero/internal/core"
)

// ErrEmptyRecording is returned when a recording holds no ticks.
var ErrEmptyRecording = errors.New("stickhero: recording has no ticks")

// Recording is everything needed to re-simulate a run: the seed, the
// configuration and the ticks at which the hold signal flipped.
type Recording struct {
	Seed    int64
	Ticks   int
	Toggles []int // Tick indices where holding flips, starting from released
	Config  config.StickHeroConfig
}

// Recorder accumulates a Recording one tick at a time.
type Recorder struct {
	rec     Recording
	holding bool
}

// NewRecorder starts an empty recording.
func NewRecorder(seed int64, cfg config.StickHeroConfig) *Recorder {
	return &Recorder{rec: Recording{Seed: seed, Config: cfg}}
}

// Record appends one tick with the given hold level.
func (r *Recorder) Record(holding bool) {
	if holding != r.holding {
		r.rec.Toggles = append(r.rec.Toggles, r.rec.Ticks)
		r.holding = holding
	}
	r.rec.Ticks++
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.Toggles = slices.Clone(r.rec.Toggles)
	return rec
}

// Replayer plays a Recording back as per-tick hold levels.
type Replayer struct {
	rec     Recording
	tick    int
	next    int
	holding bool
}

// NewReplayer creates a replayer positioned at the first tick.
func NewReplayer(rec Recording) *Replayer {
	return &Replayer{rec: rec}
}

// Next returns the hold level of the next tick, or false once the recording is exhausted.
func (p *Replayer) Next() (holding, ok bool) {
	if p.tick >= p.rec.Ticks {
		return false, false
	}
	for p.next < len(p.rec.Toggles) && p.rec.Toggles[p.next] == p.tick {
		p.holding = !p.holding
		p.next++
	}
	p.tick++
	return p.holding, true
}

// NextFrame returns the next tick as an input frame. An exhausted replayer
// yields empty frames.
func (p *Replayer) NextFrame() core.InputFrame {
	frame := core.NewInputFrame()
	if holding, ok := p.Next(); ok && holding {
		frame.Set(core.ActionHold)
	}
	return frame
}

// Done reports whether every recorded tick has been played.
func (p *Replayer) Done() bool {
	return p.tick >= p.rec.Ticks
}

// Replay re-simulates a recording headlessly and returns the final snapshot.
func Replay(rec Recording) (Snapshot, error) {
	if rec.Ticks <= 0 {
		return Snapshot{}, ErrEmptyRecording
	}
	if err := rec.Config.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("stickhero: cannot replay: %w", err)
	}

	sim := NewSim(rec.Config, NewRandGenerator(rec.Seed, rec.Config.Platforms), nil)
	player := NewReplayer(rec)
	for {
		holding, ok := player.Next()
		if !ok {
			break
		}
		sim.Tick(holding, Discard)
	}
	return sim.Snapshot(), nil
}
