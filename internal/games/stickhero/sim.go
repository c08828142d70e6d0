package stickhero

import "github.com/vovakirdan/stickhero/internal/config"

// Sim is the Stick Hero simulation. It has a single owner and is advanced
// one tick at a time by Tick; it never blocks or schedules anything itself.
type Sim struct {
	cfg      config.StickHeroConfig
	avatar   Avatar
	rod      Rod
	queue    *PlatformQueue
	overlay  Overlay
	phase    Phase
	canScore bool // Next landing counts; armed on every return home
	score    int
	tick     uint64
}

// NewSim creates a simulation in its start state.
// A nil overlay is allowed for headless use.
func NewSim(cfg config.StickHeroConfig, gen Generator, overlay Overlay) *Sim {
	if overlay == nil {
		overlay = noOverlay{}
	}
	s := &Sim{
		cfg:     cfg,
		queue:   NewPlatformQueue(gen, cfg),
		overlay: overlay,
	}
	s.Restart()
	return s
}

// Restart puts every entity, flag and the score back to the start of a run.
func (s *Sim) Restart() {
	s.avatar = NewAvatar(s.cfg.Avatar)
	s.rod = NewRod(s.cfg.Rod, s.avatar.Trailing(), s.avatar.Feet())
	s.queue.Reset()
	s.phase = PhaseIdle
	s.canScore = s.cfg.Scoring.CountFirstLanding
	s.score = 0
	s.tick = 0
	s.overlay.Hide()
}

// RequestReset restarts a failed run. Outside PhaseFailing it does nothing
// and returns false.
func (s *Sim) RequestReset() bool {
	if !s.transition(TriggerReset) {
		return false
	}
	s.Restart()
	return true
}

// SetGenerator swaps the random source for platforms spawned from now on.
func (s *Sim) SetGenerator(gen Generator) {
	s.queue.SetGenerator(gen)
}

// Tick advances the simulation by one step and draws the frame into dst.
// holding is the input level for this tick; it only matters while idle.
func (s *Sim) Tick(holding bool, dst Surface) {
	s.tick++
	dst.Clear()

	switch s.phase {
	case PhaseWalking:
		s.avatar.Forward()
	case PhaseScrollBack:
		s.avatar.Back()
	}

	s.rod.Draw(dst)

	if s.phase == PhaseScrollBack {
		s.queue.Scroll()
	}

	if s.phase == PhaseIdle {
		if holding {
			s.rod.Grow()
		} else if s.rod.Extended() {
			s.transition(TriggerReleased)
		}
	}
	if s.phase == PhaseRotating {
		s.rod.Rotate()
		if s.rod.Down() {
			s.transition(TriggerRodDown)
		}
	}

	s.queue.Draw(dst)
	s.queue.Update(s.avatar.X)

	if s.phase == PhaseWalking && s.avatar.X >= s.rod.Reach()-s.cfg.Rod.ReachTolerance {
		s.checkLanding()
	}

	if s.phase == PhaseScrollBack && s.avatar.Home() {
		s.transition(TriggerHome)
		s.canScore = true
		s.rod.Reset(s.avatar.Trailing(), s.avatar.Feet())
	}

	if s.phase == PhaseFailing {
		s.avatar.Fall()
	}

	s.avatar.Draw(dst)
}

// checkLanding runs once per crossing: leaving PhaseWalking makes it unreachable.
func (s *Sim) checkLanding() {
	if s.queue.Supports(s.avatar.X, s.avatar.Width, s.cfg.Landing.Buffer) {
		if s.canScore {
			s.score++
			s.canScore = false
		}
		s.transition(TriggerLanded)
	} else {
		s.transition(TriggerMissed)
		s.overlay.Show(s.score)
	}
	s.rod.Reset(s.avatar.Trailing(), s.avatar.Feet())
}

func (s *Sim) transition(t Trigger) bool {
	next, ok := s.phase.On(t)
	s.phase = next
	return ok
}

// Draw issues the current frame without advancing the simulation.
func (s *Sim) Draw(dst Surface) {
	dst.Clear()
	s.rod.Draw(dst)
	s.queue.Draw(dst)
	s.avatar.Draw(dst)
}

// Phase returns the current phase.
func (s *Sim) Phase() Phase { return s.phase }

// Score returns the number of scored landings.
func (s *Sim) Score() int { return s.score }

// CanScore reports whether the next landing will score.
func (s *Sim) CanScore() bool { return s.canScore }

// Ticks returns the number of ticks since the run started.
func (s *Sim) Ticks() uint64 { return s.tick }

// Avatar returns a copy of the avatar.
func (s *Sim) Avatar() Avatar { return s.avatar }

// Rod returns a copy of the rod.
func (s *Sim) Rod() Rod { return s.rod }

// Platforms returns the platform queue.
func (s *Sim) Platforms() *PlatformQueue { return s.queue }

// Config returns the configuration the simulation runs with.
func (s *Sim) Config() config.StickHeroConfig { return s.cfg }
