package stickhero

// Snapshot captures the simulation state for determinism checks and replays.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	CanScore  bool
	AvatarX   float64
	AvatarY   float64
	RodX      float64
	RodHeight float64
	RodAngle  float64
	Platforms int
	FrontX    float64
	BackX     float64
}

// Snapshot returns the current simulation snapshot.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Phase:     s.phase,
		Score:     s.score,
		CanScore:  s.canScore,
		AvatarX:   s.avatar.X,
		AvatarY:   s.avatar.Y,
		RodX:      s.rod.X,
		RodHeight: s.rod.Height,
		RodAngle:  s.rod.Angle,
		Platforms: s.queue.Len(),
		FrontX:    s.queue.Front().X,
		BackX:     s.queue.Back().X,
	}
}
