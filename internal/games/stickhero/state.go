package stickhero

// Phase is the single state of a run. Exactly one phase is active at a time.
type Phase int

const (
	PhaseIdle       Phase = iota // Waiting for input, rod grows while held
	PhaseRotating                // Rod tipping over after release
	PhaseWalking                 // Avatar walking along the rod
	PhaseScrollBack              // Avatar returning home while the world scrolls
	PhaseFailing                 // Avatar falling after a missed landing
)

// String returns the phase name used in logs and snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRotating:
		return "rotating"
	case PhaseWalking:
		return "walking"
	case PhaseScrollBack:
		return "scroll_back"
	case PhaseFailing:
		return "failing"
	default:
		return "unknown"
	}
}

// Trigger is a condition observed by the simulation that may change the phase.
type Trigger int

const (
	TriggerReleased Trigger = iota // Input released with an extended rod
	TriggerRodDown                 // Rod reached Upright
	TriggerLanded                  // Landing check passed
	TriggerMissed                  // Landing check failed
	TriggerHome                    // Avatar back at its origin
	TriggerReset                   // External reset request
)

// On returns the phase that follows p when t occurs.
// The second result is false, and p is returned unchanged, when t has no
// meaning in p.
func (p Phase) On(t Trigger) (Phase, bool) {
	switch {
	case p == PhaseIdle && t == TriggerReleased:
		return PhaseRotating, true
	case p == PhaseRotating && t == TriggerRodDown:
		return PhaseWalking, true
	case p == PhaseWalking && t == TriggerLanded:
		return PhaseScrollBack, true
	case p == PhaseWalking && t == TriggerMissed:
		return PhaseFailing, true
	case p == PhaseScrollBack && t == TriggerHome:
		return PhaseIdle, true
	case p == PhaseFailing && t == TriggerReset:
		return PhaseIdle, true
	}
	return p, false
}
