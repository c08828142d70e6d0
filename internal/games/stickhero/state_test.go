package stickhero

import "testing"

func TestPhaseTransitions(t *testing.T) {
	allowed := map[Phase]map[Trigger]Phase{
		PhaseIdle:       {TriggerReleased: PhaseRotating},
		PhaseRotating:   {TriggerRodDown: PhaseWalking},
		PhaseWalking:    {TriggerLanded: PhaseScrollBack, TriggerMissed: PhaseFailing},
		PhaseScrollBack: {TriggerHome: PhaseIdle},
		PhaseFailing:    {TriggerReset: PhaseIdle},
	}
	phases := []Phase{PhaseIdle, PhaseRotating, PhaseWalking, PhaseScrollBack, PhaseFailing}
	triggers := []Trigger{TriggerReleased, TriggerRodDown, TriggerLanded, TriggerMissed, TriggerHome, TriggerReset}

	for _, p := range phases {
		for _, tr := range triggers {
			want, ok := allowed[p][tr]
			if !ok {
				want = p
			}
			got, changed := p.On(tr)
			if got != want || changed != ok {
				t.Errorf("%s.On(%d) = (%s, %v), want (%s, %v)", p, tr, got, changed, want, ok)
			}
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "idle"},
		{PhaseRotating, "rotating"},
		{PhaseWalking, "walking"},
		{PhaseScrollBack, "scroll_back"},
		{PhaseFailing, "failing"},
		{Phase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(tt.phase), got, tt.want)
		}
	}
}
