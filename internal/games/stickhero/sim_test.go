package stickhero

import (
	"testing"

	"github.com/vovakirdan/stickhero/internal/config"
)

// fixedGen returns the same gap and width every time.
type fixedGen struct {
	gap, width float64
}

func (g fixedGen) Gap() float64   { return g.gap }
func (g fixedGen) Width() float64 { return g.width }

// recordingOverlay remembers every call made to it.
type recordingOverlay struct {
	shown  []int
	hidden int
}

func (o *recordingOverlay) Show(score int) { o.shown = append(o.shown, score) }
func (o *recordingOverlay) Hide()          { o.hidden++ }

func newTestSim(t *testing.T) (*Sim, *recordingOverlay) {
	t.Helper()
	overlay := &recordingOverlay{}
	return NewSim(config.DefaultStickHero(), fixedGen{gap: 100, width: 60}, overlay), overlay
}

// hold ticks the sim n times with the input held.
func hold(s *Sim, n int) {
	for i := 0; i < n; i++ {
		s.Tick(true, Discard)
	}
}

// releaseUntil ticks with the input released until the sim enters want.
// It returns the number of ticks it took, or fails after limit ticks.
func releaseUntil(t *testing.T, s *Sim, want Phase, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		s.Tick(false, Discard)
		if s.Phase() == want {
			return i
		}
	}
	t.Fatalf("phase %s not reached within %d ticks, stuck in %s", want, limit, s.Phase())
	return 0
}

func TestSimStartState(t *testing.T) {
	s, overlay := newTestSim(t)

	if s.Phase() != PhaseIdle {
		t.Errorf("Phase = %s, want idle", s.Phase())
	}
	if s.Score() != 0 || s.CanScore() {
		t.Errorf("Score = %d, CanScore = %v, want 0 and false", s.Score(), s.CanScore())
	}
	if s.Avatar().X != 10 || s.Avatar().Y != 350 {
		t.Errorf("Avatar at (%v, %v), want (10, 350)", s.Avatar().X, s.Avatar().Y)
	}
	if s.Rod().X != 52 || s.Rod().Y != 395 || s.Rod().Height != 0 {
		t.Errorf("Rod = %+v, want anchored at (52, 395) with zero height", s.Rod())
	}
	if s.Platforms().Len() != 2 {
		t.Errorf("Platforms = %d, want 2", s.Platforms().Len())
	}
	if overlay.hidden != 1 {
		t.Errorf("overlay hidden %d times, want 1", overlay.hidden)
	}
}

func TestSimReleaseWithoutGrowthStaysIdle(t *testing.T) {
	s, _ := newTestSim(t)

	for i := 0; i < 30; i++ {
		s.Tick(false, Discard)
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase = %s, want idle", s.Phase())
	}
	if s.Rod().Extended() {
		t.Error("rod grew without input")
	}
}

func TestSimRodGrowsWhileHeld(t *testing.T) {
	s, _ := newTestSim(t)

	hold(s, 10)
	if got := s.Rod().Length(); got != 20 {
		t.Errorf("rod length = %v after 10 held ticks, want 20", got)
	}

	// Release: the rod starts rotating on the same tick.
	s.Tick(false, Discard)
	if s.Phase() != PhaseRotating {
		t.Errorf("Phase = %s, want rotating", s.Phase())
	}
	if s.Rod().Angle == 0 {
		t.Error("rod did not rotate on the release tick")
	}
}

func TestSimInputIgnoredOutsideIdle(t *testing.T) {
	s, _ := newTestSim(t)

	hold(s, 10)
	s.Tick(false, Discard)
	length := s.Rod().Length()

	// Holding again while the rod rotates must not grow it.
	hold(s, 5)
	if s.Phase() != PhaseRotating {
		t.Fatalf("Phase = %s, want rotating", s.Phase())
	}
	if s.Rod().Length() != length {
		t.Errorf("rod length changed from %v to %v outside idle", length, s.Rod().Length())
	}
}

func TestSimMissedLanding(t *testing.T) {
	s, overlay := newTestSim(t)

	// A 20-unit rod reaches x=72, short of the second platform at 200.
	hold(s, 10)
	if n := releaseUntil(t, s, PhaseWalking, 100); n != 32 {
		t.Errorf("rod came down after %d ticks, want 32", n)
	}
	if s.Ticks() != 42 {
		t.Errorf("walking started on tick %d, want 42", s.Ticks())
	}

	releaseUntil(t, s, PhaseFailing, 100)
	if s.Ticks() != 58 {
		t.Errorf("landing checked on tick %d, want 58", s.Ticks())
	}
	if s.Avatar().X != 58 {
		t.Errorf("avatar X = %v at landing check, want 58", s.Avatar().X)
	}
	if len(overlay.shown) != 1 || overlay.shown[0] != 0 {
		t.Errorf("overlay shown %v, want [0]", overlay.shown)
	}
	if s.Rod().Height != 0 || s.Rod().Angle != 0 {
		t.Errorf("rod not reset after the landing check: %+v", s.Rod())
	}

	// The avatar keeps falling, in place, until a reset.
	y := s.Avatar().Y
	x := s.Avatar().X
	for i := 0; i < 10; i++ {
		s.Tick(true, Discard)
	}
	if s.Phase() != PhaseFailing {
		t.Errorf("Phase = %s, want failing", s.Phase())
	}
	if s.Avatar().Y != y+30 {
		t.Errorf("avatar Y = %v, want %v", s.Avatar().Y, y+30)
	}
	if s.Avatar().X != x {
		t.Errorf("avatar moved horizontally while falling: %v -> %v", x, s.Avatar().X)
	}
	if len(overlay.shown) != 1 {
		t.Errorf("overlay shown %d times, want once", len(overlay.shown))
	}
}

func TestSimLandingAndScrollBack(t *testing.T) {
	s, _ := newTestSim(t)

	// A 180-unit rod reaches x=232; the avatar stops at 217 on the second platform.
	hold(s, 90)
	releaseUntil(t, s, PhaseWalking, 100)
	releaseUntil(t, s, PhaseScrollBack, 200)

	if s.Avatar().X != 217 {
		t.Errorf("avatar X = %v at landing, want 217", s.Avatar().X)
	}
	if s.Score() != 0 {
		t.Errorf("Score = %d, the first landing must not count", s.Score())
	}

	if n := releaseUntil(t, s, PhaseIdle, 200); n != 69 {
		t.Errorf("scroll back took %d ticks, want 69", n)
	}
	if s.Avatar().X != 10 {
		t.Errorf("avatar X = %v after scroll back, want 10", s.Avatar().X)
	}
	if !s.CanScore() {
		t.Error("CanScore = false after returning home")
	}
	if s.Rod().X != 52 || s.Rod().Extended() {
		t.Errorf("rod not re-anchored at home: %+v", s.Rod())
	}

	// The start platform scrolled off and was evicted.
	if front := s.Platforms().Front(); front.X != -7 {
		t.Errorf("front platform X = %v, want -7", front.X)
	}
	for _, p := range s.Platforms().Platforms() {
		if p.Gone() {
			t.Errorf("platform at %v left the view but was kept", p.X)
		}
	}
}

func TestSimSecondLandingScores(t *testing.T) {
	s, _ := newTestSim(t)

	hold(s, 90)
	releaseUntil(t, s, PhaseWalking, 100)
	releaseUntil(t, s, PhaseScrollBack, 200)
	releaseUntil(t, s, PhaseIdle, 200)

	// The third platform now sits at 153..213.
	hold(s, 55)
	releaseUntil(t, s, PhaseWalking, 100)
	releaseUntil(t, s, PhaseScrollBack, 200)

	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
	if s.CanScore() {
		t.Error("CanScore still set after a scored landing")
	}
}

func TestSimCountFirstLanding(t *testing.T) {
	cfg := config.DefaultStickHero()
	cfg.Scoring.CountFirstLanding = true
	s := NewSim(cfg, fixedGen{gap: 100, width: 60}, nil)

	hold(s, 90)
	releaseUntil(t, s, PhaseWalking, 100)
	releaseUntil(t, s, PhaseScrollBack, 200)

	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
}

func TestSimShortRodLandsOnStartPlatform(t *testing.T) {
	s, _ := newTestSim(t)

	hold(s, 1)
	releaseUntil(t, s, PhaseWalking, 100)
	releaseUntil(t, s, PhaseScrollBack, 100)

	if s.Score() != 0 {
		t.Errorf("Score = %d, want 0", s.Score())
	}
}

func TestSimRequestReset(t *testing.T) {
	s, overlay := newTestSim(t)

	if s.RequestReset() {
		t.Error("RequestReset succeeded while idle")
	}

	hold(s, 10)
	s.Tick(false, Discard)
	if s.RequestReset() {
		t.Error("RequestReset succeeded while rotating")
	}
	if s.Phase() != PhaseRotating {
		t.Errorf("Phase = %s after a refused reset, want rotating", s.Phase())
	}

	releaseUntil(t, s, PhaseFailing, 200)
	if !s.RequestReset() {
		t.Fatal("RequestReset refused while failing")
	}

	if s.Phase() != PhaseIdle {
		t.Errorf("Phase = %s, want idle", s.Phase())
	}
	if s.Score() != 0 || s.Ticks() != 0 {
		t.Errorf("Score = %d, Ticks = %d, want both 0", s.Score(), s.Ticks())
	}
	if s.Avatar() != NewAvatar(s.Config().Avatar) {
		t.Errorf("avatar not back at origin: %+v", s.Avatar())
	}
	if s.Platforms().Len() != 2 || s.Platforms().Back().X != 200 {
		t.Errorf("platforms not back to the start layout: %+v", s.Platforms().Platforms())
	}
	if overlay.hidden != 2 {
		t.Errorf("overlay hidden %d times, want 2", overlay.hidden)
	}
}

func TestSimDrawOrder(t *testing.T) {
	s, _ := newTestSim(t)
	var frame DrawList

	s.Tick(true, &frame)

	cmds := frame.Commands()
	if len(cmds) < 4 {
		t.Fatalf("got %d commands, want at least 4", len(cmds))
	}
	if cmds[0].Kind != CmdClear {
		t.Errorf("first command = %v, want clear", cmds[0].Kind)
	}
	if cmds[1].Kind != CmdRotatedRect {
		t.Errorf("second command = %v, want rod", cmds[1].Kind)
	}
	for _, c := range cmds[2 : len(cmds)-1] {
		if c.Kind != CmdRect {
			t.Errorf("middle command = %v, want platform", c.Kind)
		}
	}
	if last := cmds[len(cmds)-1]; last.Kind != CmdSprite {
		t.Errorf("last command = %v, want avatar", last.Kind)
	}

	// Every tick starts a fresh frame: clear, rod, platforms, avatar.
	s.Tick(true, &frame)
	if got, want := len(frame.Commands()), 3+s.Platforms().Len(); got != want {
		t.Errorf("second frame has %d commands, want %d", got, want)
	}
}

func TestSimDeterminism(t *testing.T) {
	cfg := config.DefaultStickHero()
	inputs := []int{40, 0, 70, 0, 25}

	run := func() Snapshot {
		s := NewSim(cfg, NewRandGenerator(99, cfg.Platforms), nil)
		for _, n := range inputs {
			if n == 0 {
				for i := 0; i < 150; i++ {
					s.Tick(false, Discard)
				}
				continue
			}
			hold(s, n)
		}
		return s.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}
