package stickhero

import (
	"testing"

	"github.com/vovakirdan/stickhero/internal/config"
)

func TestRodGrowth(t *testing.T) {
	r := NewRod(config.DefaultStickHero().Rod, 52, 395)

	prev := r.Height
	for i := 0; i < 100; i++ {
		r.Grow()
		if r.Height >= prev {
			t.Fatalf("grow %d: height %v did not decrease from %v", i, r.Height, prev)
		}
		prev = r.Height
	}
	if r.Length() != 200 {
		t.Errorf("Length = %v after 100 grows, want 200", r.Length())
	}
	if r.Reach() != 252 {
		t.Errorf("Reach = %v, want 252", r.Reach())
	}
}

func TestRodRotation(t *testing.T) {
	r := NewRod(config.DefaultStickHero().Rod, 52, 395)

	for i := 1; i <= 31; i++ {
		prev := r.Angle
		r.Rotate()
		if r.Angle <= prev {
			t.Fatalf("rotate %d: angle %v did not increase from %v", i, r.Angle, prev)
		}
		if r.Down() {
			t.Fatalf("rod down after %d rotations, want 32", i)
		}
	}

	r.Rotate()
	if !r.Down() || r.Angle != Upright {
		t.Errorf("after 32 rotations angle = %v, want %v", r.Angle, Upright)
	}

	// Clamped: further rotation never passes Upright.
	for i := 0; i < 10; i++ {
		r.Rotate()
	}
	if r.Angle != Upright {
		t.Errorf("angle = %v after over-rotation, want %v", r.Angle, Upright)
	}
}

func TestRodReset(t *testing.T) {
	r := NewRod(config.DefaultStickHero().Rod, 52, 395)
	r.Grow()
	r.Rotate()

	r.Reset(100, 400)

	if r.X != 100 || r.Y != 400 {
		t.Errorf("anchor = (%v, %v), want (100, 400)", r.X, r.Y)
	}
	if r.Extended() || r.Angle != 0 {
		t.Errorf("rod not reset: %+v", r)
	}
	if r.Width != 5 {
		t.Errorf("Width = %v, want 5", r.Width)
	}
}
