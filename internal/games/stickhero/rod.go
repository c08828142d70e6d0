package stickhero

import (
	"math"

	"github.com/vovakirdan/stickhero/internal/config"
)

// Upright is the rod angle at which it lies flat across the gap.
const Upright = math.Pi / 2

// Rod is the bridge the avatar extends across a gap.
//
// Height starts at 0 and grows negative (the rod is drawn upward from its
// anchor). Angle rotates from 0 (standing) to Upright (lying flat).
type Rod struct {
	X, Y   float64 // Anchor at the avatar's trailing edge
	Width  float64
	Height float64
	Angle  float64

	growRate      float64
	rotationSpeed float64
}

// NewRod creates a zero-length rod anchored at (x, y).
func NewRod(cfg config.RodConfig, x, y float64) Rod {
	return Rod{
		X:             x,
		Y:             y,
		Width:         cfg.Width,
		growRate:      cfg.GrowRate,
		rotationSpeed: cfg.RotationSpeed,
	}
}

// Grow extends the rod by one tick. There is no length cap.
func (r *Rod) Grow() {
	r.Height -= r.growRate
}

// Rotate tips the rod by one tick, stopping exactly at Upright.
func (r *Rod) Rotate() {
	r.Angle = min(r.Angle+r.rotationSpeed, Upright)
}

// Extended reports whether the rod has grown at all.
func (r Rod) Extended() bool {
	return r.Height < 0
}

// Down reports whether the rod has finished rotating.
func (r Rod) Down() bool {
	return r.Angle == Upright
}

// Length returns the rod length as a positive number.
func (r Rod) Length() float64 {
	return -r.Height
}

// Reach returns the x of the rod's far end once it lies flat.
func (r Rod) Reach() float64 {
	return r.X - r.Height
}

// Reset re-anchors the rod and starts a new growth cycle.
func (r *Rod) Reset(x, y float64) {
	r.X = x
	r.Y = y
	r.Height = 0
	r.Angle = 0
}

// Draw paints the rod rotated around its anchor.
func (r Rod) Draw(dst Surface) {
	dst.FillRotatedRect(r.X, r.Y, r.Width, r.Height, r.Angle)
}
