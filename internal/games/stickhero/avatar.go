package stickhero

import "github.com/vovakirdan/stickhero/internal/config"

// Avatar is the player figure. Its size and speed never change.
type Avatar struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	OriginX       float64 // Home position the avatar scrolls back to
}

// NewAvatar places an avatar at its origin.
func NewAvatar(cfg config.AvatarConfig) Avatar {
	return Avatar{
		X:       cfg.OriginX,
		Y:       cfg.OriginY,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Speed:   cfg.Speed,
		OriginX: cfg.OriginX,
	}
}

// Forward walks one tick to the right.
func (a *Avatar) Forward() {
	a.X += a.Speed
}

// Back walks one tick to the left, never past the origin.
func (a *Avatar) Back() {
	a.X = max(a.X-a.Speed, a.OriginX)
}

// Fall drops the avatar one tick at constant speed.
func (a *Avatar) Fall() {
	a.Y += a.Speed
}

// Home reports whether the avatar stands at its origin.
func (a Avatar) Home() bool {
	return a.X <= a.OriginX
}

// Trailing returns the x of the avatar's right edge, where the rod is anchored.
func (a Avatar) Trailing() float64 {
	return a.X + a.Width
}

// Feet returns the y of the avatar's bottom edge.
func (a Avatar) Feet() float64 {
	return a.Y + a.Height
}

// Draw paints the avatar sprite.
func (a Avatar) Draw(dst Surface) {
	dst.DrawSprite(a.X, a.Y, a.Width, a.Height)
}
