package stickhero

// Platform is a column the avatar can stand on. Its size is fixed at creation.
type Platform struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Leftward scroll per tick
}

// Right returns the x of the platform's right edge.
func (p Platform) Right() float64 {
	return p.X + p.Width
}

// Scroll moves the platform one tick to the left.
func (p *Platform) Scroll() {
	p.X -= p.Speed
}

// Gone reports whether the platform has fully left the view.
func (p Platform) Gone() bool {
	return p.Right() < 0
}

// Supports reports whether an avatar spanning [x, x+width] rests on the platform,
// with buffer trimmed from both avatar edges.
func (p Platform) Supports(x, width, buffer float64) bool {
	return x+buffer >= p.X && x+width-buffer <= p.Right()
}

// Draw paints the platform.
func (p Platform) Draw(dst Surface) {
	dst.FillRect(p.X, p.Y, p.Width, p.Height)
}
