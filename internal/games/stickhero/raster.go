package stickhero

import (
	"math"

	"github.com/vovakirdan/stickhero/internal/config"
	"github.com/vovakirdan/stickhero/internal/core"
)

// Visual characters for rendering
const (
	AvatarBody    = '█'
	AvatarHead    = '◉'
	PlatformChar  = '█'
	RodVertical   = '┃'
	RodHorizontal = '━'
	RodDiagonal   = '╱'
)

// raster is a Surface that paints world-unit draw calls onto a character screen,
// scaling the world viewport to the screen size.
type raster struct {
	dst    *core.Screen
	sx, sy float64 // Cells per world unit
}

func newRaster(dst *core.Screen, world config.WorldConfig) *raster {
	return &raster{
		dst: dst,
		sx:  float64(dst.Width()) / world.Width,
		sy:  float64(dst.Height()) / world.Height,
	}
}

// cells converts a world box to the screen cells it covers.
// Any box with a positive size covers at least one cell.
func (r *raster) cells(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(x * r.sx))
	y0 := int(math.Floor(y * r.sy))
	x1 := max(int(math.Ceil((x+w)*r.sx)), x0+1)
	y1 := max(int(math.Ceil((y+h)*r.sy)), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func (r *raster) Clear() {
	r.dst.Clear()
}

func (r *raster) DrawSprite(x, y, w, h float64) {
	box := r.cells(x, y, w, h)
	r.dst.DrawRect(box, AvatarBody, core.ColorOrange)
	r.dst.SetColored(box.X+box.W/2, box.Y, AvatarHead, core.ColorYellow)
}

func (r *raster) FillRect(x, y, w, h float64) {
	r.dst.DrawRect(r.cells(x, y, w, h), PlatformChar, core.ColorGray)
}

// FillRotatedRect samples the rectangle's center line and plots one glyph per
// cell along it. The rod is always thinner than a cell.
func (r *raster) FillRotatedRect(x, y, w, h, angle float64) {
	if h == 0 || r.sx <= 0 || r.sy <= 0 {
		return
	}

	glyph := RodDiagonal
	switch {
	case angle < math.Pi/8:
		glyph = RodVertical
	case angle > 3*math.Pi/8:
		glyph = RodHorizontal
	}

	sin, cos := math.Sincos(angle)
	u := w / 2
	step := min(1/r.sx, 1/r.sy) / 2
	length := math.Abs(h)
	dir := math.Copysign(1, h)

	for d := 0.0; d <= length; d += step {
		v := dir * d
		wx := x + u*cos - v*sin
		wy := y + u*sin + v*cos
		r.dst.SetColored(int(math.Floor(wx*r.sx)), int(math.Floor(wy*r.sy)), glyph, core.ColorBrightWhite)
	}
}
