package stickhero

// Surface is an immediate-mode drawing target in world units.
type Surface interface {
	Clear()
	DrawSprite(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	// FillRotatedRect fills the rectangle (0, 0, w, h) rotated by angle
	// (radians, clockwise) around the anchor (x, y).
	FillRotatedRect(x, y, w, h, angle float64)
}

// Overlay is the presentation layer that shows the final score.
type Overlay interface {
	Show(score int)
	Hide()
}

// CommandKind identifies a recorded draw command.
type CommandKind int

const (
	CmdClear CommandKind = iota
	CmdSprite
	CmdRect
	CmdRotatedRect
)

// Command is one recorded draw call.
type Command struct {
	Kind       CommandKind
	X, Y, W, H float64
	Angle      float64
}

// DrawList is a Surface that records one frame of commands for later replay.
// Clear starts a new frame.
type DrawList struct {
	cmds []Command
}

func (d *DrawList) Clear() {
	d.cmds = append(d.cmds[:0], Command{Kind: CmdClear})
}

func (d *DrawList) DrawSprite(x, y, w, h float64) {
	d.cmds = append(d.cmds, Command{Kind: CmdSprite, X: x, Y: y, W: w, H: h})
}

func (d *DrawList) FillRect(x, y, w, h float64) {
	d.cmds = append(d.cmds, Command{Kind: CmdRect, X: x, Y: y, W: w, H: h})
}

func (d *DrawList) FillRotatedRect(x, y, w, h, angle float64) {
	d.cmds = append(d.cmds, Command{Kind: CmdRotatedRect, X: x, Y: y, W: w, H: h, Angle: angle})
}

// Commands returns the recorded frame. The slice is owned by the list.
func (d *DrawList) Commands() []Command {
	return d.cmds
}

// Replay issues the recorded frame to another surface, in order.
func (d *DrawList) Replay(dst Surface) {
	for _, c := range d.cmds {
		switch c.Kind {
		case CmdClear:
			dst.Clear()
		case CmdSprite:
			dst.DrawSprite(c.X, c.Y, c.W, c.H)
		case CmdRect:
			dst.FillRect(c.X, c.Y, c.W, c.H)
		case CmdRotatedRect:
			dst.FillRotatedRect(c.X, c.Y, c.W, c.H, c.Angle)
		}
	}
}

// Discard is a Surface that ignores every call. Used for headless replays.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear()                                {}
func (discard) DrawSprite(_, _, _, _ float64)         {}
func (discard) FillRect(_, _, _, _ float64)           {}
func (discard) FillRotatedRect(_, _, _, _, _ float64) {}

type noOverlay struct{}

func (noOverlay) Show(int) {}
func (noOverlay) Hide()    {}
