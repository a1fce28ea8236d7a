package knobs

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Hit shapes ---

// HitShape is an area that answers point-inside queries in screen
// coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Raw input ---

// InputState is a snapshot of the devices for one frame.
type InputState struct {
	X, Y      float64
	Buttons   [mouseButtonCount]bool
	Modifiers KeyModifiers
	Chars     []rune  // text typed this frame
	Keys      EditKey // edit keys pressed this frame
}

// InputSource fills an InputState once per frame.
type InputSource interface {
	Poll(dst *InputState)
}

// EbitenInput reads the mouse and keyboard through Ebitengine. It must be
// polled from the game's Update.
type EbitenInput struct{}

// Poll implements InputSource.
func (EbitenInput) Poll(dst *InputState) {
	mx, my := ebiten.CursorPosition()
	dst.X, dst.Y = float64(mx), float64(my)
	dst.Buttons[MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	dst.Buttons[MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	dst.Buttons[MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	dst.Modifiers = readModifiers()
	dst.Chars = ebiten.AppendInputChars(dst.Chars[:0])

	dst.Keys = 0
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		dst.Keys |= EditKeyEnter
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		dst.Keys |= EditKeyEscape
	}
	if repeatingKey(ebiten.KeyBackspace) {
		dst.Keys |= EditKeyBackspace
	}
}

// repeatingKey reports a key press on the first frame and then at a fixed
// rate while held.
func repeatingKey(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// --- Per-frame pointer state ---

type pointerState struct {
	started bool

	pos   Vec2
	delta Vec2

	down          [mouseButtonCount]bool
	pressed       [mouseButtonCount]bool // went down this frame
	released      [mouseButtonCount]bool // went up this frame
	doubleClicked [mouseButtonCount]bool // second press of a double-click

	clickTime [mouseButtonCount]float64
	clickPos  [mouseButtonCount]Vec2

	mods KeyModifiers
}

// update derives edges, deltas and double-clicks from a new snapshot taken
// at time now (seconds).
func (p *pointerState) update(in *InputState, now float64, style *Style) {
	pos := Vec2{in.X, in.Y}
	if !p.started {
		p.started = true
		p.delta = Vec2{}
		for i := range p.clickTime {
			p.clickTime[i] = math.Inf(-1)
		}
	} else {
		p.delta = Vec2{pos.X - p.pos.X, pos.Y - p.pos.Y}
	}
	p.pos = pos
	p.mods = in.Modifiers

	for b := 0; b < mouseButtonCount; b++ {
		was := p.down[b]
		now0 := in.Buttons[b]
		p.pressed[b] = now0 && !was
		p.released[b] = !now0 && was
		p.doubleClicked[b] = false
		p.down[b] = now0

		if !p.pressed[b] {
			continue
		}
		dx := pos.X - p.clickPos[b].X
		dy := pos.Y - p.clickPos[b].Y
		if now-p.clickTime[b] <= style.DoubleClickTime &&
			math.Sqrt(dx*dx+dy*dy) <= style.DoubleClickMaxDist {
			p.doubleClicked[b] = true
			// A third press starts a new sequence.
			p.clickTime[b] = math.Inf(-1)
		} else {
			p.clickTime[b] = now
		}
		p.clickPos[b] = pos
	}
}

// readInput fills c.in for this frame: one injected event if queued,
// otherwise the input source. Without a source the previous pointer state
// carries over with no typed text.
func (c *Context) readInput() {
	if c.processInjectedInput() {
		return
	}
	if c.source != nil {
		c.source.Poll(&c.in)
		return
	}
	c.in.Chars = c.in.Chars[:0]
	c.in.Keys = 0
}

// MousePos returns the pointer position for the current frame.
func (c *Context) MousePos() Vec2 {
	return c.ptr.pos
}

// MouseDelta returns how far the pointer moved since the previous frame.
func (c *Context) MouseDelta() Vec2 {
	return c.ptr.delta
}

// IsMouseDown reports whether button is held this frame.
func (c *Context) IsMouseDown(button MouseButton) bool {
	return button < mouseButtonCount && c.ptr.down[button]
}

// IsMouseClicked reports whether button went down this frame.
func (c *Context) IsMouseClicked(button MouseButton) bool {
	return button < mouseButtonCount && c.ptr.pressed[button]
}

// IsMouseDoubleClicked reports whether this frame's press of button completed
// a double-click.
func (c *Context) IsMouseDoubleClicked(button MouseButton) bool {
	return button < mouseButtonCount && c.ptr.doubleClicked[button]
}

// Modifiers returns the keyboard modifiers held this frame.
func (c *Context) Modifiers() KeyModifiers {
	return c.ptr.mods
}
