package knobs

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the draw list is flushed.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default text color.
var ColorWhite = Color{1, 1, 1, 1}

// RGB returns a copy of c with its color channels multiplied by f.
// Alpha is left untouched.
func (c Color) RGB(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for vector and text drawing.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

// ColorSet holds the three colors a knob part cycles through depending on
// interaction state.
type ColorSet struct {
	Base    Color
	Hovered Color
	Active  Color
}

// UniformColorSet returns a ColorSet that uses c for every state.
func UniformColorSet(c Color) ColorSet {
	return ColorSet{Base: c, Hovered: c, Active: c}
}

// pick returns Active when active, else Hovered when hovered, else Base.
func (cs ColorSet) pick(active, hovered bool) Color {
	if active {
		return cs.Active
	}
	if hovered {
		return cs.Hovered
	}
	return cs.Base
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{r.X + r.Width, r.Y + r.Height}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.X+r.Width, o.X+o.Width)
	y1 := math.Max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Variant selects how a knob is drawn.
type Variant uint8

const (
	VariantTick      Variant = iota // filled circle with a tick mark
	VariantDot                      // filled circle with an orbiting dot
	VariantWiper                    // circle inside a track and value arc
	VariantWiperOnly                // track and value arc, no circle
	VariantWiperDot                 // circle, track arc and a dot riding the track
	VariantStepped                  // ring of step ticks around a dotted circle
	VariantSpace                    // shrinking core with three offset arcs
)

var variantNames = [...]string{"tick", "dot", "wiper", "wiper-only", "wiper-dot", "stepped", "space"}

// String returns the lower-case variant name.
func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

// ParseVariant returns the Variant with the given String name.
func ParseVariant(name string) (Variant, bool) {
	for i, n := range variantNames {
		if n == name {
			return Variant(i), true
		}
	}
	return 0, false
}

// Flags alter knob behavior. Values can be combined with bitwise OR.
type Flags uint16

const (
	FlagNoTitle        Flags = 1 << iota // hide the label above the knob
	FlagNoInput                          // hide the value box below the knob
	FlagValueTooltip                     // show the value in a tooltip while hovered or dragged
	FlagDragHorizontal                   // drag only along X
	FlagDragVertical                     // drag only along Y
	FlagLogarithmic                      // map values on a log scale
	FlagAlwaysClamp                      // clamp typed values too
	FlagNoReset                          // ignore double-click reset
	FlagAnimateReset                     // ease toward the default on reset
	FlagRoundHit                         // accept presses on the knob circle only, not its square
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

const mouseButtonCount = 3

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// EditKey is a key the manual input box reacts to.
type EditKey uint8

const (
	EditKeyEnter     EditKey = 1 << iota // commit typed text
	EditKeyEscape                        // cancel editing
	EditKeyBackspace                     // delete the last rune
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
