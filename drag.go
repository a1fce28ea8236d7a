package knobs

import "math"

// dragAxis selects which pointer axis drives a drag.
type dragAxis uint8

const (
	dragAxisAuto dragAxis = iota // larger absolute delta this frame
	dragAxisX
	dragAxisY
)

const (
	// defaultSpeedDivisor spreads the full range over this many pixels when
	// no speed is given.
	defaultSpeedDivisor = 250
	fastSpeedFactor     = 10
	slowSpeedFactor     = 0.1
	// minLogRange is the smallest range a logarithmic drag normalizes by.
	minLogRange = 1e-6
)

// dragParams describes how pointer motion maps onto a value.
type dragParams struct {
	speed      float64
	vMin, vMax float64
	log        bool
	eps        float64
	precision  int // decimals kept after a drag step
	axis       dragAxis
}

// defaultSpeed returns the per-pixel speed used when none is configured.
func defaultSpeed(vMin, vMax float64) float64 {
	return math.Abs(vMax-vMin) / defaultSpeedDivisor
}

// axisFromFlags picks the drag axis for a knob.
func axisFromFlags(flags Flags) dragAxis {
	switch {
	case flags&FlagDragHorizontal != 0:
		return dragAxisX
	case flags&FlagDragVertical != 0:
		return dragAxisY
	}
	return dragAxisAuto
}

// pointerDragDelta returns this frame's motion along the chosen axis.
// Upward motion is positive on the Y axis.
func pointerDragDelta(d Vec2, axis dragAxis) float64 {
	switch axis {
	case dragAxisX:
		return d.X
	case dragAxisY:
		return -d.Y
	}
	if math.Abs(d.Y) > math.Abs(d.X) {
		return -d.Y
	}
	return d.X
}

// dragBehavior applies this frame's pointer motion to v while id is held.
// Motion below the value's precision accumulates across frames.
func (c *Context) dragBehavior(id ID, v float64, p dragParams) (float64, bool) {
	if c.activeID != id || !c.ptr.down[MouseButtonLeft] {
		return v, false
	}
	if c.dragID != id {
		c.dragID = id
		c.dragAccum = 0
	}

	delta := pointerDragDelta(c.ptr.delta, p.axis)
	if delta == 0 {
		return v, false
	}
	if c.ptr.mods&ModShift != 0 {
		delta *= fastSpeedFactor
	}
	if c.ptr.mods&ModAlt != 0 {
		delta *= slowSpeedFactor
	}

	lo, hi := p.vMin, p.vMax
	if lo > hi {
		lo, hi = hi, lo
	}
	bounded := lo < hi
	if p.log && hi-lo > minLogRange {
		delta /= hi - lo
	}
	c.dragAccum += delta * p.speed

	// A value sitting on (or beyond) a bound is not pushed further out.
	// Logarithmic drags move in ratio space, which runs backwards on a
	// flipped range.
	atHi, atLo := v >= hi, v <= lo
	if p.log && p.vMin > p.vMax {
		atHi, atLo = atLo, atHi
	}
	if bounded && ((atHi && c.dragAccum > 0) || (atLo && c.dragAccum < 0)) {
		c.dragAccum = 0
		return v, false
	}

	var cur float64
	if p.log {
		t := RatioFromValue(v, p.vMin, p.vMax, true, p.eps)
		cur = ValueFromRatio(clamp01(t+c.dragAccum), p.vMin, p.vMax, true, p.eps)
		cur = RoundToPrecision(cur, p.precision)
		c.dragAccum -= RatioFromValue(cur, p.vMin, p.vMax, true, p.eps) - t
	} else {
		cur = RoundToPrecision(v+c.dragAccum, p.precision)
		c.dragAccum -= cur - v
	}
	if bounded {
		cur = clamp(cur, lo, hi)
	}
	if cur == v {
		return v, false
	}
	return cur, true
}
