package knobs

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// resetTween eases a knob toward its default after a double-click.
// There is no global animation manager: the knob steps its own tween once per
// frame while it is submitted.
type resetTween struct {
	tween  *gween.Tween
	target float64
	frame  uint64 // last frame the knob stepped it
}

// startReset begins easing id from its current value to target over
// duration seconds, replacing any running reset for id.
func (c *Context) startReset(id ID, from, to, duration float64) {
	c.resets[id] = &resetTween{
		tween:  gween.New(float32(from), float32(to), float32(duration), ease.OutCubic),
		target: to,
		frame:  c.frame,
	}
}

// stepReset advances the reset for id by one frame. ok is false when no reset
// is running. The final step lands exactly on the target.
func (c *Context) stepReset(id ID) (value float64, ok bool) {
	rt := c.resets[id]
	if rt == nil {
		return 0, false
	}
	rt.frame = c.frame
	val, finished := rt.tween.Update(float32(c.dt()))
	if finished {
		delete(c.resets, id)
		return rt.target, true
	}
	return float64(val), true
}

// cancelReset stops a running reset, leaving the value where it is.
func (c *Context) cancelReset(id ID) {
	delete(c.resets, id)
}

// dropStaleResets removes resets of knobs that were not submitted this
// frame. A knob that comes back later starts from wherever it was left.
func (c *Context) dropStaleResets() {
	for id, rt := range c.resets {
		if rt.frame != c.frame {
			delete(c.resets, id)
		}
	}
}

// Resetting reports whether the knob with the given label, under the current
// ID stack, is still easing toward its default.
func (c *Context) Resetting(label string) bool {
	id := hashLabel(c.GetID(label), label)
	_, ok := c.resets[id]
	return ok
}
