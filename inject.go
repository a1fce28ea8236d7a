package knobs

// syntheticEvent is a full device snapshot queued for one frame.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	mods    KeyModifiers
	chars   []rune
	keys    EditKey
}

// lastInjected returns the most recently queued event, or the current input
// when the queue is empty, so text and key events keep the pointer in place.
func (c *Context) lastInjected() syntheticEvent {
	if n := len(c.injectQueue); n > 0 {
		return c.injectQueue[n-1]
	}
	return syntheticEvent{x: c.in.X, y: c.in.Y, pressed: c.in.Buttons[MouseButtonLeft], mods: c.in.Modifiers}
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's Begin call.
func (c *Context) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{x: x, y: y, pressed: true, mods: c.injectMods})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (c *Context) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{x: x, y: y, pressed: true, mods: c.injectMods})
}

// InjectHover queues a pointer move with no button held.
func (c *Context) InjectHover(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{x: x, y: y, mods: c.injectMods})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (c *Context) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{x: x, y: y, mods: c.injectMods})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (c *Context) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDoubleClick queues two clicks at the same position. Consumes four
// frames, well inside the default double-click time.
func (c *Context) InjectDoubleClick(x, y float64) {
	c.InjectClick(x, y)
	c.InjectClick(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), frames-2
// held moves ending exactly at (toX, toY), and a release there. The total
// sequence consumes `frames` frames. Knobs only see motion while the button
// is held, so at least 3 frames are needed for a drag to change a value.
func (c *Context) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		c.InjectMove(x, y)
	}
	c.InjectRelease(toX, toY)
}

// InjectText queues typed characters at the current pointer position.
func (c *Context) InjectText(s string) {
	evt := c.lastInjected()
	evt.chars = []rune(s)
	evt.keys = 0
	c.injectQueue = append(c.injectQueue, evt)
}

// InjectKey queues an edit key press at the current pointer position.
func (c *Context) InjectKey(k EditKey) {
	evt := c.lastInjected()
	evt.chars = nil
	evt.keys = k
	c.injectQueue = append(c.injectQueue, evt)
}

// SetInjectModifiers sets the modifiers attached to subsequently queued
// pointer events.
func (c *Context) SetInjectModifiers(mods KeyModifiers) {
	c.injectMods = mods
}

// processInjectedInput pops one event from the inject queue into c.in.
// Returns true if an event was consumed (the input source is then skipped).
func (c *Context) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	c.in.X, c.in.Y = evt.x, evt.y
	c.in.Buttons = [mouseButtonCount]bool{MouseButtonLeft: evt.pressed}
	c.in.Modifiers = evt.mods
	c.in.Chars = append(c.in.Chars[:0], evt.chars...)
	c.in.Keys = evt.keys
	return true
}
