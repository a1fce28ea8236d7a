package knobs

// EventType identifies a kind of knob event.
type EventType uint8

const (
	EventActivated    EventType = iota // fires when a knob or its input box is grabbed
	EventDeactivated                   // fires when the grab ends
	EventValueChanged                  // fires every frame the value changes
	EventReset                         // fires when a double-click resets the value

	eventTypeCount
)

// KnobEvent carries a knob interaction to callbacks and the EntityStore.
type KnobEvent struct {
	Type  EventType
	ID    ID
	Label string // display label, without any "##" suffix
	Value float64
	Frame uint64
}

// EntityStore is the interface for optional ECS integration.
// When set on a Context, knob events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event KnobEvent)
}

type eventHandler struct {
	id uint32
	fn func(KnobEvent)
}

type handlerRegistry struct {
	byType [eventTypeCount][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.reg.byType[h.event] = s[:len(s)-1]
			return
		}
	}
}

func (c *Context) on(event EventType, fn func(KnobEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.byType[event] = append(c.handlers.byType[event], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: event}
}

// OnActivated registers a callback for knobs becoming active.
func (c *Context) OnActivated(fn func(KnobEvent)) CallbackHandle {
	return c.on(EventActivated, fn)
}

// OnDeactivated registers a callback for knobs being released.
func (c *Context) OnDeactivated(fn func(KnobEvent)) CallbackHandle {
	return c.on(EventDeactivated, fn)
}

// OnValueChanged registers a callback for value changes.
func (c *Context) OnValueChanged(fn func(KnobEvent)) CallbackHandle {
	return c.on(EventValueChanged, fn)
}

// OnReset registers a callback for double-click resets.
func (c *Context) OnReset(fn func(KnobEvent)) CallbackHandle {
	return c.on(EventReset, fn)
}

// emit dispatches to callbacks first, then the EntityStore.
func (c *Context) emit(event EventType, id ID, label string, value float64) {
	ev := KnobEvent{
		Type:  event,
		ID:    id,
		Label: displayLabel(label),
		Value: value,
		Frame: c.frame,
	}
	for _, h := range c.handlers.byType[event] {
		h.fn(ev)
	}
	if c.store != nil {
		c.store.EmitEvent(ev)
	}
}
