package ecs

import (
	"github.com/phanxgames/knobs"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// KnobEventType is the Donburi event type for knob events.
var KnobEventType = events.NewEventType[knobs.KnobEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Knob events are published to KnobEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) knobs.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event knobs.KnobEvent) {
	KnobEventType.Publish(s.world, event)
}
