package ecs

import (
	"testing"

	"github.com/phanxgames/knobs"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []knobs.KnobEvent
	KnobEventType.Subscribe(world, func(w donburi.World, e knobs.KnobEvent) {
		received = append(received, e)
	})

	store.EmitEvent(knobs.KnobEvent{
		Type:  knobs.EventValueChanged,
		ID:    42,
		Label: "Gain",
		Value: 0.25,
	})
	store.EmitEvent(knobs.KnobEvent{
		Type:  knobs.EventReset,
		Value: 1,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents, want 0", len(received))
	}
	KnobEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != knobs.EventValueChanged || e0.ID != 42 || e0.Label != "Gain" || e0.Value != 0.25 {
		t.Errorf("event 0: %+v", e0)
	}
	if e1 := received[1]; e1.Type != knobs.EventReset || e1.Value != 1 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store knobs.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	KnobEventType.Subscribe(world, func(w donburi.World, e knobs.KnobEvent) {
		count1++
	})
	KnobEventType.Subscribe(world, func(w donburi.World, e knobs.KnobEvent) {
		count2++
	})

	store.EmitEvent(knobs.KnobEvent{Type: knobs.EventActivated})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiStore_KnobDrag(t *testing.T) {
	world := donburi.NewWorld()
	ctx := knobs.NewContext()
	ctx.SetInputSource(nil)
	ctx.SetEntityStore(NewDonburiStore(world))

	var types []knobs.EventType
	KnobEventType.Subscribe(world, func(w donburi.World, e knobs.KnobEvent) {
		if e.Label != "Mix" {
			t.Errorf("Label = %q, want %q", e.Label, "Mix")
		}
		types = append(types, e.Type)
	})

	v := 0.5
	cfg := knobs.KnobConfig{Size: 80, Flags: knobs.FlagNoTitle | knobs.FlagNoInput}
	// The knob sits at the window padding; drag up from its center.
	ctx.InjectDrag(48, 48, 48, 28, 4)
	for i := 0; i < 5; i++ {
		ctx.Begin()
		ctx.Knob("Mix##fx", &v, 0, 1, cfg)
		ctx.End()
	}
	events.ProcessAllEvents(world)

	if v <= 0.5 {
		t.Errorf("value = %v, want > 0.5 after dragging up", v)
	}
	if len(types) < 3 {
		t.Fatalf("got %d events, want at least 3", len(types))
	}
	if types[0] != knobs.EventActivated {
		t.Errorf("first event = %v, want EventActivated", types[0])
	}
	if last := types[len(types)-1]; last != knobs.EventDeactivated {
		t.Errorf("last event = %v, want EventDeactivated", last)
	}
}
