// Package ecs provides ECS adapters for knobs' widget event system.
//
// The primary adapter is [NewDonburiStore], which bridges knob events
// (activated, deactivated, value changed, reset) into a [Donburi] world as
// typed events. Subscribe to [KnobEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	ctx.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
