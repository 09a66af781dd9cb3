// Package ecs provides ECS adapters for skillfield's interaction events.
//
// [NewDonburiStore] bridges engine focus, blur, and click events into a
// [Donburi] world as typed events. Subscribe to [InteractionEventType] in
// your systems to receive them, or attach a [Tracker] to keep per-item
// counters as components.
//
// Usage:
//
//	world := donburi.NewWorld()
//	tracker := ecs.NewTracker(world)
//	engine.SetEntityStore(ecs.NewDonburiStore(world))
//	// once per frame:
//	ecs.InteractionEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
