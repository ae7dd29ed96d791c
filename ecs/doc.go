// Package ecs provides ECS adapters for touchkit's gesture events.
//
// The primary adapter is [NewDonburiSink], which publishes every recognized
// gesture into a [Donburi] world as a typed event. Subscribe to
// [GestureEventType] in your ECS systems to receive them; the event's
// EntityID is the one stored on the touched node.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	surface.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
