package ecs

import (
	"github.com/phanxgames/touchkit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
var GestureEventType = events.NewEventType[touchkit.GestureEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Gesture
// events are published to GestureEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) touchkit.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitGesture(event touchkit.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}

// BindEntity stores the entity's ID on n, so gesture events fired on n
// carry it.
func BindEntity(n *touchkit.Node, e donburi.Entity) {
	n.EntityID = uint32(e.Id())
}
