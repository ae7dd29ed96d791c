// Package touchkit recognizes multi-touch gestures on a tree of widgets,
// for touch tables and other shared multi-user surfaces.
//
// Raw samples (a session ID, a position and a millisecond timestamp) enter
// through a [Tracker]. Each finger is assigned to the gesture target under
// it when it lands, and the fingers of one target form a [TouchGroup].
// On every sample the [Manager] validates the target's bindings against a
// copy of the group and fires the callbacks of the gestures that match.
//
// # Quick start
//
// A [Surface] wires the node tree, the manager, the tracker and touch
// feedback together:
//
//	s := touchkit.NewSurface(1920, 1080)
//
//	card := touchkit.NewNode("card", 120, 170)
//	card.Tag(touchkit.CapGestureTarget)
//	s.Root().AddChild(card)
//
//	s.Manager().AddGesture(card, s.Catalog().Tap, func(n *touchkit.Node, g *touchkit.TouchGroup) {
//		fmt.Println("tapped", n.Name)
//	})
//
//	s.Down(1, 50, 50, 0)
//	s.Up(1, 50, 50, 120) // prints "tapped card"
//
// Feed samples from a device with ebitentouch (Ebitengine touch and mouse)
// or tuio (TUIO cursors over UDP), and call [Surface.Update] once per frame
// to advance feedback bubbles and tweens.
//
// # Gesture targets
//
// Nodes tagged [CapGestureTarget] bound compound widgets. A finger landing
// inside one goes to the most specific node with bindings within it, and
// never to a node behind it. A target nested inside another target narrows
// the widget to itself.
//
// # Gestures
//
// A [Gesture] is a named [Rule] plus observers. The [Catalog] holds the
// standard set (taps, holds, double taps, drag, rotate, resize, multi-finger
// moves and line swipes) built from [Thresholds]; [Defined] uses the
// defaults. Custom rules implement [Rule] or wrap a [RuleFunc].
//
// [Manipulator] binds the usual tabletop behavior to a node, and
// [DropController] drives drag and drop onto nodes tagged
// [CapDropContainer].
//
// Events can also be published into a [Donburi] world with the ecs package.
//
// [Donburi]: https://github.com/yohamta/donburi
package touchkit
