package touchkit

import "math"

// Binding names used by Manipulator.
const (
	GestureFingersChanged = "fingers_changed"
	GestureDrag           = "drag"
	GestureRotate         = "rotate"
	GestureResize         = "resize"
)

// Default scale limits of a Manipulator.
const (
	DefaultMinScale = 0.25
	DefaultMaxScale = 4
)

// AngleBetween returns the signed angle in radians that turns a onto b,
// in (-Pi, Pi]. Zero vectors give 0.
func AngleBetween(a, b Vec2) float64 {
	cross := a.X*b.Y - a.Y*b.X
	dot := a.X*b.X + a.Y*b.Y
	if cross == 0 && dot == 0 {
		return 0
	}
	return math.Atan2(cross, dot)
}

// PositionChange returns how far finger 0 moved in its latest sample.
func PositionChange(g *TouchGroup) Vec2 {
	if g.Len() == 0 {
		return Vec2{}
	}
	return g.Points[0].PositionChange()
}

// fingerSpan returns the vectors from finger 0 to finger 1, before and
// after the latest samples.
func fingerSpan(g *TouchGroup) (prev, cur Vec2, ok bool) {
	if g.Len() < 2 {
		return Vec2{}, Vec2{}, false
	}
	a, b := g.Points[0], g.Points[1]
	return b.Previous.Sub(a.Previous), b.Current.Sub(a.Current), true
}

// RotationDelta returns the angle the line through the first two fingers
// turned by in the latest samples. Groups with fewer fingers give 0.
func RotationDelta(g *TouchGroup) float64 {
	prev, cur, ok := fingerSpan(g)
	if !ok {
		return 0
	}
	return AngleBetween(prev, cur)
}

// SpreadDelta returns how much the distance between the first two fingers
// changed in the latest samples. Groups with fewer fingers give 0.
func SpreadDelta(g *TouchGroup) float64 {
	prev, cur, ok := fingerSpan(g)
	if !ok {
		return 0
	}
	return cur.Len() - prev.Len()
}

// Manipulator gives a node the standard tabletop behavior: touching it
// brings it to front, one finger drags it, two fingers rotate and resize it.
// With Droppable set, a single-finger drag also looks for drop containers
// under it and drops onto the one found when the finger lifts.
type Manipulator struct {
	MinScale, MaxScale float64
	Droppable          bool
	DropMode           DropMode

	// OnChanged, if set, runs after every user manipulation.
	OnChanged func(n *Node)

	node    *Node
	surface *Surface
	set     *GestureSet
	drop    *DropController
}

// NewManipulator binds the standard gestures of surface's catalog to n and
// tags n as a gesture target.
func NewManipulator(s *Surface, n *Node) *Manipulator {
	m := &Manipulator{
		MinScale: DefaultMinScale,
		MaxScale: DefaultMaxScale,
		node:     n,
		surface:  s,
		set:      NewGestureSet(s.Manager(), n),
	}
	n.Tag(CapGestureTarget | CapDraggable)
	c := s.Catalog()
	m.set.Add(GestureFingersChanged, c.FingerCountChanged, m.fingersChanged)
	m.set.Add(GestureDrag, c.DragAndDrop, m.dragged)
	m.set.Add(GestureRotate, c.Rotate, m.rotated)
	m.set.Add(GestureResize, c.Resize, m.resized)
	return m
}

// Node returns the manipulated node.
func (m *Manipulator) Node() *Node { return m.node }

// Gestures returns the manipulator's bindings, e.g. to disable rotation.
func (m *Manipulator) Gestures() *GestureSet { return m.set }

// Dragging reports whether a drop-aware drag is in progress.
func (m *Manipulator) Dragging() bool { return m.drop != nil }

// Detach removes every binding the manipulator added.
func (m *Manipulator) Detach() {
	m.set.RemoveAll()
	m.drop = nil
}

func (m *Manipulator) fingersChanged(_ *Node, g *TouchGroup) {
	m.node.BringToFront()
	if m.drop == nil {
		return
	}
	for _, p := range g.Points {
		switch p.Phase {
		case PhaseDown:
			// Another finger landed: no longer a single-finger drag.
			m.drop.Abort(p)
			m.drop = nil
			return
		case PhaseUp:
			if g.Len() == 1 {
				m.drop.DoDrop(p)
			} else {
				m.drop.Abort(p)
			}
			m.drop = nil
			return
		}
	}
}

func (m *Manipulator) dragged(_ *Node, g *TouchGroup) {
	m.surface.StopAnimations(m.node)
	p := g.Points[0]
	m.moveWorld(p.Previous, p.Current)
	m.changed()
	// The UP is handled by fingersChanged, which ran first.
	if !m.Droppable || p.Phase == PhaseUp {
		return
	}
	if m.drop == nil {
		m.drop = NewDropController(m.surface.Root(), m.node, m.DropMode)
	}
	m.drop.TestDrop(p)
}

func (m *Manipulator) rotated(_ *Node, g *TouchGroup) {
	d := RotationDelta(g)
	if d == 0 {
		return
	}
	m.surface.StopAnimations(m.node)
	m.keepCenter(func() { m.node.SetRotation(m.node.Rotation + d) })
	m.changed()
}

func (m *Manipulator) resized(_ *Node, g *TouchGroup) {
	d := SpreadDelta(g)
	if d == 0 || m.node.Width == 0 {
		return
	}
	m.surface.StopAnimations(m.node)
	factor := (m.node.Width*m.node.ScaleX + d) / m.node.Width
	if factor < m.MinScale || factor > m.MaxScale {
		return
	}
	m.keepCenter(func() { m.node.SetScale(factor, factor) })
	m.changed()
}

func (m *Manipulator) changed() {
	if m.OnChanged != nil {
		m.OnChanged(m.node)
	}
}

// moveWorld moves the node by the world-space offset from -> to, expressed
// in its parent's coordinates.
func (m *Manipulator) moveWorld(from, to Vec2) {
	n := m.node
	if n.Parent == nil {
		n.MoveBy(to.X-from.X, to.Y-from.Y)
		return
	}
	fx, fy := n.Parent.WorldToLocal(from.X, from.Y)
	tx, ty := n.Parent.WorldToLocal(to.X, to.Y)
	n.MoveBy(tx-fx, ty-fy)
}

// keepCenter applies change and then moves the node so that its world
// center stays where it was.
func (m *Manipulator) keepCenter(change func()) {
	before := m.node.Center()
	change()
	m.moveWorld(m.node.Center(), before)
}
