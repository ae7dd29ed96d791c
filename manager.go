package touchkit

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GestureCallback is invoked when a bound gesture matches. group is the
// snapshot the gesture was validated against; the callback may keep it.
type GestureCallback func(target *Node, group *TouchGroup)

// Binding associates a target, a gesture and a callback. Bindings are
// created by Manager.AddGesture and identified by target, gesture and
// callback together.
type Binding struct {
	ID       uuid.UUID
	Target   *Node
	Gesture  *Gesture
	Callback GestureCallback

	// Active bindings take part in classification. Toggling it is cheaper
	// than removing and re-adding the binding.
	Active bool

	key     any
	removed bool
}

// GestureEvent describes one fired binding, for consumers outside the
// callback path (see EventSink).
type GestureEvent struct {
	Gesture   string
	BindingID uuid.UUID
	TargetID  uint32
	EntityID  uint32
	Fingers   int
	CenterX   float64
	CenterY   float64
}

// EventSink receives a GestureEvent for every binding that fires.
type EventSink interface {
	EmitGesture(GestureEvent)
}

// TouchHandler consumes fully populated touch points. *Manager implements it.
type TouchHandler interface {
	TouchDown(p *TouchPoint)
	TouchMove(p *TouchPoint)
	TouchUp(p *TouchPoint)
}

// Manager owns the gesture bindings and the table of live touch groups, and
// classifies every touch event against the bindings of the touched target.
//
// A Manager is not safe for concurrent use; every call must come from the
// same goroutine (see Dispatcher).
type Manager struct {
	root     *Node
	bindings []*Binding
	groups   map[*Node]*TouchGroup

	log  zerolog.Logger
	sink EventSink

	debug    bool
	watching map[*Gesture]ObserverHandle
}

// NewManager creates a manager resolving targets under root.
func NewManager(root *Node) *Manager {
	return &Manager{
		root:   root,
		groups: make(map[*Node]*TouchGroup),
		log:    zerolog.Nop(),
	}
}

// Root returns the node targets are resolved under.
func (m *Manager) Root() *Node {
	return m.root
}

// SetLogger replaces the manager's logger.
func (m *Manager) SetLogger(l zerolog.Logger) {
	m.log = l
}

// SetEventSink sets the sink that receives an event per fired binding.
// nil disables it.
func (m *Manager) SetEventSink(s EventSink) {
	m.sink = s
}

// SetDebugMode enables logging of every validation of every bound gesture.
func (m *Manager) SetDebugMode(enabled bool) {
	m.debug = enabled
	if enabled {
		for _, b := range m.bindings {
			m.watch(b.Gesture)
		}
		return
	}
	for g, h := range m.watching {
		h.Remove()
		delete(m.watching, g)
	}
}

func (m *Manager) watch(g *Gesture) {
	if m.watching == nil {
		m.watching = make(map[*Gesture]ObserverHandle)
	}
	if _, ok := m.watching[g]; ok {
		return
	}
	m.watching[g] = g.Observe(func(ev ValidationEvent) {
		if !ev.Validated {
			return
		}
		var target uint32
		if ev.Target != nil {
			target = ev.Target.ID
		}
		m.log.Debug().
			Str("gesture", ev.Gesture).
			Uint32("target", target).
			Int("fingers", ev.Group.Len()).
			Bool("valid", ev.Valid).
			Msg("validated")
	})
}

// --- Bindings ---

// AddGesture binds gesture to target. Adding a binding identical to an
// existing one (same target, gesture and callback function) returns the
// existing binding. Callbacks are compared by code pointer, so closures
// created by the same function literal, e.g. in a loop, count as the same
// callback; use AddGestureKey to keep them apart.
func (m *Manager) AddGesture(target *Node, gesture *Gesture, cb GestureCallback) *Binding {
	if cb == nil {
		panic("touchkit: AddGesture needs a target, a gesture and a callback")
	}
	return m.AddGestureKey(target, gesture, funcKey(reflect.ValueOf(cb).Pointer()), cb)
}

// funcKey is the identity AddGesture gives a callback.
type funcKey uintptr

// AddGestureKey is AddGesture with an explicit identity: a binding with the
// same target, gesture and key is returned instead of adding cb. key must
// be comparable.
func (m *Manager) AddGestureKey(target *Node, gesture *Gesture, key any, cb GestureCallback) *Binding {
	if target == nil || gesture == nil || cb == nil {
		panic("touchkit: AddGesture needs a target, a gesture and a callback")
	}
	for _, b := range m.bindings {
		if b.Target == target && b.Gesture == gesture && b.key == key {
			m.log.Debug().Str("gesture", gesture.Name()).Uint32("target", target.ID).Msg("duplicate binding")
			return b
		}
	}
	b := &Binding{
		ID:       uuid.New(),
		Target:   target,
		Gesture:  gesture,
		Callback: cb,
		Active:   true,
		key:      key,
	}
	m.bindings = append(m.bindings, b)
	if m.debug {
		m.watch(gesture)
	}
	return b
}

// RemoveGesture unregisters b. Later events on its target ignore it, even
// one that is being classified right now.
func (m *Manager) RemoveGesture(b *Binding) {
	if b == nil {
		return
	}
	for i, x := range m.bindings {
		if x == b {
			copy(m.bindings[i:], m.bindings[i+1:])
			m.bindings[len(m.bindings)-1] = nil
			m.bindings = m.bindings[:len(m.bindings)-1]
			b.removed = true
			return
		}
	}
}

// RemoveTarget unregisters every binding on target and drops its live group.
func (m *Manager) RemoveTarget(target *Node) {
	kept := m.bindings[:0]
	for _, b := range m.bindings {
		if b.Target == target {
			b.removed = true
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(m.bindings); i++ {
		m.bindings[i] = nil
	}
	m.bindings = kept
	delete(m.groups, target)
}

// HasGesture reports whether target has at least one binding.
func (m *Manager) HasGesture(target *Node) bool {
	for _, b := range m.bindings {
		if b.Target == target {
			return true
		}
	}
	return false
}

// BindingsFor returns target's bindings in registration order, optionally
// only the active ones.
func (m *Manager) BindingsFor(target *Node, onlyActive bool) []*Binding {
	var out []*Binding
	for _, b := range m.bindings {
		if b.Target == target && (!onlyActive || b.Active) {
			out = append(out, b)
		}
	}
	return out
}

// NumBindings returns the number of registered bindings.
func (m *Manager) NumBindings() int {
	return len(m.bindings)
}

// --- Live groups ---

// TargetAt returns the gesture target under p: the most specific node with
// at least one binding, without leaving the first compound widget found.
func (m *Manager) TargetAt(p Vec2) *Node {
	return Resolve(m.root, p, CapGestureTarget, m.HasGesture)
}

// TouchGroupFor returns the live group holding the given session, or nil.
func (m *Manager) TouchGroupFor(id SessionID) *TouchGroup {
	for _, g := range m.groups {
		if g.Contains(id) {
			return g
		}
	}
	return nil
}

// GroupOf returns target's live group, or nil.
func (m *Manager) GroupOf(target *Node) *TouchGroup {
	return m.groups[target]
}

// NumGroups returns the number of live groups.
func (m *Manager) NumGroups() int {
	return len(m.groups)
}

// ClearGroups drops every live group. Use it when a touch source has lost
// UP events and phantom contacts block gestures.
func (m *Manager) ClearGroups() {
	m.log.Info().Int("groups", len(m.groups)).Msg("clearing touch groups")
	clear(m.groups)
}

// --- Touch events ---

// TouchDown groups p with the other fingers on the target under it and
// classifies the group. Touches that hit no target are dropped.
func (m *Manager) TouchDown(p *TouchPoint) {
	if m.TouchGroupFor(p.ID) != nil {
		m.log.Debug().Int64("session", int64(p.ID)).Msg("down for live session ignored")
		return
	}
	target := m.TargetAt(p.Current)
	if target == nil {
		return
	}
	g, ok := m.groups[target]
	if ok {
		g.Add(p.Clone())
	} else {
		g = NewTouchGroup(target, p.Clone())
		m.groups[target] = g
		m.log.Debug().Uint32("target", target.ID).Str("name", target.Name).Msg("group created")
	}
	m.classify(target, g)
}

// TouchMove updates the stored point of p's session and classifies its group.
func (m *Manager) TouchMove(p *TouchPoint) {
	g := m.TouchGroupFor(p.ID)
	if g == nil {
		m.log.Debug().Int64("session", int64(p.ID)).Msg("move for unknown session")
		return
	}
	if stored := g.Get(p.ID); stored != p {
		*stored = *p
	}
	m.classify(g.Target, g)
}

// TouchUp classifies p's group with the lifted finger still in it, then
// removes the finger and drops the group once it is empty.
func (m *Manager) TouchUp(p *TouchPoint) {
	g := m.TouchGroupFor(p.ID)
	if g == nil {
		m.log.Debug().Int64("session", int64(p.ID)).Msg("up for unknown session")
		return
	}
	if stored := g.Get(p.ID); stored != p {
		*stored = *p
	}
	target := g.Target
	m.classify(target, g)

	// A callback may have cleared the table.
	if m.groups[target] != g {
		return
	}
	g.Remove(p.ID)
	if g.Len() == 0 {
		delete(m.groups, target)
		m.log.Debug().Uint32("target", target.ID).Str("name", target.Name).
			Int("fingers", g.MaxConcurrent()).Msg("group destroyed")
	}
}

// classify validates a fresh snapshot of g against every active binding on
// target and runs the callbacks of those that match.
func (m *Manager) classify(target *Node, g *TouchGroup) {
	var buf [8]*Binding
	todo := buf[:0]
	for _, b := range m.bindings {
		if b.Target == target && b.Active {
			todo = append(todo, b)
		}
	}
	for _, b := range todo {
		if b.removed || !b.Active {
			continue
		}
		snap := g.Copy()
		if !b.Gesture.Validate(target, snap) {
			continue
		}
		b.Callback(target, snap)
		m.emit(b, snap)
	}
}

func (m *Manager) emit(b *Binding, snap *TouchGroup) {
	if m.debug {
		m.log.Debug().Str("gesture", b.Gesture.Name()).Uint32("target", b.Target.ID).
			Int("fingers", snap.Len()).Msg("gesture fired")
	}
	if m.sink == nil {
		return
	}
	c := snap.Center()
	m.sink.EmitGesture(GestureEvent{
		Gesture:   b.Gesture.Name(),
		BindingID: b.ID,
		TargetID:  b.Target.ID,
		EntityID:  b.Target.EntityID,
		Fingers:   snap.Len(),
		CenterX:   c.X,
		CenterY:   c.Y,
	})
}
