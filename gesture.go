package touchkit

// Rule is the variant-specific predicate of a gesture. Match must not keep
// references to group beyond the call; the group is a snapshot owned by the
// caller.
type Rule interface {
	Match(target *Node, group *TouchGroup) bool
}

// RuleFunc adapts an ordinary function to Rule.
type RuleFunc func(target *Node, group *TouchGroup) bool

// Match calls f(target, group).
func (f RuleFunc) Match(target *Node, group *TouchGroup) bool {
	return f(target, group)
}

// ValidationEvent is what observers see around a validation. Group is a
// private copy, so observers cannot influence the result.
type ValidationEvent struct {
	Gesture   string
	Target    *Node
	Group     *TouchGroup
	Validated bool // false before the rule ran, true after
	Valid     bool // result of the rule; only meaningful when Validated
}

type observerEntry struct {
	id uint32
	fn func(ValidationEvent)
}

// Gesture is a named, reusable classification rule. One instance is shared
// by every target it is bound to; rules that keep per-target state key it by
// target.
type Gesture struct {
	name      string
	rule      Rule
	inactive  bool
	observers []observerEntry
	nextID    uint32
}

// NewGesture wraps rule under the given name. Gestures start active.
func NewGesture(name string, rule Rule) *Gesture {
	return &Gesture{name: name, rule: rule}
}

// Name returns the gesture's catalog name.
func (g *Gesture) Name() string {
	return g.name
}

// Rule returns the gesture's predicate.
func (g *Gesture) Rule() Rule {
	return g.rule
}

// Active reports whether the gesture is enabled.
func (g *Gesture) Active() bool {
	return !g.inactive
}

// SetActive enables or disables the gesture for every target it is bound to.
func (g *Gesture) SetActive(active bool) {
	g.inactive = !active
}

// ObserverHandle allows removing a registered observer.
type ObserverHandle struct {
	id uint32
	g  *Gesture
}

// Remove unregisters the observer so it no longer fires.
func (h ObserverHandle) Remove() {
	if h.g == nil {
		return
	}
	s := h.g.observers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = observerEntry{}
			h.g.observers = s[:len(s)-1]
			return
		}
	}
}

// Observe registers fn to be called before and after every validation of
// this gesture. Observers are for diagnostics and feedback only.
func (g *Gesture) Observe(fn func(ValidationEvent)) ObserverHandle {
	g.nextID++
	g.observers = append(g.observers, observerEntry{id: g.nextID, fn: fn})
	return ObserverHandle{id: g.nextID, g: g}
}

// Validate reports whether group, touching target, satisfies the gesture.
// An inactive gesture is false without consulting its rule.
func (g *Gesture) Validate(target *Node, group *TouchGroup) bool {
	if g.inactive || group == nil {
		return false
	}
	g.notify(ValidationEvent{Gesture: g.name, Target: target}, group)
	valid := g.rule.Match(target, group)
	g.notify(ValidationEvent{Gesture: g.name, Target: target, Validated: true, Valid: valid}, group)
	return valid
}

func (g *Gesture) notify(ev ValidationEvent, group *TouchGroup) {
	if len(g.observers) == 0 {
		return
	}
	// Observers may unregister themselves; iterate over a stable view.
	obs := append([]observerEntry(nil), g.observers...)
	for _, o := range obs {
		ev.Group = group.Copy()
		o.fn(ev)
	}
}
