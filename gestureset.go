package touchkit

// GestureSet is an object's named view of its bindings. Objects made of
// several nodes add all their gestures through one set, so they can toggle
// a gesture by name and tear everything down at once.
type GestureSet struct {
	m      *Manager
	target *Node
	named  map[string]*Binding
	order  []string
}

// setKey identifies a set's binding by name, so that different names never
// collapse into one binding.
type setKey struct {
	set  *GestureSet
	name string
}

// NewGestureSet creates a set whose Add binds to target.
func NewGestureSet(m *Manager, target *Node) *GestureSet {
	return &GestureSet{m: m, target: target, named: make(map[string]*Binding)}
}

// Target returns the set's default target.
func (s *GestureSet) Target() *Node {
	return s.target
}

// Add binds gesture to the set's target under name.
func (s *GestureSet) Add(name string, gesture *Gesture, cb GestureCallback) *Binding {
	return s.AddOn(name, s.target, gesture, cb)
}

// AddOn binds gesture to another node (usually a part of the object) under
// name. A binding already registered under name is removed first.
func (s *GestureSet) AddOn(name string, target *Node, gesture *Gesture, cb GestureCallback) *Binding {
	if old, ok := s.named[name]; ok {
		s.m.RemoveGesture(old)
	} else {
		s.order = append(s.order, name)
	}
	b := s.m.AddGestureKey(target, gesture, setKey{s, name}, cb)
	s.named[name] = b
	return b
}

// Get returns the binding registered under name, or nil.
func (s *GestureSet) Get(name string) *Binding {
	return s.named[name]
}

// Names returns the registered names in the order they were first added.
func (s *GestureSet) Names() []string {
	return s.order
}

// SetActive enables or disables the binding registered under name.
// Unknown names are ignored.
func (s *GestureSet) SetActive(name string, active bool) {
	if b, ok := s.named[name]; ok {
		b.Active = active
	}
}

// RemoveAll unregisters every binding of the set.
func (s *GestureSet) RemoveAll() {
	for _, name := range s.order {
		s.m.RemoveGesture(s.named[name])
	}
	clear(s.named)
	s.order = s.order[:0]
}
