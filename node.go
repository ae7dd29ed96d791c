package touchkit

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// DropContext carries drag-and-drop notification data to a drop container.
type DropContext struct {
	Container *Node       // node receiving the notification
	Dragged   Draggable   // object being dragged
	Point     *TouchPoint // snapshot of the finger driving the drag
}

// --- ID counter ---

// nodeIDCounter is a plain counter; nodes are only created on the gesture goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the scene graph element the resolver walks and gestures bind to.
// A single flat struct is used for every kind of node; what a node means to
// the pipeline is expressed through Capabilities, not through its Go type.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians
	PivotX   float64
	PivotY   float64

	// Size in local units; the default hit region when HitShape is nil.
	Width, Height float64

	worldTransform [6]float64
	transformDirty bool

	// Visibility & interaction
	Alpha        float64 // presentation hint for renderers, 0..1
	Visible      bool
	Interactable bool
	Capabilities Capability

	// Ordering
	ZIndex int

	// Metadata
	UserData any
	EntityID uint32

	// Hit testing
	HitShape HitShape

	// Drop container callbacks (nil by default).
	OnDragEnter func(DropContext)
	OnDragExit  func(DropContext)
	OnDragDrop  func(DropContext)

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// NewNode creates an interactable node of the given size.
func NewNode(name string, width, height float64) *Node {
	n := &Node{Name: name, Width: width, Height: height, Interactable: true}
	nodeDefaults(n)
	return n
}

// NewContainer creates a node with no hit region of its own. Its children
// are still hit-tested.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Interactable: true}
	nodeDefaults(n)
	return n
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Visible = true
	n.transformDirty = true
	n.childrenSorted = true
	n.worldTransform = identityTransform
}

// Is reports whether the node carries every bit of c.
func (n *Node) Is(c Capability) bool {
	return n.Capabilities.Has(c)
}

// Tag adds capability bits to the node.
func (n *Node) Tag(c Capability) {
	n.Capabilities |= c
}

// Untag removes capability bits from the node.
func (n *Node) Untag(c Capability) {
	n.Capabilities &^= c
}

// Center returns the world-space center of the node's local bounds.
// Implements Draggable.
func (n *Node) Center() Vec2 {
	x, y := n.LocalToWorld(n.Width/2, n.Height/2)
	return Vec2{x, y}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("touchkit: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("touchkit: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent.childrenSorted = false
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("touchkit: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("touchkit: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent.childrenSorted = false
	}
	if index < 0 || index > len(n.children) {
		panic("touchkit: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("touchkit: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// BringToFront moves the node above all of its siblings: it becomes the last
// child and its ZIndex is raised to the highest sibling ZIndex.
func (n *Node) BringToFront() {
	p := n.Parent
	if p == nil {
		return
	}
	top := n.ZIndex
	for _, c := range p.children {
		if c != n && c.ZIndex > top {
			top = c.ZIndex
		}
	}
	p.removeChildByPtr(n)
	p.children = append(p.children, n)
	n.ZIndex = top
	p.childrenSorted = false
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// sortedChildList returns the children in painter order (back to front):
// stable by ZIndex, then insertion order.
func (n *Node) sortedChildList() []*Node {
	if n.childrenSorted && n.sortedChildren != nil && len(n.sortedChildren) == len(n.children) {
		return n.sortedChildren
	}
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	// Stable insertion sort by ZIndex.
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
	return n.sortedChildren
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.UserData = nil
	n.OnDragEnter = nil
	n.OnDragExit = nil
	n.OnDragDrop = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
