package touchkit

// Draggable is anything that can be dragged onto a drop container.
// *Node implements it.
type Draggable interface {
	Center() Vec2
}

// DropMode selects which point is used to find the drop container.
type DropMode uint8

const (
	ModeTouchPoint   DropMode = iota // the finger driving the drag
	ModeObjectCenter                 // the dragged object's center
)

// DropController tracks one drag interaction: which drop container the
// dragged object is hovering over, with enter/exit notifications as that
// changes, and the final drop.
type DropController struct {
	root    *Node
	dragged Draggable
	mode    DropMode
	hovered *Node
}

// NewDropController creates a controller for dragging obj over the drop
// containers below root.
func NewDropController(root *Node, obj Draggable, mode DropMode) *DropController {
	return &DropController{root: root, dragged: obj, mode: mode}
}

// Dragged returns the object being dragged.
func (d *DropController) Dragged() Draggable {
	return d.dragged
}

// Mode returns the controller's drop mode.
func (d *DropController) Mode() DropMode {
	return d.mode
}

// Hovered returns the drop container currently hovered, or nil.
func (d *DropController) Hovered() *Node {
	return d.hovered
}

// ContainerAt returns the drop container for p without notifying anyone.
func (d *DropController) ContainerAt(p *TouchPoint) *Node {
	at := p.Current
	if d.mode == ModeObjectCenter {
		at = d.dragged.Center()
	}
	self, _ := d.dragged.(*Node)
	return Resolve(d.root, at, CapDropContainer, func(n *Node) bool {
		// A node cannot be dropped into itself or its own subtree.
		return n.Is(CapDropContainer) && (self == nil || !isAncestor(self, n))
	})
}

// TestDrop resolves the container under p and, when it differs from the one
// hovered so far, notifies the old container of the exit and the new one of
// the enter. It returns the container found, or nil.
func (d *DropController) TestDrop(p *TouchPoint) *Node {
	c := d.ContainerAt(p)
	if c == d.hovered {
		return c
	}
	if d.hovered != nil {
		d.notify(d.hovered, d.hovered.OnDragExit, p)
	}
	if c != nil {
		d.notify(c, c.OnDragEnter, p)
	}
	d.hovered = c
	return c
}

// DoDrop resolves the container under p and delivers the drop to it. Hover
// state is left unchanged. It returns the container, or nil.
func (d *DropController) DoDrop(p *TouchPoint) *Node {
	c := d.ContainerAt(p)
	if c != nil {
		d.notify(c, c.OnDragDrop, p)
	}
	return c
}

// Abort sends an exit to the hovered container, if any, and clears it.
func (d *DropController) Abort(p *TouchPoint) {
	if d.hovered == nil {
		return
	}
	d.notify(d.hovered, d.hovered.OnDragExit, p)
	d.hovered = nil
}

func (d *DropController) notify(c *Node, fn func(DropContext), p *TouchPoint) {
	if fn == nil {
		return
	}
	fn(DropContext{Container: c, Dragged: d.dragged, Point: p.Clone()})
}
