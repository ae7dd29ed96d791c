package touchkit

// HitResult tells HitTest whether to keep walking.
type HitResult uint8

const (
	HitContinue HitResult = iota // visit the next node
	HitStop                      // end the traversal
)

// collectUnder appends, front to back, every node of n's subtree that lies
// under p. A node is under p when its own hit region contains p or when one
// of its descendants does; parents come before their children and the
// topmost sibling comes first. Invisible or non-interactable subtrees are
// skipped entirely.
func collectUnder(n *Node, p Vec2, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	start := len(buf)
	buf = append(buf, n)
	children := n.sortedChildList()
	for i := len(children) - 1; i >= 0; i-- {
		buf = collectUnder(children[i], p, buf)
	}
	if len(buf) == start+1 && !n.ContainsWorld(p) {
		buf = buf[:start]
	}
	return buf
}

// HitTest walks the nodes under p front to back, calling visit for each
// until it returns HitStop. It returns the topmost node visited whose own
// hit region contains p, or nil.
func HitTest(root *Node, p Vec2, visit func(*Node) HitResult) *Node {
	if root == nil {
		return nil
	}
	UpdateTransforms(root)
	var top *Node
	for _, n := range collectUnder(root, p, nil) {
		if visit(n) == HitStop {
			break
		}
		if top == nil && n.ContainsWorld(p) {
			top = n
		}
	}
	return top
}

// Resolve finds the best target under p.
//
// Nodes carrying the boundary capability delimit compound widgets. The first
// boundary node met opens a widget; the search continues inside it (a nested
// boundary node narrows the widget further) and stops at the first boundary
// node that lies outside the current widget, since everything from there on
// belongs to something behind it. Every node accepted by valid before the
// stop replaces the previous match, so the deepest, most specific match wins.
//
// Returns nil when nothing qualifies.
func Resolve(root *Node, p Vec2, boundary Capability, valid func(*Node) bool) *Node {
	var widget, best *Node
	HitTest(root, p, func(n *Node) HitResult {
		if n.Is(boundary) {
			if widget != nil && !isAncestor(widget, n) {
				return HitStop
			}
			widget = n
		}
		if valid != nil && valid(n) {
			best = n
		}
		return HitContinue
	})
	return best
}

// ResolveCapability returns the most specific node under p carrying c,
// without crossing into a compound widget behind the first one found.
func ResolveCapability(root *Node, p Vec2, c Capability) *Node {
	return Resolve(root, p, c, func(n *Node) bool { return n.Is(c) })
}
