package touchkit

// TouchGroup holds every point currently touching one target, in insertion
// order. Points[0] is "finger 0". A group in the manager's live table is never
// empty; it is dropped as soon as its last point is removed.
type TouchGroup struct {
	Target *Node
	Points []*TouchPoint

	maxConcurrent int
}

// NewTouchGroup creates a group for target holding the first point.
func NewTouchGroup(target *Node, first *TouchPoint) *TouchGroup {
	g := &TouchGroup{Target: target}
	g.Add(first)
	return g
}

// Len returns the number of points currently in the group.
func (g *TouchGroup) Len() int {
	return len(g.Points)
}

// MaxConcurrent returns the highest number of simultaneous points held during
// the group's lifetime.
func (g *TouchGroup) MaxConcurrent() int {
	return g.maxConcurrent
}

// Add appends a point and raises the high-water mark if needed.
func (g *TouchGroup) Add(p *TouchPoint) {
	g.Points = append(g.Points, p)
	if len(g.Points) > g.maxConcurrent {
		g.maxConcurrent = len(g.Points)
	}
}

// Contains reports whether a point with the given session is in the group.
func (g *TouchGroup) Contains(id SessionID) bool {
	return g.Get(id) != nil
}

// Get returns the point with the given session, or nil.
func (g *TouchGroup) Get(id SessionID) *TouchPoint {
	for _, p := range g.Points {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Remove drops the point with the given session. The high-water mark is kept.
func (g *TouchGroup) Remove(id SessionID) {
	for i, p := range g.Points {
		if p.ID == id {
			copy(g.Points[i:], g.Points[i+1:])
			g.Points[len(g.Points)-1] = nil
			g.Points = g.Points[:len(g.Points)-1]
			return
		}
	}
}

// Center returns the centroid of all current positions.
func (g *TouchGroup) Center() Vec2 {
	if len(g.Points) == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, p := range g.Points {
		c = c.Add(p.Current)
	}
	n := float64(len(g.Points))
	return Vec2{c.X / n, c.Y / n}
}

// Copy returns a value snapshot: the points are cloned, so mutating the live
// group afterwards does not affect the copy and vice versa.
func (g *TouchGroup) Copy() *TouchGroup {
	c := &TouchGroup{
		Target:        g.Target,
		Points:        make([]*TouchPoint, len(g.Points)),
		maxConcurrent: g.maxConcurrent,
	}
	for i, p := range g.Points {
		c.Points[i] = p.Clone()
	}
	return c
}
