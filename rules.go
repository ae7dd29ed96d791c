package touchkit

// EdgeRule matches a group of exactly one finger whose phase equals Phase.
// PhaseAny matches every phase.
type EdgeRule struct {
	Phase Phase
}

// Match implements Rule.
func (r EdgeRule) Match(_ *Node, g *TouchGroup) bool {
	if g.Len() != 1 {
		return false
	}
	return r.Phase == PhaseAny || g.Points[0].Phase == r.Phase
}

// FingerCountChangedRule matches whenever a finger has just landed or lifted.
type FingerCountChangedRule struct{}

// Match implements Rule.
func (FingerCountChangedRule) Match(_ *Node, g *TouchGroup) bool {
	for _, p := range g.Points {
		if p.Phase == PhaseDown || p.Phase == PhaseUp {
			return true
		}
	}
	return false
}

// FingerPredicate judges one finger of a group.
type FingerPredicate func(p *TouchPoint, g *TouchGroup) bool

// FingerRule matches once exactly Fingers fingers are down together (and
// never more were) and Finger holds for at least one of them. Every finger
// is evaluated, even after one has matched.
type FingerRule struct {
	Fingers int
	Finger  FingerPredicate
}

// Match implements Rule.
func (r FingerRule) Match(_ *Node, g *TouchGroup) bool {
	if g.MaxConcurrent() != r.Fingers || g.Len() != r.Fingers {
		return false
	}
	valid := false
	for _, p := range g.Points {
		if r.Finger(p, g) {
			valid = true
		}
	}
	return valid
}

// MovedMoreThan returns a predicate that holds once a finger has travelled
// more than px pixels since it landed.
func MovedMoreThan(px float64) FingerPredicate {
	return func(p *TouchPoint, _ *TouchGroup) bool {
		return p.Distance > px
	}
}

// Comparison selects how HoldRule compares a contact's duration.
type Comparison uint8

const (
	AtMost  Comparison = iota // duration <= limit (tap)
	AtLeast                   // duration >= limit (hold)
	Exactly                   // duration == limit
)

// String returns the comparison name.
func (c Comparison) String() string {
	switch c {
	case AtMost:
		return "max"
	case AtLeast:
		return "min"
	case Exactly:
		return "equal"
	default:
		return "unknown"
	}
}

// HoldRule matches a lifted, near-stationary contact of Fingers fingers whose
// duration compares to Duration according to Mode.
type HoldRule struct {
	Fingers   int
	Duration  int64   // milliseconds
	Mode      Comparison
	Tolerance float64 // maximum travel in pixels
}

// Match implements Rule.
func (r HoldRule) Match(target *Node, g *TouchGroup) bool {
	return FingerRule{Fingers: r.Fingers, Finger: r.finger}.Match(target, g)
}

func (r HoldRule) finger(p *TouchPoint, _ *TouchGroup) bool {
	if p.Phase != PhaseUp || p.Distance > r.Tolerance {
		return false
	}
	d := p.Duration()
	switch r.Mode {
	case AtMost:
		return d <= r.Duration
	case AtLeast:
		return d >= r.Duration
	case Exactly:
		return d == r.Duration
	default:
		return false
	}
}

// LineRule matches a single finger that has just lifted after sweeping a
// long, nearly straight path.
type LineRule struct {
	MinRelative  float64 // distance relative to the surface extent
	Straightness float64 // straight-line distance / travelled distance
	MinPath      int     // recorded positions
}

// Match implements Rule.
func (r LineRule) Match(_ *Node, g *TouchGroup) bool {
	if g.MaxConcurrent() != 1 || g.Len() != 1 {
		return false
	}
	p := g.Points[0]
	if p.PathLength <= r.MinPath || p.Phase != PhaseUp {
		return false
	}
	if p.DistanceRelative <= r.MinRelative || p.Distance == 0 {
		return false
	}
	return p.Start.Dist(p.Current)/p.Distance > r.Straightness
}
