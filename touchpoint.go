package touchkit

import "math"

// SessionID identifies one continuous finger contact for its whole lifetime.
type SessionID int64

// TouchPoint is one finger's contact and its derived motion and timing
// metrics. Points are created on DOWN, advanced on every MOVE and marked UP
// once; after the UP has been dispatched the point is discarded.
type TouchPoint struct {
	ID    SessionID
	Phase Phase

	Start    Vec2
	Current  Vec2
	Previous Vec2

	StartTime   int64 // ms
	CurrentTime int64 // ms

	// PathLength counts the distinct positions recorded since DOWN.
	PathLength int
	// Distance is the cumulative path length in pixels.
	Distance float64
	// DistanceRelative is the cumulative path length measured in units of the
	// reference extent (1.0 == one full surface width/height). Not clamped.
	DistanceRelative float64
}

// NewTouchPoint creates a point in the DOWN phase at pos.
func NewTouchPoint(id SessionID, pos Vec2, timeMs int64) *TouchPoint {
	return &TouchPoint{
		ID:          id,
		Phase:       PhaseDown,
		Start:       pos,
		Current:     pos,
		Previous:    pos,
		StartTime:   timeMs,
		CurrentTime: timeMs,
		PathLength:  1,
	}
}

// Duration returns the elapsed contact time in milliseconds.
func (p *TouchPoint) Duration() int64 {
	return p.CurrentTime - p.StartTime
}

// PositionChange returns the vector from the previous to the current position.
func (p *TouchPoint) PositionChange() Vec2 {
	return p.Current.Sub(p.Previous)
}

// Advance records a new sample. extent is the reference size used for
// DistanceRelative; a zero component disables that axis.
func (p *TouchPoint) Advance(phase Phase, pos Vec2, timeMs int64, extent Vec2) {
	p.Phase = phase
	p.Previous = p.Current
	p.CurrentTime = timeMs
	if pos == p.Current {
		return
	}
	d := pos.Sub(p.Current)
	p.Distance += d.Len()
	var rx, ry float64
	if extent.X > 0 {
		rx = d.X / extent.X
	}
	if extent.Y > 0 {
		ry = d.Y / extent.Y
	}
	p.DistanceRelative += math.Hypot(rx, ry)
	p.PathLength++
	p.Current = pos
}

// Clone returns an independent copy of the point.
func (p *TouchPoint) Clone() *TouchPoint {
	c := *p
	return &c
}
