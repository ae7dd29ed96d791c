package touchkit

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the center of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Phase is the transition a touch point went through in its latest sample.
type Phase uint8

const (
	PhaseDown Phase = iota // finger just landed
	PhaseMove              // finger moved
	PhaseUp                // finger just lifted
	PhaseAny               // wildcard; only used in queries, never stored on a point
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseAny:
		return "any"
	default:
		return "unknown"
	}
}

// Capability is a bit set of tags a node exposes to the resolver.
// Values can be combined with bitwise OR (e.g. CapGestureTarget | CapDropContainer).
type Capability uint32

const (
	CapGestureTarget Capability = 1 << iota // root of a compound widget that receives gestures
	CapDropContainer                        // accepts dragged objects
	CapDraggable                            // can be dragged onto drop containers
	CapUser                                 // first bit free for application-defined tags
)

// Has reports whether c contains every bit of other.
func (c Capability) Has(other Capability) bool {
	return other != 0 && c&other == other
}

// Default gesture thresholds.
const (
	TapLength             = 200  // ms, longest touch still counted as a tap
	HoldLength            = 1000 // ms, shortest touch counted as a hold
	DoubleTapBreak        = 500  // ms, longest pause between the taps of a double tap
	DragThreshold         = 20   // px a finger must travel before drag/rotate/resize fire
	StationaryTolerance   = 50   // px a tapping or holding finger may wander
	LineMinRelative       = 0.5  // fraction of the surface a line swipe must cover
	LineStraightness      = 0.9  // min ratio of chord to path length for a line swipe
	LineMinPath           = 4    // a line swipe needs more recorded positions than this
	DefaultFeedbackMillis = 500  // lifetime of a touch feedback bubble
)
