package touchkit

// Thresholds holds every tunable limit of the gesture catalog.
type Thresholds struct {
	TapLength           int64   // ms
	HoldLength          int64   // ms
	DoubleTapBreak      int64   // ms
	DragThreshold       float64 // px
	StationaryTolerance float64 // px
	LineMinRelative     float64
	LineStraightness    float64
	LineMinPath         int
}

// DefaultThresholds returns the stock limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TapLength:           TapLength,
		HoldLength:          HoldLength,
		DoubleTapBreak:      DoubleTapBreak,
		DragThreshold:       DragThreshold,
		StationaryTolerance: StationaryTolerance,
		LineMinRelative:     LineMinRelative,
		LineStraightness:    LineStraightness,
		LineMinPath:         LineMinPath,
	}
}

// Catalog names. These are also the names ByName accepts.
const (
	NameTouchDown          = "touch_down"
	NameTouchUp            = "touch_up"
	NameFingerCountChanged = "finger_count_changed"
	NameTap                = "tap"
	NameHold               = "hold"
	NameTwoFingerTap       = "two_finger_tap"
	NameTwoFingerHold      = "two_finger_hold"
	NameDoubleTap          = "double_tap"
	NameTwoFingerDoubleTap = "two_finger_double_tap"
	NameDragAndDrop        = "drag_and_drop"
	NameRotate             = "rotate"
	NameResize             = "resize"
	NameThreeFingerMove    = "three_finger_move"
	NameTenFingerMove      = "ten_finger_move"
	NameLine               = "line"
)

// Catalog is the fixed set of gesture instances shared by every binding.
// Build it once at startup and pass its gestures to AddGesture.
type Catalog struct {
	TouchDown          *Gesture
	TouchUp            *Gesture
	FingerCountChanged *Gesture
	Tap                *Gesture
	Hold               *Gesture
	TwoFingerTap       *Gesture
	TwoFingerHold      *Gesture
	DoubleTap          *Gesture
	TwoFingerDoubleTap *Gesture
	DragAndDrop        *Gesture
	Rotate             *Gesture
	Resize             *Gesture
	ThreeFingerMove    *Gesture
	TenFingerMove      *Gesture
	Line               *Gesture

	thresholds Thresholds
	all        []*Gesture
	byName     map[string]*Gesture
}

// Defined is the catalog built from DefaultThresholds.
var Defined = NewCatalog(DefaultThresholds())

// NewCatalog builds every catalog gesture from t.
func NewCatalog(t Thresholds) *Catalog {
	tap := func(fingers int) HoldRule {
		return HoldRule{Fingers: fingers, Duration: t.TapLength, Mode: AtMost, Tolerance: t.StationaryTolerance}
	}
	hold := func(fingers int) HoldRule {
		return HoldRule{Fingers: fingers, Duration: t.HoldLength, Mode: AtLeast, Tolerance: t.StationaryTolerance}
	}
	move := func(fingers int) FingerRule {
		return FingerRule{Fingers: fingers, Finger: MovedMoreThan(t.DragThreshold)}
	}

	c := &Catalog{
		TouchDown:          NewGesture(NameTouchDown, EdgeRule{Phase: PhaseDown}),
		TouchUp:            NewGesture(NameTouchUp, EdgeRule{Phase: PhaseUp}),
		FingerCountChanged: NewGesture(NameFingerCountChanged, FingerCountChangedRule{}),
		Tap:                NewGesture(NameTap, tap(1)),
		Hold:               NewGesture(NameHold, hold(1)),
		TwoFingerTap:       NewGesture(NameTwoFingerTap, tap(2)),
		TwoFingerHold:      NewGesture(NameTwoFingerHold, hold(2)),
		DoubleTap:          NewGesture(NameDoubleTap, NewDoubleTapRule(tap(1), t.DoubleTapBreak)),
		TwoFingerDoubleTap: NewGesture(NameTwoFingerDoubleTap, NewDoubleTapRule(tap(2), t.DoubleTapBreak)),
		DragAndDrop:        NewGesture(NameDragAndDrop, move(1)),
		Rotate:             NewGesture(NameRotate, move(2)),
		Resize:             NewGesture(NameResize, move(2)),
		ThreeFingerMove:    NewGesture(NameThreeFingerMove, move(3)),
		TenFingerMove:      NewGesture(NameTenFingerMove, move(10)),
		Line: NewGesture(NameLine, LineRule{
			MinRelative:  t.LineMinRelative,
			Straightness: t.LineStraightness,
			MinPath:      t.LineMinPath,
		}),
		thresholds: t,
	}
	c.all = []*Gesture{
		c.TouchDown, c.TouchUp, c.FingerCountChanged,
		c.Tap, c.Hold, c.TwoFingerTap, c.TwoFingerHold,
		c.DoubleTap, c.TwoFingerDoubleTap,
		c.DragAndDrop, c.Rotate, c.Resize, c.ThreeFingerMove, c.TenFingerMove,
		c.Line,
	}
	c.byName = make(map[string]*Gesture, len(c.all))
	for _, g := range c.all {
		c.byName[g.Name()] = g
	}
	return c
}

// Thresholds returns the limits the catalog was built with.
func (c *Catalog) Thresholds() Thresholds {
	return c.thresholds
}

// ByName returns the gesture with the given name, or nil.
func (c *Catalog) ByName(name string) *Gesture {
	return c.byName[name]
}

// All returns every gesture in the catalog. The slice must not be modified.
func (c *Catalog) All() []*Gesture {
	return c.all
}

// Forget drops per-target state (pending double taps) held for target.
func (c *Catalog) Forget(target *Node) {
	for _, g := range c.all {
		if dt, ok := g.Rule().(*DoubleTapRule); ok {
			dt.Forget(target)
		}
	}
}
