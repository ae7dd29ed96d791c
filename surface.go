package touchkit

import "github.com/rs/zerolog"

// SurfaceOptions configures NewSurfaceWith. Zero fields take defaults.
type SurfaceOptions struct {
	Width, Height  float64  // reference extent for relative distances
	Catalog        *Catalog // defaults to Defined
	FeedbackMillis int      // bubble lifetime; negative disables feedback
	Logger         *zerolog.Logger
}

// Surface is the top-level object: it owns the node tree, the gesture
// manager and the tracker feeding it, touch feedback and running tweens.
// All methods must be called from the goroutine that owns the surface.
type Surface struct {
	root     *Node
	manager  *Manager
	tracker  *Tracker
	catalog  *Catalog
	feedback *Feedback
	tweens   []*TweenGroup
	observer ObserverHandle
	log      zerolog.Logger
	debug    bool
}

// NewSurface creates a surface of the given size with default options.
func NewSurface(width, height float64) *Surface {
	return NewSurfaceWith(SurfaceOptions{Width: width, Height: height})
}

// NewSurfaceWith creates a surface from opts.
func NewSurfaceWith(opts SurfaceOptions) *Surface {
	root := NewContainer("root")
	root.Width, root.Height = opts.Width, opts.Height

	s := &Surface{
		root:    root,
		manager: NewManager(root),
		catalog: opts.Catalog,
		log:     zerolog.Nop(),
	}
	if s.catalog == nil {
		s.catalog = Defined
	}
	s.tracker = NewTracker(s.manager, Vec2{opts.Width, opts.Height})
	if opts.Logger != nil {
		s.SetLogger(*opts.Logger)
	}
	millis := opts.FeedbackMillis
	if millis == 0 {
		millis = DefaultFeedbackMillis
	}
	if millis > 0 {
		s.feedback = NewFeedback(millis)
		s.observer = s.feedback.Attach(s.catalog.TouchDown)
	}
	return s
}

// Root returns the surface's root node. Touches on the root itself reach a
// binding only if one is added to it.
func (s *Surface) Root() *Node { return s.root }

// Manager returns the gesture manager.
func (s *Surface) Manager() *Manager { return s.manager }

// Tracker returns the tracker that touch sources feed.
func (s *Surface) Tracker() *Tracker { return s.tracker }

// Catalog returns the gesture catalog bindings should use.
func (s *Surface) Catalog() *Catalog { return s.catalog }

// Feedback returns the touch feedback layer, or nil if disabled.
func (s *Surface) Feedback() *Feedback { return s.feedback }

// Extent returns the reference size of the surface.
func (s *Surface) Extent() Vec2 { return s.tracker.Extent }

// SetLogger sets the logger of the surface and its manager.
func (s *Surface) SetLogger(l zerolog.Logger) {
	s.log = l
	s.manager.SetLogger(l)
}

// SetEventSink forwards every fired binding to sink (see ecs.NewDonburiSink).
func (s *Surface) SetEventSink(sink EventSink) {
	s.manager.SetEventSink(sink)
}

// SetDebugMode enables tree sanity checks and logging of every validation.
func (s *Surface) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	s.manager.SetDebugMode(enabled)
}

// Down, Move and Up feed one raw sample into the pipeline.
func (s *Surface) Down(id SessionID, x, y float64, timeMs int64) {
	s.tracker.Down(id, Vec2{x, y}, timeMs)
}

// Move feeds a MOVE sample.
func (s *Surface) Move(id SessionID, x, y float64, timeMs int64) {
	s.tracker.Move(id, Vec2{x, y}, timeMs)
}

// Up feeds an UP sample.
func (s *Surface) Up(id SessionID, x, y float64, timeMs int64) {
	s.tracker.Up(id, Vec2{x, y}, timeMs)
}

// ClearTouches forgets every live touch, both the tracked sessions and the
// manager's groups. A touch source that loses an UP leaves a phantom finger
// behind until this is called; nothing expires on its own.
func (s *Surface) ClearTouches() {
	if s.debug {
		debugLogGroups(s.manager)
	}
	s.manager.ClearGroups()
	s.tracker.Reset()
}

// Update refreshes world transforms, advances tweens and the feedback
// layer by dt seconds.
func (s *Surface) Update(dt float32) {
	UpdateTransforms(s.root)

	// OnDone callbacks may start new tweens while we iterate.
	running := s.tweens
	s.tweens = make([]*TweenGroup, 0, len(running))
	for _, tg := range running {
		tg.Update(dt)
		if !tg.Done {
			s.tweens = append(s.tweens, tg)
		}
	}

	if s.feedback != nil {
		s.feedback.Update(dt)
	}
}

// Animate runs tg from Update until it finishes or is stopped.
func (s *Surface) Animate(tg *TweenGroup) {
	s.tweens = append(s.tweens, tg)
}

// StopAnimations stops every running tween that targets n.
func (s *Surface) StopAnimations(n *Node) {
	for _, tg := range s.tweens {
		if tg.target == n {
			tg.Stop()
		}
	}
}

// NumAnimations returns the number of tweens that have not finished yet.
func (s *Surface) NumAnimations() int {
	n := 0
	for _, tg := range s.tweens {
		if !tg.Done {
			n++
		}
	}
	return n
}

// Close detaches the surface from the shared catalog. The surface must not
// be used afterwards.
func (s *Surface) Close() {
	s.observer.Remove()
	s.ClearTouches()
}

// Remove tears n and its subtree down: bindings, live groups, pending
// double taps and tweens are dropped, then the nodes are disposed.
func (s *Surface) Remove(n *Node) {
	var walk func(*Node)
	walk = func(x *Node) {
		s.manager.RemoveTarget(x)
		s.catalog.Forget(x)
		s.StopAnimations(x)
		for _, c := range x.children {
			walk(c)
		}
	}
	walk(n)
	n.Dispose()
}
