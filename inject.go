package touchkit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SampleSink consumes raw touch samples. *Tracker implements it.
type SampleSink interface {
	Down(id SessionID, pos Vec2, timeMs int64)
	Move(id SessionID, pos Vec2, timeMs int64)
	Up(id SessionID, pos Vec2, timeMs int64)
}

// Injector is a synthetic touch source with its own millisecond clock.
// Every call delivers its samples synchronously, so tests and scripts can
// drive the pipeline without a device or wall-clock sleeps.
type Injector struct {
	sink SampleSink
	now  int64
	last map[SessionID]Vec2

	// OnClear runs when Clear is called, typically Surface.ClearTouches.
	OnClear func()
}

// NewInjector creates an injector whose clock starts at startMs.
func NewInjector(sink SampleSink, startMs int64) *Injector {
	return &Injector{sink: sink, now: startMs, last: make(map[SessionID]Vec2)}
}

// NewInjector creates an injector feeding the surface's tracker. Clear
// clears the surface's touches.
func (s *Surface) NewInjector() *Injector {
	in := NewInjector(s.tracker, 0)
	in.OnClear = s.ClearTouches
	return in
}

// Now returns the injector's clock in milliseconds.
func (in *Injector) Now() int64 {
	return in.now
}

// Wait advances the clock by ms.
func (in *Injector) Wait(ms int64) {
	in.now += ms
}

// Down lands finger id at (x, y).
func (in *Injector) Down(id SessionID, x, y float64) {
	p := Vec2{x, y}
	in.last[id] = p
	in.sink.Down(id, p, in.now)
}

// Move moves finger id to (x, y).
func (in *Injector) Move(id SessionID, x, y float64) {
	p := Vec2{x, y}
	in.last[id] = p
	in.sink.Move(id, p, in.now)
}

// Up lifts finger id where it last was.
func (in *Injector) Up(id SessionID) {
	p := in.last[id]
	delete(in.last, id)
	in.sink.Up(id, p, in.now)
}

// Tap lands and lifts finger id at (x, y), durationMs apart.
func (in *Injector) Tap(id SessionID, x, y float64, durationMs int64) {
	in.Down(id, x, y)
	in.Wait(durationMs)
	in.Up(id)
}

// Hold is Tap under another name, for scripts that read better with it.
func (in *Injector) Hold(id SessionID, x, y float64, durationMs int64) {
	in.Tap(id, x, y, durationMs)
}

// Swipe lands finger id at from, moves it to to in steps samples spread
// evenly over durationMs, following fn (ease.Linear when nil), and lifts it.
func (in *Injector) Swipe(id SessionID, from, to Vec2, steps int, durationMs int64, fn ease.TweenFunc) {
	if steps < 1 {
		steps = 1
	}
	if fn == nil {
		fn = ease.Linear
	}
	in.Down(id, from.X, from.Y)
	tw := gween.New(0, 1, float32(durationMs), fn)
	stepMs := durationMs / int64(steps)
	for i := 1; i <= steps; i++ {
		var t float32
		if i == steps {
			t = 1
			in.now += durationMs - stepMs*int64(steps-1)
		} else {
			t, _ = tw.Update(float32(stepMs))
			in.now += stepMs
		}
		f := float64(t)
		in.Move(id, from.X+(to.X-from.X)*f, from.Y+(to.Y-from.Y)*f)
	}
	in.Up(id)
}

// Clear runs OnClear, if set, and forgets the fingers it knows about.
func (in *Injector) Clear() {
	clear(in.last)
	if in.OnClear != nil {
		in.OnClear()
	}
}
