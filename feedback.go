package touchkit

import "github.com/tanema/gween/ease"

const (
	bubbleRadius = 10
	bubbleAlpha  = 0.6
)

// Bubble is one fading touch marker. Renderers draw a circle of Radius at
// (X, Y) with opacity Alpha.
type Bubble struct {
	X, Y   float64
	Radius float64
	Alpha  float64

	tween *TweenGroup
}

// Feedback shows where fingers touched the surface: each captured touch
// leaves a bubble that shrinks and fades out over Duration.
type Feedback struct {
	Duration float32 // seconds

	bubbles []*Bubble
}

// NewFeedback creates a feedback layer whose bubbles live for millis.
func NewFeedback(millis int) *Feedback {
	return &Feedback{Duration: float32(millis) / 1000}
}

// Capture spawns a bubble at p.
func (f *Feedback) Capture(p Vec2) {
	b := &Bubble{X: p.X, Y: p.Y, Radius: bubbleRadius, Alpha: bubbleAlpha}
	b.tween = TweenValue(&b.Radius, 0, f.Duration, ease.OutQuad)
	b.tween.add(&b.Alpha, 0, f.Duration, ease.Linear)
	f.bubbles = append(f.bubbles, b)
}

// Attach makes every positive validation of g capture finger 0.
func (f *Feedback) Attach(g *Gesture) ObserverHandle {
	return g.Observe(func(ev ValidationEvent) {
		if ev.Validated && ev.Valid && ev.Group.Len() > 0 {
			f.Capture(ev.Group.Points[0].Current)
		}
	})
}

// Update advances every bubble by dt seconds and drops the finished ones.
func (f *Feedback) Update(dt float32) {
	live := f.bubbles[:0]
	for _, b := range f.bubbles {
		b.tween.Update(dt)
		if !b.tween.Done {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(f.bubbles); i++ {
		f.bubbles[i] = nil
	}
	f.bubbles = live
}

// Bubbles returns the live bubbles. The slice must not be modified.
func (f *Feedback) Bubbles() []*Bubble {
	return f.bubbles
}

// Clear drops every bubble.
func (f *Feedback) Clear() {
	clear(f.bubbles)
	f.bubbles = f.bubbles[:0]
}
