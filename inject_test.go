package touchkit

import (
	"fmt"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

type sample struct {
	kind string
	id   SessionID
	pos  Vec2
	ms   int64
}

func (s sample) String() string {
	return fmt.Sprintf("%s%d(%g,%g)@%d", s.kind, s.id, s.pos.X, s.pos.Y, s.ms)
}

type sampleLog struct {
	samples []sample
}

func (l *sampleLog) Down(id SessionID, pos Vec2, ms int64) {
	l.samples = append(l.samples, sample{"down", id, pos, ms})
}

func (l *sampleLog) Move(id SessionID, pos Vec2, ms int64) {
	l.samples = append(l.samples, sample{"move", id, pos, ms})
}

func (l *sampleLog) Up(id SessionID, pos Vec2, ms int64) {
	l.samples = append(l.samples, sample{"up", id, pos, ms})
}

func (l *sampleLog) String() string {
	return fmt.Sprint(l.samples)
}

func TestInjectorTapAndHold(t *testing.T) {
	var log sampleLog
	in := NewInjector(&log, 1000)
	in.Tap(1, 10, 20, 80)
	in.Wait(20)
	in.Hold(2, 30, 40, 1200)

	want := "[down1(10,20)@1000 up1(10,20)@1080 down2(30,40)@1100 up2(30,40)@2300]"
	if got := log.String(); got != want {
		t.Errorf("samples = %s\nwant      %s", got, want)
	}
	if in.Now() != 2300 {
		t.Errorf("Now = %d, want 2300", in.Now())
	}
}

func TestInjectorUpAtLastPosition(t *testing.T) {
	var log sampleLog
	in := NewInjector(&log, 0)
	in.Down(3, 0, 0)
	in.Wait(5)
	in.Move(3, 7, 9)
	in.Up(3)

	last := log.samples[len(log.samples)-1]
	if last.kind != "up" || last.pos != (Vec2{7, 9}) || last.ms != 5 {
		t.Errorf("last sample = %v, want up3(7,9)@5", last)
	}
}

func TestInjectorSwipe(t *testing.T) {
	var log sampleLog
	in := NewInjector(&log, 0)
	in.Swipe(1, Vec2{0, 0}, Vec2{100, 200}, 4, 100, nil)

	want := "[down1(0,0)@0 move1(25,50)@25 move1(50,100)@50 move1(75,150)@75 move1(100,200)@100 up1(100,200)@100]"
	if got := log.String(); got != want {
		t.Errorf("samples = %s\nwant      %s", got, want)
	}
}

func TestInjectorSwipeEased(t *testing.T) {
	var log sampleLog
	in := NewInjector(&log, 0)
	in.Swipe(1, Vec2{0, 0}, Vec2{100, 0}, 4, 100, ease.InQuad)

	first := log.samples[1]
	if math.Abs(first.pos.X-6.25) > 1e-3 {
		t.Errorf("first move x = %v, want 6.25 with InQuad", first.pos.X)
	}
	if end := log.samples[4]; end.pos.X != 100 || end.ms != 100 {
		t.Errorf("last move = %v, want x 100 at 100ms", end)
	}
}

func TestInjectorSwipeUnevenSteps(t *testing.T) {
	var log sampleLog
	in := NewInjector(&log, 0)
	in.Swipe(1, Vec2{0, 0}, Vec2{10, 0}, 3, 100, nil)

	// 33 + 33 + 34: the last step absorbs the remainder.
	times := []int64{0, 33, 66, 100, 100}
	for i, s := range log.samples {
		if s.ms != times[i] {
			t.Errorf("sample %d at %d ms, want %d", i, s.ms, times[i])
		}
	}

	log.samples = nil
	in.Swipe(2, Vec2{0, 0}, Vec2{10, 0}, 0, 10, nil)
	if len(log.samples) != 3 {
		t.Errorf("steps 0 gave %d samples, want 3", len(log.samples))
	}
}

func TestInjectorClear(t *testing.T) {
	var log sampleLog
	in := NewInjector(&log, 0)
	cleared := 0
	in.OnClear = func() { cleared++ }

	in.Down(1, 5, 5)
	in.Clear()
	if cleared != 1 {
		t.Errorf("OnClear ran %d times, want 1", cleared)
	}
	// The finger is forgotten: an UP now reports the origin.
	in.Up(1)
	if last := log.samples[len(log.samples)-1]; last.pos != (Vec2{}) {
		t.Errorf("up after Clear at %v, want origin", last.pos)
	}
}

func TestSurfaceInjectorClearsTouches(t *testing.T) {
	s := newTestSurface()
	card := NewNode("card", 100, 100)
	s.Root().AddChild(card)
	s.Manager().AddGesture(card, s.Catalog().TouchDown, func(*Node, *TouchGroup) {})

	in := s.NewInjector()
	in.Down(1, 50, 50)
	// The UP never arrives.
	in.Clear()
	if s.Manager().NumGroups() != 0 || s.Tracker().Sessions() != 0 {
		t.Errorf("groups = %d, sessions = %d, want none", s.Manager().NumGroups(), s.Tracker().Sessions())
	}
}
