package touchkit

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweensReachTarget(t *testing.T) {
	tests := []struct {
		name  string
		start func(n *Node) *TweenGroup
		check func(n *Node) []float64
		want  []float64
	}{
		{
			"position",
			func(n *Node) *TweenGroup { return TweenPosition(n, 100, 200, 1, ease.Linear) },
			func(n *Node) []float64 { return []float64{n.X, n.Y} },
			[]float64{100, 200},
		},
		{
			"scale",
			func(n *Node) *TweenGroup { return TweenScale(n, 2, 3, 1, ease.OutQuad) },
			func(n *Node) []float64 { return []float64{n.ScaleX, n.ScaleY} },
			[]float64{2, 3},
		},
		{
			"rotation",
			func(n *Node) *TweenGroup { return TweenRotation(n, math.Pi, 1, ease.InOutSine) },
			func(n *Node) []float64 { return []float64{n.Rotation} },
			[]float64{math.Pi},
		},
		{
			"alpha",
			func(n *Node) *TweenGroup { return TweenAlpha(n, 0, 1, nil) },
			func(n *Node) []float64 { return []float64{n.Alpha} },
			[]float64{0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode(tt.name, 10, 10)
			g := tt.start(n)
			if g.Target() != n {
				t.Error("Target mismatch")
			}
			// Exact halves avoid float32 accumulation drift.
			g.Update(0.5)
			if g.Done {
				t.Fatal("should not be done at halfway")
			}
			g.Update(0.5)
			if !g.Done {
				t.Fatal("expected Done after full duration")
			}
			for i, got := range tt.check(n) {
				if math.Abs(got-tt.want[i]) > 0.01 {
					t.Errorf("value %d = %f, want %f", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestTweenAlphaHalfway(t *testing.T) {
	n := NewNode("alpha", 10, 10)
	tw := TweenAlpha(n, 0, 1, ease.Linear)
	tw.Update(0.5)
	if math.Abs(n.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", n.Alpha)
	}
}

func TestTweenValue(t *testing.T) {
	v := 10.0
	g := TweenValue(&v, 20, 0.2, ease.Linear)
	g.Update(0.2)
	if !g.Done || math.Abs(v-20) > 0.01 {
		t.Errorf("v = %f, done = %v, want 20 and done", v, g.Done)
	}
	if g.Target() != nil {
		t.Error("free tween has no target")
	}
}

func TestTweenGroupOnDone(t *testing.T) {
	n := NewNode("n", 10, 10)
	calls := 0
	g := TweenPosition(n, 50, 50, 0.5, ease.Linear)
	g.OnDone = func() { calls++ }

	g.Update(0.25)
	g.Update(0.25)
	g.Update(0.1) // no-op once done
	if calls != 1 {
		t.Errorf("OnDone ran %d times, want 1", calls)
	}

	stopped := TweenPosition(n, 0, 0, 1, ease.Linear)
	stopped.OnDone = func() { calls++ }
	stopped.Stop()
	stopped.Update(1)
	if calls != 1 {
		t.Error("Stop should not run OnDone")
	}
}

func TestTweenGroupMarksDirty(t *testing.T) {
	n := NewContainer("dirty")
	n.transformDirty = false

	g := TweenPosition(n, 100, 100, 1, ease.Linear)
	g.Update(0.1)

	if !n.transformDirty {
		t.Fatal("expected node to be marked dirty after TweenGroup update")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	n := NewContainer("disposed")
	n.X, n.Y = 10, 20

	g := TweenPosition(n, 100, 200, 1, ease.Linear)
	g.Update(0.1)
	n.Dispose()
	x, y := n.X, n.Y
	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after the node was disposed")
	}
	if n.X != x || n.Y != y {
		t.Error("node fields should not change after disposal")
	}
}

func TestTweenEasingCurvesDiffer(t *testing.T) {
	a := NewContainer("linear")
	b := NewContainer("cubic")
	ga := TweenPosition(a, 100, 0, 1, ease.Linear)
	gb := TweenPosition(b, 100, 0, 1, ease.OutCubic)
	ga.Update(0.5)
	gb.Update(0.5)
	if math.Abs(a.X-b.X) < 1 {
		t.Errorf("curves should differ at midpoint: linear=%f cubic=%f", a.X, b.X)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	n := NewContainer("alloc")
	g := TweenPosition(n, 100, 100, 1, ease.Linear)
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}
