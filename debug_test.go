package touchkit

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// captureDebug routes the debug logger into a buffer for the test.
func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := debugLogger
	SetDebugLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() { debugLogger = old })
	return &buf
}

func debugSurface(t *testing.T) *Surface {
	t.Helper()
	s := NewSurfaceWith(SurfaceOptions{Width: 1000, Height: 1000, Catalog: NewCatalog(DefaultThresholds())})
	s.SetDebugMode(true)
	t.Cleanup(func() { s.SetDebugMode(false) })
	return s
}

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := debugSurface(t)
	n := NewContainer("gone")
	n.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, `disposed node "gone"`) {
			t.Errorf("panic = %q", msg)
		}
	}()
	s.Root().AddChild(n)
}

func TestReleaseMode_DisposedNodeNoPanic(t *testing.T) {
	n := NewContainer("gone")
	n.Dispose()
	NewContainer("parent").AddChild(n)
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	buf := captureDebug(t)
	s := debugSurface(t)

	current := s.Root()
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewContainer(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}

	if !strings.Contains(buf.String(), "tree too deep") {
		t.Errorf("expected tree depth warning, got: %q", buf.String())
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	buf := captureDebug(t)
	s := debugSurface(t)

	parent := NewContainer("many_children")
	s.Root().AddChild(parent)
	for i := 0; i < debugMaxChildCount+1; i++ {
		parent.AddChild(NewContainer(fmt.Sprintf("c_%d", i)))
	}

	out := buf.String()
	if !strings.Contains(out, "too many children") || !strings.Contains(out, `"node":"many_children"`) {
		t.Errorf("expected child count warning, got: %q", out)
	}
}

func TestDebugMode_LogsGroupsOnClear(t *testing.T) {
	buf := captureDebug(t)
	s := debugSurface(t)
	card := NewNode("card", 100, 100)
	s.Root().AddChild(card)
	s.Manager().AddGesture(card, s.Catalog().TouchDown, func(*Node, *TouchGroup) {})

	s.Down(7, 50, 50, 0)
	s.Down(8, 60, 60, 0)
	s.ClearTouches()

	out := buf.String()
	if !strings.Contains(out, "live group") || !strings.Contains(out, `"sessions":[7,8]`) {
		t.Errorf("expected live group dump, got: %q", out)
	}
}
