package ebitentouch

import (
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/touchkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events  []string
	cleared int
}

func (r *recorder) Down(id touchkit.SessionID, pos touchkit.Vec2, _ int64) {
	r.events = append(r.events, fmt.Sprintf("down %d %v,%v", id, pos.X, pos.Y))
}

func (r *recorder) Move(id touchkit.SessionID, pos touchkit.Vec2, _ int64) {
	r.events = append(r.events, fmt.Sprintf("move %d %v,%v", id, pos.X, pos.Y))
}

func (r *recorder) Up(id touchkit.SessionID, pos touchkit.Vec2, _ int64) {
	r.events = append(r.events, fmt.Sprintf("up %d %v,%v", id, pos.X, pos.Y))
}

func newTestSource(rec *recorder) *Source {
	return &Source{
		Mouse:    true,
		ClearKey: ebiten.KeyF1,
		sink:     rec,
		clear:    func() { rec.cleared++ },
		clock:    func() int64 { return 0 },
		live:     make(map[ebiten.TouchID]touchkit.Vec2),
	}
}

func touches(kv ...any) map[ebiten.TouchID]touchkit.Vec2 {
	m := make(map[ebiten.TouchID]touchkit.Vec2)
	for i := 0; i+2 < len(kv); i += 3 {
		m[ebiten.TouchID(kv[i].(int))] = touchkit.Vec2{X: kv[i+1].(float64), Y: kv[i+2].(float64)}
	}
	return m
}

func TestApplyTouchLifecycle(t *testing.T) {
	rec := &recorder{}
	src := newTestSource(rec)

	src.apply(input{touches: touches(1, 10.0, 10.0)}, 0)
	src.apply(input{touches: touches(1, 10.0, 10.0)}, 16)
	src.apply(input{touches: touches(1, 20.0, 10.0, 2, 50.0, 50.0)}, 32)
	src.apply(input{touches: touches(2, 50.0, 50.0)}, 48)
	src.apply(input{touches: touches()}, 64)

	b := int64(touchBase)
	assert.Equal(t, []string{
		fmt.Sprintf("down %d 10,10", b+1),
		fmt.Sprintf("move %d 20,10", b+1),
		fmt.Sprintf("down %d 50,50", b+2),
		fmt.Sprintf("up %d 20,10", b+1),
		fmt.Sprintf("up %d 50,50", b+2),
	}, rec.events)
}

func TestApplyMouse(t *testing.T) {
	rec := &recorder{}
	src := newTestSource(rec)

	src.apply(input{mouse: true, mousePos: touchkit.Vec2{X: 5, Y: 5}}, 0)
	src.apply(input{mouse: true, mousePos: touchkit.Vec2{X: 5, Y: 5}}, 16)
	src.apply(input{mouse: true, mousePos: touchkit.Vec2{X: 9, Y: 5}}, 32)
	src.apply(input{mouse: false, mousePos: touchkit.Vec2{X: 100, Y: 100}}, 48)

	assert.Equal(t, []string{"down -1 5,5", "move -1 9,5", "up -1 9,5"}, rec.events)
}

func TestApplyClear(t *testing.T) {
	rec := &recorder{}
	src := newTestSource(rec)

	src.apply(input{touches: touches(3, 1.0, 1.0), mouse: true}, 0)
	src.apply(input{touches: touches(3, 1.0, 1.0), mouse: true, clear: true}, 16)
	require.Equal(t, 1, rec.cleared)
	assert.Empty(t, src.live)
	assert.False(t, src.mouseDown)

	// Fingers still on the glass after a clear land again.
	rec.events = nil
	src.apply(input{touches: touches(3, 1.0, 1.0)}, 32)
	assert.Equal(t, []string{fmt.Sprintf("down %d 1,1", int64(touchBase)+3)}, rec.events)
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("F1")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyF1, k)

	_, err = ParseKey("NotAKey")
	assert.Error(t, err)
}

func TestSourceDrivesSurface(t *testing.T) {
	s := touchkit.NewSurfaceWith(touchkit.SurfaceOptions{Width: 800, Height: 600, FeedbackMillis: -1})
	card := touchkit.NewNode("card", 100, 100)
	card.Tag(touchkit.CapGestureTarget)
	s.Root().AddChild(card)

	var taps int
	s.Manager().AddGesture(card, s.Catalog().Tap, func(*touchkit.Node, *touchkit.TouchGroup) { taps++ })

	src := New(s)
	src.apply(input{mouse: true, mousePos: touchkit.Vec2{X: 50, Y: 50}}, 0)
	src.apply(input{mouse: false}, 100)

	assert.Equal(t, 1, taps)
	assert.Equal(t, 0, s.Manager().NumGroups())
}
