// Package ebitentouch is a touch source that reads Ebitengine's touch and
// mouse input once per tick and feeds it to a touchkit surface.
package ebitentouch

import (
	"fmt"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/touchkit"
)

// MouseSession is the session ID of the left mouse button.
const MouseSession touchkit.SessionID = -1

// touchBase keeps Ebitengine touch IDs apart from other sources' sessions.
const touchBase touchkit.SessionID = 1 << 32

// Source polls Ebitengine input. Call Update from the game's Update, on the
// goroutine that owns the surface.
type Source struct {
	// Mouse makes the left mouse button act as one more finger.
	Mouse bool
	// ClearKey clears every live touch when pressed (the escape hatch for
	// lost UP events). ebiten.KeyMax disables it.
	ClearKey ebiten.Key

	sink  touchkit.SampleSink
	clear func()
	clock func() int64

	live      map[ebiten.TouchID]touchkit.Vec2
	mouseDown bool
	mouseLast touchkit.Vec2
	ids       []ebiten.TouchID
}

// New creates a source feeding s, with the mouse enabled and F1 as the
// clear key.
func New(s *touchkit.Surface) *Source {
	start := time.Now()
	return &Source{
		Mouse:    true,
		ClearKey: ebiten.KeyF1,
		sink:     s.Tracker(),
		clear:    s.ClearTouches,
		clock:    func() int64 { return time.Since(start).Milliseconds() },
		live:     make(map[ebiten.TouchID]touchkit.Vec2),
	}
}

// ParseKey resolves a key name such as "F1" or "Escape".
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("touchkit: unknown key %q: %w", name, err)
	}
	return k, nil
}

// input is one tick's worth of polled state.
type input struct {
	touches  map[ebiten.TouchID]touchkit.Vec2
	mouse    bool
	mousePos touchkit.Vec2
	clear    bool
}

// Update polls Ebitengine and emits the samples for this tick.
func (src *Source) Update() {
	in := input{touches: make(map[ebiten.TouchID]touchkit.Vec2)}
	src.ids = ebiten.AppendTouchIDs(src.ids[:0])
	for _, id := range src.ids {
		x, y := ebiten.TouchPosition(id)
		in.touches[id] = touchkit.Vec2{X: float64(x), Y: float64(y)}
	}
	if src.Mouse {
		in.mouse = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		x, y := ebiten.CursorPosition()
		in.mousePos = touchkit.Vec2{X: float64(x), Y: float64(y)}
	}
	if src.ClearKey != ebiten.KeyMax {
		in.clear = inpututil.IsKeyJustPressed(src.ClearKey)
	}
	src.apply(in, src.clock())
}

func (src *Source) apply(in input, now int64) {
	if in.clear {
		src.clear()
		clear(src.live)
		src.mouseDown = false
		return
	}

	ids := make([]ebiten.TouchID, 0, len(in.touches))
	for id := range in.touches {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		pos := in.touches[id]
		last, known := src.live[id]
		src.live[id] = pos
		switch {
		case !known:
			src.sink.Down(touchBase+touchkit.SessionID(id), pos, now)
		case pos != last:
			src.sink.Move(touchBase+touchkit.SessionID(id), pos, now)
		}
	}

	var gone []ebiten.TouchID
	for id := range src.live {
		if _, ok := in.touches[id]; !ok {
			gone = append(gone, id)
		}
	}
	slices.Sort(gone)
	for _, id := range gone {
		src.sink.Up(touchBase+touchkit.SessionID(id), src.live[id], now)
		delete(src.live, id)
	}

	switch {
	case in.mouse && !src.mouseDown:
		src.mouseDown = true
		src.sink.Down(MouseSession, in.mousePos, now)
	case in.mouse && in.mousePos != src.mouseLast:
		src.sink.Move(MouseSession, in.mousePos, now)
	case !in.mouse && src.mouseDown:
		src.mouseDown = false
		src.sink.Up(MouseSession, src.mouseLast, now)
	}
	if in.mouse {
		src.mouseLast = in.mousePos
	}
}
