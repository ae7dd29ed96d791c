// Package tuio is a touch source for TUIO 1.1 trackers. It listens for
// /tuio/2Dcur bundles over OSC/UDP and turns cursor frames into touch
// samples on the gesture goroutine.
package tuio

import (
	"slices"
	"time"

	"github.com/phanxgames/touchkit"
)

// Cursor is one /tuio/2Dcur "set" entry. Positions are normalized to 0..1.
type Cursor struct {
	ID     int32
	X, Y   float32
	VX, VY float32
	Accel  float32
}

// Frame is one complete cursor bundle: the sessions still alive, the
// cursors that changed and the frame sequence number.
type Frame struct {
	Alive []int32
	Set   []Cursor
	Seq   int32
}

// Cursors converts frames into Down, Move and Up samples. It is not safe
// for concurrent use; apply frames on the gesture goroutine.
type Cursors struct {
	sink    touchkit.SampleSink
	extent  touchkit.Vec2
	clock   func() int64
	live    map[int32]touchkit.Vec2
	lastSeq int32
}

// NewCursors creates a converter scaling normalized positions by extent.
// clock returns the current time in milliseconds; nil uses the wall clock.
func NewCursors(sink touchkit.SampleSink, extent touchkit.Vec2, clock func() int64) *Cursors {
	if clock == nil {
		start := time.Now()
		clock = func() int64 { return time.Since(start).Milliseconds() }
	}
	return &Cursors{sink: sink, extent: extent, clock: clock, live: make(map[int32]touchkit.Vec2)}
}

// Live returns the number of cursors currently down.
func (c *Cursors) Live() int {
	return len(c.live)
}

// Reset forgets every cursor without emitting UP samples.
func (c *Cursors) Reset() {
	clear(c.live)
	c.lastSeq = 0
}

// seqRestartGap is how far fseq must jump backwards to count as a tracker
// restart rather than a late frame.
const seqRestartGap = 100

// stale reports whether seq belongs to a frame older than the last applied
// one. Sequence -1 marks frames that must always be applied, and a large
// backwards jump means the tracker restarted its count.
func (c *Cursors) stale(seq int32) bool {
	if seq == -1 || c.lastSeq == 0 {
		return false
	}
	return seq <= c.lastSeq && c.lastSeq-seq < seqRestartGap
}

// Apply feeds one frame: new cursors land, known cursors move, and cursors
// missing from the alive list lift at their last position.
func (c *Cursors) Apply(f Frame) {
	if c.stale(f.Seq) {
		return
	}
	if f.Seq > 0 {
		c.lastSeq = f.Seq
	}
	now := c.clock()

	alive := make(map[int32]bool, len(f.Alive))
	for _, id := range f.Alive {
		alive[id] = true
	}
	for _, cur := range f.Set {
		if !alive[cur.ID] {
			continue
		}
		pos := touchkit.Vec2{X: float64(cur.X) * c.extent.X, Y: float64(cur.Y) * c.extent.Y}
		_, known := c.live[cur.ID]
		c.live[cur.ID] = pos
		if known {
			c.sink.Move(touchkit.SessionID(cur.ID), pos, now)
		} else {
			c.sink.Down(touchkit.SessionID(cur.ID), pos, now)
		}
	}
	var gone []int32
	for id := range c.live {
		if !alive[id] {
			gone = append(gone, id)
		}
	}
	slices.Sort(gone)
	for _, id := range gone {
		pos := c.live[id]
		delete(c.live, id)
		c.sink.Up(touchkit.SessionID(id), pos, now)
	}
}
