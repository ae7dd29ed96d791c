package touchkit

// Tracker turns raw per-session samples into TouchPoints and forwards them
// to a TouchHandler. It keeps one point per live session, measuring relative
// distance against Extent.
type Tracker struct {
	Extent  Vec2
	handler TouchHandler
	live    map[SessionID]*TouchPoint
}

// NewTracker creates a tracker forwarding to h.
func NewTracker(h TouchHandler, extent Vec2) *Tracker {
	return &Tracker{Extent: extent, handler: h, live: make(map[SessionID]*TouchPoint)}
}

// Down starts a session. A second DOWN for a live session is ignored.
func (t *Tracker) Down(id SessionID, pos Vec2, timeMs int64) {
	if _, ok := t.live[id]; ok {
		return
	}
	p := NewTouchPoint(id, pos, timeMs)
	t.live[id] = p
	t.handler.TouchDown(p)
}

// Move advances a live session. Unknown sessions are ignored.
func (t *Tracker) Move(id SessionID, pos Vec2, timeMs int64) {
	p, ok := t.live[id]
	if !ok {
		return
	}
	p.Advance(PhaseMove, pos, timeMs, t.Extent)
	t.handler.TouchMove(p)
}

// Up ends a live session at pos. Unknown sessions are ignored.
func (t *Tracker) Up(id SessionID, pos Vec2, timeMs int64) {
	p, ok := t.live[id]
	if !ok {
		return
	}
	delete(t.live, id)
	p.Advance(PhaseUp, pos, timeMs, t.Extent)
	t.handler.TouchUp(p)
}

// Point returns the live point for a session, or nil.
func (t *Tracker) Point(id SessionID) *TouchPoint {
	return t.live[id]
}

// Sessions returns the number of live sessions.
func (t *Tracker) Sessions() int {
	return len(t.live)
}

// Live appends the IDs of every live session to dst.
func (t *Tracker) Live(dst []SessionID) []SessionID {
	for id := range t.live {
		dst = append(dst, id)
	}
	return dst
}

// Reset forgets every live session without emitting UP events.
func (t *Tracker) Reset() {
	clear(t.live)
}
