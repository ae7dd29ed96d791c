package touchkit

import "sync"

// DoubleTapRule matches the second of two taps on the same target that land
// within Break milliseconds of each other.
//
// A single DoubleTapRule is shared by every target its gesture is bound to,
// so the last tap time is kept per target. The map is guarded by mu; every
// other part of the pipeline assumes a single gesture goroutine, but two
// targets' classification passes may share this instance.
type DoubleTapRule struct {
	tap    HoldRule
	brk    int64
	mu     sync.Mutex
	last   map[*Node]int64
	paired map[*Node]int64 // time of the tap that completed the latest pair
}

// NewDoubleTapRule creates a double-tap rule for the given finger count.
// tap is the single-tap rule the pair is built from; brk is the longest
// allowed pause in milliseconds.
func NewDoubleTapRule(tap HoldRule, brk int64) *DoubleTapRule {
	return &DoubleTapRule{tap: tap, brk: brk, last: make(map[*Node]int64), paired: make(map[*Node]int64)}
}

// Fingers returns the finger count of each tap.
func (r *DoubleTapRule) Fingers() int {
	return r.tap.Fingers
}

// Match implements Rule. The first tap on a target is recorded and reported
// as false; a second tap with a different timestamp inside the break window
// reports true and clears the record. A tap arriving too late becomes the
// new first tap.
//
// The tap that completed a pair keeps matching when it is validated again,
// so every binding of the gesture on the target sees the same result for
// one event.
func (r *DoubleTapRule) Match(target *Node, g *TouchGroup) bool {
	if !r.tap.Match(target, g) {
		return false
	}
	now := g.Points[0].CurrentTime

	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.paired[target]; ok {
		if t == now {
			return true
		}
		delete(r.paired, target)
	}
	prev, ok := r.last[target]
	switch {
	case !ok:
		r.last[target] = now
	case prev == now:
		// Same tap seen again (e.g. re-validated snapshot): not a pair.
	case now-prev <= r.brk:
		delete(r.last, target)
		r.paired[target] = now
		return true
	default:
		r.last[target] = now
	}
	return false
}

// Pending reports whether a first tap is recorded for target.
func (r *DoubleTapRule) Pending(target *Node) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.last[target]
	return ok
}

// Forget drops any recorded tap for target. Call it when the target is torn
// down so the map does not keep the node alive.
func (r *DoubleTapRule) Forget(target *Node) {
	r.mu.Lock()
	delete(r.last, target)
	delete(r.paired, target)
	r.mu.Unlock()
}

// Reset drops every recorded tap.
func (r *DoubleTapRule) Reset() {
	r.mu.Lock()
	clear(r.last)
	clear(r.paired)
	r.mu.Unlock()
}
