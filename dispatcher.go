package touchkit

import (
	"context"
	"errors"
	"sync"
)

// ErrDispatcherClosed is returned by Post once the dispatcher is closed or
// has stopped running.
var ErrDispatcherClosed = errors.New("touchkit: dispatcher closed")

// Dispatcher serializes work onto the goroutine that owns the gesture
// pipeline. Touch sources running on their own goroutines Post closures;
// the owner executes them in order, either with Run or, inside a frame
// loop, with RunPending.
type Dispatcher struct {
	queue     chan func()
	done      chan struct{} // closed by Close
	stopped   chan struct{} // closed when Run returns
	closeOnce sync.Once
	stopOnce  sync.Once

	// Posts hold mu for reading while they send; Close takes it for
	// writing to wait out sends that raced with it.
	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a dispatcher that buffers up to buffer pending
// functions before Post blocks.
func NewDispatcher(buffer int) *Dispatcher {
	return &Dispatcher{
		queue:   make(chan func(), buffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Post queues fn. It is safe to call from any goroutine. A Post blocked on
// a full queue returns ErrDispatcherClosed as soon as Close is called or
// Run stops.
func (d *Dispatcher) Post(fn func()) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDispatcherClosed
	}
	select {
	case d.queue <- fn:
		return nil
	case <-d.done:
		return ErrDispatcherClosed
	case <-d.stopped:
		return ErrDispatcherClosed
	}
}

// Close stops accepting work. Functions queued before Close returns still
// run on the next Run or RunPending.
func (d *Dispatcher) Close() {
	// Wake blocked Posts first so they let go of mu.
	d.closeOnce.Do(func() { close(d.done) })
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
}

// Run executes queued functions until ctx is done (returning ctx.Err()) or
// the dispatcher is closed and drained (returning nil).
func (d *Dispatcher) Run(ctx context.Context) error {
	defer d.stopOnce.Do(func() { close(d.stopped) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-d.queue:
			fn()
		case <-d.done:
			// Let Posts that raced with Close finish before draining.
			d.mu.Lock()
			d.mu.Unlock()
			d.RunPending()
			return nil
		}
	}
}

// RunPending executes the functions queued so far without blocking and
// returns how many ran. Frame-driven owners call it once per update.
func (d *Dispatcher) RunPending() int {
	n := 0
	for {
		select {
		case fn := <-d.queue:
			fn()
			n++
		default:
			return n
		}
	}
}

// Pending returns the number of queued functions.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}
