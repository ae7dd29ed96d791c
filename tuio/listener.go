package tuio

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/hypebeast/go-osc/osc"
	"github.com/phanxgames/touchkit"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// CursorAddress is the OSC address of the 2D cursor profile.
const CursorAddress = "/tuio/2Dcur"

const maxPacket = 65535

// Listener receives TUIO packets on a UDP socket and posts each completed
// cursor frame to a dispatcher, which applies it to Cursors on the gesture
// goroutine.
type Listener struct {
	addr       string
	dispatcher *touchkit.Dispatcher
	cursors    *Cursors
	log        zerolog.Logger

	conn    net.PacketConn
	pending Frame
}

// NewListener creates a listener for addr (e.g. ":3333").
func NewListener(addr string, d *touchkit.Dispatcher, c *Cursors) *Listener {
	return &Listener{addr: addr, dispatcher: d, cursors: c, log: zerolog.Nop()}
}

// SetLogger replaces the listener's logger.
func (l *Listener) SetLogger(log zerolog.Logger) {
	l.log = log
}

// Listen binds the UDP socket. Run calls it when it has not been called.
func (l *Listener) Listen() error {
	if l.conn != nil {
		return nil
	}
	conn, err := net.ListenPacket("udp", l.addr)
	if err != nil {
		return fmt.Errorf("touchkit: tuio listen %s: %w", l.addr, err)
	}
	l.conn = conn
	l.log.Info().Str("addr", conn.LocalAddr().String()).Msg("tuio listening")
	return nil
}

// LocalAddr returns the bound address, or nil before Listen.
func (l *Listener) LocalAddr() net.Addr {
	if l.conn == nil {
		return nil
	}
	return l.conn.LocalAddr()
}

// Run receives packets until ctx is done. It returns nil on cancellation.
func (l *Listener) Run(ctx context.Context) error {
	if err := l.Listen(); err != nil {
		return err
	}
	conn := l.conn
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		_ = conn.Close()
		return nil
	})
	g.Go(func() error {
		err := l.serve(conn)
		if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
			return nil
		}
		return err
	})
	return g.Wait()
}

func (l *Listener) serve(conn net.PacketConn) error {
	buf := make([]byte, maxPacket)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			return fmt.Errorf("touchkit: tuio read: %w", err)
		}
		p, err := osc.ParsePacket(string(buf[:n]))
		if err != nil {
			l.log.Warn().Err(err).Msg("tuio: bad packet")
			continue
		}
		l.handle(p)
	}
}

// handle processes bundles depth first, in order.
func (l *Listener) handle(p osc.Packet) {
	switch v := p.(type) {
	case *osc.Bundle:
		for _, m := range v.Messages {
			l.handleMessage(m)
		}
		for _, b := range v.Bundles {
			l.handle(b)
		}
	case *osc.Message:
		l.handleMessage(v)
	}
}

func (l *Listener) handleMessage(m *osc.Message) {
	if m.Address != CursorAddress || len(m.Arguments) == 0 {
		return
	}
	cmd, _ := m.Arguments[0].(string)
	args := m.Arguments[1:]
	switch cmd {
	case "alive":
		l.pending.Alive = l.pending.Alive[:0]
		for _, a := range args {
			if id, ok := toInt32(a); ok {
				l.pending.Alive = append(l.pending.Alive, id)
			}
		}
	case "set":
		c, ok := parseSet(args)
		if !ok {
			l.log.Debug().Int("args", len(args)).Msg("tuio: malformed set")
			return
		}
		l.pending.Set = append(l.pending.Set, c)
	case "fseq":
		if len(args) > 0 {
			l.pending.Seq, _ = toInt32(args[0])
		}
		f := l.pending
		l.pending = Frame{}
		if err := l.dispatcher.Post(func() { l.cursors.Apply(f) }); err != nil {
			l.log.Debug().Err(err).Int32("seq", f.Seq).Msg("tuio: frame dropped")
		}
	}
}

// parseSet reads "set s x y X Y m".
func parseSet(args []any) (Cursor, bool) {
	if len(args) < 3 {
		return Cursor{}, false
	}
	var c Cursor
	var ok bool
	if c.ID, ok = toInt32(args[0]); !ok {
		return Cursor{}, false
	}
	f := make([]float32, 0, 5)
	for _, a := range args[1:] {
		v, ok := toFloat32(a)
		if !ok {
			return Cursor{}, false
		}
		f = append(f, v)
	}
	c.X, c.Y = f[0], f[1]
	if len(f) >= 4 {
		c.VX, c.VY = f[2], f[3]
	}
	if len(f) >= 5 {
		c.Accel = f[4]
	}
	return c, true
}

func toInt32(a any) (int32, bool) {
	switch v := a.(type) {
	case int32:
		return v, true
	case int64:
		return int32(v), true
	case float32:
		return int32(v), true
	}
	return 0, false
}

func toFloat32(a any) (float32, bool) {
	switch v := a.(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int32:
		return float32(v), true
	}
	return 0, false
}
