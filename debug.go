package touchkit

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// globalDebug enables the extra tree checks below. It is switched with
// Surface.SetDebugMode.
var globalDebug bool

// debugLogger receives the warnings of the debug checks.
var debugLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
	Timestamp().Str("component", "touchkit").Logger()

// SetDebugLogger replaces the logger used by debug-mode tree checks.
func SetDebugLogger(l zerolog.Logger) {
	debugLogger = l
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Callers only invoke it in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("touchkit debug: %s on disposed node %q", op, n.Name))
	}
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if n sits deeper than debugMaxTreeDepth.
// Hit testing walks the whole path on every touch.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn().Int("depth", depth).Int("max", debugMaxTreeDepth).
			Str("node", n.Name).Msg("tree too deep")
	}
}

const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogger.Warn().Int("children", len(n.children)).Int("max", debugMaxChildCount).
			Str("node", n.Name).Msg("too many children")
	}
}

// debugLogGroups dumps the live touch groups, e.g. before a clear-all.
func debugLogGroups(m *Manager) {
	for target, g := range m.groups {
		ids := make([]int64, len(g.Points))
		for i, p := range g.Points {
			ids[i] = int64(p.ID)
		}
		debugLogger.Debug().Uint32("target", target.ID).Str("name", target.Name).
			Int("max", g.MaxConcurrent()).Ints64("sessions", ids).Msg("live group")
	}
}
