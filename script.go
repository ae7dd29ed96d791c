package touchkit

import (
	"errors"
	"fmt"
	"os"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v2"
)

// ErrEmptyScript is returned when a touch script has no steps.
var ErrEmptyScript = errors.New("touchkit: script has no steps")

// scriptStep is a single action in a touch script.
type scriptStep struct {
	Action string    `yaml:"action"`
	ID     SessionID `yaml:"id"`
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	ToX    float64   `yaml:"to_x"`
	ToY    float64   `yaml:"to_y"`
	Ms     int64     `yaml:"ms"`
	Steps  int       `yaml:"steps"`
	Ease   string    `yaml:"ease"`
}

// Script is a parsed touch script: a list of steps replayed through an
// Injector. Actions are down, move, up, wait, tap, hold, swipe and clear.
//
//	steps:
//	  - {action: tap, id: 1, x: 100, y: 100, ms: 80}
//	  - {action: wait, ms: 150}
//	  - {action: swipe, id: 2, x: 0, y: 500, to_x: 1800, to_y: 500, steps: 20, ms: 400, ease: outQuad}
type Script struct {
	Steps []scriptStep `yaml:"steps"`

	cursor int
}

var easings = map[string]ease.TweenFunc{
	"":          ease.Linear,
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inCubic":   ease.InCubic,
	"outCubic":  ease.OutCubic,
	"inOutSine": ease.InOutSine,
}

// LoadScript parses a YAML touch script.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("touchkit: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "down", "move", "up", "wait", "tap", "hold", "swipe", "clear":
		default:
			return nil, fmt.Errorf("touchkit: parse script: step %d: unknown action %q", i, st.Action)
		}
		if _, ok := easings[st.Ease]; !ok {
			return nil, fmt.Errorf("touchkit: parse script: step %d: unknown ease %q", i, st.Ease)
		}
	}
	return &s, nil
}

// LoadScriptFile reads and parses the script at path.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("touchkit: read script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.cursor >= len(s.Steps)
}

// Rewind restarts the script from its first step.
func (s *Script) Rewind() {
	s.cursor = 0
}

// Step executes the next step and reports whether one was executed.
func (s *Script) Step(in *Injector) bool {
	if s.Done() {
		return false
	}
	st := s.Steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "down":
		in.Down(st.ID, st.X, st.Y)
	case "move":
		in.Move(st.ID, st.X, st.Y)
	case "up":
		in.Up(st.ID)
	case "wait":
		in.Wait(st.Ms)
	case "tap":
		in.Tap(st.ID, st.X, st.Y, st.Ms)
	case "hold":
		in.Hold(st.ID, st.X, st.Y, st.Ms)
	case "swipe":
		in.Swipe(st.ID, Vec2{st.X, st.Y}, Vec2{st.ToX, st.ToY}, st.Steps, st.Ms, easings[st.Ease])
	case "clear":
		in.Clear()
	}
	return true
}

// Play executes every remaining step.
func (s *Script) Play(in *Injector) {
	for s.Step(in) {
	}
}
