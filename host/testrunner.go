package host

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"move": true, "leave": true, "click": true, "sweep": true,
	"play": true, "wait": true, "screenshot": true,
}

// TestRunner sequences injected pointer input, play mode toggles, and
// screenshots across frames. Attach to a Game via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script of the form
//
//	{"steps": [{"action": "move", "x": 400, "y": 300}, {"action": "wait", "frames": 30}]}
//
// Unknown actions are rejected up front.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner. Its step method is called from Update
// before input is processed.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(g.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "move":
		g.InjectMove(st.X, st.Y)
	case "leave":
		g.InjectLeave()
	case "click":
		g.InjectClick(st.X, st.Y)
	case "sweep":
		g.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "play":
		enabled := !g.engine.PlayMode()
		if st.Enabled != nil {
			enabled = *st.Enabled
		}
		g.engine.SetPlayMode(enabled)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}
