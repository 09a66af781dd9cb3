package host

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "sweep", "fromX": 0, "fromY": 0, "toX": 300, "toY": 300, "frames": 10},
			{"action": "play", "enabled": true},
			{"action": "wait", "frames": 3}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].ToX != 300 || runner.steps[1].Frames != 10 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Enabled == nil || !*runner.steps[2].Enabled {
		t.Error("step 2 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":       `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "drag"}]}`,
	}
	for name, data := range tests {
		if _, err := LoadTestScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunnerStep_MoveAndScreenshot(t *testing.T) {
	g := newTestGame(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "move", "x": 200, "y": 200},
		{"action": "screenshot", "label": "hover"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)

	runner.step(g)
	if len(g.injectQueue) != 1 {
		t.Fatalf("expected 1 queued event, got %d", len(g.injectQueue))
	}
	runner.step(g) // blocked until the queue drains
	if len(g.screenshotQueue) != 0 {
		t.Fatal("screenshot taken before the move was applied")
	}

	g.processInjectedInput()
	if f := g.engine.Focused(); f == nil || f.ID != "go" {
		t.Fatalf("focused = %v, want go", f)
	}

	runner.step(g)
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "hover" {
		t.Errorf("screenshot queue = %v", g.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done after the last step")
	}
}

func TestRunnerStep_Play(t *testing.T) {
	g := newTestGame(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "play"},
		{"action": "play", "enabled": true},
		{"action": "play", "enabled": false}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	want := []bool{true, true, false}
	for i, w := range want {
		runner.step(g)
		if got := g.engine.PlayMode(); got != w {
			t.Errorf("after step %d PlayMode = %v, want %v", i, got, w)
		}
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	g := newTestGame(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "leave"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		runner.step(g)
		if len(g.injectQueue) != 0 {
			t.Fatalf("frame %d: leave queued during wait", i)
		}
	}
	runner.step(g)
	if len(g.injectQueue) != 1 || !g.injectQueue[0].leave {
		t.Errorf("inject queue = %+v, want one leave", g.injectQueue)
	}
}
