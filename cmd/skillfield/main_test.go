package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/phanxgames/skillfield"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLayoutCommand(t *testing.T) {
	out, err := execute(t, "layout", "--width", "1000", "--height", "1200", "--seed", "7")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for _, want := range []string{"Layout 1000x1200", "Kubernetes", "20 skills"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLayoutCommandSeedIsReproducible(t *testing.T) {
	a, err := execute(t, "layout", "--seed", "3")
	if err != nil {
		t.Fatal(err)
	}
	b, err := execute(t, "layout", "--seed", "3")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("same seed produced different reports")
	}
}

func TestLayoutCommandCategory(t *testing.T) {
	out, err := execute(t, "layout", "--category", "infra", "--seed", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "6 skills") || strings.Contains(out, "React") {
		t.Errorf("unexpected report:\n%s", out)
	}

	if _, err := execute(t, "layout", "--category", "cooking"); !errors.Is(err, skillfield.ErrNoSkills) {
		t.Errorf("err = %v, want ErrNoSkills", err)
	}
}

func TestLayoutCommandDataAndConfig(t *testing.T) {
	out, err := execute(t, "layout", "--data", "../../testdata/skills.json", "--seed", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "4 skills") {
		t.Errorf("unexpected report:\n%s", out)
	}

	if _, err := execute(t, "layout", "--config", "missing.toml"); err == nil {
		t.Error("expected error for a missing config file")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}
}
