package skillfield

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDecodeConfigOverrides(t *testing.T) {
	cfg, err := DecodeConfig(`
seed = 42
play_mode = true

[placement]
padding = 40
max_attempts = 20

[interaction]
decay_delay = "400ms"

[animation]
reference_fps = 0
`)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Seed != 42 || !cfg.PlayMode {
		t.Errorf("top-level = %d/%v", cfg.Seed, cfg.PlayMode)
	}
	if cfg.Placement.Padding != 40 || cfg.Placement.MaxAttempts != 20 {
		t.Errorf("placement = %+v", cfg.Placement)
	}
	// Untouched keys keep their defaults.
	if cfg.Placement.MinDistance != 90 {
		t.Errorf("MinDistance = %v, want default 90", cfg.Placement.MinDistance)
	}
	if cfg.Interaction.DecayDelay.Duration != 400*time.Millisecond {
		t.Errorf("DecayDelay = %v, want 400ms", cfg.Interaction.DecayDelay)
	}
	if cfg.Animation.ReferenceFPS != 0 {
		t.Errorf("ReferenceFPS = %v, want 0", cfg.Animation.ReferenceFPS)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"syntax", `padding = `, false},
		{"bad duration", "[interaction]\ndecay_delay = \"soon\"", false},
		{"negative padding", "[placement]\npadding = -1", true},
		{"zero attempts", "[placement]\nmax_attempts = 0", true},
		{"smoothing too large", "[animation]\nsmoothing = 1.5", true},
		{"opacity above one", "[items]\nopacity_min = 0.9", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (%v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillfield.toml")
	if err := os.WriteFile(path, []byte("[placement]\nmin_distance = 70\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Placement.MinDistance != 70 {
		t.Errorf("MinDistance = %v, want 70", cfg.Placement.MinDistance)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDurationText(t *testing.T) {
	d := Duration{1500 * time.Millisecond}
	text, err := d.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var back Duration
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
