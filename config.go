package skillfield

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("skillfield: invalid config")

// Duration is a time.Duration that decodes from strings like "250ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// PlacementConfig tunes the placement sampler.
type PlacementConfig struct {
	Padding     float64 `toml:"padding"`
	MinDistance float64 `toml:"min_distance"`
	MaxAttempts int     `toml:"max_attempts"`

	// Candidate radius is (SpreadMin + rand*SpreadRange) * min(w, h) / SpreadDivisor.
	SpreadMin     float64 `toml:"spread_min"`
	SpreadRange   float64 `toml:"spread_range"`
	SpreadDivisor float64 `toml:"spread_divisor"`

	// Jitter is the side of the square random offset added to each candidate.
	Jitter float64 `toml:"jitter"`
}

// ItemConfig controls the per-item randomized attributes set at creation.
type ItemConfig struct {
	BaseSizeMin   float64 `toml:"base_size_min"`
	BaseSizeRange float64 `toml:"base_size_range"`
	OpacityMin    float64 `toml:"opacity_min"`
	OpacityRange  float64 `toml:"opacity_range"`
}

// InteractionConfig controls focus selection and propagation.
type InteractionConfig struct {
	HoverRadiusFactor float64  `toml:"hover_radius_factor"`
	FocusScale        float64  `toml:"focus_scale"`
	PlayFocusScale    float64  `toml:"play_focus_scale"`
	PropagationRadius float64  `toml:"propagation_radius"`
	PropagationScale  float64  `toml:"propagation_scale"`
	DecayDelay        Duration `toml:"decay_delay"`
}

// AnimationConfig controls the per-tick smoothing.
type AnimationConfig struct {
	Smoothing   float64 `toml:"smoothing"`
	SpinPerTick float64 `toml:"spin_per_tick"`
	// ReferenceFPS enables delta-time scaling of Smoothing and SpinPerTick.
	// Zero applies them once per Tick regardless of dt.
	ReferenceFPS float64  `toml:"reference_fps"`
	GlowDuration Duration `toml:"glow_duration"`
}

// Config is the full engine configuration.
type Config struct {
	// Seed seeds the engine's random source. Zero picks a time-based seed.
	Seed     uint64 `toml:"seed"`
	PlayMode bool   `toml:"play_mode"`

	Placement   PlacementConfig   `toml:"placement"`
	Items       ItemConfig        `toml:"items"`
	Interaction InteractionConfig `toml:"interaction"`
	Animation   AnimationConfig   `toml:"animation"`
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Placement: PlacementConfig{
			Padding:       80,
			MinDistance:   90,
			MaxAttempts:   150,
			SpreadMin:     0.2,
			SpreadRange:   0.5,
			SpreadDivisor: 2.5,
			Jitter:        120,
		},
		Items: ItemConfig{
			BaseSizeMin:   45,
			BaseSizeRange: 15,
			OpacityMin:    0.6,
			OpacityRange:  0.4,
		},
		Interaction: InteractionConfig{
			HoverRadiusFactor: 1.5,
			FocusScale:        1.25,
			PlayFocusScale:    1.4,
			PropagationRadius: 180,
			PropagationScale:  0.15,
			DecayDelay:        Duration{250 * time.Millisecond},
		},
		Animation: AnimationConfig{
			Smoothing:    0.15,
			SpinPerTick:  3,
			ReferenceFPS: 60,
			GlowDuration: Duration{200 * time.Millisecond},
		},
	}
}

// DecodeConfig decodes TOML text on top of DefaultConfig and validates it.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("skillfield: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("skillfield: load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Placement.Padding < 0:
		return fmt.Errorf("%w: placement.padding must be >= 0", ErrInvalidConfig)
	case c.Placement.MinDistance < 0:
		return fmt.Errorf("%w: placement.min_distance must be >= 0", ErrInvalidConfig)
	case c.Placement.MaxAttempts < 1:
		return fmt.Errorf("%w: placement.max_attempts must be >= 1", ErrInvalidConfig)
	case c.Placement.SpreadDivisor <= 0:
		return fmt.Errorf("%w: placement.spread_divisor must be > 0", ErrInvalidConfig)
	case c.Items.BaseSizeMin <= 0 || c.Items.BaseSizeRange < 0:
		return fmt.Errorf("%w: items.base_size_min must be > 0 and base_size_range >= 0", ErrInvalidConfig)
	case c.Items.OpacityMin < 0 || c.Items.OpacityMin+c.Items.OpacityRange > 1:
		return fmt.Errorf("%w: items opacity must stay within [0, 1]", ErrInvalidConfig)
	case c.Interaction.HoverRadiusFactor <= 0:
		return fmt.Errorf("%w: interaction.hover_radius_factor must be > 0", ErrInvalidConfig)
	case c.Interaction.PropagationRadius <= 0:
		return fmt.Errorf("%w: interaction.propagation_radius must be > 0", ErrInvalidConfig)
	case c.Interaction.DecayDelay.Duration < 0:
		return fmt.Errorf("%w: interaction.decay_delay must be >= 0", ErrInvalidConfig)
	case c.Animation.Smoothing <= 0 || c.Animation.Smoothing > 1:
		return fmt.Errorf("%w: animation.smoothing must be in (0, 1]", ErrInvalidConfig)
	case c.Animation.ReferenceFPS < 0:
		return fmt.Errorf("%w: animation.reference_fps must be >= 0", ErrInvalidConfig)
	}
	return nil
}
