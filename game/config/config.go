// Package config loads the startup configuration. The file is read once, with strict
// field checking: unknown keys are rejected so typos surface before the first frame.
package config

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/dsf-game/dsf/game"
)

// DebugConfig holds the debug and time-control settings.
type DebugConfig struct {
	// TimeScalePresets are the values time_scale can step through, in increasing order.
	TimeScalePresets []float64 `yaml:"time_scale_presets"`
	// TimeScale is the initial clock rate: 1.0 is real time, 0.0 is frozen.
	TimeScale float64 `yaml:"time_scale"`
	// PlayerSpeed is the player's max speed in meters per second.
	PlayerSpeed float64 `yaml:"player_speed"`
	// SecondsPerRewindFrame is the time left between frames when rewinding.
	SecondsPerRewindFrame float64 `yaml:"seconds_per_rewind_frame"`
	// SkipStraightToEditor opens the editor instead of the main menu.
	SkipStraightToEditor bool `yaml:"skip_straight_to_editor"`
	// DisplayDebugFrames shows ghost frames at the player's discrete position.
	DisplayDebugFrames bool `yaml:"display_debug_frames"`
}

// MovementConfig holds player movement tuning.
type MovementConfig struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	// JumpAllowance is how many seconds may pass between starting a jump and moving
	// sideways for the sideways input to still count.
	JumpAllowance float64 `yaml:"jump_allowance"`
}

// Config represents the whole configuration file.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Debug    DebugConfig       `yaml:"debug"`
	Movement MovementConfig    `yaml:"movement"`
	Bindings map[string]string `yaml:"bindings"` // key name → input action
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Debug: DebugConfig{
			TimeScalePresets:      []float64{0.0, 0.25, 0.5, 1.0, 2.0, 4.0},
			TimeScale:             1.0,
			PlayerSpeed:           4.0,
			SecondsPerRewindFrame: 0.1,
		},
		Movement: MovementConfig{
			PlayerSpeed:   4.0,
			JumpAllowance: 0.1,
		},
		Bindings: map[string]string{
			"Equal": game.ActionSpeedUp,
			"Minus": game.ActionSlowDown,
			"P":     game.ActionPause,
		},
	}
}

// Load reads and parses a YAML configuration file, then validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes configuration bytes with strict field checking and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if len(cfg.Debug.TimeScalePresets) > 0 && !cfg.Debug.onPreset() {
		logrus.Warnf("time_scale %v is not one of time_scale_presets %v; the first speed change will snap to a preset",
			cfg.Debug.TimeScale, cfg.Debug.TimeScalePresets)
	}
	return &cfg, nil
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if err := c.Debug.Validate(); err != nil {
		return err
	}
	if err := validateNonNegative("movement.player_speed", c.Movement.PlayerSpeed); err != nil {
		return err
	}
	if err := validateNonNegative("movement.jump_allowance", c.Movement.JumpAllowance); err != nil {
		return err
	}
	for key, action := range c.Bindings {
		if key == "" {
			return fmt.Errorf("bindings: empty key name")
		}
		if key == string(game.KeyEscape) || key == string(game.KeyF1) {
			return fmt.Errorf("bindings.%s: key is reserved for pause and quit and cannot be rebound", key)
		}
		if !game.IsKnownAction(action) {
			return fmt.Errorf("bindings.%s: unknown action %q; valid: %s, %s, %s, %s", key, action,
				game.ActionSpeedUp, game.ActionSlowDown, game.ActionPause, game.ActionQuit)
		}
	}
	return nil
}

// Validate checks the debug section. Presets must be finite, non-negative and strictly
// increasing; time_scale may lie off the preset list.
func (d *DebugConfig) Validate() error {
	for i, p := range d.TimeScalePresets {
		name := fmt.Sprintf("debug.time_scale_presets[%d]", i)
		if err := validateNonNegative(name, p); err != nil {
			return err
		}
		if i > 0 && p <= d.TimeScalePresets[i-1] {
			return fmt.Errorf("%s must be greater than the previous preset %v, got %v", name, d.TimeScalePresets[i-1], p)
		}
	}
	if err := validateNonNegative("debug.time_scale", d.TimeScale); err != nil {
		return err
	}
	if err := validateNonNegative("debug.player_speed", d.PlayerSpeed); err != nil {
		return err
	}
	return validateNonNegative("debug.seconds_per_rewind_frame", d.SecondsPerRewindFrame)
}

// NewTimeScale builds the controller for the configured presets and initial scale.
func (d *DebugConfig) NewTimeScale() *game.TimeScaleController {
	return game.NewTimeScaleController(d.TimeScalePresets, d.TimeScale)
}

func (d *DebugConfig) onPreset() bool {
	for _, p := range d.TimeScalePresets {
		if p == d.TimeScale {
			return true
		}
	}
	return false
}

func validateNonNegative(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 {
		return fmt.Errorf("%s must be non-negative, got %f", name, val)
	}
	return nil
}
