package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/specterlang/effectcore/internal/infer"
)

// Settings is cmd/effectinfer's full configuration surface: where the
// memoization cache lives, the safety-valve depth past which the
// inferrer gives up on a pathologically self-referential module, and
// how diagnostic output should be colorized.
type Settings struct {
	Cache     CacheSettings     `yaml:"cache"`
	Inference InferenceSettings `yaml:"inference"`
	Color     ColorSettings     `yaml:"color"`
}

// CacheSettings controls internal/cache.
type CacheSettings struct {
	Path    string `yaml:"path"`
	Enabled bool   `yaml:"enabled"`
}

// InferenceSettings controls internal/infer.Run.
type InferenceSettings struct {
	// MaxDepth caps how deeply nested an expression tree may get before
	// the inferrer gives up and reports an error instead of recursing
	// further — the safety valve against a pathologically
	// self-referential or generator-produced module. 0 disables it.
	MaxDepth int `yaml:"max_depth" mapstructure:"max_depth"`
}

// ColorSettings controls whether cmd/effectinfer highlights
// Read/Update/Temporal components in its printed output.
type ColorSettings struct {
	// Mode is one of "auto" (isatty-detected), "always", "never".
	Mode string `yaml:"mode"`
}

// DefaultSettings returns the settings effectinfer uses when no config
// file and no environment variable overrides it.
func DefaultSettings() *Settings {
	return &Settings{
		Cache: CacheSettings{
			Path:    "effectinfer-cache.sqlite",
			Enabled: true,
		},
		Inference: InferenceSettings{
			MaxDepth: infer.DefaultMaxDepth,
		},
		Color: ColorSettings{
			Mode: "auto",
		},
	}
}

// LoadSettings reads configPath (or, if empty, looks for
// "effectinfer.yaml" in the working directory), layers
// EFFECTINFER_*-prefixed environment variables on top, and unmarshals
// the result over DefaultSettings.
func LoadSettings(configPath string) (*Settings, error) {
	settings := DefaultSettings()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("effectinfer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("EFFECTINFER")
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"cache.path":          "EFFECTINFER_CACHE_PATH",
		"cache.enabled":       "EFFECTINFER_CACHE_ENABLED",
		"inference.max_depth": "EFFECTINFER_INFERENCE_MAX_DEPTH",
		"color.mode":          "EFFECTINFER_COLOR_MODE",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read %s: %w", configPath, err)
		}
	}

	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validateSettings(settings); err != nil {
		return nil, fmt.Errorf("config: invalid settings: %w", err)
	}
	return settings, nil
}

func validateSettings(s *Settings) error {
	switch s.Color.Mode {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color.mode must be auto, always, or never, got %q", s.Color.Mode)
	}
	if s.Cache.Enabled && s.Cache.Path == "" {
		return fmt.Errorf("cache.path must not be empty when cache.enabled is true")
	}
	if s.Inference.MaxDepth < 0 {
		return fmt.Errorf("inference.max_depth must not be negative, got %d", s.Inference.MaxDepth)
	}
	return nil
}
