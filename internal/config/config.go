// Package config provides policy configuration for hosts embedding the rrb
// engine: which heap and reference-count policy to wire up, and CLI
// defaults for cmd/rrbctl. The engine package itself never reads this —
// it takes an explicit rrb.Policy value — this is a host/CLI concern only.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for a host of the rrb engine.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Pool   PoolConfig   `mapstructure:"pool"`
	Log    LogConfig    `mapstructure:"log"`
}

// EngineConfig selects the heap and refcount policies.
type EngineConfig struct {
	Heap        string `mapstructure:"heap"`        // "gc" | "pooled"
	RefCount    string `mapstructure:"refcount"`     // "atomic" | "plain" | "none"
	DebugChecks bool   `mapstructure:"debug_checks"` // re-validate I1-I8 after each op
}

// PoolConfig controls the serialization pool's behavior.
type PoolConfig struct {
	// ElementTransformTimeoutMS bounds a user-supplied element transform
	// run during Load; 0 means no bound.
	ElementTransformTimeoutMS int `mapstructure:"element_transform_timeout_ms"`
}

// LogConfig holds logging configuration for cmd/rrbctl.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" | "json"
}

// Load reads configuration from the given path, falling back to defaults
// and standard search locations when path is empty, matching the
// perf-analysis pkg/config.Load convention.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rrbctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/rrbctl")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Fprintln(os.Stderr, "rrbctl: no config file found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "rrbctl: config path does not exist, using defaults")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("rrbctl: parsing config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.heap", "gc")
	v.SetDefault("engine.refcount", "atomic")
	v.SetDefault("engine.debug_checks", false)
	v.SetDefault("pool.element_transform_timeout_ms", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
