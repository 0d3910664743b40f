package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if VALVO_CONFIG is set
//  3. env (prefix VALVO_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("VALVO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: VALVO_TIER, VALVO_INTERVAL_MS, ...
	// Map env keys like VALVO_INTERVAL_MS -> interval_ms (flat keys),
	// preserving underscores to match the koanf tags on the struct.
	envProvider := env.Provider("VALVO_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "valvo_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.CoachAPIKey == "" {
		cfg.CoachAPIKey = os.Getenv("OPENAI_API_KEY")
	}
	return &cfg, validate(&cfg)
}

func validate(cfg *Config) error {
	if cfg.PlayerID == "" {
		return errors.New("player_id must not be empty")
	}
	switch cfg.Tier {
	case "beginner", "advanced":
	default:
		return errors.New("tier must be beginner or advanced")
	}
	switch cfg.Mode {
	case "learning", "marathon", "speed":
	default:
		return errors.New("mode must be learning, marathon, or speed")
	}
	if cfg.Questions <= 0 {
		return errors.New("questions must be positive")
	}
	if cfg.Lives <= 0 {
		return errors.New("lives must be positive")
	}
	if cfg.IntervalMs <= 0 {
		return errors.New("interval_ms must be positive")
	}
	return nil
}
