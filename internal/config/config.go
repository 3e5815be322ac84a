package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/shirai91/mathfun/internal/questiongen"
)

// MaxQuickStartQuestions bounds the quick-start quiz length.
const MaxQuickStartQuestions = 100

// Config holds settings read from the environment. Command-line flags
// override these values.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `env:"MATHFUN_DB"`

	Range               int    `env:"MATHFUN_RANGE"                 envDefault:"10"`
	Topic               string `env:"MATHFUN_TOPIC"                 envDefault:"all"`
	QuickStartQuestions int    `env:"MATHFUN_QUICK_START_QUESTIONS" envDefault:"10"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the range, topic and quiz length.
func (c Config) Validate() error {
	if _, err := questiongen.ValidateRange(c.Range); err != nil {
		return fmt.Errorf("MATHFUN_RANGE: %w", err)
	}
	if _, err := questiongen.ParseTopic(c.Topic); err != nil {
		return fmt.Errorf("MATHFUN_TOPIC: %w", err)
	}
	if c.QuickStartQuestions < 1 || c.QuickStartQuestions > MaxQuickStartQuestions {
		return fmt.Errorf("MATHFUN_QUICK_START_QUESTIONS: must be between 1 and %d, got %d",
			MaxQuickStartQuestions, c.QuickStartQuestions)
	}
	return nil
}

// TopicValue returns the parsed topic. Call Validate first.
func (c Config) TopicValue() questiongen.Topic {
	t, err := questiongen.ParseTopic(c.Topic)
	if err != nil {
		return questiongen.DefaultTopic
	}
	return t
}
