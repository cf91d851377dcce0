package kura

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	// DefaultShrinkRatio is the capacity/count ratio above which an archetype
	// gives memory back.
	DefaultShrinkRatio = 10
	// DefaultMinArchetypeCapacity is the initial and minimum row capacity of
	// an archetype holding entities.
	DefaultMinArchetypeCapacity = 32
)

// Config holds the tunables of a Store. Every field can be overridden from
// the environment with ConfigFromEnv.
type Config struct {
	// LogLevel is a zerolog level name applied to the store logger. Empty
	// keeps the logger's level.
	LogLevel string `config:"KURA_LOG_LEVEL"`
	// ShrinkRatio is the capacity/count ratio above which archetypes shrink.
	ShrinkRatio int `config:"KURA_SHRINK_RATIO"`
	// MinArchetypeCapacity is the capacity floor of archetypes.
	MinArchetypeCapacity int `config:"KURA_MIN_ARCHETYPE_CAPACITY"`
	// InitialEntityCapacity presizes the entity index.
	InitialEntityCapacity int `config:"KURA_INITIAL_ENTITY_CAPACITY"`
	// RecycleIDs reuses the ids of deleted entities. When false ids only grow.
	RecycleIDs bool `config:"KURA_RECYCLE_IDS"`
}

// DefaultConfig returns the configuration NewStore uses without options.
func DefaultConfig() Config {
	return Config{
		ShrinkRatio:           DefaultShrinkRatio,
		MinArchetypeCapacity:  DefaultMinArchetypeCapacity,
		InitialEntityCapacity: 0,
		RecycleIDs:            true,
	}
}

// ConfigFromEnv overlays KURA_* environment variables on DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to read store config from env")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the store cannot work with.
func (c Config) Validate() error {
	if c.ShrinkRatio < 2 {
		return eris.Errorf("shrink ratio must be at least 2, got %d", c.ShrinkRatio)
	}
	if c.MinArchetypeCapacity < 1 {
		return eris.Errorf("min archetype capacity must be positive, got %d", c.MinArchetypeCapacity)
	}
	if c.InitialEntityCapacity < 0 {
		return eris.Errorf("initial entity capacity must not be negative, got %d", c.InitialEntityCapacity)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return nil
}

// Option configures a Store.
type Option func(*Store)

// WithConfig replaces the default configuration. It panics if the
// configuration is invalid.
func WithConfig(cfg Config) Option {
	return func(s *Store) {
		if err := cfg.Validate(); err != nil {
			panic(eris.ToString(err, false))
		}
		s.config = cfg
	}
}

// WithLogger sets the logger the store writes diagnostics to.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}
