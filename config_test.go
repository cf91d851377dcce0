package kura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/kura"
)

// go test -run ^TestConfigFromEnv$ . -count 1
func TestConfigFromEnv(t *testing.T) {
	t.Setenv("KURA_LOG_LEVEL", "debug")
	t.Setenv("KURA_SHRINK_RATIO", "4")
	t.Setenv("KURA_RECYCLE_IDS", "false")

	cfg, err := kura.ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.ShrinkRatio)
	assert.False(t, cfg.RecycleIDs)
	assert.Equal(t, kura.DefaultMinArchetypeCapacity, cfg.MinArchetypeCapacity, "unset variables keep defaults")

	s, _ := setupStore(t, kura.WithConfig(cfg))
	assert.Equal(t, cfg, s.Config())
}

// go test -run ^TestConfigFromEnvInvalid$ . -count 1
func TestConfigFromEnvInvalid(t *testing.T) {
	t.Setenv("KURA_SHRINK_RATIO", "1")
	_, err := kura.ConfigFromEnv()
	assert.ErrorContains(t, err, "shrink ratio")
}

// go test -run ^TestConfigValidate$ . -count 1
func TestConfigValidate(t *testing.T) {
	require.NoError(t, kura.DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(*kura.Config)
		want   string
	}{
		{"shrink ratio", func(c *kura.Config) { c.ShrinkRatio = 0 }, "shrink ratio"},
		{"min capacity", func(c *kura.Config) { c.MinArchetypeCapacity = 0 }, "min archetype capacity"},
		{"entity capacity", func(c *kura.Config) { c.InitialEntityCapacity = -1 }, "initial entity capacity"},
		{"log level", func(c *kura.Config) { c.LogLevel = "loud" }, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := kura.DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
			assert.Panics(t, func() { kura.NewStore(kura.NewSchema(), kura.WithConfig(cfg)) })
		})
	}
}

// go test -run ^TestConfigMinCapacity$ . -count 1
func TestConfigMinCapacity(t *testing.T) {
	cfg := kura.DefaultConfig()
	cfg.MinArchetypeCapacity = 4
	cfg.InitialEntityCapacity = 1024
	s, _ := setupStore(t, kura.WithConfig(cfg))
	e := s.CreateEntity()
	arch, err := e.Archetype()
	require.NoError(t, err)
	assert.Equal(t, 4, arch.Capacity())
}
