package quick

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 100, cfg.Trials)
	assert.Zero(t, cfg.Seed)
	assert.True(t, cfg.Shrink)
	assert.Equal(t, 100, cfg.MaxShrinks)
	assert.Equal(t, 20, cfg.MaxShrinkDepth)
	assert.Equal(t, time.Minute, cfg.MaxShrinkTime)
	assert.Equal(t, 1000, cfg.MaxDiscards)
	assert.Equal(t, 1, cfg.Parallel)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.LogType)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("yaml and env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "propkit.yaml")
		require.NoError(t, os.WriteFile(path, []byte("trials: 500\nseed: 12\nmax_shrink_time: 5s\nlog:\n  level: debug\n  type: json\n"), 0o600))

		t.Setenv("PROPKIT_TRIALS", "250")
		t.Setenv("PROPKIT_SHRINK", "false")
		t.Setenv("PROPKIT_LOG_LEVEL", "warn")

		cfg, err := LoadConfig(path, "PROPKIT")
		require.NoError(t, err)
		assert.Equal(t, 250, cfg.Trials)
		assert.Equal(t, uint64(12), cfg.Seed)
		assert.False(t, cfg.Shrink)
		assert.Equal(t, 5*time.Second, cfg.MaxShrinkTime)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.LogType)
	})

	t.Run("toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "propkit.toml")
		require.NoError(t, os.WriteFile(path, []byte("trials = 7\nmax_shrinks = 9\n\n[log]\ntype = \"discard\"\n"), 0o600))

		cfg, err := LoadConfig(path, "")
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Trials)
		assert.Equal(t, 9, cfg.MaxShrinks)
		assert.Equal(t, "discard", cfg.Log.LogType)
	})

	t.Run("defaults only", func(t *testing.T) {
		cfg, err := LoadConfig("", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("PROPKIT_TRIALS", "-1")
		_, err := LoadConfig("", "PROPKIT")
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unparsable", func(t *testing.T) {
		t.Setenv("PROPKIT_MAX_SHRINK_TIME", "soon")
		_, err := LoadConfig("", "PROPKIT")
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"trials":           func(c *Config) { c.Trials = 0 },
		"max_shrinks":      func(c *Config) { c.MaxShrinks = -1 },
		"max_shrink_depth": func(c *Config) { c.MaxShrinkDepth = -1 },
		"max_shrink_time":  func(c *Config) { c.MaxShrinkTime = -time.Second },
		"max_discards":     func(c *Config) { c.MaxDiscards = -1 },
		"parallel":         func(c *Config) { c.Parallel = -1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestNewFillsZeroLimits(t *testing.T) {
	r := New(Config{Log: DefaultConfig().Log})
	cfg := r.Config()
	assert.Equal(t, 100, cfg.Trials)
	assert.Equal(t, 100, cfg.MaxShrinks)
	assert.Equal(t, 20, cfg.MaxShrinkDepth)
	assert.Equal(t, time.Minute, cfg.MaxShrinkTime)
	assert.False(t, cfg.Shrink)
}
