package quick

import (
	"errors"
	"fmt"
	"time"

	"github.com/vitalvas/propkit/xconfig"
	"github.com/vitalvas/propkit/xlogger"
)

// Config controls how many trials a property gets and how hard a failure
// is shrunk.
type Config struct {
	Trials         int            `yaml:"trials" default:"100"`
	Seed           uint64         `yaml:"seed"`
	Shrink         bool           `yaml:"shrink" default:"true"`
	MaxShrinks     int            `yaml:"max_shrinks" default:"100"`
	MaxShrinkDepth int            `yaml:"max_shrink_depth" default:"20"`
	MaxShrinkTime  time.Duration  `yaml:"max_shrink_time" default:"60s"`
	MaxDiscards    int            `yaml:"max_discards" default:"1000"`
	Parallel       int            `yaml:"parallel" default:"1"`
	Log            xlogger.Config `yaml:"log"`
}

var ErrInvalidConfig = errors.New("quick: invalid configuration")

// DefaultConfig returns the configuration used when nothing is loaded.
func DefaultConfig() Config {
	var cfg Config
	if err := xconfig.Load(&cfg); err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig reads defaults, then the YAML or TOML file at path when path
// is not empty, then variables named <envPrefix>_TRIALS, <envPrefix>_SEED,
// <envPrefix>_MAX_SHRINKS, <envPrefix>_LOG_LEVEL and so on.
func LoadConfig(path, envPrefix string) (Config, error) {
	var opts []xconfig.Option
	if path != "" {
		opts = append(opts, xconfig.WithFiles(path))
	}
	if envPrefix != "" {
		opts = append(opts, xconfig.WithEnv(envPrefix))
	}

	var cfg Config
	if err := xconfig.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Trials <= 0:
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	case c.MaxShrinks < 0:
		return fmt.Errorf("%w: max_shrinks must not be negative, got %d", ErrInvalidConfig, c.MaxShrinks)
	case c.MaxShrinkDepth < 0:
		return fmt.Errorf("%w: max_shrink_depth must not be negative, got %d", ErrInvalidConfig, c.MaxShrinkDepth)
	case c.MaxShrinkTime < 0:
		return fmt.Errorf("%w: max_shrink_time must not be negative, got %s", ErrInvalidConfig, c.MaxShrinkTime)
	case c.MaxDiscards < 0:
		return fmt.Errorf("%w: max_discards must not be negative, got %d", ErrInvalidConfig, c.MaxDiscards)
	case c.Parallel < 0:
		return fmt.Errorf("%w: parallel must not be negative, got %d", ErrInvalidConfig, c.Parallel)
	}
	return nil
}
