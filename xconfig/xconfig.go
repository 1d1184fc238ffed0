// Package xconfig fills a configuration struct from default tags, optional
// YAML or TOML files and prefixed environment variables, in that order.
package xconfig

import (
	"fmt"
	"reflect"
)

type Options struct {
	files     []string
	envPrefix string
	strict    bool
}

type Option func(*Options)

// WithFiles loads the named files in order. Missing files are skipped.
func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		o.files = append(o.files, filenames...)
	}
}

// WithEnv reads variables named PREFIX_FIELD, PREFIX_NESTED_FIELD, ...
func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

// WithStrict rejects unknown keys in YAML and TOML files.
func WithStrict() Option {
	return func(o *Options) {
		o.strict = true
	}
}

func Load(config any, options ...Option) error {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	configElem, err := validateConfigPointer(config)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	if err := applyDefaultTags(configElem); err != nil {
		return fmt.Errorf("failed to apply default tags: %w", err)
	}

	if err := loadFromFiles(config, opts.files, opts.strict); err != nil {
		return fmt.Errorf("failed to load from files: %w", err)
	}

	if opts.envPrefix != "" {
		if err := loadFromEnv(configElem, opts.envPrefix); err != nil {
			return fmt.Errorf("failed to load from environment: %w", err)
		}
	}

	return nil
}

func validateConfigPointer(config any) (reflect.Value, error) {
	configValue := reflect.ValueOf(config)
	if configValue.Kind() != reflect.Ptr || configValue.IsNil() {
		return reflect.Value{}, fmt.Errorf("config must be a non-nil pointer")
	}
	configElem := configValue.Elem()
	if configElem.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("config must point to a struct, got %s", configElem.Kind())
	}
	return configElem, nil
}
