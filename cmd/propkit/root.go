package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vitalvas/propkit"
	"github.com/vitalvas/propkit/domain"
	"github.com/vitalvas/propkit/inrange"
	"github.com/vitalvas/propkit/quick"
	"github.com/vitalvas/propkit/xconfig"
	"github.com/vitalvas/propkit/xlogger"
)

const envPrefix = "PROPKIT"

// fileConfig is the layout of the --config file. Every value may also be
// set through PROPKIT_* variables, and flags override both.
type fileConfig struct {
	Domain     string             `yaml:"domain" default:"offsetdatetime"`
	Constraint inrange.Constraint `yaml:"constraint"`
	Check      quick.Config       `yaml:"check"`
	Log        xlogger.Config     `yaml:"log"`
}

type app struct {
	out      io.Writer
	registry *propkit.Registry
	cfgFile  string
	cfg      fileConfig
	logger   *slog.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, registry: propkit.Default()}

	cmd := &cobra.Command{
		Use:           "propkit",
		Short:         "Generate and shrink values inside min/max ranges",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML or TOML config file")

	cmd.AddCommand(
		newDomainsCmd(a),
		newSampleCmd(a),
		newShrinkCmd(a),
		newCheckCmd(a),
	)

	return cmd
}

func (a *app) load() error {
	var opts []xconfig.Option
	if a.cfgFile != "" {
		opts = append(opts, xconfig.WithFiles(a.cfgFile), xconfig.WithStrict())
	}
	opts = append(opts, xconfig.WithEnv(envPrefix))

	if err := xconfig.Load(&a.cfg, opts...); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := a.cfg.Check.Validate(); err != nil {
		return err
	}

	a.logger = xlogger.New(a.cfg.Log)
	return nil
}

// rangeFlags are the flags shared by every command that works on an interval.
type rangeFlags struct {
	domain string
	min    string
	max    string
	format string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.domain, "domain", "", "domain tag, see 'propkit domains'")
	cmd.Flags().StringVar(&f.min, "min", "", "inclusive lower bound")
	cmd.Flags().StringVar(&f.max, "max", "", "inclusive upper bound")
	cmd.Flags().StringVar(&f.format, "format", "", "format pattern of the bounds and output")
}

// target is a resolved interval together with the codec used to print it.
type target struct {
	adapter  domain.Adapter[any]
	interval inrange.Interval[any]
	codec    domain.Codec[any]
}

func (t target) format(v any) (string, error) {
	if t.codec == nil {
		return fmt.Sprint(v), nil
	}
	return t.codec.Format(v)
}

func (t target) parse(text string) (any, error) {
	if t.codec == nil {
		return nil, fmt.Errorf("%w: parsing %q", inrange.ErrFormatRequired, text)
	}
	return t.codec.Parse(text)
}

// resolve merges flags over the config file and resolves the interval.
func (a *app) resolve(cmd *cobra.Command, f *rangeFlags) (target, error) {
	tag := a.cfg.Domain
	if cmd.Flags().Changed("domain") {
		tag = f.domain
	}

	c := a.cfg.Constraint
	if cmd.Flags().Changed("min") {
		c.Min = f.min
	}
	if cmd.Flags().Changed("max") {
		c.Max = f.max
	}
	if cmd.Flags().Changed("format") {
		c.Format = f.format
	}

	adapter, err := a.registry.Lookup(tag)
	if err != nil {
		return target{}, err
	}

	iv, err := inrange.Resolve(adapter, c)
	if err != nil {
		return target{}, err
	}

	t := target{adapter: adapter, interval: iv}
	if c.Format != "" {
		if t.codec, err = adapter.Compile(c.Format); err != nil {
			return target{}, err
		}
	}

	a.logger.Debug("resolved interval", slog.String("domain", tag), slog.String("interval", iv.String()))
	return t, nil
}

// describe prefixes resolution errors with their kind.
func describe(err error) string {
	if kind := inrange.Kind(err); kind != "" {
		return fmt.Sprintf("%s: %v", kind, err)
	}
	var falsified *quick.FalsifiedError
	if errors.As(err, &falsified) {
		return "falsified: " + err.Error()
	}
	return err.Error()
}
