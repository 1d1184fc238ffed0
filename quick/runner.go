// Package quick checks properties against values generated from resolved
// intervals and shrinks the counterexamples it finds.
package quick

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vitalvas/propkit/domain"
	"github.com/vitalvas/propkit/inrange"
	"github.com/vitalvas/propkit/xlogger"
)

const tracerName = "github.com/vitalvas/propkit/quick"

type Runner struct {
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

type Option func(*Runner)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Runner) {
		r.tracer = tp.Tracer(tracerName)
	}
}

// New returns a runner for cfg. Zero limits fall back to DefaultConfig;
// Shrink is taken as given.
func New(cfg Config, opts ...Option) *Runner {
	def := DefaultConfig()
	if cfg.Trials <= 0 {
		cfg.Trials = def.Trials
	}
	if cfg.MaxShrinks <= 0 {
		cfg.MaxShrinks = def.MaxShrinks
	}
	if cfg.MaxShrinkDepth <= 0 {
		cfg.MaxShrinkDepth = def.MaxShrinkDepth
	}
	if cfg.MaxShrinkTime <= 0 {
		cfg.MaxShrinkTime = def.MaxShrinkTime
	}
	if cfg.MaxDiscards <= 0 {
		cfg.MaxDiscards = def.MaxDiscards
	}
	if cfg.Parallel <= 0 {
		cfg.Parallel = def.Parallel
	}

	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = xlogger.New(cfg.Log)
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}
	return r
}

func (r *Runner) Config() Config { return r.cfg }

// Check runs p to completion and reports the outcome.
func (r *Runner) Check(ctx context.Context, p Property) Report {
	return p.check(ctx, r)
}

// CheckAll runs the properties, up to Config.Parallel at a time. Reports
// keep the order of props; the error joins the errors of failed reports.
func (r *Runner) CheckAll(ctx context.Context, props ...Property) ([]Report, error) {
	reports := make([]Report, len(props))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallel)
	for i, p := range props {
		g.Go(func() error {
			reports[i] = r.Check(ctx, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}

	errs := make([]error, 0, len(reports))
	for _, rep := range reports {
		if err := rep.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return reports, errors.Join(errs...)
}

// Test checks every property as a subtest of t.
func (r *Runner) Test(t *testing.T, props ...Property) {
	t.Helper()
	for _, p := range props {
		t.Run(p.Name(), func(t *testing.T) {
			t.Helper()
			rep := r.Check(t.Context(), p)
			if err := rep.Err(); err != nil {
				t.Error(err)
			}
		})
	}
}

// InRange resolves c for a, failing t with the resolution error.
func InRange[T any](t testing.TB, a domain.Adapter[T], c inrange.Constraint) inrange.Interval[T] {
	t.Helper()
	iv, err := inrange.Resolve(a, c)
	if err != nil {
		t.Fatalf("%s: %v", inrange.Kind(err), err)
	}
	return iv
}
