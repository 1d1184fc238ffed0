package quick

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vitalvas/propkit/gen"
	"github.com/vitalvas/propkit/inrange"
	"github.com/vitalvas/propkit/shrink"
)

// Property is a named check over the values of one interval.
type Property interface {
	Name() string
	Domain() string
	check(ctx context.Context, r *Runner) Report
}

type forAll[T any] struct {
	name string
	iv   inrange.Interval[T]
	fn   func(T) error
}

// ForAll returns a property that holds when fn returns nil for every value
// drawn from iv. Returning ErrDiscard skips the value; a panic fails it.
func ForAll[T any](name string, iv inrange.Interval[T], fn func(T) error) Property {
	return &forAll[T]{name: name, iv: iv, fn: fn}
}

// Holds is ForAll for predicates.
func Holds[T any](name string, iv inrange.Interval[T], fn func(T) bool) Property {
	return ForAll(name, iv, func(v T) error {
		if !fn(v) {
			return errDoesNotHold
		}
		return nil
	})
}

func (p *forAll[T]) Name() string   { return p.name }
func (p *forAll[T]) Domain() string { return p.iv.Domain().Name() }

func (p *forAll[T]) eval(v T) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = recovered(rec)
		}
	}()
	return p.fn(v)
}

func (p *forAll[T]) check(ctx context.Context, r *Runner) (rep Report) {
	cfg := r.cfg
	seed := cfg.Seed
	if seed == 0 {
		seed = gen.RandomSeed()
	}

	rep = Report{
		RunID:  uuid.New(),
		Name:   p.name,
		Domain: p.Domain(),
		Seed:   seed,
	}

	ctx, span := r.tracer.Start(ctx, "quick.Check", trace.WithAttributes(
		attribute.String("property", rep.Name),
		attribute.String("domain", rep.Domain),
		attribute.String("run_id", rep.RunID.String()),
		attribute.Int64("seed", int64(seed)),
	))
	defer span.End()

	logger := r.logger.With(
		slog.String("run_id", rep.RunID.String()),
		slog.String("property", rep.Name),
		slog.String("domain", rep.Domain),
	)

	start := time.Now()
	defer func() {
		rep.Duration = time.Since(start)
		r.metrics.run(rep.Outcome)
		span.SetAttributes(
			attribute.String("outcome", string(rep.Outcome)),
			attribute.Int("trials", rep.Trials),
			attribute.Int("shrinks", rep.Shrinks),
		)
	}()

	logger.Debug("check started", slog.Uint64("seed", seed), slog.Int("trials", cfg.Trials), slog.String("interval", p.iv.String()))

	g := gen.New(p.iv)
	src := gen.NewSource(seed)

	for rep.Trials < cfg.Trials {
		if err := ctx.Err(); err != nil {
			rep.Outcome, rep.Cause = OutcomeAborted, err
			span.SetStatus(codes.Error, err.Error())
			logger.Warn("check aborted", slog.Int("trials", rep.Trials), slog.Any("error", err))
			return rep
		}

		v := g.Next(src)
		err := p.eval(v)
		switch {
		case err == nil:
			rep.Trials++
			r.metrics.trial(rep.Domain, "passed")
			continue
		case errors.Is(err, ErrDiscard):
			rep.Discarded++
			r.metrics.trial(rep.Domain, "discarded")
			if rep.Discarded > cfg.MaxDiscards {
				rep.Outcome, rep.Cause = OutcomeGaveUp, ErrGaveUp
				logger.Warn("check gave up", slog.Int("trials", rep.Trials), slog.Int("discarded", rep.Discarded))
				return rep
			}
			continue
		}

		rep.Trials++
		r.metrics.trial(rep.Domain, "failed")
		rep.Outcome = OutcomeFalsified
		rep.Original, rep.Counterexample, rep.Cause = v, v, err
		logger.Warn("property falsified", slog.Uint64("seed", seed), slog.Int("trial", rep.Trials), slog.Any("value", v), slog.Any("error", err))

		if cfg.Shrink {
			shrunk, cause := p.shrink(ctx, r, v, err, &rep, logger)
			rep.Counterexample, rep.Cause = shrunk, cause
			logger.Warn("shrunk counterexample",
				slog.Uint64("seed", seed),
				slog.Any("value", shrunk),
				slog.Any("original", v),
				slog.Int("shrinks", rep.Shrinks),
				slog.Int("attempts", rep.ShrinkAttempts),
				slog.Any("error", cause),
			)
		}

		span.RecordError(rep.Cause)
		span.SetStatus(codes.Error, "falsified")
		return rep
	}

	rep.Outcome = OutcomePassed
	logger.Info("property passed", slog.Uint64("seed", seed), slog.Int("trials", rep.Trials), slog.Int("discarded", rep.Discarded))
	return rep
}

// shrink walks toward simpler failing values. Each accepted step restarts
// from the new value; the walk stops when no candidate fails or a limit is hit.
func (p *forAll[T]) shrink(ctx context.Context, r *Runner, v T, cause error, rep *Report, logger *slog.Logger) (T, error) {
	cfg := r.cfg
	start := time.Now()
	deadline := start.Add(cfg.MaxShrinkTime)
	defer func() { r.metrics.shrunk(rep.Domain, time.Since(start)) }()

	current, currentErr := v, cause
	for depth := 0; depth < cfg.MaxShrinkDepth; depth++ {
		improved := false
		for c := range shrink.Shrink(current, p.iv) {
			if rep.ShrinkAttempts >= cfg.MaxShrinks || ctx.Err() != nil || time.Now().After(deadline) {
				logger.Debug("shrink limit reached", slog.Int("attempts", rep.ShrinkAttempts), slog.Int("shrinks", rep.Shrinks))
				return current, currentErr
			}
			rep.ShrinkAttempts++

			err := p.eval(c)
			if err == nil || errors.Is(err, ErrDiscard) {
				continue
			}

			current, currentErr = c, err
			rep.Shrinks++
			r.metrics.shrinkStep(rep.Domain)
			logger.Debug("shrunk", slog.Int("step", rep.Shrinks), slog.Any("value", c))
			improved = true
			break
		}
		if !improved {
			break
		}
	}
	return current, currentErr
}
