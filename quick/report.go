package quick

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomePassed    Outcome = "passed"
	OutcomeFalsified Outcome = "falsified"
	OutcomeGaveUp    Outcome = "gave-up"
	OutcomeAborted   Outcome = "aborted"
)

var (
	// ErrDiscard returned by a property skips the trial without counting it.
	ErrDiscard = errors.New("quick: trial discarded")

	// ErrGaveUp is the cause of a report whose property discarded too many trials.
	ErrGaveUp = errors.New("quick: too many discarded trials")

	errDoesNotHold = errors.New("property does not hold")
)

// Report is the result of checking one property.
type Report struct {
	RunID     uuid.UUID
	Name      string
	Domain    string
	Seed      uint64
	Outcome   Outcome
	Trials    int
	Discarded int

	// Counterexample is the shrunk failing value and Original the value
	// first found to fail. Both are nil unless the property was falsified.
	Counterexample any
	Original       any
	Shrinks        int
	ShrinkAttempts int

	// Cause is the error the property returned for Counterexample, or the
	// reason the run stopped early.
	Cause    error
	Duration time.Duration
}

// Passed reports whether every trial held.
func (r Report) Passed() bool { return r.Outcome == OutcomePassed }

// Err returns nil for a passed property, a *FalsifiedError for a falsified
// one and the cause of any other outcome.
func (r Report) Err() error {
	switch r.Outcome {
	case OutcomePassed:
		return nil
	case OutcomeFalsified:
		return &FalsifiedError{
			Name:           r.Name,
			Seed:           r.Seed,
			Trials:         r.Trials,
			Counterexample: r.Counterexample,
			Original:       r.Original,
			Shrinks:        r.Shrinks,
			Err:            r.Cause,
		}
	}
	return fmt.Errorf("quick: property %q %s after %d trials: %w", r.Name, r.Outcome, r.Trials, r.Cause)
}

func (r Report) String() string {
	switch r.Outcome {
	case OutcomePassed:
		return fmt.Sprintf("%s: passed %d trials (%d discarded, seed %d)", r.Name, r.Trials, r.Discarded, r.Seed)
	case OutcomeFalsified:
		return r.Err().Error()
	}
	return fmt.Sprintf("%s: %s after %d trials (seed %d): %v", r.Name, r.Outcome, r.Trials, r.Seed, r.Cause)
}

// FalsifiedError describes a counterexample.
type FalsifiedError struct {
	Name           string
	Seed           uint64
	Trials         int
	Counterexample any
	Original       any
	Shrinks        int
	Err            error
}

func (e *FalsifiedError) Error() string {
	msg := fmt.Sprintf("quick: property %q falsified after %d trials (seed %d): counterexample %v", e.Name, e.Trials, e.Seed, e.Counterexample)
	if e.Shrinks > 0 {
		msg += fmt.Sprintf(" (shrunk %d times from %v)", e.Shrinks, e.Original)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FalsifiedError) Unwrap() error { return e.Err }

// PanicError wraps a panic raised by a property.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func recovered(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}
