package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/propkit/quick"
)

type checkFlags struct {
	rangeFlags
	before string
	trials int
	seed   uint64
}

// newCheckCmd runs the property "every value is before --before" and
// reports the shrunk counterexample, which shows how shrinking converges
// on the boundary.
func newCheckCmd(a *app) *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every value of a range is before a given value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.check(cmd, f)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&f.before, "before", "", "exclusive upper limit the property asserts, in --format")
	cmd.Flags().IntVar(&f.trials, "trials", 0, "number of trials, overrides the config")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed, overrides the config")
	_ = cmd.MarkFlagRequired("before")

	return cmd
}

func (a *app) check(cmd *cobra.Command, f *checkFlags) error {
	t, err := a.resolve(cmd, &f.rangeFlags)
	if err != nil {
		return err
	}

	limit, err := t.parse(f.before)
	if err != nil {
		return err
	}

	cfg := a.cfg.Check
	if f.trials > 0 {
		cfg.Trials = f.trials
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}

	runner := quick.New(cfg, quick.WithLogger(a.logger))

	name := "before " + f.before
	rep := runner.Check(cmd.Context(), quick.Holds(name, t.interval, func(v any) bool {
		return t.adapter.Compare(v, limit) < 0
	}))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, rep.String())
	if rep.Outcome == quick.OutcomeFalsified {
		counterexample, err := t.format(rep.Counterexample)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "counterexample:", counterexample)
	}
	return rep.Err()
}
