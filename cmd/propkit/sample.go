package main

import (
	"fmt"
	"math/big"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/vitalvas/propkit/gen"
)

type sampleFlags struct {
	rangeFlags
	count int
	seed  uint64
	stats bool
}

func newSampleCmd(a *app) *cobra.Command {
	f := &sampleFlags{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print generated values of a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.sample(cmd, f)
		},
	}

	f.register(cmd)
	cmd.Flags().IntVarP(&f.count, "count", "n", 10, "number of values")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed, 0 picks one")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "print where the values fall inside the range")

	return cmd
}

func (a *app) sample(cmd *cobra.Command, f *sampleFlags) error {
	if f.count <= 0 {
		return fmt.Errorf("count must be positive, got %d", f.count)
	}

	t, err := a.resolve(cmd, &f.rangeFlags)
	if err != nil {
		return err
	}

	seed := f.seed
	if seed == 0 {
		seed = a.cfg.Check.Seed
	}
	if seed == 0 {
		seed = gen.RandomSeed()
	}
	a.logger.Info("sampling", "interval", t.interval.String(), "count", f.count, "seed", seed)

	out := cmd.OutOrStdout()
	positions := make([]float64, 0, f.count)
	g := gen.New(t.interval)

	for v := range g.Stream(seed) {
		text, err := t.format(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)

		positions = append(positions, position(t, v))
		if len(positions) == f.count {
			break
		}
	}

	if f.stats {
		return printStats(cmd, positions)
	}
	return nil
}

// position maps v to [0, 1] by its offset from the low end of the range.
func position(t target, v any) float64 {
	span := new(big.Int).Sub(t.interval.Span(), big.NewInt(1))
	if span.Sign() == 0 {
		return 0
	}

	offset := new(big.Int).Sub(t.adapter.Unit(v), t.interval.LowUnit())
	p, _ := new(big.Rat).SetFrac(offset, span).Float64()
	return p
}

func printStats(cmd *cobra.Command, positions []float64) error {
	data := stats.Float64Data(positions)

	mean, err := data.Mean()
	if err != nil {
		return err
	}
	median, err := data.Median()
	if err != nil {
		return err
	}
	p90, err := data.Percentile(90)
	if err != nil {
		return err
	}
	stddev, err := data.StandardDeviation()
	if err != nil {
		return err
	}
	lo, err := data.Min()
	if err != nil {
		return err
	}
	hi, err := data.Max()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "position min=%.4f p50=%.4f p90=%.4f max=%.4f mean=%.4f stddev=%.4f\n",
		lo, median, p90, hi, mean, stddev)
	return nil
}
