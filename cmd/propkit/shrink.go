package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/propkit/shrink"
)

type shrinkFlags struct {
	rangeFlags
	value string
}

func newShrinkCmd(a *app) *cobra.Command {
	f := &shrinkFlags{}

	cmd := &cobra.Command{
		Use:   "shrink",
		Short: "Print the shrink candidates of a value, closest to the target first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.shrink(cmd, f)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&f.value, "value", "", "value to shrink, in --format")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func (a *app) shrink(cmd *cobra.Command, f *shrinkFlags) error {
	t, err := a.resolve(cmd, &f.rangeFlags)
	if err != nil {
		return err
	}

	v, err := t.parse(f.value)
	if err != nil {
		return err
	}
	if !t.interval.Contains(v) {
		return fmt.Errorf("value %s is outside %s", f.value, t.interval)
	}

	out := cmd.OutOrStdout()
	for c := range shrink.Shrink(v, t.interval) {
		text, err := t.format(c)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	}
	return nil
}
