package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDomainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List the registered domains and their natural bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, tag := range a.registry.Tags() {
				adapter, err := a.registry.Lookup(tag)
				if err != nil {
					return err
				}
				lo, hi := adapter.Bounds()
				fmt.Fprintf(w, "%s\t%v\t%v\n", tag, lo, hi)
			}
			return w.Flush()
		},
	}
}
