package main

import (
	"fmt"

	"github.com/finiq/backend/internal/budget"
	"github.com/finiq/backend/internal/cli"
	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	var income string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Show the sample budget for a monthly income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.RenderTitle("SAMPLE BUDGET"))
			fmt.Fprintln(out)
			fmt.Fprint(out, cli.RenderLegend(budget.SampleBudget(budget.ParseAmount(income))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&income, "income", "i", "4000", "Monthly income")

	return cmd
}
