package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "finiq-budget",
		Short:         "FinIQ budget allocator",
		Long:          "Split your disposable income into an emergency fund, investments and discretionary spending.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newAllocateCmd())
	root.AddCommand(newSampleCmd())

	return root
}
