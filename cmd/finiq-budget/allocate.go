package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/finiq/backend/internal/budget"
	"github.com/finiq/backend/internal/cli"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	errExpenseFormat = errors.New("expenses must be given as category=amount")
	errLoanFormat    = errors.New("loans must be given as amount@rate")
)

type allocateFlags struct {
	income   string
	expenses []string
	loans    []string
	yearly   bool
}

func newAllocateCmd() *cobra.Command {
	var flags allocateFlags

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Allocate your disposable income",
		Example: `  finiq-budget allocate --income 5000 --expense housing=1500
  finiq-budget allocate --income 60000 --expense groceries=12000 --loan 120000@12 --yearly`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := flags.input()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.RenderTitle(title(in)))
			fmt.Fprintln(out)

			b := budget.Allocate(in)
			if b.IsEmpty() {
				fmt.Fprint(out, cli.RenderFallback(budget.FallbackMessage(in), budget.Tips()))
				return nil
			}

			fmt.Fprint(out, cli.RenderSummary(budget.Summarize(in)))
			fmt.Fprintln(out)
			fmt.Fprint(out, cli.RenderLegend(b))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.income, "income", "i", "0", "Income for the selected period")
	cmd.Flags().StringArrayVarP(&flags.expenses, "expense", "e", nil, "Expense as category=amount, can be repeated. The last value for a category wins")
	cmd.Flags().StringArrayVarP(&flags.loans, "loan", "l", nil, "Loan as amount@rate with a yearly interest rate in percent, can be repeated")
	cmd.Flags().BoolVarP(&flags.yearly, "yearly", "y", false, "Income and expenses are yearly figures")

	return cmd
}

// input builds the budget input from the flags the same way a user would
// fill in the form.
func (f allocateFlags) input() (budget.Input, error) {
	in := budget.NewInput()
	in.RemoveLoan(0)

	if f.yearly {
		in.ToggleTimeUnit()
	}

	income, err := parseDecimal(f.income)
	if err != nil {
		return in, fmt.Errorf("income: %w", err)
	}
	in.SetIncome(income)

	for _, e := range f.expenses {
		key, value, ok := strings.Cut(e, "=")
		if !ok {
			return in, fmt.Errorf("%w: %q", errExpenseFormat, e)
		}

		c, err := budget.ParseCategory(strings.TrimSpace(key))
		if err != nil {
			return in, err
		}

		amount, err := parseDecimal(value)
		if err != nil {
			return in, fmt.Errorf("expense %s: %w", key, err)
		}
		in.SetExpense(c, amount)
	}

	for _, l := range f.loans {
		amountStr, rateStr, ok := strings.Cut(l, "@")
		if !ok {
			return in, fmt.Errorf("%w: %q", errLoanFormat, l)
		}

		amount, err := parseDecimal(amountStr)
		if err != nil {
			return in, fmt.Errorf("loan amount: %w", err)
		}

		rate, err := parseDecimal(strings.TrimSuffix(strings.TrimSpace(rateStr), "%"))
		if err != nil {
			return in, fmt.Errorf("loan rate: %w", err)
		}

		in.AddLoan()
		i := len(in.Loans) - 1
		in.SetLoanAmount(i, amount)
		in.SetLoanRate(i, rate)
	}

	return in, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

func title(in budget.Input) string {
	if in.IsYearly {
		return "BUDGET ALLOCATION  yearly"
	}
	return "BUDGET ALLOCATION  monthly"
}
