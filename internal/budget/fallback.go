package budget

import (
	"fmt"

	"golang.org/x/exp/slices"
)

var tips = []string{
	"Try to keep essential expenses below 50% of your income",
	"Build an emergency fund covering 3-6 months of expenses",
	"Consider debt consolidation if you have multiple high-interest loans",
	"Automate your savings and investment contributions",
}

// FallbackMessage is shown instead of an empty breakdown.
func FallbackMessage(in Input) string {
	unit := "monthly"
	if in.IsYearly {
		unit = "yearly"
	}

	return fmt.Sprintf("Your expenses exceed your income. Please review your budget to ensure expenses and loan payments don't exceed your %s income.", unit)
}

// Tips returns general budgeting advice shown next to every breakdown.
func Tips() []string {
	return slices.Clone(tips)
}
