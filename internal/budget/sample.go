package budget

import "github.com/shopspring/decimal"

// sampleIncome is the monthly income the sample template is calibrated for.
var sampleIncome = decimal.NewFromInt(4000)

var sampleTemplate = Breakdown{
	{Category: "Housing", Amount: decimal.NewFromInt(1500), Color: "#8b5cf6"},
	{Category: "Food", Amount: decimal.NewFromInt(500), Color: "#06b6d4"},
	{Category: "Transportation", Amount: decimal.NewFromInt(400), Color: "#10b981"},
	{Category: "Utilities", Amount: decimal.NewFromInt(300), Color: "#f59e0b"},
	{Category: "Entertainment", Amount: decimal.NewFromInt(300), Color: "#ef4444"},
	{Category: "Savings", Amount: decimal.NewFromInt(600), Color: "#6366f1"},
	{Category: "Other", Amount: decimal.NewFromInt(400), Color: "#94a3b8"},
}

// SampleBudget scales the demo budget linearly to the given monthly income,
// rounding every amount to a whole unit. A non-positive income yields the
// template for an income of 4000.
func SampleBudget(income decimal.Decimal) Breakdown {
	if !income.IsPositive() {
		income = sampleIncome
	}

	b := make(Breakdown, 0, len(sampleTemplate))
	for _, e := range sampleTemplate {
		b = append(b, Entry{
			Category: e.Category,
			Amount:   e.Amount.Mul(income).Div(sampleIncome).Round(0),
			Color:    e.Color,
		})
	}

	return b
}
