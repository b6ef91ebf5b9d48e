package v1

import (
	"encoding/json"

	"github.com/finiq/backend/internal/budget"
	"github.com/shopspring/decimal"
)

type Category struct {
	Key   string `json:"key" example:"housing"`              // Key used for the category in budget inputs
	Label string `json:"label" example:"Housing (Rent/EMI)"` // Human readable name
	Color string `json:"color" example:"#8b5cf6"`            // Hex color of the category in charts
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of expense categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// Amount is a number entered in the budget form. Numbers and numeric strings
// are read as amounts, everything else as zero.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		s = string(data)
	}

	a.Decimal = budget.ParseAmount(s)
	return nil
}

type LoanInput struct {
	Amount       Amount `json:"amount" swaggertype:"number" example:"120000"`    // Principal of the loan
	InterestRate Amount `json:"interestRate" swaggertype:"number" example:"12"` // Yearly interest rate in percent
}

// BudgetInput is the budget form as entered by the user.
type BudgetInput struct {
	Income   Amount            `json:"income" swaggertype:"number" example:"5000"` // Income in the unit selected by isYearly
	Expenses map[string]Amount `json:"expenses"`                                   // Expenses per category key, in the unit selected by isYearly. Unknown keys are ignored.
	Loans    []LoanInput       `json:"loans"`                                      // Outstanding loans
	IsYearly bool              `json:"isYearly" default:"false" example:"false"`   // Whether the figures are yearly instead of monthly
}

// model applies the input to a fresh budget.Input, normalizing every value
// the same way the form does.
func (b BudgetInput) model() budget.Input {
	in := budget.NewInput()
	in.RemoveLoan(0)

	in.SetIncome(b.Income.Decimal)
	for key, amount := range b.Expenses {
		c, err := budget.ParseCategory(key)
		if err != nil {
			continue
		}
		in.SetExpense(c, amount.Decimal)
	}

	for i, l := range b.Loans {
		in.AddLoan()
		in.SetLoanAmount(i, l.Amount.Decimal)
		in.SetLoanRate(i, l.InterestRate.Decimal)
	}

	if b.IsYearly {
		in.ToggleTimeUnit()
	}

	return in
}

type Allocation struct {
	Entries        budget.Breakdown `json:"entries"`                         // The breakdown, in the unit of the input
	Total          decimal.Decimal  `json:"total" example:"5000"`            // Sum of all entries
	TotalFormatted string           `json:"totalFormatted" example:"₹5,000"` // Total formatted as Indian Rupees
	Summary        *budget.Summary  `json:"summary,omitempty"`               // Monthly figures the breakdown is based on
	Fallback       bool             `json:"fallback" example:"false"`        // True if there is nothing to show and the user should review the budget
	Message        string           `json:"message,omitempty"`               // Message to show instead of an empty breakdown
	Tips           []string         `json:"tips"`                            // General budgeting advice
	IsYearly       bool             `json:"isYearly" example:"false"`        // Unit of the entries
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`                                                                                                       // Data for the allocation
	Error *string     `json:"error" example:"the body of your request contains invalid or un-parseable data. Please check and try again"` // The error, if any occurred
}

func newAllocation(in budget.Input, b budget.Breakdown) Allocation {
	a := Allocation{
		Entries:        b,
		Total:          b.Total(),
		TotalFormatted: budget.FormatAmount(b.Total()),
		Fallback:       b.IsEmpty(),
		Tips:           budget.Tips(),
		IsYearly:       in.IsYearly,
	}

	if a.Fallback {
		a.Message = budget.FallbackMessage(in)
	}

	return a
}
