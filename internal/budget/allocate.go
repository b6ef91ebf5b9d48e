package budget

import (
	"github.com/shopspring/decimal"
)

const (
	LabelLoanPayments  = "Loan Payments"
	LabelEmergencyFund = "Emergency Fund"
	LabelInvestments   = "Investments"
	LabelDiscretionary = "Discretionary"
)

// Shares of the disposable income put into each surplus bucket.
var (
	emergencyShare     = decimal.NewFromFloat(0.3)
	investmentShare    = decimal.NewFromFloat(0.4)
	discretionaryShare = decimal.NewFromFloat(0.3)
)

// Entry is one slice of a budget breakdown.
type Entry struct {
	Category string          `json:"category" example:"Housing (Rent/EMI)"`
	Amount   decimal.Decimal `json:"amount" example:"1500"`
	Color    string          `json:"color" example:"#8b5cf6"`
}

// Breakdown is the ordered list of allocations produced for an Input.
type Breakdown []Entry

// Total is the sum of all entries.
func (b Breakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b {
		total = total.Add(e.Amount)
	}
	return total
}

// IsEmpty reports whether there is nothing to display. Callers should ask the
// user to review their budget in that case.
func (b Breakdown) IsEmpty() bool {
	return len(b) == 0
}

// Summary contains the monthly figures an allocation is based on.
type Summary struct {
	MonthlyIncome      decimal.Decimal `json:"monthlyIncome" example:"5000"`
	MonthlyExpenses    decimal.Decimal `json:"monthlyExpenses" example:"1500"`
	MonthlyLoanPayment decimal.Decimal `json:"monthlyLoanPayment" example:"0"`
	DisposableIncome   decimal.Decimal `json:"disposableIncome" example:"3500"`
}

// Summarize computes the monthly income, expenses, loan payments and the
// disposable income (floored at zero) for the input.
func Summarize(in Input) Summary {
	income := nonNegative(in.Income)
	expenses := expenseTotal(in)
	if in.IsYearly {
		income = income.Div(monthsInYear)
		expenses = expenses.Div(monthsInYear)
	}

	loans := yearlyLoanPayment(in.Loans).Div(monthsInYear)

	return Summary{
		MonthlyIncome:      income,
		MonthlyExpenses:    expenses,
		MonthlyLoanPayment: loans,
		DisposableIncome:   nonNegative(income.Sub(expenses).Sub(loans)),
	}
}

// Allocate turns an Input into a Breakdown.
//
// The breakdown lists every expense category with a positive amount, the
// total loan payment and, if income is left over, the split of that surplus
// into emergency fund, investments and discretionary spending. All amounts
// are in the unit of the input. Negative figures are treated as zero.
//
// Loan payments use a straight-line model: each month pays a twelfth of the
// principal plus a twelfth of a full year's interest on the whole principal.
// This is not a reducing-balance amortization.
func Allocate(in Input) Breakdown {
	entries := make(Breakdown, 0, int(categoryCount)+4)

	for _, c := range Categories() {
		entries = append(entries, Entry{
			Category: c.Label(),
			Amount:   nonNegative(in.Expenses[c]),
			Color:    c.Color(),
		})
	}

	// Loans are yearly by nature. Expressing the payment in the unit of the
	// input keeps monthly and yearly results exact multiples of each other.
	loans := yearlyLoanPayment(in.Loans)
	if !in.IsYearly {
		loans = loans.Div(monthsInYear)
	}
	entries = append(entries, Entry{Category: LabelLoanPayments, Amount: loans, Color: "#ef4444"})

	disposable := nonNegative(in.Income).Sub(expenseTotal(in)).Sub(loans)
	if disposable.IsPositive() {
		entries = append(entries,
			Entry{Category: LabelEmergencyFund, Amount: disposable.Mul(emergencyShare), Color: "#10b981"},
			Entry{Category: LabelInvestments, Amount: disposable.Mul(investmentShare), Color: "#06b6d4"},
			Entry{Category: LabelDiscretionary, Amount: disposable.Mul(discretionaryShare), Color: "#f59e0b"},
		)
	}

	breakdown := make(Breakdown, 0, len(entries))
	for _, e := range entries {
		if e.Amount.IsPositive() {
			breakdown = append(breakdown, e)
		}
	}

	return breakdown
}

func expenseTotal(in Input) decimal.Decimal {
	total := decimal.Zero
	for _, c := range Categories() {
		total = total.Add(nonNegative(in.Expenses[c]))
	}
	return total
}

// yearlyLoanPayment returns twelve monthly straight-line payments summed over
// all loans, which is principal * (1 + rate/100) per loan.
func yearlyLoanPayment(loans []Loan) decimal.Decimal {
	total := decimal.Zero
	for _, l := range loans {
		amount := nonNegative(l.Amount)
		interest := amount.Mul(clampRate(l.InterestRate)).Div(hundred)
		total = total.Add(amount).Add(interest)
	}
	return total
}
