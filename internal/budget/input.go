package budget

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// Amounts with an exponent outside of this range are not valid input. The
// lower bound matches decimal.DivisionPrecision so that every intermediate
// result of an allocation stays valid.
const (
	minExponent = -16
	maxExponent = 15
)

// Loan is an outstanding loan. Amount is the principal, InterestRate is a
// yearly percentage between 0 and 100.
type Loan struct {
	Amount       decimal.Decimal `json:"amount" example:"120000"`
	InterestRate decimal.Decimal `json:"interestRate" example:"12"`
}

// Input holds the raw figures a user entered.
//
// Income and Expenses are in the unit selected by IsYearly. Loan amounts are
// principals and do not depend on the unit.
type Input struct {
	Income   decimal.Decimal              `json:"income" example:"5000"`
	Expenses map[Category]decimal.Decimal `json:"expenses"`
	Loans    []Loan                       `json:"loans"`
	IsYearly bool                         `json:"isYearly" example:"false"`
}

// NewInput returns the default input: every figure zero, monthly mode and a
// single empty loan row.
func NewInput() Input {
	expenses := make(map[Category]decimal.Decimal, categoryCount)
	for _, c := range Categories() {
		expenses[c] = decimal.Zero
	}

	return Input{
		Income:   decimal.Zero,
		Expenses: expenses,
		Loans:    []Loan{{Amount: decimal.Zero, InterestRate: decimal.Zero}},
	}
}

func (in *Input) SetIncome(amount decimal.Decimal) {
	in.Income = nonNegative(amount)
}

func (in *Input) SetExpense(c Category, amount decimal.Decimal) {
	if !c.valid() {
		return
	}
	if in.Expenses == nil {
		in.Expenses = make(map[Category]decimal.Decimal, categoryCount)
	}
	in.Expenses[c] = nonNegative(amount)
}

func (in *Input) SetLoanAmount(i int, amount decimal.Decimal) {
	if i < 0 || i >= len(in.Loans) {
		return
	}
	in.Loans[i].Amount = nonNegative(amount)
}

func (in *Input) SetLoanRate(i int, rate decimal.Decimal) {
	if i < 0 || i >= len(in.Loans) {
		return
	}
	in.Loans[i].InterestRate = clampRate(rate)
}

func (in *Input) AddLoan() {
	in.Loans = append(in.Loans, Loan{Amount: decimal.Zero, InterestRate: decimal.Zero})
}

// RemoveLoan removes the loan at index i, keeping the order of the others.
func (in *Input) RemoveLoan(i int) {
	if i < 0 || i >= len(in.Loans) {
		return
	}
	in.Loans = slices.Delete(slices.Clone(in.Loans), i, i+1)
}

// ToggleTimeUnit switches between monthly and yearly figures. The entered
// values are reinterpreted in the new unit, not converted.
func (in *Input) ToggleTimeUnit() {
	in.IsYearly = !in.IsYearly
}

// ValidAmount reports if the exponent of d is within the range amounts are
// allowed to have. Invalid amounts are read as zero.
func ValidAmount(d decimal.Decimal) bool {
	return d.Exponent() >= minExponent && d.Exponent() <= maxExponent
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() || !ValidAmount(d) {
		return decimal.Zero
	}
	return d
}

func clampRate(d decimal.Decimal) decimal.Decimal {
	d = nonNegative(d)
	if d.GreaterThan(hundred) {
		return hundred
	}
	return d
}
