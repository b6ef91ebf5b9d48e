package budget

import (
	"errors"
	"fmt"
)

var ErrUnknownCategory = errors.New("unknown expense category")

// Category is one of the fixed expense categories a user can budget for.
//
// The set is closed: every value between Housing and Miscellaneous is valid,
// and the order of declaration is the order categories appear in a Breakdown.
type Category int

const (
	Housing Category = iota
	Utilities
	Groceries
	Transportation
	Healthcare
	Insurance
	Education
	Entertainment
	Shopping
	Dining
	Miscellaneous

	categoryCount
)

type categoryDef struct {
	key   string
	label string
	color string
}

var categoryDefs = [categoryCount]categoryDef{
	Housing:        {"housing", "Housing (Rent/EMI)", "#8b5cf6"},
	Utilities:      {"utilities", "Utilities (Electricity, Water, Gas)", "#06b6d4"},
	Groceries:      {"groceries", "Groceries & Household", "#10b981"},
	Transportation: {"transportation", "Transportation", "#f59e0b"},
	Healthcare:     {"healthcare", "Healthcare", "#ef4444"},
	Insurance:      {"insurance", "Insurance Premiums", "#6366f1"},
	Education:      {"education", "Education & Training", "#ec4899"},
	Entertainment:  {"entertainment", "Entertainment", "#14b8a6"},
	Shopping:       {"shopping", "Shopping & Personal Care", "#8b5cf6"},
	Dining:         {"dining", "Dining Out", "#f43f5e"},
	Miscellaneous:  {"miscellaneous", "Miscellaneous", "#94a3b8"},
}

// Categories returns all expense categories in display order.
func Categories() []Category {
	c := make([]Category, 0, categoryCount)
	for i := Category(0); i < categoryCount; i++ {
		c = append(c, i)
	}
	return c
}

// ParseCategory returns the category for its key, e.g. "housing".
func ParseCategory(key string) (Category, error) {
	for i, def := range categoryDefs {
		if def.key == key {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
}

func (c Category) valid() bool {
	return c >= 0 && c < categoryCount
}

// Key is the stable identifier used in JSON and on the command line.
func (c Category) Key() string {
	if !c.valid() {
		return ""
	}
	return categoryDefs[c].key
}

// Label is the human readable name shown in a Breakdown.
func (c Category) Label() string {
	if !c.valid() {
		return ""
	}
	return categoryDefs[c].label
}

// Color is the hex color token used to render the category.
func (c Category) Color() string {
	if !c.valid() {
		return ""
	}
	return categoryDefs[c].color
}

func (c Category) String() string {
	return c.Key()
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.Key()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
