package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Session is the state of one user of the chat assistant.
//
// Its ID doubles as the user ID sent to the advisor backend.
type Session struct {
	DefaultModel
	HasProfile bool      `json:"hasProfile"`
	Profile    Profile   `json:"profile" gorm:"embedded;embeddedPrefix:profile_"`
	Messages   []Message `json:"-"`
}

// Profile is the financial profile a user submits before chatting.
type Profile struct {
	Income        decimal.Decimal `json:"income" gorm:"type:DECIMAL(20,8)" example:"85000"`
	Expenses      decimal.Decimal `json:"expenses" gorm:"type:DECIMAL(20,8)" example:"42000"`
	Goals         string          `json:"goals" example:"Buy a flat in five years"`
	Experience    string          `json:"experience" example:"beginner"`
	RiskTolerance string          `json:"riskTolerance" example:"moderate"`
}

func (s *Session) BeforeSave(_ *gorm.DB) error {
	s.Profile.Goals = strings.TrimSpace(s.Profile.Goals)
	s.Profile.Experience = strings.TrimSpace(s.Profile.Experience)
	s.Profile.RiskTolerance = strings.TrimSpace(s.Profile.RiskTolerance)

	return s.Profile.Validate()
}

// Validate checks that the amounts of the profile fit the database columns.
func (p Profile) Validate() error {
	for _, d := range []decimal.Decimal{p.Income, p.Expenses} {
		if d.IsNegative() {
			return ErrProfileAmountNegative
		}

		// DECIMAL(20,8)
		if d.Exponent() < -8 || d.NumDigits()+int(d.Exponent()) > 12 {
			return ErrProfileAmountInvalid
		}
	}

	return nil
}
