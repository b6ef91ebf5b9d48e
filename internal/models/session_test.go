package models_test

import (
	"strings"
	"testing"

	"github.com/finiq/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSessionTrimWhitespace() {
	goals := "  Retire early \t"
	session := suite.createTestSession(models.Session{
		Profile: models.Profile{
			Goals:         goals,
			Experience:    " beginner ",
			RiskTolerance: "low\n",
		},
	})

	assert.Equal(suite.T(), strings.TrimSpace(goals), session.Profile.Goals)
	assert.Equal(suite.T(), "beginner", session.Profile.Experience)
	assert.Equal(suite.T(), "low", session.Profile.RiskTolerance)
}

func (suite *TestSuiteStandard) TestSessionNegativeProfile() {
	tests := []struct {
		name    string
		profile models.Profile
		err     error
	}{
		{"Negative income", models.Profile{Income: decimal.NewFromInt(-1)}, models.ErrProfileAmountNegative},
		{"Negative expenses", models.Profile{Expenses: decimal.NewFromInt(-1)}, models.ErrProfileAmountNegative},
		{"Too many decimal places", models.Profile{Income: decimal.RequireFromString("1e-2147483648")}, models.ErrProfileAmountInvalid},
		{"Too large", models.Profile{Expenses: decimal.RequireFromString("1e12")}, models.ErrProfileAmountInvalid},
		{"Largest amount", models.Profile{Expenses: decimal.RequireFromString("999999999999.99999999")}, nil},
		{"Valid", models.Profile{Income: decimal.NewFromInt(50000), Expenses: decimal.NewFromInt(20000)}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&models.Session{Profile: tt.profile}).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestSessionNotFound() {
	err := models.DB.First(&models.Session{}, uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "there is no session matching your query")
}

func (suite *TestSuiteStandard) TestSessionDBClosed() {
	suite.CloseDB()

	err := models.DB.Create(&models.Session{}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestSessionProfileRoundTrip() {
	session := suite.createTestSession(models.Session{
		HasProfile: true,
		Profile: models.Profile{
			Income:        decimal.NewFromFloat(85000.5),
			Expenses:      decimal.NewFromInt(42000),
			Goals:         "Emergency fund",
			Experience:    "intermediate",
			RiskTolerance: "high",
		},
	})

	var found models.Session
	err := models.DB.First(&found, session.ID).Error
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), found.HasProfile)
	assert.Equal(suite.T(), "85000.5", found.Profile.Income.String())
	assert.Equal(suite.T(), "high", found.Profile.RiskTolerance)
}
