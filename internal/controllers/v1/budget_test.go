package v1_test

import (
	"bytes"
	"image/png"
	"net/http"
	"testing"

	v1 "github.com/finiq/backend/internal/controllers/v1"
	"github.com/finiq/backend/internal/httputil"
	"github.com/finiq/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetCategories() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/budget/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 11)
	suite.Assert().Equal(v1.Category{Key: "housing", Label: "Housing (Rent/EMI)", Color: "#8b5cf6"}, response.Data[0])
	suite.Assert().Equal("miscellaneous", response.Data[10].Key)
}

func (suite *TestSuiteStandard) TestBudgetAllocation() {
	tests := []struct {
		name     string
		body     string
		entries  map[string]string
		total    string
		fallback bool
	}{
		{
			"Surplus split",
			`{ "income": 5000, "expenses": { "housing": 1500 } }`,
			map[string]string{"Housing (Rent/EMI)": "1500", "Emergency Fund": "1050", "Investments": "1400", "Discretionary": "1050"},
			"5000",
			false,
		},
		{
			"Loan only",
			`{ "income": 0, "loans": [{ "amount": "120000", "interestRate": "12" }] }`,
			map[string]string{"Loan Payments": "11200"},
			"11200",
			false,
		},
		{
			"Yearly",
			`{ "income": "60000", "expenses": { "groceries": "12000" }, "isYearly": true }`,
			map[string]string{"Groceries & Household": "12000", "Emergency Fund": "14400", "Investments": "19200", "Discretionary": "14400"},
			"60000",
			false,
		},
		{
			"Negative values count as zero",
			`{ "income": -100, "expenses": { "housing": -5 } }`,
			map[string]string{},
			"0",
			true,
		},
		{
			"Interest rate is capped",
			`{ "loans": [{ "amount": 1200, "interestRate": 250 }] }`,
			map[string]string{"Loan Payments": "200"},
			"200",
			false,
		},
		{
			"Empty",
			`{}`,
			map[string]string{},
			"0",
			true,
		},
		{
			"Unknown categories are ignored",
			`{"income":5000,"expenses":{"housing":1500,"others":0},"loans":[]}`,
			map[string]string{"Housing (Rent/EMI)": "1500", "Emergency Fund": "1050", "Investments": "1400", "Discretionary": "1050"},
			"5000",
			false,
		},
		{
			"Invalid numbers count as zero",
			`{ "income": "abc", "expenses": { "housing": "lots", "dining": null, "groceries": {} }, "loans": [{ "amount": true, "interestRate": "x" }] }`,
			map[string]string{},
			"0",
			true,
		},
		{
			"Extreme exponents count as zero",
			`{ "income": 1e-2147483648, "expenses": { "housing": 1500, "dining": 1e2147483647 }, "loans": [{ "amount": 1e-200000, "interestRate": 12 }] }`,
			map[string]string{"Housing (Rent/EMI)": "1500"},
			"1500",
			false,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/budget/allocations", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.AllocationResponse
			test.DecodeResponse(t, &recorder, &response)
			require.NotNil(t, response.Data)

			entries := make(map[string]string)
			for _, e := range response.Data.Entries {
				entries[e.Category] = e.Amount.String()
			}
			assert.Equal(t, tt.entries, entries)
			assert.Equal(t, tt.total, response.Data.Total.String())
			assert.Equal(t, tt.fallback, response.Data.Fallback)
			assert.Len(t, response.Data.Tips, 4)
			require.NotNil(t, response.Data.Summary)

			if tt.fallback {
				assert.Contains(t, response.Data.Message, "Please review your budget")
			} else {
				assert.Empty(t, response.Data.Message)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetAllocationSummary() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/budget/allocations", `{ "income": 60000, "expenses": { "housing": 24000 }, "isYearly": true }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.IsYearly)
	suite.Assert().Equal("5000", response.Data.Summary.MonthlyIncome.String())
	suite.Assert().Equal("2000", response.Data.Summary.MonthlyExpenses.String())
	suite.Assert().Equal("3000", response.Data.Summary.DisposableIncome.String())
	suite.Assert().Equal("₹60,000", response.Data.TotalFormatted)
}

func (suite *TestSuiteStandard) TestBudgetAllocationBadRequest() {
	tests := []struct {
		name string
		body string
		err  string
	}{
		{"Empty body", "", httputil.ErrRequestBodyEmpty.Error()},
		{"Broken JSON", `{ "income": `, httputil.ErrInvalidBody.Error()},
		{"Expenses not an object", `{ "expenses": [5] }`, httputil.ErrInvalidBody.Error()},
		{"Loan not an object", `{ "loans": [120000] }`, httputil.ErrInvalidBody.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/budget/allocations", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Equal(t, tt.err, test.DecodeError(t, recorder.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetChart() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/budget/chart", `{ "income": 5000, "expenses": { "housing": 1500 } }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Equal("image/png", recorder.Header().Get("Content-Type"))

	_, err := png.Decode(bytes.NewReader(recorder.Body.Bytes()))
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestBudgetChartExtremeExponent() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/budget/chart", `{ "income": 1e-2147483648 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnprocessableEntity)
}

func (suite *TestSuiteStandard) TestBudgetChartEmpty() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/budget/chart", `{ "income": 0 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnprocessableEntity)
}

func (suite *TestSuiteStandard) TestBudgetChartBadRequest() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/budget/chart", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetSample() {
	tests := []struct {
		name    string
		query   string
		housing string
		total   string
	}{
		{"Default income", "", "1500", "4000"},
		{"Scaled", "?income=8000", "3000", "8000"},
		{"Invalid income", "?income=lots", "1500", "4000"},
		{"Negative income", "?income=-10", "1500", "4000"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodGet, "http://example.com/v1/budget/sample"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.AllocationResponse
			test.DecodeResponse(t, &recorder, &response)

			require.NotEmpty(t, response.Data.Entries)
			assert.Equal(t, "Housing", response.Data.Entries[0].Category)
			assert.Equal(t, tt.housing, response.Data.Entries[0].Amount.String())
			assert.Equal(t, tt.total, response.Data.Total.String())
			assert.Nil(t, response.Data.Summary)
			assert.False(t, response.Data.Fallback)
		})
	}
}
