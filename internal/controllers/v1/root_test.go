package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/finiq/backend/internal/controllers/v1"
	"github.com/finiq/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(v1.Links{
		Budget:   "http://example.com/v1/budget",
		Sessions: "http://example.com/v1/sessions",
		Chat:     "http://example.com/v1/chat",
		Market:   "http://example.com/v1/market",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/budget/categories", "OPTIONS, GET"},
		{"http://example.com/v1/budget/allocations", "OPTIONS, POST"},
		{"http://example.com/v1/budget/chart", "OPTIONS, POST"},
		{"http://example.com/v1/budget/sample", "OPTIONS, GET"},
		{"http://example.com/v1/sessions", "OPTIONS, POST"},
		{"http://example.com/v1/chat/suggestions", "OPTIONS, GET"},
		{"http://example.com/v1/market/news", "OPTIONS, GET"},
		{"http://example.com/v1/market/indices", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, tt.allow, recorder.Header().Get("allow"))
		})
	}
}
