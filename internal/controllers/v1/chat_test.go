package v1_test

import (
	"net/http"

	"github.com/finiq/backend/internal/advisor"
	v1 "github.com/finiq/backend/internal/controllers/v1"
	"github.com/finiq/backend/test"
)

func (suite *TestSuiteStandard) TestChatSuggestions() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/chat/suggestions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SuggestionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(advisor.SuggestedQuestions(), response.Data)
	suite.Assert().NotEmpty(response.Data)
}

func (suite *TestSuiteStandard) TestChatSuggestionsOptions() {
	recorder := suite.request(http.MethodOptions, "http://example.com/v1/chat/suggestions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}
