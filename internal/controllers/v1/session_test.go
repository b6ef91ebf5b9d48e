package v1_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/finiq/backend/internal/advisor"
	v1 "github.com/finiq/backend/internal/controllers/v1"
	"github.com/finiq/backend/internal/httputil"
	"github.com/finiq/backend/internal/models"
	"github.com/finiq/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const validProfile = `{ "income": 85000, "expenses": 42000, "goals": " Buy a flat ", "experience": "beginner", "riskTolerance": "moderate" }`

func (suite *TestSuiteStandard) createTestSession() v1.Session {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/sessions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) transcript(id uuid.UUID) []string {
	recorder := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/sessions/%s/messages", id), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MessageListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	contents := make([]string, 0, len(response.Data))
	for _, m := range response.Data {
		contents = append(contents, m.Content)
	}
	return contents
}

func (suite *TestSuiteStandard) TestSessionCreate() {
	session := suite.createTestSession()

	suite.Assert().NotEqual(uuid.Nil, session.ID)
	suite.Assert().False(session.HasProfile)
	suite.Assert().False(session.Online)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/sessions/%s/messages", session.ID), session.Links.Messages)
	suite.Assert().Equal([]string{advisor.MessageWelcome}, suite.transcript(session.ID))
}

func (suite *TestSuiteStandard) TestSessionCreateDBClosed() {
	suite.CloseDB()

	recorder := suite.request(http.MethodPost, "http://example.com/v1/sessions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestSessionGet() {
	session := suite.createTestSession()

	recorder := suite.request(http.MethodGet, session.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(session.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestSessionGetErrors() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "not-a-uuid", http.StatusBadRequest},
		{"Unknown", "2e1b6b0c-5b7a-4f3d-9c1e-8a2b3c4d5e6f", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			for _, path := range []string{"", "/messages"} {
				recorder := test.Request(t, suite.controller, http.MethodGet, "http://example.com/v1/sessions/"+tt.id+path, "")
				test.AssertHTTPStatus(t, &recorder, tt.status)
			}

			recorder := test.Request(t, suite.controller, http.MethodOptions, "http://example.com/v1/sessions/"+tt.id, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestSessionInvalidUUIDMessage() {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, ""},
		{http.MethodOptions, ""},
		{http.MethodPost, "/profile"},
		{http.MethodGet, "/messages"},
		{http.MethodPost, "/messages"},
		{http.MethodDelete, "/messages"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+tt.path, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, tt.method, "http://example.com/v1/sessions/abc"+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Equal(t, httputil.ErrInvalidUUID.Error(), test.DecodeError(t, recorder.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestSessionNotFoundMessage() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/sessions/2e1b6b0c-5b7a-4f3d-9c1e-8a2b3c4d5e6f", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	suite.Assert().Equal("there is no session matching your query", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestSessionOptions() {
	session := suite.createTestSession()

	tests := []struct {
		url   string
		allow string
	}{
		{session.Links.Self, "OPTIONS, GET"},
		{session.Links.Profile, "OPTIONS, POST"},
		{session.Links.Messages, "OPTIONS, GET, POST, DELETE"},
	}

	for _, tt := range tests {
		recorder := suite.request(http.MethodOptions, tt.url, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		suite.Assert().Equal(tt.allow, recorder.Header().Get("allow"))
	}
}

func (suite *TestSuiteStandard) TestSessionProfileOffline() {
	session := suite.createTestSession()

	recorder := suite.request(http.MethodPost, session.Links.Profile, validProfile)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.HasProfile)
	suite.Assert().Equal("85000", response.Data.Profile.Income.String())
	suite.Assert().Equal("Buy a flat", response.Data.Profile.Goals)
	suite.Assert().Equal([]string{advisor.MessageWelcome, advisor.MessageProfileSet}, suite.transcript(session.ID))
}

func (suite *TestSuiteStandard) TestSessionProfileBackend() {
	var received map[string]any
	suite.useAdvisorBackend(func(w http.ResponseWriter, r *http.Request) {
		suite.Assert().Equal("/set_profile", r.URL.Path)
		suite.Assert().Nil(json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	})

	session := suite.createTestSession()
	suite.Assert().True(session.Online)

	recorder := suite.request(http.MethodPost, session.Links.Profile, validProfile)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal(session.ID.String(), received["user_id"])
	suite.Assert().Equal("moderate", received["risk_tolerance"])
}

func (suite *TestSuiteStandard) TestSessionProfileRejected() {
	suite.useAdvisorBackend(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": "income is required"}`))
	})

	session := suite.createTestSession()

	recorder := suite.request(http.MethodPost, session.Links.Profile, validProfile)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadGateway)
	suite.Assert().Equal([]string{advisor.MessageWelcome, advisor.MessageProfileFailed}, suite.transcript(session.ID))

	recorder = suite.request(http.MethodGet, session.Links.Self, "")
	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().False(response.Data.HasProfile)
}

func (suite *TestSuiteStandard) TestSessionProfileBadRequest() {
	session := suite.createTestSession()

	tests := []struct {
		name string
		body string
	}{
		{"Empty", ""},
		{"Broken", `{ "income": `},
		{"Negative income", `{ "income": -1 }`},
		{"Negative expenses", `{ "expenses": "-0.01" }`},
		{"Extreme exponent", `{ "income": 1e-2147483648 }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodPost, session.Links.Profile, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}

	suite.Assert().Equal([]string{advisor.MessageWelcome}, suite.transcript(session.ID))
}

func (suite *TestSuiteStandard) TestSessionMessageWithoutProfile() {
	session := suite.createTestSession()

	recorder := suite.request(http.MethodPost, session.Links.Messages, v1.MessageCreate{Content: "How do I budget?"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MessageListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(models.RoleUser, response.Data[0].Role)
	suite.Assert().Equal(models.RoleAssistant, response.Data[1].Role)
	suite.Assert().Equal(advisor.MessageProfileRequired, response.Data[1].Content)
}

func (suite *TestSuiteStandard) TestSessionMessageOffline() {
	session := suite.createTestSession()
	recorder := suite.request(http.MethodPost, session.Links.Profile, validProfile)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodPost, session.Links.Messages, v1.MessageCreate{Content: "How should I plan my BUDGET?"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	suite.Assert().Equal([]string{
		advisor.MessageWelcome,
		advisor.MessageProfileSet,
		"How should I plan my BUDGET?",
		advisor.ResponseBudget,
	}, suite.transcript(session.ID))
}

func (suite *TestSuiteStandard) TestSessionMessageBackend() {
	suite.useAdvisorBackend(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/chat" {
			_, _ = w.Write([]byte(`{"response": "Start with an index fund."}`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})

	session := suite.createTestSession()
	recorder := suite.request(http.MethodPost, session.Links.Profile, validProfile)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodPost, session.Links.Messages, v1.MessageCreate{Content: "Where do I invest?"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MessageListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Start with an index fund.", response.Data[1].Content)
}

func (suite *TestSuiteStandard) TestSessionMessageBackendError() {
	suite.useAdvisorBackend(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/chat" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})

	session := suite.createTestSession()
	recorder := suite.request(http.MethodPost, session.Links.Profile, validProfile)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodPost, session.Links.Messages, v1.MessageCreate{Content: "Where do I invest?"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MessageListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(advisor.MessageError, response.Data[1].Content)
}

func (suite *TestSuiteStandard) TestSessionMessageBlank() {
	session := suite.createTestSession()

	recorder := suite.request(http.MethodPost, session.Links.Messages, v1.MessageCreate{Content: "   "})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MessageListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
	suite.Assert().Equal([]string{advisor.MessageWelcome}, suite.transcript(session.ID))
}

func (suite *TestSuiteStandard) TestSessionMessageBadRequest() {
	session := suite.createTestSession()

	recorder := suite.request(http.MethodPost, session.Links.Messages, `{ "content": 42 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodPost, "http://example.com/v1/sessions/2e1b6b0c-5b7a-4f3d-9c1e-8a2b3c4d5e6f/messages", v1.MessageCreate{Content: "Hi"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSessionClearChat() {
	session := suite.createTestSession()
	recorder := suite.request(http.MethodPost, session.Links.Messages, v1.MessageCreate{Content: "Hello"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = suite.request(http.MethodDelete, session.Links.Messages, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MessageListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(advisor.ResponseGreeting, response.Data[0].Content)

	suite.Assert().Equal([]string{advisor.ResponseGreeting}, suite.transcript(session.ID))
}

func (suite *TestSuiteStandard) TestSessionClearChatNotFound() {
	recorder := suite.request(http.MethodDelete, "http://example.com/v1/sessions/2e1b6b0c-5b7a-4f3d-9c1e-8a2b3c4d5e6f/messages", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	assert.Equal(suite.T(), "there is no session matching your query", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}
