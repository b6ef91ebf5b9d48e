package v1

import (
	"fmt"

	"github.com/finiq/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProfileEditable struct {
	Income        decimal.Decimal `json:"income" example:"85000" minimum:"0"`                // Monthly income
	Expenses      decimal.Decimal `json:"expenses" example:"42000" minimum:"0"`              // Monthly expenses
	Goals         string          `json:"goals" example:"Buy a flat in five years"`          // Financial goals in the user's own words
	Experience    string          `json:"experience" example:"beginner"`                     // Investment experience
	RiskTolerance string          `json:"riskTolerance" example:"moderate" default:"medium"` // Risk tolerance
}

// model returns the database resource for the editable fields
func (editable ProfileEditable) model() models.Profile {
	return models.Profile{
		Income:        editable.Income,
		Expenses:      editable.Expenses,
		Goals:         editable.Goals,
		Experience:    editable.Experience,
		RiskTolerance: editable.RiskTolerance,
	}
}

type SessionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/sessions/2e1b6b0c-5b7a-4f3d-9c1e-8a2b3c4d5e6f"`              // The session itself
	Profile  string `json:"profile" example:"https://example.com/api/v1/sessions/2e1b6b0c-5b7a-4f3d-9c1e-8a2b3c4d5e6f/profile"`   // Endpoint to set the financial profile
	Messages string `json:"messages" example:"https://example.com/api/v1/sessions/2e1b6b0c-5b7a-4f3d-9c1e-8a2b3c4d5e6f/messages"` // The transcript of the session
}

// Session is the API v1 representation of a chat session.
type Session struct {
	models.DefaultModel
	HasProfile bool            `json:"hasProfile" example:"true"` // Has a financial profile been set?
	Profile    ProfileEditable `json:"profile"`                   // The financial profile
	Online     bool            `json:"online" example:"true"`     // Are messages answered by the advisor backend?
	Links      SessionLinks    `json:"links"`
}

func (co Controller) newSession(c *gin.Context, model models.Session) Session {
	url := c.GetString(string(models.ContextURL))

	return Session{
		DefaultModel: model.DefaultModel,
		HasProfile:   model.HasProfile,
		Profile: ProfileEditable{
			Income:        model.Profile.Income,
			Expenses:      model.Profile.Expenses,
			Goals:         model.Profile.Goals,
			Experience:    model.Profile.Experience,
			RiskTolerance: model.Profile.RiskTolerance,
		},
		Online: co.Advisor.Online(),
		Links: SessionLinks{
			Self:     fmt.Sprintf("%s/v1/sessions/%s", url, model.ID),
			Profile:  fmt.Sprintf("%s/v1/sessions/%s/profile", url, model.ID),
			Messages: fmt.Sprintf("%s/v1/sessions/%s/messages", url, model.ID),
		},
	}
}

type SessionResponse struct {
	Data  *Session `json:"data"`                                                    // Data for the session
	Error *string  `json:"error" example:"there is no session matching your query"` // The error, if any occurred
}

type MessageCreate struct {
	Content string `json:"content" example:"How should I budget my salary?"` // The message of the user
}

type MessageListResponse struct {
	Data  []models.Message `json:"data"`                                                    // Messages
	Error *string          `json:"error" example:"there is no session matching your query"` // The error, if any occurred
}
