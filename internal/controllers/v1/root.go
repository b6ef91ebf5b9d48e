package v1

import (
	"net/http"

	"github.com/finiq/backend/internal/httputil"
	"github.com/finiq/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budget   string `json:"budget" example:"https://example.com/api/v1/budget"`     // URL of the budget endpoints
	Sessions string `json:"sessions" example:"https://example.com/api/v1/sessions"` // URL of the chat session collection endpoint
	Chat     string `json:"chat" example:"https://example.com/api/v1/chat"`         // URL of the chat endpoints
	Market   string `json:"market" example:"https://example.com/api/v1/market"`     // URL of the market endpoints
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budget:   url + "/v1/budget",
			Sessions: url + "/v1/sessions",
			Chat:     url + "/v1/chat",
			Market:   url + "/v1/market",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
