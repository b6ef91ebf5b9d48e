package v1

import (
	"net/http"

	"github.com/finiq/backend/internal/advisor"
	"github.com/finiq/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the routes for the chat widget with
// the RouterGroup that is passed.
func (co Controller) RegisterChatRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/suggestions", co.OptionsChatSuggestions)
	r.GET("/suggestions", co.GetChatSuggestions)
}

type SuggestionListResponse struct {
	Data []string `json:"data" example:"How can I start investing with a small amount?"` // Suggested questions
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Chat
// @Success		204
// @Router			/v1/chat/suggestions [options]
func (co Controller) OptionsChatSuggestions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get suggested questions
// @Description	Returns the questions offered to users who do not know what to ask
// @Tags			Chat
// @Produce		json
// @Success		200	{object}	SuggestionListResponse
// @Router			/v1/chat/suggestions [get]
func (co Controller) GetChatSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, SuggestionListResponse{Data: advisor.SuggestedQuestions()})
}
