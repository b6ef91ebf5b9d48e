package v1

import (
	"context"
	"net/http"

	"github.com/finiq/backend/internal/httputil"
	"github.com/finiq/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterSessionRoutes registers the routes for chat sessions with
// the RouterGroup that is passed.
func (co Controller) RegisterSessionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsSessionList)
		r.POST("", co.CreateSession)
	}

	// Session with ID
	{
		r.OPTIONS("/:id", co.OptionsSessionDetail)
		r.GET("/:id", co.GetSession)

		r.OPTIONS("/:id/profile", co.OptionsSessionProfile)
		r.POST("/:id/profile", co.SetSessionProfile)

		r.OPTIONS("/:id/messages", co.OptionsSessionMessages)
		r.GET("/:id/messages", co.GetSessionMessages)
		r.POST("/:id/messages", co.CreateSessionMessage)
		r.DELETE("/:id/messages", co.DeleteSessionMessages)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sessions
// @Success		204
// @Router			/v1/sessions [options]
func (co Controller) OptionsSessionList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id} [options]
func (co Controller) OptionsSessionDetail(c *gin.Context) {
	if _, ok := co.getSession(c); !ok {
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/profile [options]
func (co Controller) OptionsSessionProfile(c *gin.Context) {
	if _, ok := co.getSession(c); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/messages [options]
func (co Controller) OptionsSessionMessages(c *gin.Context) {
	if _, ok := co.getSession(c); !ok {
		return
	}

	httputil.OptionsGetPostDelete(c)
}

// @Summary		Create session
// @Description	Starts a new chat session. The transcript starts with a welcome message.
// @Tags			Sessions
// @Produce		json
// @Success		201	{object}	SessionResponse
// @Failure		500	{object}	SessionResponse
// @Router			/v1/sessions [post]
func (co Controller) CreateSession(c *gin.Context) {
	session, err := co.Advisor.CreateSession(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	data := co.newSession(c, session)
	c.JSON(http.StatusCreated, SessionResponse{Data: &data})
}

// @Summary		Get session
// @Description	Returns a specific session
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		400	{object}	SessionResponse
// @Failure		404	{object}	SessionResponse
// @Failure		500	{object}	SessionResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/sessions/{id} [get]
func (co Controller) GetSession(c *gin.Context) {
	session, ok := co.getSession(c)
	if !ok {
		return
	}

	data := co.newSession(c, session)
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}

// @Summary		Set profile
// @Description	Sets the financial profile of a session and forwards it to the advisor backend.
// @Description	If the backend rejects the profile, a failure message is added to the transcript and 502 is returned.
// @Tags			Sessions
// @Accept			json
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		404		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Failure		502		{object}	SessionResponse
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/sessions/{id}/profile [post]
func (co Controller) SetSessionProfile(c *gin.Context) {
	uri, err := bindURIID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	var editable ProfileEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	session, err := co.Advisor.SetProfile(c.Request.Context(), uri.ID.UUID, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	data := co.newSession(c, session)
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}

// @Summary		Get messages
// @Description	Returns the transcript of a session, oldest message first
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	MessageListResponse
// @Failure		400	{object}	MessageListResponse
// @Failure		404	{object}	MessageListResponse
// @Failure		500	{object}	MessageListResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/sessions/{id}/messages [get]
func (co Controller) GetSessionMessages(c *gin.Context) {
	co.respondMessages(c, http.StatusOK, co.Advisor.Transcript)
}

// @Summary		Send message
// @Description	Adds a message to the transcript and returns it together with the answer.
// @Description	Blank messages are ignored and return an empty list.
// @Tags			Sessions
// @Accept			json
// @Produce		json
// @Success		201		{object}	MessageListResponse
// @Failure		400		{object}	MessageListResponse
// @Failure		404		{object}	MessageListResponse
// @Failure		500		{object}	MessageListResponse
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			message	body		MessageCreate	true	"Message"
// @Router			/v1/sessions/{id}/messages [post]
func (co Controller) CreateSessionMessage(c *gin.Context) {
	uri, err := bindURIID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MessageListResponse{
			Error: &s,
		})
		return
	}

	var create MessageCreate
	if err := httputil.BindData(c, &create); err != nil {
		s := err.Error()
		c.JSON(status(err), MessageListResponse{
			Error: &s,
		})
		return
	}

	messages, err := co.Advisor.SendMessage(c.Request.Context(), uri.ID.UUID, create.Content)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MessageListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, MessageListResponse{Data: messages})
}

// @Summary		Clear chat
// @Description	Replaces the transcript of a session with a greeting
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	MessageListResponse
// @Failure		400	{object}	MessageListResponse
// @Failure		404	{object}	MessageListResponse
// @Failure		500	{object}	MessageListResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/sessions/{id}/messages [delete]
func (co Controller) DeleteSessionMessages(c *gin.Context) {
	co.respondMessages(c, http.StatusOK, co.Advisor.ClearChat)
}

// getSession returns the session for the ID in the URI. If it cannot be
// found, the error response is sent and ok is false.
func (co Controller) getSession(c *gin.Context) (models.Session, bool) {
	uri, err := bindURIID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return models.Session{}, false
	}

	session, err := co.Advisor.Session(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return models.Session{}, false
	}

	return session, true
}

// respondMessages sends the messages returned by fn for the session in the URI.
func (co Controller) respondMessages(c *gin.Context, code int, fn func(context.Context, uuid.UUID) ([]models.Message, error)) {
	uri, err := bindURIID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MessageListResponse{
			Error: &s,
		})
		return
	}

	messages, err := fn(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MessageListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(code, MessageListResponse{Data: messages})
}
