// Package v1 contains the handlers of the v1 API.
package v1

import (
	"errors"
	"net/http"

	"github.com/finiq/backend/internal/advisor"
	"github.com/finiq/backend/internal/chart"
	"github.com/finiq/backend/internal/httputil"
	"github.com/finiq/backend/internal/market"
	"github.com/finiq/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Controller holds the services the handlers work with.
type Controller struct {
	Advisor *advisor.Service
	News    *market.NewsCache
	Feed    market.Feed
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterBudgetRoutes(r.Group("/budget"))
	co.RegisterSessionRoutes(r.Group("/sessions"))
	co.RegisterChatRoutes(r.Group("/chat"))
	co.RegisterMarketRoutes(r.Group("/market"))
}

// status returns the HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, advisor.ErrProfileRejected):
		return http.StatusBadGateway
	case errors.Is(err, chart.ErrEmptyBreakdown):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errNewsDisabled), errors.Is(err, errFeedDisabled):
		return http.StatusServiceUnavailable
	}

	return http.StatusBadRequest
}

var (
	errNewsDisabled = errors.New("financial news are not configured on this server")
	errFeedDisabled = errors.New("the market feed is not running on this server")
)

type httpError httputil.HTTPError
