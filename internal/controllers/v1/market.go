package v1

import (
	"net/http"
	"time"

	"github.com/finiq/backend/internal/httputil"
	"github.com/finiq/backend/internal/market"
	"github.com/gin-gonic/gin"
)

// RegisterMarketRoutes registers the routes for the market panel with
// the RouterGroup that is passed.
func (co Controller) RegisterMarketRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/news", co.OptionsMarketNews)
	r.GET("/news", co.GetMarketNews)

	r.OPTIONS("/indices", co.OptionsMarketIndices)
	r.GET("/indices", co.GetMarketIndices)
}

type NewsQueryFilter struct {
	Offset uint `form:"offset"` // The offset of the first article returned
	Limit  uint `form:"limit"`  // Maximum number of articles to return
}

type NewsListResponse struct {
	Data       []market.Article `json:"data"`                                                             // List of articles
	FetchedAt  *time.Time       `json:"fetchedAt" example:"2024-05-02T10:20:00Z"`                         // Time of the last successful fetch
	Pagination *Pagination      `json:"pagination"`                                                       // Pagination information
	Error      *string          `json:"error" example:"financial news are not configured on this server"` // The error, if any occurred
}

type IndexListResponse struct {
	Data  []market.Point `json:"data"`                                                          // Index values, oldest first
	Error *string        `json:"error" example:"the market feed is not running on this server"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Market
// @Success		204
// @Router			/v1/market/news [options]
func (co Controller) OptionsMarketNews(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get financial news
// @Description	Returns the cached financial news for India
// @Tags			Market
// @Produce		json
// @Success		200		{object}	NewsListResponse
// @Failure		400		{object}	NewsListResponse
// @Failure		503		{object}	NewsListResponse
// @Param			offset	query		uint	false	"The offset of the first article returned. Defaults to 0."
// @Param			limit	query		uint	false	"Maximum number of articles to return. Defaults to 5."
// @Router			/v1/market/news [get]
func (co Controller) GetMarketNews(c *gin.Context) {
	if co.News == nil {
		s := errNewsDisabled.Error()
		c.JSON(status(errNewsDisabled), NewsListResponse{
			Error: &s,
		})
		return
	}

	var filter NewsQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, NewsListResponse{
			Error: &s,
		})
		return
	}

	limit := int(filter.Limit)
	if limit == 0 {
		limit = market.DefaultPageSize
	}

	articles, total, fetchedAt := co.News.Page(int(filter.Offset), limit)

	r := NewsListResponse{
		Data: articles,
		Pagination: &Pagination{
			Count:  len(articles),
			Offset: filter.Offset,
			Limit:  limit,
			Total:  total,
		},
	}

	if !fetchedAt.IsZero() {
		r.FetchedAt = &fetchedAt
	}

	c.JSON(http.StatusOK, r)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Market
// @Success		204
// @Router			/v1/market/indices [options]
func (co Controller) OptionsMarketIndices(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get market indices
// @Description	Returns the simulated NIFTY 50 and SENSEX values. They are for display only.
// @Tags			Market
// @Produce		json
// @Success		200	{object}	IndexListResponse
// @Failure		503	{object}	IndexListResponse
// @Router			/v1/market/indices [get]
func (co Controller) GetMarketIndices(c *gin.Context) {
	if co.Feed == nil {
		s := errFeedDisabled.Error()
		c.JSON(status(errFeedDisabled), IndexListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, IndexListResponse{Data: co.Feed.Snapshot()})
}
