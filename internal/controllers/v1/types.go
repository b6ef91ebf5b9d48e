package v1

import (
	"github.com/finiq/backend/internal/httputil"
	finiq_uuid "github.com/finiq/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID finiq_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// bindURIID binds the ID in the URI of the request.
func bindURIID(c *gin.Context) (URIID, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return URIID{}, httputil.ErrInvalidUUID
	}

	return uri, nil
}

type Pagination struct {
	Count  int  `json:"count" example:"5"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"5"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"5"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"17"` // The total number of resources available
}
