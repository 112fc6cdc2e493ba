package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ryoishikawa/blog-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Limit int
	Skip  int
}

// GetPaginationParams extracts and validates limit/skip query
// parameters from the request.
func GetPaginationParams(c *gin.Context) PaginationParams {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultLimit)))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	if limit < 1 || limit > constants.MaxLimit {
		limit = constants.DefaultLimit
	}
	if skip < 0 {
		skip = 0
	}

	return PaginationParams{
		Limit: limit,
		Skip:  skip,
	}
}
