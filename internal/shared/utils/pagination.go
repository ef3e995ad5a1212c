package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"entregas/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page int
	Size int
}

// Offset returns the row offset of the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

// ValidatePagination clamps pagination parameters: page to a minimum of 1
// and size to the [1, MaxPageSize] range. Defaults for absent parameters are
// applied at parse time, not here.
func ValidatePagination(page, size int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if size < 1 {
		size = 1
	}
	if size > constants.MaxPageSize {
		size = constants.MaxPageSize
	}
	return Pagination{Page: page, Size: size}
}

// ParsePagination parses the page/size query parameters with defaults applied.
func ParsePagination(c *gin.Context) Pagination {
	return ValidatePagination(
		parseQueryInt(c, "page", constants.DefaultPage),
		parseQueryInt(c, "size", constants.DefaultPageSize),
	)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
