package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"entregas/internal/shared/errors"
)

// PagedResponse is the envelope for paginated list endpoints.
type PagedResponse struct {
	Page  int         `json:"page"`
	Size  int         `json:"size"`
	Total int64       `json:"total"`
	Items interface{} `json:"items"`
}

// SuccessResponse sends a 200 with the given body.
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OKResponse sends the plain `{"ok": true}` acknowledgement used by
// update and delete endpoints.
func OKResponse(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CreatedResponse sends a 201 with the given body.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// PagedSuccessResponse sends a paginated list response.
func PagedSuccessResponse(c *gin.Context, items interface{}, total int64, page, size int) {
	c.JSON(http.StatusOK, PagedResponse{
		Page:  page,
		Size:  size,
		Total: total,
		Items: items,
	})
}

// ErrorResponse sends an error body with an explicit status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorResponseWithError maps an error to its HTTP status and sends the
// `{"error": "<message>"}` body. Unclassified errors become 500; the
// underlying message is exposed, which is deliberate for this internal tool.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
