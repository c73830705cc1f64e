package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// Unavailable reports a transient failure the client may retry.
func Unavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"success": false,
		"error": gin.H{
			"code":      "SERVICE_UNAVAILABLE",
			"message":   message,
			"retryable": true,
		},
	})
}

// Pagination describes a page cut from an already ordered result.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// Bounds returns the [start, end) slice indexes of the page within total.
// A page past the last one is empty: (total, total).
func (p Pagination) Bounds() (int, int) {
	if p.Limit <= 0 || p.Page < 1 {
		return p.Total, p.Total
	}
	// Page may be close to MaxInt; compare page counts before multiplying.
	if p.Page > (p.Total+p.Limit-1)/p.Limit {
		return p.Total, p.Total
	}
	start := (p.Page - 1) * p.Limit
	return start, min(start+p.Limit, p.Total)
}
