package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the success half of the response envelope.
type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RenderOK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, Body{
		Success: true,
		Data:    data,
	})
}

func RenderOKWithMessage(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, Body{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RenderCreated(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusCreated, Body{
		Success: true,
		Message: message,
		Data:    data,
	})
}

type Pagination struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalCount      int64 `json:"totalCount"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

func NewPagination(page, limit int, totalCount int64) Pagination {
	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	return Pagination{
		Page:            page,
		Limit:           limit,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
