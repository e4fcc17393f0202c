package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckHandler struct{}

func NewHealthcheckHandler() *HealthcheckHandler {
	return &HealthcheckHandler{}
}

// HandleHealthcheck godoc
// @Summary      Healthcheck endpoint
// @Tags         healthcheck
// @Produce      plain
// @Success      200 {string} string "."
// @Router       /healthcheck [get]
func (h *HealthcheckHandler) HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, ".")
}
