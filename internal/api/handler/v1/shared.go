package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/festivalhub/festivalhub-api/internal/api/handler/v1/response"
	"github.com/festivalhub/festivalhub-api/internal/api/middleware"
	"github.com/festivalhub/festivalhub-api/internal/domain"
)

// getUserFromContext rebuilds the caller from the session claims stored by
// the auth middleware. Role and university come from the token, not the
// users table.
func getUserFromContext(ctx *gin.Context) (domain.User, *response.Err) {
	userID, ok := ctx.Value(middleware.ContextKeyUserID).(uint)
	if !ok || userID == 0 {
		return domain.User{}, response.ErrAuthenticationRequired()
	}

	role, _ := ctx.Value(middleware.ContextKeyRole).(string)
	university, _ := ctx.Value(middleware.ContextKeyUniversity).(string)

	return domain.User{
		ID:         userID,
		Role:       role,
		University: university,
	}, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

func parsePositiveQuery(ctx *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(ctx.Query(name))
	if err != nil || value < 1 {
		return fallback
	}

	return value
}
