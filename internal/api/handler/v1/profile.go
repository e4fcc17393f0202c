package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/festivalhub/festivalhub-api/internal/api/handler/v1/request"
	"github.com/festivalhub/festivalhub-api/internal/api/handler/v1/response"
	"github.com/festivalhub/festivalhub-api/internal/domain"
	"github.com/festivalhub/festivalhub-api/internal/service"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID uint) (domain.Profile, error)
	UpdateProfile(ctx context.Context, userID uint, name, school string) (domain.Profile, error)
}

type ProfileHandler struct {
	svc ProfileService
}

func NewProfileHandler(svc ProfileService) *ProfileHandler {
	return &ProfileHandler{
		svc: svc,
	}
}

// HandleGetProfile godoc
// @Summary      Get the caller's profile
// @Description  Returns account details plus favorite and claimed coupon counts.
// @Tags         profile
// @Produce      json
// @Success      200 {object} response.Body{data=domain.Profile}
// @Failure      401 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) HandleGetProfile(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	profile, err := h.svc.GetProfile(ctx.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))
			return
		}

		err = fmt.Errorf("HandleGetProfile -> h.svc.GetProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, profile)
}

// HandleUpdateProfile godoc
// @Summary      Update the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body request.UpdateProfileRequest true "request body"
// @Success      200 {object} response.Body{data=domain.Profile}
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) HandleUpdateProfile(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req := request.UpdateProfileRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	profile, err := h.svc.UpdateProfile(ctx.Request.Context(), user.ID, req.Name, req.School)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))
			return
		}

		err = fmt.Errorf("HandleUpdateProfile -> h.svc.UpdateProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOKWithMessage(ctx, "프로필이 수정되었습니다.", profile)
}
