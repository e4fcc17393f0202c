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

type AdminFestivalService interface {
	ListForAdmin(ctx context.Context, user domain.User, universityFilter string) ([]domain.Festival, error)
	CreateFestival(ctx context.Context, user domain.User, festival domain.Festival) (domain.Festival, error)
	GetFestivalForAdmin(ctx context.Context, user domain.User, id uint) (domain.Festival, error)
	UpdateFestival(ctx context.Context, user domain.User, id uint, update domain.FestivalUpdate) (domain.Festival, error)
	DeleteFestival(ctx context.Context, user domain.User, id uint) error
}

type AdminFestivalHandler struct {
	svc AdminFestivalService
}

func NewAdminFestivalHandler(svc AdminFestivalService) *AdminFestivalHandler {
	return &AdminFestivalHandler{
		svc: svc,
	}
}

var permissionErrors = []error{
	service.ErrAdminRequired,
	service.ErrReadDenied,
	service.ErrCreateDenied,
	service.ErrUpdateDenied,
	service.ErrDeleteDenied,
	service.ErrUniversityChangeDenied,
}

// renderFestivalErr maps the shared service error set. Sentinels are
// rendered bare so wrapping never leaks into response bodies.
func renderFestivalErr(ctx *gin.Context, err error) {
	for _, sentinel := range permissionErrors {
		if errors.Is(err, sentinel) {
			response.RenderErr(ctx, response.ErrPermissionDenied(sentinel))
			return
		}
	}

	switch {
	case errors.Is(err, service.ErrFestivalNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrFestivalNotFound))
	case errors.Is(err, service.ErrEndBeforeStart):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrEndBeforeStart))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleListFestivals godoc
// @Summary      List festivals the caller administers
// @Description  A university admin sees its own university's festivals. A super admin sees all, optionally narrowed with ?university=.
// @Tags         admin
// @Produce      json
// @Param        university query string false "university filter (super admin only)"
// @Success      200 {object} response.Body{data=[]domain.Festival}
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/festivals [get]
// @Security     BearerAuth
func (h *AdminFestivalHandler) HandleListFestivals(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	festivals, err := h.svc.ListForAdmin(ctx.Request.Context(), user, ctx.Query("university"))
	if err != nil {
		err = fmt.Errorf("HandleListFestivals -> h.svc.ListForAdmin -> %w", err)
		renderFestivalErr(ctx, err)
		return
	}

	response.RenderOK(ctx, festivals)
}

// HandleCreateFestival godoc
// @Summary      Register a festival
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body request.CreateFestivalRequest true "request body"
// @Success      201 {object} response.Body{data=domain.Festival}
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/festivals [post]
// @Security     BearerAuth
func (h *AdminFestivalHandler) HandleCreateFestival(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req := request.CreateFestivalRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	festival, err := h.svc.CreateFestival(ctx.Request.Context(), user, req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleCreateFestival -> h.svc.CreateFestival -> %w", err)
		renderFestivalErr(ctx, err)
		return
	}

	response.RenderCreated(ctx, "축제가 등록되었습니다.", festival)
}

// HandleGetFestival godoc
// @Summary      Get one festival the caller administers
// @Tags         admin
// @Produce      json
// @Param        festivalID path int true "festival ID"
// @Success      200 {object} response.Body{data=domain.Festival}
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/festivals/{festivalID} [get]
// @Security     BearerAuth
func (h *AdminFestivalHandler) HandleGetFestival(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	festivalID, ok := parseIDParam(ctx, "festivalID")
	if !ok {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidFestivalID))
		return
	}

	festival, err := h.svc.GetFestivalForAdmin(ctx.Request.Context(), user, festivalID)
	if err != nil {
		err = fmt.Errorf("HandleGetFestival -> h.svc.GetFestivalForAdmin -> %w", err)
		renderFestivalErr(ctx, err)
		return
	}

	response.RenderOK(ctx, festival)
}

// HandleUpdateFestival godoc
// @Summary      Update a festival
// @Description  Applies only the allow-listed fields present in the payload.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        festivalID path int true "festival ID"
// @Param        request body request.UpdateFestivalRequest true "request body"
// @Success      200 {object} response.Body{data=domain.Festival}
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/festivals/{festivalID} [put]
// @Security     BearerAuth
func (h *AdminFestivalHandler) HandleUpdateFestival(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	festivalID, ok := parseIDParam(ctx, "festivalID")
	if !ok {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidFestivalID))
		return
	}

	req := request.UpdateFestivalRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	festival, err := h.svc.UpdateFestival(ctx.Request.Context(), user, festivalID, req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleUpdateFestival -> h.svc.UpdateFestival -> %w", err)
		renderFestivalErr(ctx, err)
		return
	}

	response.RenderOKWithMessage(ctx, "축제 정보가 수정되었습니다.", festival)
}

// HandleDeleteFestival godoc
// @Summary      Delete a festival
// @Tags         admin
// @Produce      json
// @Param        festivalID path int true "festival ID"
// @Success      200 {object} response.Body
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/festivals/{festivalID} [delete]
// @Security     BearerAuth
func (h *AdminFestivalHandler) HandleDeleteFestival(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	festivalID, ok := parseIDParam(ctx, "festivalID")
	if !ok {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidFestivalID))
		return
	}

	if err := h.svc.DeleteFestival(ctx.Request.Context(), user, festivalID); err != nil {
		err = fmt.Errorf("HandleDeleteFestival -> h.svc.DeleteFestival -> %w", err)
		renderFestivalErr(ctx, err)
		return
	}

	response.RenderOKWithMessage(ctx, "축제가 삭제되었습니다.", nil)
}
