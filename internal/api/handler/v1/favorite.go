package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/festivalhub/festivalhub-api/internal/api/handler/v1/response"
	"github.com/festivalhub/festivalhub-api/internal/domain"
	"github.com/festivalhub/festivalhub-api/internal/service"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID, festivalID uint) error
	RemoveFavorite(ctx context.Context, userID, festivalID uint) error
	GetFavoriteFestivals(ctx context.Context, userID uint) ([]domain.Festival, error)
}

type FavoriteHandler struct {
	svc FavoriteService
}

func NewFavoriteHandler(svc FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		svc: svc,
	}
}

// HandleListFavorites godoc
// @Summary      List the caller's favorite festivals
// @Tags         favorites
// @Produce      json
// @Success      200 {object} response.Body{data=[]domain.Festival}
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /favorites [get]
// @Security     BearerAuth
func (h *FavoriteHandler) HandleListFavorites(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	festivals, err := h.svc.GetFavoriteFestivals(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("HandleListFavorites -> h.svc.GetFavoriteFestivals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, festivals)
}

// HandleAddFavorite godoc
// @Summary      Favorite a festival
// @Description  Idempotent; favoriting an already-favorited festival succeeds.
// @Tags         favorites
// @Produce      json
// @Param        festivalID path int true "festival ID"
// @Success      200 {object} response.Body
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /festivals/{festivalID}/favorite [post]
// @Security     BearerAuth
func (h *FavoriteHandler) HandleAddFavorite(ctx *gin.Context) {
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

	if err := h.svc.AddFavorite(ctx.Request.Context(), user.ID, festivalID); err != nil {
		if errors.Is(err, service.ErrFestivalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrFestivalNotFound))
			return
		}

		err = fmt.Errorf("HandleAddFavorite -> h.svc.AddFavorite -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOKWithMessage(ctx, "관심 축제에 추가되었습니다.", nil)
}

// HandleRemoveFavorite godoc
// @Summary      Unfavorite a festival
// @Tags         favorites
// @Produce      json
// @Param        festivalID path int true "festival ID"
// @Success      200 {object} response.Body
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /festivals/{festivalID}/favorite [delete]
// @Security     BearerAuth
func (h *FavoriteHandler) HandleRemoveFavorite(ctx *gin.Context) {
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

	if err := h.svc.RemoveFavorite(ctx.Request.Context(), user.ID, festivalID); err != nil {
		err = fmt.Errorf("HandleRemoveFavorite -> h.svc.RemoveFavorite -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOKWithMessage(ctx, "관심 축제에서 제거되었습니다.", nil)
}
