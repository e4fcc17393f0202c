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

var errInvalidFestivalID = errors.New("올바르지 않은 축제 ID입니다.")

type FestivalService interface {
	ListPublic(ctx context.Context, filters domain.FestivalFilters, page, limit int) ([]domain.Festival, int64, error)
	GetFestival(ctx context.Context, id uint) (domain.Festival, error)
}

type FestivalHandler struct {
	svc FestivalService
}

func NewFestivalHandler(svc FestivalService) *FestivalHandler {
	return &FestivalHandler{
		svc: svc,
	}
}

// HandleListFestivals godoc
// @Summary      List festivals
// @Description  Lists festivals with optional region, university and keyword filters.
// @Tags         festivals
// @Produce      json
// @Param        page       query int    false "page, starting at 1"
// @Param        limit      query int    false "page size, default 10"
// @Param        region     query string false "region filter"
// @Param        university query string false "university filter"
// @Param        search     query string false "keyword search on name, university and description"
// @Success      200 {object} response.Body{data=response.FestivalListResponse}
// @Failure      500 {object} response.Err
// @Router       /festivals [get]
func (h *FestivalHandler) HandleListFestivals(ctx *gin.Context) {
	page := parsePositiveQuery(ctx, "page", 1)
	limit := parsePositiveQuery(ctx, "limit", 10)

	filters := domain.FestivalFilters{
		Region:     ctx.Query("region"),
		University: ctx.Query("university"),
		Search:     ctx.Query("search"),
	}

	festivals, total, err := h.svc.ListPublic(ctx.Request.Context(), filters, page, limit)
	if err != nil {
		err = fmt.Errorf("HandleListFestivals -> h.svc.ListPublic -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, response.FestivalListResponse{
		Festivals:  festivals,
		Pagination: response.NewPagination(page, limit, total),
	})
}

// HandleGetFestival godoc
// @Summary      Get one festival
// @Tags         festivals
// @Produce      json
// @Param        festivalID path int true "festival ID"
// @Success      200 {object} response.Body{data=domain.Festival}
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /festivals/{festivalID} [get]
func (h *FestivalHandler) HandleGetFestival(ctx *gin.Context) {
	festivalID, ok := parseIDParam(ctx, "festivalID")
	if !ok {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidFestivalID))
		return
	}

	festival, err := h.svc.GetFestival(ctx.Request.Context(), festivalID)
	if err != nil {
		if errors.Is(err, service.ErrFestivalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrFestivalNotFound))
			return
		}

		err = fmt.Errorf("HandleGetFestival -> h.svc.GetFestival -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, festival)
}
