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

var errInvalidMessageID = errors.New("올바르지 않은 메시지 ID입니다.")

type InboxService interface {
	ListMessages(ctx context.Context, userID uint, filters domain.InboxFilters) (domain.InboxPage, error)
	MarkRead(ctx context.Context, userID, messageID uint) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
	ClaimAttachment(ctx context.Context, userID, messageID uint) (domain.Attachment, error)
	DeleteMessage(ctx context.Context, userID, messageID uint) error
}

type InboxHandler struct {
	svc InboxService
}

func NewInboxHandler(svc InboxService) *InboxHandler {
	return &InboxHandler{
		svc: svc,
	}
}

// HandleListMessages godoc
// @Summary      List inbox messages
// @Description  Lists the caller's unexpired messages, newest first, with unread count.
// @Tags         inbox
// @Produce      json
// @Param        page    query int    false "page, starting at 1"
// @Param        limit   query int    false "page size, default 20"
// @Param        type    query string false "message type filter"
// @Param        is_read query bool   false "read state filter"
// @Success      200 {object} response.Body{data=response.InboxListResponse}
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /inbox [get]
// @Security     BearerAuth
func (h *InboxHandler) HandleListMessages(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	filters := domain.InboxFilters{
		Type:  ctx.Query("type"),
		Page:  parsePositiveQuery(ctx, "page", 1),
		Limit: parsePositiveQuery(ctx, "limit", 20),
	}
	if raw, exists := ctx.GetQuery("is_read"); exists {
		isRead := raw == "true"
		filters.IsRead = &isRead
	}

	page, err := h.svc.ListMessages(ctx.Request.Context(), user.ID, filters)
	if err != nil {
		err = fmt.Errorf("HandleListMessages -> h.svc.ListMessages -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, response.InboxListResponse{
		Messages:    page.Items,
		TotalCount:  page.TotalCount,
		UnreadCount: page.UnreadCount,
		HasNextPage: page.HasNextPage,
		CurrentPage: page.CurrentPage,
	})
}

// HandleInboxAction godoc
// @Summary      Act on the whole inbox
// @Description  Supports action "read-all", which marks every unread message read.
// @Tags         inbox
// @Accept       json
// @Produce      json
// @Param        request body request.InboxActionRequest true "request body"
// @Success      200 {object} response.Body{data=response.MarkAllReadResponse}
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /inbox [post]
// @Security     BearerAuth
func (h *InboxHandler) HandleInboxAction(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req := request.InboxActionRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	count, err := h.svc.MarkAllRead(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("HandleInboxAction -> h.svc.MarkAllRead -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOKWithMessage(ctx, "모든 메시지를 읽음 처리했습니다.", response.MarkAllReadResponse{
		UpdatedCount: count,
	})
}

// HandleMessageAction godoc
// @Summary      Act on one message
// @Description  Action "read" marks the message read (idempotent). Action "claim" hands out the attachment exactly once.
// @Tags         inbox
// @Accept       json
// @Produce      json
// @Param        messageID path int true "message ID"
// @Param        request body request.MessageActionRequest true "request body"
// @Success      200 {object} response.Body{data=domain.Attachment}
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      409 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /inbox/{messageID} [post]
// @Security     BearerAuth
func (h *InboxHandler) HandleMessageAction(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	messageID, ok := parseIDParam(ctx, "messageID")
	if !ok {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidMessageID))
		return
	}

	req := request.MessageActionRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	switch req.Action {
	case request.InboxActionRead:
		h.markRead(ctx, user.ID, messageID)
	case request.InboxActionClaim:
		h.claim(ctx, user.ID, messageID)
	}
}

func (h *InboxHandler) markRead(ctx *gin.Context, userID, messageID uint) {
	if err := h.svc.MarkRead(ctx.Request.Context(), userID, messageID); err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrMessageNotFound))
			return
		}

		err = fmt.Errorf("markRead -> h.svc.MarkRead -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOKWithMessage(ctx, "메시지를 읽음 처리했습니다.", nil)
}

func (h *InboxHandler) claim(ctx *gin.Context, userID, messageID uint) {
	attachment, err := h.svc.ClaimAttachment(ctx.Request.Context(), userID, messageID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrMessageNotFound))
		case errors.Is(err, service.ErrAlreadyClaimed):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyClaimed))
		case errors.Is(err, service.ErrNoAttachment):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNoAttachment))
		case errors.Is(err, service.ErrMessageExpired):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrMessageExpired))
		default:
			err = fmt.Errorf("claim -> h.svc.ClaimAttachment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	response.RenderOKWithMessage(ctx, "첨부물을 수령했습니다.", attachment)
}

// HandleDeleteMessage godoc
// @Summary      Delete one message
// @Tags         inbox
// @Produce      json
// @Param        messageID path int true "message ID"
// @Success      200 {object} response.Body
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /inbox/{messageID} [delete]
// @Security     BearerAuth
func (h *InboxHandler) HandleDeleteMessage(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	messageID, ok := parseIDParam(ctx, "messageID")
	if !ok {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidMessageID))
		return
	}

	if err := h.svc.DeleteMessage(ctx.Request.Context(), user.ID, messageID); err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrMessageNotFound))
			return
		}

		err = fmt.Errorf("HandleDeleteMessage -> h.svc.DeleteMessage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOKWithMessage(ctx, "메시지를 삭제했습니다.", nil)
}
