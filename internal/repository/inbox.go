package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/festivalhub/festivalhub-api/internal/domain"
	"github.com/festivalhub/festivalhub-api/internal/repository/dao"
)

var ErrMessageNotFound = dao.ErrMessageNotFound

type InboxDAO interface {
	Insert(ctx context.Context, message dao.InboxMessage) (dao.InboxMessage, error)
	FindByUserID(ctx context.Context, userID uint, filters domain.InboxFilters, now time.Time) ([]dao.InboxMessage, int64, error)
	CountUnread(ctx context.Context, userID uint, now time.Time) (int64, error)
	CountClaimedCoupons(ctx context.Context, userID uint, now time.Time) (int64, error)
	FindOwnedByID(ctx context.Context, id, userID uint) (dao.InboxMessage, error)
	MarkRead(ctx context.Context, id, userID uint, readAt time.Time) error
	MarkAllRead(ctx context.Context, userID uint, readAt time.Time) (int64, error)
	MarkClaimed(ctx context.Context, id, userID uint, claimedAt, readAt time.Time) error
	Delete(ctx context.Context, id, userID uint) error
}

type InboxRepository struct {
	dao InboxDAO
}

func NewInboxRepository(dao InboxDAO) *InboxRepository {
	return &InboxRepository{
		dao: dao,
	}
}

// Create is the entry point for the external issuing process (and tests).
func (r *InboxRepository) Create(ctx context.Context, message domain.InboxMessage) (domain.InboxMessage, error) {
	created, err := r.dao.Insert(ctx, domainToDAOMessage(message))
	if err != nil {
		return domain.InboxMessage{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return daoToDomainMessage(created), nil
}

func (r *InboxRepository) FindByUserID(ctx context.Context, userID uint, filters domain.InboxFilters, now time.Time) ([]domain.InboxMessage, int64, error) {
	found, total, err := r.dao.FindByUserID(ctx, userID, filters, now)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	messages := make([]domain.InboxMessage, 0, len(found))
	for _, m := range found {
		messages = append(messages, daoToDomainMessage(m))
	}

	return messages, total, nil
}

func (r *InboxRepository) CountUnread(ctx context.Context, userID uint, now time.Time) (int64, error) {
	count, err := r.dao.CountUnread(ctx, userID, now)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountUnread -> %w", err)
	}

	return count, nil
}

func (r *InboxRepository) CountClaimedCoupons(ctx context.Context, userID uint, now time.Time) (int64, error) {
	count, err := r.dao.CountClaimedCoupons(ctx, userID, now)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountClaimedCoupons -> %w", err)
	}

	return count, nil
}

func (r *InboxRepository) FindOwnedByID(ctx context.Context, id, userID uint) (domain.InboxMessage, error) {
	found, err := r.dao.FindOwnedByID(ctx, id, userID)
	if err != nil {
		return domain.InboxMessage{}, fmt.Errorf("r.dao.FindOwnedByID -> %w", err)
	}

	return daoToDomainMessage(found), nil
}

func (r *InboxRepository) MarkRead(ctx context.Context, id, userID uint, readAt time.Time) error {
	if err := r.dao.MarkRead(ctx, id, userID, readAt); err != nil {
		return fmt.Errorf("r.dao.MarkRead -> %w", err)
	}

	return nil
}

func (r *InboxRepository) MarkAllRead(ctx context.Context, userID uint, readAt time.Time) (int64, error) {
	count, err := r.dao.MarkAllRead(ctx, userID, readAt)
	if err != nil {
		return 0, fmt.Errorf("r.dao.MarkAllRead -> %w", err)
	}

	return count, nil
}

func (r *InboxRepository) MarkClaimed(ctx context.Context, id, userID uint, claimedAt, readAt time.Time) error {
	if err := r.dao.MarkClaimed(ctx, id, userID, claimedAt, readAt); err != nil {
		return fmt.Errorf("r.dao.MarkClaimed -> %w", err)
	}

	return nil
}

func (r *InboxRepository) Delete(ctx context.Context, id, userID uint) error {
	if err := r.dao.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func domainToDAOMessage(m domain.InboxMessage) dao.InboxMessage {
	var attachmentType *string
	if m.AttachmentType != "" {
		attachmentType = &m.AttachmentType
	}

	return dao.InboxMessage{
		ID:             m.ID,
		UserID:         m.UserID,
		Type:           m.Type,
		Title:          m.Title,
		Body:           m.Body,
		AttachmentType: attachmentType,
		AttachmentData: dao.RawJSON(m.AttachmentData),
		IsRead:         m.IsRead,
		IsClaimed:      m.IsClaimed,
		ReadAt:         m.ReadAt,
		ClaimedAt:      m.ClaimedAt,
		ExpiresAt:      m.ExpiresAt,
	}
}

func daoToDomainMessage(m dao.InboxMessage) domain.InboxMessage {
	var attachmentType string
	if m.AttachmentType != nil {
		attachmentType = *m.AttachmentType
	}

	return domain.InboxMessage{
		ID:             m.ID,
		UserID:         m.UserID,
		Type:           m.Type,
		Title:          m.Title,
		Body:           m.Body,
		AttachmentType: attachmentType,
		AttachmentData: json.RawMessage(m.AttachmentData),
		IsRead:         m.IsRead,
		IsClaimed:      m.IsClaimed,
		ReadAt:         m.ReadAt,
		ClaimedAt:      m.ClaimedAt,
		ExpiresAt:      m.ExpiresAt,
		CreatedAt:      m.CreatedAt,
	}
}
