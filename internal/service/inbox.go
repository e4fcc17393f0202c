package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/festivalhub/festivalhub-api/internal/domain"
	"github.com/festivalhub/festivalhub-api/internal/repository"
)

var (
	ErrMessageNotFound = repository.ErrMessageNotFound
	ErrAlreadyClaimed  = errors.New("이미 수령한 첨부물입니다.")
	ErrNoAttachment    = errors.New("수령할 첨부물이 없습니다.")
	ErrMessageExpired  = errors.New("만료된 메시지입니다.")
)

type InboxRepository interface {
	FindByUserID(ctx context.Context, userID uint, filters domain.InboxFilters, now time.Time) ([]domain.InboxMessage, int64, error)
	CountUnread(ctx context.Context, userID uint, now time.Time) (int64, error)
	FindOwnedByID(ctx context.Context, id, userID uint) (domain.InboxMessage, error)
	MarkRead(ctx context.Context, id, userID uint, readAt time.Time) error
	MarkAllRead(ctx context.Context, userID uint, readAt time.Time) (int64, error)
	MarkClaimed(ctx context.Context, id, userID uint, claimedAt, readAt time.Time) error
	Delete(ctx context.Context, id, userID uint) error
}

// InboxService owns the per-message lifecycle: unread → read → claimed,
// with expiry gating both listings and claims.
type InboxService struct {
	repo InboxRepository
	now  func() time.Time
}

func NewInboxService(repo InboxRepository) *InboxService {
	return &InboxService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *InboxService) ListMessages(ctx context.Context, userID uint, filters domain.InboxFilters) (domain.InboxPage, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}

	now := s.now()

	messages, total, err := s.repo.FindByUserID(ctx, userID, filters, now)
	if err != nil {
		return domain.InboxPage{}, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	unread, err := s.repo.CountUnread(ctx, userID, now)
	if err != nil {
		return domain.InboxPage{}, fmt.Errorf("s.repo.CountUnread -> %w", err)
	}

	return domain.InboxPage{
		Items:       messages,
		TotalCount:  total,
		UnreadCount: unread,
		HasNextPage: total > int64(filters.Page)*int64(filters.Limit),
		CurrentPage: filters.Page,
	}, nil
}

// MarkRead is idempotent; re-reading a read message changes nothing.
func (s *InboxService) MarkRead(ctx context.Context, userID, messageID uint) error {
	if _, err := s.repo.FindOwnedByID(ctx, messageID, userID); err != nil {
		return fmt.Errorf("s.repo.FindOwnedByID -> %w", err)
	}

	if err := s.repo.MarkRead(ctx, messageID, userID, s.now()); err != nil {
		return fmt.Errorf("s.repo.MarkRead -> %w", err)
	}

	return nil
}

// MarkAllRead marks every unread message of the caller and returns how many
// were affected.
func (s *InboxService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	count, err := s.repo.MarkAllRead(ctx, userID, s.now())
	if err != nil {
		return 0, fmt.Errorf("s.repo.MarkAllRead -> %w", err)
	}

	return count, nil
}

// ClaimAttachment hands out the message's attachment exactly once. The
// payload is opaque here; redeeming it is the coupon/point ledger's job.
func (s *InboxService) ClaimAttachment(ctx context.Context, userID, messageID uint) (domain.Attachment, error) {
	message, err := s.repo.FindOwnedByID(ctx, messageID, userID)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("s.repo.FindOwnedByID -> %w", err)
	}

	if message.IsClaimed {
		return domain.Attachment{}, ErrAlreadyClaimed
	}
	if !message.HasAttachment() {
		return domain.Attachment{}, ErrNoAttachment
	}

	now := s.now()
	if message.IsExpired(now) {
		return domain.Attachment{}, ErrMessageExpired
	}

	readAt := now
	if message.ReadAt != nil {
		readAt = *message.ReadAt
	}

	if err := s.repo.MarkClaimed(ctx, messageID, userID, now, readAt); err != nil {
		return domain.Attachment{}, fmt.Errorf("s.repo.MarkClaimed -> %w", err)
	}

	return domain.Attachment{
		Type: message.AttachmentType,
		Data: message.AttachmentData,
	}, nil
}

func (s *InboxService) DeleteMessage(ctx context.Context, userID, messageID uint) error {
	if err := s.repo.Delete(ctx, messageID, userID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
