package dao

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/festivalhub/festivalhub-api/internal/domain"
)

var ErrMessageNotFound = errors.New("메시지를 찾을 수 없습니다.")

type InboxMessage struct {
	ID uint `gorm:"primaryKey"`

	UserID uint   `gorm:"not null;index"`
	Type   string `gorm:"not null"` // "coupon", "notification", "reward", or "event"
	Title  string `gorm:"not null"`
	Body   string `gorm:"not null"`

	AttachmentType *string
	AttachmentData RawJSON `gorm:"type:jsonb"`

	IsRead    bool `gorm:"not null;default:false"`
	IsClaimed bool `gorm:"not null;default:false"`
	ReadAt    *time.Time
	ClaimedAt *time.Time
	ExpiresAt *time.Time `gorm:"index"`

	CreatedAt time.Time `gorm:"not null;index"`
}

func (InboxMessage) TableName() string {
	return "inbox"
}

type RawJSON json.RawMessage

func (r RawJSON) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return []byte(r), nil
}

func (r *RawJSON) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*r = nil
		return nil
	case []byte:
		*r = append((*r)[:0], v...)
		return nil
	case string:
		*r = RawJSON(v)
		return nil
	default:
		return errors.New("unsupported JSON column type")
	}
}

type InboxDAO struct {
	db *gorm.DB
}

func NewInboxDAO(db *gorm.DB) *InboxDAO {
	return &InboxDAO{
		db: db,
	}
}

// Insert is used by the external issuing process and by tests; messages
// never enter the inbox through the HTTP surface.
func (d *InboxDAO) Insert(ctx context.Context, message InboxMessage) (InboxMessage, error) {
	result := d.db.WithContext(ctx).Create(&message)
	if result.Error != nil {
		return InboxMessage{}, result.Error
	}

	return message, nil
}

func (d *InboxDAO) notExpired(query *gorm.DB, now time.Time) *gorm.DB {
	return query.Where("expires_at IS NULL OR expires_at > ?", now)
}

// FindByUserID lists one page of the user's unexpired messages, newest first,
// plus the unpaginated match count.
func (d *InboxDAO) FindByUserID(ctx context.Context, userID uint, filters domain.InboxFilters, now time.Time) ([]InboxMessage, int64, error) {
	query := d.db.WithContext(ctx).
		Model(&InboxMessage{}).
		Where("user_id = ?", userID)
	query = d.notExpired(query, now)

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.IsRead != nil {
		query = query.Where("is_read = ?", *filters.IsRead)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filters.Page - 1) * filters.Limit

	var messages []InboxMessage
	result := query.Order("created_at DESC").Offset(offset).Limit(filters.Limit).Find(&messages)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return messages, total, nil
}

func (d *InboxDAO) CountUnread(ctx context.Context, userID uint, now time.Time) (int64, error) {
	query := d.db.WithContext(ctx).
		Model(&InboxMessage{}).
		Where("user_id = ? AND is_read = ?", userID, false)
	query = d.notExpired(query, now)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// CountClaimedCoupons backs the profile's coupon counter. Expired coupons
// drop out of the count like they drop out of listings.
func (d *InboxDAO) CountClaimedCoupons(ctx context.Context, userID uint, now time.Time) (int64, error) {
	query := d.db.WithContext(ctx).
		Model(&InboxMessage{}).
		Where("user_id = ? AND attachment_type = ? AND is_claimed = ?", userID, "coupon", true)
	query = d.notExpired(query, now)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (d *InboxDAO) FindOwnedByID(ctx context.Context, id, userID uint) (InboxMessage, error) {
	var message InboxMessage

	result := d.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&message)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return InboxMessage{}, ErrMessageNotFound
		}

		return InboxMessage{}, result.Error
	}

	return message, nil
}

// MarkRead flips an unread message to read. Already-read messages are left
// untouched so read_at never moves.
func (d *InboxDAO) MarkRead(ctx context.Context, id, userID uint, readAt time.Time) error {
	result := d.db.WithContext(ctx).
		Model(&InboxMessage{}).
		Where("id = ? AND user_id = ? AND is_read = ?", id, userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": readAt,
		})

	return result.Error
}

func (d *InboxDAO) MarkAllRead(ctx context.Context, userID uint, readAt time.Time) (int64, error) {
	result := d.db.WithContext(ctx).
		Model(&InboxMessage{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": readAt,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (d *InboxDAO) MarkClaimed(ctx context.Context, id, userID uint, claimedAt, readAt time.Time) error {
	result := d.db.WithContext(ctx).
		Model(&InboxMessage{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"is_claimed": true,
			"is_read":    true,
			"claimed_at": claimedAt,
			"read_at":    readAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}

func (d *InboxDAO) Delete(ctx context.Context, id, userID uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&InboxMessage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}
