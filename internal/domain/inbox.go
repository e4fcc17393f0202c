package domain

import (
	"encoding/json"
	"time"
)

const (
	MessageTypeCoupon       = "coupon"
	MessageTypeNotification = "notification"
	MessageTypeReward       = "reward"
	MessageTypeEvent        = "event"
)

const (
	AttachmentTypeCoupon = "coupon"
	AttachmentTypePoint  = "point"
	AttachmentTypeBadge  = "badge"
)

type InboxMessage struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"user_id"`
	Type           string          `json:"type"`
	Title          string          `json:"title"`
	Body           string          `json:"body"`
	AttachmentType string          `json:"attachment_type,omitempty"`
	AttachmentData json.RawMessage `json:"attachment_data,omitempty"`
	IsRead         bool            `json:"is_read"`
	IsClaimed      bool            `json:"is_claimed"`
	ReadAt         *time.Time      `json:"read_at,omitempty"`
	ClaimedAt      *time.Time      `json:"claimed_at,omitempty"`
	ExpiresAt      *time.Time      `json:"expires_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// HasAttachment reports whether there is anything to claim.
func (m InboxMessage) HasAttachment() bool {
	return m.AttachmentType != ""
}

// IsExpired reports whether the message is past its expiry at the given
// instant. Messages without expires_at never expire.
func (m InboxMessage) IsExpired(now time.Time) bool {
	return m.ExpiresAt != nil && m.ExpiresAt.Before(now)
}

// Attachment is the opaque payload handed back on claim. Data passes
// through untouched; the coupon/point ledger lives outside this system.
type Attachment struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// InboxFilters narrows inbox listings for one user.
type InboxFilters struct {
	Type   string
	IsRead *bool
	Page   int
	Limit  int
}

type InboxPage struct {
	Items       []InboxMessage `json:"items"`
	TotalCount  int64          `json:"totalCount"`
	UnreadCount int64          `json:"unreadCount"`
	HasNextPage bool           `json:"hasNextPage"`
	CurrentPage int            `json:"currentPage"`
}
