package response

import (
	"github.com/festivalhub/festivalhub-api/internal/domain"
)

type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type FestivalListResponse struct {
	Festivals  []domain.Festival `json:"festivals"`
	Pagination Pagination        `json:"pagination"`
}

type InboxListResponse struct {
	Messages    []domain.InboxMessage `json:"messages"`
	TotalCount  int64                 `json:"totalCount"`
	UnreadCount int64                 `json:"unreadCount"`
	HasNextPage bool                  `json:"hasNextPage"`
	CurrentPage int                   `json:"currentPage"`
}

type MarkAllReadResponse struct {
	UpdatedCount int64 `json:"updatedCount"`
}
