package domain

import "time"

type Favorite struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	FestivalID uint      `json:"festival_id"`
	CreatedAt  time.Time `json:"created_at"`
}
