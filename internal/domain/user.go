package domain

import "time"

const (
	RoleUser            = "user"
	RoleUniversityAdmin = "university_admin"
	RoleSuperAdmin      = "super_admin"
)

type User struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Name       string    `json:"name"`
	University string    `json:"university,omitempty"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user may touch the admin festival endpoints at all.
func (u User) IsAdmin() bool {
	return u.Role == RoleUniversityAdmin || u.Role == RoleSuperAdmin
}

type Profile struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	School        string    `json:"school"`
	FavoriteCount int64     `json:"favoriteCount"`
	CouponCount   int64     `json:"couponCount"`
	JoinedAt      time.Time `json:"joinedAt"`
}
