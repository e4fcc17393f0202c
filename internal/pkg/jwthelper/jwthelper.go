package jwthelper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/festivalhub/festivalhub-api/internal/domain"
)

var ErrInvalidToken = errors.New("invalid token")

const tokenLifespan = 24 * time.Hour

// UserClaims is the session payload. Role and university ride on the token
// and are trusted as-is by the authorization guard; they are not re-read
// from the users table per request.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID     uint   `json:"uid"`
	Role       string `json:"role"`
	University string `json:"university,omitempty"`
	UserAgent  string `json:"user_agent,omitempty"`
}

func GenerateToken(signingKey []byte, user domain.User, userAgent string) (string, error) {
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifespan)),
		},
		UserID:     user.ID,
		Role:       user.Role,
		University: user.University,
		UserAgent:  userAgent,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	return token.SignedString(signingKey)
}

func ParseToken(signingKey []byte, tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return signingKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
