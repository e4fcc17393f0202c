package service

import (
	"context"
	"fmt"
	"time"

	"github.com/festivalhub/festivalhub-api/internal/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	UpdateProfile(ctx context.Context, id uint, name, university string) (domain.User, error)
}

type FavoriteCounter interface {
	Count(ctx context.Context, userID uint) (int64, error)
}

type CouponCounter interface {
	CountClaimedCoupons(ctx context.Context, userID uint, now time.Time) (int64, error)
}

type UserService struct {
	repo      UserRepository
	favorites FavoriteCounter
	coupons   CouponCounter
	now       func() time.Time
}

func NewUserService(repo UserRepository, favorites FavoriteCounter, coupons CouponCounter) *UserService {
	return &UserService{
		repo:      repo,
		favorites: favorites,
		coupons:   coupons,
		now:       time.Now,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (domain.Profile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	favoriteCount, err := s.favorites.Count(ctx, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.favorites.Count -> %w", err)
	}

	couponCount, err := s.coupons.CountClaimedCoupons(ctx, userID, s.now())
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.coupons.CountClaimedCoupons -> %w", err)
	}

	return domain.Profile{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		School:        user.University,
		FavoriteCount: favoriteCount,
		CouponCount:   couponCount,
		JoinedAt:      user.CreatedAt,
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, name, school string) (domain.Profile, error) {
	if _, err := s.repo.UpdateProfile(ctx, userID, name, school); err != nil {
		return domain.Profile{}, fmt.Errorf("s.repo.UpdateProfile -> %w", err)
	}

	return s.GetProfile(ctx, userID)
}
