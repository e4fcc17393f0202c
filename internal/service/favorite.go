package service

import (
	"context"
	"fmt"

	"github.com/festivalhub/festivalhub-api/internal/domain"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, festivalID uint) (domain.Favorite, error)
	Remove(ctx context.Context, userID, festivalID uint) error
	FindFestivals(ctx context.Context, userID uint) ([]domain.Festival, error)
	Count(ctx context.Context, userID uint) (int64, error)
}

type FavoriteFestivalRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Festival, error)
}

type FavoriteService struct {
	repo         FavoriteRepository
	festivalRepo FavoriteFestivalRepository
}

func NewFavoriteService(repo FavoriteRepository, festivalRepo FavoriteFestivalRepository) *FavoriteService {
	return &FavoriteService{
		repo:         repo,
		festivalRepo: festivalRepo,
	}
}

// AddFavorite is idempotent; favoriting twice keeps a single row.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, festivalID uint) error {
	if _, err := s.festivalRepo.FindByID(ctx, festivalID); err != nil {
		return fmt.Errorf("s.festivalRepo.FindByID -> %w", err)
	}

	if _, err := s.repo.Add(ctx, userID, festivalID); err != nil {
		return fmt.Errorf("s.repo.Add -> %w", err)
	}

	return nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, festivalID uint) error {
	if err := s.repo.Remove(ctx, userID, festivalID); err != nil {
		return fmt.Errorf("s.repo.Remove -> %w", err)
	}

	return nil
}

func (s *FavoriteService) GetFavoriteFestivals(ctx context.Context, userID uint) ([]domain.Festival, error) {
	festivals, err := s.repo.FindFestivals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFestivals -> %w", err)
	}

	return festivals, nil
}
