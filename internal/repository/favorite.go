package repository

import (
	"context"
	"fmt"

	"github.com/festivalhub/festivalhub-api/internal/domain"
	"github.com/festivalhub/festivalhub-api/internal/repository/dao"
)

type FavoriteDAO interface {
	Upsert(ctx context.Context, userID, festivalID uint) (dao.Favorite, error)
	Delete(ctx context.Context, userID, festivalID uint) error
	FindFestivalsByUserID(ctx context.Context, userID uint) ([]dao.Festival, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

type FavoriteRepository struct {
	dao FavoriteDAO
}

func NewFavoriteRepository(dao FavoriteDAO) *FavoriteRepository {
	return &FavoriteRepository{
		dao: dao,
	}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, festivalID uint) (domain.Favorite, error) {
	created, err := r.dao.Upsert(ctx, userID, festivalID)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return domain.Favorite{
		ID:         created.ID,
		UserID:     created.UserID,
		FestivalID: created.FestivalID,
		CreatedAt:  created.CreatedAt,
	}, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, festivalID uint) error {
	if err := r.dao.Delete(ctx, userID, festivalID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *FavoriteRepository) FindFestivals(ctx context.Context, userID uint) ([]domain.Festival, error) {
	found, err := r.dao.FindFestivalsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindFestivalsByUserID -> %w", err)
	}

	return daoToDomainFestivals(found), nil
}

func (r *FavoriteRepository) Count(ctx context.Context, userID uint) (int64, error) {
	count, err := r.dao.CountByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByUserID -> %w", err)
	}

	return count, nil
}
