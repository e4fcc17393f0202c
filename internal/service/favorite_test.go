package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festivalhub/festivalhub-api/internal/domain"
)

type fakeFavoriteRepository struct {
	addFunc           func(ctx context.Context, userID, festivalID uint) (domain.Favorite, error)
	removeFunc        func(ctx context.Context, userID, festivalID uint) error
	findFestivalsFunc func(ctx context.Context, userID uint) ([]domain.Festival, error)
}

func (f *fakeFavoriteRepository) Add(ctx context.Context, userID, festivalID uint) (domain.Favorite, error) {
	return f.addFunc(ctx, userID, festivalID)
}

func (f *fakeFavoriteRepository) Remove(ctx context.Context, userID, festivalID uint) error {
	return f.removeFunc(ctx, userID, festivalID)
}

func (f *fakeFavoriteRepository) FindFestivals(ctx context.Context, userID uint) ([]domain.Festival, error) {
	return f.findFestivalsFunc(ctx, userID)
}

func (f *fakeFavoriteRepository) Count(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}

type fakeFestivalFinder struct {
	findByIDFunc func(ctx context.Context, id uint) (domain.Festival, error)
}

func (f *fakeFestivalFinder) FindByID(ctx context.Context, id uint) (domain.Festival, error) {
	return f.findByIDFunc(ctx, id)
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	t.Run("verifies the festival exists first", func(t *testing.T) {
		finder := &fakeFestivalFinder{
			findByIDFunc: func(ctx context.Context, id uint) (domain.Festival, error) {
				return domain.Festival{}, ErrFestivalNotFound
			},
		}
		svc := NewFavoriteService(&fakeFavoriteRepository{}, finder)

		err := svc.AddFavorite(context.Background(), 1, 99)

		assert.ErrorIs(t, err, ErrFestivalNotFound)
	})

	t.Run("adds a favorite", func(t *testing.T) {
		finder := &fakeFestivalFinder{
			findByIDFunc: func(ctx context.Context, id uint) (domain.Festival, error) {
				return domain.Festival{ID: id}, nil
			},
		}
		repo := &fakeFavoriteRepository{
			addFunc: func(ctx context.Context, userID, festivalID uint) (domain.Favorite, error) {
				return domain.Favorite{UserID: userID, FestivalID: festivalID}, nil
			},
		}
		svc := NewFavoriteService(repo, finder)

		require.NoError(t, svc.AddFavorite(context.Background(), 1, 7))
	})
}

func TestFavoriteService_GetFavoriteFestivals(t *testing.T) {
	repo := &fakeFavoriteRepository{
		findFestivalsFunc: func(ctx context.Context, userID uint) ([]domain.Festival, error) {
			return []domain.Festival{{ID: 7, Name: "녹색지대"}}, nil
		},
	}
	svc := NewFavoriteService(repo, &fakeFestivalFinder{})

	festivals, err := svc.GetFavoriteFestivals(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, festivals, 1)
	assert.Equal(t, "녹색지대", festivals[0].Name)
}
