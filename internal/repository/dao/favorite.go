package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Favorite struct {
	ID uint `gorm:"primaryKey"`

	UserID     uint `gorm:"not null;uniqueIndex:idx_favorites_user_festival"`
	FestivalID uint `gorm:"not null;uniqueIndex:idx_favorites_user_festival"`

	CreatedAt time.Time `gorm:"not null"`
}

type FavoriteDAO struct {
	db *gorm.DB
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{
		db: db,
	}
}

// Upsert records the favorite. Re-favoriting the same festival is a no-op.
func (d *FavoriteDAO) Upsert(ctx context.Context, userID, festivalID uint) (Favorite, error) {
	favorite := Favorite{
		UserID:     userID,
		FestivalID: festivalID,
	}

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND festival_id = ?", userID, festivalID).
		FirstOrCreate(&favorite)
	if result.Error != nil {
		return Favorite{}, result.Error
	}

	return favorite, nil
}

func (d *FavoriteDAO) Delete(ctx context.Context, userID, festivalID uint) error {
	result := d.db.WithContext(ctx).
		Where("user_id = ? AND festival_id = ?", userID, festivalID).
		Delete(&Favorite{})

	return result.Error
}

func (d *FavoriteDAO) FindFestivalsByUserID(ctx context.Context, userID uint) ([]Festival, error) {
	var festivals []Festival

	result := d.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.festival_id = festivals.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&festivals)
	if result.Error != nil {
		return nil, result.Error
	}

	return festivals, nil
}

func (d *FavoriteDAO) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Favorite{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
