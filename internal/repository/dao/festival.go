package dao

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/festivalhub/festivalhub-api/internal/domain"
)

var ErrFestivalNotFound = errors.New("축제를 찾을 수 없습니다.")

type Festival struct {
	ID uint `gorm:"primaryKey"`

	Name       string    `gorm:"not null"`
	University string    `gorm:"not null;index"`
	Region     string    `gorm:"not null"`
	StartDate  time.Time `gorm:"not null"`
	EndDate    time.Time `gorm:"not null"`
	Location   string    `gorm:"not null"`

	Description    *string
	Lineup         LineupJSON         `gorm:"type:jsonb"`
	Booths         BoothsJSON         `gorm:"type:jsonb"`
	Transportation TransportationJSON `gorm:"type:jsonb"`
	Admission      AdmissionJSON      `gorm:"type:jsonb"`

	CreatedBy uint `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

type LineupJSON []domain.LineupEntry

func (l LineupJSON) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *LineupJSON) Scan(src interface{}) error {
	return scanJSON(src, l)
}

type BoothsJSON []domain.Booth

func (b BoothsJSON) Value() (driver.Value, error) {
	if len(b) == 0 {
		return nil, nil
	}
	return json.Marshal(b)
}

func (b *BoothsJSON) Scan(src interface{}) error {
	return scanJSON(src, b)
}

type TransportationJSON struct {
	*domain.Transportation
}

func (t TransportationJSON) Value() (driver.Value, error) {
	if t.Transportation == nil {
		return nil, nil
	}
	return json.Marshal(t.Transportation)
}

func (t *TransportationJSON) Scan(src interface{}) error {
	if src == nil {
		t.Transportation = nil
		return nil
	}
	t.Transportation = &domain.Transportation{}
	return scanJSON(src, t.Transportation)
}

type AdmissionJSON struct {
	*domain.Admission
}

func (a AdmissionJSON) Value() (driver.Value, error) {
	if a.Admission == nil {
		return nil, nil
	}
	return json.Marshal(a.Admission)
}

func (a *AdmissionJSON) Scan(src interface{}) error {
	if src == nil {
		a.Admission = nil
		return nil
	}
	a.Admission = &domain.Admission{}
	return scanJSON(src, a.Admission)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}
}

type FestivalDAO struct {
	db *gorm.DB
}

func NewFestivalDAO(db *gorm.DB) *FestivalDAO {
	return &FestivalDAO{
		db: db,
	}
}

func (d *FestivalDAO) Insert(ctx context.Context, festival Festival) (Festival, error) {
	result := d.db.WithContext(ctx).Create(&festival)
	if result.Error != nil {
		return Festival{}, result.Error
	}

	return festival, nil
}

func (d *FestivalDAO) FindByID(ctx context.Context, id uint) (Festival, error) {
	var festival Festival

	result := d.db.WithContext(ctx).First(&festival, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Festival{}, ErrFestivalNotFound
		}

		return Festival{}, result.Error
	}

	return festival, nil
}

// FindForAdmin lists festivals newest first, optionally scoped to one university.
func (d *FestivalDAO) FindForAdmin(ctx context.Context, university string) ([]Festival, error) {
	var festivals []Festival

	query := d.db.WithContext(ctx).Order("created_at DESC")
	if university != "" {
		query = query.Where("university = ?", university)
	}

	result := query.Find(&festivals)
	if result.Error != nil {
		return nil, result.Error
	}

	return festivals, nil
}

// FindPublic lists festivals matching the public filters, newest first,
// returning one page plus the unpaginated match count.
func (d *FestivalDAO) FindPublic(ctx context.Context, filters domain.FestivalFilters, offset, limit int) ([]Festival, int64, error) {
	query := d.db.WithContext(ctx).Model(&Festival{})

	if filters.Region != "" {
		query = query.Where("region = ?", filters.Region)
	}
	if filters.University != "" {
		query = query.Where("university = ?", filters.University)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("name LIKE ? OR university LIKE ? OR description LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var festivals []Festival
	result := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&festivals)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return festivals, total, nil
}

// UpdateFields applies a pre-filtered column map and returns the new row.
func (d *FestivalDAO) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (Festival, error) {
	result := d.db.WithContext(ctx).
		Model(&Festival{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return Festival{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Festival{}, ErrFestivalNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *FestivalDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Festival{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFestivalNotFound
	}

	return nil
}
