package repository

import (
	"context"
	"fmt"

	"github.com/festivalhub/festivalhub-api/internal/domain"
	"github.com/festivalhub/festivalhub-api/internal/repository/dao"
)

var ErrFestivalNotFound = dao.ErrFestivalNotFound

type FestivalDAO interface {
	Insert(ctx context.Context, festival dao.Festival) (dao.Festival, error)
	FindByID(ctx context.Context, id uint) (dao.Festival, error)
	FindForAdmin(ctx context.Context, university string) ([]dao.Festival, error)
	FindPublic(ctx context.Context, filters domain.FestivalFilters, offset, limit int) ([]dao.Festival, int64, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (dao.Festival, error)
	Delete(ctx context.Context, id uint) error
}

type FestivalRepository struct {
	dao FestivalDAO
}

func NewFestivalRepository(dao FestivalDAO) *FestivalRepository {
	return &FestivalRepository{
		dao: dao,
	}
}

func (r *FestivalRepository) Create(ctx context.Context, festival domain.Festival) (domain.Festival, error) {
	created, err := r.dao.Insert(ctx, domainToDAOFestival(festival))
	if err != nil {
		return domain.Festival{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return daoToDomainFestival(created), nil
}

func (r *FestivalRepository) FindByID(ctx context.Context, id uint) (domain.Festival, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return daoToDomainFestival(found), nil
}

func (r *FestivalRepository) FindForAdmin(ctx context.Context, university string) ([]domain.Festival, error) {
	found, err := r.dao.FindForAdmin(ctx, university)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindForAdmin -> %w", err)
	}

	return daoToDomainFestivals(found), nil
}

func (r *FestivalRepository) FindPublic(ctx context.Context, filters domain.FestivalFilters, offset, limit int) ([]domain.Festival, int64, error) {
	found, total, err := r.dao.FindPublic(ctx, filters, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.FindPublic -> %w", err)
	}

	return daoToDomainFestivals(found), total, nil
}

// Update applies the allow-listed field changes. Column names mirror the
// festivals table; the service decides which fields are present.
func (r *FestivalRepository) Update(ctx context.Context, id uint, update domain.FestivalUpdate) (domain.Festival, error) {
	fields := map[string]interface{}{}

	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.University != nil {
		fields["university"] = *update.University
	}
	if update.Region != nil {
		fields["region"] = *update.Region
	}
	if update.StartDate != nil {
		fields["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		fields["end_date"] = *update.EndDate
	}
	if update.Location != nil {
		fields["location"] = *update.Location
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Lineup != nil {
		fields["lineup"] = dao.LineupJSON(update.Lineup)
	}
	if update.Booths != nil {
		fields["booths"] = dao.BoothsJSON(update.Booths)
	}
	if update.Transportation != nil {
		fields["transportation"] = dao.TransportationJSON{Transportation: update.Transportation}
	}
	if update.Admission != nil {
		fields["admission"] = dao.AdmissionJSON{Admission: update.Admission}
	}

	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	updated, err := r.dao.UpdateFields(ctx, id, fields)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("r.dao.UpdateFields -> %w", err)
	}

	return daoToDomainFestival(updated), nil
}

func (r *FestivalRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func domainToDAOFestival(f domain.Festival) dao.Festival {
	var description *string
	if f.Description != "" {
		description = &f.Description
	}

	return dao.Festival{
		ID:             f.ID,
		Name:           f.Name,
		University:     f.University,
		Region:         f.Region,
		StartDate:      f.StartDate,
		EndDate:        f.EndDate,
		Location:       f.Location,
		Description:    description,
		Lineup:         dao.LineupJSON(f.Lineup),
		Booths:         dao.BoothsJSON(f.Booths),
		Transportation: dao.TransportationJSON{Transportation: f.Transportation},
		Admission:      dao.AdmissionJSON{Admission: f.Admission},
		CreatedBy:      f.CreatedBy,
	}
}

func daoToDomainFestival(f dao.Festival) domain.Festival {
	var description string
	if f.Description != nil {
		description = *f.Description
	}

	return domain.Festival{
		ID:             f.ID,
		Name:           f.Name,
		University:     f.University,
		Region:         f.Region,
		StartDate:      f.StartDate,
		EndDate:        f.EndDate,
		Location:       f.Location,
		Description:    description,
		Lineup:         []domain.LineupEntry(f.Lineup),
		Booths:         []domain.Booth(f.Booths),
		Transportation: f.Transportation.Transportation,
		Admission:      f.Admission.Admission,
		CreatedBy:      f.CreatedBy,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

func daoToDomainFestivals(found []dao.Festival) []domain.Festival {
	festivals := make([]domain.Festival, 0, len(found))
	for _, f := range found {
		festivals = append(festivals, daoToDomainFestival(f))
	}

	return festivals
}
