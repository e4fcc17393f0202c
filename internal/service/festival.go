package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/festivalhub/festivalhub-api/internal/domain"
	"github.com/festivalhub/festivalhub-api/internal/repository"
)

var (
	ErrFestivalNotFound = repository.ErrFestivalNotFound
	ErrEndBeforeStart   = errors.New("종료일은 시작일보다 이후여야 합니다.")
)

type FestivalRepository interface {
	Create(ctx context.Context, festival domain.Festival) (domain.Festival, error)
	FindByID(ctx context.Context, id uint) (domain.Festival, error)
	FindForAdmin(ctx context.Context, university string) ([]domain.Festival, error)
	FindPublic(ctx context.Context, filters domain.FestivalFilters, offset, limit int) ([]domain.Festival, int64, error)
	Update(ctx context.Context, id uint, update domain.FestivalUpdate) (domain.Festival, error)
	Delete(ctx context.Context, id uint) error
}

type FestivalService struct {
	repo  FestivalRepository
	guard AuthorizationGuard
}

func NewFestivalService(repo FestivalRepository) *FestivalService {
	return &FestivalService{
		repo: repo,
	}
}

// ListForAdmin scopes the listing by the caller's claims: a university_admin
// only ever sees its own university, a super_admin sees everything unless it
// asks for one university explicitly.
func (s *FestivalService) ListForAdmin(ctx context.Context, user domain.User, universityFilter string) ([]domain.Festival, error) {
	if !user.IsAdmin() {
		return nil, ErrAdminRequired
	}

	scope := universityFilter
	if user.Role == domain.RoleUniversityAdmin {
		scope = user.University
	}

	festivals, err := s.repo.FindForAdmin(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindForAdmin -> %w", err)
	}

	return festivals, nil
}

func (s *FestivalService) CreateFestival(ctx context.Context, user domain.User, festival domain.Festival) (domain.Festival, error) {
	if err := s.guard.Authorize(user, FestivalOpCreate, festival.University); err != nil {
		return domain.Festival{}, err
	}

	if festival.EndDate.Before(festival.StartDate) {
		return domain.Festival{}, ErrEndBeforeStart
	}

	festival.CreatedBy = user.ID

	created, err := s.repo.Create(ctx, festival)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *FestivalService) GetFestivalForAdmin(ctx context.Context, user domain.User, id uint) (domain.Festival, error) {
	if !user.IsAdmin() {
		return domain.Festival{}, ErrAdminRequired
	}

	festival, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.guard.Authorize(user, FestivalOpRead, festival.University); err != nil {
		return domain.Festival{}, err
	}

	return festival, nil
}

// UpdateFestival authorizes against the stored record's university, never
// the payload's, then applies the allow-listed changes.
func (s *FestivalService) UpdateFestival(ctx context.Context, user domain.User, id uint, update domain.FestivalUpdate) (domain.Festival, error) {
	if !user.IsAdmin() {
		return domain.Festival{}, ErrAdminRequired
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.guard.Authorize(user, FestivalOpUpdate, existing.University); err != nil {
		return domain.Festival{}, err
	}

	if update.University != nil {
		if err := s.guard.AuthorizeUniversityChange(user, *update.University); err != nil {
			return domain.Festival{}, err
		}
	}

	if update.StartDate != nil && update.EndDate != nil && update.EndDate.Before(*update.StartDate) {
		return domain.Festival{}, ErrEndBeforeStart
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *FestivalService) DeleteFestival(ctx context.Context, user domain.User, id uint) error {
	if !user.IsAdmin() {
		return ErrAdminRequired
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.guard.Authorize(user, FestivalOpDelete, existing.University); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// ListPublic returns one page of festivals plus the total match count.
func (s *FestivalService) ListPublic(ctx context.Context, filters domain.FestivalFilters, page, limit int) ([]domain.Festival, int64, error) {
	offset := (page - 1) * limit

	festivals, total, err := s.repo.FindPublic(ctx, filters, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.FindPublic -> %w", err)
	}

	return festivals, total, nil
}

func (s *FestivalService) GetFestival(ctx context.Context, id uint) (domain.Festival, error) {
	festival, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return festival, nil
}
