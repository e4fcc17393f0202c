package service

import (
	"errors"

	"github.com/festivalhub/festivalhub-api/internal/domain"
)

// Operations a caller can attempt on a festival record.
type FestivalOp string

const (
	FestivalOpRead   FestivalOp = "read"
	FestivalOpCreate FestivalOp = "create"
	FestivalOpUpdate FestivalOp = "update"
	FestivalOpDelete FestivalOp = "delete"
)

var (
	ErrAdminRequired          = errors.New("관리자 권한이 필요합니다.")
	ErrReadDenied             = errors.New("권한이 없습니다.")
	ErrCreateDenied           = errors.New("자신의 대학 축제만 등록할 수 있습니다.")
	ErrUpdateDenied           = errors.New("자신의 대학 축제만 수정할 수 있습니다.")
	ErrDeleteDenied           = errors.New("자신의 대학 축제만 삭제할 수 있습니다.")
	ErrUniversityChangeDenied = errors.New("대학 정보를 변경할 수 없습니다.")
)

// AuthorizationGuard decides whether a caller's claims permit an operation
// on a festival owned by a given university. Pure decision logic, no I/O.
//
// super_admin is permitted everywhere. university_admin is permitted only
// on festivals of its own university claim. Everyone else is rejected
// before ownership is even considered.
type AuthorizationGuard struct{}

func (AuthorizationGuard) Authorize(user domain.User, op FestivalOp, festivalUniversity string) error {
	if !user.IsAdmin() {
		return ErrAdminRequired
	}

	if user.Role == domain.RoleSuperAdmin {
		return nil
	}

	if user.University == festivalUniversity {
		return nil
	}

	switch op {
	case FestivalOpCreate:
		return ErrCreateDenied
	case FestivalOpUpdate:
		return ErrUpdateDenied
	case FestivalOpDelete:
		return ErrDeleteDenied
	default:
		return ErrReadDenied
	}
}

// AuthorizeUniversityChange gates moving a festival to another university.
// Only super_admin may do that; a university_admin payload naming any other
// university is rejected outright.
func (AuthorizationGuard) AuthorizeUniversityChange(user domain.User, requested string) error {
	if user.Role == domain.RoleSuperAdmin {
		return nil
	}

	if requested != "" && requested != user.University {
		return ErrUniversityChangeDenied
	}

	return nil
}

// IsPermissionDenied reports whether err is one of the guard's 403 outcomes.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrAdminRequired) ||
		errors.Is(err, ErrReadDenied) ||
		errors.Is(err, ErrCreateDenied) ||
		errors.Is(err, ErrUpdateDenied) ||
		errors.Is(err, ErrDeleteDenied) ||
		errors.Is(err, ErrUniversityChangeDenied)
}
