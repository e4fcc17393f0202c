package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/festivalhub/festivalhub-api/internal/domain"
)

const dateLayout = "2006-01-02"

var errBadDate = errors.New("날짜는 YYYY-MM-DD 형식이어야 합니다.")

type LineupEntry struct {
	Artist string `json:"artist"`
	Time   string `json:"time"`
	Stage  string `json:"stage"`
}

type Booth struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	Location       string `json:"location"`
	OperatingHours string `json:"operatingHours"`
}

type Transportation struct {
	Parking         string `json:"parking"`
	PublicTransport string `json:"publicTransport"`
}

type Admission struct {
	Fee      int    `json:"fee"`
	Currency string `json:"currency"`
	Notes    string `json:"notes"`
}

type CreateFestivalRequest struct {
	Name           string          `json:"name"`
	University     string          `json:"university"`
	Region         string          `json:"region"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	Location       string          `json:"location"`
	Description    string          `json:"description"`
	Lineup         []LineupEntry   `json:"lineup"`
	Booths         []Booth         `json:"booths"`
	Transportation *Transportation `json:"transportation"`
	Admission      *Admission      `json:"admission"`
}

func (r CreateFestivalRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.University, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Region, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.StartDate, validation.Required, validation.Date(dateLayout).Error(errBadDate.Error())),
		validation.Field(&r.EndDate, validation.Required, validation.Date(dateLayout).Error(errBadDate.Error())),
		validation.Field(&r.Location, validation.Required, validation.Length(1, 200)),
	)
}

// ToDomain converts the validated payload. Validate must have passed; the
// date parses cannot fail after it.
func (r CreateFestivalRequest) ToDomain() domain.Festival {
	startDate, _ := time.Parse(dateLayout, r.StartDate)
	endDate, _ := time.Parse(dateLayout, r.EndDate)

	return domain.Festival{
		Name:           r.Name,
		University:     r.University,
		Region:         r.Region,
		StartDate:      startDate,
		EndDate:        endDate,
		Location:       r.Location,
		Description:    r.Description,
		Lineup:         lineupToDomain(r.Lineup),
		Booths:         boothsToDomain(r.Booths),
		Transportation: transportationToDomain(r.Transportation),
		Admission:      admissionToDomain(r.Admission),
	}
}

// UpdateFestivalRequest is the allow-list of mutable festival fields. Absent
// fields stay nil and are never written; unknown payload fields are dropped
// by the JSON decoder.
type UpdateFestivalRequest struct {
	Name           *string         `json:"name"`
	University     *string         `json:"university"`
	Region         *string         `json:"region"`
	StartDate      *string         `json:"start_date"`
	EndDate        *string         `json:"end_date"`
	Location       *string         `json:"location"`
	Description    *string         `json:"description"`
	Lineup         []LineupEntry   `json:"lineup"`
	Booths         []Booth         `json:"booths"`
	Transportation *Transportation `json:"transportation"`
	Admission      *Admission      `json:"admission"`
}

func (r UpdateFestivalRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 200)),
		validation.Field(&r.University, validation.Length(1, 100)),
		validation.Field(&r.Region, validation.Length(1, 50)),
		validation.Field(&r.StartDate, validation.Date(dateLayout).Error(errBadDate.Error())),
		validation.Field(&r.EndDate, validation.Date(dateLayout).Error(errBadDate.Error())),
		validation.Field(&r.Location, validation.Length(1, 200)),
	)
}

func (r UpdateFestivalRequest) ToDomain() domain.FestivalUpdate {
	update := domain.FestivalUpdate{
		Name:           r.Name,
		University:     r.University,
		Region:         r.Region,
		Location:       r.Location,
		Description:    r.Description,
		Lineup:         lineupToDomain(r.Lineup),
		Booths:         boothsToDomain(r.Booths),
		Transportation: transportationToDomain(r.Transportation),
		Admission:      admissionToDomain(r.Admission),
	}

	if r.StartDate != nil {
		startDate, _ := time.Parse(dateLayout, *r.StartDate)
		update.StartDate = &startDate
	}
	if r.EndDate != nil {
		endDate, _ := time.Parse(dateLayout, *r.EndDate)
		update.EndDate = &endDate
	}

	return update
}

func lineupToDomain(entries []LineupEntry) []domain.LineupEntry {
	if entries == nil {
		return nil
	}

	lineup := make([]domain.LineupEntry, 0, len(entries))
	for _, e := range entries {
		lineup = append(lineup, domain.LineupEntry{
			Artist: e.Artist,
			Time:   e.Time,
			Stage:  e.Stage,
		})
	}

	return lineup
}

func boothsToDomain(entries []Booth) []domain.Booth {
	if entries == nil {
		return nil
	}

	booths := make([]domain.Booth, 0, len(entries))
	for _, b := range entries {
		booths = append(booths, domain.Booth{
			Name:           b.Name,
			Category:       b.Category,
			Location:       b.Location,
			OperatingHours: b.OperatingHours,
		})
	}

	return booths
}

func transportationToDomain(t *Transportation) *domain.Transportation {
	if t == nil {
		return nil
	}

	return &domain.Transportation{
		Parking:         t.Parking,
		PublicTransport: t.PublicTransport,
	}
}

func admissionToDomain(a *Admission) *domain.Admission {
	if a == nil {
		return nil
	}

	return &domain.Admission{
		Fee:      a.Fee,
		Currency: a.Currency,
		Notes:    a.Notes,
	}
}
