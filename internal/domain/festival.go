package domain

import "time"

type Festival struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	University     string          `json:"university"`
	Region         string          `json:"region"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	Location       string          `json:"location"`
	Description    string          `json:"description,omitempty"`
	Lineup         []LineupEntry   `json:"lineup,omitempty"`
	Booths         []Booth         `json:"booths,omitempty"`
	Transportation *Transportation `json:"transportation,omitempty"`
	Admission      *Admission      `json:"admission,omitempty"`
	CreatedBy      uint            `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

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

// FestivalFilters narrows public festival listings. Zero values mean "no filter".
type FestivalFilters struct {
	Region     string
	University string
	Search     string
}

// FestivalUpdate carries the mutable fields of a festival. Nil pointers are
// left untouched; anything outside this allow-list is dropped at the handler.
type FestivalUpdate struct {
	Name           *string
	University     *string
	Region         *string
	StartDate      *time.Time
	EndDate        *time.Time
	Location       *string
	Description    *string
	Lineup         []LineupEntry
	Booths         []Booth
	Transportation *Transportation
	Admission      *Admission
}
