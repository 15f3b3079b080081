package models

import (
	"time"
)

// Reservation status values. Earlier deployments tracked payment
// ("paid"/"unpaid"/"cancelled"); the current schema tracks attendance.
// The rename is a breaking change, old payment values are not accepted
// on the wire.
const (
	StatusArrived    = "ArrivedAtVenue"
	StatusDidNotShow = "DidNotArrive"
	StatusDefault    = StatusDidNotShow
)

// ZoneMin and ZoneMax bound the bookable zone numbers.
const (
	ZoneMin = 1
	ZoneMax = 18
)

// Reservation is the single persisted resource: a booked time slot for a
// zone. Date and time fields are stored as ISO strings so lexicographic
// order matches chronological order.
type Reservation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Email     *string   `json:"email"`
	Zone      int       `json:"zone" gorm:"not null"`
	Date      string    `json:"date" gorm:"not null;index:idx_date_start"`
	StartTime string    `json:"start_time" gorm:"not null;index:idx_date_start"`
	EndTime   string    `json:"end_time" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null;default:DidNotArrive"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DisplayStatus returns the status for rendering. Unrecognized or empty
// stored values fall back to the default without mutating the record.
func (r Reservation) DisplayStatus() string {
	switch r.Status {
	case StatusArrived, StatusDidNotShow:
		return r.Status
	}
	return StatusDefault
}

// StartInstant combines date and start time into a single sortable
// instant. ok is false when either part does not parse.
func (r Reservation) StartInstant() (time.Time, bool) {
	t, err := time.Parse("2006-01-02 15:04", r.Date+" "+ClipSeconds(r.StartTime))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ClipSeconds truncates "HH:MM:SS" to "HH:MM". Values already in minutes
// precision pass through unchanged.
func ClipSeconds(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
