package models

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

// Input carries the writable fields of a reservation, as submitted by a
// create or update request. The server and the form validate the same
// shape with the same rules. Every field is optional at the schema
// level (omitempty) so that an absent key and an empty value take the
// same path: Validate reports the field by name with a 400, instead of
// the framework rejecting the body upfront.
type Input struct {
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Zone      int    `json:"zone,omitempty"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Status    string `json:"status,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Validate checks the input against the current schema and returns the
// names of missing or invalid fields, in a fixed order.
func (in Input) Validate() []string {
	var bad []string
	if strings.TrimSpace(in.Name) == "" {
		bad = append(bad, "name")
	}
	if strings.TrimSpace(in.Phone) == "" {
		bad = append(bad, "phone")
	}
	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		bad = append(bad, "email")
	}
	if in.Zone < ZoneMin || in.Zone > ZoneMax {
		bad = append(bad, "zone")
	}
	if !datePattern.MatchString(in.Date) {
		bad = append(bad, "date")
	}
	if !timePattern.MatchString(in.StartTime) {
		bad = append(bad, "start_time")
	}
	if !timePattern.MatchString(in.EndTime) {
		bad = append(bad, "end_time")
	}
	if in.Status != "" && in.Status != StatusArrived && in.Status != StatusDidNotShow {
		bad = append(bad, "status")
	}
	return bad
}

// ValidationMessage renders the field list as a single human-readable
// error message.
func ValidationMessage(fields []string) string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(fields, ", "))
}

// Apply copies the input onto a reservation. Empty email is stored as
// absent, never as an empty string; empty status takes the default;
// times are clipped to minute precision.
func (in Input) Apply(r *Reservation) {
	r.Name = strings.TrimSpace(in.Name)
	r.Phone = strings.TrimSpace(in.Phone)
	if in.Email == "" {
		r.Email = nil
	} else {
		email := in.Email
		r.Email = &email
	}
	r.Zone = in.Zone
	r.Date = in.Date
	r.StartTime = ClipSeconds(in.StartTime)
	r.EndTime = ClipSeconds(in.EndTime)
	if in.Status == "" {
		r.Status = StatusDefault
	} else {
		r.Status = in.Status
	}
	r.Notes = strings.TrimSpace(in.Notes)
}
