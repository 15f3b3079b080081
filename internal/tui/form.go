package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zonebook/zonebook/internal/models"
)

// Mode is the form's submission target: create a new reservation or
// replace an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Form field indexes. The status toggle sits after the text inputs in
// the focus order.
const (
	fieldName = iota
	fieldPhone
	fieldEmail
	fieldZone
	fieldDate
	fieldStart
	fieldEnd
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name", "Phone", "Email", "Zone", "Date", "Start", "End", "Notes",
}

var fieldKeys = [fieldCount]string{
	"name", "phone", "email", "zone", "date", "start_time", "end_time", "notes",
}

// Form manages the add/edit inputs. It validates locally with the same
// rules the server applies, so a request is only sent once it would
// pass.
type Form struct {
	mode    Mode
	editID  uint
	inputs  [fieldCount]textinput.Model
	status  string
	focus   int // 0..fieldCount-1 are inputs, fieldCount is the status toggle
	invalid map[string]bool
}

func NewForm() Form {
	f := Form{status: models.StatusDefault, invalid: map[string]bool{}}
	placeholders := [fieldCount]string{
		"Jane Novak", "123 456 789", "jane@example.com (optional)",
		"1-18", "YYYY-MM-DD", "HH:MM", "HH:MM", "optional",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.Width = 30
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Focus()
	return f
}

func (f *Form) Mode() Mode { return f.mode }

// EditingID reports which reservation the form targets in edit mode.
func (f *Form) EditingID() (uint, bool) {
	return f.editID, f.mode == ModeEdit
}

func (f *Form) Status() string { return f.status }

// Invalid reports whether the named field failed the last validation.
func (f *Form) Invalid(field string) bool { return f.invalid[field] }

// Values collects the current inputs into a request payload.
func (f *Form) Values() models.Input {
	zone, _ := strconv.Atoi(f.inputs[fieldZone].Value())
	return models.Input{
		Name:      f.inputs[fieldName].Value(),
		Phone:     f.inputs[fieldPhone].Value(),
		Email:     f.inputs[fieldEmail].Value(),
		Zone:      zone,
		Date:      f.inputs[fieldDate].Value(),
		StartTime: f.inputs[fieldStart].Value(),
		EndTime:   f.inputs[fieldEnd].Value(),
		Status:    f.status,
		Notes:     f.inputs[fieldNotes].Value(),
	}
}

// Validate runs the shared field rules and records the offending fields
// so the view can highlight them. It returns them in order.
func (f *Form) Validate() []string {
	bad := f.Values().Validate()
	f.invalid = map[string]bool{}
	for _, field := range bad {
		f.invalid[field] = true
	}
	return bad
}

// Populate switches to edit mode, filling every field from the target
// record. Absent optional fields become empty inputs.
func (f *Form) Populate(r models.Reservation) {
	f.mode = ModeEdit
	f.editID = r.ID
	f.invalid = map[string]bool{}
	email := ""
	if r.Email != nil {
		email = *r.Email
	}
	values := [fieldCount]string{
		r.Name, r.Phone, email, strconv.Itoa(r.Zone),
		r.Date, models.ClipSeconds(r.StartTime), models.ClipSeconds(r.EndTime), r.Notes,
	}
	for i := range f.inputs {
		f.inputs[i].SetValue(values[i])
	}
	f.status = r.DisplayStatus()
	f.setFocus(fieldName)
}

// Reset returns the form to create mode with everything cleared.
func (f *Form) Reset() {
	f.mode = ModeCreate
	f.editID = 0
	f.invalid = map[string]bool{}
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.status = models.StatusDefault
	f.setFocus(fieldName)
}

// ToggleStatus flips between the two attendance states.
func (f *Form) ToggleStatus() {
	if f.status == models.StatusArrived {
		f.status = models.StatusDidNotShow
	} else {
		f.status = models.StatusArrived
	}
}

func (f *Form) FocusNext() {
	f.setFocus((f.focus + 1) % (fieldCount + 1))
}

func (f *Form) FocusPrev() {
	f.setFocus((f.focus + fieldCount) % (fieldCount + 1))
}

func (f *Form) setFocus(n int) {
	f.focus = n
	for i := range f.inputs {
		if i == n {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// StatusFocused reports whether the focus sits on the status toggle.
func (f *Form) StatusFocused() bool { return f.focus == fieldCount }

// Update forwards key input to the focused text field.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if f.focus >= fieldCount {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
