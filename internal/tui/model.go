// Package tui is the terminal front end: a paginated, filterable
// reservation table and an add/edit form, driven by the bubbletea event
// loop. All state changes happen in Update in response to discrete key
// and network messages, never concurrently.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zonebook/zonebook/internal/client"
	"github.com/zonebook/zonebook/internal/listview"
	"github.com/zonebook/zonebook/internal/models"
)

type screen int

const (
	screenList screen = iota
	screenForm
)

type focusArea int

const (
	focusTable focusArea = iota
	focusFilterName
	focusFilterPhone
	focusFilterEmail
)

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeSuccess
	noticeError
)

// Messages produced by commands.
type (
	fetchDoneMsg struct {
		reservations []models.Reservation
		err          error
	}
	saveDoneMsg struct {
		err error
	}
	deleteDoneMsg struct {
		id  uint
		err error
	}
	noticeExpiredMsg struct {
		seq int
	}
)

const noticeTTL = 4 * time.Second
const requestTimeout = 15 * time.Second

type Model struct {
	client *client.Client
	list   *listview.State
	form   Form

	screen screen
	focus  focusArea

	filterName  textinput.Model
	filterPhone textinput.Model
	filterEmail textinput.Model

	selected    int // row index within the current page
	pageSizeIdx int
	confirm     *models.Reservation // pending delete confirmation
	submitting  bool

	notice     noticeKind
	noticeText string
	noticeSeq  int

	width int
}

func New(c *client.Client) Model {
	newFilter := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.Width = 18
		return ti
	}
	m := Model{
		client:      c,
		list:        listview.NewState(),
		form:        NewForm(),
		filterName:  newFilter("name"),
		filterPhone: newFilter("phone"),
		filterEmail: newFilter("email"),
	}
	for i, size := range listview.PageSizes {
		if size == listview.DefaultPageSize {
			m.pageSizeIdx = i
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	m.list.BeginRefresh()
	return m.fetchCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case fetchDoneMsg:
		m.list.CompleteRefresh(msg.reservations, msg.err)
		m.clampSelected()
		return m, nil

	case saveDoneMsg:
		m.submitting = false
		if msg.err != nil {
			// Entered values stay in place for correction.
			m.setError("Could not save: " + msg.err.Error())
			return m, nil
		}
		m.form.Reset()
		m.screen = screenList
		m.focus = focusTable
		return m, tea.Batch(m.setSuccess("Reservation saved."), m.refreshCmd())

	case deleteDoneMsg:
		m.confirm = nil
		if msg.err != nil {
			m.setError("Could not delete: " + msg.err.Error())
			// A stale id means the row is already gone; resync.
			if _, ok := msg.err.(*client.NotFoundError); ok {
				return m, m.refreshCmd()
			}
			return m, nil
		}
		// The edited record no longer exists, so editing it makes no sense.
		if id, editing := m.form.EditingID(); editing && id == msg.id {
			m.form.Reset()
		}
		return m, tea.Batch(m.setSuccess("Reservation deleted."), m.refreshCmd())

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq && m.notice == noticeSuccess {
			m.notice = noticeNone
			m.noticeText = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending delete confirmation swallows all other keys.
	if m.confirm != nil {
		switch msg.String() {
		case "y", "Y":
			// Disarm before dispatching so a second y cannot issue a
			// duplicate DELETE while the first is in flight.
			target := *m.confirm
			m.confirm = nil
			return m, m.deleteCmd(target.ID)
		case "n", "N", "esc":
			m.confirm = nil
		}
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.focus = (m.focus + 1) % 4
		m.syncFilterFocus()
		return m, nil
	case "shift+tab":
		m.focus = (m.focus + 3) % 4
		m.syncFilterFocus()
		return m, nil
	}

	if m.focus != focusTable {
		if msg.String() == "esc" {
			m.focus = focusTable
			m.syncFilterFocus()
			return m, nil
		}
		var cmd tea.Cmd
		switch m.focus {
		case focusFilterName:
			m.filterName, cmd = m.filterName.Update(msg)
		case focusFilterPhone:
			m.filterPhone, cmd = m.filterPhone.Update(msg)
		case focusFilterEmail:
			m.filterEmail, cmd = m.filterEmail.Update(msg)
		}
		// Only a change to the filter text resets the page; cursor
		// movement inside the input does not.
		next := listview.Filters{
			Name:  m.filterName.Value(),
			Phone: m.filterPhone.Value(),
			Email: m.filterEmail.Value(),
		}
		if next != m.list.Filters() {
			m.list.SetFilters(next)
			m.clampSelected()
		}
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.focus = focusFilterName
		m.syncFilterFocus()
	case "n":
		m.form.Reset()
		m.screen = screenForm
	case "e", "enter":
		if row, ok := m.selectedRow(); ok {
			m.form.Populate(row)
			m.screen = screenForm
		}
	case "d":
		if row, ok := m.selectedRow(); ok {
			r := row
			m.confirm = &r
		}
	case "r":
		return m, m.refreshCmd()
	case "left", "h":
		if m.paginationEnabled() {
			m.list.PrevPage()
			m.selected = 0
		}
	case "right", "l":
		if m.paginationEnabled() {
			m.list.NextPage()
			m.selected = 0
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.list.Rows())-1 {
			m.selected++
		}
	case "[":
		if m.paginationEnabled() {
			m.cyclePageSize(-1)
		}
	case "]":
		if m.paginationEnabled() {
			m.cyclePageSize(1)
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The submit control stays disabled while a request is in flight,
	// so a double enter cannot fire twice.
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.screen = screenList
		m.focus = focusTable
		return m, nil
	case "tab", "down":
		m.form.FocusNext()
		return m, nil
	case "shift+tab", "up":
		m.form.FocusPrev()
		return m, nil
	case "enter":
		if bad := m.form.Validate(); len(bad) > 0 {
			m.setError("Please fill the highlighted fields.")
			return m, nil
		}
		m.notice = noticeNone
		m.noticeText = ""
		m.submitting = true
		return m, m.saveCmd()
	}

	if m.form.StatusFocused() {
		switch msg.String() {
		case " ", "left", "right":
			m.form.ToggleStatus()
		}
		return m, nil
	}

	return m, m.form.Update(msg)
}

// paginationEnabled reports whether the pagination controls act.
// They are disabled while a fetch is in flight or in the error state.
func (m *Model) paginationEnabled() bool {
	return m.list.Loaded() && m.list.Err() == nil && !m.list.Refreshing()
}

func (m *Model) cyclePageSize(dir int) {
	n := len(listview.PageSizes)
	m.pageSizeIdx = (m.pageSizeIdx + dir + n) % n
	m.list.SetPageSize(listview.PageSizes[m.pageSizeIdx])
	m.selected = 0
}

func (m *Model) selectedRow() (models.Reservation, bool) {
	rows := m.list.Rows()
	if len(rows) == 0 || m.selected >= len(rows) {
		return models.Reservation{}, false
	}
	return rows[m.selected], true
}

func (m *Model) clampSelected() {
	if n := len(m.list.Rows()); m.selected >= n {
		m.selected = 0
	}
}

func (m *Model) syncFilterFocus() {
	m.filterName.Blur()
	m.filterPhone.Blur()
	m.filterEmail.Blur()
	switch m.focus {
	case focusFilterName:
		m.filterName.Focus()
	case focusFilterPhone:
		m.filterPhone.Focus()
	case focusFilterEmail:
		m.filterEmail.Focus()
	}
}

func (m *Model) setSuccess(text string) tea.Cmd {
	m.notice = noticeSuccess
	m.noticeText = text
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m *Model) setError(text string) {
	m.notice = noticeError
	m.noticeText = text
	m.noticeSeq++
}

// refreshCmd starts a full reload unless one is already in flight.
func (m *Model) refreshCmd() tea.Cmd {
	if !m.list.BeginRefresh() {
		return nil
	}
	return m.fetchCmd()
}

func (m Model) fetchCmd() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		reservations, err := c.List(ctx)
		return fetchDoneMsg{reservations: reservations, err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	c := m.client
	in := m.form.Values()
	id, editing := m.form.EditingID()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var err error
		if editing {
			_, err = c.Update(ctx, id, in)
		} else {
			_, err = c.Create(ctx, in)
		}
		return saveDoneMsg{err: err}
	}
}

func (m Model) deleteCmd(id uint) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return deleteDoneMsg{id: id, err: c.Delete(ctx, id)}
	}
}
