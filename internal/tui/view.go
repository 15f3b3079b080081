package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/zonebook/zonebook/internal/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	arrivedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noShowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	invalidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Width(8)
)

func (m Model) View() string {
	if m.screen == screenForm {
		return m.viewForm()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Zone reservations"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Filter  name: %s  phone: %s  email: %s\n\n",
		m.filterName.View(), m.filterPhone.View(), m.filterEmail.View()))

	if err := m.list.Err(); err != nil {
		// The last good snapshot stays on screen below the indicator.
		b.WriteString(errorStyle.Render("Could not load reservations: "+err.Error()) + "\n")
	}
	switch {
	case !m.list.Loaded() && m.list.Err() != nil:
		// Nothing fetched yet, nothing to show.
	case !m.list.Loaded():
		b.WriteString(mutedStyle.Render("Loading reservations...") + "\n")
	case m.list.TotalCount() == 0:
		b.WriteString(mutedStyle.Render("No reservations yet.") + "\n")
	case m.list.NoMatches():
		b.WriteString(mutedStyle.Render("No reservations match the filter.") + "\n")
	default:
		m.writeTable(&b)
	}

	b.WriteString("\n")
	if m.list.Err() != nil || !m.list.Loaded() {
		b.WriteString(mutedStyle.Render("Page - of -") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("Page %d of %d  ·  %d per page  ·  %d of %d shown\n",
			m.list.Page(), m.list.TotalPages(), m.list.PageSize(),
			m.list.MatchCount(), m.list.TotalCount()))
	}

	if m.confirm != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf(
			"Delete reservation for %s on %s? (y/n)",
			m.confirm.Name, formatDate(m.confirm.Date))) + "\n")
	}

	m.writeNotice(&b)

	if row, ok := m.selectedRow(); ok && row.Notes != "" {
		b.WriteString(mutedStyle.Render("Notes: "+row.Notes) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(
		"n new · e edit · d delete · r refresh · / filter · tab focus · ←/→ page · [ ] page size · q quit"))
	return b.String()
}

const tableFormat = "%-20s %-14s %-5s %-11s %-6s %-6s %-14s %-30s"

func (m Model) writeTable(b *strings.Builder) {
	b.WriteString(headerStyle.Render(fmt.Sprintf(tableFormat,
		"Name", "Phone", "Zone", "Date", "Start", "End", "Status", "Notes")))
	b.WriteString("\n")

	for i, r := range m.list.Rows() {
		line := fmt.Sprintf(tableFormat,
			truncate(r.Name, 20),
			truncate(r.Phone, 14),
			fmt.Sprintf("%d", r.Zone),
			formatDate(r.Date),
			models.ClipSeconds(r.StartTime),
			models.ClipSeconds(r.EndTime),
			statusLabel(r),
			truncateNotes(r.Notes),
		)
		switch {
		case i == m.selected:
			line = selectedStyle.Render(line)
		case r.DisplayStatus() == models.StatusArrived:
			line = arrivedStyle.Render(line)
		default:
			line = noShowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
}

func (m Model) viewForm() string {
	var b strings.Builder
	if _, editing := m.form.EditingID(); editing {
		b.WriteString(titleStyle.Render("Edit reservation"))
	} else {
		b.WriteString(titleStyle.Render("Add reservation"))
	}
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		if m.form.Invalid(fieldKeys[i]) {
			b.WriteString(invalidStyle.Render(labelStyle.Render(label)))
		} else {
			b.WriteString(labelStyle.Render(label))
		}
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}

	statusLine := m.form.Status()
	if m.form.StatusFocused() {
		statusLine = selectedStyle.Render(statusLine) + mutedStyle.Render("  (space to toggle)")
	}
	b.WriteString(labelStyle.Render("Status") + statusLine + "\n\n")

	if m.submitting {
		b.WriteString(mutedStyle.Render("Saving...") + "\n")
	} else if _, editing := m.form.EditingID(); editing {
		b.WriteString("enter: Save changes · esc: back · tab: next field\n")
	} else {
		b.WriteString("enter: Add reservation · esc: back · tab: next field\n")
	}

	m.writeNotice(&b)
	return b.String()
}

func (m Model) writeNotice(b *strings.Builder) {
	switch m.notice {
	case noticeSuccess:
		b.WriteString(successStyle.Render(m.noticeText) + "\n")
	case noticeError:
		b.WriteString(errorStyle.Render(m.noticeText) + "\n")
	}
}

func statusLabel(r models.Reservation) string {
	if r.DisplayStatus() == models.StatusArrived {
		return "Arrived"
	}
	return "Did not arrive"
}

// formatDate renders the ISO date in local DD.MM.YYYY form, falling
// back to the raw value when it does not parse.
func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02.01.2006")
}

// truncateNotes shortens long notes for the table cell; the full text
// shows in the detail line for the selected row.
func truncateNotes(notes string) string {
	runes := []rune(notes)
	if len(runes) > 30 {
		return string(runes[:27]) + "..."
	}
	return notes
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return s
}
