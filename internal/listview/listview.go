// Package listview owns the client-side reservation snapshot and the
// derived table view. All list state lives in one State value: the full
// snapshot from the last successful fetch, the active filters, and the
// pagination cursor. The view is recomputed as filter -> sort ->
// paginate, in that order, whenever filters, page size, or data change.
package listview

import (
	"sort"
	"strings"
	"unicode"

	"github.com/zonebook/zonebook/internal/models"
)

// PageSizes are the selectable rows-per-page choices.
var PageSizes = []int{5, 10, 20, 50}

const DefaultPageSize = 10

// Filters are the active list filters. All of them are case-insensitive
// substring matches combined with AND; an empty value matches everything.
type Filters struct {
	Name  string
	Phone string
	Email string
}

type State struct {
	all     []models.Reservation // snapshot from the last successful fetch
	visible []models.Reservation // filtered and sorted, before pagination

	filters  Filters
	page     int // 1-based
	pageSize int

	loaded     bool // at least one fetch succeeded
	refreshing bool
	err        error
}

func NewState() *State {
	return &State{page: 1, pageSize: DefaultPageSize}
}

// BeginRefresh marks a fetch as in flight. It returns false when one is
// already outstanding, so a second refresh is never issued concurrently
// and a stale response cannot overwrite a newer one.
func (s *State) BeginRefresh() bool {
	if s.refreshing {
		return false
	}
	s.refreshing = true
	return true
}

// CompleteRefresh resolves the in-flight fetch. On success the snapshot
// is replaced wholesale and the view recomputed; on failure the previous
// snapshot stays untouched and only the error state is set.
func (s *State) CompleteRefresh(reservations []models.Reservation, err error) {
	s.refreshing = false
	if err != nil {
		s.err = err
		return
	}
	s.err = nil
	s.loaded = true
	s.all = reservations
	s.recompute()
}

// SetFilters replaces the active filters and resets to the first page.
func (s *State) SetFilters(f Filters) {
	s.filters = f
	s.page = 1
	s.recompute()
}

// SetPageSize changes the rows-per-page and resets to the first page.
// Sizes outside the fixed choices are ignored.
func (s *State) SetPageSize(n int) {
	for _, allowed := range PageSizes {
		if n == allowed {
			s.pageSize = n
			s.page = 1
			s.recompute()
			return
		}
	}
}

// SetPage moves the pagination cursor, clamped into [1, TotalPages].
// Changing only the page never re-filters or re-sorts.
func (s *State) SetPage(n int) {
	s.page = clamp(n, 1, s.TotalPages())
}

func (s *State) NextPage() { s.SetPage(s.page + 1) }
func (s *State) PrevPage() { s.SetPage(s.page - 1) }

// Rows returns the reservations for the current page.
func (s *State) Rows() []models.Reservation {
	start := (s.page - 1) * s.pageSize
	if start >= len(s.visible) {
		return nil
	}
	end := start + s.pageSize
	if end > len(s.visible) {
		end = len(s.visible)
	}
	return s.visible[start:end]
}

// TotalPages is never below 1, even with no matching rows.
func (s *State) TotalPages() int {
	pages := (len(s.visible) + s.pageSize - 1) / s.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

func (s *State) Page() int        { return s.page }
func (s *State) PageSize() int    { return s.pageSize }
func (s *State) Filters() Filters { return s.filters }
func (s *State) Loaded() bool     { return s.loaded }
func (s *State) Refreshing() bool { return s.refreshing }
func (s *State) Err() error       { return s.err }
func (s *State) TotalCount() int  { return len(s.all) }
func (s *State) MatchCount() int  { return len(s.visible) }

// NoMatches reports the filtered-to-nothing state, which renders
// differently from not-yet-loaded.
func (s *State) NoMatches() bool {
	return s.loaded && len(s.visible) == 0
}

func (s *State) recompute() {
	s.visible = s.visible[:0]
	for _, r := range s.all {
		if s.matches(r) {
			s.visible = append(s.visible, r)
		}
	}
	sortByStart(s.visible)
	s.page = clamp(s.page, 1, s.TotalPages())
}

func (s *State) matches(r models.Reservation) bool {
	if !strings.Contains(strings.ToLower(r.Name), strings.ToLower(strings.TrimSpace(s.filters.Name))) {
		return false
	}
	if !strings.Contains(stripSpace(strings.ToLower(r.Phone)), stripSpace(strings.ToLower(s.filters.Phone))) {
		return false
	}
	email := ""
	if r.Email != nil {
		email = *r.Email
	}
	return strings.Contains(strings.ToLower(email), strings.ToLower(strings.TrimSpace(s.filters.Email)))
}

// sortByStart orders ascending by the combined date+start instant.
// Records that do not parse are incomparable: the stable sort leaves
// them in their relative positions.
func sortByStart(rs []models.Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, aok := rs[i].StartInstant()
		b, bok := rs[j].StartInstant()
		if !aok || !bok {
			return false
		}
		return a.Before(b)
	})
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
