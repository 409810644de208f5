package list_test

import (
	"github.com/nikbrunner/dialer/internal/list"
)

// fakeRow is a row whose schema is the set of keys present.
type fakeRow map[string]string

func (r fakeRow) Field(name string) (string, error) {
	v, ok := r[name]
	if !ok {
		return "", list.ErrNoField
	}
	return v, nil
}

type fakeSource struct {
	rows      []fakeRow
	disabled  map[int]bool
	viewTypes int
	photo     list.PhotoPosition
}

func newFakeSource(rows ...fakeRow) *fakeSource {
	return &fakeSource{rows: rows, viewTypes: 2, photo: list.PhotoRight}
}

// sourceOfSize returns a source with n rows without any extra-number column.
func sourceOfSize(n int) *fakeSource {
	rows := make([]fakeRow, n)
	for i := range rows {
		rows[i] = fakeRow{"display_name": "row"}
	}
	return newFakeSource(rows...)
}

func (s *fakeSource) Count() int                        { return len(s.rows) }
func (s *fakeSource) IsEmpty() bool                     { return len(s.rows) == 0 }
func (s *fakeSource) ViewTypeCount() int                { return s.viewTypes }
func (s *fakeSource) ViewType(index int) int            { return index % s.viewTypes }
func (s *fakeSource) IsEnabled(index int) bool          { return !s.disabled[index] }
func (s *fakeSource) PhotoPosition() list.PhotoPosition { return s.photo }
func (s *fakeSource) Row(index int) list.Row            { return s.rows[index] }

func (s *fakeSource) View(index int) list.ItemView {
	return list.ItemView{
		DisplayName:           s.rows[index]["display_name"],
		Number:                s.rows[index]["number"],
		PhotoPosition:         s.photo,
		AdjustSelectionBounds: true,
	}
}
