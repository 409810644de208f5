package search

import (
	"github.com/nikbrunner/dialer/internal/list"
	"github.com/nikbrunner/dialer/internal/phone"
)

// Column names exposed by ContactSource rows.
const (
	ColumnDisplayName = "display_name"
	ColumnNumber      = "number"
	ColumnLabel       = "label"
	ColumnContactID   = "contact_id"
)

// ContactSource serves search results as the normal rows of a list.Adapter.
type ContactSource struct {
	results []SearchResult
	columns map[string]bool
	region  string
	photo   list.PhotoPosition
}

// ContactSourceParams holds parameters for creating a ContactSource.
type ContactSourceParams struct {
	Results []SearchResult
	Region  string
	Photo   list.PhotoPosition
	// ExtraNumbers adds the callable extra number column to the schema.
	ExtraNumbers bool
}

// NewContactSource creates a ContactSource over results.
func NewContactSource(params ContactSourceParams) *ContactSource {
	columns := map[string]bool{
		ColumnDisplayName: true,
		ColumnNumber:      true,
		ColumnLabel:       true,
		ColumnContactID:   true,
	}
	if params.ExtraNumbers {
		columns[list.ColumnExtraNumber] = true
	}
	return &ContactSource{
		results: params.Results,
		columns: columns,
		region:  params.Region,
		photo:   params.Photo,
	}
}

// Result returns the search result behind row index.
func (s *ContactSource) Result(index int) SearchResult {
	return s.results[index]
}

func (s *ContactSource) Count() int                        { return len(s.results) }
func (s *ContactSource) IsEmpty() bool                     { return len(s.results) == 0 }
func (s *ContactSource) ViewTypeCount() int                { return 1 }
func (s *ContactSource) ViewType(int) int                  { return 0 }
func (s *ContactSource) IsEnabled(int) bool                { return true }
func (s *ContactSource) PhotoPosition() list.PhotoPosition { return s.photo }

// View implements list.Source.
func (s *ContactSource) View(index int) list.ItemView {
	r := s.results[index]
	return list.ItemView{
		DisplayName:           r.Contact.Name,
		Label:                 r.Number.Label,
		Number:                phone.Format(phone.Normalize(r.Number.Number), s.region),
		PhotoPosition:         s.photo,
		AdjustSelectionBounds: true,
	}
}

// Row implements list.Source.
func (s *ContactSource) Row(index int) list.Row {
	return contactRow{result: s.results[index], columns: s.columns}
}

type contactRow struct {
	result  SearchResult
	columns map[string]bool
}

func (r contactRow) Field(name string) (string, error) {
	if !r.columns[name] {
		return "", list.ErrNoField
	}
	switch name {
	case ColumnDisplayName:
		return r.result.Contact.Name, nil
	case ColumnNumber:
		return r.result.Number.Number, nil
	case ColumnLabel:
		return r.result.Number.Label, nil
	case ColumnContactID:
		return r.result.Contact.ID, nil
	case list.ColumnExtraNumber:
		return r.result.Contact.ExtraNumber, nil
	}
	return "", list.ErrNoField
}
