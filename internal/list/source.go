// Package list merges contact search results with shortcut rows into one
// addressable list.
package list

import "errors"

// ErrNoField is returned by Row.Field for a column the row's schema lacks.
var ErrNoField = errors.New("no such field")

// PhotoPosition places the contact photo within a row.
type PhotoPosition int

const (
	PhotoLeft PhotoPosition = iota
	PhotoRight
)

// ParsePhotoPosition maps a config value to a PhotoPosition, defaulting to left.
func ParsePhotoPosition(s string) PhotoPosition {
	if s == "right" {
		return PhotoRight
	}
	return PhotoLeft
}

// ItemView is everything needed to draw one row.
type ItemView struct {
	DisplayName   string
	Label         string // number label for normal rows ("mobile")
	Number        string // formatted number for normal rows
	Icon          string // icon token for shortcut rows
	PhotoPosition PhotoPosition
	// AdjustSelectionBounds is off for fixed-height shortcut rows.
	AdjustSelectionBounds bool

	// ExtraNumber is the text of the secondary call control, empty if none.
	ExtraNumber string
	// ExtraAction runs when the secondary call control is activated.
	ExtraAction func()
}

// Row gives access to one result's fields by column name.
type Row interface {
	Field(name string) (string, error)
}

// Source is the result set that owns the normal rows.
type Source interface {
	Count() int
	IsEmpty() bool
	ViewTypeCount() int
	ViewType(index int) int
	View(index int) ItemView
	IsEnabled(index int) bool
	PhotoPosition() PhotoPosition
	Row(index int) Row
}

// CallMethod is the call provider currently selected by the user.
type CallMethod struct {
	Name string
}

type emptySource struct{}

func (emptySource) Count() int                   { return 0 }
func (emptySource) IsEmpty() bool                { return true }
func (emptySource) ViewTypeCount() int           { return 1 }
func (emptySource) ViewType(int) int             { return 0 }
func (emptySource) View(int) ItemView            { return ItemView{} }
func (emptySource) IsEnabled(int) bool           { return false }
func (emptySource) PhotoPosition() PhotoPosition { return PhotoLeft }
func (emptySource) Row(int) Row                  { return nil }
