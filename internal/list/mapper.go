package list

import (
	"errors"
	"fmt"

	"github.com/nikbrunner/dialer/internal/shortcut"
)

// ErrPositionOutOfRange is returned for a position that is neither a normal
// row nor an enabled shortcut.
var ErrPositionOutOfRange = errors.New("position out of range")

// RowRef is what a list position refers to: a normal row or a shortcut.
type RowRef struct {
	shortcut bool
	// Index is the normal row index; -1 for shortcuts.
	Index int
	// Kind is the shortcut kind; shortcut.Invalid for normal rows.
	Kind shortcut.Kind
}

// Normal returns a reference to the index-th normal row.
func Normal(index int) RowRef {
	return RowRef{Index: index, Kind: shortcut.Invalid}
}

// Shortcut returns a reference to a shortcut row.
func Shortcut(kind shortcut.Kind) RowRef {
	return RowRef{shortcut: true, Index: -1, Kind: kind}
}

// IsShortcut reports whether r refers to a shortcut row.
func (r RowRef) IsShortcut() bool {
	return r.shortcut
}

func (r RowRef) String() string {
	if r.shortcut {
		return "shortcut(" + r.Kind.String() + ")"
	}
	return fmt.Sprintf("normal(%d)", r.Index)
}

// Resolve maps position onto a normal row or an enabled shortcut.
//
// Positions below normalCount are normal rows. Positions from normalCount on
// address the enabled shortcuts in declaration order. Resolving such a
// position also consumes the registry's pending value: when one is set it is
// returned in place of the walked kind, whatever the position.
func Resolve(reg *shortcut.Registry, position, normalCount int) (RowRef, error) {
	if position < 0 {
		return RowRef{}, fmt.Errorf("%w: %d", ErrPositionOutOfRange, position)
	}

	offset := position - normalCount
	if offset < 0 {
		return Normal(position), nil
	}

	if pending := reg.TakePending(); pending != shortcut.Invalid {
		return Shortcut(pending), nil
	}

	kind, ok := reg.Nth(offset)
	if !ok {
		return RowRef{}, fmt.Errorf("%w: %d is past %d rows and %d shortcuts",
			ErrPositionOutOfRange, position, normalCount, reg.EnabledCount())
	}
	return Shortcut(kind), nil
}

// TotalCount is the number of visible rows.
func TotalCount(reg *shortcut.Registry, normalCount int) int {
	return normalCount + reg.EnabledCount()
}

// ViewKindCount is the number of distinct row kinds a renderer must support.
// Every shortcut kind claims a slot even while disabled so that toggling one
// never renumbers the others.
func ViewKindCount(externalKinds int) int {
	return externalKinds + shortcut.Count
}
