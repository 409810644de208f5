package shortcut

import (
	"errors"
	"fmt"
)

// ErrKindOutOfRange is returned when a kind outside the enumeration is used
// to index the registry.
var ErrKindOutOfRange = errors.New("shortcut kind out of range")

// Registry holds which shortcut kinds are offered and a single pending kind.
//
// The pending kind is a one-slot message from a click handler to the next
// lookup: SetPending writes it, TakePending reads it and resets it to Invalid.
// A Registry is not safe for concurrent use; it is driven from the UI loop.
type Registry struct {
	enabled [Count]bool
	pending Kind
}

// NewRegistry returns a registry with every kind disabled and nothing pending.
func NewRegistry() *Registry {
	return &Registry{pending: Invalid}
}

// SetEnabled sets the slot for kind and reports whether its state changed.
func (r *Registry) SetEnabled(kind Kind, enabled bool) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("%w: %d", ErrKindOutOfRange, int(kind))
	}
	changed := r.enabled[kind] != enabled
	r.enabled[kind] = enabled
	return changed, nil
}

// IsEnabled reports whether kind is currently offered.
func (r *Registry) IsEnabled(kind Kind) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("%w: %d", ErrKindOutOfRange, int(kind))
	}
	return r.enabled[kind], nil
}

// DisableAll clears every slot.
func (r *Registry) DisableAll() {
	for i := range r.enabled {
		r.enabled[i] = false
	}
}

// EnabledCount returns the number of enabled kinds, in [0, Count].
func (r *Registry) EnabledCount() int {
	count := 0
	for _, on := range r.enabled {
		if on {
			count++
		}
	}
	return count
}

// Enabled returns the enabled kinds in declaration order.
func (r *Registry) Enabled() []Kind {
	var kinds []Kind
	for i, on := range r.enabled {
		if on {
			kinds = append(kinds, Kind(i))
		}
	}
	return kinds
}

// Nth returns the n-th enabled kind (zero based) in declaration order.
func (r *Registry) Nth(n int) (Kind, bool) {
	if n < 0 {
		return Invalid, false
	}
	for i := 0; n >= 0 && i < Count; i++ {
		if r.enabled[i] {
			n--
			if n < 0 {
				return Kind(i), true
			}
		}
	}
	return Invalid, false
}

// SetPending records kind as the pending one-shot value.
func (r *Registry) SetPending(kind Kind) {
	r.pending = kind
}

// TakePending returns the pending value and resets it to Invalid.
func (r *Registry) TakePending() Kind {
	kind := r.pending
	r.pending = Invalid
	return kind
}
