package shortcut

import "fmt"

// Kind identifies a shortcut row offered after the normal search results.
// The declaration order is the display order.
type Kind int

const (
	DirectCall Kind = iota
	CreateNewContact
	AddToExistingContact
	SendSmsMessage
	MakeVideoCall
	MakeInCallProviderCall
)

// Sentinels outside the enumeration.
const (
	// Invalid means no shortcut.
	Invalid Kind = -1
	// InvalidProvider is a one-shot signal that a provider or extra-call
	// control was clicked. It has no renderable row.
	InvalidProvider Kind = -2
)

// Count is the number of shortcut kinds.
const Count = 6

var kindNames = [Count]string{
	"direct-call",
	"create-new-contact",
	"add-to-existing-contact",
	"send-sms-message",
	"make-video-call",
	"make-in-call-provider-call",
}

// Valid reports whether k is one of the six shortcut kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < Count
}

func (k Kind) String() string {
	switch {
	case k.Valid():
		return kindNames[k]
	case k == Invalid:
		return "invalid"
	case k == InvalidProvider:
		return "invalid-provider"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// All returns every shortcut kind in declaration order.
func All() []Kind {
	kinds := make([]Kind, Count)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind looks up a kind by its String name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return Invalid, fmt.Errorf("%w: %q", ErrKindOutOfRange, name)
}
