package list

import (
	"errors"
	"fmt"

	"github.com/nikbrunner/dialer/internal/phone"
	"github.com/nikbrunner/dialer/internal/shortcut"
)

// ErrNotRenderable is returned when asked to draw a sentinel shortcut kind.
var ErrNotRenderable = errors.New("shortcut kind has no row")

// Shortcut row labels.
const (
	LabelCallNumber       = "Call %s"
	LabelCreateNewContact = "Create new contact"
	LabelAddToContact     = "Add to a contact"
	LabelSendSMS          = "Send SMS message"
	LabelMakeVideoCall    = "Make video call"
)

// Icon tokens for shortcut rows.
const (
	IconPhone      = "phone"
	IconAddContact = "add-contact"
	IconPerson     = "person"
	IconMessage    = "message"
	IconVideocam   = "videocam"
)

// shortcutView builds the row for a shortcut at position.
func (a *Adapter) shortcutView(position int, kind shortcut.Kind) (ItemView, error) {
	var text, icon string

	switch kind {
	case shortcut.DirectCall:
		text = fmt.Sprintf(LabelCallNumber, phone.WrapLTR(a.formatted, a.rtl))
		icon = IconPhone
	case shortcut.CreateNewContact:
		text = LabelCreateNewContact
		icon = IconAddContact
	case shortcut.AddToExistingContact:
		text = LabelAddToContact
		icon = IconPerson
	case shortcut.SendSmsMessage:
		text = LabelSendSMS
		icon = IconMessage
	case shortcut.MakeVideoCall:
		text = LabelMakeVideoCall
		icon = IconVideocam
	case shortcut.MakeInCallProviderCall:
		text = fmt.Sprintf(LabelCallNumber, phone.WrapLTR(a.formatted, a.rtl))
		icon = IconVideocam
	default:
		return ItemView{}, fmt.Errorf("%w: %s at %d", ErrNotRenderable, kind, position)
	}

	return ItemView{
		DisplayName:           text,
		Icon:                  icon,
		PhotoPosition:         a.source.PhotoPosition(),
		AdjustSelectionBounds: false,
		ExtraAction:           a.extraCallAction(position),
	}, nil
}
