package tui

import "github.com/nikbrunner/dialer/internal/shortcut"

// ActionKind is what the user asked for when leaving the TUI.
type ActionKind int

const (
	ActionCall ActionKind = iota
	ActionCreateContact
	ActionAddToContact
	ActionSendSMS
	ActionVideoCall
	ActionProviderCall
)

var actionNames = map[ActionKind]string{
	ActionCall:          "call",
	ActionCreateContact: "create-contact",
	ActionAddToContact:  "add-to-contact",
	ActionSendSMS:       "sms",
	ActionVideoCall:     "video-call",
	ActionProviderCall:  "provider-call",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is the result of a TUI session, dispatched by the caller.
type Action struct {
	Kind      ActionKind
	Number    string // normalized number
	ContactID string // empty when the number belongs to no contact
	Provider  string // call provider for ActionProviderCall
}

// shortcutActions maps the directly dispatched shortcut rows to actions.
// AddToExistingContact is absent: it first asks for a contact.
var shortcutActions = map[shortcut.Kind]ActionKind{
	shortcut.DirectCall:             ActionCall,
	shortcut.CreateNewContact:       ActionCreateContact,
	shortcut.SendSmsMessage:         ActionSendSMS,
	shortcut.MakeVideoCall:          ActionVideoCall,
	shortcut.MakeInCallProviderCall: ActionProviderCall,
}
