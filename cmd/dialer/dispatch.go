package main

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"time"

	"github.com/nikbrunner/dialer/internal/logging"
	"github.com/nikbrunner/dialer/internal/model"
	"github.com/nikbrunner/dialer/internal/phone"
	"github.com/nikbrunner/dialer/internal/tui"
)

// ErrUnknownContact is returned when an action names a contact that is gone.
var ErrUnknownContact = errors.New("unknown contact")

type dispatchParams struct {
	Region string
	Now    time.Time
	Out    io.Writer
}

// dispatch carries out a TUI action against store. It reports whether the
// store changed and needs saving.
func dispatch(store *model.Store, action tui.Action, p dispatchParams) (bool, error) {
	display := phone.Format(action.Number, p.Region)
	logging.Info("dispatch", "action", action.Kind, "number", action.Number, "contact", action.ContactID)

	switch action.Kind {
	case tui.ActionCall, tui.ActionVideoCall, tui.ActionProviderCall:
		verb := "Calling"
		if action.Kind == tui.ActionVideoCall {
			verb = "Video calling"
		}
		fmt.Fprintf(p.Out, "%s %s", verb, display)
		if action.Provider != "" {
			fmt.Fprintf(p.Out, " via %s", action.Provider)
		}
		fmt.Fprintln(p.Out)
		return store.MarkCalled(action.Number, p.Now), nil

	case tui.ActionSendSMS:
		fmt.Fprintf(p.Out, "Messaging %s\n", display)
		return false, nil

	case tui.ActionCreateContact:
		if c := store.GetContactByNumber(action.Number); c != nil {
			fmt.Fprintf(p.Out, "%s already belongs to %s\n", display, c.Name)
			return false, nil
		}
		c := model.NewContact(model.NewContactParams{
			Name:    display,
			Numbers: []model.PhoneNumber{{Label: "mobile", Number: action.Number}},
		})
		store.AddContact(c)
		fmt.Fprintf(p.Out, "Created contact %s\n", display)
		return true, nil

	case tui.ActionAddToContact:
		c := store.GetContactByID(action.ContactID)
		if c == nil {
			return false, fmt.Errorf("%w: %q", ErrUnknownContact, action.ContactID)
		}
		if !store.AddNumber(c.ID, model.PhoneNumber{Label: "mobile", Number: action.Number}) {
			fmt.Fprintf(p.Out, "%s already has %s\n", c.Name, display)
			return false, nil
		}
		fmt.Fprintf(p.Out, "Added %s to %s\n", display, c.Name)
		return true, nil
	}

	return false, fmt.Errorf("unsupported action %s", action.Kind)
}

// actionURI returns the system URI for an action, empty when there is none.
func actionURI(action tui.Action, region string) string {
	number := phone.E164(action.Number, region)
	switch action.Kind {
	case tui.ActionCall, tui.ActionVideoCall, tui.ActionProviderCall:
		return "tel:" + number
	case tui.ActionSendSMS:
		return "sms:" + number
	}
	return ""
}

// openURI hands uri to the system handler.
func openURI(uri string) error {
	if uri == "" {
		return nil
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", uri)
	}
	if cmd == nil {
		return nil
	}
	return cmd.Start()
}
