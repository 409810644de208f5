package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nikbrunner/dialer/internal/model"
	"github.com/nikbrunner/dialer/internal/storage"
	"github.com/nikbrunner/dialer/internal/tui"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func dispatchStore() *model.Store {
	return &model.Store{
		Contacts: []model.Contact{
			{
				ID:          "c1",
				Name:        "Alice Moss",
				Numbers:     []model.PhoneNumber{{Label: "mobile", Number: "+18005550100"}},
				ExtraNumber: "8005550199",
			},
		},
	}
}

func runDispatch(t *testing.T, store *model.Store, action tui.Action) (bool, string, error) {
	t.Helper()
	var out bytes.Buffer
	changed, err := dispatch(store, action, dispatchParams{
		Region: "US",
		Now:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Out:    &out,
	})
	return changed, out.String(), err
}

func TestDispatch_CallKnownNumberMarksCalled(t *testing.T) {
	store := dispatchStore()

	changed, out, err := runDispatch(t, store, tui.Action{Kind: tui.ActionCall, Number: "+18005550100", ContactID: "c1"})

	assert.NilError(t, err)
	assert.Check(t, changed)
	assert.Check(t, is.Contains(out, "Calling +1 800-555-0100"))
	assert.Assert(t, store.Contacts[0].CalledAt != nil)
	assert.Check(t, is.Equal(store.Contacts[0].CalledAt.Year(), 2026))
}

func TestDispatch_CallUnknownNumber(t *testing.T) {
	store := dispatchStore()

	changed, out, err := runDispatch(t, store, tui.Action{Kind: tui.ActionCall, Number: "8005550123"})

	assert.NilError(t, err)
	assert.Check(t, !changed)
	assert.Check(t, is.Equal(out, "Calling (800) 555-0123\n"))
}

func TestDispatch_ProviderAndVideoCalls(t *testing.T) {
	_, out, err := runDispatch(t, dispatchStore(), tui.Action{Kind: tui.ActionProviderCall, Number: "8005550123", Provider: "Acme"})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(out, "Calling (800) 555-0123 via Acme\n"))

	_, out, err = runDispatch(t, dispatchStore(), tui.Action{Kind: tui.ActionVideoCall, Number: "8005550123"})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(out, "Video calling (800) 555-0123\n"))
}

func TestDispatch_SendSMS(t *testing.T) {
	changed, out, err := runDispatch(t, dispatchStore(), tui.Action{Kind: tui.ActionSendSMS, Number: "8005550123"})

	assert.NilError(t, err)
	assert.Check(t, !changed)
	assert.Check(t, is.Equal(out, "Messaging (800) 555-0123\n"))
}

func TestDispatch_CreateContact(t *testing.T) {
	store := dispatchStore()

	changed, out, err := runDispatch(t, store, tui.Action{Kind: tui.ActionCreateContact, Number: "8005550123"})

	assert.NilError(t, err)
	assert.Check(t, changed)
	assert.Check(t, is.Equal(out, "Created contact (800) 555-0123\n"))
	assert.Assert(t, is.Len(store.Contacts, 2))
	c := store.Contacts[1]
	assert.Check(t, is.Equal(c.Name, "(800) 555-0123"))
	assert.Check(t, is.DeepEqual(c.Numbers, []model.PhoneNumber{{Label: "mobile", Number: "8005550123"}}))
	assert.Check(t, c.ID != "")
}

func TestDispatch_CreateContact_ExistingNumber(t *testing.T) {
	store := dispatchStore()

	changed, out, err := runDispatch(t, store, tui.Action{Kind: tui.ActionCreateContact, Number: "+18005550100"})

	assert.NilError(t, err)
	assert.Check(t, !changed)
	assert.Check(t, is.Contains(out, "already belongs to Alice Moss"))
	assert.Check(t, is.Len(store.Contacts, 1))
}

func TestDispatch_AddToContact(t *testing.T) {
	store := dispatchStore()

	changed, out, err := runDispatch(t, store, tui.Action{Kind: tui.ActionAddToContact, Number: "8005550123", ContactID: "c1"})

	assert.NilError(t, err)
	assert.Check(t, changed)
	assert.Check(t, is.Equal(out, "Added (800) 555-0123 to Alice Moss\n"))
	assert.Check(t, is.Len(store.Contacts[0].Numbers, 2))

	changed, out, err = runDispatch(t, store, tui.Action{Kind: tui.ActionAddToContact, Number: "8005550123", ContactID: "c1"})

	assert.NilError(t, err)
	assert.Check(t, !changed)
	assert.Check(t, is.Contains(out, "already has"))
}

func TestDispatch_AddToUnknownContact(t *testing.T) {
	_, _, err := runDispatch(t, dispatchStore(), tui.Action{Kind: tui.ActionAddToContact, Number: "8005550123", ContactID: "gone"})

	assert.Check(t, errors.Is(err, ErrUnknownContact))
}

func TestActionURI(t *testing.T) {
	tests := []struct {
		action tui.Action
		want   string
	}{
		{tui.Action{Kind: tui.ActionCall, Number: "8005550123"}, "tel:+18005550123"},
		{tui.Action{Kind: tui.ActionProviderCall, Number: "+442079460958"}, "tel:+442079460958"},
		{tui.Action{Kind: tui.ActionSendSMS, Number: "8005550123"}, "sms:+18005550123"},
		{tui.Action{Kind: tui.ActionCreateContact, Number: "8005550123"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.action.Kind.String(), func(t *testing.T) {
			assert.Check(t, is.Equal(actionURI(tt.action, "US"), tt.want))
		})
	}
}

func TestPrintFormatted(t *testing.T) {
	var out bytes.Buffer

	printFormatted(&out, []string{"1 (800) 555-0123", "+44 20 7946 0958"}, "US", false)
	printFormatted(&out, []string{"(800) 555-0123"}, "US", true)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Check(t, is.DeepEqual(lines, []string{"(800) 555-0123", "+44 20 7946 0958", "+18005550123"}))
}

func TestPrintSearch(t *testing.T) {
	c := storage.DefaultConfig()
	cfg = &c
	t.Cleanup(func() { cfg = nil })

	var out bytes.Buffer
	n := printSearch(&out, dispatchStore(), "alice")

	assert.Check(t, is.Equal(n, 1))
	assert.Check(t, is.Contains(out.String(), "Alice Moss"))
	assert.Check(t, is.Contains(out.String(), "8005550199"))
	assert.Check(t, is.Contains(out.String(), "c1"))

	out.Reset()
	assert.Check(t, is.Equal(printSearch(&out, dispatchStore(), "nobody"), 0))
	assert.Check(t, is.Equal(out.String(), ""))
}
