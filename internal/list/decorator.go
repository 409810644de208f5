package list

import (
	"errors"
	"fmt"

	"github.com/nikbrunner/dialer/internal/logging"
	"github.com/nikbrunner/dialer/internal/shortcut"
)

// ColumnExtraNumber is the optional column holding an alternate callable number.
const ColumnExtraNumber = "callable_extra_number"

// LabelCallOption is the extra-call text when a call provider is selected.
const LabelCallOption = "%s call option"

// bindExtraCallAction decorates a normal row with the secondary call control
// when the row carries an extra number.
func (a *Adapter) bindExtraCallAction(v *ItemView, row Row, position int) {
	v.ExtraNumber = ""
	v.ExtraAction = nil
	if row == nil {
		return
	}

	extra, err := row.Field(ColumnExtraNumber)
	if err != nil {
		if errors.Is(err, ErrNoField) {
			logging.Debug("column does not exist", "column", ColumnExtraNumber, "position", position)
		} else {
			logging.Warn("read extra number", "position", position, "error", err)
		}
		return
	}
	if extra == "" {
		return
	}

	provider := ""
	if a.callMethod != nil {
		provider = a.callMethod.Name
	}

	if provider == "" {
		v.ExtraNumber = extra
	} else {
		v.ExtraNumber = fmt.Sprintf(LabelCallOption, provider)
	}
	v.ExtraAction = a.extraCallAction(position)
}

// extraCallAction returns the click handler of a secondary call control.
func (a *Adapter) extraCallAction(position int) func() {
	return func() {
		a.shortcuts.SetPending(shortcut.InvalidProvider)
		if a.listener != nil {
			a.listener(position, 0)
		}
	}
}
