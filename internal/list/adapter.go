package list

import (
	"github.com/nikbrunner/dialer/internal/phone"
	"github.com/nikbrunner/dialer/internal/shortcut"
)

// SearchMethodListener is notified when a shortcut or extra-call control is
// activated. Shortcut rows have no persistent ID and report 0.
type SearchMethodListener func(position int, id int64)

// Adapter presents the normal rows of a Source followed by the enabled
// shortcut rows. It is driven from a single UI goroutine.
type Adapter struct {
	source    Source
	shortcuts *shortcut.Registry

	region    string
	rtl       bool
	query     string
	formatted string

	listener   SearchMethodListener
	callMethod *CallMethod
}

// AdapterParams holds parameters for creating a new Adapter.
type AdapterParams struct {
	Source Source // optional, empty if nil
	Region string // ISO 3166 region used to format the query
	RTL    bool   // the UI is laid out right to left
}

// NewAdapter creates an Adapter with every shortcut disabled.
func NewAdapter(params AdapterParams) *Adapter {
	a := &Adapter{
		shortcuts: shortcut.NewRegistry(),
		region:    params.Region,
		rtl:       params.RTL,
	}
	a.SetSource(params.Source)
	return a
}

// SetSource swaps the result set that owns the normal rows.
func (a *Adapter) SetSource(src Source) {
	if src == nil {
		src = emptySource{}
	}
	a.source = src
}

// Source returns the current result set.
func (a *Adapter) Source() Source {
	return a.source
}

// Count is the total number of rows, normal and shortcut.
func (a *Adapter) Count() int {
	return TotalCount(a.shortcuts, a.source.Count())
}

// ShortcutCount is the number of enabled shortcuts.
func (a *Adapter) ShortcutCount() int {
	return a.shortcuts.EnabledCount()
}

// IsEmpty reports whether there is nothing to show.
func (a *Adapter) IsEmpty() bool {
	return a.shortcuts.EnabledCount() == 0 && a.source.IsEmpty()
}

// Resolve maps a list position to the row it shows. See Resolve.
func (a *Adapter) Resolve(position int) (RowRef, error) {
	return Resolve(a.shortcuts, position, a.source.Count())
}

// ViewKindCount is the number of row kinds, external plus one per shortcut kind.
func (a *Adapter) ViewKindCount() int {
	return ViewKindCount(a.source.ViewTypeCount())
}

// ViewKind returns the row kind at position.
func (a *Adapter) ViewKind(position int) (int, error) {
	ref, err := a.Resolve(position)
	if err != nil {
		return 0, err
	}
	if ref.IsShortcut() {
		if !ref.Kind.Valid() {
			return 0, ErrNotRenderable
		}
		return a.source.ViewTypeCount() + int(ref.Kind), nil
	}
	return a.source.ViewType(ref.Index), nil
}

// IsSelectable reports whether the row at position can be activated.
func (a *Adapter) IsSelectable(position int) (bool, error) {
	ref, err := a.Resolve(position)
	if err != nil {
		return false, err
	}
	if ref.IsShortcut() {
		// Sentinels surfaced from the pending slot have no row to activate.
		return ref.Kind.Valid(), nil
	}
	return a.source.IsEnabled(ref.Index), nil
}

// View builds the row at position. Normal rows come from the source and get
// the extra-call control added; shortcut rows are built here.
func (a *Adapter) View(position int) (ItemView, error) {
	ref, err := a.Resolve(position)
	if err != nil {
		return ItemView{}, err
	}
	if ref.IsShortcut() {
		return a.shortcutView(position, ref.Kind)
	}

	v := a.source.View(ref.Index)
	a.bindExtraCallAction(&v, a.source.Row(ref.Index), position)
	return v, nil
}

// SetShortcutEnabled toggles a shortcut and reports whether it changed.
func (a *Adapter) SetShortcutEnabled(kind shortcut.Kind, enabled bool) (bool, error) {
	return a.shortcuts.SetEnabled(kind, enabled)
}

// IsShortcutEnabled reports whether kind is offered.
func (a *Adapter) IsShortcutEnabled(kind shortcut.Kind) (bool, error) {
	return a.shortcuts.IsEnabled(kind)
}

// EnabledShortcuts lists the enabled kinds in display order.
func (a *Adapter) EnabledShortcuts() []shortcut.Kind {
	return a.shortcuts.Enabled()
}

// DisableAllShortcuts hides every shortcut row.
func (a *Adapter) DisableAllShortcuts() {
	a.shortcuts.DisableAll()
}

// TakePending consumes the one-shot value left by the last secondary-control
// click. Dispatch code calls it from the listener.
func (a *Adapter) TakePending() shortcut.Kind {
	return a.shortcuts.TakePending()
}

// SetSearchMethodListener registers the click listener, replacing any other.
func (a *Adapter) SetSearchMethodListener(l SearchMethodListener) {
	a.listener = l
}

// SetCurrentCallMethod sets the call provider shown on extra-call controls.
// Pass nil to clear it.
func (a *Adapter) SetCurrentCallMethod(cm *CallMethod) {
	a.callMethod = cm
}

// SetQueryString stores the raw query and its formatted form.
func (a *Adapter) SetQueryString(query string) {
	a.query = query
	a.formatted = phone.Format(phone.Normalize(query), a.region)
}

// QueryString returns the raw query.
func (a *Adapter) QueryString() string {
	return a.query
}

// FormattedQueryString returns the query as shown in shortcut labels.
func (a *Adapter) FormattedQueryString() string {
	return a.formatted
}

// SetRTL sets the layout direction used when wrapping numbers.
func (a *Adapter) SetRTL(rtl bool) {
	a.rtl = rtl
}
