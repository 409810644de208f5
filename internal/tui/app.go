package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/dialer/internal/list"
	"github.com/nikbrunner/dialer/internal/logging"
	"github.com/nikbrunner/dialer/internal/model"
	"github.com/nikbrunner/dialer/internal/phone"
	"github.com/nikbrunner/dialer/internal/search"
	"github.com/nikbrunner/dialer/internal/shortcut"
	"github.com/nikbrunner/dialer/internal/tui/layout"
)

// Settings are the user preferences the TUI honors.
type Settings struct {
	Region        string
	CallProvider  string // empty disables provider calls
	VideoCalling  bool
	ExtraNumbers  bool
	PhotoPosition list.PhotoPosition
	RTL           bool
}

// extraClick records the last extra-call notification from the adapter.
type extraClick struct {
	fired    bool
	position int
	kind     shortcut.Kind
}

// App is the main bubbletea model for the dialer.
type App struct {
	store    *model.Store
	settings Settings
	keys     KeyMap
	styles   Styles
	layout   layout.LayoutConfig

	input   textinput.Model
	adapter *list.Adapter
	source  *search.ContactSource
	clicks  *extraClick

	cursor int
	offset int

	// attach holds the number waiting for a contact after
	// "Add to a contact" was chosen; empty otherwise.
	attach string

	action *Action
	status string
	err    error

	copyText func(string) error

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store     *model.Store
	Settings  Settings
	Query     string              // optional initial query
	Keys      *KeyMap             // optional, uses default if nil
	Styles    *Styles             // optional, uses default if nil
	Clipboard func(string) error // optional, uses the system clipboard if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	copyText := params.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	store := params.Store
	if store == nil {
		store = model.NewStore()
	}

	cfg := layout.DefaultConfig()

	input := textinput.New()
	input.Prompt = "> "
	input.PromptStyle = styles.Prompt
	input.Placeholder = "Name or number"
	input.CharLimit = cfg.Input.QueryCharLimit
	input.Width = cfg.Input.QueryWidth
	input.Focus()

	adapter := list.NewAdapter(list.AdapterParams{
		Region: params.Settings.Region,
		RTL:    params.Settings.RTL,
	})
	if params.Settings.CallProvider != "" {
		adapter.SetCurrentCallMethod(&list.CallMethod{Name: params.Settings.CallProvider})
	}

	clicks := &extraClick{}
	adapter.SetSearchMethodListener(func(position int, id int64) {
		clicks.fired = true
		clicks.position = position
		clicks.kind = adapter.TakePending()
	})

	app := App{
		store:    store,
		settings: params.Settings,
		keys:     keys,
		styles:   styles,
		layout:   cfg,
		input:    input,
		adapter:  adapter,
		clicks:   clicks,
		copyText: copyText,
		width:    80,
		height:   24,
	}

	app.input.SetValue(params.Query)
	app.setQuery(params.Query)
	return app
}

// setQuery refreshes the result rows and the shortcut rows for query.
func (a *App) setQuery(query string) {
	results := search.FuzzySearchContacts(a.store, query)
	a.source = search.NewContactSource(search.ContactSourceParams{
		Results:      results,
		Region:       a.settings.Region,
		Photo:        a.settings.PhotoPosition,
		ExtraNumbers: a.settings.ExtraNumbers,
	})
	a.adapter.SetSource(a.source)
	a.adapter.SetQueryString(query)

	want := shortcutPolicy(query, a.settings, a.attach != "")
	for _, kind := range shortcut.All() {
		if _, err := a.adapter.SetShortcutEnabled(kind, want[kind]); err != nil {
			logging.Error("toggle shortcut", "kind", kind, "error", err)
		}
	}

	a.cursor = 0
	a.offset = 0
}

// shortcutPolicy decides which shortcut rows a query offers.
func shortcutPolicy(query string, s Settings, attaching bool) [shortcut.Count]bool {
	var want [shortcut.Count]bool
	if attaching || !phone.IsDialable(query) {
		return want
	}
	want[shortcut.DirectCall] = true
	want[shortcut.CreateNewContact] = true
	want[shortcut.AddToExistingContact] = true
	want[shortcut.SendSmsMessage] = true
	want[shortcut.MakeVideoCall] = s.VideoCalling
	want[shortcut.MakeInCallProviderCall] = s.CallProvider != ""
	return want
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Query returns the text in the query input.
func (a App) Query() string {
	return a.input.Value()
}

// Attaching returns the number waiting for a contact, if any.
func (a App) Attaching() string {
	return a.attach
}

// Action returns the action chosen by the user, nil if none.
func (a App) Action() *Action {
	return a.action
}

// Status returns the last status message.
func (a App) Status() string {
	return a.status
}

// Err returns the last error shown in the status line.
func (a App) Err() error {
	return a.err
}

// RowCount returns the number of rows in the list.
func (a App) RowCount() int {
	return a.adapter.Count()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.scroll()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Cancel):
			if a.attach != "" {
				a.attach = ""
				a.status = ""
				a.input.SetValue("")
				a.setQuery("")
				return a, nil
			}
			return a, tea.Quit

		case key.Matches(msg, a.keys.Down):
			a.moveCursor(1)
			return a, nil

		case key.Matches(msg, a.keys.Up):
			a.moveCursor(-1)
			return a, nil

		case key.Matches(msg, a.keys.PageDown):
			a.moveCursor(a.listHeight())
			return a, nil

		case key.Matches(msg, a.keys.PageUp):
			a.moveCursor(-a.listHeight())
			return a, nil

		case key.Matches(msg, a.keys.Select):
			return a.selectRow()

		case key.Matches(msg, a.keys.ExtraCall):
			return a.extraCall()

		case key.Matches(msg, a.keys.Yank):
			a.yank()
			return a, nil
		}
	}

	var cmd tea.Cmd
	before := a.input.Value()
	a.input, cmd = a.input.Update(msg)
	if after := a.input.Value(); after != before {
		a.status = ""
		a.err = nil
		a.setQuery(after)
	}
	return a, cmd
}

func (a *App) moveCursor(delta int) {
	count := a.adapter.Count()
	if count == 0 {
		a.cursor = 0
		return
	}
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor > count-1 {
		a.cursor = count - 1
	}
	a.scroll()
}

func (a *App) scroll() {
	a.offset = layout.ScrollOffset(a.offset, a.cursor, a.listHeight(), a.adapter.Count())
}

func (a App) listHeight() int {
	return layout.CalculateListHeight(a.height, a.layout.List)
}

func (a *App) fail(err error) {
	a.err = err
	a.status = ""
	logging.Warn("row action failed", "position", a.cursor, "error", err)
}

// selectRow handles Enter on the current row.
func (a App) selectRow() (tea.Model, tea.Cmd) {
	if a.adapter.Count() == 0 {
		return a, nil
	}

	selectable, err := a.adapter.IsSelectable(a.cursor)
	if err != nil {
		a.fail(err)
		return a, nil
	}
	if !selectable {
		return a, nil
	}

	ref, err := a.adapter.Resolve(a.cursor)
	if err != nil {
		a.fail(err)
		return a, nil
	}

	if !ref.IsShortcut() {
		r := a.source.Result(ref.Index)
		if a.attach != "" {
			a.action = &Action{Kind: ActionAddToContact, Number: a.attach, ContactID: r.Contact.ID}
		} else {
			a.action = &Action{Kind: ActionCall, Number: phone.Normalize(r.Number.Number), ContactID: r.Contact.ID}
		}
		return a, tea.Quit
	}

	number := phone.Normalize(a.adapter.QueryString())
	if ref.Kind == shortcut.AddToExistingContact {
		a.attach = number
		a.status = fmt.Sprintf("Pick a contact for %s", a.adapter.FormattedQueryString())
		a.input.SetValue("")
		a.setQuery("")
		return a, nil
	}

	kind, ok := shortcutActions[ref.Kind]
	if !ok {
		a.fail(fmt.Errorf("no action for shortcut %s", ref.Kind))
		return a, nil
	}
	a.action = &Action{Kind: kind, Number: number}
	if kind == ActionProviderCall {
		a.action.Provider = a.settings.CallProvider
	}
	if c := a.store.GetContactByNumber(number); c != nil {
		a.action.ContactID = c.ID
	}
	return a, tea.Quit
}

// extraCall activates the secondary call control of the current row.
func (a App) extraCall() (tea.Model, tea.Cmd) {
	if a.adapter.Count() == 0 {
		return a, nil
	}

	v, err := a.adapter.View(a.cursor)
	if err != nil {
		a.fail(err)
		return a, nil
	}
	if v.ExtraAction == nil {
		return a, nil
	}

	*a.clicks = extraClick{}
	v.ExtraAction()
	click := *a.clicks
	if !click.fired || click.kind != shortcut.InvalidProvider {
		return a, nil
	}

	ref, err := a.adapter.Resolve(click.position)
	if err != nil {
		a.fail(err)
		return a, nil
	}

	action := &Action{Kind: ActionProviderCall, Provider: a.settings.CallProvider}
	if ref.IsShortcut() {
		action.Number = phone.Normalize(a.adapter.QueryString())
	} else {
		c := a.source.Result(ref.Index).Contact
		action.Number = phone.Normalize(c.ExtraNumber)
		action.ContactID = c.ID
	}
	if action.Provider == "" {
		action.Kind = ActionCall
	}
	a.action = action
	return a, tea.Quit
}

// yank copies the number of the current row to the clipboard.
func (a *App) yank() {
	if a.adapter.Count() == 0 {
		return
	}

	ref, err := a.adapter.Resolve(a.cursor)
	if err != nil {
		a.fail(err)
		return
	}

	var number string
	if ref.IsShortcut() {
		number = a.adapter.FormattedQueryString()
	} else {
		number = a.source.View(ref.Index).Number
	}

	if err := a.copyText(number); err != nil {
		a.fail(fmt.Errorf("copy to clipboard: %w", err))
		return
	}
	a.err = nil
	a.status = fmt.Sprintf("Copied %s", number)
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
