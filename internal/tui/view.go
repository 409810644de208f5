package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/dialer/internal/list"
	"github.com/nikbrunner/dialer/internal/tui/layout"
)

// iconGlyphs maps shortcut icon tokens to terminal glyphs.
var iconGlyphs = map[string]string{
	list.IconPhone:      "✆",
	list.IconAddContact: "+",
	list.IconPerson:     "☺",
	list.IconMessage:    "✉",
	list.IconVideocam:   "▶",
}

func (a App) renderView() string {
	var b strings.Builder

	b.WriteString(a.input.View())
	b.WriteString("\n")

	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render(a.err.Error()))
	case a.status != "":
		b.WriteString(a.styles.Status.Render(a.status))
	}
	b.WriteString("\n")

	b.WriteString(a.renderRows())
	b.WriteString(a.renderHelp())

	return a.styles.App.Render(b.String())
}

func (a App) renderRows() string {
	if a.adapter.IsEmpty() {
		msg := "Type a name or number"
		if a.input.Value() != "" {
			msg = "No matches"
		}
		return a.styles.Empty.Render(msg) + "\n"
	}

	count := a.adapter.Count()
	end := a.offset + a.listHeight()
	if end > count {
		end = count
	}

	width := layout.CalculateRowWidth(a.width, a.layout.List)
	normal := a.adapter.Source().Count()

	var b strings.Builder
	for i := a.offset; i < end; i++ {
		if i == normal && i > 0 && i > a.offset {
			b.WriteString(a.styles.Separator.Render(strings.Repeat("─", min(width, 40))))
			b.WriteString("\n")
		}
		b.WriteString(a.renderRow(i, width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow draws row i. Shortcut rows are recognized by their view kind,
// which is numbered after the source's own kinds.
func (a App) renderRow(i, width int) string {
	v, err := a.adapter.View(i)
	if err != nil {
		return a.styles.Error.Render(err.Error())
	}
	kind, err := a.adapter.ViewKind(i)
	if err != nil {
		return a.styles.Error.Render(err.Error())
	}
	selected := i == a.cursor
	if kind >= a.adapter.Source().ViewTypeCount() {
		return a.renderShortcutRow(v, width, selected)
	}
	return a.renderContactRow(v, width, selected)
}

func (a App) renderShortcutRow(v list.ItemView, width int, selected bool) string {
	glyph, ok := iconGlyphs[v.Icon]
	if !ok {
		glyph = "·"
	}
	text, _ := layout.TruncateText(glyph+" "+v.DisplayName, width, a.layout.Text)
	if selected {
		return a.styles.ItemSelected.Render(text)
	}
	return a.styles.Item.Render(a.styles.Shortcut.Render(text))
}

func (a App) renderContactRow(v list.ItemView, width int, selected bool) string {
	nameWidth := width * a.layout.List.NameWidthPercent / 100
	av := avatar(v.DisplayName)

	name, _ := layout.TruncateText(v.DisplayName, nameWidth-layout.VisibleLength(av)-1, a.layout.Text)
	name = padRight(name, nameWidth-layout.VisibleLength(av)-1)

	detail := v.Number
	if v.Label != "" {
		detail = v.Label + " " + detail
	}
	var extra string
	if v.ExtraNumber != "" {
		extra = "  ⇥ " + v.ExtraNumber
	}
	rest, _ := layout.TruncateText(detail+extra, width-nameWidth, a.layout.Text)

	if selected {
		line := av + " " + name + rest
		if v.PhotoPosition == list.PhotoRight {
			line = name + rest + " " + av
		}
		return a.styles.ItemSelected.Render(line)
	}

	styledAvatar := a.styles.Avatar.Render(av)
	styledRest := a.styles.Number.Render(rest)
	if extra != "" && strings.HasSuffix(rest, extra) {
		styledRest = a.styles.Number.Render(strings.TrimSuffix(rest, extra)) + a.styles.Extra.Render(extra)
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, styledAvatar, " ", name, styledRest)
	if v.PhotoPosition == list.PhotoRight {
		line = lipgloss.JoinHorizontal(lipgloss.Top, name, styledRest, " ", styledAvatar)
	}
	return a.styles.Item.Render(line)
}

// avatar stands in for the contact photo with the name's initial.
func avatar(name string) string {
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return "(" + string(unicode.ToUpper(r)) + ")"
		}
	}
	return "(#)"
}

func padRight(s string, width int) string {
	if n := layout.VisibleLength(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func (a App) renderHelp() string {
	var parts []string
	for _, b := range a.keys.helpBindings() {
		h := b.Help()
		parts = append(parts, a.styles.HintKey.Render(h.Key)+" "+a.styles.HintDesc.Render(h.Desc))
	}
	return a.styles.Help.Render(strings.Join(parts, "  "))
}
