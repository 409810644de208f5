package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// bidiControls are the zero-width embedding marks used to keep numbers
// left-to-right inside right-to-left text.
var bidiControls = strings.NewReplacer(
	"\u202A", "", // LRE
	"\u202B", "", // RLE
	"\u202C", "", // PDF
	"\u202D", "", // LRO
	"\u202E", "", // RLO
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string, excluding ANSI
// codes and bidi embedding marks.
func VisibleLength(s string) int {
	return utf8.RuneCountInString(bidiControls.Replace(StripANSI(s)))
}

// TruncateText truncates text to maxWidth with ellipsis.
// Bidi embedding marks do not count towards the width; when truncation
// cuts through an embedding the closing PDF is restored.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	if VisibleLength(text) <= maxWidth {
		return text, false
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	if maxWidth <= ellipsisLen {
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth]), true
	}

	keep := maxWidth - ellipsisLen
	var b strings.Builder
	open := 0
	visible := 0
	for _, r := range text {
		switch r {
		case '\u202A', '\u202B', '\u202D', '\u202E':
			open++
			b.WriteRune(r)
			continue
		case '\u202C':
			if open > 0 {
				open--
			}
			b.WriteRune(r)
			continue
		}
		if visible == keep {
			break
		}
		b.WriteRune(r)
		visible++
	}
	b.WriteString(cfg.Ellipsis)
	for ; open > 0; open-- {
		b.WriteRune('\u202C')
	}
	return b.String(), true
}
