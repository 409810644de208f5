// Package phone normalizes and formats dial strings typed into the search box.
package phone

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/unicode/bidi"
)

const (
	lre = '\u202A' // left-to-right embedding
	pdf = '\u202C' // pop directional formatting
)

// keypad maps letters to the digit key they appear on.
var keypad = map[rune]rune{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// Normalize strips everything that is not dialable. Decimal digits in any
// script become ASCII digits, keypad letters become their digit, and a '+'
// is kept only in leading position.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsDigit(r):
			b.WriteRune('0' + digitValue(r))
		default:
			if d, ok := keypad[unicode.ToUpper(r)]; ok {
				b.WriteRune(d)
			}
		}
	}
	return b.String()
}

// digitValue finds the value of a Unicode decimal digit. Decimal digits are
// encoded in contiguous runs starting at zero.
func digitValue(r rune) rune {
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return (r - zero) % 10
}

// Format renders a normalized number for display in region (ISO 3166 code).
// Numbers starting with '*' or '#' and numbers that fail to parse are
// returned unchanged.
func Format(number, region string) string {
	if number == "" || strings.HasPrefix(number, "*") || strings.HasPrefix(number, "#") {
		return number
	}

	parsed, err := phonenumbers.Parse(number, strings.ToUpper(region))
	if err != nil {
		return number
	}

	if strings.HasPrefix(number, "+") {
		return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
	}
	return phonenumbers.Format(parsed, phonenumbers.NATIONAL)
}

// E164 returns number in E.164 form, or the input when it cannot be parsed.
func E164(number, region string) string {
	parsed, err := phonenumbers.Parse(number, strings.ToUpper(region))
	if err != nil {
		return number
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}

// WrapLTR makes text display left to right. In a left-to-right context text
// without strong right-to-left characters is returned as is.
func WrapLTR(text string, rtlContext bool) string {
	if text == "" {
		return text
	}
	if !rtlContext && !hasStrongRTL(text) {
		return text
	}
	return string(lre) + text + string(pdf)
}

func hasStrongRTL(s string) bool {
	for len(s) > 0 {
		p, size := bidi.LookupString(s)
		if size == 0 {
			return false
		}
		switch p.Class() {
		case bidi.R, bidi.AL:
			return true
		}
		s = s[size:]
	}
	return false
}

// IsDialable reports whether query looks like something the user wants to
// dial: it has at least one digit and nothing but dial characters, separators
// and spaces.
func IsDialable(query string) bool {
	hasDigit := false
	for _, r := range query {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune("+*#()-./ ", r):
		default:
			return false
		}
	}
	return hasDigit
}
