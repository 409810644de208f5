package importer

import (
	"io"
	"net/url"
	"strings"

	"github.com/nikbrunner/dialer/internal/model"
	"golang.org/x/net/html"
)

// ParseHTMLContacts collects contacts from the tel: links of an HTML page,
// such as an exported address book or a staff directory.
//
// The contact name comes from the link's title attribute, falling back to
// its text and then to the number. Links sharing a name become one contact.
// data-label sets the number label and data-extra the extra call number.
func ParseHTMLContacts(r io.Reader) ([]model.Contact, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var contacts []model.Contact
	byName := map[string]int{}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.ToLower(n.Data) == "a" {
			number, ok := telNumber(getAttr(n, "href"))
			if !ok {
				return
			}

			name := getAttr(n, "title")
			if name == "" {
				name = getTextContent(n)
			}
			if name == "" {
				name = number
			}

			pn := model.PhoneNumber{Label: getAttr(n, "data-label"), Number: number}
			extra := getAttr(n, "data-extra")

			if i, seen := byName[name]; seen {
				contacts[i].Numbers = append(contacts[i].Numbers, pn)
				if contacts[i].ExtraNumber == "" {
					contacts[i].ExtraNumber = extra
				}
				return
			}

			byName[name] = len(contacts)
			contacts = append(contacts, model.NewContact(model.NewContactParams{
				Name:        name,
				Numbers:     []model.PhoneNumber{pn},
				ExtraNumber: extra,
			}))
			return // Don't recurse into A
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return contacts, nil
}

// telNumber extracts the number from a tel: URI.
func telNumber(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if len(href) < 4 || !strings.EqualFold(href[:4], "tel:") {
		return "", false
	}
	number := href[4:]
	// Drop parameters such as ;ext=12 or ;phone-context=...
	if i := strings.IndexByte(number, ';'); i >= 0 {
		number = number[:i]
	}
	if unescaped, err := url.PathUnescape(number); err == nil {
		number = unescaped
	}
	number = strings.TrimSpace(number)
	return number, number != ""
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(text.String()), " ")
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}
