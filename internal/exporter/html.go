package exporter

import (
	"fmt"
	"html"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/dialer/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/contacts-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("contacts-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML writes the store as a page of tel: links that
// importer.ParseHTMLContacts reads back.
func ExportHTML(store *model.Store) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Contacts</title>\n")
	b.WriteString("<h1>Contacts</h1>\n")
	b.WriteString("<ul>\n")

	for _, c := range store.Contacts {
		for _, n := range c.Numbers {
			fmt.Fprintf(&b, "    <li><a href=\"tel:%s\" title=\"%s\"",
				html.EscapeString(url.PathEscape(n.Number)),
				html.EscapeString(c.Name),
			)
			if n.Label != "" {
				fmt.Fprintf(&b, " data-label=\"%s\"", html.EscapeString(n.Label))
			}
			if c.ExtraNumber != "" {
				fmt.Fprintf(&b, " data-extra=\"%s\"", html.EscapeString(c.ExtraNumber))
			}
			fmt.Fprintf(&b, ">%s</a></li>\n", html.EscapeString(c.Name))
		}
	}

	b.WriteString("</ul>\n")
	return b.String()
}
