package exporter_test

import (
	"strings"
	"testing"

	"github.com/nikbrunner/dialer/internal/exporter"
	"github.com/nikbrunner/dialer/internal/model"
)

func TestExportHTML_Links(t *testing.T) {
	store := &model.Store{Contacts: []model.Contact{
		{
			ID:          "c1",
			Name:        "Ada & Co",
			Numbers:     []model.PhoneNumber{{Label: "work", Number: "+1 800 555 0123"}},
			ExtraNumber: "5551234",
		},
	}}

	out := exporter.ExportHTML(store)

	for _, want := range []string{
		`href="tel:+1%20800%20555%200123"`,
		`title="Ada &amp; Co"`,
		`data-label="work"`,
		`data-extra="5551234"`,
		`>Ada &amp; Co</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %s\n%s", want, out)
		}
	}
}

func TestExportHTML_EmptyStore(t *testing.T) {
	out := exporter.ExportHTML(model.NewStore())

	if strings.Contains(out, "<li>") {
		t.Errorf("expected no list items, got\n%s", out)
	}
	if !strings.Contains(out, "<ul>") || !strings.Contains(out, "</ul>") {
		t.Error("expected list wrapper")
	}
}

func TestExportHTML_OmitsEmptyAttributes(t *testing.T) {
	store := &model.Store{Contacts: []model.Contact{
		{ID: "c1", Name: "Grace", Numbers: []model.PhoneNumber{{Number: "555"}}},
	}}

	out := exporter.ExportHTML(store)

	if strings.Contains(out, "data-label") || strings.Contains(out, "data-extra") {
		t.Errorf("expected no empty data attributes, got\n%s", out)
	}
}
