package search

import (
	"errors"
	"testing"

	"github.com/nikbrunner/dialer/internal/list"
	"github.com/nikbrunner/dialer/internal/model"
)

func testStore() *model.Store {
	store := model.NewStore()
	store.AddContact(model.Contact{
		ID:   "c1",
		Name: "Ada Lovelace",
		Numbers: []model.PhoneNumber{
			{Label: "mobile", Number: "(800) 555-0123"},
			{Label: "work", Number: "+44 20 7946 0958"},
		},
	})
	store.AddContact(model.Contact{
		ID:          "c2",
		Name:        "Grace Hopper",
		Numbers:     []model.PhoneNumber{{Label: "home", Number: "555-1234"}},
		ExtraNumber: "5551234",
	})
	return store
}

func TestFuzzySearchContacts_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   "} {
		if results := FuzzySearchContacts(testStore(), q); len(results) != 0 {
			t.Errorf("expected 0 results for %q, got %d", q, len(results))
		}
	}
}

func TestFuzzySearchContacts_NameMatchExpandsNumbers(t *testing.T) {
	results := FuzzySearchContacts(testStore(), "ada")

	if len(results) != 2 {
		t.Fatalf("expected 2 results (one per number), got %d", len(results))
	}
	if results[0].Contact.ID != "c1" || results[1].Contact.ID != "c1" {
		t.Errorf("expected both results for c1, got %s and %s", results[0].Contact.ID, results[1].Contact.ID)
	}
	if results[0].Number.Label != "mobile" || results[1].Number.Label != "work" {
		t.Errorf("expected numbers in contact order, got %q then %q", results[0].Number.Label, results[1].Number.Label)
	}
	if len(results[0].MatchedIndexes) != 3 {
		t.Errorf("expected 3 matched indexes, got %v", results[0].MatchedIndexes)
	}
}

func TestFuzzySearchContacts_FuzzyName(t *testing.T) {
	results := FuzzySearchContacts(testStore(), "grhop")

	if len(results) != 1 {
		t.Fatalf("expected 1 result for 'grhop', got %d", len(results))
	}
	if results[0].Contact.Name != "Grace Hopper" {
		t.Errorf("expected Grace Hopper, got %s", results[0].Contact.Name)
	}
}

func TestFuzzySearchContacts_NumberMatch(t *testing.T) {
	tests := []struct {
		query     string
		wantCount int
		wantFirst string
	}{
		{query: "0123", wantCount: 1, wantFirst: "mobile"},
		{query: "+44 20", wantCount: 1, wantFirst: "work"},
		{query: "555", wantCount: 2, wantFirst: "home"},
		{query: "999", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results := FuzzySearchContacts(testStore(), tt.query)
			if len(results) != tt.wantCount {
				t.Fatalf("expected %d results, got %d", tt.wantCount, len(results))
			}
			if tt.wantCount > 0 && results[0].Number.Label != tt.wantFirst {
				t.Errorf("expected %q first, got %q", tt.wantFirst, results[0].Number.Label)
			}
		})
	}
}

func TestFuzzySearchContacts_NoMatch(t *testing.T) {
	if results := FuzzySearchContacts(testStore(), "xyz"); len(results) != 0 {
		t.Errorf("expected 0 results for 'xyz', got %d", len(results))
	}
}

func TestContactSource_View(t *testing.T) {
	src := NewContactSource(ContactSourceParams{
		Results: FuzzySearchContacts(testStore(), "ada"),
		Region:  "US",
		Photo:   list.PhotoRight,
	})

	if src.Count() != 2 || src.IsEmpty() {
		t.Fatalf("expected 2 rows, got %d", src.Count())
	}

	v := src.View(0)
	if v.DisplayName != "Ada Lovelace" {
		t.Errorf("expected display name 'Ada Lovelace', got %q", v.DisplayName)
	}
	if v.Number != "(800) 555-0123" {
		t.Errorf("expected formatted number, got %q", v.Number)
	}
	if v.PhotoPosition != list.PhotoRight || src.PhotoPosition() != list.PhotoRight {
		t.Error("expected photo on the right")
	}
}

func TestContactSource_RowSchema(t *testing.T) {
	results := FuzzySearchContacts(testStore(), "grace")

	with := NewContactSource(ContactSourceParams{Results: results, ExtraNumbers: true})
	got, err := with.Row(0).Field(list.ColumnExtraNumber)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "5551234" {
		t.Errorf("expected extra number 5551234, got %q", got)
	}

	without := NewContactSource(ContactSourceParams{Results: results})
	if _, err := without.Row(0).Field(list.ColumnExtraNumber); !errors.Is(err, list.ErrNoField) {
		t.Errorf("expected ErrNoField, got %v", err)
	}

	id, err := without.Row(0).Field(ColumnContactID)
	if err != nil || id != "c2" {
		t.Errorf("expected contact id c2, got %q (%v)", id, err)
	}
	if _, err := without.Row(0).Field("photo_uri"); !errors.Is(err, list.ErrNoField) {
		t.Errorf("expected ErrNoField for unknown column, got %v", err)
	}
}

func TestContactSource_InAdapter(t *testing.T) {
	src := NewContactSource(ContactSourceParams{
		Results:      FuzzySearchContacts(testStore(), "grace"),
		Region:       "US",
		ExtraNumbers: true,
	})
	a := list.NewAdapter(list.AdapterParams{Source: src, Region: "US"})
	a.SetCurrentCallMethod(&list.CallMethod{Name: "Acme"})

	v, err := a.View(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ExtraNumber != "Acme call option" {
		t.Errorf("expected 'Acme call option', got %q", v.ExtraNumber)
	}
}
