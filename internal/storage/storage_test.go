package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/dialer/internal/model"
	"github.com/nikbrunner/dialer/internal/storage"
)

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "contacts.json")

	store := &model.Store{
		Contacts: []model.Contact{
			{
				ID:          "c1",
				Name:        "Ada Lovelace",
				Numbers:     []model.PhoneNumber{{Label: "mobile", Number: "555-0123"}},
				ExtraNumber: "5550199",
			},
		},
	}

	s := storage.NewJSONStorage(path)
	if err := s.Save(store); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("contacts file was not created")
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if len(loaded.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(loaded.Contacts))
	}
	got := loaded.Contacts[0]
	if got.Name != "Ada Lovelace" || got.ExtraNumber != "5550199" {
		t.Errorf("unexpected contact %+v", got)
	}
	if len(got.Numbers) != 1 || got.Numbers[0].Label != "mobile" {
		t.Errorf("expected mobile number to survive, got %+v", got.Numbers)
	}
}

func TestJSONStorage_LoadNonexistent(t *testing.T) {
	s := storage.NewJSONStorage(filepath.Join(t.TempDir(), "nonexistent.json"))

	store, err := s.Load()
	if err != nil {
		t.Fatalf("expected no error for nonexistent file, got: %v", err)
	}
	if store.Contacts == nil {
		t.Error("expected empty contacts slice, not nil")
	}
}

func TestJSONStorage_NilSlicesNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	data := `{"contacts":[{"id":"c1","name":"Ada","numbers":null}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := storage.NewJSONStorage(path).Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if store.Contacts[0].Numbers == nil {
		t.Error("expected numbers to be empty slice, not nil")
	}
}

func TestJSONStorage_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := storage.NewJSONStorage(path).Load(); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
