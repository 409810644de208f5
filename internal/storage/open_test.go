package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenAt_PrefersExistingJSON(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "contacts.db")
	jsonPath := filepath.Join(dir, "contacts.json")
	if err := os.WriteFile(jsonPath, []byte(`{"contacts":[]}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := openAt(dbPath, jsonPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*JSONStorage); !ok {
		t.Errorf("expected JSON storage, got %T", s)
	}
}

func TestOpenAt_DefaultsToSQLite(t *testing.T) {
	dir := t.TempDir()

	s, err := openAt(filepath.Join(dir, "contacts.db"), filepath.Join(dir, "contacts.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*SQLiteStorage); !ok {
		t.Errorf("expected SQLite storage, got %T", s)
	}
}
