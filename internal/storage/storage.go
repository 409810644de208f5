package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/nikbrunner/dialer/internal/model"
)

// Storage defines the interface for persisting contacts.
type Storage interface {
	Load() (*model.Store, error)
	Save(store *model.Store) error
	Close() error
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the store from the JSON file.
// Returns an empty store if the file doesn't exist.
func (s *JSONStorage) Load() (*model.Store, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewStore(), nil
		}
		return nil, err
	}

	var store model.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, err
	}

	// Ensure slices are not nil
	if store.Contacts == nil {
		store.Contacts = []model.Contact{}
	}
	for i := range store.Contacts {
		if store.Contacts[i].Numbers == nil {
			store.Contacts[i].Numbers = []model.PhoneNumber{}
		}
	}

	return &store, nil
}

// Save writes the store to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(store *model.Store) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Close implements Storage. There is nothing to release.
func (s *JSONStorage) Close() error {
	return nil
}

// configDir returns ~/.config/dialer.
func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "dialer"), nil
}

// DefaultJSONPath returns the default JSON path: ~/.config/dialer/contacts.json
func DefaultJSONPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "contacts.json"), nil
}

// OpenStorage opens the appropriate storage backend.
// Uses the JSON file if one exists and no database does, otherwise SQLite.
func OpenStorage() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}
	jsonPath, err := DefaultJSONPath()
	if err != nil {
		return nil, err
	}
	return openAt(sqlitePath, jsonPath)
}

func openAt(sqlitePath, jsonPath string) (Storage, error) {
	if _, err := os.Stat(sqlitePath); errors.Is(err, os.ErrNotExist) {
		if _, err := os.Stat(jsonPath); err == nil {
			return NewJSONStorage(jsonPath), nil
		}
	}
	return NewSQLiteStorage(sqlitePath)
}
