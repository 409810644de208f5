package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/dialer/internal/logging"
	"github.com/nikbrunner/dialer/internal/model"
)

const currentSchemaVersion = 2

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SchemaVersion returns the version recorded in the database.
func (s *SQLiteStorage) SchemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	return version, err
}

func (s *SQLiteStorage) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}
	if version < 2 {
		if err := s.migrateV2(); err != nil {
			return err
		}
	}

	if version < currentSchemaVersion {
		logging.Info("migrated contacts database", "path", s.path, "from", version, "to", currentSchemaVersion)
	}
	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS contacts (
			id TEXT PRIMARY KEY NOT NULL,
			name TEXT NOT NULL,
			created_at TEXT NOT NULL,
			called_at TEXT
		);

		CREATE TABLE IF NOT EXISTS phone_numbers (
			contact_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			number TEXT NOT NULL,
			PRIMARY KEY (contact_id, position),
			FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_phone_numbers_number ON phone_numbers(number);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// migrateV2 adds the extra number reachable through a call provider.
func (s *SQLiteStorage) migrateV2() error {
	migration := `
		ALTER TABLE contacts ADD COLUMN extra_number TEXT NOT NULL DEFAULT '';
		UPDATE schema_version SET version = 2;
	`
	_, err := s.db.Exec(migration)
	return err
}

// Load reads the store from the SQLite database.
func (s *SQLiteStorage) Load() (*model.Store, error) {
	store := model.NewStore()

	rows, err := s.db.Query(`
		SELECT id, name, extra_number, created_at, called_at
		FROM contacts
		ORDER BY created_at, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := map[string]int{}
	for rows.Next() {
		var c model.Contact
		var createdAtStr string
		var calledAtStr sql.NullString

		if err := rows.Scan(&c.ID, &c.Name, &c.ExtraNumber, &createdAtStr, &calledAtStr); err != nil {
			return nil, err
		}

		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		if calledAtStr.Valid {
			if t, err := time.Parse(time.RFC3339, calledAtStr.String); err == nil {
				c.CalledAt = &t
			}
		}
		c.Numbers = []model.PhoneNumber{}

		index[c.ID] = len(store.Contacts)
		store.Contacts = append(store.Contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	numRows, err := s.db.Query(`
		SELECT contact_id, label, number
		FROM phone_numbers
		ORDER BY contact_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer numRows.Close()

	for numRows.Next() {
		var contactID string
		var n model.PhoneNumber
		if err := numRows.Scan(&contactID, &n.Label, &n.Number); err != nil {
			return nil, err
		}
		if i, ok := index[contactID]; ok {
			store.Contacts[i].Numbers = append(store.Contacts[i].Numbers, n)
		}
	}
	if err := numRows.Err(); err != nil {
		return nil, err
	}

	return store, nil
}

// Save writes the store to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(store *model.Store) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Numbers go with their contacts (ON DELETE CASCADE)
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return err
	}

	contactStmt, err := tx.Prepare(`
		INSERT INTO contacts (id, name, extra_number, created_at, called_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer contactStmt.Close()

	numberStmt, err := tx.Prepare(`
		INSERT INTO phone_numbers (contact_id, position, label, number)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer numberStmt.Close()

	for _, c := range store.Contacts {
		var calledAt *string
		if c.CalledAt != nil {
			v := c.CalledAt.Format(time.RFC3339)
			calledAt = &v
		}

		if _, err := contactStmt.Exec(
			c.ID, c.Name, c.ExtraNumber, c.CreatedAt.Format(time.RFC3339), calledAt,
		); err != nil {
			return err
		}

		for pos, n := range c.Numbers {
			if _, err := numberStmt.Exec(c.ID, pos, n.Label, n.Number); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// DefaultSQLitePath returns the default SQLite database path: ~/.config/dialer/contacts.db
func DefaultSQLitePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "contacts.db"), nil
}
