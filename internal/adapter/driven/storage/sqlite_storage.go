package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS local_storage (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteStorage implementa o LocalStorage num arquivo SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage abre (ou cria) o arquivo e garante o schema.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("error creating session directory '%s': %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening session store: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating session schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

var _ repository.LocalStorage = (*SQLiteStorage)(nil)

// GetItem devolve o valor da chave e se ela existe.
func (s *SQLiteStorage) GetItem(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error reading %s: %w", key, err)
	}
	return value, true, nil
}

// SetItem grava ou substitui o valor da chave.
func (s *SQLiteStorage) SetItem(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO local_storage (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", key, err)
	}
	return nil
}

// RemoveItem apaga a chave; chave inexistente não é erro.
func (s *SQLiteStorage) RemoveItem(key string) error {
	if _, err := s.db.Exec(`DELETE FROM local_storage WHERE key = ?`, key); err != nil {
		return fmt.Errorf("error removing %s: %w", key, err)
	}
	return nil
}

// Close fecha o arquivo.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
