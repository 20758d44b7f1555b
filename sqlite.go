package estimate

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteBlob persists each blob as one row of a key-value table.
type SQLiteBlob struct {
	db *sql.DB
}

// OpenSQLiteBlob opens (creating if needed) a SQLite database at path
// and prepares the schema.
func OpenSQLiteBlob(path string) (*SQLiteBlob, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteBlob(db)
}

// NewSQLiteBlob wraps an existing database handle, preparing the
// schema. The caller keeps ownership of the handle.
func NewSQLiteBlob(db *sql.DB) (*SQLiteBlob, error) {
	b := &SQLiteBlob{db: db}
	return b, b.initSchema()
}

func (b *SQLiteBlob) initSchema() error {
	_, err := b.db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		key TEXT PRIMARY KEY,
		value BLOB
	);`)
	return err
}

func (b *SQLiteBlob) Load(key string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (b *SQLiteBlob) Store(key string, data []byte) error {
	_, err := b.db.Exec(`INSERT INTO blobs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, data)
	return err
}

func (b *SQLiteBlob) Close() error {
	return b.db.Close()
}
