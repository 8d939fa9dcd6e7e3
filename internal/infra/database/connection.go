package database

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite" // Driver SQLite embutido (sem CGO)
)

// Tabela chave/valor no espírito do localStorage: a coleção inteira vive
// serializada numa única linha.
const createStorageTable = `
	CREATE TABLE IF NOT EXISTS storage (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)
`

// NewDBConnection abre o arquivo SQLite, testa o Ping e garante o schema.
func NewDBConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite embutido: um writer de cada vez evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, createStorageTable); err != nil {
		return nil, err
	}

	return db, nil
}

func kvGet(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM storage WHERE key = ?`, key).Scan(&value)
	return value, err
}

func kvSet(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
