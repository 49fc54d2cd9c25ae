// Package sqlite implementa el DocumentStore sobre SQLite (modernc, sin cgo) guardando
// cada documento como texto JSON.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS documents (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		collection TEXT NOT NULL,
		data       TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection);`

// DocumentStore persiste documentos en SQLite.
type DocumentStore struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y aplica el esquema. ":memory:" crea una base efímera.
func Open(path string) (*DocumentStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: ruta requerida")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Una sola conexión: ":memory:" es por conexión y SQLite serializa escrituras igual.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear esquema documents: %w", err)
	}
	return &DocumentStore{db: db}, nil
}

// Close cierra la base.
func (s *DocumentStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Insert persiste un documento nuevo con identidad generada.
func (s *DocumentStore) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("codificar documento: %w", err)
	}
	id := uuid.New().String()
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, collection, data) VALUES (?, ?, ?)`,
		id, collection, string(raw),
	); err != nil {
		return "", storeError("insert document", err)
	}
	return id, nil
}

// Get obtiene un documento por identidad.
func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND id = ?`, collection, id,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
		}
		return nil, storeError("get document", err)
	}
	d := repository.Document{ID: id}
	if err := json.Unmarshal([]byte(raw), &d.Data); err != nil {
		return nil, fmt.Errorf("decodificar documento %s: %w", id, err)
	}
	return &d, nil
}

// FindByField filtra por igualdad de un campo de primer nivel usando json_extract.
func (s *DocumentStore) FindByField(ctx context.Context, collection, field, value string) ([]repository.Document, error) {
	return s.query(ctx, "find documents",
		`SELECT id, data FROM documents
		 WHERE collection = ? AND json_extract(data, ?) = ? ORDER BY seq`,
		collection, "$."+field, value,
	)
}

// List devuelve todos los documentos de la colección en orden de inserción.
func (s *DocumentStore) List(ctx context.Context, collection string) ([]repository.Document, error) {
	return s.query(ctx, "list documents",
		`SELECT id, data FROM documents WHERE collection = ? ORDER BY seq`, collection)
}

// Replace sobrescribe el documento completo.
func (s *DocumentStore) Replace(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE documents SET data = ? WHERE collection = ? AND id = ?`, string(raw), collection, id)
	if err != nil {
		return storeError("replace document", err)
	}
	return requireAffected(res, id)
}

// Delete elimina un documento por identidad.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return storeError("delete document", err)
	}
	return requireAffected(res, id)
}

func (s *DocumentStore) query(ctx context.Context, op, q string, args ...any) ([]repository.Document, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()
	var list []repository.Document
	for rows.Next() {
		var (
			d   repository.Document
			raw string
		)
		if err := rows.Scan(&d.ID, &raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &d.Data); err != nil {
			return nil, fmt.Errorf("decodificar documento %s: %w", d.ID, err)
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(op, err)
	}
	return list, nil
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storeError("rows affected", err)
	}
	if n == 0 {
		return fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func storeError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}
