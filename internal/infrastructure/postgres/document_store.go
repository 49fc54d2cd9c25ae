package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// schemaSQL crea la tabla genérica de documentos. seq conserva el orden de inserción.
const schemaSQL = `
	CREATE TABLE IF NOT EXISTS documents (
		seq        BIGSERIAL,
		id         UUID PRIMARY KEY,
		collection TEXT NOT NULL,
		data       JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS documents_collection_email_idx
		ON documents (collection, (data->>'email'));`

// DocumentStore implementación de DocumentStore sobre PostgreSQL (JSONB).
type DocumentStore struct {
	q Querier
}

// NewDocumentStore construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentStore(q Querier) *DocumentStore {
	return &DocumentStore{q: q}
}

// EnsureSchema crea la tabla de documentos si no existe.
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema documents: %w", err)
	}
	return nil
}

// Insert persiste un documento nuevo con identidad generada.
func (s *DocumentStore) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.New().String()
	_, err := s.q.Exec(ctx,
		`INSERT INTO documents (id, collection, data) VALUES ($1, $2, $3)`,
		id, collection, data,
	)
	if err != nil {
		return "", storeError("insert document", err)
	}
	return id, nil
}

// Get obtiene un documento por identidad.
func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	var d repository.Document
	err := s.q.QueryRow(ctx,
		`SELECT id::text, data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&d.ID, &d.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
		}
		return nil, storeError("get document", err)
	}
	return &d, nil
}

// FindByField filtra por igualdad de un campo de primer nivel del JSON.
func (s *DocumentStore) FindByField(ctx context.Context, collection, field, value string) ([]repository.Document, error) {
	return s.query(ctx, "find documents",
		`SELECT id::text, data FROM documents
		 WHERE collection = $1 AND data->>$2 = $3 ORDER BY seq`,
		collection, field, value,
	)
}

// List devuelve todos los documentos de la colección en orden de inserción.
func (s *DocumentStore) List(ctx context.Context, collection string) ([]repository.Document, error) {
	return s.query(ctx, "list documents",
		`SELECT id::text, data FROM documents WHERE collection = $1 ORDER BY seq`,
		collection,
	)
}

// Replace sobrescribe el documento completo.
func (s *DocumentStore) Replace(ctx context.Context, collection, id string, data map[string]any) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	tag, err := s.q.Exec(ctx,
		`UPDATE documents SET data = $3, updated_at = now() WHERE collection = $1 AND id = $2`,
		collection, id, data,
	)
	if err != nil {
		return storeError("replace document", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete elimina un documento por identidad.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	tag, err := s.q.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
		}
		return storeError("delete document", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (s *DocumentStore) query(ctx context.Context, op, sql string, args ...any) ([]repository.Document, error) {
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()
	var list []repository.Document
	for rows.Next() {
		var d repository.Document
		if err := rows.Scan(&d.ID, &d.Data); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(op, err)
	}
	return list, nil
}
