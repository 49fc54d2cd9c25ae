package docstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
)

// transactional lo implementan los stores capaces de agrupar escrituras (postgres).
type transactional interface {
	InTx(ctx context.Context, fn func(store repository.DocumentStore) error) error
}

// Import inserta docs tal cual en collection y devuelve cuántos quedaron guardados.
// En stores transaccionales la carga es todo o nada; en el resto se detiene en el
// primer fallo conservando lo ya insertado.
func Import(ctx context.Context, store repository.DocumentStore, collection string, docs []map[string]any) (int, error) {
	insertAll := func(s repository.DocumentStore) (int, error) {
		for i, d := range docs {
			if _, err := s.Insert(ctx, collection, d); err != nil {
				return i, fmt.Errorf("documento %d: %w", i, err)
			}
		}
		return len(docs), nil
	}

	t, ok := store.(transactional)
	if !ok {
		return insertAll(store)
	}
	var n int
	err := t.InTx(ctx, func(s repository.DocumentStore) error {
		var err error
		n, err = insertAll(s)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
