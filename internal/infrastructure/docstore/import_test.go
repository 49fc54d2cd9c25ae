package docstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/memory"
)

// txStore simula un store transaccional: las escrituras van a un buffer y solo se
// vuelcan si fn no falla.
type txStore struct {
	*memory.DocumentStore
	commits int
}

func (s *txStore) InTx(ctx context.Context, fn func(repository.DocumentStore) error) error {
	buf := memory.NewDocumentStore()
	if err := fn(buf); err != nil {
		return err
	}
	docs, err := buf.List(ctx, "colaboradores")
	if err != nil {
		return err
	}
	for _, d := range docs {
		if _, err := s.DocumentStore.Insert(ctx, "colaboradores", d.Data); err != nil {
			return err
		}
	}
	s.commits++
	return nil
}

// failAfter falla a partir de la inserción n.
type failAfter struct {
	repository.DocumentStore
	n, calls int
}

func (f *failAfter) Insert(ctx context.Context, col string, data map[string]any) (string, error) {
	f.calls++
	if f.calls > f.n {
		return "", errors.New("disco lleno")
	}
	return f.DocumentStore.Insert(ctx, col, data)
}

func docs(n int) []map[string]any {
	out := make([]map[string]any, n)
	for i := range out {
		out[i] = map[string]any{"name": "c", "email": "c@x.com"}
	}
	return out
}

func TestImport_StoreSimple(t *testing.T) {
	store := memory.NewDocumentStore()
	n, err := docstore.Import(context.Background(), store, "colaboradores", docs(3))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := store.List(context.Background(), "colaboradores")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestImport_FalloParcialSinTransaccion(t *testing.T) {
	store := &failAfter{DocumentStore: memory.NewDocumentStore(), n: 2}
	n, err := docstore.Import(context.Background(), store, "colaboradores", docs(4))
	require.Error(t, err)
	assert.Equal(t, 2, n, "lo insertado antes del fallo se conserva")
}

func TestImport_Transaccional(t *testing.T) {
	store := &txStore{DocumentStore: memory.NewDocumentStore()}
	n, err := docstore.Import(context.Background(), store, "colaboradores", docs(2))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, store.commits)

	all, err := store.List(context.Background(), "colaboradores")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
