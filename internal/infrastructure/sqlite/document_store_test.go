package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/sqlite"
)

const col = "colaboradores"

func openStore(t *testing.T) *sqlite.DocumentStore {
	t.Helper()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDocumentStore_InsertGetReplaceDelete(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	id, err := s.Insert(ctx, col, map[string]any{"nome": "Ana", "email": "ana@flugo.com"})
	require.NoError(t, err)

	doc, err := s.Get(ctx, col, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", doc.Data["nome"])

	require.NoError(t, s.Replace(ctx, col, id, map[string]any{"name": "Ana", "email": "ana@flugo.com"}))
	doc, err = s.Get(ctx, col, id)
	require.NoError(t, err)
	assert.NotContains(t, doc.Data, "nome", "replace sobrescribe el documento completo")

	require.NoError(t, s.Delete(ctx, col, id))
	_, err = s.Get(ctx, col, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, col, id), domain.ErrNotFound)
	assert.ErrorIs(t, s.Replace(ctx, col, id, map[string]any{}), domain.ErrNotFound)
}

func TestDocumentStore_FindByFieldYColecciones(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	a, _ := s.Insert(ctx, col, map[string]any{"email": "x@flugo.com"})
	_, _ = s.Insert(ctx, "otra", map[string]any{"email": "x@flugo.com"})
	b, _ := s.Insert(ctx, col, map[string]any{"email": "x@flugo.com"})

	docs, err := s.FindByField(ctx, col, "email", "x@flugo.com")
	require.NoError(t, err)
	require.Len(t, docs, 2, "solo documentos de la colección pedida")
	assert.Equal(t, a, docs[0].ID)
	assert.Equal(t, b, docs[1].ID)

	none, err := s.FindByField(ctx, col, "email", "nadie@flugo.com")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := s.List(ctx, col)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOpen_MemoriaYRutaVacia(t *testing.T) {
	s, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Insert(context.Background(), col, map[string]any{"email": "m@flugo.com"})
	assert.NoError(t, err)

	_, err = sqlite.Open("  ")
	assert.Error(t, err)
}
