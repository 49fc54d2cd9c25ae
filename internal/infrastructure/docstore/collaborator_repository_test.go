package docstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const col = "colaboradores"

func newRepo(store repository.DocumentStore, strict bool) *docstore.CollaboratorRepo {
	return docstore.NewCollaboratorRepository(store, docstore.Options{
		Collection:        col,
		Timeout:           time.Second,
		StrictEmailLookup: strict,
	}, nil)
}

// failingStore falla todas las operaciones con err.
type failingStore struct{ err error }

func (s failingStore) Insert(context.Context, string, map[string]any) (string, error) { return "", s.err }
func (s failingStore) Get(context.Context, string, string) (*repository.Document, error) {
	return nil, s.err
}
func (s failingStore) FindByField(context.Context, string, string, string) ([]repository.Document, error) {
	return nil, s.err
}
func (s failingStore) List(context.Context, string) ([]repository.Document, error) { return nil, s.err }
func (s failingStore) Replace(context.Context, string, string, map[string]any) error {
	return s.err
}
func (s failingStore) Delete(context.Context, string, string) error { return s.err }

// hangingStore bloquea hasta que el contexto expira, como un backend colgado.
type hangingStore struct{ failingStore }

func (hangingStore) List(ctx context.Context, _ string) ([]repository.Document, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

var ana = entity.Collaborator{
	Name: "Ana", Email: "ana@flugo.com", Department: "TI",
	Status: entity.StatusActive, Avatar: "https://cdn/ana.png",
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRepo_CreateFindUpdateList_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(memory.NewDocumentStore(), false)

	_, err := repo.Create(ctx, ana)
	require.NoError(t, err)

	id, err := repo.FindIdentityByEmail(ctx, ana.Email)
	require.NoError(t, err)

	updated := ana
	updated.Name = "Ana Souza"
	updated.Department = "Design"
	updated.Status = entity.StatusInactive
	require.NoError(t, repo.Update(ctx, id, updated))

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Contains(t, list, updated)
	assert.NotContains(t, list, ana, "los valores previos a la actualización no deben aparecer")
}

func TestRepo_ListAll_NormalizaDocumentosHeredados(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	_, _ = store.Insert(ctx, col, map[string]any{"nome": "Bia", "email": "bia@flugo.com", "departamento": "Produto", "situacao": "Ativo"})

	list, err := newRepo(store, false).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.Collaborator{
		Name: "Bia", Email: "bia@flugo.com", Department: "Produto", Status: entity.StatusActive,
	}, list[0])
}

func TestRepo_FindIdentityByEmail_NoEncontrado(t *testing.T) {
	_, err := newRepo(memory.NewDocumentStore(), false).FindIdentityByEmail(context.Background(), "nadie@flugo.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_FindIdentityByEmail_Vacio(t *testing.T) {
	_, err := newRepo(memory.NewDocumentStore(), false).FindIdentityByEmail(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRepo_FindIdentityByEmail_DuplicadoDevuelvePrimero(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(memory.NewDocumentStore(), false)
	first, err := repo.Create(ctx, ana)
	require.NoError(t, err)
	_, err = repo.Create(ctx, ana)
	require.NoError(t, err)

	id, err := repo.FindIdentityByEmail(ctx, ana.Email)
	require.NoError(t, err)
	assert.Equal(t, first, id)
}

func TestRepo_FindIdentityByEmail_DuplicadoModoEstricto(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(memory.NewDocumentStore(), true)
	_, _ = repo.Create(ctx, ana)
	_, _ = repo.Create(ctx, ana)

	_, err := repo.FindIdentityByEmail(ctx, ana.Email)
	assert.ErrorIs(t, err, domain.ErrAmbiguousMatch)
}

func TestRepo_UpdateDeleteIdentidadDesaparecida(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(memory.NewDocumentStore(), false)
	id, err := repo.Create(ctx, ana)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, id))

	assert.ErrorIs(t, repo.Update(ctx, id, ana), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), domain.ErrNotFound)
	_, err = repo.GetByIdentity(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_GetByIdentity(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(memory.NewDocumentStore(), false)
	id, err := repo.Create(ctx, ana)
	require.NoError(t, err)

	got, err := repo.GetByIdentity(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ana, *got)
}

func TestRepo_FallaDelStore_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(failingStore{err: errors.New("connection refused")}, false)

	_, err := repo.ListAll(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	_, err = repo.Create(ctx, ana)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	_, err = repo.FindIdentityByEmail(ctx, ana.Email)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Update(ctx, "x", ana), domain.ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Delete(ctx, "x"), domain.ErrStoreUnavailable)
}

func TestRepo_TimeoutCortaLlamadaColgada(t *testing.T) {
	repo := docstore.NewCollaboratorRepository(hangingStore{}, docstore.Options{
		Collection: col,
		Timeout:    20 * time.Millisecond,
	}, nil)

	start := time.Now()
	_, err := repo.ListAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
