package wizard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
)

// stubRepo guarda en memoria lo justo para completar altas y ediciones.
type stubRepo struct {
	next    int
	updated map[entity.Identity]entity.Collaborator
}

func (r *stubRepo) ListAll(context.Context) ([]entity.Collaborator, error) { return nil, nil }
func (r *stubRepo) FindIdentityByEmail(context.Context, string) (entity.Identity, error) {
	return "", domain.ErrNotFound
}
func (r *stubRepo) GetByIdentity(context.Context, entity.Identity) (*entity.Collaborator, error) {
	return nil, domain.ErrNotFound
}
func (r *stubRepo) Create(_ context.Context, c entity.Collaborator) (entity.Identity, error) {
	r.next++
	id := entity.Identity(fmt.Sprintf("doc-%d", r.next))
	r.save(id, c)
	return id, nil
}
func (r *stubRepo) Update(_ context.Context, id entity.Identity, c entity.Collaborator) error {
	r.save(id, c)
	return nil
}
func (r *stubRepo) Delete(context.Context, entity.Identity) error { return nil }

func (r *stubRepo) save(id entity.Identity, c entity.Collaborator) {
	if r.updated == nil {
		r.updated = map[entity.Identity]entity.Collaborator{}
	}
	r.updated[id] = c
}

var sessionSeed = entity.Collaborator{Name: "Ana", Email: "ana@flugo.com", Department: "TI", Status: entity.StatusActive}

func TestSessions_ReabrirDocumentoReemplazaSesionAbandonada(t *testing.T) {
	s := NewSessions(SessionsConfig{Departments: []string{"TI"}})

	first, _, err := s.StartEdit("doc-1", sessionSeed)
	require.NoError(t, err)

	second, _, err := s.StartEdit("doc-1", sessionSeed)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, ok := s.Get(first)
	assert.False(t, ok, "la sesión anterior se descarta")
	_, ok = s.Get(second)
	assert.True(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestSessions_ReabrirTrasGuardadoSinConfirmar(t *testing.T) {
	repo := &stubRepo{}
	s := NewSessions(SessionsConfig{Repo: repo, Departments: []string{"TI"}})
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	sid, ctrl, err := s.StartEdit("doc-1", sessionSeed)
	require.NoError(t, err)
	_, err = ctrl.Dispatch(context.Background(), Next{})
	require.NoError(t, err)
	st, err := ctrl.Dispatch(context.Background(), Next{})
	require.NoError(t, err)
	require.Equal(t, PhaseCompleted, st.Phase)

	now = now.Add(29 * time.Minute)
	again, _, err := s.StartEdit("doc-1", sessionSeed)
	require.NoError(t, err)
	assert.NotEqual(t, sid, again)
	_, ok := s.Get(sid)
	assert.False(t, ok)
}

func TestSessions_ReabrirConLlamadaEnCursoDevuelveBusy(t *testing.T) {
	s := NewSessions(SessionsConfig{})
	sid, ctrl, err := s.StartEdit("doc-1", sessionSeed)
	require.NoError(t, err)

	ctrl.mu.Lock()
	_, _, err = s.StartEdit("doc-1", sessionSeed)
	ctrl.mu.Unlock()
	assert.ErrorIs(t, err, domain.ErrBusy)

	_, ok := s.Get(sid)
	assert.True(t, ok, "la sesión ocupada no se descarta")
}

func TestSessions_AltaAsociaIdentidadAsignada(t *testing.T) {
	repo := &stubRepo{}
	s := NewSessions(SessionsConfig{Repo: repo, Departments: []string{"TI"}})
	ctx := context.Background()

	sid, ctrl := s.StartCreate()
	for _, ev := range []Event{
		FieldChanged{Field: "name", Value: "Ana"},
		FieldChanged{Field: "email", Value: "ana@flugo.com"},
		Next{},
		FieldChanged{Field: "department", Value: "TI"},
		Next{},
	} {
		_, err := ctrl.Dispatch(ctx, ev)
		require.NoError(t, err)
	}

	s.mu.Lock()
	got := s.items[sid].identity
	s.mu.Unlock()
	assert.Equal(t, entity.Identity("doc-1"), got)

	_, _, err := s.StartEdit("doc-1", sessionSeed)
	require.NoError(t, err)
	_, ok := s.Get(sid)
	assert.False(t, ok, "el editor del documento recién creado reemplaza la sesión de alta")
}

func TestSessions_DoneEliminaSesion(t *testing.T) {
	s := NewSessions(SessionsConfig{})
	sid, ctrl := s.StartCreate()
	require.Equal(t, 1, s.Len())

	_, err := ctrl.Dispatch(context.Background(), Cancel{})
	require.NoError(t, err)

	_, ok := s.Get(sid)
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestSessions_DescartaSesionesInactivas(t *testing.T) {
	s := NewSessions(SessionsConfig{IdleTTL: time.Minute})
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	old, _ := s.StartCreate()
	now = now.Add(2 * time.Minute)
	fresh, _ := s.StartCreate()

	_, ok := s.Get(old)
	assert.False(t, ok, "la sesión abandonada se descarta al abrir otra")
	_, ok = s.Get(fresh)
	assert.True(t, ok)
}

func TestSessions_EditSinIdentidad(t *testing.T) {
	_, _, err := NewSessions(SessionsConfig{}).StartEdit("", entity.Collaborator{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
