package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Colaboradores-api/internal/application/dto"
	"github.com/jhoicas/Colaboradores-api/internal/application/navigation"
	"github.com/jhoicas/Colaboradores-api/internal/application/usecase"
	"github.com/jhoicas/Colaboradores-api/internal/application/wizard"
	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
)

func newWizardUC(repo repository.CollaboratorRepository) *usecase.WizardUseCase {
	sessions := wizard.NewSessions(wizard.SessionsConfig{
		Repo:        repo,
		Timeout:     time.Second,
		Departments: []string{"Design", "TI", "Produto", "Marketing"},
	})
	return usecase.NewWizardUseCase(sessions, repo)
}

func str(s string) *string { return &s }

func TestWizardUseCase_AltaCompleta(t *testing.T) {
	ctx := context.Background()
	_, repo := seedStore(t)
	uc := newWizardUC(repo)

	view := uc.StartCreate()
	assert.Equal(t, "create", view.Mode)
	assert.Equal(t, "Cadastrar Colaborador", view.Title)
	assert.True(t, view.Draft.Active)
	assert.False(t, view.CanDelete)
	sid := view.SessionID

	view, err := uc.UpdateFields(ctx, sid, dto.FieldsRequest{Name: str("Ana"), Email: str("ana@flugo.com")})
	require.NoError(t, err)
	view, err = uc.Dispatch(ctx, sid, wizard.Next{})
	require.NoError(t, err)
	assert.Equal(t, 100, view.Progress)

	_, err = uc.UpdateFields(ctx, sid, dto.FieldsRequest{Department: str("Produto")})
	require.NoError(t, err)
	view, err = uc.Dispatch(ctx, sid, wizard.Next{})
	require.NoError(t, err)
	assert.Equal(t, "completed", view.Phase)

	view, err = uc.Dispatch(ctx, sid, wizard.Acknowledge{})
	require.NoError(t, err)
	require.NotNil(t, view.Exit)
	assert.Equal(t, navigation.KindListing, view.Exit.Kind)

	_, err = uc.Get(sid)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la sesión termina al confirmar")

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.Collaborator{Name: "Ana", Email: "ana@flugo.com", Department: "Produto", Status: entity.StatusActive}, all[0])
}

func TestWizardUseCase_ErrorDeValidacionDevuelveEstado(t *testing.T) {
	uc := newWizardUC(nil)
	sid := uc.StartCreate().SessionID

	_, err := uc.UpdateFields(context.Background(), sid, dto.FieldsRequest{Email: str("bad")})
	require.NoError(t, err)
	view, err := uc.Dispatch(context.Background(), sid, wizard.Next{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.NotNil(t, view)
	assert.Equal(t, map[string]string{"name": "required", "email": "invalid format"}, view.BasicErrors)
}

func TestWizardUseCase_EdicionLeePorIdentidadYBorra(t *testing.T) {
	ctx := context.Background()
	store, repo := seedStore(t)
	id, err := store.Insert(ctx, "colaboradores", map[string]any{
		"name": "Ana", "email": "ana@flugo.com", "department": "TI", "status": "Active", "avatar": "a.png",
	})
	require.NoError(t, err)
	uc := newWizardUC(repo)

	view, err := uc.StartEdit(ctx, id, nil)
	require.NoError(t, err)
	assert.Equal(t, "Editar Colaborador: Ana", view.Title)
	assert.True(t, view.CanDelete)
	assert.Equal(t, "a.png", view.Avatar)

	reopened, err := uc.StartEdit(ctx, id, nil)
	require.NoError(t, err, "reabrir el documento reemplaza la sesión anterior")
	_, err = uc.Get(view.SessionID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	view = reopened

	_, err = uc.Dispatch(ctx, view.SessionID, wizard.RequestDelete{})
	require.NoError(t, err)
	view, err = uc.Dispatch(ctx, view.SessionID, wizard.ConfirmDelete{})
	require.NoError(t, err)
	assert.Equal(t, "deleted", view.Phase)

	_, err = repo.GetByIdentity(ctx, entity.Identity(id))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWizardUseCase_SeedNoPisaAvatarYNormalizaEstado(t *testing.T) {
	ctx := context.Background()
	store, repo := seedStore(t)
	id, err := store.Insert(ctx, "colaboradores", map[string]any{
		"name": "Ana", "email": "ana@flugo.com", "department": "TI", "status": "Active", "avatar": "a.png",
	})
	require.NoError(t, err)
	uc := newWizardUC(repo)

	view, err := uc.StartEdit(ctx, id, &entity.Collaborator{
		Name: "Ana Souza", Email: "ana@flugo.com", Department: "TI", Status: "Ativo", Avatar: "otro.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "a.png", view.Avatar)
	assert.True(t, view.Draft.Active, "Ativo equivale a activo")
	assert.Equal(t, "Ana Souza", view.Draft.Name)

	_, err = uc.Dispatch(ctx, view.SessionID, wizard.Next{}, wizard.Next{})
	require.NoError(t, err)

	got, err := repo.GetByIdentity(ctx, entity.Identity(id))
	require.NoError(t, err)
	assert.Equal(t, entity.Collaborator{
		Name: "Ana Souza", Email: "ana@flugo.com", Department: "TI", Status: entity.StatusActive, Avatar: "a.png",
	}, *got)
}

func TestWizardUseCase_SeedSinAvatarNiEstadoConservaLoGuardado(t *testing.T) {
	ctx := context.Background()
	store, repo := seedStore(t)
	id, err := store.Insert(ctx, "colaboradores", map[string]any{
		"nome": "Ana", "email": "ana@flugo.com", "departamento": "TI", "situacao": "Ativo", "avatar": "a.png",
	})
	require.NoError(t, err)
	uc := newWizardUC(repo)

	view, err := uc.StartEdit(ctx, id, &entity.Collaborator{Name: "Ana", Email: "ana@flugo.com"})
	require.NoError(t, err)
	assert.Equal(t, "TI", view.Draft.Department)
	assert.True(t, view.Draft.Active)

	_, err = uc.Dispatch(ctx, view.SessionID, wizard.Next{}, wizard.Next{})
	require.NoError(t, err)

	got, err := repo.GetByIdentity(ctx, entity.Identity(id))
	require.NoError(t, err)
	assert.Equal(t, "a.png", got.Avatar)
	assert.Equal(t, entity.StatusActive, got.Status)
}

func TestWizardUseCase_EdicionDeDocumentoInexistente(t *testing.T) {
	_, repo := seedStore(t)
	_, err := newWizardUC(repo).StartEdit(context.Background(), "no-existe", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWizardUseCase_SesionDesconocida(t *testing.T) {
	_, err := newWizardUC(nil).Dispatch(context.Background(), "nope", wizard.Next{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWizardUseCase_SinCampos(t *testing.T) {
	uc := newWizardUC(nil)
	_, err := uc.UpdateFields(context.Background(), uc.StartCreate().SessionID, dto.FieldsRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
