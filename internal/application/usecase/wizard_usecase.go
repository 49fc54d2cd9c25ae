package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Colaboradores-api/internal/application/dto"
	"github.com/jhoicas/Colaboradores-api/internal/application/wizard"
	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/collaborator"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
)

// WizardUseCase expone las sesiones del wizard de alta/edición.
type WizardUseCase struct {
	sessions *wizard.Sessions
	repo     repository.CollaboratorRepository
}

// NewWizardUseCase construye el caso de uso.
func NewWizardUseCase(sessions *wizard.Sessions, repo repository.CollaboratorRepository) *WizardUseCase {
	return &WizardUseCase{sessions: sessions, repo: repo}
}

// StartCreate abre una sesión de alta.
func (uc *WizardUseCase) StartCreate() *dto.WizardStateResponse {
	sid, ctrl := uc.sessions.StartCreate()
	return toWizardResponse(sid, ctrl.State())
}

// StartEdit abre una sesión de edición. El registro se lee siempre por identidad; un
// seed solo precarga los campos editables y nunca reemplaza el avatar guardado.
func (uc *WizardUseCase) StartEdit(ctx context.Context, id string, seed *entity.Collaborator) (*dto.WizardStateResponse, error) {
	stored, err := uc.repo.GetByIdentity(ctx, entity.Identity(id))
	if err != nil {
		return nil, err
	}
	sid, ctrl, err := uc.sessions.StartEdit(entity.Identity(id), mergeSeed(*stored, seed))
	if err != nil {
		return nil, err
	}
	return toWizardResponse(sid, ctrl.State()), nil
}

// Get devuelve la vista de la sesión.
func (uc *WizardUseCase) Get(sid string) (*dto.WizardStateResponse, error) {
	ctrl, err := uc.lookup(sid)
	if err != nil {
		return nil, err
	}
	return toWizardResponse(sid, ctrl.State()), nil
}

// UpdateFields aplica los cambios de campos en orden fijo; se detiene en el primer rechazo.
func (uc *WizardUseCase) UpdateFields(ctx context.Context, sid string, in dto.FieldsRequest) (*dto.WizardStateResponse, error) {
	var events []wizard.Event
	if in.Name != nil {
		events = append(events, wizard.FieldChanged{Field: collaborator.FieldName, Value: *in.Name})
	}
	if in.Email != nil {
		events = append(events, wizard.FieldChanged{Field: collaborator.FieldEmail, Value: *in.Email})
	}
	if in.Active != nil {
		events = append(events, wizard.ActiveChanged{Active: *in.Active})
	}
	if in.Department != nil {
		events = append(events, wizard.FieldChanged{Field: collaborator.FieldDepartment, Value: *in.Department})
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("sin campos: %w", domain.ErrInvalidInput)
	}
	return uc.Dispatch(ctx, sid, events...)
}

// Dispatch envía los eventos a la sesión y devuelve la vista resultante. Ante error
// la vista refleja el estado conservado (errores de validación incluidos).
func (uc *WizardUseCase) Dispatch(ctx context.Context, sid string, events ...wizard.Event) (*dto.WizardStateResponse, error) {
	ctrl, err := uc.lookup(sid)
	if err != nil {
		return nil, err
	}
	var st wizard.State
	for _, ev := range events {
		st, err = ctrl.Dispatch(ctx, ev)
		if err != nil {
			if st.Mode == "" {
				// ocupado: el controller no llegó a leer el estado
				return nil, err
			}
			return toWizardResponse(sid, st), err
		}
	}
	return toWizardResponse(sid, st), nil
}

// Cancel abandona la sesión descartando el borrador.
func (uc *WizardUseCase) Cancel(ctx context.Context, sid string) (*dto.WizardStateResponse, error) {
	return uc.Dispatch(ctx, sid, wizard.Cancel{})
}

func (uc *WizardUseCase) lookup(sid string) (*wizard.Controller, error) {
	ctrl, ok := uc.sessions.Get(sid)
	if !ok {
		return nil, fmt.Errorf("sesión %s: %w", sid, domain.ErrNotFound)
	}
	return ctrl, nil
}

// mergeSeed normaliza el seed y lo aplica sobre el registro guardado. Campos vacíos
// del seed conservan el valor guardado.
func mergeSeed(stored entity.Collaborator, seed *entity.Collaborator) entity.Collaborator {
	if seed == nil {
		return stored
	}
	n := collaborator.Normalize(collaborator.ToDocument(*seed))
	out := stored
	if n.Name != "" {
		out.Name = n.Name
	}
	if n.Email != "" {
		out.Email = n.Email
	}
	if n.Department != "" {
		out.Department = n.Department
	}
	if strings.TrimSpace(seed.Status) != "" {
		out.Status = n.Status
	}
	return out
}

func toWizardResponse(sid string, st wizard.State) *dto.WizardStateResponse {
	return &dto.WizardStateResponse{
		SessionID:  sid,
		Mode:       string(st.Mode),
		Step:       int(st.Step),
		StepName:   st.Step.String(),
		TotalSteps: wizard.TotalSteps,
		Phase:      string(st.Phase),
		Progress:   st.Progress(),
		Title:      st.Title(),
		Draft: dto.WizardDraft{
			Name:       st.Draft.Basic.Name,
			Email:      st.Draft.Basic.Email,
			Active:     st.Draft.Basic.Active,
			Department: st.Draft.Professional.Department,
		},
		Departments:        st.Departments,
		Identity:           string(st.Identity),
		Avatar:             st.Avatar,
		CanDelete:          st.CanDelete(),
		Busy:               st.Busy(),
		BasicErrors:        st.BasicErrors,
		ProfessionalErrors: st.ProfessionalErrors,
		Error:              st.Err,
		Exit:               st.Exit,
	}
}
