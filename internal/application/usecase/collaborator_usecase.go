package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Colaboradores-api/internal/application/dto"
	"github.com/jhoicas/Colaboradores-api/internal/application/navigation"
	"github.com/jhoicas/Colaboradores-api/internal/application/ports"
	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/collaborator"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
)

// CollaboratorUseCase listado, resolución de filas y exportación de colaboradores.
type CollaboratorUseCase struct {
	repo   repository.CollaboratorRepository
	report ports.ReportGenerator
	now    func() time.Time
}

// NewCollaboratorUseCase construye el caso de uso. report puede ser nil si no se exporta.
func NewCollaboratorUseCase(repo repository.CollaboratorRepository, report ports.ReportGenerator) *CollaboratorUseCase {
	return &CollaboratorUseCase{repo: repo, report: report, now: time.Now}
}

// List devuelve todos los colaboradores ordenados. Sort vacío ordena por nombre;
// una clave desconocida es ErrInvalidInput.
func (uc *CollaboratorUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.CollaboratorListResponse, error) {
	state, err := parseSort(q)
	if err != nil {
		return nil, err
	}
	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sorted := state.Apply(records)
	items := make([]dto.CollaboratorResponse, 0, len(sorted))
	for _, c := range sorted {
		items = append(items, dto.ToCollaboratorResponse(c))
	}
	return &dto.CollaboratorListResponse{
		Items: items,
		Sort:  string(state.Key),
		Order: string(state.Direction),
		Total: len(items),
	}, nil
}

// Resolve traduce la fila seleccionada en el listado a la intención de abrir su editor.
func (uc *CollaboratorUseCase) Resolve(ctx context.Context, in dto.ResolveRequest) (*dto.NavigationResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, fmt.Errorf("email requerido: %w", domain.ErrInvalidInput)
	}
	id, err := uc.repo.FindIdentityByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.NavigationResponse{Next: navigation.ToEditor(id, in.Seed())}, nil
}

// Get obtiene un colaborador por identidad.
func (uc *CollaboratorUseCase) Get(ctx context.Context, id string) (*dto.CollaboratorResponse, error) {
	c, err := uc.repo.GetByIdentity(ctx, entity.Identity(id))
	if err != nil {
		return nil, err
	}
	out := dto.ToCollaboratorResponse(*c)
	return &out, nil
}

// Report genera el PDF del listado con el mismo orden que List.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrInvalidInput     si la clave de orden es desconocida.
//   - domain.ErrStoreUnavailable si el store falla.
func (uc *CollaboratorUseCase) Report(ctx context.Context, q dto.ListQuery) ([]byte, string, error) {
	if uc.report == nil {
		return nil, "", fmt.Errorf("reporte: generador no configurado")
	}
	state, err := parseSort(q)
	if err != nil {
		return nil, "", err
	}
	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	doc, err := uc.report.GenerateCollaboratorReport(ctx, ports.ReportMeta{
		Title:       "Colaboradores",
		SortedBy:    string(state.Key),
		Order:       string(state.Direction),
		GeneratedAt: now,
	}, state.Apply(records))
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	return doc, fmt.Sprintf("colaboradores_%s.pdf", now.Format("20060102_150405")), nil
}

func parseSort(q dto.ListQuery) (collaborator.SortState, error) {
	state := collaborator.NewSortState()
	if q.Sort != "" {
		key, ok := collaborator.ParseSortKey(q.Sort)
		if !ok {
			return state, fmt.Errorf("clave de orden %q: %w", q.Sort, domain.ErrInvalidInput)
		}
		state.Key = key
	}
	state.Direction = collaborator.ParseDirection(strings.ToLower(q.Order))
	return state, nil
}
