// Package wizard implementa el editor de colaboradores en dos pasos como una máquina de
// estados explícita: Transition es pura y Controller ejecuta los efectos contra el repositorio.
package wizard

import (
	"strings"

	"github.com/jhoicas/Colaboradores-api/internal/application/navigation"
	"github.com/jhoicas/Colaboradores-api/internal/domain/collaborator"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
)

// Step índice del paso actual.
type Step int

const (
	StepBasicInfo Step = iota
	StepProfessionalInfo
)

// TotalSteps cantidad de pasos del formulario.
const TotalSteps = 2

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "basic_info"
	case StepProfessionalInfo:
		return "professional_info"
	}
	return "unknown"
}

// Mode alta o edición.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Phase fase del wizard. Saving y Deleting son fases ocupadas: rechazan eventos del usuario.
type Phase string

const (
	PhaseEditing          Phase = "editing"
	PhaseSaving           Phase = "saving"
	PhaseConfirmingDelete Phase = "confirming_delete"
	PhaseDeleting         Phase = "deleting"
	PhaseCompleted        Phase = "completed"
	PhaseDeleted          Phase = "deleted"
)

// Draft copia editable de los campos, dividida por paso.
type Draft struct {
	Basic        collaborator.BasicInfo        `json:"basic"`
	Professional collaborator.ProfessionalInfo `json:"professional"`
}

// State estado completo de una instancia del wizard.
type State struct {
	Mode        Mode
	Step        Step
	Phase       Phase
	Draft       Draft
	Departments []string

	// Solo en edición. Identity es opaca; Avatar y OriginalName vienen del registro sembrado.
	Identity     entity.Identity
	Avatar       string
	OriginalName string

	BasicErrors        map[string]string
	ProfessionalErrors map[string]string
	Err                string // último fallo de persistencia o borrado

	// Exit se fija cuando el wizard terminó y el cliente debe navegar.
	Exit *navigation.Intent
}

// NewCreateState estado inicial para alta: borrador vacío con el toggle activo.
func NewCreateState(departments []string) State {
	return State{
		Mode:        ModeCreate,
		Step:        StepBasicInfo,
		Phase:       PhaseEditing,
		Draft:       Draft{Basic: collaborator.BasicInfo{Active: true}},
		Departments: departments,
	}
}

// NewEditState estado inicial para edición, sembrado desde un registro existente.
func NewEditState(id entity.Identity, seed entity.Collaborator, departments []string) State {
	return State{
		Mode:  ModeEdit,
		Step:  StepBasicInfo,
		Phase: PhaseEditing,
		Draft: Draft{
			Basic: collaborator.BasicInfo{
				Name:   seed.Name,
				Email:  seed.Email,
				Active: seed.IsActive(),
			},
			Professional: collaborator.ProfessionalInfo{Department: seed.Department},
		},
		Departments:  departments,
		Identity:     id,
		Avatar:       seed.Avatar,
		OriginalName: seed.Name,
	}
}

// Progress porcentaje lineal 0..100 según el paso actual.
func (s State) Progress() int {
	if TotalSteps <= 1 {
		return 100
	}
	return int(s.Step) * 100 / (TotalSteps - 1)
}

// Title encabezado de la página del editor.
func (s State) Title() string {
	if s.Mode == ModeCreate {
		return "Cadastrar Colaborador"
	}
	if s.OriginalName == "" {
		return "Editar Colaborador"
	}
	return "Editar Colaborador: " + s.OriginalName
}

// Busy informa si hay una llamada al store en curso.
func (s State) Busy() bool {
	return s.Phase == PhaseSaving || s.Phase == PhaseDeleting
}

// CanDelete informa si el borrado está disponible (solo edición con identidad resuelta).
func (s State) CanDelete() bool {
	return s.Mode == ModeEdit && s.Identity != ""
}

// Record sintetiza el registro canónico a partir del borrador.
func (s State) Record() entity.Collaborator {
	return entity.Collaborator{
		Name:       strings.TrimSpace(s.Draft.Basic.Name),
		Email:      strings.TrimSpace(s.Draft.Basic.Email),
		Department: strings.TrimSpace(s.Draft.Professional.Department),
		Status:     entity.StatusFromActive(s.Draft.Basic.Active),
		Avatar:     s.Avatar,
	}
}

func (s State) clone() State {
	out := s
	out.BasicErrors = cloneErrs(s.BasicErrors)
	out.ProfessionalErrors = cloneErrs(s.ProfessionalErrors)
	if s.Exit != nil {
		exit := *s.Exit
		out.Exit = &exit
	}
	return out
}

func cloneErrs(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
