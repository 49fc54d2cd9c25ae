package dto

import (
	"github.com/jhoicas/Colaboradores-api/internal/application/navigation"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
)

// FieldsRequest cambios de campos del paso actual. Los campos nil no se tocan.
type FieldsRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Active     *bool   `json:"active,omitempty"`
	Department *string `json:"department,omitempty"`
}

// StartEditRequest datos opcionales para precargar el editor.
type StartEditRequest struct {
	Seed *entity.Collaborator `json:"seed,omitempty"`
}

// WizardDraft borrador visible del formulario.
type WizardDraft struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Active     bool   `json:"active"`
	Department string `json:"department"`
}

// WizardStateResponse vista de una sesión del wizard.
type WizardStateResponse struct {
	SessionID          string             `json:"session_id"`
	Mode               string             `json:"mode"`
	Step               int                `json:"step"`
	StepName           string             `json:"step_name"`
	TotalSteps         int                `json:"total_steps"`
	Phase              string             `json:"phase"`
	Progress           int                `json:"progress"`
	Title              string             `json:"title"`
	Draft              WizardDraft        `json:"draft"`
	Departments        []string           `json:"departments"`
	Identity           string             `json:"identity,omitempty"`
	Avatar             string             `json:"avatar,omitempty"`
	CanDelete          bool               `json:"can_delete"`
	Busy               bool               `json:"busy"`
	BasicErrors        map[string]string  `json:"basic_errors,omitempty"`
	ProfessionalErrors map[string]string  `json:"professional_errors,omitempty"`
	Error              string             `json:"error,omitempty"`
	Exit               *navigation.Intent `json:"exit,omitempty"`
}

// WizardErrorResponse error de una acción del wizard junto con el estado resultante.
type WizardErrorResponse struct {
	ErrorResponse
	State *WizardStateResponse `json:"state,omitempty"`
}
