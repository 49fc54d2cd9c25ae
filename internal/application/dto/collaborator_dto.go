package dto

import "github.com/jhoicas/Colaboradores-api/internal/domain/entity"

// CollaboratorResponse colaborador en forma canónica.
type CollaboratorResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Status     string `json:"status"`
	Avatar     string `json:"avatar"`
}

// CollaboratorListResponse listado ordenado.
type CollaboratorListResponse struct {
	Items []CollaboratorResponse `json:"items"`
	Sort  string                 `json:"sort"`
	Order string                 `json:"order"`
	Total int                    `json:"total"`
}

// ListQuery parámetros de ordenamiento del listado.
type ListQuery struct {
	Sort  string `query:"sort"`
	Order string `query:"order"`
}

// ResolveRequest fila seleccionada del listado. Solo email es obligatorio; el resto
// se usa para precargar el editor sin otra lectura.
type ResolveRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
}

// Seed devuelve la fila como registro, o nil si solo llegó el email.
func (r ResolveRequest) Seed() *entity.Collaborator {
	if r.Name == "" && r.Department == "" && r.Status == "" {
		return nil
	}
	return &entity.Collaborator{
		Name:       r.Name,
		Email:      r.Email,
		Department: r.Department,
		Status:     r.Status,
	}
}

// ToCollaboratorResponse convierte la entidad.
func ToCollaboratorResponse(c entity.Collaborator) CollaboratorResponse {
	return CollaboratorResponse{
		Name:       c.Name,
		Email:      c.Email,
		Department: c.Department,
		Status:     c.Status,
		Avatar:     c.Avatar,
	}
}
