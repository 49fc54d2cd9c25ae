package entity

// Estados válidos para Collaborator.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Identity es la clave opaca asignada por el document store. No es un campo de negocio.
type Identity string

// Collaborator representa un colaborador en su forma canónica.
type Collaborator struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Status     string `json:"status"` // Active | Inactive
	Avatar     string `json:"avatar"` // URL opaca, nunca editada en el wizard
}

// IsActive informa si el colaborador está activo.
func (c Collaborator) IsActive() bool {
	return c.Status == StatusActive
}

// StatusFromActive traduce el toggle booleano del formulario al estado persistido.
func StatusFromActive(active bool) string {
	if active {
		return StatusActive
	}
	return StatusInactive
}
