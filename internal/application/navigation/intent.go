// Package navigation define las intenciones de navegación que el core devuelve al cliente.
// El mecanismo concreto de rutas queda fuera del backend.
package navigation

import "github.com/jhoicas/Colaboradores-api/internal/domain/entity"

// Kind tipo de destino.
type Kind string

const (
	KindListing Kind = "listing"
	KindEditor  Kind = "editor"
	KindCreate  Kind = "create"
)

// Intent destino abstracto. Seed opcional: datos ya conocidos para precargar el editor.
type Intent struct {
	Kind     Kind                 `json:"kind"`
	Identity entity.Identity      `json:"identity,omitempty"`
	Seed     *entity.Collaborator `json:"seed,omitempty"`
}

// ToListing vuelve al listado.
func ToListing() Intent { return Intent{Kind: KindListing} }

// ToCreate abre el flujo de alta.
func ToCreate() Intent { return Intent{Kind: KindCreate} }

// ToEditor abre el editor del documento id, opcionalmente precargado.
func ToEditor(id entity.Identity, seed *entity.Collaborator) Intent {
	return Intent{Kind: KindEditor, Identity: id, Seed: seed}
}
