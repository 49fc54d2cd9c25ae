package repository

import (
	"context"

	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
)

// CollaboratorRepository define el puerto de persistencia para Collaborator.
// Es el único punto que traduce entre la clave de negocio (email) y la identidad del store.
type CollaboratorRepository interface {
	ListAll(ctx context.Context) ([]entity.Collaborator, error)
	FindIdentityByEmail(ctx context.Context, email string) (entity.Identity, error)
	GetByIdentity(ctx context.Context, id entity.Identity) (*entity.Collaborator, error)
	Create(ctx context.Context, c entity.Collaborator) (entity.Identity, error)
	Update(ctx context.Context, id entity.Identity, c entity.Collaborator) error
	Delete(ctx context.Context, id entity.Identity) error
}
