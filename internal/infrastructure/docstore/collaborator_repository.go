// Package docstore implementa CollaboratorRepository sobre cualquier DocumentStore.
// Es el único punto que conoce la identidad de almacenamiento de un colaborador.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/collaborator"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Colaboradores-api/pkg/logger"
)

var _ repository.CollaboratorRepository = (*CollaboratorRepo)(nil)

// Options ajustes del repositorio.
type Options struct {
	Collection string
	Timeout    time.Duration // tope por round trip; 0 = sin tope adicional
	// StrictEmailLookup hace que un email presente en varios documentos devuelva
	// ErrAmbiguousMatch en vez de elegir el primero.
	StrictEmailLookup bool
}

// CollaboratorRepo CRUD de colaboradores sobre un DocumentStore.
type CollaboratorRepo struct {
	store repository.DocumentStore
	opts  Options
	log   *logger.Logger
}

// NewCollaboratorRepository construye el repositorio.
func NewCollaboratorRepository(store repository.DocumentStore, opts Options, log *logger.Logger) *CollaboratorRepo {
	if opts.Collection == "" {
		opts.Collection = "colaboradores"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CollaboratorRepo{store: store, opts: opts, log: log.Component("collaborator_repository")}
}

func (r *CollaboratorRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.opts.Timeout)
}

// ListAll devuelve todos los colaboradores normalizados, en el orden nativo del store.
func (r *CollaboratorRepo) ListAll(ctx context.Context) (out []entity.Collaborator, err error) {
	defer observe("list", time.Now(), &err)
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	docs, err := r.store.List(ctx, r.opts.Collection)
	if err != nil {
		return nil, fmt.Errorf("listar colaboradores: %w", unavailable(err))
	}
	out = make([]entity.Collaborator, 0, len(docs))
	for _, d := range docs {
		out = append(out, collaborator.Normalize(d.Data))
	}
	return out, nil
}

// FindIdentityByEmail resuelve la identidad del documento cuyo email coincide.
// Cero coincidencias: ErrNotFound. Varias: se registra una advertencia y se devuelve
// la primera que entrega el store, salvo en modo estricto (ErrAmbiguousMatch).
func (r *CollaboratorRepo) FindIdentityByEmail(ctx context.Context, email string) (id entity.Identity, err error) {
	defer observe("find_by_email", time.Now(), &err)
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.ErrInvalidInput
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	docs, err := r.store.FindByField(ctx, r.opts.Collection, collaborator.FieldEmail, email)
	if err != nil {
		return "", fmt.Errorf("buscar por email: %w", unavailable(err))
	}
	switch len(docs) {
	case 0:
		return "", fmt.Errorf("email %s: %w", email, domain.ErrNotFound)
	case 1:
		return entity.Identity(docs[0].ID), nil
	}

	metrics.AmbiguousLookup()
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	r.log.Warn().
		Str("email", email).
		Strs("ids", ids).
		Bool("strict", r.opts.StrictEmailLookup).
		Msg("email duplicado en el store")
	if r.opts.StrictEmailLookup {
		return "", fmt.Errorf("email %s (%d documentos): %w", email, len(docs), domain.ErrAmbiguousMatch)
	}
	return entity.Identity(docs[0].ID), nil
}

// GetByIdentity obtiene un colaborador normalizado por identidad.
func (r *CollaboratorRepo) GetByIdentity(ctx context.Context, id entity.Identity) (c *entity.Collaborator, err error) {
	defer observe("get", time.Now(), &err)
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	doc, err := r.store.Get(ctx, r.opts.Collection, string(id))
	if err != nil {
		return nil, fmt.Errorf("obtener colaborador: %w", unavailable(err))
	}
	out := collaborator.Normalize(doc.Data)
	return &out, nil
}

// Create inserta un documento nuevo; la identidad la asigna el store.
func (r *CollaboratorRepo) Create(ctx context.Context, c entity.Collaborator) (id entity.Identity, err error) {
	defer observe("create", time.Now(), &err)
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	raw, err := r.store.Insert(ctx, r.opts.Collection, collaborator.ToDocument(c))
	if err != nil {
		return "", fmt.Errorf("crear colaborador: %w", unavailable(err))
	}
	return entity.Identity(raw), nil
}

// Update sobrescribe el documento en id con los campos canónicos.
func (r *CollaboratorRepo) Update(ctx context.Context, id entity.Identity, c entity.Collaborator) (err error) {
	defer observe("update", time.Now(), &err)
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err = r.store.Replace(ctx, r.opts.Collection, string(id), collaborator.ToDocument(c)); err != nil {
		return fmt.Errorf("actualizar colaborador: %w", unavailable(err))
	}
	return nil
}

// Delete elimina el documento en id.
func (r *CollaboratorRepo) Delete(ctx context.Context, id entity.Identity) (err error) {
	defer observe("delete", time.Now(), &err)
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err = r.store.Delete(ctx, r.opts.Collection, string(id)); err != nil {
		return fmt.Errorf("eliminar colaborador: %w", unavailable(err))
	}
	return nil
}

// unavailable marca como ErrStoreUnavailable todo error que no sea ya de dominio.
func unavailable(err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}

func observe(op string, start time.Time, err *error) {
	metrics.ObserveStore(op, start, *err)
}
