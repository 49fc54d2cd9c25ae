package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Colaboradores-api/internal/application/navigation"
	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
	"github.com/jhoicas/Colaboradores-api/pkg/logger"
)

// Controller es dueño exclusivo del estado de una instancia del wizard y ejecuta
// los efectos de Transition contra el repositorio.
type Controller struct {
	mu      sync.Mutex
	state   State
	repo    repository.CollaboratorRepository
	timeout time.Duration
	log     *logger.Logger
	onDone  func(navigation.Intent)
	onSaved func(entity.Identity)
}

// ControllerConfig dependencias del controller.
type ControllerConfig struct {
	Repo    repository.CollaboratorRepository
	Timeout time.Duration // tope por llamada al store; 0 = sin tope
	Log     *logger.Logger
	// OnDone se invoca al terminar (alta/edición confirmada, borrado o cancelación).
	OnDone func(navigation.Intent)
	// OnPersisted recibe la identidad tras un guardado exitoso.
	OnPersisted func(entity.Identity)
}

// NewController construye el controller sobre un estado inicial.
func NewController(initial State, cfg ControllerConfig) *Controller {
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}
	return &Controller{
		state:   initial,
		repo:    cfg.Repo,
		timeout: cfg.Timeout,
		log:     cfg.Log.Component("wizard"),
		onDone:  cfg.OnDone,
		onSaved: cfg.OnPersisted,
	}
}

// State devuelve una copia del estado actual.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Dispatch aplica ev y ejecuta los efectos resultantes hasta quedar estable.
// Mientras una llamada al store está en curso, cualquier otro Dispatch devuelve ErrBusy.
// Ante un fallo de persistencia o borrado devuelve el error y el estado conserva el borrador.
func (c *Controller) Dispatch(ctx context.Context, ev Event) (State, error) {
	if !c.mu.TryLock() {
		return State{}, domain.ErrBusy
	}
	var done *navigation.Intent
	defer func() {
		if done != nil && c.onDone != nil {
			c.onDone(*done)
		}
	}()
	defer c.mu.Unlock()

	next, eff, err := Transition(c.state, ev)
	c.state = next
	if err != nil {
		return c.state.clone(), err
	}

	var effErr error
	for eff != nil {
		var result Event
		switch e := eff.(type) {
		case Persist:
			result, effErr = c.persist(ctx, e)
		case Delete:
			result, effErr = c.delete(ctx, e)
		case Done:
			intent := e.Intent
			done = &intent
		}
		if result == nil {
			break
		}
		next, eff, err = Transition(c.state, result)
		c.state = next
		if err != nil {
			return c.state.clone(), err
		}
	}
	return c.state.clone(), effErr
}

func (c *Controller) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Controller) persist(ctx context.Context, e Persist) (Event, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	if e.Identity == "" {
		id, err := c.repo.Create(ctx, e.Record)
		if err != nil {
			c.log.Error().Err(err).Str("email", e.Record.Email).Msg("alta de colaborador fallida")
			return PersistFailed{Err: err}, err
		}
		c.log.Info().Str("identity", string(id)).Msg("colaborador creado")
		c.saved(id)
		return PersistSucceeded{Identity: id}, nil
	}
	if err := c.repo.Update(ctx, e.Identity, e.Record); err != nil {
		c.log.Error().Err(err).Str("identity", string(e.Identity)).Msg("actualización de colaborador fallida")
		return PersistFailed{Err: err}, err
	}
	c.log.Info().Str("identity", string(e.Identity)).Msg("colaborador actualizado")
	c.saved(e.Identity)
	return PersistSucceeded{Identity: e.Identity}, nil
}

func (c *Controller) saved(id entity.Identity) {
	if c.onSaved != nil {
		c.onSaved(id)
	}
}

func (c *Controller) delete(ctx context.Context, e Delete) (Event, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	if err := c.repo.Delete(ctx, e.Identity); err != nil {
		c.log.Error().Err(err).Str("identity", string(e.Identity)).Msg("borrado de colaborador fallido")
		return DeleteFailed{Err: err}, err
	}
	c.log.Info().Str("identity", string(e.Identity)).Msg("colaborador eliminado")
	return DeleteSucceeded{}, nil
}

// idle informa, sin bloquear, si no hay un Dispatch en curso.
func (c *Controller) idle() bool {
	if !c.mu.TryLock() {
		return false
	}
	defer c.mu.Unlock()
	return !c.state.Busy()
}
