package wizard

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Colaboradores-api/internal/application/navigation"
	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
	"github.com/jhoicas/Colaboradores-api/pkg/logger"
)

// DefaultIdleTTL tiempo sin actividad tras el cual una sesión abandonada se descarta.
const DefaultIdleTTL = 30 * time.Minute

type session struct {
	ctrl     *Controller
	identity entity.Identity
	lastSeen time.Time
}

// Sessions registro en memoria de wizards activos. Un registro tiene a lo sumo una
// sesión: abrirlo de nuevo reemplaza la anterior salvo que esté guardando o borrando.
type Sessions struct {
	mu          sync.Mutex
	items       map[string]*session
	repo        repository.CollaboratorRepository
	timeout     time.Duration
	departments []string
	idleTTL     time.Duration
	log         *logger.Logger
	now         func() time.Time
}

// SessionsConfig dependencias del registro.
type SessionsConfig struct {
	Repo        repository.CollaboratorRepository
	Timeout     time.Duration
	Departments []string
	IdleTTL     time.Duration
	Log         *logger.Logger
}

// NewSessions construye el registro.
func NewSessions(cfg SessionsConfig) *Sessions {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}
	return &Sessions{
		items:       make(map[string]*session),
		repo:        cfg.Repo,
		timeout:     cfg.Timeout,
		departments: cfg.Departments,
		idleTTL:     cfg.IdleTTL,
		log:         cfg.Log,
		now:         time.Now,
	}
}

// StartCreate abre un wizard de alta.
func (s *Sessions) StartCreate() (string, *Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	return s.addLocked("", NewCreateState(s.departments))
}

// StartEdit abre un wizard de edición sembrado con seed. Una sesión previa sobre el
// mismo documento se descarta; si tiene una llamada al store en curso devuelve ErrBusy.
func (s *Sessions) StartEdit(id entity.Identity, seed entity.Collaborator) (string, *Controller, error) {
	if id == "" {
		return "", nil, fmt.Errorf("identidad requerida: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	for sid, it := range s.items {
		if it.identity != id {
			continue
		}
		if !it.ctrl.idle() {
			return "", nil, fmt.Errorf("documento %s: %w", id, domain.ErrBusy)
		}
		delete(s.items, sid)
		s.log.Debug().Str("session", sid).Str("identity", string(id)).Msg("sesión de edición reemplazada")
	}
	sid, ctrl := s.addLocked(id, NewEditState(id, seed, s.departments))
	return sid, ctrl, nil
}

// Get devuelve el controller de la sesión y renueva su actividad.
func (s *Sessions) Get(sid string) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[sid]
	if !ok {
		return nil, false
	}
	it.lastSeen = s.now()
	return it.ctrl, true
}

// Remove descarta la sesión (y su borrador).
func (s *Sessions) Remove(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, sid)
}

// Len cantidad de sesiones activas.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Sessions) addLocked(id entity.Identity, initial State) (string, *Controller) {
	sid := uuid.New().String()
	ctrl := NewController(initial, ControllerConfig{
		Repo:    s.repo,
		Timeout: s.timeout,
		Log:     s.log,
		OnDone: func(intent navigation.Intent) {
			s.Remove(sid)
			s.log.Debug().Str("session", sid).Str("next", string(intent.Kind)).Msg("wizard finalizado")
		},
		OnPersisted: func(id entity.Identity) { s.bind(sid, id) },
	})
	s.items[sid] = &session{ctrl: ctrl, identity: id, lastSeen: s.now()}
	return sid, ctrl
}

// bind asocia la sesión con la identidad asignada por el store tras un alta.
func (s *Sessions) bind(sid string, id entity.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[sid]; ok {
		it.identity = id
	}
}

func (s *Sessions) pruneLocked() {
	cutoff := s.now().Add(-s.idleTTL)
	for sid, it := range s.items {
		if it.lastSeen.Before(cutoff) && it.ctrl.idle() {
			delete(s.items, sid)
		}
	}
}
