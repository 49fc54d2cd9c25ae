package wizard

import (
	"fmt"

	"github.com/jhoicas/Colaboradores-api/internal/application/navigation"
	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/collaborator"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
)

// Event entrada de la máquina de estados.
type Event interface{ event() }

// Eventos del usuario.
type (
	// FieldChanged edita un campo de texto: name y email (paso 0) o department (paso 1).
	FieldChanged struct {
		Field string
		Value string
	}
	// ActiveChanged cambia el toggle de activo (paso 0).
	ActiveChanged struct{ Active bool }
	Next          struct{}
	Back          struct{}
	Cancel        struct{}
	Acknowledge   struct{}
	RequestDelete struct{}
	CancelDelete  struct{}
	ConfirmDelete struct{}
)

// Resultados de los efectos, los emite Controller.
type (
	PersistSucceeded struct{ Identity entity.Identity }
	PersistFailed    struct{ Err error }
	DeleteSucceeded  struct{}
	DeleteFailed     struct{ Err error }
)

func (FieldChanged) event()     {}
func (ActiveChanged) event()    {}
func (Next) event()             {}
func (Back) event()             {}
func (Cancel) event()           {}
func (Acknowledge) event()      {}
func (RequestDelete) event()    {}
func (CancelDelete) event()     {}
func (ConfirmDelete) event()    {}
func (PersistSucceeded) event() {}
func (PersistFailed) event()    {}
func (DeleteSucceeded) event()  {}
func (DeleteFailed) event()     {}

// Effect trabajo que la transición pide ejecutar fuera de la función pura.
type Effect interface{ effect() }

type (
	// Persist crea (Identity vacía) o actualiza el registro.
	Persist struct {
		Identity entity.Identity
		Record   entity.Collaborator
	}
	// Delete elimina el documento.
	Delete struct{ Identity entity.Identity }
	// Done el wizard terminó; el llamador navega a Intent.
	Done struct{ Intent navigation.Intent }
)

func (Persist) effect() {}
func (Delete) effect()  {}
func (Done) effect()    {}

// Transition aplica ev sobre s. Siempre devuelve el estado a conservar; err explica
// un rechazo (ErrBusy, ErrInvalidTransition) o un fallo de validación (*domain.ValidationError).
// No muta s.
func Transition(s State, ev Event) (State, Effect, error) {
	next := s.clone()

	switch e := ev.(type) {
	case PersistSucceeded:
		if s.Phase != PhaseSaving {
			return s, nil, invalid(s, ev)
		}
		if s.Mode == ModeCreate {
			next.Identity = e.Identity
		}
		next.Phase = PhaseCompleted
		next.Err = ""
		return next, nil, nil
	case PersistFailed:
		if s.Phase != PhaseSaving {
			return s, nil, invalid(s, ev)
		}
		next.Phase = PhaseEditing
		next.Err = errText(e.Err)
		return next, nil, nil
	case DeleteSucceeded:
		if s.Phase != PhaseDeleting {
			return s, nil, invalid(s, ev)
		}
		next.Phase = PhaseDeleted
		next.Err = ""
		return exit(next, navigation.ToListing())
	case DeleteFailed:
		if s.Phase != PhaseDeleting {
			return s, nil, invalid(s, ev)
		}
		next.Phase = PhaseEditing
		next.Err = errText(e.Err)
		return next, nil, nil
	}

	if s.Busy() {
		return s, nil, domain.ErrBusy
	}

	switch ev.(type) {
	case Acknowledge:
		if s.Phase != PhaseCompleted && s.Phase != PhaseDeleted {
			return s, nil, invalid(s, ev)
		}
		return exit(next, navigation.ToListing())
	case Cancel:
		if s.Phase != PhaseEditing && s.Phase != PhaseConfirmingDelete {
			return s, nil, invalid(s, ev)
		}
		return exit(next, navigation.ToListing())
	}

	if s.Phase == PhaseConfirmingDelete {
		switch ev.(type) {
		case CancelDelete:
			next.Phase = PhaseEditing
			return next, nil, nil
		case ConfirmDelete:
			next.Phase = PhaseDeleting
			next.Err = ""
			return next, Delete{Identity: s.Identity}, nil
		}
		return s, nil, invalid(s, ev)
	}
	if s.Phase != PhaseEditing {
		return s, nil, invalid(s, ev)
	}

	switch e := ev.(type) {
	case FieldChanged:
		return changeField(next, e)
	case ActiveChanged:
		if s.Step != StepBasicInfo {
			return s, nil, invalid(s, ev)
		}
		next.Draft.Basic.Active = e.Active
		return next, nil, nil
	case Next:
		return advance(next)
	case Back:
		// en el primer paso "volver" sale al listado
		if s.Step == StepBasicInfo {
			return exit(next, navigation.ToListing())
		}
		next.Step = StepBasicInfo
		return next, nil, nil
	case RequestDelete:
		if !s.CanDelete() {
			return s, nil, invalid(s, ev)
		}
		next.Phase = PhaseConfirmingDelete
		return next, nil, nil
	}
	return s, nil, invalid(s, ev)
}

func changeField(next State, e FieldChanged) (State, Effect, error) {
	switch {
	case next.Step == StepBasicInfo && e.Field == collaborator.FieldName:
		next.Draft.Basic.Name = e.Value
		delete(next.BasicErrors, e.Field)
	case next.Step == StepBasicInfo && e.Field == collaborator.FieldEmail:
		next.Draft.Basic.Email = e.Value
		delete(next.BasicErrors, e.Field)
	case next.Step == StepProfessionalInfo && e.Field == collaborator.FieldDepartment:
		next.Draft.Professional.Department = e.Value
		delete(next.ProfessionalErrors, e.Field)
	default:
		return next, nil, fmt.Errorf("campo %q en paso %s: %w", e.Field, next.Step, domain.ErrInvalidTransition)
	}
	return next, nil, nil
}

func advance(next State) (State, Effect, error) {
	switch next.Step {
	case StepBasicInfo:
		next.BasicErrors = collaborator.ValidateBasic(next.Draft.Basic)
		if len(next.BasicErrors) > 0 {
			return next, nil, &domain.ValidationError{Fields: cloneErrs(next.BasicErrors)}
		}
		next.Step = StepProfessionalInfo
		return next, nil, nil
	default:
		next.ProfessionalErrors = collaborator.ValidateProfessional(next.Draft.Professional, next.Departments)
		if len(next.ProfessionalErrors) > 0 {
			return next, nil, &domain.ValidationError{Fields: cloneErrs(next.ProfessionalErrors)}
		}
		next.Phase = PhaseSaving
		next.Err = ""
		eff := Persist{Record: next.Record()}
		if next.Mode == ModeEdit {
			eff.Identity = next.Identity
		}
		return next, eff, nil
	}
}

func exit(next State, intent navigation.Intent) (State, Effect, error) {
	next.Exit = &intent
	return next, Done{Intent: intent}, nil
}

func invalid(s State, ev Event) error {
	return fmt.Errorf("%T en fase %s, paso %s: %w", ev, s.Phase, s.Step, domain.ErrInvalidTransition)
}

func errText(err error) string {
	if err == nil {
		return "error desconocido"
	}
	return err.Error()
}
