// Package collaborator contiene las reglas puras del colaborador: validación por paso,
// normalización de documentos con nombres de campo heredados y ordenamiento del listado.
package collaborator

import (
	"regexp"
	"strings"
)

// Mensajes devueltos por la validación. Son códigos estables; el cliente los traduce.
const (
	MsgRequired      = "required"
	MsgInvalidFormat = "invalid format"
	MsgNotAllowed    = "not allowed"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BasicInfo campos del paso 0 (información básica).
type BasicInfo struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

// ProfessionalInfo campos del paso 1 (información profesional).
type ProfessionalInfo struct {
	Department string `json:"department"`
}

// ValidateBasic valida nombre y email. Devuelve un mapa vacío si todo es válido.
func ValidateBasic(in BasicInfo) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = MsgRequired
	}
	if strings.TrimSpace(in.Email) == "" {
		errs["email"] = MsgRequired
	} else if !emailRe.MatchString(in.Email) {
		errs["email"] = MsgInvalidFormat
	}
	return errs
}

// ValidateProfessional valida el departamento. Si allowed no está vacío, el valor
// debe pertenecer al conjunto configurado.
func ValidateProfessional(in ProfessionalInfo, allowed []string) map[string]string {
	errs := map[string]string{}
	dep := strings.TrimSpace(in.Department)
	if dep == "" {
		errs["department"] = MsgRequired
		return errs
	}
	if len(allowed) > 0 && !contains(allowed, dep) {
		errs["department"] = MsgNotAllowed
	}
	return errs
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
