package collaborator

import (
	"fmt"

	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
)

// Nombres de campo en el document store. Los alias en portugués provienen de
// documentos escritos por la primera versión de la aplicación.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldDepartment = "department"
	FieldStatus     = "status"
	FieldAvatar     = "avatar"

	aliasName       = "nome"
	aliasDepartment = "departamento"
	aliasStatus     = "situacao"
)

// legacyStatus traduce los valores de estado heredados al enumerado canónico.
var legacyStatus = map[string]string{
	"Ativo":   entity.StatusActive,
	"Inativo": entity.StatusInactive,
}

// Normalize convierte un documento crudo en un Collaborator canónico.
// Nunca falla: claves ausentes o valores vacíos degradan al valor por defecto.
func Normalize(raw map[string]any) entity.Collaborator {
	status := pick(raw, FieldStatus, aliasStatus)
	if status == "" {
		status = entity.StatusInactive
	}
	if canonical, ok := legacyStatus[status]; ok {
		status = canonical
	}
	return entity.Collaborator{
		Name:       pick(raw, FieldName, aliasName),
		Email:      pick(raw, FieldEmail),
		Department: pick(raw, FieldDepartment, aliasDepartment),
		Status:     status,
		Avatar:     pick(raw, FieldAvatar),
	}
}

// ToDocument serializa el colaborador con los nombres de campo canónicos.
func ToDocument(c entity.Collaborator) map[string]any {
	return map[string]any{
		FieldName:       c.Name,
		FieldEmail:      c.Email,
		FieldDepartment: c.Department,
		FieldStatus:     c.Status,
		FieldAvatar:     c.Avatar,
	}
}

// pick devuelve el primer valor no vacío entre las claves, en orden de precedencia.
func pick(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := stringify(raw[k]); s != "" {
			return s
		}
	}
	return ""
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
