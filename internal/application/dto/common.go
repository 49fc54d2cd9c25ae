package dto

import "github.com/jhoicas/Colaboradores-api/internal/application/navigation"

// ErrorResponse cuerpo de error HTTP. Fields solo en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// NavigationResponse indica al cliente a dónde navegar.
type NavigationResponse struct {
	Next navigation.Intent `json:"next"`
}
