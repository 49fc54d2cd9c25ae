package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Colaboradores-api/internal/application/dto"
	"github.com/jhoicas/Colaboradores-api/internal/application/usecase"
)

// CollaboratorHandler listado, resolución y exportación de colaboradores (protegido).
type CollaboratorHandler struct {
	uc *usecase.CollaboratorUseCase
}

// NewCollaboratorHandler construye el handler.
func NewCollaboratorHandler(uc *usecase.CollaboratorUseCase) *CollaboratorHandler {
	return &CollaboratorHandler{uc: uc}
}

// List godoc
// @Summary      Listar colaboradores
// @Description  Todos los colaboradores normalizados, ordenados por la columna indicada.
// @Tags         collaborators
// @Security     Bearer
// @Produce      json
// @Param        sort   query  string  false  "name | email | department | status | avatar"
// @Param        order  query  string  false  "asc | desc"
// @Success      200  {object}  dto.CollaboratorListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/collaborators [get]
func (h *CollaboratorHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Exportar listado en PDF
// @Tags         collaborators
// @Security     Bearer
// @Produce      application/pdf
// @Param        sort   query  string  false  "columna de orden"
// @Param        order  query  string  false  "asc | desc"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/collaborators/report.pdf [get]
func (h *CollaboratorHandler) Report(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	doc, filename, err := h.uc.Report(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(doc)
}

// Resolve godoc
// @Summary      Resolver fila del listado
// @Description  Busca la identidad por email y devuelve la navegación al editor.
// @Tags         collaborators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResolveRequest  true  "fila seleccionada"
// @Success      200  {object}  dto.NavigationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/collaborators/resolve [post]
func (h *CollaboratorHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Resolve(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener colaborador por identidad
// @Tags         collaborators
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "identidad del documento"
// @Success      200  {object}  dto.CollaboratorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id} [get]
func (h *CollaboratorHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
