package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Colaboradores-api/internal/application/dto"
	"github.com/jhoicas/Colaboradores-api/internal/application/usecase"
	"github.com/jhoicas/Colaboradores-api/internal/application/wizard"
)

// WizardHandler sesiones del formulario de alta/edición en dos pasos (protegido).
type WizardHandler struct {
	uc *usecase.WizardUseCase
}

// NewWizardHandler construye el handler.
func NewWizardHandler(uc *usecase.WizardUseCase) *WizardHandler {
	return &WizardHandler{uc: uc}
}

// StartCreate godoc
// @Summary      Abrir alta de colaborador
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.WizardStateResponse
// @Router       /api/wizard [post]
func (h *WizardHandler) StartCreate(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.uc.StartCreate())
}

// StartEdit godoc
// @Summary      Abrir edición de colaborador
// @Description  El registro se lee por identidad; el seed opcional precarga los campos editables.
// @Tags         wizard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                false  "identidad del documento"
// @Param        body  body  dto.StartEditRequest  false  "datos para precargar"
// @Success      201  {object}  dto.WizardStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/wizard/edit/{id} [post]
func (h *WizardHandler) StartEdit(c *fiber.Ctx) error {
	var in dto.StartEditRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.StartEdit(c.UserContext(), c.Params("id"), in.Seed)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Param        sid  path  string  true  "id de sesión"
// @Success      200  {object}  dto.WizardStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/wizard/{sid} [get]
func (h *WizardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("sid"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateFields godoc
// @Summary      Editar campos del paso actual
// @Tags         wizard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sid   path  string             true  "id de sesión"
// @Param        body  body  dto.FieldsRequest  true  "campos a cambiar"
// @Success      200  {object}  dto.WizardStateResponse
// @Failure      409  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/{sid}/fields [patch]
func (h *WizardHandler) UpdateFields(c *fiber.Ctx) error {
	var in dto.FieldsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateFields(c.UserContext(), c.Params("sid"), in)
	return respond(c, out, err)
}

// Next godoc
// @Summary      Avanzar o guardar
// @Description  En el paso 0 valida y avanza; en el paso 1 valida y persiste.
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Param        sid  path  string  true  "id de sesión"
// @Success      200  {object}  dto.WizardStateResponse
// @Failure      422  {object}  dto.WizardErrorResponse
// @Failure      503  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/{sid}/next [post]
func (h *WizardHandler) Next(c *fiber.Ctx) error { return h.dispatch(c, wizard.Next{}) }

// Back godoc
// @Summary      Volver
// @Description  En el paso 1 vuelve al 0 sin validar; en el paso 0 sale al listado.
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Param        sid  path  string  true  "id de sesión"
// @Success      200  {object}  dto.WizardStateResponse
// @Router       /api/wizard/{sid}/back [post]
func (h *WizardHandler) Back(c *fiber.Ctx) error { return h.dispatch(c, wizard.Back{}) }

// Acknowledge godoc
// @Summary      Confirmar aviso de guardado
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Param        sid  path  string  true  "id de sesión"
// @Success      200  {object}  dto.WizardStateResponse
// @Router       /api/wizard/{sid}/ack [post]
func (h *WizardHandler) Acknowledge(c *fiber.Ctx) error { return h.dispatch(c, wizard.Acknowledge{}) }

// RequestDelete godoc
// @Summary      Pedir confirmación de borrado
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Param        sid  path  string  true  "id de sesión"
// @Success      200  {object}  dto.WizardStateResponse
// @Failure      409  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/{sid}/delete/request [post]
func (h *WizardHandler) RequestDelete(c *fiber.Ctx) error {
	return h.dispatch(c, wizard.RequestDelete{})
}

// CancelDelete godoc
// @Summary      Descartar borrado
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Param        sid  path  string  true  "id de sesión"
// @Success      200  {object}  dto.WizardStateResponse
// @Router       /api/wizard/{sid}/delete/cancel [post]
func (h *WizardHandler) CancelDelete(c *fiber.Ctx) error {
	return h.dispatch(c, wizard.CancelDelete{})
}

// ConfirmDelete godoc
// @Summary      Confirmar borrado
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Param        sid  path  string  true  "id de sesión"
// @Success      200  {object}  dto.WizardStateResponse
// @Failure      503  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/{sid}/delete/confirm [post]
func (h *WizardHandler) ConfirmDelete(c *fiber.Ctx) error {
	return h.dispatch(c, wizard.ConfirmDelete{})
}

// Cancel godoc
// @Summary      Cancelar sesión
// @Description  Descarta el borrador sin persistir.
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Param        sid  path  string  true  "id de sesión"
// @Success      200  {object}  dto.WizardStateResponse
// @Router       /api/wizard/{sid} [delete]
func (h *WizardHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.UserContext(), c.Params("sid"))
	return respond(c, out, err)
}

func (h *WizardHandler) dispatch(c *fiber.Ctx, ev wizard.Event) error {
	out, err := h.uc.Dispatch(c.UserContext(), c.Params("sid"), ev)
	return respond(c, out, err)
}

// respond devuelve la vista; ante error incluye también el estado conservado.
func respond(c *fiber.Ctx, out *dto.WizardStateResponse, err error) error {
	if err == nil {
		return c.JSON(out)
	}
	status, body := errorStatus(err)
	return c.Status(status).JSON(dto.WizardErrorResponse{ErrorResponse: body, State: out})
}
