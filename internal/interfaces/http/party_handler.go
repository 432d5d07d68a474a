package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/application/usecase"
	"github.com/tu-usuario/poms-pro/internal/domain"
)

// PartyHandler maneja las peticiones HTTP para suppliers de una empresa.
// La cadena de propiedad (company -> usuario, supplier -> company) se verifica
// en el use case en cada operación; la falla siempre responde 404.
type PartyHandler struct {
	uc *usecase.PartyUseCase
}

// NewPartyHandler construye el handler inyectando el caso de uso.
func NewPartyHandler(uc *usecase.PartyUseCase) *PartyHandler {
	return &PartyHandler{uc: uc}
}

// List godoc
// @Summary      Listar suppliers de la empresa
// @Tags         suppliers
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.PartyListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{id}/suppliers [get]
func (h *PartyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return partyError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.SavePartyRequest  true  "Datos del supplier"
// @Success      201   {object}  dto.PartyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/company/{id}/suppliers [post]
func (h *PartyHandler) Create(c *fiber.Ctx) error {
	var in dto.SavePartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return partyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener supplier
// @Tags         suppliers
// @Produce      json
// @Param        id          path  string  true  "ID de la empresa"
// @Param        supplierId  path  string  true  "ID del supplier"
// @Success      200  {object}  dto.PartyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{id}/suppliers/{supplierId} [get]
func (h *PartyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"), c.Params("supplierId"))
	if err != nil {
		return partyError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id          path  string  true  "ID de la empresa"
// @Param        supplierId  path  string  true  "ID del supplier"
// @Param        body        body  dto.SavePartyRequest  true  "Datos completos del supplier"
// @Success      200  {object}  dto.PartyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{id}/suppliers/{supplierId} [put]
func (h *PartyHandler) Update(c *fiber.Ctx) error {
	var in dto.SavePartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), c.Params("supplierId"), in)
	if err != nil {
		return partyError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar supplier
// @Tags         suppliers
// @Param        id          path  string  true  "ID de la empresa"
// @Param        supplierId  path  string  true  "ID del supplier"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{id}/suppliers/{supplierId} [delete]
func (h *PartyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id"), c.Params("supplierId")); err != nil {
		return partyError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func partyError(c *fiber.Ctx, err error) error {
	if err == domain.ErrNotFound {
		// Cubre empresa ajena y supplier inexistente por igual.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
