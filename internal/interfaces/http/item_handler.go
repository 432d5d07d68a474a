package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/application/usecase"
	"github.com/tu-usuario/poms-pro/internal/domain"
)

// ItemHandler maneja las peticiones HTTP para el catálogo de items.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler inyectando el caso de uso.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar items de la empresa
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{id}/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.SaveItemRequest  true  "Datos del item"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/company/{id}/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateItemBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return itemError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener item
// @Tags         items
// @Produce      json
// @Param        id      path  string  true  "ID de la empresa"
// @Param        itemId  path  string  true  "ID del item"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{id}/items/{itemId} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"), c.Params("itemId"))
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID de la empresa"
// @Param        itemId  path  string  true  "ID del item"
// @Param        body    body  dto.SaveItemRequest  true  "Datos completos del item"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{id}/items/{itemId} [patch]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateItemBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar item
// @Tags         items
// @Param        id      path  string  true  "ID de la empresa"
// @Param        itemId  path  string  true  "ID del item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{id}/items/{itemId} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id"), c.Params("itemId")); err != nil {
		return itemError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// validateItemBody valida los campos requeridos. Mensaje vacío = válido.
func validateItemBody(in dto.SaveItemRequest) string {
	if in.PartyID == "" {
		return "partyId es requerido"
	}
	if in.Name == "" {
		return "name es requerido"
	}
	if in.BasePrice == "" {
		return "basePrice es requerido"
	}
	if in.GSTRate == "" {
		return "gstRate es requerido"
	}
	return ""
}

func itemError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrInvalidInput:
		// Supplier ajeno a la empresa o montos fuera de rango.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "supplier inválido o montos fuera de rango (basePrice >= 0, gstRate 0..100)"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
