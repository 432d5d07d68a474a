package http

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/application/usecase"
	"github.com/tu-usuario/poms-pro/internal/domain"
)

// Formatos de identificación fiscal (India).
var (
	gstinPattern = regexp.MustCompile(`^[0-9A-Z]{15}$`)
	panPattern   = regexp.MustCompile(`^[A-Za-z]{5}[0-9]{4}[A-Za-z]$`)
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
// Todas las operaciones filtran por el dueño de la sesión; una empresa ajena
// responde 404, nunca 403.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa (dueño = sesión)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateCompanyFields(in.Name, in.GSTIN, in.PAN); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrGSTINAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "empresa con ese GSTIN ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empresas del usuario autenticado
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa (id por query, compatibilidad con el formulario)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    query  string  true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Datos completos de la empresa"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	companyID := c.Query("id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateCompanyFields(in.Name, in.GSTIN, in.PAN); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	if in.GSTType == "" {
		in.GSTType = "INTRA_STATE"
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), companyID, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		if err == domain.ErrGSTINAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "empresa con ese GSTIN ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Obtener empresa con suppliers embebidos
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{id} [get]
func (h *CompanyHandler) Detail(c *fiber.Ctx) error {
	companyID := c.Params("id")
	out, err := h.uc.GetDetail(c.Context(), GetUserID(c), companyID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// validateCompanyFields valida los campos con formato; mensaje vacío = válido.
func validateCompanyFields(name, gstin, pan string) string {
	if name == "" {
		return "name es requerido"
	}
	if gstin != "" && !gstinPattern.MatchString(gstin) {
		return "GSTIN debe ser de 15 caracteres (números o mayúsculas)"
	}
	if pan != "" && !panPattern.MatchString(pan) {
		return "formato de PAN inválido"
	}
	return ""
}
