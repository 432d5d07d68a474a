package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/application/usecase"
	"github.com/tu-usuario/poms-pro/internal/domain"
)

// AdminUserHandler administración de identidades. El router ya exige
// SUPER_ADMIN vía RequireRole; los handlers asumen sesión con ese rol.
type AdminUserHandler struct {
	uc *usecase.UserUseCase
}

// NewAdminUserHandler construye el handler del panel de usuarios.
func NewAdminUserHandler(uc *usecase.UserUseCase) *AdminUserHandler {
	return &AdminUserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios (paginado, solo SUPER_ADMIN)
// @Tags         admin
// @Produce      json
// @Param        page      query  int  false  "Página 1-based"      default(1)
// @Param        pageSize  query  int  false  "Tamaño (máx. 50)"    default(10)
// @Success      200  {object}  dto.UserListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminUserHandler) List(c *fiber.Ctx) error {
	page, pageSize, errMsg := parseAdminPagination(c)
	if errMsg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errMsg})
	}
	out, err := h.uc.List(page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario (solo SUPER_ADMIN)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "name, email, password, role, isActive"
// @Success      201   {object}  dto.UserResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *AdminUserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateCreateUser(in); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrEmailAlreadyExists:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role debe ser SUPER_ADMIN o USER"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// parseAdminPagination valida page (>= 1) y pageSize (1..MaxPageSize).
// Mensaje vacío = válido.
func parseAdminPagination(c *fiber.Ctx) (page, pageSize int, errMsg string) {
	page = dto.DefaultPage
	pageSize = dto.DefaultPageSize
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return 0, 0, "número de página inválido"
		}
		page = n
	}
	if raw := c.Query("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > dto.MaxPageSize {
			return 0, 0, fmt.Sprintf("pageSize debe estar entre 1 y %d", dto.MaxPageSize)
		}
		pageSize = n
	}
	return page, pageSize, ""
}

func validateCreateUser(in dto.CreateUserRequest) string {
	if in.Name == "" {
		return "name es requerido"
	}
	if in.Email == "" {
		return "email válido es requerido"
	}
	if len(in.Password) < 8 {
		return "password debe tener al menos 8 caracteres"
	}
	if in.Role != "SUPER_ADMIN" && in.Role != "USER" {
		return "role debe ser SUPER_ADMIN o USER"
	}
	if in.IsActive == nil {
		return "isActive debe ser booleano"
	}
	return ""
}
