package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/poms-pro/internal/application/auth"
	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/domain"
)

// AuthHandler maneja login, logout y verificación de credenciales.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	cookieName string
	cookieSecure bool
	expMinutes int
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookieName string, cookieSecure bool, expMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName, cookieSecure: cookieSecure, expMinutes: expMinutes}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			// Mensaje único: no se distingue cuenta inexistente de password incorrecto.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "CREDENCIALES", Message: "credenciales inválidas"})
		}
		if err == domain.ErrInactiveUser {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o suspendida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Cookie para el shell web; las APIs pueden seguir usando el Bearer del body.
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    out.Token,
		Expires:  time.Now().Add(time.Duration(h.expMinutes) * time.Minute),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (borra la cookie del shell)
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Validate godoc
// @Summary      Verificar credenciales sin emitir sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateRequest  true  "email, password"
// @Success      200   {object}  dto.ValidateResponse
// @Router       /api/auth/validate [post]
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.JSON(dto.ValidateResponse{Valid: false, Error: "email y password son requeridos"})
	}
	out, err := h.uc.Validate(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
