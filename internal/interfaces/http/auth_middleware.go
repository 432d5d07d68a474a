package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/application/rbac"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
	"github.com/tu-usuario/poms-pro/pkg/jwt"
)

// Locals keys para la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// sessionFromRequest reconstruye la sesión del request: primero el header
// Authorization (Bearer), después la cookie del shell. Token ausente, con
// firma inválida, expirado o con rol desconocido => nil (sin sesión).
// Solo decodifica y verifica firma; no toca red ni disco.
func sessionFromRequest(c *fiber.Ctx, jwtSecret, cookieName string) *rbac.Session {
	tokenString := ""
	if authHeader := c.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = strings.TrimSpace(parts[1])
		}
	}
	if tokenString == "" {
		tokenString = c.Cookies(cookieName)
	}
	if tokenString == "" {
		return nil
	}
	userID, roleStr, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return nil
	}
	role, ok := entity.ParseRole(roleStr)
	if !ok {
		return nil
	}
	return &rbac.Session{UserID: userID, Role: role}
}

// AuthMiddleware valida el token de sesión (Bearer o cookie) y carga
// UserID y Role en c.Locals. Para API: sin sesión => 401, nunca redirect.
func AuthMiddleware(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := sessionFromRequest(c, jwtSecret, cookieName)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		c.Locals(LocalUserID, sess.UserID)
		c.Locals(LocalRole, sess.Role)
		return c.Next()
	}
}

// RequireRole re-verifica el rol dentro del grupo de rutas (defensa en
// profundidad: el guard de borde ya filtró, pero el handler no confía en él).
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "sesión sin rol"})
		}
		if !rbac.HasRole(sess, allowed...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este recurso"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el Role del contexto; "" si no hay sesión.
func GetRole(c *fiber.Ctx) entity.Role {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	r, _ := v.(entity.Role)
	return r
}

// GetSession arma la sesión request-scoped desde locals; nil si no hay.
func GetSession(c *fiber.Ctx) *rbac.Session {
	userID := GetUserID(c)
	role := GetRole(c)
	if userID == "" || role == "" {
		return nil
	}
	return &rbac.Session{UserID: userID, Role: role}
}
