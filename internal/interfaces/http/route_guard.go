package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/poms-pro/internal/application/rbac"
)

// RouteGuard aplica la política de autorización por prefijo en el borde:
// las respuestas no autorizadas se resuelven aquí, antes de llegar a ningún
// handler de página. Las rutas /api/ quedan exentas (validan sesión con
// AuthMiddleware por su cuenta) igual que /login.
//
// Debe registrarse como primer middleware de la app, antes de las rutas.
func RouteGuard(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := sessionFromRequest(c, jwtSecret, cookieName)

		switch decision := rbac.EvaluatePath(c.Path(), sess); decision {
		case rbac.DecisionAllow:
			if sess != nil {
				c.Locals(LocalUserID, sess.UserID)
				c.Locals(LocalRole, sess.Role)
			}
			return c.Next()
		default:
			return c.Redirect(decision.RedirectTarget(), fiber.StatusFound)
		}
	}
}
