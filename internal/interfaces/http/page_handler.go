package http

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/poms-pro/internal/application/rbac"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
)

// Shell mínimo del frontend. El guard de borde (RouteGuard) ya filtró; este
// handler re-verifica el rol con la sesión en memoria y muestra un estado
// neutro de redirección en caso de desajuste. Refuerzo de UX, nunca la
// barrera de seguridad.
var shellTmpl = template.Must(template.New("shell").Parse(`<!doctype html>
<html lang="es">
<head>
<meta charset="utf-8">
{{if .Redirect}}<meta http-equiv="refresh" content="0; url={{.Redirect}}">{{end}}
<title>{{.Title}} · POMS</title>
</head>
<body>
{{if .Redirect}}<p>Redirigiendo...</p>{{else}}<div id="app" data-page="{{.Page}}"></div>{{end}}
</body>
</html>`))

type shellData struct {
	Title    string
	Page     string
	Redirect string
}

// PageHandler sirve las páginas del shell de la aplicación.
type PageHandler struct{}

// NewPageHandler construye el handler de páginas.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Shell devuelve el handler de una página protegida. allowed vacío = basta
// tener sesión.
func (h *PageHandler) Shell(title, page string, allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return h.render(c, shellData{Title: title, Redirect: "/login"})
		}
		if len(allowed) > 0 && !rbac.HasRole(sess, allowed...) {
			// Mismo criterio que el guard: cada rol a su página inicial.
			return h.render(c, shellData{Title: title, Redirect: rbac.DefaultLanding(sess.Role)})
		}
		return h.render(c, shellData{Title: title, Page: page})
	}
}

// Login página pública de inicio de sesión. Una sesión vigente salta directo
// a su página inicial.
func (h *PageHandler) Login(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil {
		return c.Redirect(rbac.DefaultLanding(sess.Role), fiber.StatusFound)
	}
	return h.render(c, shellData{Title: "Iniciar sesión", Page: "login"})
}

// Root redirige la raíz según la sesión.
func (h *PageHandler) Root(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return c.Redirect("/login", fiber.StatusFound)
	}
	return c.Redirect(rbac.DefaultLanding(sess.Role), fiber.StatusFound)
}

func (h *PageHandler) render(c *fiber.Ctx, data shellData) error {
	var buf bytes.Buffer
	if err := shellTmpl.Execute(&buf, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error de plantilla")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
