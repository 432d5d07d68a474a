package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/poms-pro/internal/domain/entity"
	apphttp "github.com/tu-usuario/poms-pro/internal/interfaces/http"
)

// withSession middleware de test que carga la sesión en locals, igual que lo
// haría el guard de borde en la app real.
func withSession(role entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalUserID, testUserID)
		c.Locals(apphttp.LocalRole, role)
		return c.Next()
	}
}

func buildPageApp(sessionRole entity.Role) *fiber.App {
	app := fiber.New()
	if sessionRole != "" {
		app.Use(withSession(sessionRole))
	}
	pages := apphttp.NewPageHandler()
	app.Get("/", pages.Root)
	app.Get("/login", pages.Login)
	app.Get("/dashboard", pages.Shell("Dashboard", "dashboard", entity.RoleUser, entity.RoleSuperAdmin))
	app.Get("/admin", pages.Shell("Administración", "admin", entity.RoleSuperAdmin))
	return app
}

func getPage(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, string(body)
}

// Sin sesión en locals, la página protegida no muestra contenido: renderiza
// el shell neutro de redirección hacia /login.
func TestPageShell_SinSesionRenderizaRedireccion(t *testing.T) {
	app := buildPageApp("")
	resp, body := getPage(t, app, "/dashboard")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Redirigiendo")
	assert.Contains(t, body, `url=/login`)
	assert.NotContains(t, body, "data-page", "nunca debe filtrarse el contenido de la página")
}

// USER en la página de admin: shell de redirección hacia SU página inicial,
// no hacia login.
func TestPageShell_UserEnAdminRedirigeADashboard(t *testing.T) {
	app := buildPageApp(entity.RoleUser)
	resp, body := getPage(t, app, "/admin")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Redirigiendo")
	assert.Contains(t, body, `url=/dashboard`)
	assert.NotContains(t, body, "data-page")
}

// Rol permitido: la página se renderiza de verdad.
func TestPageShell_RolPermitidoRenderizaPagina(t *testing.T) {
	app := buildPageApp(entity.RoleSuperAdmin)

	_, adminBody := getPage(t, app, "/admin")
	assert.Contains(t, adminBody, `data-page="admin"`)
	assert.NotContains(t, adminBody, "Redirigiendo")

	_, dashBody := getPage(t, app, "/dashboard")
	assert.Contains(t, dashBody, `data-page="dashboard"`)
}

// /login con sesión vigente salta directo a la página inicial del rol.
func TestPageLogin_ConSesionSaltaALanding(t *testing.T) {
	cases := []struct {
		role    entity.Role
		landing string
	}{
		{entity.RoleSuperAdmin, "/admin"},
		{entity.RoleUser, "/dashboard"},
	}
	for _, tc := range cases {
		app := buildPageApp(tc.role)
		resp, _ := getPage(t, app, "/login")

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, tc.landing, resp.Header.Get("Location"), "rol %s", tc.role)
	}
}

func TestPageLogin_SinSesionRenderizaLogin(t *testing.T) {
	app := buildPageApp("")
	resp, body := getPage(t, app, "/login")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `data-page="login"`)
}

// La raíz redirige según la sesión.
func TestPageRoot_RedirigePorSesion(t *testing.T) {
	app := buildPageApp("")
	resp, _ := getPage(t, app, "/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	app = buildPageApp(entity.RoleUser)
	resp, _ = getPage(t, app, "/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}
