// Package rbac implementa la política de autorización por prefijo de ruta.
// La tabla es estática e inmutable durante la vida del proceso; el orden de
// evaluación (público -> sesión -> admin -> usuario -> default) es parte del
// contrato y está cubierto por tests.
package rbac

import (
	"strings"

	"github.com/tu-usuario/poms-pro/internal/domain/entity"
)

// Session es la identidad request-scoped reconstruida del token firmado.
// nil = sin sesión (token ausente o con firma inválida).
type Session struct {
	UserID string
	Role   entity.Role
}

// Decision resultado terminal de evaluar la política para una ruta.
type Decision int

const (
	// DecisionAllow la petición continúa hacia el handler.
	DecisionAllow Decision = iota
	// DecisionRedirectLogin sin sesión o rol sin destino propio.
	DecisionRedirectLogin
	// DecisionRedirectDashboard USER intentando una ruta de admin.
	DecisionRedirectDashboard
)

// RedirectTarget devuelve la ruta de redirección para decisiones no-Allow.
func (d Decision) RedirectTarget() string {
	switch d {
	case DecisionRedirectLogin:
		return "/login"
	case DecisionRedirectDashboard:
		return "/dashboard"
	default:
		return ""
	}
}

// Prefijos de la tabla de políticas. Exentos primero: el orden importa, una
// ruta de login nunca debe llegar al chequeo de rol.
var (
	publicPrefixes = []string{"/login", "/api/"}
	adminPrefixes  = []string{"/admin", "/user-management"}
	userPrefixes   = []string{"/dashboard", "/companies", "/company/", "/orders", "/profile", "/settings"}
)

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// EvaluatePath clasifica la ruta y decide según la sesión. Determinista:
// mismo (path, sesión) produce siempre la misma decisión.
//
//  1. login y /api/ son exentos (las APIs validan sesión por su cuenta).
//  2. Sin sesión -> login.
//  3. Prefijos admin: exige SUPER_ADMIN; USER va a su dashboard, el resto a login.
//  4. Prefijos de usuario: USER o SUPER_ADMIN; otros roles a login.
//  5. Prefijo sin clasificar: basta tener sesión.
func EvaluatePath(path string, sess *Session) Decision {
	if matchesAny(path, publicPrefixes) {
		return DecisionAllow
	}
	if sess == nil {
		return DecisionRedirectLogin
	}
	if matchesAny(path, adminPrefixes) {
		switch sess.Role {
		case entity.RoleSuperAdmin:
			return DecisionAllow
		case entity.RoleUser:
			return DecisionRedirectDashboard
		case entity.RoleEmployee:
			return DecisionRedirectLogin
		default:
			return DecisionRedirectLogin
		}
	}
	if matchesAny(path, userPrefixes) {
		switch sess.Role {
		case entity.RoleSuperAdmin, entity.RoleUser:
			return DecisionAllow
		case entity.RoleEmployee:
			return DecisionRedirectLogin
		default:
			return DecisionRedirectLogin
		}
	}
	// Ruta sin clasificar: autenticado es suficiente.
	return DecisionAllow
}

// HasRole informa si la sesión tiene alguno de los roles permitidos.
// Se usa como re-verificación dentro de handlers (defensa en profundidad),
// nunca como única barrera.
func HasRole(sess *Session, allowed ...entity.Role) bool {
	if sess == nil {
		return false
	}
	for _, r := range allowed {
		if sess.Role == r {
			return true
		}
	}
	return false
}

// DefaultLanding devuelve la página inicial según el rol (redirección del
// guard del shell cuando el rol no corresponde a la página pedida).
func DefaultLanding(role entity.Role) string {
	switch role {
	case entity.RoleSuperAdmin:
		return "/admin"
	case entity.RoleUser:
		return "/dashboard"
	case entity.RoleEmployee:
		return "/login"
	default:
		return "/login"
	}
}
