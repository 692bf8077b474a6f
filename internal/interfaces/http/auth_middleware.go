package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lecoq/erp-admin/internal/application/access"
	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// Claves de c.Locals que deja RequireSession.
const (
	LocalsRole = "role"
	LocalsUser = "user"
)

// SessionReader lectura del estado de sesión del proceso (lo implementa *auth.Session).
type SessionReader interface {
	State() entity.Session
}

// RequireSession exige sesión: sin token redirige (302) a /login.
// Guarda rol y usuario en c.Locals para los handlers siguientes.
func RequireSession(s SessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := s.State()
		if !access.Authenticated(st) {
			return c.Redirect(access.RouteLogin, fiber.StatusFound)
		}
		c.Locals(LocalsRole, st.Role)
		c.Locals(LocalsUser, st.User)
		return c.Next()
	}
}

// RequireRole deja pasar solo si el rol en Locals está entre roles; si no, redirige (302) a /.
// Sin roles cualquier sesión pasa. Debe ir después de RequireSession.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(roles) == 0 {
			return c.Next()
		}
		if !access.Allowed(entity.Session{Role: GetRole(c)}, roles...) {
			return c.Redirect(access.RouteHome, fiber.StatusFound)
		}
		return c.Next()
	}
}

// GetRole rol de la sesión puesto por RequireSession ("" si no pasó por el middleware).
func GetRole(c *fiber.Ctx) string {
	if v := c.Locals(LocalsRole); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// guard RequireSession + RequireRole con los roles de la sección en la tabla de rutas.
func guard(s SessionReader, section string) []fiber.Handler {
	roles, _ := access.RolesFor(section)
	return []fiber.Handler{RequireSession(s), RequireRole(roles...)}
}

// SameOrigin rechaza (403) las peticiones que modifican estado y vienen de otro sitio,
// según Sec-Fetch-Site u Origin. Fuera de /login exige además cuerpo JSON (415).
// Debe registrarse antes que cualquier ruta.
func SameOrigin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}
		if !sameSite(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "CROSS_ORIGIN",
				Message: "Petición rechazada: origen distinto al de la consola",
			})
		}
		if c.Path() != access.RouteLogin && !jsonOrEmpty(c) {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{
				Code:    "UNSUPPORTED_MEDIA_TYPE",
				Message: "Se requiere Content-Type: application/json",
			})
		}
		return c.Next()
	}
}

func sameSite(c *fiber.Ctx) bool {
	switch c.Get("Sec-Fetch-Site") {
	case "", "same-origin", "none":
	default:
		return false
	}
	origin := c.Get(fiber.HeaderOrigin)
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false // incluye "null"
	}
	return strings.EqualFold(u.Host, c.Hostname())
}

// jsonOrEmpty sin Content-Type ni cuerpo (p. ej. POST /logout) o con JSON.
func jsonOrEmpty(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	if ct == "" {
		return len(c.Body()) == 0
	}
	return strings.HasPrefix(ct, fiber.MIMEApplicationJSON)
}
