// Package access decide qué puede ver cada sesión: predicados puros sobre el estado
// de sesión, la tabla de rutas por rol y el menú de cada rol.
package access

import (
	"strings"

	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// Rutas de la consola.
const (
	RouteLogin          = "/login"
	RouteHome           = "/"
	RouteProductos      = "/productos"
	RoutePedidos        = "/pedidos"
	RouteDistribuciones = "/distribuciones"
	RouteMaquilados     = "/maquilados"
	RouteUsuarios       = "/usuarios"
)

// Authenticated true si hay token.
func Authenticated(s entity.Session) bool {
	return s.Token != ""
}

// Allowed true si el rol de la sesión está entre roles. Sin rol nunca pasa.
func Allowed(s entity.Session, roles ...string) bool {
	if s.Role == "" {
		return false
	}
	for _, r := range roles {
		if r == s.Role {
			return true
		}
	}
	return false
}

// routeRoles roles por sección; nil = cualquier sesión autenticada.
var routeRoles = map[string][]string{
	RouteHome:           nil,
	RouteProductos:      nil,
	RoutePedidos:        {entity.RoleAdmin, entity.RoleVentas},
	RouteDistribuciones: {entity.RoleAdmin, entity.RoleVentas},
	RouteMaquilados:     {entity.RoleAdmin, entity.RoleMaquila},
	RouteUsuarios:       {entity.RoleAdmin},
}

// RolesFor roles con acceso a la sección de path ("/pedidos/3" -> "/pedidos").
// ok es false si la ruta no está en la tabla.
func RolesFor(path string) (roles []string, ok bool) {
	roles, ok = routeRoles[Section(path)]
	return roles, ok
}

// Section primer segmento de path, con barra inicial.
func Section(path string) string {
	p := strings.Trim(path, "/")
	if p == "" {
		return RouteHome
	}
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return "/" + p
}

// Decision resultado de evaluar una ruta.
type Decision int

const (
	Allow            Decision = iota
	RedirectLogin             // sin sesión
	RedirectHome              // rol sin acceso
)

// Check evalúa el acceso de s a path. Rutas fuera de la tabla solo exigen sesión.
func Check(s entity.Session, path string) Decision {
	if !Authenticated(s) {
		return RedirectLogin
	}
	roles, _ := RolesFor(path)
	if roles != nil && !Allowed(s, roles...) {
		return RedirectHome
	}
	return Allow
}

// RoleCanSee true si role tiene acceso a la sección de path (sin considerar el token).
func RoleCanSee(role, path string) bool {
	roles, _ := RolesFor(path)
	if roles == nil {
		return true
	}
	return Allowed(entity.Session{Role: role}, roles...)
}
