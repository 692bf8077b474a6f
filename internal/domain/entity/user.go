package entity

// Roles válidos para Usuario.
const (
	RoleAdmin   = "ADMIN"
	RoleVentas  = "VENTAS"
	RoleMaquila = "MAQUILA"
)

// Roles lista ordenada de roles conocidos.
var Roles = []string{RoleAdmin, RoleVentas, RoleMaquila}

// IsRole indica si r es uno de los roles conocidos.
func IsRole(r string) bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Usuario representa un usuario del ERP tal como lo muestra el cliente (sin password).
type Usuario struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Rol      string  `json:"rol"`    // ADMIN, VENTAS, MAQUILA
	Estado   string  `json:"estado"` // ACTIVO, INACTIVO
}
