package entity

import "encoding/json"

// Session estado de la sesión del proceso: token bearer opaco, rol y datos opcionales del usuario.
type Session struct {
	Token string          `json:"token,omitempty"`
	Role  string          `json:"role,omitempty"`
	User  json.RawMessage `json:"user,omitempty"`
}

// Authenticated indica si hay token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// SessionUser datos del usuario autenticado tal como los devuelve el login.
type SessionUser struct {
	ID             int64  `json:"id,omitempty"`
	Username       string `json:"username,omitempty"`
	NombreCompleto string `json:"nombreCompleto,omitempty"`
	Email          string `json:"email,omitempty"`
}
