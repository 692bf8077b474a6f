package dto

import (
	"encoding/json"
	"time"
)

// SessionResponse estado de sesión de la consola. Los claims del JWT se leen sin
// verificar la firma, solo para mostrar.
type SessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	Role          string          `json:"role,omitempty"`
	User          json.RawMessage `json:"user,omitempty" swaggertype:"object"`
	Subject       string          `json:"subject,omitempty"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
	Expired       bool            `json:"expired"`
}

// LoginResultResponse respuesta de POST /login en la consola (el token no se expone).
type LoginResultResponse struct {
	Role string         `json:"role"`
	User any            `json:"user,omitempty"`
	Menu []MenuItemView `json:"menu"`
}

// MenuItemView entrada del menú del rol.
type MenuItemView struct {
	To    string `json:"to"`
	Label string `json:"label"`
}

// MenuResponse menú de la sesión actual.
type MenuResponse struct {
	Role  string         `json:"role"`
	Items []MenuItemView `json:"items"`
}
