package erpapi

import (
	"context"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
)

var _ ports.AuthGateway = (*AuthGateway)(nil)

const authPath = "/api/auth"

// AuthGateway endpoints /api/auth del backend.
type AuthGateway struct {
	c *Client
}

// NewAuthGateway construye el gateway de autenticación.
func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

// Login envía las credenciales y devuelve la respuesta del backend sin interpretar
// el token (la validación estructural la hace el caso de uso).
func (g *AuthGateway) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	body, err := g.c.Post(ctx, authPath+"/login", nil, dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	out := &dto.LoginResponse{}
	top, _ := body.(map[string]any)
	out.Message = Record(top).String("", "message")

	data, ok := top["data"].(map[string]any)
	if !ok {
		return out, nil
	}
	rec := Record(data)
	out.Data = &dto.LoginData{
		Token:          rec.String("", "token"),
		Type:           rec.String("", "type"),
		Rol:            rec.StringPtr("rol", "role"),
		Username:       rec.String("", "username"),
		ID:             rec.IntPtr("id"),
		Email:          rec.String("", "email"),
		NombreCompleto: rec.String("", "nombreCompleto"),
	}
	return out, nil
}

// Validate consulta /api/auth/validate con el bearer vigente y devuelve los datos
// del usuario que informa el backend.
func (g *AuthGateway) Validate(ctx context.Context) (map[string]any, error) {
	body, err := g.c.Post(ctx, authPath+"/validate", nil, nil)
	if err != nil {
		return nil, err
	}
	rec := ExtractOne(body)
	if rec == nil {
		return map[string]any{}, nil
	}
	return map[string]any(rec), nil
}

// Logout notifica el cierre de sesión al backend.
func (g *AuthGateway) Logout(ctx context.Context) error {
	_, err := g.c.Post(ctx, authPath+"/logout", nil, nil)
	return err
}
