package erpapi

import (
	"context"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

var _ ports.UsuarioRepository = (*UsuarioRepo)(nil)

const usuariosPath = "/api/usuarios"

// UsuarioRepo implementación de UsuarioRepository sobre /api/usuarios.
type UsuarioRepo struct {
	c *Client
}

// NewUsuarioRepository construye el módulo de usuarios.
func NewUsuarioRepository(c *Client) *UsuarioRepo {
	return &UsuarioRepo{c: c}
}

// List devuelve los usuarios normalizados.
func (r *UsuarioRepo) List(ctx context.Context) ([]entity.Usuario, error) {
	body, err := r.c.Get(ctx, usuariosPath)
	if err != nil {
		return nil, err
	}
	recs := ExtractList(body)
	out := make([]entity.Usuario, 0, len(recs))
	for _, rec := range recs {
		out = append(out, MapUsuario(rec))
	}
	return out, nil
}

// Create crea un usuario; devuelve el cuerpo del backend.
func (r *UsuarioRepo) Create(ctx context.Context, in dto.UsuarioCreate) (any, error) {
	return r.c.Post(ctx, usuariosPath, nil, in)
}

// MapUsuario normaliza un registro crudo de usuario. Sin rol se asume VENTAS.
func MapUsuario(rec Record) entity.Usuario {
	return entity.Usuario{
		ID:       rec.Int(0, "id", "usuarioId"),
		Username: rec.String("-", "username", "usuario"),
		Email:    rec.StringPtr("email", "correo"),
		Rol:      rec.String(entity.RoleVentas, "rol", "role"),
		Estado:   rec.Estado(),
	}
}
