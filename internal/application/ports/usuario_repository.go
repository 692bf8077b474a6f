package ports

import (
	"context"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// UsuarioRepository puerto hacia el backend para usuarios (solo listar y crear).
type UsuarioRepository interface {
	List(ctx context.Context) ([]entity.Usuario, error)
	Create(ctx context.Context, in dto.UsuarioCreate) (any, error)
}
