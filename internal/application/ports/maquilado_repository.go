package ports

import (
	"context"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// MaquiladoRepository puerto hacia el backend para órdenes de maquila.
type MaquiladoRepository interface {
	List(ctx context.Context) ([]entity.Maquilado, error)
	GetByID(ctx context.Context, id int64) (*entity.Maquilado, error)
	// FindByNumero devuelve (nil, nil) cuando el backend responde sin cuerpo.
	FindByNumero(ctx context.Context, numero string) (*entity.Maquilado, error)
	ListByEstado(ctx context.Context, estado string) ([]entity.Maquilado, error)
	Create(ctx context.Context, in dto.MaquiladoUpsert) (any, error)
	Update(ctx context.Context, id int64, in dto.MaquiladoUpsert) (any, error)
	Delete(ctx context.Context, id int64) (any, error)
}
