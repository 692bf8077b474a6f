package ports

import (
	"context"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// ProductoRepository puerto hacia el backend para productos (DIP).
// Create/Update/Delete devuelven el cuerpo del backend sin transformar.
type ProductoRepository interface {
	List(ctx context.Context) ([]entity.Producto, error)
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	Create(ctx context.Context, in dto.ProductoUpsert) (any, error)
	Update(ctx context.Context, id int64, in dto.ProductoUpsert) (any, error)
	Delete(ctx context.Context, id int64) (any, error)
}
