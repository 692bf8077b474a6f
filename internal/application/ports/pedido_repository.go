package ports

import (
	"context"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// PedidoRepository puerto hacia el backend para pedidos. No hay borrado expuesto.
type PedidoRepository interface {
	List(ctx context.Context) ([]entity.Pedido, error)
	GetByID(ctx context.Context, id int64) (*entity.Pedido, error)
	Detalles(ctx context.Context, id int64) ([]entity.DetallePedido, error)
	Create(ctx context.Context, in dto.PedidoUpsert) (any, error)
	Update(ctx context.Context, id int64, in dto.PedidoUpsert) (any, error)
}
