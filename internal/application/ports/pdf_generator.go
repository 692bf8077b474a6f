package ports

import (
	"context"

	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// PedidoPDFGenerator genera la representación imprimible de un pedido.
type PedidoPDFGenerator interface {
	GeneratePedidoPDF(ctx context.Context, pedido *entity.Pedido) ([]byte, error)
}
