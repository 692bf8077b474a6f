package usecase

import (
	"context"
	"strings"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// PedidoUseCase pedidos de venta: listado, detalle, alta y edición. No hay borrado.
type PedidoUseCase struct {
	repo ports.PedidoRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(repo ports.PedidoRepository) *PedidoUseCase {
	return &PedidoUseCase{repo: repo}
}

// List pedidos con búsqueda y paginación locales.
func (uc *PedidoUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.Pedido], error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	page := Paginate(Filter(items, q.Q, pedidoSearchFields), q.Page)
	return &page, nil
}

// GetByID pedido con sus líneas. Si el pedido llega sin líneas se piden a
// /detalles; un fallo ahí no invalida el pedido.
func (uc *PedidoUseCase) GetByID(ctx context.Context, id int64) (*entity.Pedido, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if len(p.Detalles) == 0 {
		if det, err := uc.repo.Detalles(ctx, id); err == nil && det != nil {
			p.Detalles = det
		}
	}
	return p, nil
}

// Detalles líneas del pedido.
func (uc *PedidoUseCase) Detalles(ctx context.Context, id int64) ([]entity.DetallePedido, error) {
	return uc.repo.Detalles(ctx, id)
}

// Create valida y crea un pedido.
func (uc *PedidoUseCase) Create(ctx context.Context, in dto.PedidoUpsert) (any, error) {
	in = normalizePedido(in)
	if err := validatePedido(in); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in)
}

// Update valida y actualiza un pedido.
func (uc *PedidoUseCase) Update(ctx context.Context, id int64, in dto.PedidoUpsert) (any, error) {
	in = normalizePedido(in)
	if err := validatePedido(in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in)
}

func normalizePedido(in dto.PedidoUpsert) dto.PedidoUpsert {
	in.NumeroPedido = strings.TrimSpace(in.NumeroPedido)
	in.ClienteNombre = strings.TrimSpace(in.ClienteNombre)
	in.Estado = strings.ToUpper(strings.TrimSpace(in.Estado))
	return in
}

func validatePedido(in dto.PedidoUpsert) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.Total.IsNegative() {
		return domain.NewValidationError("total", "El total no puede ser negativo.")
	}
	return nil
}

func pedidoSearchFields(p entity.Pedido) []string {
	return []string{p.Cliente, p.Estado, p.Numero, itoa(p.ID)}
}
