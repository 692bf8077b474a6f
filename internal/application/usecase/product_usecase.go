package usecase

import (
	"context"
	"strings"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// ProductoUseCase catálogo de productos: listado con búsqueda local y CRUD validado.
type ProductoUseCase struct {
	repo ports.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo ports.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// List trae el catálogo completo y aplica búsqueda y paginación en el cliente.
func (uc *ProductoUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.Producto], error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := Filter(items, q.Q, productoSearchFields)
	page := Paginate(filtered, q.Page)
	return &page, nil
}

// LowStock productos en nivel BAJO, en el orden del backend.
func (uc *ProductoUseCase) LowStock(ctx context.Context) ([]entity.Producto, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lowStock(items), nil
}

// GetByID obtiene un producto.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	return uc.repo.GetByID(ctx, id)
}

// Create valida y crea un producto.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.ProductoUpsert) (any, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if err := validateProducto(in); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in)
}

// Update valida y actualiza un producto.
func (uc *ProductoUseCase) Update(ctx context.Context, id int64, in dto.ProductoUpsert) (any, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if err := validateProducto(in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in)
}

// Delete elimina un producto.
func (uc *ProductoUseCase) Delete(ctx context.Context, id int64) (any, error) {
	return uc.repo.Delete(ctx, id)
}

func validateProducto(in dto.ProductoUpsert) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.Precio.IsNegative() {
		return domain.NewValidationError("precio", "El precio no puede ser negativo.")
	}
	return nil
}

func productoSearchFields(p entity.Producto) []string {
	return []string{p.Nombre, p.Estado, itoa(p.ID), p.Precio.String()}
}

func lowStock(items []entity.Producto) []entity.Producto {
	out := make([]entity.Producto, 0)
	for _, p := range items {
		if p.StockLevel() == entity.StockBajo {
			out = append(out, p)
		}
	}
	return out
}
