package erpapi

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

var _ ports.ProductoRepository = (*ProductoRepo)(nil)

const productosPath = "/api/productos"

// ProductoRepo implementación de ProductoRepository sobre /api/productos.
type ProductoRepo struct {
	c *Client
}

// NewProductoRepository construye el módulo de productos.
func NewProductoRepository(c *Client) *ProductoRepo {
	return &ProductoRepo{c: c}
}

// List devuelve todos los productos normalizados.
func (r *ProductoRepo) List(ctx context.Context) ([]entity.Producto, error) {
	body, err := r.c.Get(ctx, productosPath)
	if err != nil {
		return nil, err
	}
	recs := ExtractList(body)
	out := make([]entity.Producto, 0, len(recs))
	for _, rec := range recs {
		out = append(out, MapProducto(rec))
	}
	return out, nil
}

// GetByID obtiene un producto.
func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	body, err := r.c.Get(ctx, fmt.Sprintf("%s/%d", productosPath, id))
	if err != nil {
		return nil, err
	}
	p := MapProducto(ExtractOne(body))
	return &p, nil
}

// Create crea un producto; devuelve el cuerpo del backend.
func (r *ProductoRepo) Create(ctx context.Context, in dto.ProductoUpsert) (any, error) {
	return r.c.Post(ctx, productosPath, nil, in)
}

// Update actualiza un producto; devuelve el cuerpo del backend.
func (r *ProductoRepo) Update(ctx context.Context, id int64, in dto.ProductoUpsert) (any, error) {
	return r.c.Put(ctx, fmt.Sprintf("%s/%d", productosPath, id), in)
}

// Delete elimina un producto; devuelve el cuerpo del backend.
func (r *ProductoRepo) Delete(ctx context.Context, id int64) (any, error) {
	return r.c.Delete(ctx, fmt.Sprintf("%s/%d", productosPath, id))
}

// MapProducto normaliza un registro crudo de producto.
func MapProducto(rec Record) entity.Producto {
	return entity.Producto{
		ID:           rec.Int(0, "id", "productoId", "codigo"),
		Nombre:       rec.String("-", "nombre", "nombreProducto", "descripcion"),
		Descripcion:  rec.StringPtr("descripcion"),
		Presentacion: rec.StringPtr("presentacion"),
		Stock:        rec.Int(0, "stock", "stockDisponible", "cantidad"),
		Precio:       rec.Decimal(decimal.Zero, "precio", "precioUnitario", "precioVenta"),
		Estado:       rec.Estado(),
	}
}
