package erpapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

var _ ports.MaquiladoRepository = (*MaquiladoRepo)(nil)

const maquiladosPath = "/api/maquilados"

// MaquiladoRepo implementación de MaquiladoRepository sobre /api/maquilados.
type MaquiladoRepo struct {
	c *Client
}

// NewMaquiladoRepository construye el módulo de maquilados.
func NewMaquiladoRepository(c *Client) *MaquiladoRepo {
	return &MaquiladoRepo{c: c}
}

// List devuelve las órdenes de maquila normalizadas.
func (r *MaquiladoRepo) List(ctx context.Context) ([]entity.Maquilado, error) {
	return r.list(ctx, maquiladosPath)
}

// ListByEstado filtra en el backend por estado.
func (r *MaquiladoRepo) ListByEstado(ctx context.Context, estado string) ([]entity.Maquilado, error) {
	return r.list(ctx, maquiladosPath+"/estado/"+url.PathEscape(estado))
}

func (r *MaquiladoRepo) list(ctx context.Context, path string) ([]entity.Maquilado, error) {
	body, err := r.c.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	recs := ExtractList(body)
	out := make([]entity.Maquilado, 0, len(recs))
	for _, rec := range recs {
		out = append(out, MapMaquilado(rec))
	}
	return out, nil
}

// GetByID obtiene una orden de maquila.
func (r *MaquiladoRepo) GetByID(ctx context.Context, id int64) (*entity.Maquilado, error) {
	body, err := r.c.Get(ctx, fmt.Sprintf("%s/%d", maquiladosPath, id))
	if err != nil {
		return nil, err
	}
	m := MapMaquilado(ExtractOne(body))
	return &m, nil
}

// FindByNumero busca por número de orden; (nil, nil) si el backend no devuelve registro.
func (r *MaquiladoRepo) FindByNumero(ctx context.Context, numero string) (*entity.Maquilado, error) {
	body, err := r.c.Get(ctx, maquiladosPath+"/numero/"+url.PathEscape(numero))
	if err != nil {
		return nil, err
	}
	rec := ExtractOne(body)
	if rec == nil {
		return nil, nil
	}
	m := MapMaquilado(rec)
	return &m, nil
}

// Create crea una orden; devuelve el cuerpo del backend.
func (r *MaquiladoRepo) Create(ctx context.Context, in dto.MaquiladoUpsert) (any, error) {
	return r.c.Post(ctx, maquiladosPath, nil, in)
}

// Update actualiza una orden; devuelve el cuerpo del backend.
func (r *MaquiladoRepo) Update(ctx context.Context, id int64, in dto.MaquiladoUpsert) (any, error) {
	return r.c.Put(ctx, fmt.Sprintf("%s/%d", maquiladosPath, id), in)
}

// Delete elimina una orden; devuelve el cuerpo del backend.
func (r *MaquiladoRepo) Delete(ctx context.Context, id int64) (any, error) {
	return r.c.Delete(ctx, fmt.Sprintf("%s/%d", maquiladosPath, id))
}

// MapMaquilado normaliza un registro crudo de maquilado.
func MapMaquilado(rec Record) entity.Maquilado {
	return entity.Maquilado{
		ID:                   rec.Int(0, "id", "maquiladoId", "codigo"),
		NumeroOrden:          rec.String("-", "numeroOrden", "orden"),
		ProveedorNombre:      rec.String("-", "proveedorNombre", "proveedor"),
		ProveedorRuc:         rec.StringPtr("proveedorRuc", "ruc"),
		ProveedorContacto:    rec.StringPtr("proveedorContacto", "contacto"),
		FechaOrden:           rec.StringPtr("fechaOrden", "fecha"),
		FechaEntregaEstimada: rec.StringPtr("fechaEntregaEstimada", "entregaEstimada"),
		FechaEntregaReal:     rec.StringPtr("fechaEntregaReal", "entregaReal"),
		Estado:               rec.String("-", "estado"),
		CostoTotal:           rec.NullDecimal("costoTotal", "total"),
		Observaciones:        rec.StringPtr("observaciones"),
	}
}
