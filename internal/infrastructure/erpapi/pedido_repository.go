package erpapi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain/entity"
	"github.com/lecoq/erp-admin/pkg/dates"
)

var _ ports.PedidoRepository = (*PedidoRepo)(nil)

const (
	pedidosPath = "/api/pedidos"

	// PlaceholderPrefix prefijo del número temporal mientras el backend no autonumera.
	PlaceholderPrefix = "WEB-"

	localDateTimeLayout = "2006-01-02T15:04:05"
)

// PedidoRepo implementación de PedidoRepository sobre /api/pedidos.
type PedidoRepo struct {
	c   *Client
	now func() time.Time
}

// NewPedidoRepository construye el módulo de pedidos.
func NewPedidoRepository(c *Client) *PedidoRepo {
	return &PedidoRepo{c: c, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (r *PedidoRepo) WithClock(now func() time.Time) *PedidoRepo {
	r.now = now
	return r
}

// List devuelve los pedidos normalizados.
func (r *PedidoRepo) List(ctx context.Context) ([]entity.Pedido, error) {
	body, err := r.c.Get(ctx, pedidosPath)
	if err != nil {
		return nil, err
	}
	recs := ExtractList(body)
	out := make([]entity.Pedido, 0, len(recs))
	for _, rec := range recs {
		out = append(out, MapPedido(rec))
	}
	return out, nil
}

// GetByID obtiene un pedido con sus detalles si el backend los incluye.
func (r *PedidoRepo) GetByID(ctx context.Context, id int64) (*entity.Pedido, error) {
	body, err := r.c.Get(ctx, fmt.Sprintf("%s/%d", pedidosPath, id))
	if err != nil {
		return nil, err
	}
	p := MapPedido(ExtractOne(body))
	return &p, nil
}

// Detalles obtiene las líneas de un pedido en el orden del backend.
func (r *PedidoRepo) Detalles(ctx context.Context, id int64) ([]entity.DetallePedido, error) {
	body, err := r.c.Get(ctx, fmt.Sprintf("%s/%d/detalles", pedidosPath, id))
	if err != nil {
		return nil, err
	}
	recs := ExtractList(body)
	out := make([]entity.DetallePedido, 0, len(recs))
	for _, rec := range recs {
		out = append(out, MapDetallePedido(rec))
	}
	return out, nil
}

// Create crea un pedido. Sin número se envía uno temporal WEB-<unix ms>; sin fecha,
// la actual; sin estado, PENDIENTE.
func (r *PedidoRepo) Create(ctx context.Context, in dto.PedidoUpsert) (any, error) {
	now := r.now()
	if in.NumeroPedido == "" {
		in.NumeroPedido = PlaceholderNumero(now)
	}
	if in.FechaPedido == nil || *in.FechaPedido == "" {
		f := now.Format(localDateTimeLayout)
		in.FechaPedido = &f
	}
	if in.Estado == "" {
		in.Estado = entity.PedidoPendiente
	}
	return r.c.Post(ctx, pedidosPath, nil, submittablePedido(in))
}

// Update actualiza un pedido; devuelve el cuerpo del backend.
func (r *PedidoRepo) Update(ctx context.Context, id int64, in dto.PedidoUpsert) (any, error) {
	return r.c.Put(ctx, fmt.Sprintf("%s/%d", pedidosPath, id), submittablePedido(in))
}

// PlaceholderNumero número temporal de pedido para el instante t.
func PlaceholderNumero(t time.Time) string {
	return PlaceholderPrefix + strconv.FormatInt(t.UnixMilli(), 10)
}

func submittablePedido(in dto.PedidoUpsert) dto.PedidoUpsert {
	in.FechaPedido = dates.ToSubmittableDateTime(in.FechaPedido)
	in.FechaEntregaEstimada = dates.ToSubmittableDateTime(in.FechaEntregaEstimada)
	return in
}

// MapPedido normaliza un registro crudo de pedido.
func MapPedido(rec Record) entity.Pedido {
	p := entity.Pedido{
		ID:                   rec.Int(0, "id", "pedidoId"),
		Numero:               rec.String("-", "numeroPedido", "numero"),
		Cliente:              rec.String("-", "clienteNombre", "cliente"),
		ClienteRuc:           rec.StringPtr("clienteRuc", "cliente_ruc"),
		ClienteTelefono:      rec.StringPtr("clienteTelefono", "cliente_telefono"),
		ClienteDireccion:     rec.StringPtr("clienteDireccion", "cliente_direccion"),
		Fecha:                rec.StringPtr("fechaPedido", "fecha", "fecha_pedido"),
		FechaEntregaEstimada: rec.StringPtr("fechaEntregaEstimada", "fecha_entrega_estimada"),
		Estado:               rec.String("-", "estado"),
		Total:                rec.Decimal(decimal.Zero, "total", "montoTotal"),
		Observaciones:        rec.StringPtr("observaciones"),
		Items:                rec.IntPtr("items"),
		Detalles:             []entity.DetallePedido{},
	}
	for _, d := range rec.Records("detalles", "items") {
		p.Detalles = append(p.Detalles, MapDetallePedido(d))
	}
	return p
}

// MapDetallePedido normaliza una línea de pedido.
func MapDetallePedido(rec Record) entity.DetallePedido {
	return entity.DetallePedido{
		ID:             rec.Int(0, "id"),
		ProductoID:     rec.Int(0, "productoId", "producto.id", "producto_id"),
		ProductoNombre: rec.String("-", "productoNombre", "producto.nombre"),
		Cantidad:       rec.Int(0, "cantidad"),
		PrecioUnitario: rec.Decimal(decimal.Zero, "precioUnitario", "precio_unitario"),
		Subtotal:       rec.Decimal(decimal.Zero, "subtotal"),
	}
}
