package entity

import "github.com/shopspring/decimal"

// Estados de Pedido.
const (
	PedidoPendiente     = "PENDIENTE"
	PedidoConfirmado    = "CONFIRMADO"
	PedidoEnPreparacion = "EN_PREPARACION"
	PedidoEnviado       = "ENVIADO"
	PedidoEntregado     = "ENTREGADO"
	PedidoCancelado     = "CANCELADO"
)

// EstadosPedido estados válidos en orden de ciclo de vida.
var EstadosPedido = []string{
	PedidoPendiente, PedidoConfirmado, PedidoEnPreparacion,
	PedidoEnviado, PedidoEntregado, PedidoCancelado,
}

// Pedido vista normalizada de un pedido de venta.
type Pedido struct {
	ID                   int64           `json:"id"`
	Numero               string          `json:"numero"`
	Cliente              string          `json:"cliente"`
	ClienteRuc           *string         `json:"clienteRuc"`
	ClienteTelefono      *string         `json:"clienteTelefono"`
	ClienteDireccion     *string         `json:"clienteDireccion"`
	Fecha                *string         `json:"fecha"` // ISO, sin conversión de zona
	FechaEntregaEstimada *string         `json:"fechaEntregaEstimada"`
	Estado               string          `json:"estado"`
	Total                decimal.Decimal `json:"total"`
	Observaciones        *string         `json:"observaciones"`
	Items                *int64          `json:"items"` // suma de cantidades si el backend la calcula
	Detalles             []DetallePedido `json:"detalles"`
}

// DetallePedido línea de un pedido; el orden de las líneas se conserva.
type DetallePedido struct {
	ID             int64           `json:"id"`
	ProductoID     int64           `json:"productoId"`
	ProductoNombre string          `json:"productoNombre"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}
