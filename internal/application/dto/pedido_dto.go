package dto

import "github.com/shopspring/decimal"

// PedidoUpsert campos aceptados por POST/PUT /api/pedidos.
// Si NumeroPedido llega vacío al crear se genera un número temporal WEB-<ms>.
type PedidoUpsert struct {
	NumeroPedido         string          `json:"numeroPedido"`
	ClienteNombre        string          `json:"clienteNombre" validate:"required,max=200"`
	ClienteRuc           *string         `json:"clienteRuc"`
	ClienteTelefono      *string         `json:"clienteTelefono"`
	ClienteDireccion     *string         `json:"clienteDireccion"`
	FechaPedido          *string         `json:"fechaPedido"`
	FechaEntregaEstimada *string         `json:"fechaEntregaEstimada"`
	Estado               string          `json:"estado" validate:"omitempty,oneof=PENDIENTE CONFIRMADO EN_PREPARACION ENVIADO ENTREGADO CANCELADO"`
	Total                decimal.Decimal `json:"total"`
	Observaciones        *string         `json:"observaciones"`
	Detalles             []DetalleUpsert `json:"detalles,omitempty" validate:"dive"`
}

// DetalleUpsert línea de pedido al crear/editar: producto + cantidad.
type DetalleUpsert struct {
	ProductoID int64 `json:"productoId" validate:"required,gt=0"`
	Cantidad   int64 `json:"cantidad" validate:"gt=0"`
}
