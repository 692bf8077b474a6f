package entity

import "github.com/shopspring/decimal"

// Estados de Producto (derivados del booleano activo cuando el backend no envía estado).
const (
	EstadoActivo   = "ACTIVO"
	EstadoInactivo = "INACTIVO"
)

// Umbrales de stock usados para clasificar un producto en los listados.
const (
	StockBajoMax  = 5
	StockMedioMax = 20
)

// StockLevel clasificación visual del stock.
type StockLevel string

const (
	StockBajo  StockLevel = "BAJO"
	StockMedio StockLevel = "MEDIO"
	StockAlto  StockLevel = "ALTO"
)

// Producto vista normalizada de un producto del catálogo. El ID siempre lo asigna el backend.
type Producto struct {
	ID           int64           `json:"id"`
	Nombre       string          `json:"nombre"`
	Descripcion  *string         `json:"descripcion"`
	Presentacion *string         `json:"presentacion"`
	Stock        int64           `json:"stock"`
	Precio       decimal.Decimal `json:"precio"`
	Estado       string          `json:"estado"` // ACTIVO | INACTIVO
}

// StockLevel clasifica el stock: BAJO (<=5), MEDIO (<=20), ALTO (>20).
func (p Producto) StockLevel() StockLevel {
	return ClassifyStock(p.Stock)
}

// ClassifyStock aplica los umbrales de stock a una cantidad.
func ClassifyStock(stock int64) StockLevel {
	switch {
	case stock <= StockBajoMax:
		return StockBajo
	case stock <= StockMedioMax:
		return StockMedio
	default:
		return StockAlto
	}
}

// Activo indica si el producto está activo.
func (p Producto) Activo() bool {
	return p.Estado != EstadoInactivo
}
