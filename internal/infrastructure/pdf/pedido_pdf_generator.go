// Package pdf genera la hoja imprimible de un pedido de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del sistema   │  N° Pedido + Fecha + Estado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + RUC / Tel / Dirección                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + Observaciones                                       │
//	│  QR con el número de pedido                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain/entity"
	"github.com/lecoq/erp-admin/pkg/dates"
)

var _ ports.PedidoPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// currency prefijo de montos.
const currency = "S/ "

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.PedidoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	title string
}

// NewMarotoPDFGenerator construye el generador; title encabeza cada hoja.
func NewMarotoPDFGenerator(title string) *MarotoPDFGenerator {
	if title == "" {
		title = "ERP Admin"
	}
	return &MarotoPDFGenerator{title: title}
}

// GeneratePedidoPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePedidoPDF(_ context.Context, p *entity.Pedido) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("pdf: pedido nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido "+p.Numero, true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(p.Detalles)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total(p)))
	if p.Observaciones != nil && strings.TrimSpace(*p.Observaciones) != "" {
		m.AddRows(observacionesRow(*p.Observaciones))
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(qrRow(p.Numero))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del sistema (izq) y N° pedido + fecha + estado (der).
func (g *MarotoPDFGenerator) headerRow(p *entity.Pedido) core.Row {
	fecha := nonEmpty(dates.ToCalendarDate(p.Fecha), "-")
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Entrega estimada: "+nonEmpty(dates.ToCalendarDate(p.FechaEntregaEstimada), "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PEDIDO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(p.Numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha+"   |   Estado: "+p.Estado, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del cliente.
func clienteRow(p *entity.Pedido) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Cliente, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RUC: %s   |   Tel: %s   |   Dirección: %s",
				nonEmptyPtr(p.ClienteRuc, "-"),
				nonEmptyPtr(p.ClienteTelefono, "-"),
				nonEmptyPtr(p.ClienteDireccion, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea, en el orden del pedido.
func tableDetailRows(details []entity.DetallePedido) []core.Row {
	if len(details) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin líneas registradas.", props.Text{Size: 8, Top: 1, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(details))
	for _, d := range details {
		nombre := d.ProductoNombre
		if nombre == "" || nombre == "-" {
			nombre = fmt.Sprintf("Producto %d", d.ProductoID)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", d.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				currency+formatMoney(d.PrecioUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				currency+formatMoney(subtotal(d)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total alineado a la derecha.
func totalRow(t decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(currency+formatMoney(t), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func observacionesRow(obs string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Observaciones", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
		text.New(obs, props.Text{Size: 8, Top: 6, Color: colorGray}),
	))
}

// qrRow: QR con el número de pedido para ubicarlo desde almacén.
func qrRow(numero string) core.Row {
	return row.New(35).Add(
		col.New(3).Add(code.NewQr("PEDIDO:"+numero, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(text.New("Escanea el código para ubicar el pedido "+numero+".", props.Text{
			Size: 8, Top: 4, Left: 3, Color: colorGray,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// subtotal usa el del backend y, si no vino, cantidad × precio.
func subtotal(d entity.DetallePedido) decimal.Decimal {
	if !d.Subtotal.IsZero() {
		return d.Subtotal
	}
	return d.PrecioUnitario.Mul(decimal.NewFromInt(d.Cantidad))
}

// total usa el del pedido y, si es cero, la suma de subtotales.
func total(p *entity.Pedido) decimal.Decimal {
	if !p.Total.IsZero() {
		return p.Total
	}
	sum := decimal.Zero
	for _, d := range p.Detalles {
		sum = sum.Add(subtotal(d))
	}
	return sum
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func nonEmptyPtr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return nonEmpty(strings.TrimSpace(*s), fallback)
}

// formatMoney monto con dos decimales y comas de miles.
// Ej: 25000 → "25,000.00", 1234567.5 → "1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	out := string(buf) + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}
