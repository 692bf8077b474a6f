package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecoq/erp-admin/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", formatMoney(decimal.Zero))
	assert.Equal(t, "999.90", formatMoney(decimal.RequireFromString("999.9")))
	assert.Equal(t, "25,000.00", formatMoney(decimal.NewFromInt(25000)))
	assert.Equal(t, "1,234,567.50", formatMoney(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "-1,000.00", formatMoney(decimal.NewFromInt(-1000)))
}

func TestTotal_SumaSubtotalesSiFalta(t *testing.T) {
	p := &entity.Pedido{Detalles: []entity.DetallePedido{
		{Cantidad: 2, PrecioUnitario: decimal.NewFromInt(5)},
		{Cantidad: 1, PrecioUnitario: decimal.NewFromInt(3), Subtotal: decimal.NewFromInt(4)},
	}}
	assert.Equal(t, "14", total(p).String())

	p.Total = decimal.NewFromInt(100)
	assert.Equal(t, "100", total(p).String())
}

func TestGeneratePedidoPDF(t *testing.T) {
	obs := "Entregar por la tarde"
	p := &entity.Pedido{
		ID: 1, Numero: "WEB-1714979289000", Cliente: "Ana Pérez", Estado: "PENDIENTE",
		Fecha:         strPtr("2024-05-06T07:08:09"),
		Observaciones: &obs,
		Detalles: []entity.DetallePedido{
			{ProductoID: 4, ProductoNombre: "Jabón", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(5)},
			{ProductoID: 6, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(15)},
		},
	}
	raw, err := NewMarotoPDFGenerator("").GeneratePedidoPDF(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "debe ser un PDF")
}

func TestGeneratePedidoPDF_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator("x").GeneratePedidoPDF(context.Background(), nil)
	assert.Error(t, err)
}

func strPtr(s string) *string { return &s }
