package erpapi_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecoq/erp-admin/internal/infrastructure/erpapi"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	v, err := erpapi.Decode(strings.NewReader(raw))
	require.NoError(t, err)
	return v
}

func TestExtractList_Envolturas(t *testing.T) {
	cases := map[string]string{
		"arreglo":  `[{"id":1},{"id":2}]`,
		"data":     `{"message":"ok","data":[{"id":1},{"id":2}]}`,
		"content":  `{"content":[{"id":1},{"id":2}],"totalElements":2}`,
		"prioriza": `{"data":[{"id":1},{"id":2}],"content":[{"id":9}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			recs := erpapi.ExtractList(decode(t, raw))
			require.Len(t, recs, 2)
			assert.Equal(t, int64(1), recs[0].Int(0, "id"))
			assert.Equal(t, int64(2), recs[1].Int(0, "id"))
		})
	}
}

func TestExtractList_FormaDesconocidaDevuelveVacio(t *testing.T) {
	for _, raw := range []string{`{"data":{"id":1}}`, `"texto"`, `42`, `null`, ``} {
		recs := erpapi.ExtractList(decode(t, raw))
		assert.NotNil(t, recs)
		assert.Empty(t, recs, raw)
	}
}

func TestExtractOne(t *testing.T) {
	rec := erpapi.ExtractOne(decode(t, `{"message":"ok","data":{"id":7}}`))
	assert.Equal(t, int64(7), rec.Int(0, "id"))

	rec = erpapi.ExtractOne(decode(t, `{"id":8,"nombre":"Jabón"}`))
	assert.Equal(t, int64(8), rec.Int(0, "id"))

	// data no-objeto: se usa el propio cuerpo
	rec = erpapi.ExtractOne(decode(t, `{"id":9,"data":[1,2]}`))
	assert.Equal(t, int64(9), rec.Int(0, "id"))

	assert.Nil(t, erpapi.ExtractOne(decode(t, `null`)))
	assert.Nil(t, erpapi.ExtractOne(decode(t, `[{"id":1}]`)))
}

func TestRecord_ClavesAlternativasYDefaults(t *testing.T) {
	rec := erpapi.ExtractOne(decode(t, `{
		"productoId": 12,
		"nombre": null,
		"nombreProducto": "Crema",
		"stockDisponible": "7",
		"precioVenta": 12.50,
		"pedido": {"id": 44},
		"raro": {"x": 1}
	}`))

	assert.Equal(t, int64(12), rec.Int(0, "id", "productoId"))
	assert.Equal(t, "Crema", rec.String("-", "nombre", "nombreProducto"), "null no cuenta como presente")
	assert.Equal(t, int64(7), rec.Int(0, "stock", "stockDisponible"))
	assert.True(t, decimal.RequireFromString("12.5").Equal(rec.Decimal(decimal.Zero, "precioVenta")))
	assert.Equal(t, int64(44), rec.Int(0, "pedido.id"))

	// primer valor presente no convertible -> default, sin seguir probando
	assert.Equal(t, int64(0), rec.Int(0, "raro", "productoId"))
	assert.Equal(t, "-", rec.String("-", "raro"))
	assert.Nil(t, rec.IntPtr("noExiste"))
	assert.False(t, rec.NullDecimal("noExiste").Valid)
}

func TestRecord_Estado(t *testing.T) {
	assert.Equal(t, "INACTIVO", erpapi.Record{"activo": false}.Estado())
	assert.Equal(t, "ACTIVO", erpapi.Record{"activo": true}.Estado())
	assert.Equal(t, "ACTIVO", erpapi.Record{}.Estado())
	assert.Equal(t, "SUSPENDIDO", erpapi.Record{"estado": "SUSPENDIDO", "activo": false}.Estado())
}

func TestDecode_ConservaPrecision(t *testing.T) {
	rec := erpapi.ExtractOne(decode(t, `{"id":9007199254740993,"total":1234567.891}`))
	assert.Equal(t, int64(9007199254740993), rec.Int(0, "id"))
	assert.Equal(t, "1234567.891", rec.Decimal(decimal.Zero, "total").String())
}
