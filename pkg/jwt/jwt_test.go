package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/lecoq/erp-admin/pkg/jwt"
)

func TestWellFormed(t *testing.T) {
	assert.True(t, pkgjwt.WellFormed("a.b.c"))
	assert.False(t, pkgjwt.WellFormed(""), "vacío no es un JWT")
	assert.False(t, pkgjwt.WellFormed("abc"), "cero puntos")
	assert.False(t, pkgjwt.WellFormed("a.b"), "dos segmentos")
	assert.False(t, pkgjwt.WellFormed("a.b.c.d"), "cuatro segmentos")
}

func TestStripBearer(t *testing.T) {
	assert.Equal(t, "a.b.c", pkgjwt.StripBearer("Bearer a.b.c"))
	assert.Equal(t, "a.b.c", pkgjwt.StripBearer("a.b.c"))
	assert.Equal(t, "", pkgjwt.StripBearer(""))
}

func TestInspect_LeeClaimsSinVerificarFirma(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub": "admin",
		"rol": "VENTAS",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("clave-que-el-cliente-no-conoce"))
	require.NoError(t, err)

	info, err := pkgjwt.Inspect(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", info.Subject)
	assert.Equal(t, "VENTAS", info.Role)
	assert.True(t, exp.Equal(info.ExpiresAt))
	assert.False(t, info.Expired(time.Now()))
	assert.True(t, info.Expired(exp.Add(time.Minute)))
}

func TestInspect_TokenMalFormado(t *testing.T) {
	_, err := pkgjwt.Inspect("no-es-jwt")
	assert.Error(t, err)

	_, err = pkgjwt.Inspect("a.b.c")
	assert.Error(t, err, "segmentos que no son base64 deben fallar al decodificar")
}
