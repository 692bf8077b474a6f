package http_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Login / logout / sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitosoGuardaSesionYDevuelveMenu(t *testing.T) {
	tok := testToken(t)
	b := newBackend(t).on(http.MethodPost, "/api/auth/login", 200, fmt.Sprintf(
		`{"message":"Login exitoso","data":{"token":"Bearer %s","type":"Bearer","rol":"VENTAS","username":"vane","id":4}}`, tok))
	app := newConsole(t, b, "")

	resp := do(t, app, http.MethodPost, "/login", `{"username":"vane","password":"secreta"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode(t, resp)
	assert.Equal(t, "VENTAS", out["role"])
	assert.NotContains(t, out, "token")
	menu := out["menu"].([]any)
	require.Len(t, menu, 3)
	assert.Equal(t, "/pedidos", menu[1].(map[string]any)["to"])

	sess := decode(t, do(t, app, http.MethodGet, "/session", ""))
	assert.Equal(t, true, sess["authenticated"])
	assert.Equal(t, "VENTAS", sess["role"])
	assert.Equal(t, "admin", sess["subject"])
	assert.Equal(t, false, sess["expired"])
	assert.Equal(t, "vane", sess["user"].(map[string]any)["username"])

	// con sesión la sección de pedidos ya no redirige
	b.on(http.MethodGet, "/api/pedidos", 200, `[]`)
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/pedidos", "").StatusCode)
}

func TestLogin_FormularioURLEncoded(t *testing.T) {
	b := newBackend(t).on(http.MethodPost, "/api/auth/login", 200,
		fmt.Sprintf(`{"data":{"token":"%s","rol":"ADMIN"}}`, testToken(t)))
	app := newConsole(t, b, "")

	form := url.Values{"username": {"root"}, "password": {"x"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ADMIN", decode(t, resp)["role"])
}

func TestLogin_SinRolAsumeAdmin(t *testing.T) {
	b := newBackend(t).on(http.MethodPost, "/api/auth/login", 200,
		fmt.Sprintf(`{"data":{"token":"%s"}}`, testToken(t)))
	app := newConsole(t, b, "")

	out := decode(t, do(t, app, http.MethodPost, "/login", `{"username":"a","password":"b"}`))
	assert.Equal(t, "ADMIN", out["role"])
	assert.Len(t, out["menu"], 6)
}

func TestLogin_JWTInvalidoNoCreaSesion(t *testing.T) {
	b := newBackend(t).on(http.MethodPost, "/api/auth/login", 200, `{"data":{"token":"no-es-un-jwt","rol":"ADMIN"}}`)
	app := newConsole(t, b, "")

	resp := do(t, app, http.MethodPost, "/login", `{"username":"a","password":"b"}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	out := decode(t, resp)
	assert.Equal(t, "INVALID_JWT", out["code"])
	assert.Equal(t, "El backend no retornó un JWT válido.", out["message"])

	sess := decode(t, do(t, app, http.MethodGet, "/session", ""))
	assert.Equal(t, false, sess["authenticated"])
}

func TestLogin_CredencialesRechazadas(t *testing.T) {
	b := newBackend(t).on(http.MethodPost, "/api/auth/login", http.StatusUnauthorized, `{"message":"Credenciales inválidas"}`)
	app := newConsole(t, b, "")

	resp := do(t, app, http.MethodPost, "/login", `{"username":"a","password":"b"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Credenciales inválidas", decode(t, resp)["message"])
}

func TestLogin_CamposVaciosNoLlamanAlBackend(t *testing.T) {
	b := newBackend(t)
	app := newConsole(t, b, "")

	resp := do(t, app, http.MethodPost, "/login", `{"username":"  ","password":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, b.count(http.MethodPost, "/api/auth/login"))
}

func TestLoginPage_ConSesionRedirigeAlInicio(t *testing.T) {
	resp := do(t, newConsole(t, newBackend(t), "ADMIN"), http.MethodGet, "/login", "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp = do(t, newConsole(t, newBackend(t), ""), http.MethodGet, "/login", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `name="password"`)
}

func TestLogout_LimpiaSesionAunqueFalleElBackend(t *testing.T) {
	b := newBackend(t).on(http.MethodPost, "/api/auth/logout", http.StatusInternalServerError, `{}`)
	app := newConsole(t, b, "ADMIN")

	resp := do(t, app, http.MethodPost, "/logout", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, b.count(http.MethodPost, "/api/auth/logout"))

	resp = do(t, app, http.MethodGet, "/productos", "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestValidate_SinSesionEs401(t *testing.T) {
	b := newBackend(t)
	app := newConsole(t, b, "")

	resp := do(t, app, http.MethodPost, "/session/validate", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "NO_SESSION", decode(t, resp)["code"])
	assert.Zero(t, b.count(http.MethodPost, "/api/auth/validate"))
}

func TestValidate_ConSesionConsultaAlBackend(t *testing.T) {
	b := newBackend(t).on(http.MethodPost, "/api/auth/validate", 200, `{"data":{"valid":true,"username":"admin"}}`)
	app := newConsole(t, b, "ADMIN")

	out := decode(t, do(t, app, http.MethodPost, "/session/validate", ""))
	assert.Equal(t, true, out["valid"])
}

func TestMenu_SegunRol(t *testing.T) {
	out := decode(t, do(t, newConsole(t, newBackend(t), "MAQUILA"), http.MethodGet, "/menu", ""))
	assert.Equal(t, "MAQUILA", out["role"])
	items := out["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "/maquilados", items[1].(map[string]any)["to"])
}
