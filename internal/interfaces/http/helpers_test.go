package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/lecoq/erp-admin/internal/application/auth"
	"github.com/lecoq/erp-admin/internal/application/usecase"
	"github.com/lecoq/erp-admin/internal/domain/entity"
	"github.com/lecoq/erp-admin/internal/infrastructure/erpapi"
	"github.com/lecoq/erp-admin/internal/infrastructure/metrics"
	"github.com/lecoq/erp-admin/internal/infrastructure/storage"
	apphttp "github.com/lecoq/erp-admin/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend ERP falso
// ──────────────────────────────────────────────────────────────────────────────

type reply struct {
	status int
	body   string
}

// backend responde por "METODO /ruta" y cuenta las llamadas recibidas.
type backend struct {
	*httptest.Server
	mu     sync.Mutex
	routes map[string]reply
	hits   map[string]int
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{routes: map[string]reply{}, hits: map[string]int{}}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.hits[key]++
		rep, ok := b.routes[key]
		b.mu.Unlock()
		if !ok {
			rep = reply{status: http.StatusNotFound, body: `{"message":"ruta no encontrada"}`}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rep.status)
		_, _ = io.WriteString(w, rep.body)
	}))
	t.Cleanup(b.Close)
	return b
}

func (b *backend) on(method, path string, status int, body string) *backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = reply{status: status, body: body}
	return b
}

func (b *backend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[method+" "+path]
}

// ──────────────────────────────────────────────────────────────────────────────
// Consola
// ──────────────────────────────────────────────────────────────────────────────

type stubPDF struct{}

func (stubPDF) GeneratePedidoPDF(_ context.Context, p *entity.Pedido) ([]byte, error) {
	return []byte("%PDF-1.4 " + p.Numero), nil
}

// testToken JWT bien formado con subject "admin" que vence en una hora.
func testToken(t *testing.T) string {
	t.Helper()
	claims := gojwt.MapClaims{
		"sub": "admin",
		"rol": "ADMIN",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("clave-del-backend"))
	require.NoError(t, err)
	return tok
}

// newConsole arma la consola completa sobre el backend falso. Con role != "" arranca
// con una sesión guardada de ese rol.
func newConsole(t *testing.T, b *backend, role string) *fiber.App {
	t.Helper()
	store := storage.NewMemoryStore()
	if role != "" {
		require.NoError(t, store.Set(storage.KeyToken, testToken(t)))
		require.NoError(t, store.Set(storage.KeyRole, role))
	}
	m := metrics.New("erp_admin_test")
	client := erpapi.NewClient(b.URL, store, erpapi.WithRecorder(m))
	session := auth.NewSession(store, client)
	session.Init()

	productos := erpapi.NewProductoRepository(client)
	pedidos := erpapi.NewPedidoRepository(client)
	distribuciones := erpapi.NewDistribucionRepository(client)
	maquilados := erpapi.NewMaquiladoRepository(client)

	pedidoUC := usecase.NewPedidoUseCase(pedidos)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         auth.NewAuthUseCase(erpapi.NewAuthGateway(client), session, "", nil).WithRecorder(m),
		ProductoUC:     usecase.NewProductoUseCase(productos),
		PedidoUC:       pedidoUC,
		PedidoPDF:      usecase.NewPedidoPDFUseCase(pedidoUC, stubPDF{}),
		DistribucionUC: usecase.NewDistribucionUseCase(distribuciones),
		MaquiladoUC:    usecase.NewMaquiladoUseCase(maquilados),
		UsuarioUC:      usecase.NewUsuarioUseCase(erpapi.NewUsuarioRepository(client)),
		DashboardUC: usecase.NewDashboardUseCase(productos, pedidos, distribuciones, maquilados).
			WithErrorDescriber(erpapi.MessageOf),
		Metrics: m.Handler(),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var headers map[string]string
	if body != "" {
		headers = map[string]string{"Content-Type": "application/json"}
	}
	return send(t, app, method, path, body, headers)
}

// send como do pero con cabeceras explícitas (Origin, Sec-Fetch-Site, Content-Type).
func send(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
