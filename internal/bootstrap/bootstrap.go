// Package bootstrap arma el grafo de dependencias compartido por la consola y el CLI:
// almacenamiento de sesión, cliente del backend, repositorios y casos de uso.
package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/lecoq/erp-admin/internal/application/auth"
	"github.com/lecoq/erp-admin/internal/application/usecase"
	"github.com/lecoq/erp-admin/internal/infrastructure/erpapi"
	"github.com/lecoq/erp-admin/internal/infrastructure/metrics"
	infrapdf "github.com/lecoq/erp-admin/internal/infrastructure/pdf"
	"github.com/lecoq/erp-admin/internal/infrastructure/storage"
	"github.com/lecoq/erp-admin/pkg/config"
	"github.com/lecoq/erp-admin/pkg/logger"
)

// metricsNamespace prefijo de las métricas Prometheus.
const metricsNamespace = "erp_admin"

// App dependencias ya construidas.
type App struct {
	Config  *config.Config
	Log     *logger.Logger
	Metrics *metrics.Metrics
	Client  *erpapi.Client
	Session *auth.Session

	AuthUC         *auth.AuthUseCase
	ProductoUC     *usecase.ProductoUseCase
	PedidoUC       *usecase.PedidoUseCase
	PedidoPDF      *usecase.PedidoPDFUseCase
	DistribucionUC *usecase.DistribucionUseCase
	MaquiladoUC    *usecase.MaquiladoUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	DashboardUC    *usecase.DashboardUseCase
}

// New abre el almacenamiento de sesión (archivo JSON, o memoria si cfg.Session.File
// está vacío), crea el cliente con el token guardado y carga la sesión.
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	var store storage.Store
	if cfg.Session.File == "" {
		store = storage.NewMemoryStore()
	} else {
		fs, err := storage.OpenFileStore(cfg.Session.File)
		if err != nil {
			return nil, fmt.Errorf("abrir sesión %s: %w", cfg.Session.File, err)
		}
		store = fs
	}

	m := metrics.New(metricsNamespace)
	hc := &http.Client{Timeout: cfg.API.Timeout}
	client := erpapi.NewClient(cfg.API.BaseURL, store,
		erpapi.WithHTTPClient(hc),
		erpapi.WithLogger(log.Named("erpapi")),
		erpapi.WithRecorder(m),
	)

	session := auth.NewSession(store, client)
	st := session.Init()
	log.Debug().Bool("authenticated", st.Authenticated()).Str("role", st.Role).Msg("sesión cargada")

	productos := erpapi.NewProductoRepository(client)
	pedidos := erpapi.NewPedidoRepository(client)
	distribuciones := erpapi.NewDistribucionRepository(client)
	maquilados := erpapi.NewMaquiladoRepository(client)
	usuarios := erpapi.NewUsuarioRepository(client)

	pedidoUC := usecase.NewPedidoUseCase(pedidos)
	return &App{
		Config:  cfg,
		Log:     log,
		Metrics: m,
		Client:  client,
		Session: session,

		AuthUC: auth.NewAuthUseCase(erpapi.NewAuthGateway(client), session, cfg.Session.DefaultRole, log.Named("auth")).
			WithRecorder(m),
		ProductoUC:     usecase.NewProductoUseCase(productos),
		PedidoUC:       pedidoUC,
		PedidoPDF:      usecase.NewPedidoPDFUseCase(pedidoUC, infrapdf.NewMarotoPDFGenerator(cfg.App.Name)),
		DistribucionUC: usecase.NewDistribucionUseCase(distribuciones),
		MaquiladoUC:    usecase.NewMaquiladoUseCase(maquilados),
		UsuarioUC:      usecase.NewUsuarioUseCase(usuarios),
		DashboardUC: usecase.NewDashboardUseCase(productos, pedidos, distribuciones, maquilados).
			WithErrorDescriber(erpapi.MessageOf),
	}, nil
}
