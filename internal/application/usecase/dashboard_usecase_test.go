package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecoq/erp-admin/internal/application/usecase"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

func dashboardFixture() (*productoRepo, *pedidoRepo, *distribucionRepo, *maquiladoRepo) {
	prod := &productoRepo{items: []entity.Producto{
		{ID: 1, Stock: 2, Estado: "ACTIVO"},
		{ID: 2, Stock: 30, Estado: "ACTIVO"},
		{ID: 3, Stock: 1, Estado: "INACTIVO"},
	}}
	ped := &pedidoRepo{items: []entity.Pedido{
		{ID: 1, Fecha: ptr("2024-05-05T10:00:00")},
		{ID: 2, Fecha: ptr("2024-05-06T09:00:00")},
		{ID: 3, Fecha: ptr("2024-05-06")},
		{ID: 4},
	}}
	dist := &distribucionRepo{items: []entity.Distribucion{
		{ID: 1, Estado: ptr(entity.DistribucionEnRuta)},
		{ID: 2, Estado: ptr(entity.DistribucionEntregado)},
	}}
	maq := &maquiladoRepo{items: []entity.Maquilado{
		{ID: 1, Estado: entity.MaquiladoPendiente},
		{ID: 2, Estado: entity.MaquiladoEnProceso},
		{ID: 3, Estado: entity.MaquiladoRecibido},
	}}
	return prod, ped, dist, maq
}

func TestDashboard_AdminVeTodo(t *testing.T) {
	prod, ped, dist, maq := dashboardFixture()
	now := time.Date(2024, 5, 6, 15, 0, 0, 0, time.UTC)
	uc := usecase.NewDashboardUseCase(prod, ped, dist, maq).WithClock(func() time.Time { return now })

	s, err := uc.Summary(context.Background(), entity.RoleAdmin)
	require.NoError(t, err)

	require.NotNil(t, s.ProductosActivos)
	assert.Equal(t, 2, *s.ProductosActivos)
	assert.Len(t, s.ProductosBajoStock, 2)
	require.NotNil(t, s.PedidosHoy)
	assert.Equal(t, 2, *s.PedidosHoy)
	require.Len(t, s.UltimosPedidos, 4)
	assert.Equal(t, int64(2), s.UltimosPedidos[0].ID)
	assert.Equal(t, int64(4), s.UltimosPedidos[3].ID, "sin fecha al final")
	require.NotNil(t, s.DistribucionesEnCurso)
	assert.Equal(t, 1, *s.DistribucionesEnCurso)
	require.NotNil(t, s.MaquiladosAbiertos)
	assert.Equal(t, 2, *s.MaquiladosAbiertos)
	assert.Empty(t, s.Errores)
}

func TestDashboard_MaquilaSoloSusSecciones(t *testing.T) {
	prod, ped, dist, maq := dashboardFixture()
	s, err := usecase.NewDashboardUseCase(prod, ped, dist, maq).Summary(context.Background(), entity.RoleMaquila)
	require.NoError(t, err)

	assert.NotNil(t, s.ProductosActivos)
	assert.Nil(t, s.PedidosHoy)
	assert.Nil(t, s.DistribucionesEnCurso)
	assert.NotNil(t, s.MaquiladosAbiertos)
	assert.Empty(t, s.UltimosPedidos)
}

func TestDashboard_SeccionConErrorNoInvalidaElResto(t *testing.T) {
	prod, ped, dist, maq := dashboardFixture()
	ped.err = errors.New("timeout")
	uc := usecase.NewDashboardUseCase(prod, ped, dist, maq).
		WithErrorDescriber(func(err error, fallback string) string { return fallback })

	s, err := uc.Summary(context.Background(), entity.RoleVentas)
	require.NoError(t, err)
	assert.Nil(t, s.PedidosHoy)
	assert.NotNil(t, s.ProductosActivos)
	assert.NotNil(t, s.DistribucionesEnCurso)
	assert.Nil(t, s.MaquiladosAbiertos)
	assert.Equal(t, []string{"Pedidos: No se pudo cargar."}, s.Errores)
}
