package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecoq/erp-admin/internal/application/usecase"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

type pdfSpy struct {
	got *entity.Pedido
}

func (s *pdfSpy) GeneratePedidoPDF(_ context.Context, p *entity.Pedido) ([]byte, error) {
	s.got = p
	return []byte("%PDF-1.3"), nil
}

func TestPedidoPDF_Download(t *testing.T) {
	repo := &pedidoRepo{
		pedido:   &entity.Pedido{ID: 4, Numero: "WEB-17/03", Cliente: "Ana"},
		detalles: []entity.DetallePedido{{ProductoID: 1, Cantidad: 2}},
	}
	spy := &pdfSpy{}
	uc := usecase.NewPedidoPDFUseCase(usecase.NewPedidoUseCase(repo), spy)

	raw, name, err := uc.Download(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(raw))
	assert.Equal(t, "pedido_WEB-17_03.pdf", name)
	require.NotNil(t, spy.got)
	assert.Len(t, spy.got.Detalles, 1, "las líneas se completan desde /detalles")
}

func TestPedidoPDF_PedidoInexistente(t *testing.T) {
	uc := usecase.NewPedidoPDFUseCase(usecase.NewPedidoUseCase(&pedidoRepo{}), &pdfSpy{})
	_, _, err := uc.Download(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
