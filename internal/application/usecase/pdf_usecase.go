package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain"
)

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// PedidoPDFUseCase genera el PDF de un pedido con sus líneas.
type PedidoPDFUseCase struct {
	pedidos   *PedidoUseCase
	generator ports.PedidoPDFGenerator
}

// NewPedidoPDFUseCase construye el caso de uso.
func NewPedidoPDFUseCase(pedidos *PedidoUseCase, generator ports.PedidoPDFGenerator) *PedidoPDFUseCase {
	return &PedidoPDFUseCase{pedidos: pedidos, generator: generator}
}

// Download devuelve los bytes del PDF y el nombre de archivo sugerido.
//
// Retorna:
//   - domain.ErrNotFound si el backend no devuelve el pedido.
//   - el error del backend tal cual si la consulta falla.
func (uc *PedidoPDFUseCase) Download(ctx context.Context, id int64) (pdfBytes []byte, filename string, err error) {
	p, err := uc.pedidos.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if p.ID == 0 && p.Numero == "-" {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GeneratePedidoPDF(ctx, p)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	numero := unsafeFilename.ReplaceAllString(p.Numero, "_")
	if numero == "" || numero == "_" {
		numero = itoa(id)
	}
	return pdfBytes, fmt.Sprintf("pedido_%s.pdf", numero), nil
}
