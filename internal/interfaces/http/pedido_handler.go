package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/usecase"
)

// PedidoHandler pedidos y su PDF.
type PedidoHandler struct {
	uc  *usecase.PedidoUseCase
	pdf *usecase.PedidoPDFUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase, pdf *usecase.PedidoPDFUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc, pdf: pdf}
}

// List godoc
// @Summary      Listar pedidos
// @Description  Búsqueda por cliente, estado, número e id; 8 por página.
// @Tags         pedidos
// @Produce      json
// @Param        q     query  string  false  "Texto a buscar"
// @Param        page  query  int     false  "Página"  default(1)
// @Success      200   {object}  dto.Page[entity.Pedido]
// @Router       /pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	q, err := listQuery(c)
	if err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido con sus líneas
// @Tags         pedidos
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  entity.Pedido
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear pedido
// @Description  Sin número se genera uno temporal WEB-<ms>; sin fecha se usa la actual; sin estado, PENDIENTE.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PedidoUpsert  true  "Datos del pedido"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.PedidoUpsert
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID del pedido"
// @Param        body  body  dto.PedidoUpsert  true  "Datos del pedido"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /pedidos/{id} [put]
func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.PedidoUpsert
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar el pedido en PDF
// @Tags         pedidos
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pedidos/{id}/pdf [get]
func (h *PedidoHandler) DownloadPDF(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	pdfBytes, filename, err := h.pdf.Download(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
