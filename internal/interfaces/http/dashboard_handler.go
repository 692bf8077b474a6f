package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lecoq/erp-admin/internal/application/usecase"
)

// DashboardHandler página de inicio.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de la operación
// @Description  Solo incluye las secciones que el rol puede ver. Una sección que falla queda vacía y su mensaje va en errores.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Success      302  "sin sesión: redirige a /login"
// @Router       / [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
