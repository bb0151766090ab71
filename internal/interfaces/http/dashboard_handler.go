package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/panaderia-api/internal/application/usecase"
)

// DashboardHandler expone los agregados del día (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard del día
// @Description  Ventas e ingresos de hoy, productos con stock bajo y totales.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
