package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/ahadnur/nur-perfumes-os/internal/application/analytics"
	"github.com/ahadnur/nur-perfumes-os/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los totales del libro de deudas.
// GET /api/dashboard/summary
//
// Respuesta: DuesSummaryResponse (customer_count, total_due,
// customers_in_debt, last_activity). No requiere parámetros.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
