package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizstock/bizstock-api/internal/application/dto"
	"github.com/bizstock/bizstock-api/internal/application/inventory"
)

// AlertsHandler expone los tableros de alerta de stock (solo lectura).
type AlertsHandler struct {
	uc *inventory.AlertsUseCase
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(uc *inventory.AlertsUseCase) *AlertsHandler {
	return &AlertsHandler{uc: uc}
}

// Critical productos con cantidad en nivel crítico.
// GET /api/alerts/critical
func (h *AlertsHandler) Critical(c *fiber.Ctx) error {
	list, err := h.uc.Critical(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(list), "alerts": list})
}

// Low productos bajo punto de reorden (sobre el nivel crítico).
// GET /api/alerts/low
func (h *AlertsHandler) Low(c *fiber.Ctx) error {
	list, err := h.uc.Low(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(list), "alerts": list})
}
