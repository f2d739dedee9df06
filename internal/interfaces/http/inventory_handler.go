package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bizstock/bizstock-api/internal/application/dto"
	"github.com/bizstock/bizstock-api/internal/application/inventory"
	"github.com/bizstock/bizstock-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del motor de ajustes de stock y
// del libro de movimientos.
type InventoryHandler struct {
	uc *inventory.AdjustStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.AdjustStockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterIn registra una entrada de stock.
// POST /api/inventory/in
func (h *InventoryHandler) RegisterIn(c *fiber.Ctx) error {
	return h.adjust(c, h.uc.RegisterIn)
}

// RegisterOut registra una salida de stock.
// POST /api/inventory/out
func (h *InventoryHandler) RegisterOut(c *fiber.Ctx) error {
	return h.adjust(c, h.uc.RegisterOut)
}

func (h *InventoryHandler) adjust(c *fiber.Ctx, op func(ctx context.Context, productID, qty, userID int64, note string) error) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := op(c.Context(), in.ProductID, in.Quantity, in.UserID, in.Note); err != nil {
		return adjustError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}

// adjustError mapea los errores del motor a códigos HTTP. Los mensajes de los
// errores tipados ya llevan el contexto necesario (id de producto, stock
// disponible) para que el cliente arme un mensaje accionable.
func adjustError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser mayor que 0"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrConsistency):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CONSISTENCY", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// GetQuantity devuelve la cantidad actual de un producto (lectura informativa,
// sin bloqueo).
// GET /api/inventory/:productId/quantity
func (h *InventoryHandler) GetQuantity(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	qty, err := h.uc.CurrentQuantity(c.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.QuantityResponse{ProductID: productID, Quantity: qty})
}

// ListMovements lista los movimientos de un producto, del más reciente al más
// antiguo.
// GET /api/inventory/:productId/movements?limit=50
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	limit := c.QueryInt("limit", 50)
	list, err := h.uc.ListMovements(c.Context(), productID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total":     len(list),
		"movements": dto.ToMovementResponses(list),
	})
}
