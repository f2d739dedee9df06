package dto

import (
	"time"

	"github.com/bizstock/bizstock-api/internal/domain/entity"
)

// AdjustStockRequest body para POST /api/inventory/in y /api/inventory/out.
type AdjustStockRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	UserID    int64  `json:"user_id"`
	Note      string `json:"note,omitempty"`
}

// QuantityResponse cantidad actual de un producto (lectura informativa).
type QuantityResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// MovementResponse un movimiento del libro de inventario.
type MovementResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transaction_id"`
	ProductID     int64     `json:"product_id"`
	UserID        int64     `json:"user_id"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToMovementResponses convierte movimientos de entidad a DTO conservando el orden.
func ToMovementResponses(list []*entity.Movement) []MovementResponse {
	items := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			UserID:        m.UserID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			Note:          m.Note,
			CreatedAt:     m.CreatedAt,
		})
	}
	return items
}

// StockAlertDTO una fila del tablero de alertas (crítico o reorden).
type StockAlertDTO struct {
	ProductID     int64  `json:"product_id"`
	Name          string `json:"name"`
	Quantity      int64  `json:"quantity"`
	CriticalLevel int64  `json:"critical_level"`
	ReorderLevel  int64  `json:"reorder_level"`
}

// ToStockAlerts convierte productos a filas de alerta.
func ToStockAlerts(list []*entity.Product) []StockAlertDTO {
	items := make([]StockAlertDTO, 0, len(list))
	for _, p := range list {
		items = append(items, StockAlertDTO{
			ProductID:     p.ID,
			Name:          p.Name,
			Quantity:      p.Quantity,
			CriticalLevel: p.CriticalLevel,
			ReorderLevel:  p.ReorderLevel,
		})
	}
	return items
}
