package inventory

import (
	"context"

	"github.com/bizstock/bizstock-api/internal/application/dto"
	"github.com/bizstock/bizstock-api/internal/domain/repository"
)

// AlertsUseCase arma los tableros de alerta de stock. Es un consumidor de solo
// lectura del almacén de productos: nunca muta estado y puede ver cantidades
// levemente desactualizadas frente a ajustes en curso.
type AlertsUseCase struct {
	productRepo repository.ProductRepository
}

// NewAlertsUseCase construye el caso de uso de alertas.
func NewAlertsUseCase(productRepo repository.ProductRepository) *AlertsUseCase {
	return &AlertsUseCase{productRepo: productRepo}
}

// Critical devuelve los productos activos con cantidad en nivel crítico
// (quantity <= critical_level), los más bajos primero.
func (uc *AlertsUseCase) Critical(ctx context.Context) ([]dto.StockAlertDTO, error) {
	list, err := uc.productRepo.ListCritical(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToStockAlerts(list), nil
}

// Low devuelve los productos activos bajo punto de reorden pero todavía por
// encima del nivel crítico (critical_level < quantity <= reorder_level).
func (uc *AlertsUseCase) Low(ctx context.Context) ([]dto.StockAlertDTO, error) {
	list, err := uc.productRepo.ListLow(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToStockAlerts(list), nil
}
