package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizstock/bizstock-api/internal/domain"
	"github.com/bizstock/bizstock-api/internal/domain/entity"
	"github.com/bizstock/bizstock-api/internal/domain/repository"
)

// AdjustStockUseCase es el motor de ajustes de stock: cada entrada o salida se
// ejecuta como una única transacción que bloquea la fila del producto
// (SELECT FOR UPDATE), valida, escribe la nueva cantidad y agrega exactamente
// un movimiento al libro. Commit o rollback completo; nunca estado parcial.
//
// Dos ajustes sobre el mismo producto se serializan por el lock de fila; sobre
// productos distintos avanzan en paralelo.
type AdjustStockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	lockTimeout time.Duration
}

// NewAdjustStockUseCase construye el motor. lockTimeout acota la espera por el
// lock de fila (0 = sin límite); al expirar la operación falla sin efectos y es
// reintentable.
func NewAdjustStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	lockTimeout time.Duration,
) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
		lockTimeout: lockTimeout,
	}
}

// RegisterIn registra una entrada de qty unidades al producto.
func (uc *AdjustStockUseCase) RegisterIn(ctx context.Context, productID, qty, userID int64, note string) error {
	return uc.adjust(ctx, productID, qty, userID, note, entity.MovementTypeIN)
}

// RegisterOut registra una salida de qty unidades del producto. Falla con
// InsufficientStockError si la salida dejaría la cantidad en negativo; vaciar
// el stock exactamente a cero sí está permitido.
func (uc *AdjustStockUseCase) RegisterOut(ctx context.Context, productID, qty, userID int64, note string) error {
	return uc.adjust(ctx, productID, qty, userID, note, entity.MovementTypeOUT)
}

// adjust ejecuta un ajuste atómico:
//  1. bloquea la fila del producto y lee la cantidad actual
//  2. calcula y valida la nueva cantidad
//  3. escribe condicionado a que el producto siga activo (0 filas = carrera
//     con una desactivación → ConsistencyError, abort)
//  4. agrega el movimiento al libro
//  5. commit; cualquier fallo revierte todo
func (uc *AdjustStockUseCase) adjust(ctx context.Context, productID, qty, userID int64, note, movType string) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}

	if uc.lockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.lockTimeout)
		defer cancel()
	}

	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		current, err := productRepo.GetQuantityForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		var newQty int64
		switch movType {
		case entity.MovementTypeIN:
			newQty = current + qty
		case entity.MovementTypeOUT:
			if current-qty < 0 {
				return &domain.InsufficientStockError{ProductID: productID, Available: current, Requested: qty}
			}
			newQty = current - qty
		default:
			return domain.ErrInvalidInput
		}

		affected, err := productRepo.UpdateQuantity(ctx, productID, newQty)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &domain.ConsistencyError{ProductID: productID}
		}

		mov := &entity.Movement{
			TransactionID: txID,
			ProductID:     productID,
			UserID:        userID,
			Type:          movType,
			Quantity:      qty,
			Note:          note,
		}
		return movRepo.Create(ctx, mov)
	})
}

// CurrentQuantity devuelve la cantidad almacenada de un producto activo sin
// bloquear. Es informativa: puede quedar obsoleta frente a escritores
// concurrentes y no debe usarse como base de una escritura posterior.
func (uc *AdjustStockUseCase) CurrentQuantity(ctx context.Context, productID int64) (int64, error) {
	return uc.productRepo.GetQuantity(ctx, productID)
}

// ListMovements devuelve hasta limit movimientos del producto, del más
// reciente al más antiguo.
func (uc *AdjustStockUseCase) ListMovements(ctx context.Context, productID int64, limit int) ([]*entity.Movement, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.ListByProduct(ctx, productID, limit)
}
