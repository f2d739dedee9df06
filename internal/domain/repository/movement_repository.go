package repository

import (
	"context"

	"github.com/bizstock/bizstock-api/internal/domain/entity"
)

// MovementRepository define el puerto del libro de movimientos (append-only).
// No existen operaciones de actualización ni borrado: un movimiento confirmado
// es inmutable.
type MovementRepository interface {
	// Create inserta un movimiento. Solo se invoca dentro de la transacción del
	// motor de ajustes, nunca de forma independiente. El servidor asigna ID y
	// CreatedAt y los deja en el struct.
	Create(ctx context.Context, movement *entity.Movement) error
	// ListByProduct devuelve hasta limit movimientos del producto, del más
	// reciente al más antiguo (created_at DESC, id DESC).
	ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.Movement, error)
}
