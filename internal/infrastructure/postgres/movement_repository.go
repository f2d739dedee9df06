package postgres

import (
	"context"
	"fmt"

	"github.com/bizstock/bizstock-api/internal/domain/entity"
	"github.com/bizstock/bizstock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lista: la tabla es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. El servidor asigna id (bigserial) y
// created_at; ambos quedan en el struct. created_at usa clock_timestamp() y no
// now(): now() es la hora de inicio de la transacción, y una transacción que
// empezó antes pero confirmó después invertiría el orden del libro. Se invoca
// solo dentro de la transacción del motor de ajustes.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO inventory_movements (transaction_id, product_id, user_id, movement_type, quantity, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, clock_timestamp())
		RETURNING id, created_at`
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	err := r.q.QueryRow(ctx, query,
		movement.TransactionID, movement.ProductID, movement.UserID,
		movement.Type, movement.Quantity, note,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByProduct lista hasta limit movimientos del producto, del más reciente
// al más antiguo. Empates de created_at se resuelven por id descendente, que
// sigue el orden de inserción.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.Movement, error) {
	query := `
		SELECT id, transaction_id, product_id, user_id, movement_type, quantity, note, created_at
		FROM inventory_movements
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var note *string
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.ProductID, &m.UserID,
			&m.Type, &m.Quantity, &note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if note != nil {
			m.Note = *note
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
