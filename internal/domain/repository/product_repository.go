package repository

import (
	"context"

	"github.com/bizstock/bizstock-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// El camino de acceso bloqueado (GetQuantityForUpdate + UpdateQuantity) solo
// debe usarse dentro de una transacción del motor de ajustes; el resto son
// lecturas simples para catálogo, alertas y reportes.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Deactivate da de baja lógica el producto (is_active = false). Nunca borra.
	Deactivate(ctx context.Context, id int64) error

	// GetQuantity lee la cantidad actual sin bloquear. Es informativa: puede
	// quedar obsoleta frente a escritores concurrentes y no debe usarse como
	// base de una escritura posterior.
	GetQuantity(ctx context.Context, id int64) (int64, error)
	// GetQuantityForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y
	// devuelve la cantidad actual. Bloquea hasta que cualquier ajuste en curso
	// sobre el mismo producto confirme o revierta.
	GetQuantityForUpdate(ctx context.Context, id int64) (int64, error)
	// UpdateQuantity escribe la nueva cantidad condicionado a que el producto
	// siga activo. Devuelve las filas afectadas; 0 no es error, el caller decide.
	UpdateQuantity(ctx context.Context, id int64, quantity int64) (int64, error)

	// ListCritical: productos activos con quantity <= critical_level.
	ListCritical(ctx context.Context) ([]*entity.Product, error)
	// ListLow: productos activos con critical_level < quantity <= reorder_level.
	ListLow(ctx context.Context) ([]*entity.Product, error)
}
