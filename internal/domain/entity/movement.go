package entity

import "time"

// Direcciones de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement es un registro inmutable del libro de movimientos: un ajuste
// confirmado produce exactamente una fila, que nunca se actualiza ni borra.
// CreatedAt lo asigna el servidor al confirmar; el orden por (CreatedAt, ID)
// coincide con el orden de commit por producto.
type Movement struct {
	ID            int64
	TransactionID string // referencia uuid del ajuste que lo originó
	ProductID     int64
	UserID        int64
	Type          string // IN u OUT
	Quantity      int64  // siempre positivo; la dirección la da Type
	Note          string
	CreatedAt     time.Time
}
