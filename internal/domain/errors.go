package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrConsistency       = errors.New("inconsistencia de datos")
)

// ProductNotFoundError indica que el producto no existe o está inactivo.
// Satisface errors.Is(err, ErrNotFound).
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto %d no existe o está inactivo", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InsufficientStockError indica que una salida excede el stock disponible.
// Available lleva la cantidad disponible al momento del rechazo para que el
// caller pueda mostrar un mensaje accionable.
// Satisface errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	ProductID int64
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("no puedes sacar más de lo disponible. Disponible: %d", e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ConsistencyError indica que el update condicional no afectó ninguna fila a
// pesar de haber bloqueado y leído la fila (carrera con una desactivación).
// La transacción se revierte completa; el caller puede reintentar la operación.
// Satisface errors.Is(err, ErrConsistency).
type ConsistencyError struct {
	ProductID int64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("no se pudo actualizar la cantidad del producto %d", e.ProductID)
}

func (e *ConsistencyError) Is(target error) bool {
	return target == ErrConsistency
}
