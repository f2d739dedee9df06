package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con cantidad controlada.
// Quantity lo muta únicamente el motor de ajustes de inventario; el CRUD de
// catálogo no lo toca. Invariantes: Quantity >= 0 y CriticalLevel <= ReorderLevel.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Price         decimal.Decimal // precio de venta, no negativo
	Quantity      int64
	ReorderLevel  int64 // alerta baja: quantity <= reorder_level
	CriticalLevel int64 // alerta crítica: quantity <= critical_level
	CategoryID    int64
	BrandID       int64
	Active        bool // baja lógica; nunca se borra físicamente
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
