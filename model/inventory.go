package model

import (
	"time"

	"github.com/xchain/logitrack/constant"
)

// Inventory is one row per (product, warehouse). Counters are mutated only
// by the inventory ledger; qty_reserved <= qty_on_hand holds after every
// committed operation.
type Inventory struct {
	ID          uint64 `db:"id" json:"id"`
	WarehouseID uint64 `db:"warehouse_id" json:"warehouse_id"`
	ProductID   uint64 `db:"product_id" json:"product_id"`
	QtyOnHand   int    `db:"qty_on_hand" json:"qty_on_hand"`
	QtyReserved int    `db:"qty_reserved" json:"qty_reserved"`
}

// Available is the only quantity the reservation engine may allocate from.
func (i *Inventory) Available() int {
	return i.QtyOnHand - i.QtyReserved
}

// InventoryMovement is append-only; rows are never updated or deleted.
type InventoryMovement struct {
	ID          uint64                `db:"id" json:"id"`
	InventoryID uint64                `db:"inventory_id" json:"inventory_id"`
	Type        constant.MovementType `db:"type" json:"type"`
	Qty         int                   `db:"qty" json:"qty"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
}

type InventoryCreateRequest struct {
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	ProductID   uint64 `json:"product_id" validate:"required"`
	QtyOnHand   int    `json:"qty_on_hand" validate:"gte=0"`
	QtyReserved int    `json:"qty_reserved" validate:"gte=0"`
}

// AdjustRequest carries a manual shrinkage; only negative deltas are valid.
type AdjustRequest struct {
	Delta int `json:"delta" validate:"required,lt=0"`
}

type TransferRequest struct {
	ProductID       uint64 `json:"product_id" validate:"required"`
	FromWarehouseID uint64 `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   uint64 `json:"to_warehouse_id" validate:"required"`
	Quantity        int    `json:"quantity" validate:"required,gt=0"`
}
