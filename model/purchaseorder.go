package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/xchain/logitrack/constant"
)

// PurchaseOrder optionally references the order (simple or backorder) it was
// derived from; at most one purchase order may exist per originating order.
type PurchaseOrder struct {
	ID         uint64            `db:"id" json:"id"`
	SupplierID uint64            `db:"supplier_id" json:"supplier_id"`
	Status     constant.POStatus `db:"status" json:"status"`
	OrderID    *uint64           `db:"order_id" json:"order_id,omitempty"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
	Lines      []POLine          `json:"lines"`
}

type POLine struct {
	ID              uint64          `db:"id" json:"id"`
	PurchaseOrderID uint64          `db:"purchase_order_id" json:"purchase_order_id"`
	ProductID       uint64          `db:"product_id" json:"product_id"`
	Qty             int             `db:"qty" json:"qty"`
	Price           decimal.Decimal `db:"price" json:"price"`
}

type POLineCreateRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Qty       int    `json:"qty" validate:"required,gt=0"`
}

type PurchaseOrderCreateRequest struct {
	SupplierID uint64                `json:"supplier_id" validate:"required"`
	OrderID    *uint64               `json:"order,omitempty"`
	Lines      []POLineCreateRequest `json:"lines" validate:"omitempty,dive,required"`
}

type POStatusUpdateRequest struct {
	Status constant.POStatus `json:"status" validate:"required"`
}
