package model

import (
	"time"

	"github.com/xchain/logitrack/constant"
)

// Order is the tagged variant behind purchase order origination: either a
// standalone simple order or a backorder tied to a sales order line's
// shortfall. Both share the same payload; SalesOrderID is set for
// backorders only.
type Order struct {
	ID           uint64                   `db:"id" json:"id"`
	Kind         constant.OrderKind       `db:"kind" json:"kind"`
	ProductID    uint64                   `db:"product_id" json:"product_id"`
	Qty          int                      `db:"qty" json:"qty"`
	ExtraQty     int                      `db:"extra_qty" json:"extra_qty"`
	SalesOrderID *uint64                  `db:"sales_order_id" json:"sales_order_id,omitempty"`
	Status       constant.BackorderStatus `db:"status" json:"status"`
	CreatedAt    time.Time                `db:"created_at" json:"created_at"`
}

type SimpleOrderCreateRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Qty       int    `json:"qty" validate:"required,gt=0"`
	ExtraQty  int    `json:"extra_qty" validate:"gte=0"`
}

type SimpleOrderUpdateRequest struct {
	Qty      int `json:"qty" validate:"required,gt=0"`
	ExtraQty int `json:"extra_qty" validate:"gte=0"`
}
