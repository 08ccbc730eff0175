package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/xchain/logitrack/constant"
)

// SalesOrder owns its lines by id; lines keep the parent id for navigation,
// never a live back reference.
type SalesOrder struct {
	ID          uint64               `db:"id" json:"id"`
	ClientID    uint64               `db:"client_id" json:"client_id"`
	WarehouseID uint64               `db:"warehouse_id" json:"warehouse_id"`
	Status      constant.OrderStatus `db:"status" json:"status"`
	Country     string               `db:"country" json:"country"`
	City        string               `db:"city" json:"city"`
	Street      string               `db:"street" json:"street"`
	Zip         string               `db:"zip" json:"zip"`
	CreatedAt   time.Time            `db:"created_at" json:"created_at"`
	Lines       []SalesOrderLine     `json:"lines"`
}

type SalesOrderLine struct {
	ID           uint64          `db:"id" json:"id"`
	SalesOrderID uint64          `db:"sales_order_id" json:"sales_order_id"`
	ProductID    uint64          `db:"product_id" json:"product_id"`
	Price        decimal.Decimal `db:"price" json:"price"`
	QtyOrdered   int             `db:"qty_ordered" json:"qty_ordered"`
	QtyReserved  int             `db:"qty_reserved" json:"qty_reserved"`
}

type SalesOrderLineCreateRequest struct {
	ProductID  uint64 `json:"product_id" validate:"required"`
	QtyOrdered int    `json:"qty_ordered" validate:"required,gt=0"`
}

type SalesOrderCreateRequest struct {
	ClientID    uint64                        `json:"client_id" validate:"required"`
	WarehouseID uint64                        `json:"warehouse_id" validate:"required"`
	Country     string                        `json:"country" validate:"required"`
	City        string                        `json:"city" validate:"required"`
	Street      string                        `json:"street" validate:"required"`
	Zip         string                        `json:"zip" validate:"required"`
	Lines       []SalesOrderLineCreateRequest `json:"lines" validate:"required,dive,required"`
}

type OrderStatusUpdateRequest struct {
	Status constant.OrderStatus `json:"status" validate:"required"`
}

// SalesOrderWithWarnings is the engine's partial-success result: the order
// plus the non-fatal per-line outcomes (inactive skip, missing inventory,
// backorder created).
type SalesOrderWithWarnings struct {
	Order    *SalesOrder `json:"order"`
	Warnings []string    `json:"warnings"`
}
