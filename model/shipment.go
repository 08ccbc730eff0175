package model

import "github.com/xchain/logitrack/constant"

// Shipment is one-to-one with its sales order; creation is gated on the
// order being RESERVED.
type Shipment struct {
	ID             uint64                  `db:"id" json:"id"`
	SalesOrderID   uint64                  `db:"sales_order_id" json:"sales_order_id"`
	WarehouseID    uint64                  `db:"warehouse_id" json:"warehouse_id"`
	Carrier        string                  `db:"carrier" json:"carrier"`
	TrackingNumber string                  `db:"tracking_number" json:"tracking_number"`
	Status         constant.ShipmentStatus `db:"status" json:"status"`
	Street         string                  `db:"street" json:"street"`
	City           string                  `db:"city" json:"city"`
	State          string                  `db:"state" json:"state"`
	PostalCode     string                  `db:"postal_code" json:"postal_code"`
	Country        string                  `db:"country" json:"country"`
}

type ShipmentCreateRequest struct {
	SalesOrderID   uint64 `json:"sales_order_id" validate:"required"`
	WarehouseID    uint64 `json:"warehouse_id" validate:"required"`
	Carrier        string `json:"carrier" validate:"required"`
	TrackingNumber string `json:"tracking_number"`
	Street         string `json:"street" validate:"required"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	PostalCode     string `json:"postal_code" validate:"required"`
	Country        string `json:"country" validate:"required"`
}

type ShipmentUpdateRequest struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"tracking_number"`
	Street         string `json:"street"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postal_code"`
	Country        string `json:"country"`
}

type ShipmentStatusUpdateRequest struct {
	Status constant.ShipmentStatus `json:"status" validate:"required"`
}
