package constant

// OrderStatus is the sales order state machine:
// CREATED -> {RESERVED | BACKORDER} -> SHIPPED -> DELIVERED,
// CANCELLED reachable from any state except SHIPPED and DELIVERED.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusReserved  OrderStatus = "RESERVED"
	OrderStatusBackorder OrderStatus = "BACKORDER"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// BackorderStatus also applies to simple orders (shared order payload).
type BackorderStatus string

const (
	BackorderStatusPending   BackorderStatus = "PENDING"
	BackorderStatusFulfilled BackorderStatus = "FULFILLED"
)

// POStatus moves forward only; RECEIVED is terminal.
type POStatus string

const (
	POStatusApproved POStatus = "APPROVED"
	POStatusReceived POStatus = "RECEIVED"
)

type ShipmentStatus string

const (
	ShipmentStatusPlanned   ShipmentStatus = "PLANNED"
	ShipmentStatusInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusDelivered ShipmentStatus = "DELIVERED"
	ShipmentStatusCancelled ShipmentStatus = "CANCELLED"
)

// MovementType classifies ledger movements. Only operations that change
// qty_on_hand produce a movement row.
type MovementType string

const (
	MovementInbound    MovementType = "INBOUND"
	MovementOutbound   MovementType = "OUTBOUND"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

// OrderKind tags the polymorphic order payload a purchase order can
// originate from.
type OrderKind string

const (
	OrderKindSimple    OrderKind = "SIMPLE"
	OrderKindBackorder OrderKind = "BACKORDER"
)
