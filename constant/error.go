package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInsufficientStock
	ErrInvalidAdjustment
	ErrInvalidTransition
	ErrInvalidState
	ErrDuplicatePurchaseOrder
	ErrConcurrencyConflict
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrInsufficientStock:      "insufficient stock",
	ErrInvalidAdjustment:      "invalid adjustment",
	ErrInvalidTransition:      "invalid status transition",
	ErrInvalidState:           "operation not allowed in current state",
	ErrDuplicatePurchaseOrder: "purchase order already exists for this order",
	ErrConcurrencyConflict:    "concurrent update conflict, please retry",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusNotFound,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrInsufficientStock:      http.StatusConflict,
	ErrInvalidAdjustment:      http.StatusBadRequest,
	ErrInvalidTransition:      http.StatusConflict,
	ErrInvalidState:           http.StatusConflict,
	ErrDuplicatePurchaseOrder: http.StatusConflict,
	ErrConcurrencyConflict:    http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrInsufficientStock:      "0005",
	ErrInvalidAdjustment:      "0006",
	ErrInvalidTransition:      "0007",
	ErrInvalidState:           "0008",
	ErrDuplicatePurchaseOrder: "0009",
	ErrConcurrencyConflict:    "0010",
}
