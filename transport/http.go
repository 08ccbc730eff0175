package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	backorderapp "github.com/xchain/logitrack/application/backorder"
	catalogapp "github.com/xchain/logitrack/application/catalog"
	inventoryapp "github.com/xchain/logitrack/application/inventory"
	purchaseorderapp "github.com/xchain/logitrack/application/purchaseorder"
	salesorderapp "github.com/xchain/logitrack/application/salesorder"
	shipmentapp "github.com/xchain/logitrack/application/shipment"
	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	InventoryApp     inventoryapp.InventoryApp
	SalesOrderApp    salesorderapp.SalesOrderApp
	BackorderApp     backorderapp.BackorderApp
	PurchaseOrderApp purchaseorderapp.PurchaseOrderApp
	ShipmentApp      shipmentapp.ShipmentApp
	CatalogApp       catalogapp.CatalogApp

	defaultSupplierID uint64
}

func NewTransport(
	inventoryApp inventoryapp.InventoryApp,
	salesOrderApp salesorderapp.SalesOrderApp,
	backorderApp backorderapp.BackorderApp,
	purchaseOrderApp purchaseorderapp.PurchaseOrderApp,
	shipmentApp shipmentapp.ShipmentApp,
	catalogApp catalogapp.CatalogApp,
	internalAPIKey string,
	defaultSupplierID uint64,
) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		InventoryApp:      inventoryApp,
		SalesOrderApp:     salesOrderApp,
		BackorderApp:      backorderApp,
		PurchaseOrderApp:  purchaseOrderApp,
		ShipmentApp:       shipmentApp,
		CatalogApp:        catalogApp,
		defaultSupplierID: defaultSupplierID,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Sales orders
	mux.HandleFunc("/sales-orders", rh.CreateSalesOrder).Methods(http.MethodPost)
	mux.HandleFunc("/sales-orders", rh.ListSalesOrders).Methods(http.MethodGet)
	mux.HandleFunc("/sales-orders/{id}", rh.GetSalesOrder).Methods(http.MethodGet)
	mux.HandleFunc("/sales-orders/{id}", rh.DeleteSalesOrder).Methods(http.MethodDelete)
	mux.HandleFunc("/sales-orders/{id}/reserve", rh.ReserveSalesOrder).Methods(http.MethodPost)
	mux.HandleFunc("/sales-orders/{id}/status", rh.UpdateSalesOrderStatus).Methods(http.MethodPatch)
	mux.HandleFunc("/sales-orders/{id}/backorders", rh.ListSalesOrderBackorders).Methods(http.MethodGet)

	// Inventories
	mux.HandleFunc("/inventories", rh.CreateInventory).Methods(http.MethodPost)
	mux.HandleFunc("/inventories", rh.ListInventories).Methods(http.MethodGet)
	mux.HandleFunc("/inventories/transfer", rh.TransferInventory).Methods(http.MethodPost)
	mux.HandleFunc("/inventories/{id}", rh.GetInventory).Methods(http.MethodGet)
	mux.HandleFunc("/inventories/{id}", rh.DeleteInventory).Methods(http.MethodDelete)
	mux.HandleFunc("/inventories/{id}/adjust", rh.AdjustInventory).Methods(http.MethodPost)
	mux.HandleFunc("/inventories/{id}/movements", rh.ListInventoryMovements).Methods(http.MethodGet)

	// Backorders and simple orders
	mux.HandleFunc("/backorders", rh.ListBackorders).Methods(http.MethodGet)
	mux.HandleFunc("/backorders/{id}", rh.GetBackorder).Methods(http.MethodGet)
	mux.HandleFunc("/orders", rh.CreateSimpleOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{id}", rh.UpdateSimpleOrder).Methods(http.MethodPatch)
	mux.HandleFunc("/orders/{id}", rh.DeleteOrder).Methods(http.MethodDelete)

	// Purchase orders
	mux.HandleFunc("/purchase-orders", rh.CreatePurchaseOrder).Methods(http.MethodPost)
	mux.HandleFunc("/purchase-orders", rh.ListPurchaseOrders).Methods(http.MethodGet)
	mux.HandleFunc("/purchase-orders/backorder/{backorderId}/supplier/{supplierId}", rh.CreatePurchaseOrderFromBackorder).Methods(http.MethodPost)
	mux.HandleFunc("/purchase-orders/{id}", rh.GetPurchaseOrder).Methods(http.MethodGet)
	mux.HandleFunc("/purchase-orders/{id}", rh.DeletePurchaseOrder).Methods(http.MethodDelete)
	mux.HandleFunc("/purchase-orders/{id}/status", rh.UpdatePurchaseOrderStatus).Methods(http.MethodPatch)
	mux.HandleFunc("/suppliers/{id}/purchase-orders", rh.ListPurchaseOrdersBySupplier).Methods(http.MethodGet)

	// Shipments
	mux.HandleFunc("/shipments", rh.CreateShipment).Methods(http.MethodPost)
	mux.HandleFunc("/shipments", rh.ListShipments).Methods(http.MethodGet)
	mux.HandleFunc("/shipments/{id}", rh.GetShipment).Methods(http.MethodGet)
	mux.HandleFunc("/shipments/{id}", rh.UpdateShipment).Methods(http.MethodPatch)
	mux.HandleFunc("/shipments/{id}", rh.DeleteShipment).Methods(http.MethodDelete)
	mux.HandleFunc("/shipments/{id}/status", rh.UpdateShipmentStatus).Methods(http.MethodPatch)

	// Products (read only)
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)

	// Internal routes for the auto-purchase worker
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/purchase-orders/backorder/{backorderId}", rh.CreatePurchaseOrderInternal).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

func pathID(r *http.Request, name string) (uint64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}
