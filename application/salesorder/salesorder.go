package salesorder

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	appinventory "github.com/xchain/logitrack/application/inventory"
	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
	catalogrepo "github.com/xchain/logitrack/repository/catalog"
	inventoryrepo "github.com/xchain/logitrack/repository/inventory"
	orderrepo "github.com/xchain/logitrack/repository/order"
	salesorderrepo "github.com/xchain/logitrack/repository/salesorder"
	shipmentrepo "github.com/xchain/logitrack/repository/shipment"
	txrepo "github.com/xchain/logitrack/repository/tx"
	"github.com/xchain/logitrack/thirdparty/rabbitmq"
	"github.com/xchain/logitrack/utils/errors"
	"github.com/xchain/logitrack/utils/logger"
	"go.uber.org/zap"
)

// SalesOrderApp is the reservation engine. Creating an order runs the
// reservation pass inline; Reserve re-runs it over whatever each line still
// lacks. Per-line outcomes that are not errors (inactive product, missing
// inventory, backorder) accumulate as warnings on the response.
type SalesOrderApp interface {
	CreateOrder(ctx context.Context, req *model.SalesOrderCreateRequest) (*model.SalesOrderWithWarnings, error)
	Reserve(ctx context.Context, orderID uint64) (*model.SalesOrderWithWarnings, error)
	GetOrder(ctx context.Context, id uint64) (*model.SalesOrder, error)
	ListOrders(ctx context.Context) ([]model.SalesOrder, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.OrderStatus) (*model.SalesOrderWithWarnings, error)
	DeleteOrder(ctx context.Context, id uint64) error
}

type salesOrderAppImpl struct {
	txRepo         txrepo.TxRepository
	salesOrderRepo salesorderrepo.SalesOrderRepository
	orderRepo      orderrepo.OrderRepository
	inventoryRepo  inventoryrepo.InventoryRepository
	inventoryApp   appinventory.InventoryApp
	catalogRepo    catalogrepo.CatalogRepository
	shipmentRepo   shipmentrepo.ShipmentRepository
	publisher      *rabbitmq.Publisher
}

func NewSalesOrderApp(
	txRepo txrepo.TxRepository,
	salesOrderRepo salesorderrepo.SalesOrderRepository,
	orderRepo orderrepo.OrderRepository,
	inventoryRepo inventoryrepo.InventoryRepository,
	inventoryApp appinventory.InventoryApp,
	catalogRepo catalogrepo.CatalogRepository,
	shipmentRepo shipmentrepo.ShipmentRepository,
	publisher *rabbitmq.Publisher,
) SalesOrderApp {
	return &salesOrderAppImpl{
		txRepo:         txRepo,
		salesOrderRepo: salesOrderRepo,
		orderRepo:      orderRepo,
		inventoryRepo:  inventoryRepo,
		inventoryApp:   inventoryApp,
		catalogRepo:    catalogRepo,
		shipmentRepo:   shipmentRepo,
		publisher:      publisher,
	}
}

func (s *salesOrderAppImpl) CreateOrder(ctx context.Context, req *model.SalesOrderCreateRequest) (*model.SalesOrderWithWarnings, error) {
	if len(req.Lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	warehouse, err := s.catalogRepo.GetWarehouse(ctx, req.WarehouseID)
	if err != nil {
		logger.Error("[CreateOrder] get warehouse", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order := &model.SalesOrder{
		ClientID:    req.ClientID,
		WarehouseID: req.WarehouseID,
		Status:      constant.OrderStatusCreated,
		Country:     req.Country,
		City:        req.City,
		Street:      req.Street,
		Zip:         req.Zip,
	}
	orderID, err := s.salesOrderRepo.InsertOrderTx(ctx, tx, order)
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	order.ID = orderID

	lines := make([]model.SalesOrderLine, 0, len(req.Lines))
	for _, lineReq := range req.Lines {
		product, err := s.catalogRepo.GetProduct(ctx, lineReq.ProductID)
		if err != nil {
			logger.Error("[CreateOrder] get product", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if product == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}

		line := model.SalesOrderLine{
			SalesOrderID: orderID,
			ProductID:    product.ID,
			Price:        product.Price,
			QtyOrdered:   lineReq.QtyOrdered,
			QtyReserved:  0,
		}
		lineID, err := s.salesOrderRepo.InsertLineTx(ctx, tx, &line)
		if err != nil {
			logger.Error("[CreateOrder] insert line", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		line.ID = lineID
		lines = append(lines, line)
	}

	warnings, events, err := s.reserveLinesTx(ctx, tx, order, lines)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishBackorderEvents(events)

	order.Lines = lines
	return &model.SalesOrderWithWarnings{Order: order, Warnings: warnings}, nil
}

func (s *salesOrderAppImpl) Reserve(ctx context.Context, orderID uint64) (*model.SalesOrderWithWarnings, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Reserve] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.salesOrderRepo.GetOrderTx(ctx, tx, orderID)
	if err != nil {
		return nil, errors.FromSQL(err)
	}

	switch order.Status {
	case constant.OrderStatusReserved:
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidTransition, "this order is already reserved")
	case constant.OrderStatusShipped, constant.OrderStatusDelivered, constant.OrderStatusCancelled:
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	lines, err := s.salesOrderRepo.GetLinesTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[Reserve] get lines", zap.Error(err))
		return nil, errors.FromSQL(err)
	}

	warnings, events, err := s.reserveLinesTx(ctx, tx, order, lines)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Reserve] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishBackorderEvents(events)

	order.Lines = lines
	return &model.SalesOrderWithWarnings{Order: order, Warnings: warnings}, nil
}

// reserveLinesTx runs the per-line allocation: local stock first, then a
// cross-warehouse transfer covering the shortfall, then a partial
// reservation plus a PENDING backorder. Lines already fully reserved are
// untouched, so re-running the pass never double-reserves.
func (s *salesOrderAppImpl) reserveLinesTx(ctx context.Context, tx *sqlx.Tx, order *model.SalesOrder, lines []model.SalesOrderLine) ([]string, []rabbitmq.BackorderCreatedMessage, error) {
	warnings := make([]string, 0)
	events := make([]rabbitmq.BackorderCreatedMessage, 0)

	for i := range lines {
		line := &lines[i]

		remaining := line.QtyOrdered - line.QtyReserved
		if remaining <= 0 {
			continue
		}

		product, err := s.catalogRepo.GetProduct(ctx, line.ProductID)
		if err != nil {
			logger.Error("[Reserve] get product", zap.Error(err))
			return nil, nil, errors.SetCustomError(constant.ErrInternal)
		}
		if product == nil {
			return nil, nil, errors.SetCustomError(constant.ErrNotFound)
		}

		if !product.Active {
			warnings = append(warnings, fmt.Sprintf("product '%s' is inactive and was skipped", product.Name))
			continue
		}

		inv, err := s.inventoryRepo.FindLatestTx(ctx, tx, product.ID, order.WarehouseID)
		if err != nil {
			logger.Error("[Reserve] find inventory", zap.Error(err))
			return nil, nil, errors.FromSQL(err)
		}
		if inv == nil {
			warnings = append(warnings, fmt.Sprintf("inventory not found for SKU '%s'", product.SKU))
			continue
		}

		available := inv.Available()

		if remaining <= available {
			if err := s.inventoryApp.ReserveTx(ctx, tx, inv.ID, remaining); err != nil {
				return nil, nil, err
			}
			line.QtyReserved = line.QtyOrdered
			if err := s.salesOrderRepo.SetLineReservedTx(ctx, tx, line.ID, line.QtyReserved); err != nil {
				return nil, nil, errors.FromSQL(err)
			}
			continue
		}

		shortfall := remaining - available

		helper, err := s.inventoryRepo.FindHelperTx(ctx, tx, product.ID, shortfall, order.WarehouseID)
		if err != nil {
			logger.Error("[Reserve] find helper inventory", zap.Error(err))
			return nil, nil, errors.FromSQL(err)
		}

		if helper != nil {
			if err := s.inventoryApp.TransferTx(ctx, tx, helper.ID, inv.ID, shortfall); err != nil {
				return nil, nil, err
			}
			if err := s.inventoryApp.ReserveTx(ctx, tx, inv.ID, remaining); err != nil {
				return nil, nil, err
			}
			line.QtyReserved = line.QtyOrdered
			if err := s.salesOrderRepo.SetLineReservedTx(ctx, tx, line.ID, line.QtyReserved); err != nil {
				return nil, nil, errors.FromSQL(err)
			}
			continue
		}

		// No warehouse can cover the shortfall: reserve what is there and
		// route the rest to purchasing.
		if available > 0 {
			if err := s.inventoryApp.ReserveTx(ctx, tx, inv.ID, available); err != nil {
				return nil, nil, err
			}
			line.QtyReserved += available
			if err := s.salesOrderRepo.SetLineReservedTx(ctx, tx, line.ID, line.QtyReserved); err != nil {
				return nil, nil, errors.FromSQL(err)
			}
		}

		backorder := &model.Order{
			Kind:         constant.OrderKindBackorder,
			ProductID:    product.ID,
			Qty:          shortfall,
			ExtraQty:     0,
			SalesOrderID: &order.ID,
			Status:       constant.BackorderStatusPending,
		}
		backorderID, err := s.orderRepo.InsertOrderTx(ctx, tx, backorder)
		if err != nil {
			logger.Error("[Reserve] insert backorder", zap.Error(err))
			return nil, nil, errors.FromSQL(err)
		}

		warnings = append(warnings, fmt.Sprintf("backorder created for SKU '%s' due to insufficient stock (%d units)", product.SKU, shortfall))
		events = append(events, rabbitmq.BackorderCreatedMessage{
			BackorderID:  backorderID,
			SalesOrderID: order.ID,
			ProductID:    product.ID,
			SKU:          product.SKU,
			Qty:          shortfall,
		})
	}

	status, err := s.finalStatusTx(ctx, tx, order, lines, len(events) > 0)
	if err != nil {
		return nil, nil, err
	}
	if status != order.Status {
		if err := s.salesOrderRepo.UpdateOrderStatusTx(ctx, tx, order.ID, status); err != nil {
			return nil, nil, errors.FromSQL(err)
		}
		order.Status = status
	}

	return warnings, events, nil
}

// finalStatusTx: RESERVED when every line ended fully reserved, BACKORDER
// when at least one backorder is open, otherwise the status is unchanged.
func (s *salesOrderAppImpl) finalStatusTx(ctx context.Context, tx *sqlx.Tx, order *model.SalesOrder, lines []model.SalesOrderLine, createdBackorder bool) (constant.OrderStatus, error) {
	allFull := true
	for i := range lines {
		if lines[i].QtyReserved < lines[i].QtyOrdered {
			allFull = false
			break
		}
	}
	if allFull && len(lines) > 0 {
		return constant.OrderStatusReserved, nil
	}
	if createdBackorder {
		return constant.OrderStatusBackorder, nil
	}
	hasPending, err := s.orderRepo.HasPendingBySalesOrderTx(ctx, tx, order.ID)
	if err != nil {
		logger.Error("[Reserve] check pending backorders", zap.Error(err))
		return order.Status, errors.FromSQL(err)
	}
	if hasPending {
		return constant.OrderStatusBackorder, nil
	}
	return order.Status, nil
}

func (s *salesOrderAppImpl) publishBackorderEvents(events []rabbitmq.BackorderCreatedMessage) {
	if s.publisher == nil {
		return
	}
	for _, event := range events {
		if err := s.publisher.PublishBackorderCreated(event); err != nil {
			logger.Error("[Reserve] publish backorder created", zap.Error(err), zap.Uint64("backorder_id", event.BackorderID))
		}
	}
}

func (s *salesOrderAppImpl) GetOrder(ctx context.Context, id uint64) (*model.SalesOrder, error) {
	order, err := s.salesOrderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}
	return order, nil
}

func (s *salesOrderAppImpl) ListOrders(ctx context.Context) ([]model.SalesOrder, error) {
	orders, err := s.salesOrderRepo.ListOrders(ctx)
	if err != nil {
		logger.Error("[ListOrders] list", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return orders, nil
}

// UpdateStatus routes RESERVED through the reservation pass; any other
// status is applied directly, except that a shipped or delivered order can
// no longer be cancelled.
func (s *salesOrderAppImpl) UpdateStatus(ctx context.Context, id uint64, status constant.OrderStatus) (*model.SalesOrderWithWarnings, error) {
	if status == constant.OrderStatusReserved {
		return s.Reserve(ctx, id)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateStatus] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.salesOrderRepo.GetOrderTx(ctx, tx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}

	if status == constant.OrderStatusCancelled &&
		(order.Status == constant.OrderStatusShipped || order.Status == constant.OrderStatusDelivered) {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidTransition,
			fmt.Sprintf("cannot cancel the order, it is already %s", order.Status))
	}

	if err := s.salesOrderRepo.UpdateOrderStatusTx(ctx, tx, id, status); err != nil {
		logger.Error("[UpdateStatus] update status", zap.Error(err))
		return nil, errors.FromSQL(err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateStatus] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	order.Status = status
	return &model.SalesOrderWithWarnings{Order: order, Warnings: []string{}}, nil
}

// DeleteOrder refuses to remove an order that a shipment or backorder still
// references.
func (s *salesOrderAppImpl) DeleteOrder(ctx context.Context, id uint64) error {
	shipment, err := s.shipmentRepo.GetBySalesOrder(ctx, id)
	if err != nil {
		logger.Error("[DeleteOrder] get shipment", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if shipment != nil {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "a shipment still references this order")
	}

	backorders, err := s.orderRepo.ListBackordersBySalesOrder(ctx, id)
	if err != nil {
		logger.Error("[DeleteOrder] list backorders", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if len(backorders) > 0 {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "backorders still reference this order")
	}

	if err := s.salesOrderRepo.DeleteOrder(ctx, id); err != nil {
		return errors.FromSQL(err)
	}
	return nil
}
