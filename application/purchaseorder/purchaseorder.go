package purchaseorder

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
	purchaseorderrepo "github.com/xchain/logitrack/repository/purchaseorder"
	salesorderrepo "github.com/xchain/logitrack/repository/salesorder"
	txrepo "github.com/xchain/logitrack/repository/tx"
	"github.com/xchain/logitrack/utils/errors"
	"github.com/xchain/logitrack/utils/logger"
	"go.uber.org/zap"
)

// PurchaseOrderApp covers buying and receiving. A purchase order is either
// direct (explicit lines) or derived from an originating order, at most one
// per originating order id. Receiving a backorder-derived purchase order
// lands the goods already earmarked: the sales order line, the inventory
// counters, the sales order status and the backorder status all move in one
// transaction.
type PurchaseOrderApp interface {
	Create(ctx context.Context, req *model.PurchaseOrderCreateRequest) (*model.PurchaseOrder, error)
	CreateFromBackorder(ctx context.Context, backorderID, supplierID uint64) (*model.PurchaseOrder, error)
	Get(ctx context.Context, id uint64) (*model.PurchaseOrder, error)
	List(ctx context.Context) ([]model.PurchaseOrder, error)
	FindBySupplier(ctx context.Context, supplierID uint64) ([]model.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.POStatus) (*model.PurchaseOrder, error)
	Delete(ctx context.Context, id uint64) error
}

type purchaseOrderAppImpl struct {
	txRepo         txrepo.TxRepository
	poRepo         purchaseorderrepo.PurchaseOrderRepository
	orderRepo      orderrepo.OrderRepository
	salesOrderRepo salesorderrepo.SalesOrderRepository
	inventoryRepo  inventoryrepo.InventoryRepository
	inventoryApp   appinventory.InventoryApp
	catalogRepo    catalogrepo.CatalogRepository
}

func NewPurchaseOrderApp(
	txRepo txrepo.TxRepository,
	poRepo purchaseorderrepo.PurchaseOrderRepository,
	orderRepo orderrepo.OrderRepository,
	salesOrderRepo salesorderrepo.SalesOrderRepository,
	inventoryRepo inventoryrepo.InventoryRepository,
	inventoryApp appinventory.InventoryApp,
	catalogRepo catalogrepo.CatalogRepository,
) PurchaseOrderApp {
	return &purchaseOrderAppImpl{
		txRepo:         txRepo,
		poRepo:         poRepo,
		orderRepo:      orderRepo,
		salesOrderRepo: salesOrderRepo,
		inventoryRepo:  inventoryRepo,
		inventoryApp:   inventoryApp,
		catalogRepo:    catalogRepo,
	}
}

func (p *purchaseOrderAppImpl) Create(ctx context.Context, req *model.PurchaseOrderCreateRequest) (*model.PurchaseOrder, error) {
	if req.OrderID == nil && len(req.Lines) == 0 {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "a purchase order needs an originating order or at least one line")
	}

	supplier, err := p.catalogRepo.GetSupplier(ctx, req.SupplierID)
	if err != nil {
		logger.Error("[CreatePurchaseOrder] get supplier", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if supplier == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := p.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreatePurchaseOrder] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = p.txRepo.RollbackTx(tx)
		}
	}()

	po := &model.PurchaseOrder{
		SupplierID: req.SupplierID,
		Status:     constant.POStatusApproved,
		OrderID:    req.OrderID,
	}

	var lines []model.POLine
	if req.OrderID != nil {
		origin, err := p.orderRepo.GetOrderTx(ctx, tx, *req.OrderID)
		if err != nil {
			return nil, errors.FromSQL(err)
		}
		if err := p.checkNoExistingPOTx(ctx, tx, origin.ID); err != nil {
			return nil, err
		}
		lines, err = p.deriveLinesTx(ctx, origin, req.Lines)
		if err != nil {
			return nil, err
		}
	} else {
		lines, err = p.directLinesTx(ctx, req.Lines)
		if err != nil {
			return nil, err
		}
	}

	poID, err := p.poRepo.InsertPOTx(ctx, tx, po)
	if err != nil {
		logger.Error("[CreatePurchaseOrder] insert purchase order", zap.Error(err))
		return nil, errors.FromSQL(err)
	}
	po.ID = poID

	for i := range lines {
		lines[i].PurchaseOrderID = poID
		lineID, err := p.poRepo.InsertLineTx(ctx, tx, &lines[i])
		if err != nil {
			logger.Error("[CreatePurchaseOrder] insert line", zap.Error(err))
			return nil, errors.FromSQL(err)
		}
		lines[i].ID = lineID
	}
	po.Lines = lines

	if err := p.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreatePurchaseOrder] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return po, nil
}

// deriveLinesTx builds the line list for an order-derived purchase order:
// one line for the originating order's product whose quantity is the order's
// quantity plus any same-product quantity among the extra lines, and one
// line per remaining extra product.
func (p *purchaseOrderAppImpl) deriveLinesTx(ctx context.Context, origin *model.Order, extras []model.POLineCreateRequest) ([]model.POLine, error) {
	baseQty := origin.Qty
	rest := make([]model.POLineCreateRequest, 0, len(extras))
	for _, extra := range extras {
		if extra.ProductID == origin.ProductID {
			baseQty += extra.Qty
			continue
		}
		rest = append(rest, extra)
	}

	lines := make([]model.POLine, 0, len(rest)+1)
	base, err := p.snapshotLine(ctx, origin.ProductID, baseQty)
	if err != nil {
		return nil, err
	}
	lines = append(lines, *base)

	for _, extra := range rest {
		line, err := p.snapshotLine(ctx, extra.ProductID, extra.Qty)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}
	return lines, nil
}

func (p *purchaseOrderAppImpl) directLinesTx(ctx context.Context, reqs []model.POLineCreateRequest) ([]model.POLine, error) {
	lines := make([]model.POLine, 0, len(reqs))
	for _, req := range reqs {
		line, err := p.snapshotLine(ctx, req.ProductID, req.Qty)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}
	return lines, nil
}

func (p *purchaseOrderAppImpl) snapshotLine(ctx context.Context, productID uint64, qty int) (*model.POLine, error) {
	product, err := p.catalogRepo.GetProduct(ctx, productID)
	if err != nil {
		logger.Error("[CreatePurchaseOrder] get product", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return &model.POLine{
		ProductID: product.ID,
		Qty:       qty,
		Price:     product.Price,
	}, nil
}

func (p *purchaseOrderAppImpl) checkNoExistingPOTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error {
	exists, err := p.poRepo.ExistsForOrderTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CreatePurchaseOrder] check existing purchase order", zap.Error(err))
		return errors.FromSQL(err)
	}
	if exists {
		return errors.SetCustomErrorWithDetail(constant.ErrDuplicatePurchaseOrder,
			fmt.Sprintf("a purchase order already exists for order %d", orderID))
	}
	return nil
}

// CreateFromBackorder cuts a single-line purchase order for exactly the
// backorder's outstanding quantity. The auto-purchase worker drives this
// through the internal API with the default supplier.
func (p *purchaseOrderAppImpl) CreateFromBackorder(ctx context.Context, backorderID, supplierID uint64) (*model.PurchaseOrder, error) {
	supplier, err := p.catalogRepo.GetSupplier(ctx, supplierID)
	if err != nil {
		logger.Error("[CreateFromBackorder] get supplier", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if supplier == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := p.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateFromBackorder] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = p.txRepo.RollbackTx(tx)
		}
	}()

	backorder, err := p.orderRepo.GetOrderTx(ctx, tx, backorderID)
	if err != nil {
		return nil, errors.FromSQL(err)
	}
	if backorder.Kind != constant.OrderKindBackorder {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "order is not a backorder")
	}

	if err := p.checkNoExistingPOTx(ctx, tx, backorder.ID); err != nil {
		return nil, err
	}

	line, err := p.snapshotLine(ctx, backorder.ProductID, backorder.Qty)
	if err != nil {
		return nil, err
	}

	po := &model.PurchaseOrder{
		SupplierID: supplierID,
		Status:     constant.POStatusApproved,
		OrderID:    &backorder.ID,
	}
	poID, err := p.poRepo.InsertPOTx(ctx, tx, po)
	if err != nil {
		logger.Error("[CreateFromBackorder] insert purchase order", zap.Error(err))
		return nil, errors.FromSQL(err)
	}
	po.ID = poID

	line.PurchaseOrderID = poID
	lineID, err := p.poRepo.InsertLineTx(ctx, tx, line)
	if err != nil {
		logger.Error("[CreateFromBackorder] insert line", zap.Error(err))
		return nil, errors.FromSQL(err)
	}
	line.ID = lineID
	po.Lines = []model.POLine{*line}

	if err := p.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateFromBackorder] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return po, nil
}

func (p *purchaseOrderAppImpl) Get(ctx context.Context, id uint64) (*model.PurchaseOrder, error) {
	po, err := p.poRepo.GetPO(ctx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}
	return po, nil
}

func (p *purchaseOrderAppImpl) List(ctx context.Context) ([]model.PurchaseOrder, error) {
	pos, err := p.poRepo.ListPOs(ctx)
	if err != nil {
		logger.Error("[ListPurchaseOrders] list", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return pos, nil
}

func (p *purchaseOrderAppImpl) FindBySupplier(ctx context.Context, supplierID uint64) ([]model.PurchaseOrder, error) {
	pos, err := p.poRepo.ListBySupplier(ctx, supplierID)
	if err != nil {
		logger.Error("[FindBySupplier] list", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return pos, nil
}

// UpdateStatus only moves APPROVED to RECEIVED. Receiving a purchase order
// derived from a backorder settles it end to end; a direct or simple-order
// purchase order changes nothing but its own status.
func (p *purchaseOrderAppImpl) UpdateStatus(ctx context.Context, id uint64, status constant.POStatus) (*model.PurchaseOrder, error) {
	tx, err := p.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReceivePurchaseOrder] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = p.txRepo.RollbackTx(tx)
		}
	}()

	po, err := p.poRepo.GetPOTx(ctx, tx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}

	if po.Status == status {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidTransition,
			fmt.Sprintf("purchase order already has status %s", status))
	}
	if po.Status == constant.POStatusReceived {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidTransition, "a received purchase order cannot change status")
	}
	if status != constant.POStatusReceived {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	if po.OrderID != nil {
		origin, err := p.orderRepo.GetOrderTx(ctx, tx, *po.OrderID)
		if err != nil {
			return nil, errors.FromSQL(err)
		}
		if origin.Kind == constant.OrderKindBackorder {
			if err := p.settleBackorderTx(ctx, tx, origin); err != nil {
				return nil, err
			}
		}
	}

	if err := p.poRepo.UpdateStatusTx(ctx, tx, id, constant.POStatusReceived); err != nil {
		logger.Error("[ReceivePurchaseOrder] update status", zap.Error(err))
		return nil, errors.FromSQL(err)
	}

	if err := p.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReceivePurchaseOrder] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	po.Status = constant.POStatusReceived
	return po, nil
}

// settleBackorderTx applies the arrival of backordered goods: the matching
// sales order line gains the backordered quantity, the home-warehouse
// inventory receives it (on hand and reserved both grow, so the stock lands
// pre-earmarked), the sales order returns to RESERVED and the backorder is
// FULFILLED.
func (p *purchaseOrderAppImpl) settleBackorderTx(ctx context.Context, tx *sqlx.Tx, backorder *model.Order) error {
	if backorder.SalesOrderID == nil {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "backorder has no sales order")
	}

	salesOrder, err := p.salesOrderRepo.GetOrderTx(ctx, tx, *backorder.SalesOrderID)
	if err != nil {
		return errors.FromSQL(err)
	}

	line, err := p.salesOrderRepo.FindLineForProductTx(ctx, tx, salesOrder.ID, backorder.ProductID)
	if err != nil {
		return errors.FromSQL(err)
	}
	if err := p.salesOrderRepo.AddLineReservedTx(ctx, tx, line.ID, backorder.Qty); err != nil {
		logger.Error("[ReceivePurchaseOrder] add line reserved", zap.Error(err))
		return errors.FromSQL(err)
	}

	inv, err := p.inventoryRepo.FindLatestTx(ctx, tx, backorder.ProductID, salesOrder.WarehouseID)
	if err != nil {
		logger.Error("[ReceivePurchaseOrder] find inventory", zap.Error(err))
		return errors.FromSQL(err)
	}
	if inv == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := p.inventoryApp.ReceiveTx(ctx, tx, inv.ID, backorder.Qty); err != nil {
		return err
	}

	if err := p.salesOrderRepo.UpdateOrderStatusTx(ctx, tx, salesOrder.ID, constant.OrderStatusReserved); err != nil {
		logger.Error("[ReceivePurchaseOrder] update sales order status", zap.Error(err))
		return errors.FromSQL(err)
	}
	if err := p.orderRepo.UpdateStatusTx(ctx, tx, backorder.ID, constant.BackorderStatusFulfilled); err != nil {
		logger.Error("[ReceivePurchaseOrder] update backorder status", zap.Error(err))
		return errors.FromSQL(err)
	}
	return nil
}

func (p *purchaseOrderAppImpl) Delete(ctx context.Context, id uint64) error {
	po, err := p.poRepo.GetPO(ctx, id)
	if err != nil {
		return errors.FromSQL(err)
	}
	if po.Status == constant.POStatusReceived {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "a received purchase order cannot be deleted")
	}
	if err := p.poRepo.DeletePO(ctx, id); err != nil {
		return errors.FromSQL(err)
	}
	return nil
}
