package backorder

import (
	"context"

	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
	catalogrepo "github.com/xchain/logitrack/repository/catalog"
	orderrepo "github.com/xchain/logitrack/repository/order"
	purchaseorderrepo "github.com/xchain/logitrack/repository/purchaseorder"
	txrepo "github.com/xchain/logitrack/repository/tx"
	"github.com/xchain/logitrack/utils/errors"
	"github.com/xchain/logitrack/utils/logger"
	"go.uber.org/zap"
)

// BackorderApp exposes the backorder tracker plus the standalone simple
// orders that share its table. Backorders are only created by the
// reservation pass and only flipped to FULFILLED by receiving; here they
// are read-only.
type BackorderApp interface {
	ListBackorders(ctx context.Context) ([]model.Order, error)
	GetBackorder(ctx context.Context, id uint64) (*model.Order, error)
	FindBySalesOrder(ctx context.Context, salesOrderID uint64) ([]model.Order, error)
	CreateSimpleOrder(ctx context.Context, req *model.SimpleOrderCreateRequest) (*model.Order, error)
	GetOrder(ctx context.Context, id uint64) (*model.Order, error)
	UpdateSimpleOrder(ctx context.Context, id uint64, req *model.SimpleOrderUpdateRequest) (*model.Order, error)
	DeleteOrder(ctx context.Context, id uint64) error
}

type backorderAppImpl struct {
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	poRepo      purchaseorderrepo.PurchaseOrderRepository
	catalogRepo catalogrepo.CatalogRepository
}

func NewBackorderApp(
	txRepo txrepo.TxRepository,
	orderRepo orderrepo.OrderRepository,
	poRepo purchaseorderrepo.PurchaseOrderRepository,
	catalogRepo catalogrepo.CatalogRepository,
) BackorderApp {
	return &backorderAppImpl{
		txRepo:      txRepo,
		orderRepo:   orderRepo,
		poRepo:      poRepo,
		catalogRepo: catalogRepo,
	}
}

func (b *backorderAppImpl) ListBackorders(ctx context.Context) ([]model.Order, error) {
	items, err := b.orderRepo.ListBackorders(ctx)
	if err != nil {
		logger.Error("[ListBackorders] list", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (b *backorderAppImpl) GetBackorder(ctx context.Context, id uint64) (*model.Order, error) {
	order, err := b.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}
	if order.Kind != constant.OrderKindBackorder {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return order, nil
}

func (b *backorderAppImpl) FindBySalesOrder(ctx context.Context, salesOrderID uint64) ([]model.Order, error) {
	items, err := b.orderRepo.ListBackordersBySalesOrder(ctx, salesOrderID)
	if err != nil {
		logger.Error("[FindBySalesOrder] list", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (b *backorderAppImpl) CreateSimpleOrder(ctx context.Context, req *model.SimpleOrderCreateRequest) (*model.Order, error) {
	product, err := b.catalogRepo.GetProduct(ctx, req.ProductID)
	if err != nil {
		logger.Error("[CreateSimpleOrder] get product", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := b.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateSimpleOrder] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = b.txRepo.RollbackTx(tx)
		}
	}()

	order := &model.Order{
		Kind:      constant.OrderKindSimple,
		ProductID: req.ProductID,
		Qty:       req.Qty,
		ExtraQty:  req.ExtraQty,
		Status:    constant.BackorderStatusPending,
	}
	id, err := b.orderRepo.InsertOrderTx(ctx, tx, order)
	if err != nil {
		logger.Error("[CreateSimpleOrder] insert order", zap.Error(err))
		return nil, errors.FromSQL(err)
	}
	order.ID = id

	if err := b.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateSimpleOrder] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return order, nil
}

func (b *backorderAppImpl) GetOrder(ctx context.Context, id uint64) (*model.Order, error) {
	order, err := b.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}
	return order, nil
}

func (b *backorderAppImpl) UpdateSimpleOrder(ctx context.Context, id uint64, req *model.SimpleOrderUpdateRequest) (*model.Order, error) {
	order, err := b.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}
	if order.Kind != constant.OrderKindSimple {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "only simple orders can be edited")
	}

	if err := b.orderRepo.UpdateSimpleOrder(ctx, id, req.Qty, req.ExtraQty); err != nil {
		return nil, errors.FromSQL(err)
	}

	order.Qty = req.Qty
	order.ExtraQty = req.ExtraQty
	return order, nil
}

// DeleteOrder removes a simple order or backorder unless a purchase order
// was already cut from it.
func (b *backorderAppImpl) DeleteOrder(ctx context.Context, id uint64) error {
	tx, err := b.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteOrder] begin tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = b.txRepo.RollbackTx(tx)
		}
	}()

	if _, err := b.orderRepo.GetOrderTx(ctx, tx, id); err != nil {
		return errors.FromSQL(err)
	}

	exists, err := b.poRepo.ExistsForOrderTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteOrder] check purchase orders", zap.Error(err))
		return errors.FromSQL(err)
	}
	if exists {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "a purchase order still references this order")
	}

	if err := b.orderRepo.DeleteOrderTx(ctx, tx, id); err != nil {
		return errors.FromSQL(err)
	}

	if err := b.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteOrder] commit tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return nil
}
