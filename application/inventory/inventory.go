package inventory

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
	catalogrepo "github.com/xchain/logitrack/repository/catalog"
	inventoryrepo "github.com/xchain/logitrack/repository/inventory"
	txrepo "github.com/xchain/logitrack/repository/tx"
	"github.com/xchain/logitrack/utils/errors"
	"github.com/xchain/logitrack/utils/logger"
	"go.uber.org/zap"
)

// InventoryApp is the inventory ledger. The Tx methods are the ledger
// primitives other components call inside their own transactions; each one
// re-reads the locked row before touching counters, and every on-hand
// change writes its movement row in the same transaction.
type InventoryApp interface {
	CreateInventory(ctx context.Context, req *model.InventoryCreateRequest) (*model.Inventory, error)
	ListInventories(ctx context.Context) ([]model.Inventory, error)
	GetInventory(ctx context.Context, id uint64) (*model.Inventory, error)
	DeleteInventory(ctx context.Context, id uint64) error
	ListMovements(ctx context.Context, inventoryID uint64) ([]model.InventoryMovement, error)
	Adjust(ctx context.Context, id uint64, delta int) (*model.Inventory, error)
	Transfer(ctx context.Context, req *model.TransferRequest) error

	ReserveTx(ctx context.Context, tx *sqlx.Tx, inventoryID uint64, qty int) error
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, inventoryID uint64, qty int) error
	ReceiveTx(ctx context.Context, tx *sqlx.Tx, inventoryID uint64, qty int) error
	TransferTx(ctx context.Context, tx *sqlx.Tx, sourceID, destID uint64, qty int) error
}

type inventoryAppImpl struct {
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
	catalogRepo   catalogrepo.CatalogRepository
}

func NewInventoryApp(txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository, catalogRepo catalogrepo.CatalogRepository) InventoryApp {
	return &inventoryAppImpl{
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		catalogRepo:   catalogRepo,
	}
}

func (s *inventoryAppImpl) CreateInventory(ctx context.Context, req *model.InventoryCreateRequest) (*model.Inventory, error) {
	if req.QtyReserved > req.QtyOnHand {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "qty_reserved cannot exceed qty_on_hand")
	}

	warehouse, err := s.catalogRepo.GetWarehouse(ctx, req.WarehouseID)
	if err != nil {
		logger.Error("[CreateInventory] get warehouse", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	product, err := s.catalogRepo.GetProduct(ctx, req.ProductID)
	if err != nil {
		logger.Error("[CreateInventory] get product", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	inv := &model.Inventory{
		WarehouseID: req.WarehouseID,
		ProductID:   req.ProductID,
		QtyOnHand:   req.QtyOnHand,
		QtyReserved: req.QtyReserved,
	}
	id, err := s.inventoryRepo.InsertInventory(ctx, inv)
	if err != nil {
		logger.Error("[CreateInventory] insert inventory", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	inv.ID = id
	return inv, nil
}

func (s *inventoryAppImpl) ListInventories(ctx context.Context) ([]model.Inventory, error) {
	items, err := s.inventoryRepo.ListInventories(ctx)
	if err != nil {
		logger.Error("[ListInventories] list", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *inventoryAppImpl) GetInventory(ctx context.Context, id uint64) (*model.Inventory, error) {
	inv, err := s.inventoryRepo.GetInventory(ctx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}
	return inv, nil
}

func (s *inventoryAppImpl) DeleteInventory(ctx context.Context, id uint64) error {
	inv, err := s.inventoryRepo.GetInventory(ctx, id)
	if err != nil {
		return errors.FromSQL(err)
	}
	if inv.QtyReserved > 0 {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "inventory still has reserved units")
	}
	if err := s.inventoryRepo.DeleteInventory(ctx, id); err != nil {
		return errors.FromSQL(err)
	}
	return nil
}

func (s *inventoryAppImpl) ListMovements(ctx context.Context, inventoryID uint64) ([]model.InventoryMovement, error) {
	if _, err := s.inventoryRepo.GetInventory(ctx, inventoryID); err != nil {
		return nil, errors.FromSQL(err)
	}
	items, err := s.inventoryRepo.ListMovements(ctx, inventoryID)
	if err != nil {
		logger.Error("[ListMovements] list", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// Adjust applies a manual shrinkage (damage, loss). Only negative deltas
// are accepted, and the result may never dip below the reserved quantity.
func (s *inventoryAppImpl) Adjust(ctx context.Context, id uint64, delta int) (*model.Inventory, error) {
	if delta >= 0 {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "adjustment quantity must be negative, like: -2")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Adjust] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	inv, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}

	if inv.QtyOnHand+delta < inv.QtyReserved {
		maxAllowed := inv.QtyOnHand - inv.QtyReserved
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidAdjustment,
			fmt.Sprintf("invalid adjustment, the maximum permissible adjustment is -%d", maxAllowed))
	}

	if err := s.inventoryRepo.AddOnHandTx(ctx, tx, id, delta); err != nil {
		logger.Error("[Adjust] update on hand", zap.Error(err))
		return nil, errors.FromSQL(err)
	}
	if err := s.inventoryRepo.InsertMovementTx(ctx, tx, id, constant.MovementAdjustment, -delta); err != nil {
		logger.Error("[Adjust] insert movement", zap.Error(err))
		return nil, errors.FromSQL(err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Adjust] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	inv.QtyOnHand += delta
	return inv, nil
}

// Transfer moves stock between two warehouses of the same product outside
// of any reservation flow (manual rebalancing).
func (s *inventoryAppImpl) Transfer(ctx context.Context, req *model.TransferRequest) error {
	if req.FromWarehouseID == req.ToWarehouseID {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Quantity <= 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Transfer] begin tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	source, err := s.inventoryRepo.FindLatestTx(ctx, tx, req.ProductID, req.FromWarehouseID)
	if err != nil {
		logger.Error("[Transfer] find source", zap.Error(err))
		return errors.FromSQL(err)
	}
	dest, err := s.inventoryRepo.FindLatestTx(ctx, tx, req.ProductID, req.ToWarehouseID)
	if err != nil {
		logger.Error("[Transfer] find destination", zap.Error(err))
		return errors.FromSQL(err)
	}
	if source == nil || dest == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.TransferTx(ctx, tx, source.ID, dest.ID, req.Quantity); err != nil {
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Transfer] commit tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// ReserveTx earmarks qty available units. The caller's transaction owns the
// row lock for its full duration, so the availability check and the counter
// update cannot interleave with a competing reservation.
func (s *inventoryAppImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, inventoryID uint64, qty int) error {
	inv, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, inventoryID)
	if err != nil {
		return errors.FromSQL(err)
	}
	if qty > inv.Available() {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	if err := s.inventoryRepo.AddReservedTx(ctx, tx, inventoryID, qty); err != nil {
		return errors.FromSQL(err)
	}
	return nil
}

func (s *inventoryAppImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, inventoryID uint64, qty int) error {
	inv, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, inventoryID)
	if err != nil {
		return errors.FromSQL(err)
	}
	if inv.QtyReserved-qty < 0 {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "release would drive qty_reserved negative")
	}
	if err := s.inventoryRepo.AddReservedTx(ctx, tx, inventoryID, -qty); err != nil {
		return errors.FromSQL(err)
	}
	return nil
}

// ReceiveTx books replenishment that arrives already earmarked: both
// counters grow by qty and an INBOUND movement is recorded.
func (s *inventoryAppImpl) ReceiveTx(ctx context.Context, tx *sqlx.Tx, inventoryID uint64, qty int) error {
	if _, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, inventoryID); err != nil {
		return errors.FromSQL(err)
	}
	if err := s.inventoryRepo.ReceiveTx(ctx, tx, inventoryID, qty); err != nil {
		return errors.FromSQL(err)
	}
	if err := s.inventoryRepo.InsertMovementTx(ctx, tx, inventoryID, constant.MovementInbound, qty); err != nil {
		return errors.FromSQL(err)
	}
	return nil
}

// TransferTx moves qty on-hand units from source to destination, recording
// one OUTBOUND and one INBOUND movement. Rows are locked in ascending id
// order so two opposite-direction transfers cannot deadlock.
func (s *inventoryAppImpl) TransferTx(ctx context.Context, tx *sqlx.Tx, sourceID, destID uint64, qty int) error {
	firstID, secondID := sourceID, destID
	if destID < sourceID {
		firstID, secondID = destID, sourceID
	}

	first, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, firstID)
	if err != nil {
		return errors.FromSQL(err)
	}
	second, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, secondID)
	if err != nil {
		return errors.FromSQL(err)
	}

	source := first
	if second.ID == sourceID {
		source = second
	}

	if qty > source.Available() {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}

	if err := s.inventoryRepo.AddOnHandTx(ctx, tx, sourceID, -qty); err != nil {
		return errors.FromSQL(err)
	}
	if err := s.inventoryRepo.InsertMovementTx(ctx, tx, sourceID, constant.MovementOutbound, qty); err != nil {
		return errors.FromSQL(err)
	}
	if err := s.inventoryRepo.AddOnHandTx(ctx, tx, destID, qty); err != nil {
		return errors.FromSQL(err)
	}
	if err := s.inventoryRepo.InsertMovementTx(ctx, tx, destID, constant.MovementInbound, qty); err != nil {
		return errors.FromSQL(err)
	}
	return nil
}
