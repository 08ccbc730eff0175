package inventory

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
)

// InventoryRepository owns the stock counters and the append-only movement
// log. Counter updates are relative SQL so concurrent transactions cannot
// lose writes; row locks are taken with SELECT ... FOR UPDATE by the Tx
// getters before any decision is made on the counters.
type InventoryRepository interface {
	InsertInventory(ctx context.Context, inv *model.Inventory) (uint64, error)
	ListInventories(ctx context.Context) ([]model.Inventory, error)
	GetInventory(ctx context.Context, id uint64) (*model.Inventory, error)
	DeleteInventory(ctx context.Context, id uint64) error

	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Inventory, error)
	// FindLatestTx returns the most recent inventory row for the pair,
	// locked, or (nil, nil) when absent.
	FindLatestTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64) (*model.Inventory, error)
	// FindHelperTx returns the helper row with the lowest id among other
	// warehouses holding at least minQty available units, locked, or
	// (nil, nil) when no warehouse can help.
	FindHelperTx(ctx context.Context, tx *sqlx.Tx, productID uint64, minQty int, excludeWarehouseID uint64) (*model.Inventory, error)

	AddReservedTx(ctx context.Context, tx *sqlx.Tx, id uint64, delta int) error
	AddOnHandTx(ctx context.Context, tx *sqlx.Tx, id uint64, delta int) error
	ReceiveTx(ctx context.Context, tx *sqlx.Tx, id uint64, qty int) error

	InsertMovementTx(ctx context.Context, tx *sqlx.Tx, inventoryID uint64, movementType constant.MovementType, qty int) error
	ListMovements(ctx context.Context, inventoryID uint64) ([]model.InventoryMovement, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertInventory(ctx context.Context, inv *model.Inventory) (uint64, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO inventory (warehouse_id, product_id, qty_on_hand, qty_reserved) VALUES (?, ?, ?, ?)",
		inv.WarehouseID, inv.ProductID, inv.QtyOnHand, inv.QtyReserved)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) ListInventories(ctx context.Context) ([]model.Inventory, error) {
	items := make([]model.Inventory, 0)
	err := r.conn.SelectContext(ctx, &items,
		"SELECT id, warehouse_id, product_id, qty_on_hand, qty_reserved FROM inventory ORDER BY id")
	return items, err
}

func (r *SQL) GetInventory(ctx context.Context, id uint64) (*model.Inventory, error) {
	var inv model.Inventory
	if err := r.conn.GetContext(ctx, &inv,
		"SELECT id, warehouse_id, product_id, qty_on_hand, qty_reserved FROM inventory WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *SQL) DeleteInventory(ctx context.Context, id uint64) error {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM inventory WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Inventory, error) {
	var inv model.Inventory
	if err := tx.GetContext(ctx, &inv,
		"SELECT id, warehouse_id, product_id, qty_on_hand, qty_reserved FROM inventory WHERE id = ? FOR UPDATE", id); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *SQL) FindLatestTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64) (*model.Inventory, error) {
	var inv model.Inventory
	err := tx.GetContext(ctx, &inv,
		"SELECT id, warehouse_id, product_id, qty_on_hand, qty_reserved FROM inventory WHERE product_id = ? AND warehouse_id = ? ORDER BY id DESC LIMIT 1 FOR UPDATE",
		productID, warehouseID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *SQL) FindHelperTx(ctx context.Context, tx *sqlx.Tx, productID uint64, minQty int, excludeWarehouseID uint64) (*model.Inventory, error) {
	var inv model.Inventory
	err := tx.GetContext(ctx, &inv,
		"SELECT id, warehouse_id, product_id, qty_on_hand, qty_reserved FROM inventory WHERE product_id = ? AND warehouse_id != ? AND qty_on_hand - qty_reserved >= ? ORDER BY id ASC LIMIT 1 FOR UPDATE",
		productID, excludeWarehouseID, minQty)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *SQL) AddReservedTx(ctx context.Context, tx *sqlx.Tx, id uint64, delta int) error {
	_, err := tx.ExecContext(ctx, "UPDATE inventory SET qty_reserved = qty_reserved + ? WHERE id = ?", delta, id)
	return err
}

func (r *SQL) AddOnHandTx(ctx context.Context, tx *sqlx.Tx, id uint64, delta int) error {
	_, err := tx.ExecContext(ctx, "UPDATE inventory SET qty_on_hand = qty_on_hand + ? WHERE id = ?", delta, id)
	return err
}

func (r *SQL) ReceiveTx(ctx context.Context, tx *sqlx.Tx, id uint64, qty int) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE inventory SET qty_on_hand = qty_on_hand + ?, qty_reserved = qty_reserved + ? WHERE id = ?", qty, qty, id)
	return err
}

func (r *SQL) InsertMovementTx(ctx context.Context, tx *sqlx.Tx, inventoryID uint64, movementType constant.MovementType, qty int) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO inventory_movement (inventory_id, type, qty, created_at) VALUES (?, ?, ?, NOW())",
		inventoryID, movementType, qty)
	return err
}

func (r *SQL) ListMovements(ctx context.Context, inventoryID uint64) ([]model.InventoryMovement, error) {
	items := make([]model.InventoryMovement, 0)
	err := r.conn.SelectContext(ctx, &items,
		"SELECT id, inventory_id, type, qty, created_at FROM inventory_movement WHERE inventory_id = ? ORDER BY id", inventoryID)
	return items, err
}
