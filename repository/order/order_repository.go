package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
)

// OrderRepository stores the tagged order variant (simple orders and
// backorders) in a single table keyed by kind.
type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, o *model.Order) (uint64, error)
	GetOrder(ctx context.Context, id uint64) (*model.Order, error)
	GetOrderTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Order, error)
	ListBackorders(ctx context.Context) ([]model.Order, error)
	ListBackordersBySalesOrder(ctx context.Context, salesOrderID uint64) ([]model.Order, error)
	HasPendingBySalesOrderTx(ctx context.Context, tx *sqlx.Tx, salesOrderID uint64) (bool, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.BackorderStatus) error
	UpdateSimpleOrder(ctx context.Context, id uint64, qty, extraQty int) error
	DeleteOrderTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const columns = "id, kind, product_id, qty, extra_qty, sales_order_id, status, created_at"

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, o *model.Order) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO orders (kind, product_id, qty, extra_qty, sales_order_id, status, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())",
		o.Kind, o.ProductID, o.Qty, o.ExtraQty, o.SalesOrderID, o.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetOrder(ctx context.Context, id uint64) (*model.Order, error) {
	var o model.Order
	if err := r.conn.GetContext(ctx, &o, "SELECT "+columns+" FROM orders WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *SQL) GetOrderTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Order, error) {
	var o model.Order
	if err := tx.GetContext(ctx, &o, "SELECT "+columns+" FROM orders WHERE id = ? FOR UPDATE", id); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *SQL) ListBackorders(ctx context.Context) ([]model.Order, error) {
	items := make([]model.Order, 0)
	err := r.conn.SelectContext(ctx, &items,
		"SELECT "+columns+" FROM orders WHERE kind = ? ORDER BY id", constant.OrderKindBackorder)
	return items, err
}

func (r *SQL) ListBackordersBySalesOrder(ctx context.Context, salesOrderID uint64) ([]model.Order, error) {
	items := make([]model.Order, 0)
	err := r.conn.SelectContext(ctx, &items,
		"SELECT "+columns+" FROM orders WHERE kind = ? AND sales_order_id = ? ORDER BY id",
		constant.OrderKindBackorder, salesOrderID)
	return items, err
}

func (r *SQL) HasPendingBySalesOrderTx(ctx context.Context, tx *sqlx.Tx, salesOrderID uint64) (bool, error) {
	var count int64
	err := tx.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM orders WHERE kind = ? AND sales_order_id = ? AND status = ?",
		constant.OrderKindBackorder, salesOrderID, constant.BackorderStatusPending)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.BackorderStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE orders SET status = ? WHERE id = ?", status, id)
	return err
}

func (r *SQL) UpdateSimpleOrder(ctx context.Context, id uint64, qty, extraQty int) error {
	res, err := r.conn.ExecContext(ctx,
		"UPDATE orders SET qty = ?, extra_qty = ? WHERE id = ? AND kind = ?",
		qty, extraQty, id, constant.OrderKindSimple)
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

func (r *SQL) DeleteOrderTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
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
