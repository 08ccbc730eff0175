package purchaseorder

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
)

type PurchaseOrderRepository interface {
	InsertPOTx(ctx context.Context, tx *sqlx.Tx, po *model.PurchaseOrder) (uint64, error)
	InsertLineTx(ctx context.Context, tx *sqlx.Tx, line *model.POLine) (uint64, error)
	GetPO(ctx context.Context, id uint64) (*model.PurchaseOrder, error)
	GetPOTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.PurchaseOrder, error)
	ListPOs(ctx context.Context) ([]model.PurchaseOrder, error)
	ListBySupplier(ctx context.Context, supplierID uint64) ([]model.PurchaseOrder, error)
	// ExistsForOrderTx backs the one-purchase-order-per-originating-order
	// rule; the row scan is FOR UPDATE so two concurrent creations against
	// the same order serialize.
	ExistsForOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (bool, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.POStatus) error
	DeletePO(ctx context.Context, id uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewPurchaseOrderRepository(conn *sqlx.DB) PurchaseOrderRepository {
	return &SQL{conn: conn}
}

const poColumns = "id, supplier_id, status, order_id, created_at"
const poLineColumns = "id, purchase_order_id, product_id, qty, price"

func (r *SQL) InsertPOTx(ctx context.Context, tx *sqlx.Tx, po *model.PurchaseOrder) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO purchase_order (supplier_id, status, order_id, created_at) VALUES (?, ?, ?, NOW())",
		po.SupplierID, po.Status, po.OrderID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertLineTx(ctx context.Context, tx *sqlx.Tx, line *model.POLine) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO po_line (purchase_order_id, product_id, qty, price) VALUES (?, ?, ?, ?)",
		line.PurchaseOrderID, line.ProductID, line.Qty, line.Price)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) getLines(ctx context.Context, q sqlx.QueryerContext, poID uint64) ([]model.POLine, error) {
	lines := make([]model.POLine, 0)
	err := sqlx.SelectContext(ctx, q, &lines,
		"SELECT "+poLineColumns+" FROM po_line WHERE purchase_order_id = ? ORDER BY id", poID)
	return lines, err
}

func (r *SQL) GetPO(ctx context.Context, id uint64) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	if err := r.conn.GetContext(ctx, &po, "SELECT "+poColumns+" FROM purchase_order WHERE id = ?", id); err != nil {
		return nil, err
	}
	lines, err := r.getLines(ctx, r.conn, id)
	if err != nil {
		return nil, err
	}
	po.Lines = lines
	return &po, nil
}

func (r *SQL) GetPOTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	if err := tx.GetContext(ctx, &po, "SELECT "+poColumns+" FROM purchase_order WHERE id = ? FOR UPDATE", id); err != nil {
		return nil, err
	}
	lines, err := r.getLines(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	po.Lines = lines
	return &po, nil
}

func (r *SQL) ListPOs(ctx context.Context) ([]model.PurchaseOrder, error) {
	pos := make([]model.PurchaseOrder, 0)
	if err := r.conn.SelectContext(ctx, &pos, "SELECT "+poColumns+" FROM purchase_order ORDER BY id"); err != nil {
		return nil, err
	}
	return r.attachLines(ctx, pos)
}

func (r *SQL) ListBySupplier(ctx context.Context, supplierID uint64) ([]model.PurchaseOrder, error) {
	pos := make([]model.PurchaseOrder, 0)
	if err := r.conn.SelectContext(ctx, &pos,
		"SELECT "+poColumns+" FROM purchase_order WHERE supplier_id = ? ORDER BY id", supplierID); err != nil {
		return nil, err
	}
	return r.attachLines(ctx, pos)
}

func (r *SQL) attachLines(ctx context.Context, pos []model.PurchaseOrder) ([]model.PurchaseOrder, error) {
	for i := range pos {
		lines, err := r.getLines(ctx, r.conn, pos[i].ID)
		if err != nil {
			return nil, err
		}
		pos[i].Lines = lines
	}
	return pos, nil
}

func (r *SQL) ExistsForOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (bool, error) {
	var count int64
	if err := tx.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM purchase_order WHERE order_id = ? FOR UPDATE", orderID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.POStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE purchase_order SET status = ? WHERE id = ?", status, id)
	return err
}

func (r *SQL) DeletePO(ctx context.Context, id uint64) error {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM purchase_order WHERE id = ?", id)
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
	_, err = r.conn.ExecContext(ctx, "DELETE FROM po_line WHERE purchase_order_id = ?", id)
	return err
}
