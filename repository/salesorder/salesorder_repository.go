package salesorder

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
)

type SalesOrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.SalesOrder) (uint64, error)
	InsertLineTx(ctx context.Context, tx *sqlx.Tx, line *model.SalesOrderLine) (uint64, error)
	// GetOrderTx locks the order row; lines are locked separately with
	// GetLinesTx so the order aggregate is held together while reservation
	// state mutates.
	GetOrderTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.SalesOrder, error)
	GetLinesTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.SalesOrderLine, error)
	FindLineForProductTx(ctx context.Context, tx *sqlx.Tx, orderID, productID uint64) (*model.SalesOrderLine, error)
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.OrderStatus) error
	SetLineReservedTx(ctx context.Context, tx *sqlx.Tx, lineID uint64, qtyReserved int) error
	AddLineReservedTx(ctx context.Context, tx *sqlx.Tx, lineID uint64, delta int) error

	GetOrder(ctx context.Context, id uint64) (*model.SalesOrder, error)
	ListOrders(ctx context.Context) ([]model.SalesOrder, error)
	DeleteOrder(ctx context.Context, id uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewSalesOrderRepository(conn *sqlx.DB) SalesOrderRepository {
	return &SQL{conn: conn}
}

const orderColumns = "id, client_id, warehouse_id, status, country, city, street, zip, created_at"
const lineColumns = "id, sales_order_id, product_id, price, qty_ordered, qty_reserved"

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.SalesOrder) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO sales_order (client_id, warehouse_id, status, country, city, street, zip, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())",
		order.ClientID, order.WarehouseID, order.Status, order.Country, order.City, order.Street, order.Zip)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertLineTx(ctx context.Context, tx *sqlx.Tx, line *model.SalesOrderLine) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO sales_order_line (sales_order_id, product_id, price, qty_ordered, qty_reserved) VALUES (?, ?, ?, ?, ?)",
		line.SalesOrderID, line.ProductID, line.Price, line.QtyOrdered, line.QtyReserved)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetOrderTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.SalesOrder, error) {
	var order model.SalesOrder
	if err := tx.GetContext(ctx, &order,
		"SELECT "+orderColumns+" FROM sales_order WHERE id = ? FOR UPDATE", id); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *SQL) GetLinesTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.SalesOrderLine, error) {
	lines := make([]model.SalesOrderLine, 0)
	err := tx.SelectContext(ctx, &lines,
		"SELECT "+lineColumns+" FROM sales_order_line WHERE sales_order_id = ? ORDER BY id FOR UPDATE", orderID)
	return lines, err
}

func (r *SQL) FindLineForProductTx(ctx context.Context, tx *sqlx.Tx, orderID, productID uint64) (*model.SalesOrderLine, error) {
	var line model.SalesOrderLine
	if err := tx.GetContext(ctx, &line,
		"SELECT "+lineColumns+" FROM sales_order_line WHERE sales_order_id = ? AND product_id = ? ORDER BY id LIMIT 1 FOR UPDATE",
		orderID, productID); err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.OrderStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE sales_order SET status = ? WHERE id = ?", status, id)
	return err
}

func (r *SQL) SetLineReservedTx(ctx context.Context, tx *sqlx.Tx, lineID uint64, qtyReserved int) error {
	_, err := tx.ExecContext(ctx, "UPDATE sales_order_line SET qty_reserved = ? WHERE id = ?", qtyReserved, lineID)
	return err
}

func (r *SQL) AddLineReservedTx(ctx context.Context, tx *sqlx.Tx, lineID uint64, delta int) error {
	_, err := tx.ExecContext(ctx, "UPDATE sales_order_line SET qty_reserved = qty_reserved + ? WHERE id = ?", delta, lineID)
	return err
}

func (r *SQL) GetOrder(ctx context.Context, id uint64) (*model.SalesOrder, error) {
	var order model.SalesOrder
	if err := r.conn.GetContext(ctx, &order,
		"SELECT "+orderColumns+" FROM sales_order WHERE id = ?", id); err != nil {
		return nil, err
	}
	lines := make([]model.SalesOrderLine, 0)
	if err := r.conn.SelectContext(ctx, &lines,
		"SELECT "+lineColumns+" FROM sales_order_line WHERE sales_order_id = ? ORDER BY id", id); err != nil {
		return nil, err
	}
	order.Lines = lines
	return &order, nil
}

func (r *SQL) ListOrders(ctx context.Context) ([]model.SalesOrder, error) {
	orders := make([]model.SalesOrder, 0)
	if err := r.conn.SelectContext(ctx, &orders,
		"SELECT "+orderColumns+" FROM sales_order ORDER BY id"); err != nil {
		return nil, err
	}
	for i := range orders {
		lines := make([]model.SalesOrderLine, 0)
		if err := r.conn.SelectContext(ctx, &lines,
			"SELECT "+lineColumns+" FROM sales_order_line WHERE sales_order_id = ? ORDER BY id", orders[i].ID); err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}
	return orders, nil
}

func (r *SQL) DeleteOrder(ctx context.Context, id uint64) error {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM sales_order WHERE id = ?", id)
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
	_, err = r.conn.ExecContext(ctx, "DELETE FROM sales_order_line WHERE sales_order_id = ?", id)
	return err
}
