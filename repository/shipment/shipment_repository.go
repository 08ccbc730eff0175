package shipment

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
)

type ShipmentRepository interface {
	InsertShipmentTx(ctx context.Context, tx *sqlx.Tx, s *model.Shipment) (uint64, error)
	GetShipment(ctx context.Context, id uint64) (*model.Shipment, error)
	GetShipmentTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Shipment, error)
	// GetBySalesOrder returns (nil, nil) when the order has no shipment.
	GetBySalesOrder(ctx context.Context, salesOrderID uint64) (*model.Shipment, error)
	ListShipments(ctx context.Context) ([]model.Shipment, error)
	UpdateShipment(ctx context.Context, s *model.Shipment) error
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.ShipmentStatus) error
	DeleteShipment(ctx context.Context, id uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewShipmentRepository(conn *sqlx.DB) ShipmentRepository {
	return &SQL{conn: conn}
}

const columns = "id, sales_order_id, warehouse_id, carrier, tracking_number, status, street, city, state, postal_code, country"

func (r *SQL) InsertShipmentTx(ctx context.Context, tx *sqlx.Tx, s *model.Shipment) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO shipment (sales_order_id, warehouse_id, carrier, tracking_number, status, street, city, state, postal_code, country) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		s.SalesOrderID, s.WarehouseID, s.Carrier, s.TrackingNumber, s.Status, s.Street, s.City, s.State, s.PostalCode, s.Country)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetShipment(ctx context.Context, id uint64) (*model.Shipment, error) {
	var s model.Shipment
	if err := r.conn.GetContext(ctx, &s, "SELECT "+columns+" FROM shipment WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQL) GetShipmentTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Shipment, error) {
	var s model.Shipment
	if err := tx.GetContext(ctx, &s, "SELECT "+columns+" FROM shipment WHERE id = ? FOR UPDATE", id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQL) GetBySalesOrder(ctx context.Context, salesOrderID uint64) (*model.Shipment, error) {
	var s model.Shipment
	err := r.conn.GetContext(ctx, &s, "SELECT "+columns+" FROM shipment WHERE sales_order_id = ?", salesOrderID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQL) ListShipments(ctx context.Context) ([]model.Shipment, error) {
	items := make([]model.Shipment, 0)
	err := r.conn.SelectContext(ctx, &items, "SELECT "+columns+" FROM shipment ORDER BY id")
	return items, err
}

func (r *SQL) UpdateShipment(ctx context.Context, s *model.Shipment) error {
	res, err := r.conn.ExecContext(ctx,
		"UPDATE shipment SET carrier = ?, tracking_number = ?, street = ?, city = ?, state = ?, postal_code = ?, country = ? WHERE id = ?",
		s.Carrier, s.TrackingNumber, s.Street, s.City, s.State, s.PostalCode, s.Country, s.ID)
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

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.ShipmentStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE shipment SET status = ? WHERE id = ?", status, id)
	return err
}

func (r *SQL) DeleteShipment(ctx context.Context, id uint64) error {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM shipment WHERE id = ?", id)
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
