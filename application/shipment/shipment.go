package shipment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
	catalogrepo "github.com/xchain/logitrack/repository/catalog"
	salesorderrepo "github.com/xchain/logitrack/repository/salesorder"
	shipmentrepo "github.com/xchain/logitrack/repository/shipment"
	txrepo "github.com/xchain/logitrack/repository/tx"
	"github.com/xchain/logitrack/utils/errors"
	"github.com/xchain/logitrack/utils/logger"
	"go.uber.org/zap"
)

// ShipmentApp is the gate between reservation and delivery: a shipment can
// only be created for a RESERVED order, creating it ships the order, and
// delivering it delivers the order.
type ShipmentApp interface {
	Create(ctx context.Context, req *model.ShipmentCreateRequest) (*model.Shipment, error)
	Get(ctx context.Context, id uint64) (*model.Shipment, error)
	List(ctx context.Context) ([]model.Shipment, error)
	Update(ctx context.Context, id uint64, req *model.ShipmentUpdateRequest) (*model.Shipment, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.ShipmentStatus) (*model.Shipment, error)
	Delete(ctx context.Context, id uint64) error
}

type shipmentAppImpl struct {
	txRepo         txrepo.TxRepository
	shipmentRepo   shipmentrepo.ShipmentRepository
	salesOrderRepo salesorderrepo.SalesOrderRepository
	catalogRepo    catalogrepo.CatalogRepository
}

func NewShipmentApp(
	txRepo txrepo.TxRepository,
	shipmentRepo shipmentrepo.ShipmentRepository,
	salesOrderRepo salesorderrepo.SalesOrderRepository,
	catalogRepo catalogrepo.CatalogRepository,
) ShipmentApp {
	return &shipmentAppImpl{
		txRepo:         txRepo,
		shipmentRepo:   shipmentRepo,
		salesOrderRepo: salesOrderRepo,
		catalogRepo:    catalogRepo,
	}
}

func (s *shipmentAppImpl) Create(ctx context.Context, req *model.ShipmentCreateRequest) (*model.Shipment, error) {
	warehouse, err := s.catalogRepo.GetWarehouse(ctx, req.WarehouseID)
	if err != nil {
		logger.Error("[CreateShipment] get warehouse", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	existing, err := s.shipmentRepo.GetBySalesOrder(ctx, req.SalesOrderID)
	if err != nil {
		logger.Error("[CreateShipment] get existing shipment", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "the order already has a shipment")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateShipment] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.salesOrderRepo.GetOrderTx(ctx, tx, req.SalesOrderID)
	if err != nil {
		return nil, errors.FromSQL(err)
	}
	if order.Status != constant.OrderStatusReserved {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "shipment only allowed when order is reserved")
	}

	trackingNumber := req.TrackingNumber
	if trackingNumber == "" {
		trackingNumber = uuid.NewString()
	}

	shipment := &model.Shipment{
		SalesOrderID:   req.SalesOrderID,
		WarehouseID:    req.WarehouseID,
		Carrier:        req.Carrier,
		TrackingNumber: trackingNumber,
		Status:         constant.ShipmentStatusPlanned,
		Street:         req.Street,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
		Country:        req.Country,
	}
	id, err := s.shipmentRepo.InsertShipmentTx(ctx, tx, shipment)
	if err != nil {
		logger.Error("[CreateShipment] insert shipment", zap.Error(err))
		return nil, errors.FromSQL(err)
	}
	shipment.ID = id

	if err := s.salesOrderRepo.UpdateOrderStatusTx(ctx, tx, order.ID, constant.OrderStatusShipped); err != nil {
		logger.Error("[CreateShipment] update order status", zap.Error(err))
		return nil, errors.FromSQL(err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateShipment] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return shipment, nil
}

func (s *shipmentAppImpl) Get(ctx context.Context, id uint64) (*model.Shipment, error) {
	shipment, err := s.shipmentRepo.GetShipment(ctx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}
	return shipment, nil
}

func (s *shipmentAppImpl) List(ctx context.Context) ([]model.Shipment, error) {
	items, err := s.shipmentRepo.ListShipments(ctx)
	if err != nil {
		logger.Error("[ListShipments] list", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *shipmentAppImpl) Update(ctx context.Context, id uint64, req *model.ShipmentUpdateRequest) (*model.Shipment, error) {
	shipment, err := s.shipmentRepo.GetShipment(ctx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}

	if req.Carrier != "" {
		shipment.Carrier = req.Carrier
	}
	if req.TrackingNumber != "" {
		shipment.TrackingNumber = req.TrackingNumber
	}
	if req.Street != "" {
		shipment.Street = req.Street
	}
	if req.City != "" {
		shipment.City = req.City
	}
	if req.State != "" {
		shipment.State = req.State
	}
	if req.PostalCode != "" {
		shipment.PostalCode = req.PostalCode
	}
	if req.Country != "" {
		shipment.Country = req.Country
	}

	if err := s.shipmentRepo.UpdateShipment(ctx, shipment); err != nil {
		return nil, errors.FromSQL(err)
	}
	return shipment, nil
}

// UpdateStatus moves the shipment and, on DELIVERED, the order with it in
// the same transaction. No other shipment status touches the order.
func (s *shipmentAppImpl) UpdateStatus(ctx context.Context, id uint64, status constant.ShipmentStatus) (*model.Shipment, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateShipmentStatus] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	shipment, err := s.shipmentRepo.GetShipmentTx(ctx, tx, id)
	if err != nil {
		return nil, errors.FromSQL(err)
	}

	if shipment.Status == constant.ShipmentStatusDelivered {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidTransition,
			fmt.Sprintf("shipment already has status %s", shipment.Status))
	}

	if err := s.shipmentRepo.UpdateStatusTx(ctx, tx, id, status); err != nil {
		logger.Error("[UpdateShipmentStatus] update status", zap.Error(err))
		return nil, errors.FromSQL(err)
	}

	if status == constant.ShipmentStatusDelivered {
		if err := s.salesOrderRepo.UpdateOrderStatusTx(ctx, tx, shipment.SalesOrderID, constant.OrderStatusDelivered); err != nil {
			logger.Error("[UpdateShipmentStatus] update order status", zap.Error(err))
			return nil, errors.FromSQL(err)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateShipmentStatus] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	shipment.Status = status
	return shipment, nil
}

func (s *shipmentAppImpl) Delete(ctx context.Context, id uint64) error {
	shipment, err := s.shipmentRepo.GetShipment(ctx, id)
	if err != nil {
		return errors.FromSQL(err)
	}
	if shipment.Status == constant.ShipmentStatusDelivered {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidState, "a delivered shipment cannot be deleted")
	}
	if err := s.shipmentRepo.DeleteShipment(ctx, id); err != nil {
		return errors.FromSQL(err)
	}
	return nil
}
