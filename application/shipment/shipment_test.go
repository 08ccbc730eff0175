package shipment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appshipment "github.com/xchain/logitrack/application/shipment"
	"github.com/xchain/logitrack/constant"
	catalogmocks "github.com/xchain/logitrack/mocks/repository/catalog"
	salesordermocks "github.com/xchain/logitrack/mocks/repository/salesorder"
	shipmentmocks "github.com/xchain/logitrack/mocks/repository/shipment"
	txmocks "github.com/xchain/logitrack/mocks/repository/tx"
	"github.com/xchain/logitrack/model"
	cerr "github.com/xchain/logitrack/utils/errors"
	"github.com/stretchr/testify/mock"
)

type shipmentFields struct {
	txRepo         *txmocks.TxRepository
	shipmentRepo   *shipmentmocks.ShipmentRepository
	salesOrderRepo *salesordermocks.SalesOrderRepository
	catalogRepo    *catalogmocks.CatalogRepository
}

func newShipmentFields(t *testing.T) shipmentFields {
	return shipmentFields{
		txRepo:         txmocks.NewTxRepository(t),
		shipmentRepo:   shipmentmocks.NewShipmentRepository(t),
		salesOrderRepo: salesordermocks.NewSalesOrderRepository(t),
		catalogRepo:    catalogmocks.NewCatalogRepository(t),
	}
}

func newShipmentApp(f shipmentFields) appshipment.ShipmentApp {
	return appshipment.NewShipmentApp(f.txRepo, f.shipmentRepo, f.salesOrderRepo, f.catalogRepo)
}

func shipmentCreateReq() *model.ShipmentCreateRequest {
	return &model.ShipmentCreateRequest{
		SalesOrderID: 1,
		WarehouseID:  1,
		Carrier:      "DHL",
		Street:       "Main St 1",
		City:         "Rotterdam",
		State:        "ZH",
		PostalCode:   "3011",
		Country:      "NL",
	}
}

func TestShipmentApp_Create(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f shipmentFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: reserved order gets a planned shipment and becomes SHIPPED",
			mockCall: func(f shipmentFields) {
				tx := &sqlx.Tx{}
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
				f.shipmentRepo.On("GetBySalesOrder", mock.Anything, uint64(1)).Return(nil, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.salesOrderRepo.On("GetOrderTx", mock.Anything, tx, uint64(1)).Return(&model.SalesOrder{
					ID: 1, Status: constant.OrderStatusReserved,
				}, nil).Once()
				f.shipmentRepo.On("InsertShipmentTx", mock.Anything, tx, mock.MatchedBy(func(sh *model.Shipment) bool {
					return sh.SalesOrderID == 1 &&
						sh.Status == constant.ShipmentStatusPlanned &&
						sh.TrackingNumber != ""
				})).Return(uint64(5), nil).Once()
				f.salesOrderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusShipped).Return(nil).Once()
			},
		},
		{
			name: "error: order not yet reserved",
			mockCall: func(f shipmentFields) {
				tx := &sqlx.Tx{}
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
				f.shipmentRepo.On("GetBySalesOrder", mock.Anything, uint64(1)).Return(nil, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.salesOrderRepo.On("GetOrderTx", mock.Anything, tx, uint64(1)).Return(&model.SalesOrder{
					ID: 1, Status: constant.OrderStatusCreated,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name: "error: order already has a shipment",
			mockCall: func(f shipmentFields) {
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
				f.shipmentRepo.On("GetBySalesOrder", mock.Anything, uint64(1)).Return(&model.Shipment{
					ID: 5, SalesOrderID: 1,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name: "error: unknown warehouse",
			mockCall: func(f shipmentFields) {
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newShipmentFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := newShipmentApp(f).Create(context.Background(), shipmentCreateReq())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Status != constant.ShipmentStatusPlanned {
				t.Fatalf("Create() status = %s, want %s", got.Status, constant.ShipmentStatusPlanned)
			}
			if got.TrackingNumber == "" {
				t.Fatal("Create() tracking number not generated")
			}
		})
	}
}

func TestShipmentApp_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		target   constant.ShipmentStatus
		mockCall func(f shipmentFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: delivery propagates to the sales order",
			target: constant.ShipmentStatusDelivered,
			mockCall: func(f shipmentFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.shipmentRepo.On("GetShipmentTx", mock.Anything, tx, uint64(5)).Return(&model.Shipment{
					ID: 5, SalesOrderID: 1, Status: constant.ShipmentStatusInTransit,
				}, nil).Once()
				f.shipmentRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(5), constant.ShipmentStatusDelivered).Return(nil).Once()
				f.salesOrderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusDelivered).Return(nil).Once()
			},
		},
		{
			name:   "success: in-transit does not touch the order",
			target: constant.ShipmentStatusInTransit,
			mockCall: func(f shipmentFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.shipmentRepo.On("GetShipmentTx", mock.Anything, tx, uint64(5)).Return(&model.Shipment{
					ID: 5, SalesOrderID: 1, Status: constant.ShipmentStatusPlanned,
				}, nil).Once()
				f.shipmentRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(5), constant.ShipmentStatusInTransit).Return(nil).Once()
			},
		},
		{
			name:   "error: delivered shipment cannot change status",
			target: constant.ShipmentStatusInTransit,
			mockCall: func(f shipmentFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.shipmentRepo.On("GetShipmentTx", mock.Anything, tx, uint64(5)).Return(&model.Shipment{
					ID: 5, SalesOrderID: 1, Status: constant.ShipmentStatusDelivered,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newShipmentFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := newShipmentApp(f).UpdateStatus(context.Background(), 5, tt.target)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Status != tt.target {
				t.Fatalf("UpdateStatus() status = %s, want %s", got.Status, tt.target)
			}
		})
	}
}

func TestShipmentApp_Delete(t *testing.T) {
	t.Run("error: delivered shipment cannot be deleted", func(t *testing.T) {
		f := newShipmentFields(t)
		f.shipmentRepo.On("GetShipment", mock.Anything, uint64(5)).Return(&model.Shipment{
			ID: 5, Status: constant.ShipmentStatusDelivered,
		}, nil).Once()

		err := newShipmentApp(f).Delete(context.Background(), 5)
		if err == nil {
			t.Fatal("Delete() expected error, got nil")
		}
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInvalidState] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInvalidState])
		}
	})

	t.Run("success: planned shipment is deleted", func(t *testing.T) {
		f := newShipmentFields(t)
		f.shipmentRepo.On("GetShipment", mock.Anything, uint64(5)).Return(&model.Shipment{
			ID: 5, Status: constant.ShipmentStatusPlanned,
		}, nil).Once()
		f.shipmentRepo.On("DeleteShipment", mock.Anything, uint64(5)).Return(nil).Once()

		if err := newShipmentApp(f).Delete(context.Background(), 5); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})
}
