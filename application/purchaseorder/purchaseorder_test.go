package purchaseorder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	apppurchaseorder "github.com/xchain/logitrack/application/purchaseorder"
	"github.com/xchain/logitrack/constant"
	appinvmocks "github.com/xchain/logitrack/mocks/application/inventory"
	catalogmocks "github.com/xchain/logitrack/mocks/repository/catalog"
	inventorymocks "github.com/xchain/logitrack/mocks/repository/inventory"
	ordermocks "github.com/xchain/logitrack/mocks/repository/order"
	pomocks "github.com/xchain/logitrack/mocks/repository/purchaseorder"
	salesordermocks "github.com/xchain/logitrack/mocks/repository/salesorder"
	txmocks "github.com/xchain/logitrack/mocks/repository/tx"
	"github.com/xchain/logitrack/model"
	cerr "github.com/xchain/logitrack/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type poFields struct {
	txRepo         *txmocks.TxRepository
	poRepo         *pomocks.PurchaseOrderRepository
	orderRepo      *ordermocks.OrderRepository
	salesOrderRepo *salesordermocks.SalesOrderRepository
	inventoryRepo  *inventorymocks.InventoryRepository
	inventoryApp   *appinvmocks.InventoryApp
	catalogRepo    *catalogmocks.CatalogRepository
}

func newPOFields(t *testing.T) poFields {
	return poFields{
		txRepo:         txmocks.NewTxRepository(t),
		poRepo:         pomocks.NewPurchaseOrderRepository(t),
		orderRepo:      ordermocks.NewOrderRepository(t),
		salesOrderRepo: salesordermocks.NewSalesOrderRepository(t),
		inventoryRepo:  inventorymocks.NewInventoryRepository(t),
		inventoryApp:   appinvmocks.NewInventoryApp(t),
		catalogRepo:    catalogmocks.NewCatalogRepository(t),
	}
}

func newPOApp(f poFields) apppurchaseorder.PurchaseOrderApp {
	return apppurchaseorder.NewPurchaseOrderApp(
		f.txRepo,
		f.poRepo,
		f.orderRepo,
		f.salesOrderRepo,
		f.inventoryRepo,
		f.inventoryApp,
		f.catalogRepo,
	)
}

func uintPtr(v uint64) *uint64 { return &v }

func TestPurchaseOrderApp_Create(t *testing.T) {
	supplier := &model.Supplier{ID: 3, Name: "Acme Supply"}

	tests := []struct {
		name      string
		req       *model.PurchaseOrderCreateRequest
		mockCall  func(f poFields)
		wantLines []model.POLine
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: derived line folds same-product extra quantity into the base line",
			req: &model.PurchaseOrderCreateRequest{
				SupplierID: 3,
				OrderID:    uintPtr(40),
				Lines: []model.POLineCreateRequest{
					{ProductID: 100, Qty: 5},
					{ProductID: 200, Qty: 2},
				},
			},
			mockCall: func(f poFields) {
				tx := &sqlx.Tx{}
				f.catalogRepo.On("GetSupplier", mock.Anything, uint64(3)).Return(supplier, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(40)).Return(&model.Order{
					ID: 40, Kind: constant.OrderKindSimple, ProductID: 100, Qty: 8,
				}, nil).Once()
				f.poRepo.On("ExistsForOrderTx", mock.Anything, tx, uint64(40)).Return(false, nil).Once()

				f.catalogRepo.On("GetProduct", mock.Anything, uint64(100)).Return(&model.Product{
					ID: 100, SKU: "SKU-100", Price: decimal.NewFromInt(10), Active: true,
				}, nil).Once()
				f.catalogRepo.On("GetProduct", mock.Anything, uint64(200)).Return(&model.Product{
					ID: 200, SKU: "SKU-200", Price: decimal.NewFromInt(4), Active: true,
				}, nil).Once()

				f.poRepo.On("InsertPOTx", mock.Anything, tx, mock.MatchedBy(func(po *model.PurchaseOrder) bool {
					return po.SupplierID == 3 && po.Status == constant.POStatusApproved &&
						po.OrderID != nil && *po.OrderID == 40
				})).Return(uint64(9), nil).Once()

				// base line is 8 (order) + 5 (same-product extra) = 13
				f.poRepo.On("InsertLineTx", mock.Anything, tx, mock.MatchedBy(func(line *model.POLine) bool {
					return line.ProductID == 100 && line.Qty == 13
				})).Return(uint64(91), nil).Once()
				f.poRepo.On("InsertLineTx", mock.Anything, tx, mock.MatchedBy(func(line *model.POLine) bool {
					return line.ProductID == 200 && line.Qty == 2
				})).Return(uint64(92), nil).Once()
			},
			wantLines: []model.POLine{
				{ID: 91, PurchaseOrderID: 9, ProductID: 100, Qty: 13},
				{ID: 92, PurchaseOrderID: 9, ProductID: 200, Qty: 2},
			},
		},
		{
			name: "error: second purchase order for the same order",
			req: &model.PurchaseOrderCreateRequest{
				SupplierID: 3,
				OrderID:    uintPtr(40),
			},
			mockCall: func(f poFields) {
				tx := &sqlx.Tx{}
				f.catalogRepo.On("GetSupplier", mock.Anything, uint64(3)).Return(supplier, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(40)).Return(&model.Order{
					ID: 40, Kind: constant.OrderKindSimple, ProductID: 100, Qty: 8,
				}, nil).Once()
				f.poRepo.On("ExistsForOrderTx", mock.Anything, tx, uint64(40)).Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicatePurchaseOrder,
		},
		{
			name: "error: neither originating order nor lines",
			req: &model.PurchaseOrderCreateRequest{
				SupplierID: 3,
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown supplier",
			req: &model.PurchaseOrderCreateRequest{
				SupplierID: 99,
				Lines:      []model.POLineCreateRequest{{ProductID: 100, Qty: 1}},
			},
			mockCall: func(f poFields) {
				f.catalogRepo.On("GetSupplier", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newPOFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newPOApp(f)

			got, err := app.Create(context.Background(), tt.req)
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

			if len(got.Lines) != len(tt.wantLines) {
				t.Fatalf("Create() lines = %d, want %d", len(got.Lines), len(tt.wantLines))
			}
			for i, want := range tt.wantLines {
				if got.Lines[i].ProductID != want.ProductID || got.Lines[i].Qty != want.Qty {
					t.Fatalf("Create() line[%d] = {product %d qty %d}, want {product %d qty %d}",
						i, got.Lines[i].ProductID, got.Lines[i].Qty, want.ProductID, want.Qty)
				}
			}
		})
	}
}

func TestPurchaseOrderApp_CreateFromBackorder(t *testing.T) {
	t.Run("success: single line for the backordered quantity", func(t *testing.T) {
		f := newPOFields(t)
		tx := &sqlx.Tx{}

		f.catalogRepo.On("GetSupplier", mock.Anything, uint64(3)).Return(&model.Supplier{ID: 3}, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(77)).Return(&model.Order{
			ID: 77, Kind: constant.OrderKindBackorder, ProductID: 100, Qty: 7,
			SalesOrderID: uintPtr(1), Status: constant.BackorderStatusPending,
		}, nil).Once()
		f.poRepo.On("ExistsForOrderTx", mock.Anything, tx, uint64(77)).Return(false, nil).Once()
		f.catalogRepo.On("GetProduct", mock.Anything, uint64(100)).Return(&model.Product{
			ID: 100, SKU: "SKU-100", Price: decimal.NewFromInt(10), Active: true,
		}, nil).Once()
		f.poRepo.On("InsertPOTx", mock.Anything, tx, mock.Anything).Return(uint64(9), nil).Once()
		f.poRepo.On("InsertLineTx", mock.Anything, tx, mock.MatchedBy(func(line *model.POLine) bool {
			return line.ProductID == 100 && line.Qty == 7
		})).Return(uint64(91), nil).Once()

		got, err := newPOApp(f).CreateFromBackorder(context.Background(), 77, 3)
		if err != nil {
			t.Fatalf("CreateFromBackorder() error = %v", err)
		}
		if len(got.Lines) != 1 || got.Lines[0].Qty != 7 {
			t.Fatalf("CreateFromBackorder() lines = %+v, want one line qty 7", got.Lines)
		}
	})

	t.Run("error: order is not a backorder", func(t *testing.T) {
		f := newPOFields(t)
		tx := &sqlx.Tx{}

		f.catalogRepo.On("GetSupplier", mock.Anything, uint64(3)).Return(&model.Supplier{ID: 3}, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(40)).Return(&model.Order{
			ID: 40, Kind: constant.OrderKindSimple, ProductID: 100, Qty: 8,
		}, nil).Once()

		_, err := newPOApp(f).CreateFromBackorder(context.Background(), 40, 3)
		if err == nil {
			t.Fatal("CreateFromBackorder() expected error, got nil")
		}
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInvalidState] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInvalidState])
		}
	})
}

func TestPurchaseOrderApp_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		target   constant.POStatus
		mockCall func(f poFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: receiving a backorder-derived purchase order settles everything",
			target: constant.POStatusReceived,
			mockCall: func(f poFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.poRepo.On("GetPOTx", mock.Anything, tx, uint64(9)).Return(&model.PurchaseOrder{
					ID: 9, SupplierID: 3, Status: constant.POStatusApproved, OrderID: uintPtr(77),
				}, nil).Once()
				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(77)).Return(&model.Order{
					ID: 77, Kind: constant.OrderKindBackorder, ProductID: 100, Qty: 7,
					SalesOrderID: uintPtr(1), Status: constant.BackorderStatusPending,
				}, nil).Once()

				f.salesOrderRepo.On("GetOrderTx", mock.Anything, tx, uint64(1)).Return(&model.SalesOrder{
					ID: 1, WarehouseID: 1, Status: constant.OrderStatusBackorder,
				}, nil).Once()
				f.salesOrderRepo.On("FindLineForProductTx", mock.Anything, tx, uint64(1), uint64(100)).Return(&model.SalesOrderLine{
					ID: 10, SalesOrderID: 1, ProductID: 100, QtyOrdered: 10, QtyReserved: 3,
				}, nil).Once()
				f.salesOrderRepo.On("AddLineReservedTx", mock.Anything, tx, uint64(10), 7).Return(nil).Once()

				f.inventoryRepo.On("FindLatestTx", mock.Anything, tx, uint64(100), uint64(1)).Return(&model.Inventory{
					ID: 7, WarehouseID: 1, ProductID: 100, QtyOnHand: 3, QtyReserved: 3,
				}, nil).Once()
				f.inventoryApp.On("ReceiveTx", mock.Anything, tx, uint64(7), 7).Return(nil).Once()

				f.salesOrderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusReserved).Return(nil).Once()
				f.orderRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(77), constant.BackorderStatusFulfilled).Return(nil).Once()

				f.poRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(9), constant.POStatusReceived).Return(nil).Once()
			},
		},
		{
			name:   "success: receiving a simple-order purchase order touches nothing else",
			target: constant.POStatusReceived,
			mockCall: func(f poFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.poRepo.On("GetPOTx", mock.Anything, tx, uint64(9)).Return(&model.PurchaseOrder{
					ID: 9, SupplierID: 3, Status: constant.POStatusApproved, OrderID: uintPtr(40),
				}, nil).Once()
				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(40)).Return(&model.Order{
					ID: 40, Kind: constant.OrderKindSimple, ProductID: 100, Qty: 8,
				}, nil).Once()

				f.poRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(9), constant.POStatusReceived).Return(nil).Once()
			},
		},
		{
			name:   "error: re-receiving keeps the same status",
			target: constant.POStatusReceived,
			mockCall: func(f poFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.poRepo.On("GetPOTx", mock.Anything, tx, uint64(9)).Return(&model.PurchaseOrder{
					ID: 9, SupplierID: 3, Status: constant.POStatusReceived,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name:   "error: received purchase order cannot revert to approved",
			target: constant.POStatusApproved,
			mockCall: func(f poFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.poRepo.On("GetPOTx", mock.Anything, tx, uint64(9)).Return(&model.PurchaseOrder{
					ID: 9, SupplierID: 3, Status: constant.POStatusReceived,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newPOFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newPOApp(f)

			got, err := app.UpdateStatus(context.Background(), 9, tt.target)
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
			if got.Status != constant.POStatusReceived {
				t.Fatalf("UpdateStatus() status = %s, want %s", got.Status, constant.POStatusReceived)
			}
		})
	}
}

func TestPurchaseOrderApp_Delete(t *testing.T) {
	t.Run("error: received purchase order cannot be deleted", func(t *testing.T) {
		f := newPOFields(t)
		f.poRepo.On("GetPO", mock.Anything, uint64(9)).Return(&model.PurchaseOrder{
			ID: 9, Status: constant.POStatusReceived,
		}, nil).Once()

		err := newPOApp(f).Delete(context.Background(), 9)
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

	t.Run("success: approved purchase order is deleted", func(t *testing.T) {
		f := newPOFields(t)
		f.poRepo.On("GetPO", mock.Anything, uint64(9)).Return(&model.PurchaseOrder{
			ID: 9, Status: constant.POStatusApproved,
		}, nil).Once()
		f.poRepo.On("DeletePO", mock.Anything, uint64(9)).Return(nil).Once()

		if err := newPOApp(f).Delete(context.Background(), 9); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})
}
