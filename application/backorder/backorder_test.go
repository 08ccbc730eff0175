package backorder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appbackorder "github.com/xchain/logitrack/application/backorder"
	"github.com/xchain/logitrack/constant"
	catalogmocks "github.com/xchain/logitrack/mocks/repository/catalog"
	ordermocks "github.com/xchain/logitrack/mocks/repository/order"
	pomocks "github.com/xchain/logitrack/mocks/repository/purchaseorder"
	txmocks "github.com/xchain/logitrack/mocks/repository/tx"
	"github.com/xchain/logitrack/model"
	cerr "github.com/xchain/logitrack/utils/errors"
	"github.com/stretchr/testify/mock"
)

type backorderFields struct {
	txRepo      *txmocks.TxRepository
	orderRepo   *ordermocks.OrderRepository
	poRepo      *pomocks.PurchaseOrderRepository
	catalogRepo *catalogmocks.CatalogRepository
}

func newBackorderFields(t *testing.T) backorderFields {
	return backorderFields{
		txRepo:      txmocks.NewTxRepository(t),
		orderRepo:   ordermocks.NewOrderRepository(t),
		poRepo:      pomocks.NewPurchaseOrderRepository(t),
		catalogRepo: catalogmocks.NewCatalogRepository(t),
	}
}

func newBackorderApp(f backorderFields) appbackorder.BackorderApp {
	return appbackorder.NewBackorderApp(f.txRepo, f.orderRepo, f.poRepo, f.catalogRepo)
}

func TestBackorderApp_GetBackorder(t *testing.T) {
	t.Run("success: backorder found", func(t *testing.T) {
		f := newBackorderFields(t)
		f.orderRepo.On("GetOrder", mock.Anything, uint64(77)).Return(&model.Order{
			ID: 77, Kind: constant.OrderKindBackorder, ProductID: 100, Qty: 7,
			Status: constant.BackorderStatusPending,
		}, nil).Once()

		got, err := newBackorderApp(f).GetBackorder(context.Background(), 77)
		if err != nil {
			t.Fatalf("GetBackorder() error = %v", err)
		}
		if got.ID != 77 || got.Status != constant.BackorderStatusPending {
			t.Fatalf("GetBackorder() = %+v, want pending backorder 77", got)
		}
	})

	t.Run("error: simple order id is not a backorder", func(t *testing.T) {
		f := newBackorderFields(t)
		f.orderRepo.On("GetOrder", mock.Anything, uint64(40)).Return(&model.Order{
			ID: 40, Kind: constant.OrderKindSimple, ProductID: 100, Qty: 8,
		}, nil).Once()

		_, err := newBackorderApp(f).GetBackorder(context.Background(), 40)
		if err == nil {
			t.Fatal("GetBackorder() expected error, got nil")
		}
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrNotFound])
		}
	})
}

func TestBackorderApp_CreateSimpleOrder(t *testing.T) {
	t.Run("success: simple order starts pending", func(t *testing.T) {
		f := newBackorderFields(t)
		tx := &sqlx.Tx{}

		f.catalogRepo.On("GetProduct", mock.Anything, uint64(100)).Return(&model.Product{
			ID: 100, SKU: "SKU-100", Active: true,
		}, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(o *model.Order) bool {
			return o.Kind == constant.OrderKindSimple &&
				o.ProductID == 100 && o.Qty == 8 && o.ExtraQty == 2 &&
				o.SalesOrderID == nil &&
				o.Status == constant.BackorderStatusPending
		})).Return(uint64(40), nil).Once()

		got, err := newBackorderApp(f).CreateSimpleOrder(context.Background(), &model.SimpleOrderCreateRequest{
			ProductID: 100, Qty: 8, ExtraQty: 2,
		})
		if err != nil {
			t.Fatalf("CreateSimpleOrder() error = %v", err)
		}
		if got.ID != 40 {
			t.Fatalf("CreateSimpleOrder() id = %d, want 40", got.ID)
		}
	})

	t.Run("error: unknown product", func(t *testing.T) {
		f := newBackorderFields(t)
		f.catalogRepo.On("GetProduct", mock.Anything, uint64(99)).Return(nil, nil).Once()

		_, err := newBackorderApp(f).CreateSimpleOrder(context.Background(), &model.SimpleOrderCreateRequest{
			ProductID: 99, Qty: 1,
		})
		if err == nil {
			t.Fatal("CreateSimpleOrder() expected error, got nil")
		}
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrNotFound])
		}
	})
}

func TestBackorderApp_UpdateSimpleOrder(t *testing.T) {
	t.Run("error: backorders cannot be edited", func(t *testing.T) {
		f := newBackorderFields(t)
		f.orderRepo.On("GetOrder", mock.Anything, uint64(77)).Return(&model.Order{
			ID: 77, Kind: constant.OrderKindBackorder, ProductID: 100, Qty: 7,
		}, nil).Once()

		_, err := newBackorderApp(f).UpdateSimpleOrder(context.Background(), 77, &model.SimpleOrderUpdateRequest{Qty: 9})
		if err == nil {
			t.Fatal("UpdateSimpleOrder() expected error, got nil")
		}
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInvalidState] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInvalidState])
		}
	})

	t.Run("success: quantities updated", func(t *testing.T) {
		f := newBackorderFields(t)
		f.orderRepo.On("GetOrder", mock.Anything, uint64(40)).Return(&model.Order{
			ID: 40, Kind: constant.OrderKindSimple, ProductID: 100, Qty: 8, ExtraQty: 0,
		}, nil).Once()
		f.orderRepo.On("UpdateSimpleOrder", mock.Anything, uint64(40), 9, 3).Return(nil).Once()

		got, err := newBackorderApp(f).UpdateSimpleOrder(context.Background(), 40, &model.SimpleOrderUpdateRequest{Qty: 9, ExtraQty: 3})
		if err != nil {
			t.Fatalf("UpdateSimpleOrder() error = %v", err)
		}
		if got.Qty != 9 || got.ExtraQty != 3 {
			t.Fatalf("UpdateSimpleOrder() = qty %d extra %d, want 9/3", got.Qty, got.ExtraQty)
		}
	})
}

func TestBackorderApp_DeleteOrder(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f backorderFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: order without purchase orders is deleted",
			mockCall: func(f backorderFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(40)).Return(&model.Order{
					ID: 40, Kind: constant.OrderKindSimple,
				}, nil).Once()
				f.poRepo.On("ExistsForOrderTx", mock.Anything, tx, uint64(40)).Return(false, nil).Once()
				f.orderRepo.On("DeleteOrderTx", mock.Anything, tx, uint64(40)).Return(nil).Once()
			},
		},
		{
			name: "error: purchase order already cut from this order",
			mockCall: func(f backorderFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(40)).Return(&model.Order{
					ID: 40, Kind: constant.OrderKindSimple,
				}, nil).Once()
				f.poRepo.On("ExistsForOrderTx", mock.Anything, tx, uint64(40)).Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newBackorderFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			err := newBackorderApp(f).DeleteOrder(context.Background(), 40)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
