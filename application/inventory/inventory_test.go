package inventory_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appinventory "github.com/xchain/logitrack/application/inventory"
	"github.com/xchain/logitrack/constant"
	catalogmocks "github.com/xchain/logitrack/mocks/repository/catalog"
	inventorymocks "github.com/xchain/logitrack/mocks/repository/inventory"
	txmocks "github.com/xchain/logitrack/mocks/repository/tx"
	"github.com/xchain/logitrack/model"
	cerr "github.com/xchain/logitrack/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestInventoryApp_Adjust(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		inventoryRepo *inventorymocks.InventoryRepository
		catalogRepo   *catalogmocks.CatalogRepository
	}
	type args struct {
		ctx   context.Context
		id    uint64
		delta int
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		mockCall  func(f fields)
		wantErr   bool
		errCode   constant.ErrorType
		errDetail string
		wantHand  int
	}{
		{
			name: "success: delta -20 on (onHand=50, reserved=30)",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				catalogRepo:   catalogmocks.NewCatalogRepository(t),
			},
			args: args{ctx: context.Background(), id: 1, delta: -20},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
					ID: 1, WarehouseID: 1, ProductID: 1, QtyOnHand: 50, QtyReserved: 30,
				}, nil).Once()
				f.inventoryRepo.On("AddOnHandTx", mock.Anything, tx, uint64(1), -20).Return(nil).Once()
				f.inventoryRepo.On("InsertMovementTx", mock.Anything, tx, uint64(1), constant.MovementAdjustment, 20).Return(nil).Once()
			},
			wantErr:  false,
			wantHand: 30,
		},
		{
			name: "error: delta -21 reports maximum permissible -20",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				catalogRepo:   catalogmocks.NewCatalogRepository(t),
			},
			args: args{ctx: context.Background(), id: 1, delta: -21},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
					ID: 1, WarehouseID: 1, ProductID: 1, QtyOnHand: 50, QtyReserved: 30,
				}, nil).Once()
			},
			wantErr:   true,
			errCode:   constant.ErrInvalidAdjustment,
			errDetail: "invalid adjustment, the maximum permissible adjustment is -20",
		},
		{
			name: "error: positive delta rejected",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				catalogRepo:   catalogmocks.NewCatalogRepository(t),
			},
			args:     args{ctx: context.Background(), id: 1, delta: 5},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: inventory not found",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				catalogRepo:   catalogmocks.NewCatalogRepository(t),
			},
			args: args{ctx: context.Background(), id: 99, delta: -1},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(99)).Return(nil, sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appinventory.NewInventoryApp(tt.fields.txRepo, tt.fields.inventoryRepo, tt.fields.catalogRepo)

			got, err := app.Adjust(tt.args.ctx, tt.args.id, tt.args.delta)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Adjust() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.errDetail != "" && ce.Error() != tt.errDetail {
					t.Fatalf("error detail = %q, want %q", ce.Error(), tt.errDetail)
				}
				return
			}

			if got.QtyOnHand != tt.wantHand {
				t.Fatalf("Adjust() QtyOnHand = %d, want %d", got.QtyOnHand, tt.wantHand)
			}
		})
	}
}

func TestInventoryApp_ReserveTx(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		inventoryRepo *inventorymocks.InventoryRepository
		catalogRepo   *catalogmocks.CatalogRepository
	}
	tests := []struct {
		name     string
		fields   fields
		qty      int
		mockCall func(f fields, tx *sqlx.Tx)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: reserve within available",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				catalogRepo:   catalogmocks.NewCatalogRepository(t),
			},
			qty: 5,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
					ID: 1, QtyOnHand: 10, QtyReserved: 0,
				}, nil).Once()
				f.inventoryRepo.On("AddReservedTx", mock.Anything, tx, uint64(1), 5).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: insufficient available stock",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				catalogRepo:   catalogmocks.NewCatalogRepository(t),
			},
			qty: 8,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
					ID: 1, QtyOnHand: 10, QtyReserved: 5,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tx := &sqlx.Tx{}
			if tt.mockCall != nil {
				tt.mockCall(tt.fields, tx)
			}
			app := appinventory.NewInventoryApp(tt.fields.txRepo, tt.fields.inventoryRepo, tt.fields.catalogRepo)

			err := app.ReserveTx(context.Background(), tx, 1, tt.qty)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReserveTx() error = %v, wantErr %v", err, tt.wantErr)
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

// A transfer and its reverse must touch the same counters symmetrically and
// leave 2 OUTBOUND and 2 INBOUND movements behind.
func TestInventoryApp_TransferTx_RoundTrip(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	inventoryRepo := inventorymocks.NewInventoryRepository(t)
	catalogRepo := catalogmocks.NewCatalogRepository(t)
	app := appinventory.NewInventoryApp(txRepo, inventoryRepo, catalogRepo)

	tx := &sqlx.Tx{}
	ctx := context.Background()

	// A -> B
	inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
		ID: 1, QtyOnHand: 10, QtyReserved: 0,
	}, nil).Once()
	inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(2)).Return(&model.Inventory{
		ID: 2, QtyOnHand: 3, QtyReserved: 0,
	}, nil).Once()
	inventoryRepo.On("AddOnHandTx", mock.Anything, tx, uint64(1), -4).Return(nil).Once()
	inventoryRepo.On("InsertMovementTx", mock.Anything, tx, uint64(1), constant.MovementOutbound, 4).Return(nil).Once()
	inventoryRepo.On("AddOnHandTx", mock.Anything, tx, uint64(2), 4).Return(nil).Once()
	inventoryRepo.On("InsertMovementTx", mock.Anything, tx, uint64(2), constant.MovementInbound, 4).Return(nil).Once()

	if err := app.TransferTx(ctx, tx, 1, 2, 4); err != nil {
		t.Fatalf("TransferTx() error = %v", err)
	}

	// B -> A restores the original on-hand quantities
	inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
		ID: 1, QtyOnHand: 6, QtyReserved: 0,
	}, nil).Once()
	inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(2)).Return(&model.Inventory{
		ID: 2, QtyOnHand: 7, QtyReserved: 0,
	}, nil).Once()
	inventoryRepo.On("AddOnHandTx", mock.Anything, tx, uint64(2), -4).Return(nil).Once()
	inventoryRepo.On("InsertMovementTx", mock.Anything, tx, uint64(2), constant.MovementOutbound, 4).Return(nil).Once()
	inventoryRepo.On("AddOnHandTx", mock.Anything, tx, uint64(1), 4).Return(nil).Once()
	inventoryRepo.On("InsertMovementTx", mock.Anything, tx, uint64(1), constant.MovementInbound, 4).Return(nil).Once()

	if err := app.TransferTx(ctx, tx, 2, 1, 4); err != nil {
		t.Fatalf("TransferTx() reverse error = %v", err)
	}
}

func TestInventoryApp_TransferTx_InsufficientSource(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	inventoryRepo := inventorymocks.NewInventoryRepository(t)
	catalogRepo := catalogmocks.NewCatalogRepository(t)
	app := appinventory.NewInventoryApp(txRepo, inventoryRepo, catalogRepo)

	tx := &sqlx.Tx{}

	inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
		ID: 1, QtyOnHand: 5, QtyReserved: 3,
	}, nil).Once()
	inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(2)).Return(&model.Inventory{
		ID: 2, QtyOnHand: 0, QtyReserved: 0,
	}, nil).Once()

	err := app.TransferTx(context.Background(), tx, 1, 2, 3)
	if err == nil {
		t.Fatal("TransferTx() expected error, got nil")
	}
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInsufficientStock] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInsufficientStock])
	}
}

func TestInventoryApp_DeleteInventory(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		inventoryRepo *inventorymocks.InventoryRepository
		catalogRepo   *catalogmocks.CatalogRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: delete unreserved inventory",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				catalogRepo:   catalogmocks.NewCatalogRepository(t),
			},
			id: 1,
			mockCall: func(f fields) {
				f.inventoryRepo.On("GetInventory", mock.Anything, uint64(1)).Return(&model.Inventory{
					ID: 1, QtyOnHand: 5, QtyReserved: 0,
				}, nil).Once()
				f.inventoryRepo.On("DeleteInventory", mock.Anything, uint64(1)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: reserved units block deletion",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				catalogRepo:   catalogmocks.NewCatalogRepository(t),
			},
			id: 2,
			mockCall: func(f fields) {
				f.inventoryRepo.On("GetInventory", mock.Anything, uint64(2)).Return(&model.Inventory{
					ID: 2, QtyOnHand: 5, QtyReserved: 2,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appinventory.NewInventoryApp(tt.fields.txRepo, tt.fields.inventoryRepo, tt.fields.catalogRepo)

			err := app.DeleteInventory(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteInventory() error = %v, wantErr %v", err, tt.wantErr)
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
