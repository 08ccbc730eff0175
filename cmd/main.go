package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	backorderapp "github.com/xchain/logitrack/application/backorder"
	catalogapp "github.com/xchain/logitrack/application/catalog"
	inventoryapp "github.com/xchain/logitrack/application/inventory"
	purchaseorderapp "github.com/xchain/logitrack/application/purchaseorder"
	salesorderapp "github.com/xchain/logitrack/application/salesorder"
	shipmentapp "github.com/xchain/logitrack/application/shipment"
	"github.com/xchain/logitrack/cmd/config"
	redisclient "github.com/xchain/logitrack/cmd/redis"
	_ "github.com/xchain/logitrack/docs"
	catalogRepo "github.com/xchain/logitrack/repository/catalog"
	inventoryRepo "github.com/xchain/logitrack/repository/inventory"
	orderRepo "github.com/xchain/logitrack/repository/order"
	purchaseorderRepo "github.com/xchain/logitrack/repository/purchaseorder"
	redisRepo "github.com/xchain/logitrack/repository/redis"
	salesorderRepo "github.com/xchain/logitrack/repository/salesorder"
	shipmentRepo "github.com/xchain/logitrack/repository/shipment"
	txRepo "github.com/xchain/logitrack/repository/tx"
	"github.com/xchain/logitrack/thirdparty/rabbitmq"
	"github.com/xchain/logitrack/transport"
	"github.com/xchain/logitrack/utils/logger"
	"go.uber.org/zap"
)

// @title LOGITRACK API
// @version 1.0
// @description Sales order, inventory and purchasing coordination API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Backorder events feed the auto-purchase worker; the server still runs
	// without the broker, it just stops emitting events.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Error("err connect rabbitmq, backorder events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()
	CatalogRepo := catalogRepo.NewCatalogRepository(db, RedisRepo, cfg.Catalog.CacheTTL)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	SalesOrderRepo := salesorderRepo.NewSalesOrderRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	PurchaseOrderRepo := purchaseorderRepo.NewPurchaseOrderRepository(db)
	ShipmentRepo := shipmentRepo.NewShipmentRepository(db)

	// Initialize application layers
	InventoryApp := inventoryapp.NewInventoryApp(TxRepo, InventoryRepo, CatalogRepo)
	SalesOrderApp := salesorderapp.NewSalesOrderApp(TxRepo, SalesOrderRepo, OrderRepo, InventoryRepo, InventoryApp, CatalogRepo, ShipmentRepo, publisher)
	BackorderApp := backorderapp.NewBackorderApp(TxRepo, OrderRepo, PurchaseOrderRepo, CatalogRepo)
	PurchaseOrderApp := purchaseorderapp.NewPurchaseOrderApp(TxRepo, PurchaseOrderRepo, OrderRepo, SalesOrderRepo, InventoryRepo, InventoryApp, CatalogRepo)
	ShipmentApp := shipmentapp.NewShipmentApp(TxRepo, ShipmentRepo, SalesOrderRepo, CatalogRepo)
	CatalogApp := catalogapp.NewCatalogApp(CatalogRepo)

	httpTransport := transport.NewTransport(
		InventoryApp,
		SalesOrderApp,
		BackorderApp,
		PurchaseOrderApp,
		ShipmentApp,
		CatalogApp,
		cfg.Internal.APIKey,
		cfg.Purchasing.DefaultSupplierID,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
