// Package bootstrap wires the store, services and HTTP app shared by the
// server and the CLI.
package bootstrap

import (
	"fmt"

	"go-retail-erp/internal/config"
	"go-retail-erp/internal/handler"
	"go-retail-erp/internal/repository"
	"go-retail-erp/internal/service"
	"go-retail-erp/internal/ws"
	"go-retail-erp/pkg/database"
	"go-retail-erp/pkg/kvstore"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// OpenStore connects the backend selected by cfg.StoreDriver.
func OpenStore(cfg config.Config) (kvstore.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return kvstore.NewMemoryStore(), nil
	case config.DriverSQLite:
		store, err := kvstore.NewSQLiteStore(database.ConnectSQLite(cfg.SQLitePath))
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverPostgres:
		store, err := kvstore.NewGormStore(database.ConnectPostgres(cfg.DatabaseURL))
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

type Services struct {
	Products  service.ProductService
	Customers service.CustomerService
	Catalog   service.CatalogService
	Sales     service.SalesService
	Dashboard service.DashboardService
	Backup    service.BackupService
}

// NewServices builds every service over store. events may be nil.
func NewServices(cfg config.Config, store kvstore.Store, events service.Broadcaster) Services {
	productRepo := repository.NewProductRepo(store)
	customerRepo := repository.NewCustomerRepo(store)
	saleRepo := repository.NewSaleRepo(store)
	catalogRepo := repository.NewCatalogRepo(store)

	return Services{
		Products:  service.NewProductService(store, productRepo, events),
		Customers: service.NewCustomerService(store, customerRepo, events),
		Catalog:   service.NewCatalogService(store, catalogRepo, events),
		Sales:     service.NewSalesService(store, productRepo, customerRepo, saleRepo, service.NewDraftStore(), events),
		Dashboard: service.NewDashboardService(productRepo, customerRepo, saleRepo, cfg.LowStockThreshold),
		Backup:    service.NewBackupService(store, events),
	}
}

// NewApp returns the fiber app with middleware and routes mounted.
func NewApp(cfg config.Config, svc Services, hub *ws.Hub) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	handler.Register(app, handler.Handlers{
		Product:   handler.NewProductHandler(svc.Products),
		Customer:  handler.NewCustomerHandler(svc.Customers),
		Catalog:   handler.NewCatalogHandler(svc.Catalog),
		Sales:     handler.NewSalesHandler(svc.Sales),
		Dashboard: handler.NewDashboardHandler(svc.Dashboard),
		Backup:    handler.NewBackupHandler(svc.Backup),
	}, hub)

	return app
}
