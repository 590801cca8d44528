package handler

import (
	"go-retail-erp/internal/middleware"
	"go-retail-erp/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Product   *ProductHandler
	Customer  *CustomerHandler
	Catalog   *CatalogHandler
	Sales     *SalesHandler
	Dashboard *DashboardHandler
	Backup    *BackupHandler
}

// Register mounts the REST API under /api/v1 and the event stream at /ws.
// A nil hub leaves /ws unmounted.
func Register(app *fiber.App, h Handlers, hub *ws.Hub) {
	api := app.Group("/api/v1")

	// Dashboard Routes
	api.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)
	api.Get("/dashboard/verify-totals", h.Dashboard.VerifyTotals)

	// Product Routes
	api.Get("/products", h.Product.GetProducts)
	api.Get("/products/:id", h.Product.GetProduct)
	api.Post("/products", h.Product.CreateProduct)
	api.Put("/products/:id", h.Product.UpdateProduct)
	api.Delete("/products/:id", h.Product.DeleteProduct)

	// Customer Routes
	api.Get("/customers", h.Customer.GetCustomers)
	api.Get("/customers/:id", h.Customer.GetCustomer)
	api.Post("/customers", h.Customer.CreateCustomer)
	api.Put("/customers/:id", h.Customer.UpdateCustomer)
	api.Delete("/customers/:id", h.Customer.DeleteCustomer)

	// Catalog Registry Routes
	api.Get("/catalog", h.Catalog.GetCatalogs)
	api.Get("/catalog/:kind", h.Catalog.GetCatalog)
	api.Post("/catalog/:kind", h.Catalog.AddValue)
	api.Delete("/catalog/:kind/:value", h.Catalog.RemoveValue)

	// Sale Draft Routes (registered before /sales/:id)
	drafts := api.Group("/sales/drafts")
	drafts.Post("/", h.Sales.OpenDraft)
	drafts.Get("/:id", h.Sales.GetDraft)
	drafts.Patch("/:id", h.Sales.UpdateDraft)
	drafts.Delete("/:id", h.Sales.DiscardDraft)
	drafts.Post("/:id/items", h.Sales.AddItem)
	drafts.Delete("/:id/items/:index", h.Sales.RemoveItem)
	drafts.Post("/:id/post", h.Sales.PostDraft)

	// Sale Routes
	api.Get("/sales", h.Sales.GetSales)
	api.Post("/sales", h.Sales.RecordSale)
	api.Get("/sales/:id", h.Sales.GetSale)

	// Backup Routes
	api.Get("/backup/export", h.Backup.Export)
	api.Delete("/backup", middleware.RequireConfirm("confirm", "yes"), h.Backup.ClearAll)

	if hub == nil {
		return
	}

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
