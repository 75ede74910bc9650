package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rajatsoni/vyapar-api/internal/application/billing"
	"github.com/rajatsoni/vyapar-api/internal/application/catalog"
	"github.com/rajatsoni/vyapar-api/internal/application/directory"
	"github.com/rajatsoni/vyapar-api/internal/application/purchasing"
	"github.com/rajatsoni/vyapar-api/internal/application/reports"
	"github.com/rajatsoni/vyapar-api/internal/application/sales"
)

// RouterDeps carries the use cases the router wires handlers to.
type RouterDeps struct {
	CatalogUC    *catalog.UseCase
	SupplierUC   *directory.SupplierUseCase
	CustomerUC   *directory.CustomerUseCase
	PurchasingUC *purchasing.UseCase
	SalesUC      *sales.UseCase
	BillingUC    *billing.UseCase
	ReportsUC    *reports.UseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.CatalogUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	pos := api.Group("/purchase-orders")
	purchaseHandler := NewPurchaseHandler(deps.PurchasingUC)
	pos.Post("/", purchaseHandler.Create)
	pos.Get("/", purchaseHandler.List)
	pos.Get("/:id", purchaseHandler.GetByID)
	pos.Delete("/:id", purchaseHandler.Delete)
	pos.Post("/:id/receipts", purchaseHandler.RecordReceipt)
	pos.Get("/:id/receipts", purchaseHandler.ListReceipts)

	sos := api.Group("/sales-orders")
	salesHandler := NewSalesHandler(deps.SalesUC)
	sos.Post("/", salesHandler.Create)
	sos.Get("/", salesHandler.List)
	sos.Get("/:id", salesHandler.GetByID)
	sos.Put("/:id", salesHandler.Update)
	sos.Delete("/:id", salesHandler.Delete)
	sos.Post("/:id/deliveries", salesHandler.RecordDelivery)
	sos.Get("/:id/deliveries", salesHandler.ListDeliveries)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.BillingUC)
	invoices.Post("/", invoiceHandler.Generate)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id/pay", invoiceHandler.MarkPaid)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	rpts := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	rpts.Get("/gst-liability", reportHandler.GSTLiability)
	rpts.Get("/revenue-by-customer", reportHandler.RevenueByCustomer)
	rpts.Get("/sales-summary", reportHandler.SalesSummary)
}
