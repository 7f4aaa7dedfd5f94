package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/norvantechnology/hisab-sub003/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CalculateInvoice *billing.CalculateInvoiceUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	invoiceHandler := NewInvoiceHandler(deps.CalculateInvoice)
	api.Get("/tax-types", invoiceHandler.TaxTypes)

	invoices := api.Group("/invoices")
	invoices.Post("/calculate", invoiceHandler.Calculate)
	invoices.Post("/rate-type", invoiceHandler.ChangeRateType)
}
