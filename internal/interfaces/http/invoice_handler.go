package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/norvantechnology/hisab-sub003/internal/application/billing"
	"github.com/norvantechnology/hisab-sub003/internal/application/dto"
	"github.com/norvantechnology/hisab-sub003/internal/domain"
)

// InvoiceHandler expone el motor de cálculo a los formularios de factura.
// Es de solo lectura: no persiste nada.
type InvoiceHandler struct {
	uc *billing.CalculateInvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.CalculateInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Calculate godoc
// @Summary      Calcular líneas y totales de una factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateInvoiceRequest  true  "Factura capturada"
// @Success      200   {object}  dto.CalculationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/calculate [post]
func (h *InvoiceHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Calculate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ChangeRateType godoc
// @Summary      Cambiar el tipo de tarifa de una factura con líneas existentes
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangeRateTypeRequest  true  "Factura y nuevo tipo de tarifa"
// @Success      200   {object}  dto.CalculationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/rate-type [post]
func (h *InvoiceHandler) ChangeRateType(c *fiber.Ctx) error {
	var in dto.ChangeRateTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeRateType(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TaxTypes godoc
// @Summary      Catálogo de tipos de impuesto
// @Tags         invoices
// @Produce      json
// @Success      200  {array}  dto.TaxTypeResponse
// @Router       /api/tax-types [get]
func (h *InvoiceHandler) TaxTypes(c *fiber.Ctx) error {
	return c.JSON(h.uc.TaxTypes())
}

var validationCodes = []struct {
	err  error
	code string
}{
	{domain.ErrUnknownTaxType, "UNKNOWN_TAX_TYPE"},
	{domain.ErrInvalidTaxRate, "INVALID_TAX_RATE"},
	{domain.ErrInvalidQuantity, "INVALID_QUANTITY"},
	{domain.ErrInvalidDiscount, "INVALID_DISCOUNT"},
	{domain.ErrInvalidRateType, "INVALID_RATE_TYPE"},
	{domain.ErrDuplicateSerial, "DUPLICATE_SERIAL"},
	{domain.ErrInvalidInput, "VALIDATION"},
}

func writeError(c *fiber.Ctx, err error) error {
	for _, vc := range validationCodes {
		if errors.Is(err, vc.err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: vc.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
