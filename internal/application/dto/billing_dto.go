package dto

import "github.com/shopspring/decimal"

// InvoiceRequest parámetros de la factura y sus líneas tal como los envía el formulario.
// Lo usan las pantallas de compra, compra rápida y venta. RateType vacío toma el valor configurado.
// Los rangos de los montos decimales se validan en billing.InputValidator.Rules.
type InvoiceRequest struct {
	Kind                 string            `json:"kind" validate:"omitempty,oneof=sales purchase fast_purchase"`
	TaxType              string            `json:"tax_type" validate:"required"`
	RateType             string            `json:"rate_type" validate:"omitempty,oneof=with_tax without_tax"`
	DiscountScope        string            `json:"discount_scope" validate:"required,oneof=none per_item invoice per_item_and_invoice"`
	DiscountValueType    string            `json:"discount_value_type" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue        decimal.Decimal   `json:"discount_value"`
	TransportationCharge decimal.Decimal   `json:"transportation_charge"`
	RoundOff             decimal.Decimal   `json:"round_off"`
	Items                []LineItemRequest `json:"items" validate:"dive"`
}

// LineItemRequest línea capturada. RateType vacío hereda el de la factura.
type LineItemRequest struct {
	Key               string          `json:"key,omitempty"`
	ProductID         string          `json:"product_id" validate:"required"`
	Name              string          `json:"name,omitempty"`
	Code              string          `json:"code,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	IsSerialized      bool            `json:"is_serialized"`
	SerialNumbers     []string        `json:"serial_numbers,omitempty" validate:"dive,required"`
	Rate              decimal.Decimal `json:"rate"`
	RateType          string          `json:"rate_type,omitempty" validate:"omitempty,oneof=with_tax without_tax"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	DiscountValueType string          `json:"discount_value_type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue     decimal.Decimal `json:"discount_value"`
}

// CalculateInvoiceRequest body para POST /api/invoices/calculate.
// PersistedNetPayable + Edited permiten a la pantalla de edición decidir qué total mostrar.
type CalculateInvoiceRequest struct {
	InvoiceRequest
	PersistedNetPayable *decimal.Decimal `json:"persisted_net_payable,omitempty"`
	Edited              bool             `json:"edited"`
}

// ChangeRateTypeRequest body para POST /api/invoices/rate-type.
type ChangeRateTypeRequest struct {
	InvoiceRequest
	NewRateType string `json:"new_rate_type" validate:"required,oneof=with_tax without_tax"`
}

// LineItemResponse línea con sus montos calculados (redondeados para mostrar).
type LineItemResponse struct {
	Key             string          `json:"key"`
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name,omitempty"`
	Code            string          `json:"code,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"` // sin redondear: se reenvía en la siguiente edición
	RateType        string          `json:"rate_type"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	RateWithoutTax  decimal.Decimal `json:"rate_without_tax"`
	RateWithTax     decimal.Decimal `json:"rate_with_tax"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	DiscountClamped bool            `json:"discount_clamped,omitempty"`
	TaxableBase     decimal.Decimal `json:"taxable_base"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
}

// InvoiceTotalsResponse totales para el panel de resumen.
type InvoiceTotalsResponse struct {
	BasicAmount            decimal.Decimal `json:"basic_amount"`
	ItemDiscountTotal      decimal.Decimal `json:"item_discount_total"`
	InvoiceDiscount        decimal.Decimal `json:"invoice_discount"`
	InvoiceDiscountClamped bool            `json:"invoice_discount_clamped,omitempty"`
	TotalDiscount          decimal.Decimal `json:"total_discount"`
	TaxAmount              decimal.Decimal `json:"tax_amount"`
	TransportationCharge   decimal.Decimal `json:"transportation_charge"`
	RoundOff               decimal.Decimal `json:"round_off"`
	NetPayable             decimal.Decimal `json:"net_payable"`
}

// CalculationResponse respuesta de cálculo y de cambio de tipo de tarifa.
type CalculationResponse struct {
	CalculationID     string                `json:"calculation_id"`
	Kind              string                `json:"kind"`
	TaxType           string                `json:"tax_type"`
	RateType          string                `json:"rate_type"`
	Items             []LineItemResponse    `json:"items"`
	Totals            InvoiceTotalsResponse `json:"totals"`
	DisplayNetPayable decimal.Decimal       `json:"display_net_payable"`
	TotalState        string                `json:"total_state"` // trusting | live
	Formatted         map[string]string     `json:"formatted"`
}

// TaxTypeResponse categoría del catálogo de impuestos.
type TaxTypeResponse struct {
	Code    string          `json:"code"`
	Percent decimal.Decimal `json:"percent"`
	Taxed   bool            `json:"taxed"`
}
