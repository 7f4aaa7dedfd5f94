package entity

import (
	"slices"

	"github.com/shopspring/decimal"
)

// RateType indica si la tarifa unitaria capturada ya incluye el impuesto.
type RateType string

const (
	RateWithTax    RateType = "with_tax"
	RateWithoutTax RateType = "without_tax"
)

// Valid reporta si el valor es uno de los tipos de tarifa conocidos.
func (r RateType) Valid() bool {
	return r == RateWithTax || r == RateWithoutTax
}

// DiscountScope define dónde se aplica el descuento: por línea, a la factura o ambos.
type DiscountScope string

const (
	DiscountScopeNone              DiscountScope = "none"
	DiscountScopePerItem           DiscountScope = "per_item"
	DiscountScopeInvoice           DiscountScope = "invoice"
	DiscountScopePerItemAndInvoice DiscountScope = "per_item_and_invoice"
)

// IncludesInvoice reporta si el alcance activa el descuento a nivel de factura.
func (s DiscountScope) IncludesInvoice() bool {
	return s == DiscountScopeInvoice || s == DiscountScopePerItemAndInvoice
}

// DiscountValueType indica cómo interpretar un valor de descuento.
type DiscountValueType string

const (
	DiscountPercentage DiscountValueType = "percentage"
	DiscountFixed      DiscountValueType = "fixed"
)

// InvoiceKind identifica la pantalla que edita la factura. Todas comparten el mismo motor de cálculo.
type InvoiceKind string

const (
	InvoiceKindSales        InvoiceKind = "sales"
	InvoiceKindPurchase     InvoiceKind = "purchase"
	InvoiceKindFastPurchase InvoiceKind = "fast_purchase"
)

// TaxType categoría de impuesto de la factura resuelta a su porcentaje nominal.
// Solo las categorías con porcentaje > 0 activan el cálculo de impuesto.
type TaxType struct {
	Code    string
	Percent decimal.Decimal
}

// Taxed reporta si la categoría activa el cálculo de impuesto.
func (t TaxType) Taxed() bool {
	return t.Percent.GreaterThan(decimal.Zero)
}

// Invoice raíz del agregado: parámetros globales y líneas capturadas por el usuario.
type Invoice struct {
	Kind                 InvoiceKind
	TaxType              TaxType
	RateType             RateType // por defecto para líneas nuevas; lo usa el migrador
	DiscountScope        DiscountScope
	DiscountValueType    DiscountValueType
	DiscountValue        decimal.Decimal
	TransportationCharge decimal.Decimal
	RoundOff             decimal.Decimal // con signo, ajustable por el usuario
	Items                []LineItem
}

// AddItem agrega una línea. Si la línea no trae tipo de tarifa hereda el de la factura.
func (inv *Invoice) AddItem(item LineItem) {
	if !item.RateType.Valid() {
		item.RateType = inv.RateType
	}
	inv.Items = append(inv.Items, item)
}

// RemoveItem elimina la línea con la clave indicada. Devuelve false si no existe.
// Trabaja sobre una copia: un slice compartido con otra factura no se altera.
func (inv *Invoice) RemoveItem(key string) bool {
	for i := range inv.Items {
		if inv.Items[i].Key == key {
			inv.Items = slices.Delete(slices.Clone(inv.Items), i, i+1)
			return true
		}
	}
	return false
}
