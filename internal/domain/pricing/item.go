package pricing

import (
	"github.com/norvantechnology/hisab-sub003/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ItemAmounts montos calculados de una línea. Ninguno se fija de forma independiente.
type ItemAmounts struct {
	Quantity        decimal.Decimal
	RateWithoutTax  decimal.Decimal
	RateWithTax     decimal.Decimal
	Subtotal        decimal.Decimal
	DiscountAmount  decimal.Decimal
	DiscountClamped bool // el descuento capturado excedía el rango [0, Subtotal]
	TaxableBase     decimal.Decimal
	TaxAmount       decimal.Decimal
	Total           decimal.Decimal
}

// CalculateItem calcula una línea en una sola pasada.
//
// La normalización de la tarifa siempre usa item.TaxRate. taxActive indica si la
// categoría de impuesto de la factura aplica impuesto; cuando no aplica solo el
// impuesto de la línea queda en cero.
//
//	Subtotal    = BaseRate * Quantity
//	TaxableBase = Subtotal - Discount
//	Total       = TaxableBase + TaxableBase * TaxRate / 100
func CalculateItem(item entity.LineItem, quantity decimal.Decimal, taxActive bool) ItemAmounts {
	baseRate := item.Rate
	if item.RateType == entity.RateWithTax {
		baseRate = ToBase(item.Rate, item.TaxRate)
	}

	subtotal := baseRate.Mul(quantity)
	discount, clamped := clampDiscount(lineDiscount(item, subtotal), subtotal)
	taxable := subtotal.Sub(discount)
	tax := decimal.Zero
	if taxActive {
		tax = taxable.Mul(item.TaxRate).Div(hundred)
	}

	return ItemAmounts{
		Quantity:        quantity,
		RateWithoutTax:  baseRate,
		RateWithTax:     ToInclusive(baseRate, item.TaxRate),
		Subtotal:        subtotal,
		DiscountAmount:  discount,
		DiscountClamped: clamped,
		TaxableBase:     taxable,
		TaxAmount:       tax,
		Total:           taxable.Add(tax),
	}
}

// lineDiscount: el porcentaje se aplica sobre el subtotal; el fijo es un monto plano
// para toda la línea y no se multiplica por la cantidad.
func lineDiscount(item entity.LineItem, subtotal decimal.Decimal) decimal.Decimal {
	if item.DiscountValueType == entity.DiscountFixed {
		return item.DiscountValue
	}
	return subtotal.Mul(item.DiscountValue).Div(hundred)
}

// clampDiscount limita el descuento a [0, ceiling]. Es una política explícita: un
// descuento que dejaría la base negativa se recorta y se marca, no produce error.
func clampDiscount(amount, ceiling decimal.Decimal) (decimal.Decimal, bool) {
	if amount.LessThan(decimal.Zero) {
		return decimal.Zero, true
	}
	if amount.GreaterThan(ceiling) {
		return ceiling, true
	}
	return amount, false
}
