// Package pricing implementa el motor de cálculo de líneas y totales de factura:
// normalización de tarifas, cantidad efectiva, descuentos, impuestos y agregación.
// Todas las funciones son puras y no redondean; el redondeo se hace al presentar.
package pricing

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// taxFactor devuelve 1 + t/100.
func taxFactor(taxRatePct decimal.Decimal) decimal.Decimal {
	return one.Add(taxRatePct.Div(hundred))
}

// ToBase convierte una tarifa con impuesto incluido a su base sin impuesto.
// BaseRate = Rate / (1 + t/100)
func ToBase(rate, taxRatePct decimal.Decimal) decimal.Decimal {
	if taxRatePct.IsZero() {
		return rate
	}
	return rate.Div(taxFactor(taxRatePct))
}

// ToInclusive convierte una tarifa base a tarifa con impuesto incluido.
// InclusiveRate = BaseRate * (1 + t/100)
func ToInclusive(baseRate, taxRatePct decimal.Decimal) decimal.Decimal {
	if taxRatePct.IsZero() {
		return baseRate
	}
	return baseRate.Mul(taxFactor(taxRatePct))
}
