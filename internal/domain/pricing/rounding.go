package pricing

import "github.com/shopspring/decimal"

// DisplayPlaces decimales por defecto al presentar montos.
const DisplayPlaces int32 = 2

// RoundForDisplay redondea a places decimales (mitad hacia arriba, lejos de cero en
// negativos). Solo se usa en la frontera de presentación o almacenamiento.
func RoundForDisplay(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// Rounded devuelve una copia de la línea con todos los montos redondeados.
func (a ItemAmounts) Rounded(places int32) ItemAmounts {
	return ItemAmounts{
		Quantity:        a.Quantity,
		RateWithoutTax:  RoundForDisplay(a.RateWithoutTax, places),
		RateWithTax:     RoundForDisplay(a.RateWithTax, places),
		Subtotal:        RoundForDisplay(a.Subtotal, places),
		DiscountAmount:  RoundForDisplay(a.DiscountAmount, places),
		DiscountClamped: a.DiscountClamped,
		TaxableBase:     RoundForDisplay(a.TaxableBase, places),
		TaxAmount:       RoundForDisplay(a.TaxAmount, places),
		Total:           RoundForDisplay(a.Total, places),
	}
}

// Rounded devuelve una copia de los totales con todos los montos redondeados.
// Cada cifra se redondea por separado a partir del valor sin redondear.
func (t InvoiceTotals) Rounded(places int32) InvoiceTotals {
	items := make([]ItemAmounts, len(t.Items))
	for i, a := range t.Items {
		items[i] = a.Rounded(places)
	}
	return InvoiceTotals{
		Items:                  items,
		BasicAmount:            RoundForDisplay(t.BasicAmount, places),
		ItemDiscountTotal:      RoundForDisplay(t.ItemDiscountTotal, places),
		ItemTotalsSum:          RoundForDisplay(t.ItemTotalsSum, places),
		InvoiceDiscount:        RoundForDisplay(t.InvoiceDiscount, places),
		InvoiceDiscountClamped: t.InvoiceDiscountClamped,
		TotalDiscount:          RoundForDisplay(t.TotalDiscount, places),
		TaxAmount:              RoundForDisplay(t.TaxAmount, places),
		TransportationCharge:   RoundForDisplay(t.TransportationCharge, places),
		RoundOff:               RoundForDisplay(t.RoundOff, places),
		NetPayable:             RoundForDisplay(t.NetPayable, places),
	}
}
