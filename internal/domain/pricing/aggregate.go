package pricing

import (
	"github.com/norvantechnology/hisab-sub003/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvoiceTotals totales de la factura derivados de sus líneas y parámetros actuales.
type InvoiceTotals struct {
	Items                  []ItemAmounts // mismo orden que Invoice.Items
	BasicAmount            decimal.Decimal
	ItemDiscountTotal      decimal.Decimal
	ItemTotalsSum          decimal.Decimal
	InvoiceDiscount        decimal.Decimal
	InvoiceDiscountClamped bool
	TotalDiscount          decimal.Decimal
	TaxAmount              decimal.Decimal
	TransportationCharge   decimal.Decimal
	RoundOff               decimal.Decimal
	NetPayable             decimal.Decimal
}

// Aggregate recalcula todas las líneas y los totales de la factura. Nunca reutiliza
// un total persistido: cada llamada deriva todo de inv.
//
//	NetPayable = Σ Total - InvoiceDiscount + TransportationCharge + RoundOff
func Aggregate(inv entity.Invoice) InvoiceTotals {
	taxActive := inv.TaxType.Taxed()

	// Todas las líneas se calculan antes de leer cualquier suma.
	items := make([]ItemAmounts, len(inv.Items))
	for i := range inv.Items {
		items[i] = CalculateItem(inv.Items[i], ResolveQuantity(inv.Items[i]), taxActive)
	}

	t := InvoiceTotals{
		Items:                items,
		TransportationCharge: inv.TransportationCharge,
		RoundOff:             inv.RoundOff,
	}
	for _, a := range items {
		t.BasicAmount = t.BasicAmount.Add(a.Subtotal)
		t.ItemDiscountTotal = t.ItemDiscountTotal.Add(a.DiscountAmount)
		t.ItemTotalsSum = t.ItemTotalsSum.Add(a.Total)
		t.TaxAmount = t.TaxAmount.Add(a.TaxAmount)
	}

	t.InvoiceDiscount, t.InvoiceDiscountClamped = invoiceDiscount(inv, t.ItemTotalsSum)
	t.TotalDiscount = t.ItemDiscountTotal.Add(t.InvoiceDiscount)
	t.NetPayable = t.ItemTotalsSum.
		Sub(t.InvoiceDiscount).
		Add(inv.TransportationCharge).
		Add(inv.RoundOff)
	return t
}

// invoiceDiscount descuento a nivel de factura. Se resta una sola vez del agregado,
// sin prorratear entre líneas.
func invoiceDiscount(inv entity.Invoice, itemTotalsSum decimal.Decimal) (decimal.Decimal, bool) {
	if !inv.DiscountScope.IncludesInvoice() {
		return decimal.Zero, false
	}
	amount := inv.DiscountValue
	if inv.DiscountValueType != entity.DiscountFixed {
		amount = itemTotalsSum.Mul(inv.DiscountValue).Div(hundred)
	}
	return clampDiscount(amount, itemTotalsSum)
}
