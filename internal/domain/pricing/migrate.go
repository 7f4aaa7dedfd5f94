package pricing

import "github.com/norvantechnology/hisab-sub003/internal/domain/entity"

// MigrateRateType re-expresa las tarifas de las líneas existentes en el nuevo tipo de
// tarifa, conservando su valor efectivo sin impuesto. Devuelve una copia; items no se modifica.
//
// Se convierte con el TaxRate de cada línea, aplique o no impuesto la categoría de la
// factura. Las líneas con TaxRate 0 solo cambian su etiqueta. Una línea que ya
// está etiquetada con el tipo destino no se vuelve a convertir.
func MigrateRateType(items []entity.LineItem, from, to entity.RateType) []entity.LineItem {
	out := make([]entity.LineItem, len(items))
	copy(out, items)
	if from == to {
		return out
	}
	for i := range out {
		item := &out[i]
		if item.RateType != to && item.TaxRate.IsPositive() {
			switch to {
			case entity.RateWithTax:
				item.Rate = ToInclusive(item.Rate, item.TaxRate)
			case entity.RateWithoutTax:
				item.Rate = ToBase(item.Rate, item.TaxRate)
			}
		}
		item.RateType = to
	}
	return out
}

// ChangeRateType aplica el cambio de tipo de tarifa global de la factura: migra las
// líneas existentes, actualiza inv.RateType y devuelve los totales recalculados.
func ChangeRateType(inv *entity.Invoice, to entity.RateType) InvoiceTotals {
	inv.Items = MigrateRateType(inv.Items, inv.RateType, to)
	inv.RateType = to
	return Aggregate(*inv)
}
