package billing

import (
	"github.com/google/uuid"
	"github.com/norvantechnology/hisab-sub003/internal/application/dto"
	"github.com/norvantechnology/hisab-sub003/internal/domain/entity"
	"github.com/norvantechnology/hisab-sub003/internal/domain/pricing"
	"github.com/norvantechnology/hisab-sub003/pkg/money"
)

// toInvoice arma el agregado a partir de la captura ya validada.
func toInvoice(in dto.InvoiceRequest, taxType entity.TaxType) entity.Invoice {
	inv := entity.Invoice{
		Kind:                 entity.InvoiceKind(in.Kind),
		TaxType:              taxType,
		RateType:             entity.RateType(in.RateType),
		DiscountScope:        entity.DiscountScope(in.DiscountScope),
		DiscountValueType:    discountValueType(in.DiscountValueType),
		DiscountValue:        in.DiscountValue,
		TransportationCharge: in.TransportationCharge,
		RoundOff:             in.RoundOff,
		Items:                make([]entity.LineItem, 0, len(in.Items)),
	}
	if inv.Kind == "" {
		inv.Kind = entity.InvoiceKindSales
	}
	for _, it := range in.Items {
		key := it.Key
		if key == "" {
			key = uuid.New().String()
		}
		item := entity.LineItem{
			Key:               key,
			ProductID:         it.ProductID,
			Name:              it.Name,
			Code:              it.Code,
			Quantity:          it.Quantity,
			IsSerialized:      it.IsSerialized,
			Rate:              it.Rate,
			RateType:          entity.RateType(it.RateType),
			TaxRate:           it.TaxRate,
			DiscountValueType: discountValueType(it.DiscountValueType),
			DiscountValue:     it.DiscountValue,
		}
		item.SetSerialNumbers(it.SerialNumbers)
		inv.AddItem(item)
	}
	return inv
}

func discountValueType(s string) entity.DiscountValueType {
	if s == string(entity.DiscountFixed) {
		return entity.DiscountFixed
	}
	return entity.DiscountPercentage
}

// toResponse redondea en la frontera de presentación. totals llega sin redondear.
func toResponse(id string, inv entity.Invoice, totals pricing.InvoiceTotals, tracker *pricing.TotalTracker, places int32, fmtr *money.Formatter) *dto.CalculationResponse {
	rounded := totals.Rounded(places)
	display := pricing.RoundForDisplay(tracker.Display(totals), places)

	resp := &dto.CalculationResponse{
		CalculationID: id,
		Kind:          string(inv.Kind),
		TaxType:       inv.TaxType.Code,
		RateType:      string(inv.RateType),
		Items:         make([]dto.LineItemResponse, 0, len(inv.Items)),
		Totals: dto.InvoiceTotalsResponse{
			BasicAmount:            rounded.BasicAmount,
			ItemDiscountTotal:      rounded.ItemDiscountTotal,
			InvoiceDiscount:        rounded.InvoiceDiscount,
			InvoiceDiscountClamped: rounded.InvoiceDiscountClamped,
			TotalDiscount:          rounded.TotalDiscount,
			TaxAmount:              rounded.TaxAmount,
			TransportationCharge:   rounded.TransportationCharge,
			RoundOff:               rounded.RoundOff,
			NetPayable:             rounded.NetPayable,
		},
		DisplayNetPayable: display,
		TotalState:        tracker.State().String(),
		Formatted: map[string]string{
			"basic_amount":        fmtr.Format(rounded.BasicAmount),
			"total_discount":      fmtr.Format(rounded.TotalDiscount),
			"tax_amount":          fmtr.Format(rounded.TaxAmount),
			"net_payable":         fmtr.Format(rounded.NetPayable),
			"display_net_payable": fmtr.Format(display),
		},
	}
	for i, item := range inv.Items {
		a := rounded.Items[i]
		resp.Items = append(resp.Items, dto.LineItemResponse{
			Key:             item.Key,
			ProductID:       item.ProductID,
			Name:            item.Name,
			Code:            item.Code,
			Quantity:        a.Quantity,
			Rate:            item.Rate,
			RateType:        string(item.RateType),
			TaxRate:         item.TaxRate,
			RateWithoutTax:  a.RateWithoutTax,
			RateWithTax:     a.RateWithTax,
			Subtotal:        a.Subtotal,
			DiscountAmount:  a.DiscountAmount,
			DiscountClamped: a.DiscountClamped,
			TaxableBase:     a.TaxableBase,
			TaxAmount:       a.TaxAmount,
			Total:           a.Total,
		})
	}
	return resp
}
