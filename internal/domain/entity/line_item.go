package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem representa una línea de la factura tal como la captura el usuario.
// Los montos calculados no viven aquí: los produce pricing.CalculateItem.
type LineItem struct {
	Key               string // clave de la fila en el formulario
	ProductID         string
	Name              string
	Code              string
	Quantity          decimal.Decimal // se ignora si IsSerialized
	IsSerialized      bool
	SerialNumbers     []string
	Rate              decimal.Decimal
	RateType          RateType
	TaxRate           decimal.Decimal // porcentaje en [0,100]
	DiscountValueType DiscountValueType
	DiscountValue     decimal.Decimal
}

// NewLineItem crea una línea nueva con clave única para la fila.
func NewLineItem(productID, name, code string) LineItem {
	return LineItem{
		Key:               uuid.New().String(),
		ProductID:         productID,
		Name:              name,
		Code:              code,
		Quantity:          decimal.NewFromInt(1),
		DiscountValueType: DiscountPercentage,
	}
}

// EffectiveQuantity cantidad que usa el cálculo. Para productos serializados
// es la cantidad de seriales; nunca se fija de forma independiente.
func (li LineItem) EffectiveQuantity() decimal.Decimal {
	if li.IsSerialized {
		return decimal.NewFromInt(int64(len(li.SerialNumbers)))
	}
	return li.Quantity
}

// SetSerialNumbers reemplaza los seriales (sin duplicados, conservando el orden)
// y sincroniza Quantity para quien lea el campo directamente.
func (li *LineItem) SetSerialNumbers(serials []string) {
	seen := make(map[string]struct{}, len(serials))
	out := make([]string, 0, len(serials))
	for _, sn := range serials {
		if _, ok := seen[sn]; ok {
			continue
		}
		seen[sn] = struct{}{}
		out = append(out, sn)
	}
	li.SerialNumbers = out
	if li.IsSerialized {
		li.Quantity = decimal.NewFromInt(int64(len(out)))
	}
}
