package billing

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/norvantechnology/hisab-sub003/internal/application/dto"
	"github.com/norvantechnology/hisab-sub003/internal/domain"
	"github.com/shopspring/decimal"
)

// InputValidator valida la captura antes de invocar el motor de cálculo, que asume
// entradas válidas y nunca devuelve error.
type InputValidator struct {
	v *validator.Validate
}

// NewInputValidator construye el validador. Los tags cubren textos y enums; los
// rangos de decimal.Decimal se comparan en Rules sin pasar por float64.
func NewInputValidator() *InputValidator {
	return &InputValidator{v: validator.New()}
}

var hundred = decimal.NewFromInt(100)

// Struct aplica las reglas de los tags de un DTO.
func (iv *InputValidator) Struct(s interface{}) error {
	err := iv.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	fe := verrs[0]
	if fe.Field() == "RateType" || fe.Field() == "NewRateType" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRateType, fe.Namespace())
	}
	return fmt.Errorf("%w: %s (%s)", domain.ErrInvalidInput, fe.Namespace(), fe.Tag())
}

// Rules valida los rangos de los montos decimales y las reglas que dependen de
// varios campos. Se llama después de Struct.
func (iv *InputValidator) Rules(in dto.InvoiceRequest) error {
	if in.DiscountValue.IsNegative() {
		return fmt.Errorf("%w: discount_value negativo", domain.ErrInvalidDiscount)
	}
	if in.TransportationCharge.IsNegative() {
		return fmt.Errorf("%w: transportation_charge negativo", domain.ErrInvalidInput)
	}
	if in.DiscountScope == "invoice" || in.DiscountScope == "per_item_and_invoice" {
		if in.DiscountValueType != "fixed" && in.DiscountValue.GreaterThan(hundred) {
			return fmt.Errorf("%w: el porcentaje de descuento de la factura supera 100", domain.ErrInvalidDiscount)
		}
	}
	for i, item := range in.Items {
		if err := validateItem(item); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}

func validateItem(item dto.LineItemRequest) error {
	if item.Rate.IsNegative() {
		return fmt.Errorf("%w: rate negativo", domain.ErrInvalidInput)
	}
	if item.TaxRate.IsNegative() || item.TaxRate.GreaterThan(hundred) {
		return fmt.Errorf("%w: %s fuera de [0,100]", domain.ErrInvalidTaxRate, item.TaxRate)
	}
	if item.DiscountValue.IsNegative() {
		return fmt.Errorf("%w: discount_value negativo", domain.ErrInvalidDiscount)
	}
	if !item.IsSerialized && !item.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidQuantity
	}
	if item.IsSerialized {
		seen := make(map[string]struct{}, len(item.SerialNumbers))
		for _, sn := range item.SerialNumbers {
			if _, ok := seen[sn]; ok {
				return fmt.Errorf("%w: %s", domain.ErrDuplicateSerial, sn)
			}
			seen[sn] = struct{}{}
		}
	}
	if item.DiscountValueType != "fixed" && item.DiscountValue.GreaterThan(hundred) {
		return fmt.Errorf("%w: el porcentaje supera 100", domain.ErrInvalidDiscount)
	}
	return nil
}
