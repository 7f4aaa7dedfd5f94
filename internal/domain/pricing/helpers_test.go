package pricing_test

import (
	"testing"

	"github.com/norvantechnology/hisab-sub003/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertDecimal compara por valor (1.50 == 1.5).
func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "esperado %s, obtenido %s %v", want, got.String(), msgAndArgs)
}

// assertClose valida error relativo <= 1e-9.
func assertClose(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	diff := want.Sub(got).Abs()
	if want.IsZero() {
		assert.Truef(t, diff.IsZero(), "esperado 0, obtenido %s %v", got.String(), msgAndArgs)
		return
	}
	tol := want.Abs().Mul(dec("1e-9"))
	assert.Truef(t, diff.LessThanOrEqual(tol), "esperado ~%s, obtenido %s %v", want.String(), got.String(), msgAndArgs)
}

func item(rate, qty, taxRate string, rt entity.RateType) entity.LineItem {
	return entity.LineItem{
		Key:               "row",
		ProductID:         "p-1",
		Quantity:          dec(qty),
		Rate:              dec(rate),
		RateType:          rt,
		TaxRate:           dec(taxRate),
		DiscountValueType: entity.DiscountPercentage,
		DiscountValue:     decimal.Zero,
	}
}

func gst18() entity.TaxType {
	return entity.TaxType{Code: "gst_18", Percent: dec("18")}
}
