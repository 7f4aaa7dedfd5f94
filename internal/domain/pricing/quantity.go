package pricing

import (
	"github.com/norvantechnology/hisab-sub003/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ResolveQuantity devuelve la cantidad efectiva de la línea: la capturada, o el número
// de seriales si el producto es serializado (cualquier cantidad manual se ignora).
// Una cantidad no positiva es error de validación y se detecta antes de llegar aquí.
func ResolveQuantity(item entity.LineItem) decimal.Decimal {
	return item.EffectiveQuantity()
}
