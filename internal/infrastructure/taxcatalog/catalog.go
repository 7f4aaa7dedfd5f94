package taxcatalog

import (
	"fmt"
	"strings"

	"github.com/norvantechnology/hisab-sub003/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Catalog catálogo en memoria de tipos de impuesto, en el orden configurado.
type Catalog struct {
	byCode map[string]entity.TaxType
	order  []string
}

// Parse lee un catálogo "codigo:porcentaje,codigo:porcentaje". Los porcentajes deben
// estar en [0,100] y los códigos no se pueden repetir.
func Parse(raw string) (*Catalog, error) {
	c := &Catalog{byCode: make(map[string]entity.TaxType)}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code, pct, ok := strings.Cut(part, ":")
		code = strings.TrimSpace(code)
		if !ok || code == "" {
			return nil, fmt.Errorf("tipo de impuesto mal formado: %q", part)
		}
		percent, err := decimal.NewFromString(strings.TrimSpace(pct))
		if err != nil {
			return nil, fmt.Errorf("porcentaje de %s: %w", code, err)
		}
		if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("porcentaje de %s fuera de [0,100]: %s", code, percent)
		}
		if _, dup := c.byCode[code]; dup {
			return nil, fmt.Errorf("tipo de impuesto duplicado: %s", code)
		}
		c.byCode[code] = entity.TaxType{Code: code, Percent: percent}
		c.order = append(c.order, code)
	}
	if len(c.order) == 0 {
		return nil, fmt.Errorf("catálogo de impuestos vacío")
	}
	return c, nil
}

// Resolve devuelve el tipo de impuesto por código.
func (c *Catalog) Resolve(code string) (entity.TaxType, bool) {
	t, ok := c.byCode[code]
	return t, ok
}

// List devuelve los tipos en el orden configurado.
func (c *Catalog) List() []entity.TaxType {
	out := make([]entity.TaxType, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.byCode[code])
	}
	return out
}
