package billing

import "github.com/norvantechnology/hisab-sub003/internal/domain/entity"

// TaxCatalog resuelve el tipo de impuesto de la factura a su porcentaje nominal.
type TaxCatalog interface {
	Resolve(code string) (entity.TaxType, bool)
	List() []entity.TaxType
}
