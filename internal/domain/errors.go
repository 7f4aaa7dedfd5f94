package domain

import "errors"

// Errores de validación de la captura de factura (sin dependencias externas).
// El motor de cálculo no los produce: los detecta la capa de validación antes de invocarlo.
var (
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidQuantity = errors.New("la cantidad debe ser mayor que cero")
	ErrInvalidTaxRate  = errors.New("el porcentaje de impuesto debe estar entre 0 y 100")
	ErrInvalidDiscount = errors.New("descuento inválido")
	ErrInvalidRateType = errors.New("tipo de tarifa inválido")
	ErrDuplicateSerial = errors.New("número de serie duplicado")
	ErrUnknownTaxType  = errors.New("tipo de impuesto desconocido")
)
