package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/norvantechnology/hisab-sub003/internal/application/dto"
	"github.com/norvantechnology/hisab-sub003/internal/domain/entity"
	"github.com/norvantechnology/hisab-sub003/internal/domain/pricing"
)

// ChangeRateType aplica el cambio de tipo de tarifa global sobre las líneas existentes
// y devuelve la factura migrada con sus totales. Cambiar un parámetro cuenta como
// edición, por eso el total mostrado siempre es el recalculado.
func (uc *CalculateInvoiceUseCase) ChangeRateType(ctx context.Context, in dto.ChangeRateTypeRequest) (*dto.CalculationResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	inv, err := uc.buildInvoice(in.InvoiceRequest)
	if err != nil {
		return nil, err
	}

	from := inv.RateType
	totals := pricing.ChangeRateType(&inv, entity.RateType(in.NewRateType))
	tracker := pricing.NewLiveTracker()

	id := uuid.New().String()
	uc.log.Info().
		Str("calculation_id", id).
		Str("from", string(from)).
		Str("to", in.NewRateType).
		Int("items", len(inv.Items)).
		Msg("tipo de tarifa migrado")
	uc.logTotals(id, inv, totals, tracker)
	return toResponse(id, inv, totals, tracker, uc.places, uc.formatter), nil
}
