package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/norvantechnology/hisab-sub003/internal/application/dto"
	"github.com/norvantechnology/hisab-sub003/internal/domain"
	"github.com/norvantechnology/hisab-sub003/internal/domain/entity"
	"github.com/norvantechnology/hisab-sub003/internal/domain/pricing"
	"github.com/norvantechnology/hisab-sub003/pkg/logger"
	"github.com/norvantechnology/hisab-sub003/pkg/money"
)

// CalculateInvoiceUseCase valida la captura del formulario y la pasa por el motor de
// cálculo. Lo comparten las facturas de compra, compra rápida y venta.
type CalculateInvoiceUseCase struct {
	catalog         TaxCatalog
	validator       *InputValidator
	formatter       *money.Formatter
	places          int32
	defaultRateType entity.RateType
	log             *logger.Logger
}

// Settings parámetros de presentación y valores por defecto de la captura.
type Settings struct {
	DisplayPlaces   int
	DefaultRateType entity.RateType // si la factura llega sin rate_type
}

// NewCalculateInvoiceUseCase construye el caso de uso.
func NewCalculateInvoiceUseCase(catalog TaxCatalog, formatter *money.Formatter, settings Settings, log *logger.Logger) *CalculateInvoiceUseCase {
	rt := settings.DefaultRateType
	if !rt.Valid() {
		rt = entity.RateWithoutTax
	}
	return &CalculateInvoiceUseCase{
		catalog:         catalog,
		validator:       NewInputValidator(),
		formatter:       formatter,
		places:          int32(settings.DisplayPlaces),
		defaultRateType: rt,
		log:             log,
	}
}

// Calculate recalcula líneas y totales. Con PersistedNetPayable y sin Edited la
// pantalla de edición sigue mostrando el total guardado; en cuanto se edita algo
// se muestra el recalculado.
func (uc *CalculateInvoiceUseCase) Calculate(ctx context.Context, in dto.CalculateInvoiceRequest) (*dto.CalculationResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	inv, err := uc.buildInvoice(in.InvoiceRequest)
	if err != nil {
		return nil, err
	}

	tracker := pricing.NewLiveTracker()
	if in.PersistedNetPayable != nil {
		tracker = pricing.NewTrustingTracker(*in.PersistedNetPayable)
		if in.Edited {
			tracker.Touch()
		}
	}

	id := uuid.New().String()
	totals := pricing.Aggregate(inv)
	uc.logTotals(id, inv, totals, tracker)
	return toResponse(id, inv, totals, tracker, uc.places, uc.formatter), nil
}

// TaxTypes devuelve el catálogo configurado.
func (uc *CalculateInvoiceUseCase) TaxTypes() []dto.TaxTypeResponse {
	list := uc.catalog.List()
	out := make([]dto.TaxTypeResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.TaxTypeResponse{Code: t.Code, Percent: t.Percent, Taxed: t.Taxed()})
	}
	return out
}

func (uc *CalculateInvoiceUseCase) buildInvoice(in dto.InvoiceRequest) (entity.Invoice, error) {
	if err := uc.validator.Rules(in); err != nil {
		return entity.Invoice{}, err
	}
	if in.RateType == "" {
		in.RateType = string(uc.defaultRateType)
	}
	taxType, ok := uc.catalog.Resolve(in.TaxType)
	if !ok {
		return entity.Invoice{}, fmt.Errorf("%w: %s", domain.ErrUnknownTaxType, in.TaxType)
	}
	return toInvoice(in, taxType), nil
}

func (uc *CalculateInvoiceUseCase) logTotals(id string, inv entity.Invoice, totals pricing.InvoiceTotals, tracker *pricing.TotalTracker) {
	for i, a := range totals.Items {
		if a.DiscountClamped {
			uc.log.Warn().
				Str("calculation_id", id).
				Str("item_key", inv.Items[i].Key).
				Str("discount", inv.Items[i].DiscountValue.String()).
				Str("subtotal", a.Subtotal.String()).
				Msg("descuento de línea recortado al subtotal")
		}
	}
	if totals.InvoiceDiscountClamped {
		uc.log.Warn().
			Str("calculation_id", id).
			Str("discount", inv.DiscountValue.String()).
			Str("item_totals_sum", totals.ItemTotalsSum.String()).
			Msg("descuento de factura recortado")
	}
	uc.log.Debug().
		Str("calculation_id", id).
		Str("kind", string(inv.Kind)).
		Int("items", len(inv.Items)).
		Str("net_payable", totals.NetPayable.String()).
		Str("total_state", tracker.State().String()).
		Msg("factura recalculada")
}
