package pricing

import "github.com/shopspring/decimal"

// TrackerState estado del total mostrado en un formulario de edición.
type TrackerState int

const (
	// TrackerTrusting muestra el total persistido mientras no se toque ningún campo.
	TrackerTrusting TrackerState = iota
	// TrackerLive muestra el total recalculado. No se regresa a Trusting.
	TrackerLive
)

func (s TrackerState) String() string {
	if s == TrackerTrusting {
		return "trusting"
	}
	return "live"
}

// TotalTracker decide qué total mostrar en modo edición.
type TotalTracker struct {
	state     TrackerState
	persisted decimal.Decimal
}

// NewTrustingTracker abre una factura existente confiando en su total persistido.
func NewTrustingTracker(persisted decimal.Decimal) *TotalTracker {
	return &TotalTracker{state: TrackerTrusting, persisted: persisted}
}

// NewLiveTracker abre una factura nueva; siempre muestra el total recalculado.
func NewLiveTracker() *TotalTracker {
	return &TotalTracker{state: TrackerLive}
}

// Touch registra un cambio en cualquier campo de entrada.
func (t *TotalTracker) Touch() {
	t.state = TrackerLive
}

// State devuelve el estado actual.
func (t *TotalTracker) State() TrackerState {
	return t.state
}

// Display devuelve el total a mostrar.
func (t *TotalTracker) Display(totals InvoiceTotals) decimal.Decimal {
	if t.state == TrackerTrusting {
		return t.persisted
	}
	return totals.NetPayable
}
