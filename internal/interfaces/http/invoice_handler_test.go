package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norvantechnology/hisab-sub003/internal/application/billing"
	"github.com/norvantechnology/hisab-sub003/internal/application/dto"
	"github.com/norvantechnology/hisab-sub003/internal/domain/entity"
	"github.com/norvantechnology/hisab-sub003/internal/infrastructure/taxcatalog"
	apphttp "github.com/norvantechnology/hisab-sub003/internal/interfaces/http"
	"github.com/norvantechnology/hisab-sub003/pkg/logger"
	"github.com/norvantechnology/hisab-sub003/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	catalog, err := taxcatalog.Parse("none:0,gst_18:18")
	require.NoError(t, err)
	uc := billing.NewCalculateInvoiceUseCase(catalog, money.NewFormatter("en", 2), billing.Settings{DisplayPlaces: 2, DefaultRateType: entity.RateWithoutTax}, logger.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{CalculateInvoice: uc})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const scenarioBody = `{
	"kind": "sales",
	"tax_type": "gst_18",
	"rate_type": "without_tax",
	"discount_scope": "none",
	"items": [{
		"key": "row-1",
		"product_id": "p-1",
		"quantity": 2,
		"rate": "100",
		"tax_rate": 18,
		"discount_value_type": "percentage",
		"discount_value": 10
	}]
}`

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/invoices/calculate
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_Retorna200ConTotales(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/calculate", scenarioBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CalculationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 1)
	assert.True(t, decimal.RequireFromString("32.4").Equal(out.Items[0].TaxAmount))
	assert.True(t, decimal.RequireFromString("212.4").Equal(out.Totals.NetPayable))
	assert.Equal(t, "212.40", out.Formatted["net_payable"])
}

func TestCalculate_CuerpoInvalido_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/calculate", `{"items": [`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}

func TestCalculate_TipoDeImpuestoDesconocido_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	body := strings.Replace(scenarioBody, `"gst_18"`, `"vat_21"`, 1)
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/calculate", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "UNKNOWN_TAX_TYPE")
}

func TestCalculate_CantidadCero_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	body := strings.Replace(scenarioBody, `"quantity": 2`, `"quantity": 0`, 1)
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/calculate", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INVALID_QUANTITY")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/invoices/rate-type
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeRateType_MigraTarifas(t *testing.T) {
	app := buildTestApp(t)
	body := strings.Replace(scenarioBody, `"kind": "sales",`, `"kind": "sales", "new_rate_type": "with_tax",`, 1)
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/rate-type", body)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CalculationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "with_tax", out.RateType)
	assert.True(t, decimal.NewFromInt(118).Equal(out.Items[0].Rate))
	assert.True(t, decimal.RequireFromString("212.4").Equal(out.Totals.NetPayable))
}

func TestChangeRateType_SinTipoDestino_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/rate-type", scenarioBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INVALID_RATE_TYPE")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/tax-types
// ──────────────────────────────────────────────────────────────────────────────

func TestTaxTypes_ListaCatalogo(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/tax-types", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.TaxTypeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 2)
	assert.Equal(t, "gst_18", out[1].Code)
	assert.True(t, out[1].Taxed)
}
