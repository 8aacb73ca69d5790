package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloud-ru/rou-lease-go/internal/api/models"
	"github.com/cloud-ru/rou-lease-go/internal/config"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg, _ := config.LoadConfig()
	presets := []config.Preset{
		{Name: "warehouse", PaymentAmount: float64Ptr(45000), Frequency: "quarterly", TermYears: float64Ptr(7), StartDate: "2025-01-01"},
	}
	return NewRouter(cfg, noop.NewTracerProvider().Tracer("test"), presets)
}

func float64Ptr(v float64) *float64 { return &v }

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestCalculate_OK(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/lease/calculate", `{
		"payment_amount": 100000,
		"frequency": "annual",
		"discount_rate_annual": 0.05,
		"term_years": 5,
		"start_date": "2024-01-15"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.LeaseResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.ID == "" {
		t.Error("expected calculation id")
	}
	if resp.CarryingValue.TotalInitialValue != 432947.67 {
		t.Errorf("expected total initial value 432947.67, got %f", resp.CarryingValue.TotalInitialValue)
	}
	if resp.Summary.MonthlyDepreciation != 7215.79 {
		t.Errorf("expected monthly depreciation 7215.79, got %f", resp.Summary.MonthlyDepreciation)
	}
	if len(resp.Schedule) != 60 || len(resp.Chart) != 60 {
		t.Fatalf("expected 60 rows and points, got %d / %d", len(resp.Schedule), len(resp.Chart))
	}
	if resp.Schedule[0].Date != "2024-01-15" || math.Abs(resp.Schedule[0].BookValue-425731.87) > 1e-9 {
		t.Errorf("unexpected first row %+v", resp.Schedule[0])
	}
	if resp.Inputs.Frequency != "annual" {
		t.Errorf("expected annual frequency echo, got %q", resp.Inputs.Frequency)
	}
}

func TestCalculate_Preset(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/lease/calculate", `{"preset": "warehouse", "discount_rate_annual": 0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.LeaseResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	// 28 квартальных платежей без дисконтирования
	if resp.CarryingValue.PresentValueOfPayments != 45000*28 {
		t.Errorf("expected undiscounted sum %d, got %f", 45000*28, resp.CarryingValue.PresentValueOfPayments)
	}
	if resp.Summary.TermMonths != 84 || resp.Inputs.StartDate != "2025-01-01" {
		t.Errorf("preset not applied: %+v", resp.Inputs)
	}

	w = do(router, http.MethodPost, "/api/v1/lease/calculate", `{"preset": "missing"}`)
	if w.Code != http.StatusNotFound || decodeError(t, w).Error.Code != "PRESET_NOT_FOUND" {
		t.Errorf("expected 404 PRESET_NOT_FOUND, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCalculate_Errors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "broken json", body: `{invalid-json}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{name: "negative payment", body: `{"payment_amount": -1}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "unsupported frequency", body: `{"payments_per_year": 3}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "bad date", body: `{"start_date": "2024/01/15"}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "residual above carrying value", body: `{"residual_value": 900000}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "term shorter than a month", body: `{"term_years": 0.05}`, wantStatus: http.StatusUnprocessableEntity, wantCode: "DIVISION_BY_ZERO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodPost, "/api/v1/lease/calculate", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if code := decodeError(t, w).Error.Code; code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, code)
			}
		})
	}
}

func TestExportCSV(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/lease/schedule.csv", `{"start_date": "2024-01-15"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "depreciation_schedule.csv") {
		t.Errorf("unexpected Content-Disposition %q", w.Header().Get("Content-Disposition"))
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 61 {
		t.Fatalf("expected 61 lines, got %d", len(lines))
	}
	if lines[1] != "2024-01-15,425731.87,7215.79" {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestReport(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/lease/report", `{"start_date": "2024-01-15"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "432,947.67") {
		t.Error("report should contain the carrying value")
	}
}

func TestTools(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/tools", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "rou_present_value") {
		t.Fatalf("unexpected tools list %d: %s", w.Code, w.Body.String())
	}

	w = do(router, http.MethodPost, "/api/v1/tools/rou_present_value",
		`{"params": {"payment_amount": 100000, "discount_rate_annual": 0, "term_years": 5}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Tool   string `json:"tool"`
		Result struct {
			PresentValue float64 `json:"present_value"`
		} `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Tool != "rou_present_value" || resp.Result.PresentValue != 500000 {
		t.Errorf("unexpected response %+v", resp)
	}

	w = do(router, http.MethodPost, "/api/v1/tools/rou_depreciation_schedule",
		`{"params": {"initial_value": 1000, "term_months": 0}}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for zero months, got %d: %s", w.Code, w.Body.String())
	}

	w = do(router, http.MethodPost, "/api/v1/tools/unknown", `{"params": {}}`)
	if w.Code != http.StatusNotFound || decodeError(t, w).Error.Code != "UNKNOWN_TOOL" {
		t.Errorf("expected 404 UNKNOWN_TOOL, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDefaultsPresetsHealth(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/defaults", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var defaults models.DefaultsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &defaults); err != nil {
		t.Fatal(err)
	}
	if defaults.Frequency != "annual" || defaults.PaymentAmount != 100000 || defaults.TermYears != 5 {
		t.Errorf("unexpected defaults %+v", defaults)
	}
	if len(defaults.Frequencies) != 4 {
		t.Errorf("expected 4 frequencies, got %v", defaults.Frequencies)
	}

	w = do(router, http.MethodGet, "/api/v1/presets", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "warehouse") {
		t.Errorf("unexpected presets response %d: %s", w.Code, w.Body.String())
	}

	w = do(router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 from /health, got %d", w.Code)
	}

	w = do(router, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "api_calls_total") {
		t.Errorf("expected prometheus metrics, got %d", w.Code)
	}
}
