package evaluate

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
)

func postEvaluate(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/evaluate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	HandleEvaluate(rec, req)
	return rec
}

func TestHandleEvaluateDefaults(t *testing.T) {
	rec := postEvaluate(t, `{}`)
	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp EvaluateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// Defaults: price 180 / divisor 18 -> ARPU 10; CAC 35 pays back in month 10.
	if math.Abs(resp.ARPUMonthly-10.0) > 0.0001 {
		t.Errorf("Expected ARPU 10, got %f", resp.ARPUMonthly)
	}
	expectedLTV := 8.0 * (0.85 * (1 - math.Pow(0.85, 24)) / 0.15)
	if math.Abs(resp.LTVGM-expectedLTV) > 0.0001 {
		t.Errorf("Expected LTV %f, got %f", expectedLTV, resp.LTVGM)
	}
	if resp.PaybackMonth == nil || *resp.PaybackMonth != 10 {
		t.Errorf("Expected payback month 10, got %v", resp.PaybackMonth)
	}

	// No promo events in the defaults, so the calendar is flat.
	if math.Abs(resp.Promo.NetGMDelta) > 0.0001 {
		t.Errorf("Expected zero GM delta without events, got %f", resp.Promo.NetGMDelta)
	}

	// PPI from default inputs: 100*(0.25*0.35 + 0.20*0.10 + 0.10*0.08) = 11.55.
	if math.Abs(resp.PPI-11.55) > 0.0001 {
		t.Errorf("Expected PPI 11.55, got %f", resp.PPI)
	}
	if resp.Band != "Green" {
		t.Errorf("Expected Green band, got %s", resp.Band)
	}
	if len(resp.Recommendations) != 5 {
		t.Errorf("Expected 5 recommendations, got %d", len(resp.Recommendations))
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("Expected no warnings for defaults, got %v", resp.Warnings)
	}
	if !strings.Contains(resp.Markdown, "# Prestige Fragrance GTM") {
		t.Errorf("Markdown missing report title: %q", resp.Markdown)
	}
	if !strings.Contains(resp.Markdown, "(Green)") {
		t.Errorf("API markdown should include the PPI band: %q", resp.Markdown)
	}
	if resp.ReportID == "" {
		t.Error("Expected a report ID")
	}
}

func TestHandleEvaluatePartialOverride(t *testing.T) {
	rec := postEvaluate(t, `{"price": 210}`)
	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp EvaluateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// Overridden price flows through; omitted fields keep their defaults.
	if math.Abs(resp.ARPUMonthly-210.0/18.0) > 0.0001 {
		t.Errorf("Expected ARPU %f, got %f", 210.0/18.0, resp.ARPUMonthly)
	}
	if resp.PaybackMonth == nil {
		t.Error("Expected payback within the default horizon")
	}
}

func TestHandleEvaluatePaybackNull(t *testing.T) {
	// 24-month cumulative GM tops out near 44.4; a 200 CAC never pays back.
	rec := postEvaluate(t, `{"cac": 200}`)
	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp EvaluateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.PaybackMonth != nil {
		t.Errorf("Expected null payback month, got %d", *resp.PaybackMonth)
	}
	if !strings.Contains(resp.Markdown, "Not within horizon") {
		t.Error("Markdown should report payback as not within horizon")
	}
}

func TestHandleEvaluateEventsAndWarnings(t *testing.T) {
	body := `{
		"retention": 1.4,
		"promo_events": [
			{"week": 6, "depth": 0.15, "channel": "Retail"},
			{"week": 15, "depth": 0.20, "channel": "DTC"}
		]
	}`
	rec := postEvaluate(t, body)
	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp EvaluateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if math.Abs(resp.Promo.AvgDepth-0.175) > 0.0001 {
		t.Errorf("Expected avg depth 0.175, got %f", resp.Promo.AvgDepth)
	}
	if len(resp.Warnings) == 0 {
		t.Fatal("Expected a warning for retention above 1")
	}
	if !strings.Contains(resp.Warnings[0], "Retention") {
		t.Errorf("Expected retention warning, got %q", resp.Warnings[0])
	}
}

func TestHandleEvaluateInvalidBody(t *testing.T) {
	rec := postEvaluate(t, `{"price": `)
	if rec.Code != 400 {
		t.Errorf("Expected status 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestHandleEvaluateMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/evaluate", nil)
	rec := httptest.NewRecorder()
	HandleEvaluate(rec, req)
	if rec.Code != 405 {
		t.Errorf("Expected status 405 for GET, got %d", rec.Code)
	}
}

func TestHandleEvaluateOptionsPreflight(t *testing.T) {
	req := httptest.NewRequest("OPTIONS", "/api/evaluate", nil)
	rec := httptest.NewRecorder()
	HandleEvaluate(rec, req)
	if rec.Code != 200 {
		t.Errorf("Expected status 200 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS allow-origin header on preflight response")
	}
}
