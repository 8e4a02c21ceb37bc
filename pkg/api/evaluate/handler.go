// Package evaluate exposes the scenario calculator as a JSON API.
//
// This file implements the POST /api/evaluate endpoint: it decodes a partial
// scenario over the documented defaults, runs the full calculation pipeline,
// and returns the economics plus advisor output.
package evaluate

import (
	"encoding/json"
	"net/http"

	"github.com/phuslu/log"

	"prestige_gtm/pkg/core/calc"
	"prestige_gtm/pkg/core/config"
	"prestige_gtm/pkg/core/report"
)

// ============================================================================
// REQUEST / RESPONSE TYPES
// ============================================================================

// EvaluateResponse is the wire shape of a full scenario evaluation.
// PaybackMonth is null when the CAC is not recovered within the horizon.
type EvaluateResponse struct {
	ReportID        string               `json:"report_id"`
	ARPUMonthly     float64              `json:"arpu_monthly"`
	LTVGM           float64              `json:"ltv_gm"`
	PaybackMonth    *int                 `json:"payback_month"`
	Promo           calc.PromoEvalResult `json:"promo"`
	PPI             float64              `json:"ppi"`
	Band            string               `json:"band"`
	Recommendations []string             `json:"recommendations"`
	Warnings        []string             `json:"warnings,omitempty"`
	Markdown        string               `json:"markdown"`
}

// ============================================================================
// HANDLER
// ============================================================================

// HandleEvaluate runs the calculator over a JSON scenario.
// Fields omitted from the request body keep their default values.
func HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	// Enable CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	scenario := config.DefaultScenario()
	if err := json.NewDecoder(r.Body).Decode(&scenario); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	rep := report.Build(scenario)

	log.Info().
		Str("report_id", rep.ID).
		Float64("ppi", rep.PPI).
		Str("band", rep.Band).
		Float64("net_gm_delta", rep.Promo.NetGMDelta).
		Msg("Scenario evaluated")

	resp := EvaluateResponse{
		ReportID:        rep.ID,
		ARPUMonthly:     rep.ARPUMonthly,
		LTVGM:           rep.LTV,
		Promo:           rep.Promo,
		PPI:             rep.PPI,
		Band:            rep.Band,
		Recommendations: rep.Recommendations,
		Warnings:        scenario.Warnings(),
		Markdown:        report.RenderMarkdown(rep, true),
	}
	if rep.HasPayback {
		month := rep.PaybackMonth
		resp.PaybackMonth = &month
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
