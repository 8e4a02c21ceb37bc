// Package calculator serves the browser-facing scenario form.
//
// This file implements the two page handlers: GET / renders the form
// prefilled with the documented defaults, POST /generate runs the full
// calculation pipeline and renders the report inline.
package calculator

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/phuslu/log"

	"prestige_gtm/pkg/core/config"
	"prestige_gtm/pkg/core/report"
)

// DefaultEventsText prefills the promo calendar textarea with the baseline
// holiday plan.
const DefaultEventsText = "6,0.15,Retail\n15,0.20,DTC\n22,0.15,Retail"

// ============================================================================
// HANDLER
// ============================================================================

type Handler struct {
	pages *template.Template
}

func NewHandler() *Handler {
	return &Handler{
		pages: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

type indexData struct {
	Scenario    config.Scenario
	EventsText  string
	WeightsText string
}

type reportData struct {
	ReportID string
	Report   template.HTML
	Markdown string
	Version  string
}

// HandleIndex renders the calculator form with every field prefilled.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.render(w, "index.html", indexData{
		Scenario:   config.DefaultScenario(),
		EventsText: DefaultEventsText,
	})
}

// HandleGenerate evaluates the submitted scenario and renders the report
// page: the converted report plus the raw Markdown for copy/paste.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	scenario := scenarioFromForm(r)
	rep := report.Build(scenario)

	log.Info().
		Str("report_id", rep.ID).
		Float64("ppi", rep.PPI).
		Str("band", rep.Band).
		Float64("net_gm_delta", rep.Promo.NetGMDelta).
		Msg("Report generated")

	body := report.RenderMarkdown(rep, false)
	htmlReport, err := report.RenderHTML(body)
	if err != nil {
		log.Error().Err(err).Str("report_id", rep.ID).Msg("Failed to render report")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render(w, "report.html", reportData{
		ReportID: rep.ID,
		Report:   template.HTML(htmlReport),
		Markdown: body,
		Version:  report.Version,
	})
}

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.pages.ExecuteTemplate(w, name, data); err != nil {
		log.Error().
			Err(err).
			Str("template", name).
			Msg("Failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ============================================================================
// FORM PARSING
// ============================================================================

// scenarioFromForm layers the submitted fields over the defaults. The form
// is forgiving: missing or non-numeric values keep their default.
func scenarioFromForm(r *http.Request) config.Scenario {
	s := config.DefaultScenario()

	s.Price = formFloat(r, "price", s.Price)
	s.GMPct = formFloat(r, "gm_pct", s.GMPct)
	s.CAC = formFloat(r, "cac", s.CAC)
	s.Retention = formFloat(r, "retention", s.Retention)
	s.ARPUDivisor = formFloat(r, "arpu_divisor", s.ARPUDivisor)
	s.BaselineWeeklyUnits = formFloat(r, "baseline_weekly_units", s.BaselineWeeklyUnits)
	s.Weeks = int(formFloat(r, "weeks", float64(s.Weeks)))
	s.Elasticity = formFloat(r, "elasticity", s.Elasticity)
	s.PullForwardFactor = formFloat(r, "pull_forward_factor", s.PullForwardFactor)
	s.CannibalizationFactor = formFloat(r, "cannibalization_factor", s.CannibalizationFactor)
	s.CodeShare = formFloat(r, "code_share", s.CodeShare)
	s.HeroDiscountIncidence = formFloat(r, "hero_discount_incidence", s.HeroDiscountIncidence)
	s.Leakage = formFloat(r, "leakage", s.Leakage)

	s.PromoEvents = config.ParseEventsText(r.FormValue("events_text"))

	weights, err := config.ParseWeightsText(r.FormValue("weights_text"))
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring malformed PPI weight overrides")
	} else if weights != nil {
		s.Weights = weights
	}

	return s
}

// formFloat reads one form field, falling back when the value is missing or
// not numeric.
func formFloat(r *http.Request, key string, fallback float64) float64 {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
