// Package report runs the full calculator pass over a scenario and renders
// the outcome as Markdown and HTML.
package report

import (
	"time"

	"github.com/google/uuid"

	"prestige_gtm/pkg/core/calc"
	"prestige_gtm/pkg/core/config"
)

const (
	// Version is the calculator release stamp shown in footers and --version.
	Version = "0.3.0"

	// Title heads every rendered report.
	Title = "Prestige Fragrance GTM — Calculator Report"
)

// Report carries the scenario echo plus every computed result, ready for a
// renderer. The core calculators return plain values; only this layer knows
// about presentation.
type Report struct {
	ID          string // unique per run, for logging and download names
	Scenario    config.Scenario
	ARPUMonthly float64
	LTV         float64

	PaybackMonth int
	HasPayback   bool

	Promo calc.PromoEvalResult
	PPI   float64
	Band  string

	Recommendations []string
	GeneratedAt     time.Time
}

// Build evaluates a scenario end to end: unit economics, the promo calendar,
// the prestige score, and the advisory rules.
func Build(s config.Scenario) Report {
	arpu := calc.ARPUPerMonth(s.Price, s.ARPUDivisor)
	ltv := calc.LTVGM(arpu, s.GMPct, s.Retention, s.HorizonMonths)
	pb, hasPB := calc.PaybackMonth(arpu, s.GMPct, s.Retention, s.CAC, s.HorizonMonths)

	promo := calc.EvalPromoCalendar(s.CalendarInput())

	ppi := calc.PrestigeProtectionIndex(calc.PrestigeInput{
		PromoDaysPct:          promo.PromoDaysPct,
		AvgDepth:              promo.AvgDepth,
		CodeShare:             s.CodeShare,
		HeroDiscountIncidence: s.HeroDiscountIncidence,
		Leakage:               s.Leakage,
		Weights:               s.PPIWeights(),
	})

	recs := calc.Advise(calc.AdvisorInput{
		Promo:       promo,
		PPI:         ppi,
		Price:       s.Price,
		GMPct:       s.GMPct,
		Retention:   s.Retention,
		Months:      s.HorizonMonths,
		CAC:         s.CAC,
		CodeShare:   s.CodeShare,
		ARPUDivisor: s.ARPUDivisor,
	})

	return Report{
		ID:              uuid.NewString(),
		Scenario:        s,
		ARPUMonthly:     arpu,
		LTV:             ltv,
		PaybackMonth:    pb,
		HasPayback:      hasPB,
		Promo:           promo,
		PPI:             ppi,
		Band:            calc.PPIBand(ppi, calc.GreenMaxPPI, calc.AmberMaxPPI),
		Recommendations: recs,
		GeneratedAt:     time.Now(),
	}
}
