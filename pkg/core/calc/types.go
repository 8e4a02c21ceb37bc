// Package calc provides deterministic marketing-economics calculations for the
// prestige fragrance GTM model. This file defines the shared input and output types.
package calc

// =============================================================================
// PROMO CALENDAR TYPES
// =============================================================================

// PromoEvent is a single planned discount event on the promo calendar.
type PromoEvent struct {
	Week    int     `json:"week"`    // week index (1..52 or horizon)
	Depth   float64 `json:"depth"`   // discount fraction, e.g., 0.15 for 15%
	Channel string  `json:"channel"` // "DTC" or "Retail" or other tag
}

// PromoCalendarInput bundles the assumptions for one calendar evaluation.
type PromoCalendarInput struct {
	BaselineWeeklyUnits   float64      // units sold per week with no promos
	ListPrice             float64      // full list price per unit
	GMPct                 float64      // gross margin fraction of price (0..1)
	Elasticity            float64      // price elasticity magnitude (positive number, e.g., 1.2)
	Weeks                 int          // planning horizon in weeks
	Events                []PromoEvent // planned promo events
	PullForwardFactor     float64      // fraction of uplift pulled from future weeks
	CannibalizationFactor float64      // fraction of uplift that would have sold at full price anyway
}

// PromoEvalResult is the outcome of simulating one promo calendar.
type PromoEvalResult struct {
	NetGMDelta            float64 `json:"net_gm_delta"`            // incremental GM vs baseline over the horizon (currency units)
	BaselineRecoveryWeeks float64 `json:"baseline_recovery_weeks"` // simple proxy for post-promo trough duration
	AvgDepth              float64 `json:"avg_depth"`               // mean event depth as entered, not clamped
	PromoDaysPct          float64 `json:"promo_days_pct"`          // share of horizon weeks carrying a promo event
	CannibalizationShare  float64 `json:"cannibalization_share"`   // echo of the input factor
	PullForwardShare      float64 `json:"pull_forward_share"`      // echo of the input factor
	BaselineGM            float64 `json:"baseline_gm"`             // GM without promos over the same horizon
	DeltaPct              float64 `json:"delta_pct"`               // NetGMDelta / BaselineGM as a percentage
}

// =============================================================================
// PRESTIGE PROTECTION TYPES
// =============================================================================

// Weights maps PPI factor names to relative weights. Values need not sum to 1;
// they are normalized before scoring. Recognized keys are "promo_days",
// "avg_depth", "code_share", "hero", and "leakage". Unrecognized keys still
// count toward the normalization total and dilute the recognized factors.
type Weights map[string]float64

// PrestigeInput carries the five 0..1 risk factors scored by
// PrestigeProtectionIndex, plus optional weight overrides.
type PrestigeInput struct {
	PromoDaysPct          float64 // share of weeks with a promo event
	AvgDepth              float64 // mean discount depth across events
	CodeShare             float64 // share of orders carrying a discount code
	HeroDiscountIncidence float64 // how often hero SKUs are discounted
	Leakage               float64 // share of volume leaking to gray-market resellers
	Weights               Weights // nil means DefaultWeights()
}

// =============================================================================
// ADVISORY TYPES
// =============================================================================

// AdvisorInput gathers the cross-module readings the advisory rules inspect.
type AdvisorInput struct {
	Promo       PromoEvalResult
	PPI         float64
	Price       float64
	GMPct       float64
	Retention   float64
	Months      int
	CAC         float64
	CodeShare   float64
	ARPUDivisor float64 // months the list price is spread over; <= 0 falls back to 12
}

// =============================================================================
// INFLUENCER TIER TYPES
// =============================================================================

// Tier describes one influencer pricing tier.
type Tier struct {
	Name        string  `json:"name"`
	Fee         float64 `json:"fee"`           // flat fee per campaign
	Reach       float64 `json:"reach"`         // expected impressions
	CTR         float64 `json:"ctr"`           // click-through rate (0..1)
	CVR         float64 `json:"cvr"`           // click-to-purchase conversion rate (0..1)
	HalfLifeWks float64 `json:"half_life_wks"` // content decay half-life in weeks
}

// TierPaybackResult reports cohort economics for a single tier campaign.
type TierPaybackResult struct {
	NetGM        float64 `json:"net_gm"`        // cohort LTV on a GM basis minus the tier fee
	PaybackMonth int     `json:"payback_month"` // first month cumulative cohort GM covers the fee
	HasPayback   bool    `json:"has_payback"`   // false when the fee is not recovered within the horizon
	CAC          float64 `json:"cac"`           // fee per expected buyer, capped when a cap is supplied
}
