// Package calc provides deterministic marketing-economics calculations for the
// prestige fragrance GTM model. This file implements the unit-economics building
// blocks: ARPU proxy, margin per order, margin-basis LTV, and CAC payback.
package calc

import (
	"math"
)

// =============================================================================
// UTILITIES
// =============================================================================

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// ARPUPerMonth derives a conservative monthly ARPU proxy from a one-off
// purchase price by spreading it over an assumed repurchase window.
//
// FORMULA: ARPU = price / max(1, divisor)
//
// Where:
//   - price = one-off list price of the bottle
//   - divisor = assumed months between purchases (e.g., 12..18)
func ARPUPerMonth(price, divisor float64) float64 {
	return price / math.Max(1.0, divisor)
}

// GMPerOrder returns the gross margin earned on one order at a given
// discount depth.
//
// FORMULA: GM = price × (1 - depth) × gm_pct
func GMPerOrder(price, gmPct, depth float64) float64 {
	return price * (1.0 - depth) * gmPct
}

// BaselineGMOverWeeks returns total gross margin over the horizon with no
// promos running.
//
// FORMULA: GM = weeks × units × price × gm_pct
func BaselineGMOverWeeks(baselineWeeklyUnits, price, gmPct float64, weeks int) float64 {
	return float64(weeks) * baselineWeeklyUnits * price * gmPct
}

// PromoDeltaPct expresses a net GM delta as a percentage of baseline GM.
// Can be negative. A non-positive baseline yields 0.
func PromoDeltaPct(netGMDelta, baselineGM float64) float64 {
	if baselineGM > 0 {
		return (netGMDelta / baselineGM) * 100.0
	}
	return 0.0
}

// =============================================================================
// UNIT ECONOMICS
// =============================================================================

// LTVGM computes customer lifetime value on a gross-margin basis over a
// finite horizon with geometric retention decay.
//
// FORMULA: LTV = arpu × gm_pct × Σ_{t=1..months} retention^t
//
// The sum is evaluated in closed form. At retention = 1 the ratio form
// divides by zero, so it degenerates to a flat multiply over the horizon.
//
// Where:
//   - arpu = monthly revenue per retained customer
//   - gm_pct = gross margin fraction (0..1)
//   - retention = month-over-month retention rate (0..1)
//   - months = horizon length
func LTVGM(arpu, gmPct, retention float64, months int) float64 {
	gm := arpu * gmPct
	if retention == 1.0 {
		return gm * float64(months)
	}
	return gm * (retention * (1 - math.Pow(retention, float64(months))) / (1 - retention))
}

// PaybackMonth scans the retention-decayed GM stream and returns the first
// month the cumulative margin covers CAC. The boolean is false when CAC is
// not recovered within the horizon.
//
// FORMULA: first t where Σ_{i=1..t} arpu × gm_pct × retention^i ≥ cac
func PaybackMonth(arpu, gmPct, retention, cac float64, months int) (int, bool) {
	gm := arpu * gmPct
	cum := 0.0
	for t := 1; t <= months; t++ {
		cum += gm * math.Pow(retention, float64(t))
		if cum >= cac {
			return t, true
		}
	}
	return 0, false
}
