package calc

import (
	"math"
)

// =============================================================================
// PROMO CALENDAR SIMULATION
// =============================================================================

// EvalPromoCalendar simulates a weekly promo calendar against a flat baseline
// and decomposes discount-driven uplift into incremental, pull-forward, and
// cannibalized gross margin.
//
// Model sketch:
//   - Baseline GM each week = units × list price × gm_pct
//   - A promo at depth d sells at (1-d) × list; demand uplift ~ (1/(1-d))^elasticity
//   - Uplift splits into incremental vs pull-forward vs cannibalization
//   - Pull-forward is charged back once as a post-promo trough penalty
//
// Depth is clamped to [0, 0.8] before pricing. When two events name the same
// week, the later entry wins. AvgDepth reports the depths as entered, not as
// clamped, and PromoDaysPct counts every event even when its week falls
// outside the horizon. The decomposition factors are applied as given; keeping
// their sum at or below 1 is the caller's contract.
func EvalPromoCalendar(in PromoCalendarInput) PromoEvalResult {
	baselineGMTotal := BaselineGMOverWeeks(in.BaselineWeeklyUnits, in.ListPrice, in.GMPct, in.Weeks)
	baseWeekGM := in.BaselineWeeklyUnits * in.ListPrice * in.GMPct

	promoByWeek := make(map[int]PromoEvent, len(in.Events))
	for _, e := range in.Events {
		promoByWeek[e.Week] = e
	}

	netGM := 0.0
	troughPenalty := 0.0

	for w := 1; w <= in.Weeks; w++ {
		ev, ok := promoByWeek[w]
		if !ok {
			// non-promo week at baseline price
			netGM += baseWeekGM
			continue
		}

		d := Clamp(ev.Depth, 0.0, 0.8)
		price := (1 - d) * in.ListPrice
		// iso-elastic demand uplift multiplier
		mult := math.Pow(1.0/(1.0-d), math.Max(0.0, in.Elasticity))
		units := in.BaselineWeeklyUnits * mult
		gmWeek := units * price * in.GMPct

		uplift := math.Max(0.0, gmWeek-baseWeekGM)
		cannib := uplift * in.CannibalizationFactor
		pullFwd := uplift * in.PullForwardFactor
		incremental := uplift - cannib - pullFwd

		// realize GM this week (baseline + decomposition of uplift)
		netGM += baseWeekGM + incremental + cannib + pullFwd
		// penalize the future trough once
		troughPenalty += pullFwd
	}

	avgDepth := 0.0
	if len(in.Events) > 0 {
		sum := 0.0
		for _, e := range in.Events {
			sum += e.Depth
		}
		avgDepth = sum / float64(len(in.Events))
	}

	promoDaysPct := 0.0
	if in.Weeks > 0 {
		promoDaysPct = float64(len(in.Events)) / float64(in.Weeks)
	}

	netGMDelta := netGM - baselineGMTotal - troughPenalty
	recoveryWeeks := math.Max(0.0, 2.0+10.0*avgDepth*in.PullForwardFactor)

	return PromoEvalResult{
		NetGMDelta:            netGMDelta,
		BaselineRecoveryWeeks: recoveryWeeks,
		AvgDepth:              avgDepth,
		PromoDaysPct:          promoDaysPct,
		CannibalizationShare:  in.CannibalizationFactor,
		PullForwardShare:      in.PullForwardFactor,
		BaselineGM:            baselineGMTotal,
		DeltaPct:              PromoDeltaPct(netGMDelta, baselineGMTotal),
	}
}
