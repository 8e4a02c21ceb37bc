package calc

import (
	"math"
)

// =============================================================================
// INFLUENCER TIER ECONOMICS
// Standalone channel calculator; not wired into the main report pipeline.
// =============================================================================

// TierPaybackGM estimates cohort economics for a single influencer tier
// campaign: expected buyers from the reach funnel, cohort LTV on a GM basis,
// and the month the flat fee is recovered.
//
// FORMULA: net GM = LTVGM(price/12, gm_pct, retention, months) × buyers - fee
//
// Where:
//   - buyers = reach × CTR × CVR
//   - payback month = first t where cumulative cohort GM ≥ fee
//
// The per-buyer CAC guards against a zero-buyer division and is capped by
// cacCap when one is supplied.
func TierPaybackGM(tier Tier, price, gmPct, retention float64, months int, cacCap *float64) TierPaybackResult {
	clicks := tier.Reach * tier.CTR
	buyers := clicks * tier.CVR
	arpuMonthly := price / 12.0

	cohortLTV := LTVGM(arpuMonthly, gmPct, retention, months) * buyers

	cac := tier.Fee / math.Max(1e-9, buyers)
	if cacCap != nil {
		cac = math.Min(cac, *cacCap)
	}

	res := TierPaybackResult{
		NetGM: cohortLTV - tier.Fee,
		CAC:   cac,
	}

	cum := 0.0
	for t := 1; t <= months; t++ {
		cum += arpuMonthly * gmPct * buyers * math.Pow(retention, float64(t))
		if cum >= tier.Fee {
			res.PaybackMonth = t
			res.HasPayback = true
			break
		}
	}
	return res
}
