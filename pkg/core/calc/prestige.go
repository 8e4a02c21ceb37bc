package calc

// =============================================================================
// PRESTIGE PROTECTION INDEX
// =============================================================================

// Default PPI band boundaries.
const (
	GreenMaxPPI = 35.0
	AmberMaxPPI = 65.0
)

// DefaultWeights returns the standard PPI factor weighting. Callers may pass
// their own Weights instead; values are normalized to sum to 1 before scoring.
func DefaultWeights() Weights {
	return Weights{
		"promo_days": 0.20,
		"avg_depth":  0.25,
		"code_share": 0.25,
		"hero":       0.20,
		"leakage":    0.10,
	}
}

// PrestigeProtectionIndex scores brand-equity risk on 0..100 from five 0..1
// risk factors. Lower = more protected prestige; higher = more erosion risk.
//
// FORMULA: PPI = clamp(100 × Σ_k norm(w)_k × factor_k, 0, 100)
//
// Weights are accepted as raw numbers (e.g., 22/28/18/22/10) or fractions;
// they are normalized by their sum. A nil map, or one whose values sum to
// zero or less, falls back to DefaultWeights. Unrecognized keys inflate the
// normalization total and so dilute the recognized factors.
func PrestigeProtectionIndex(in PrestigeInput) float64 {
	w := in.Weights
	if w == nil {
		w = DefaultWeights()
	}

	total := 0.0
	for _, v := range w {
		total += v
	}
	if total <= 0 {
		w = DefaultWeights()
		total = 1.0
	}

	// weighted sum in 0..1; missing keys read as zero weight
	score := w["promo_days"]/total*in.PromoDaysPct +
		w["avg_depth"]/total*in.AvgDepth +
		w["code_share"]/total*in.CodeShare +
		w["hero"]/total*in.HeroDiscountIncidence +
		w["leakage"]/total*in.Leakage

	return Clamp(100.0*score, 0.0, 100.0)
}

// PPIBand maps a PPI score to its traffic-light band: "Green", "Amber", or
// "Red". Boundaries are inclusive, so a score exactly at greenMax is still
// Green and one exactly at amberMax is still Amber.
func PPIBand(ppi, greenMax, amberMax float64) string {
	if ppi <= greenMax {
		return "Green"
	}
	if ppi <= amberMax {
		return "Amber"
	}
	return "Red"
}
