package calc

// =============================================================================
// ADVISORY RULES
// Fixed category order; each category contributes exactly one message except
// coupon dependence, which only fires above its threshold.
// =============================================================================

// Advise runs the threshold rules over the assembled readings and returns the
// recommendation list. Rules are independent and evaluated in a fixed order:
// prestige risk, promo plan economics, coupon dependence, CAC payback,
// post-promo trough, LTV:CAC ratio. The payback and LTV rules reuse the
// caller's ARPU divisor so their verdicts agree with the headline figures.
func Advise(in AdvisorInput) []string {
	divisor := in.ARPUDivisor
	if divisor <= 0 {
		divisor = 12.0
	}
	arpuMonthly := ARPUPerMonth(in.Price, divisor)
	pb, ok := PaybackMonth(arpuMonthly, in.GMPct, in.Retention, in.CAC, in.Months)
	ltv := LTVGM(arpuMonthly, in.GMPct, in.Retention, in.Months)

	recs := make([]string, 0, 6)

	switch {
	case in.PPI > 65:
		recs = append(recs, "Prestige risk high (PPI > 65): reduce promo frequency and depth; avoid discounting hero SKUs; substitute bundles/GWP.")
	case in.PPI > 50:
		recs = append(recs, "Prestige risk moderate (PPI 50–65): tighten spacing (≥9 weeks) and cap depth at ≤20%.")
	default:
		recs = append(recs, "Prestige protected: maintain current guardrails; consider shifting one sitewide promo to a discovery-set-with-credit event.")
	}

	switch {
	case in.Promo.NetGMDelta < 0:
		recs = append(recs, "Promo plan erodes net GM: cut depth or reduce event count; favor GWPs/bundles over %-off.")
	case in.Promo.NetGMDelta < in.Price*in.GMPct*10:
		recs = append(recs, "Promo plan marginal: reallocate one promo to discovery bundle; protect hero SKUs at list.")
	default:
		recs = append(recs, "Promo calendar accretive: keep min spacing and monitor troughs.")
	}

	if in.CodeShare > 0.4 {
		recs = append(recs, "High coupon dependence: run 6–8 week detox; keep hero SKUs at list; target discounts to lapsed segments only.")
	}

	if !ok || pb > 12 {
		recs = append(recs, "Payback >12 months: favor micro-tier creators and in-store discovery to lower CAC; avoid deep discounts to acquire.")
	} else {
		recs = append(recs, "Payback within 12 months: scale channels with similar CAC.")
	}

	if in.Promo.BaselineRecoveryWeeks > 4 {
		recs = append(recs, "Long post-promo trough: increase min spacing and add non-discount traffic drivers (sampling stands, masterclasses).")
	} else {
		recs = append(recs, "Post-promo trough manageable: keep current event spacing and watch the recovery proxy.")
	}

	if ltv >= 3*in.CAC {
		recs = append(recs, "LTV:CAC healthy (≥3x): unit economics support scaling the current acquisition mix.")
	} else {
		recs = append(recs, "LTV:CAC below 3x: improve retention (replenishment nudges, sampling-to-subscription) before scaling paid acquisition.")
	}

	return recs
}
