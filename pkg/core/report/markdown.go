package report

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderMarkdown lays the report out as Markdown: input echo, core
// economics, promo evaluation, prestige protection, and the advisor list.
// The PPI band tag is optional because the web view shows the band with its
// own styling while file exports carry it inline.
func RenderMarkdown(r Report, includeBand bool) string {
	s := r.Scenario
	var groups []string
	add := func(format string, args ...interface{}) {
		groups = append(groups, fmt.Sprintf(format, args...))
	}

	add("# %s\n", Title)

	add("## Inputs\n")
	add("- Price: £%.0f (30/50 ml)\n- GM%%: %.0f%%\n- CAC: £%.0f\n- Horizon: %d months\n",
		s.Price, s.GMPct*100, s.CAC, s.HorizonMonths)
	add("- Baseline weekly units: %s\n- Weeks simulated: %d\n- Elasticity: %s\n",
		trimFloat(s.BaselineWeeklyUnits), s.Weeks, trimFloat(s.Elasticity))
	events := s.Events()
	if len(events) > 0 {
		add("- Promo events:\n")
		for _, e := range events {
			add("  - Week %d: depth %.0f%% (%s)\n", e.Week, e.Depth*100, e.Channel)
		}
	} else {
		add("- Promo events: none\n")
	}

	add("\n## Core Economics\n")
	add("- LTV (GM-basis): **£%.2f** per acquired customer\n", r.LTV)
	payback := "Not within horizon"
	if r.HasPayback {
		payback = strconv.Itoa(r.PaybackMonth)
	}
	add("- CAC payback month: **%s**\n", payback)

	add("\n## Promo Evaluation\n")
	add("- Net GM delta vs baseline (after trough): **£%.2f** (%+.2f%%) over %d weeks\n",
		r.Promo.NetGMDelta, r.Promo.DeltaPct, s.Weeks)
	add("- Avg depth: %.1f%%; Promo weeks share: %.1f%%\n",
		r.Promo.AvgDepth*100, r.Promo.PromoDaysPct*100)
	add("- Pull-forward share (assumed): %.0f%%; Cannibalization share (assumed): %.0f%%\n",
		r.Promo.PullForwardShare*100, r.Promo.CannibalizationShare*100)
	add("- Post-promo baseline recovery (proxy): ~%.1f weeks\n", r.Promo.BaselineRecoveryWeeks)

	add("\n## Prestige Protection\n")
	if includeBand {
		add("- PPI score: **%.1f / 100** (%s)\n", r.PPI, r.Band)
	} else {
		add("- PPI score: **%.1f / 100**\n", r.PPI)
	}

	add("\n## Advisor — Recommended Actions\n")
	for _, rec := range r.Recommendations {
		add("- %s\n", rec)
	}

	return strings.Join(groups, "\n")
}

// trimFloat prints a float without trailing zeros (100 rather than 100.000000).
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
