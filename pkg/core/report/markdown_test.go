package report

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"prestige_gtm/pkg/core/config"
)

func TestRenderMarkdown(t *testing.T) {
	r := Build(holidayScenario())
	md := RenderMarkdown(r, true)

	for _, want := range []string{
		"# Prestige Fragrance GTM — Calculator Report",
		"## Inputs",
		"- Price: £180 (30/50 ml)",
		"- GM%: 80%",
		"- CAC: £35",
		"- Horizon: 24 months",
		"- Baseline weekly units: 100",
		"- Weeks simulated: 26",
		"- Elasticity: 1.1",
		"- Promo events:",
		"  - Week 6: depth 15% (Retail)",
		"  - Week 15: depth 20% (DTC)",
		"  - Week 22: depth 15% (Retail)",
		"## Core Economics",
		"- LTV (GM-basis): **£44.42** per acquired customer",
		"- CAC payback month: **10**",
		"## Promo Evaluation",
		"- Avg depth: 16.7%; Promo weeks share: 11.5%",
		"- Pull-forward share (assumed): 35%; Cannibalization share (assumed): 25%",
		"- Post-promo baseline recovery (proxy): ~2.6 weeks",
		"## Prestige Protection",
		"- PPI score: **18.0 / 100** (Green)",
		"## Advisor — Recommended Actions",
		"- Prestige protected:",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q", want)
		}
	}

	// The delta line renders whatever the evaluator produced.
	deltaLine := fmt.Sprintf("- Net GM delta vs baseline (after trough): **£%.2f** (%+.2f%%) over 26 weeks",
		r.Promo.NetGMDelta, r.Promo.DeltaPct)
	if !strings.Contains(md, deltaLine) {
		t.Errorf("Markdown missing delta line %q", deltaLine)
	}

	// Every recommendation lands as a bullet.
	for _, rec := range r.Recommendations {
		if !strings.Contains(md, "- "+rec) {
			t.Errorf("Markdown missing recommendation %q", rec)
		}
	}
}

func TestRenderMarkdownWithoutBand(t *testing.T) {
	r := Build(holidayScenario())
	md := RenderMarkdown(r, false)

	if strings.Contains(md, "(Green)") {
		t.Error("Band tag should be omitted")
	}
	if !strings.Contains(md, "- PPI score: **18.0 / 100**") {
		t.Error("PPI line missing without band")
	}
}

func TestRenderMarkdownNoEvents(t *testing.T) {
	r := Build(config.DefaultScenario())
	md := RenderMarkdown(r, true)

	if !strings.Contains(md, "- Promo events: none") {
		t.Error("Expected the no-events echo")
	}
	// An empty calendar is GM-neutral (within floating tolerance).
	if math.Abs(r.Promo.NetGMDelta) > 0.0001 {
		t.Errorf("Expected zero delta, got %f", r.Promo.NetGMDelta)
	}
	deltaLine := fmt.Sprintf("**£%.2f** (%+.2f%%) over 26 weeks", r.Promo.NetGMDelta, r.Promo.DeltaPct)
	if !strings.Contains(md, deltaLine) {
		t.Errorf("Markdown missing delta line %q", deltaLine)
	}
	if strings.Contains(md, "  - Week") {
		t.Error("Unexpected event bullets")
	}
}
