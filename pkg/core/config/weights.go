package config

import (
	"fmt"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"

	"prestige_gtm/pkg/core/calc"
)

// ParseWeightsText parses optional PPI weight overrides written as Hjson,
// which tolerates unquoted keys, comments, and missing commas:
//
//	{
//	  promo_days: 22
//	  avg_depth: 28   # raw numbers are fine, they get normalized
//	  code_share: 18
//	  hero: 22
//	  leakage: 10
//	}
//
// Empty input returns nil, which selects the default weighting downstream.
func ParseWeightsText(text string) (calc.Weights, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	var w calc.Weights
	if err := hjson.Unmarshal([]byte(trimmed), &w); err != nil {
		return nil, fmt.Errorf("parse weights: %w", err)
	}
	if len(w) == 0 {
		return nil, nil
	}
	return w, nil
}
