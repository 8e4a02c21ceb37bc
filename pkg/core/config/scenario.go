// Package config loads calculator scenarios from YAML files and form text,
// layering parsed values over the documented defaults.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"prestige_gtm/pkg/core/calc"
)

// ScenarioEvent is the config-file shape of one promo calendar entry.
type ScenarioEvent struct {
	Week    int     `yaml:"week" json:"week"`
	Depth   float64 `yaml:"depth" json:"depth"`
	Channel string  `yaml:"channel" json:"channel"`
}

// Scenario is the full assumption set for one calculator run. The same keys
// work in YAML configs and JSON API requests. Validation tags describe the
// sensible ranges; the calculator itself accepts any numbers, so range
// violations surface as warnings, never hard failures.
type Scenario struct {
	Price                 float64            `yaml:"price" json:"price" validate:"gt=0"`
	GMPct                 float64            `yaml:"gm_pct" json:"gm_pct" validate:"gte=0,lte=1"`
	Retention             float64            `yaml:"retention" json:"retention" validate:"gte=0,lte=1"`
	HorizonMonths         int                `yaml:"horizon_months" json:"horizon_months" validate:"gt=0"`
	CAC                   float64            `yaml:"cac" json:"cac" validate:"gte=0"`
	ARPUDivisor           float64            `yaml:"arpu_divisor" json:"arpu_divisor" validate:"gte=1"`
	BaselineWeeklyUnits   float64            `yaml:"baseline_weekly_units" json:"baseline_weekly_units" validate:"gte=0"`
	Weeks                 int                `yaml:"weeks" json:"weeks" validate:"gt=0"`
	Elasticity            float64            `yaml:"elasticity" json:"elasticity" validate:"gte=0"`
	PullForwardFactor     float64            `yaml:"pull_forward_factor" json:"pull_forward_factor" validate:"gte=0,lte=1"`
	CannibalizationFactor float64            `yaml:"cannibalization_factor" json:"cannibalization_factor" validate:"gte=0,lte=1"`
	PromoEvents           []ScenarioEvent    `yaml:"promo_events" json:"promo_events"`
	CodeShare             float64            `yaml:"code_share" json:"code_share" validate:"gte=0,lte=1"`
	HeroDiscountIncidence float64            `yaml:"hero_discount_incidence" json:"hero_discount_incidence" validate:"gte=0,lte=1"`
	Leakage               float64            `yaml:"leakage" json:"leakage" validate:"gte=0,lte=1"`
	Weights               map[string]float64 `yaml:"weights" json:"weights"`
}

// DefaultScenario returns the baseline assumptions used whenever a field is
// omitted from the config file or the web form.
func DefaultScenario() Scenario {
	return Scenario{
		Price:                 180,
		GMPct:                 0.80,
		Retention:             0.85,
		HorizonMonths:         24,
		CAC:                   35,
		ARPUDivisor:           18,
		BaselineWeeklyUnits:   100,
		Weeks:                 26,
		Elasticity:            1.1,
		PullForwardFactor:     0.35,
		CannibalizationFactor: 0.25,
		CodeShare:             0.35,
		HeroDiscountIncidence: 0.10,
		Leakage:               0.08,
	}
}

// Load reads a scenario YAML file over the defaults, so keys missing from
// the document keep their baseline values.
func Load(path string) (Scenario, error) {
	s := DefaultScenario()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// Events converts the YAML event entries into calculator events.
func (s *Scenario) Events() []calc.PromoEvent {
	events := make([]calc.PromoEvent, 0, len(s.PromoEvents))
	for _, e := range s.PromoEvents {
		events = append(events, calc.PromoEvent{Week: e.Week, Depth: e.Depth, Channel: e.Channel})
	}
	return events
}

// CalendarInput assembles the promo simulation input from the scenario.
func (s *Scenario) CalendarInput() calc.PromoCalendarInput {
	return calc.PromoCalendarInput{
		BaselineWeeklyUnits:   s.BaselineWeeklyUnits,
		ListPrice:             s.Price,
		GMPct:                 s.GMPct,
		Elasticity:            s.Elasticity,
		Weeks:                 s.Weeks,
		Events:                s.Events(),
		PullForwardFactor:     s.PullForwardFactor,
		CannibalizationFactor: s.CannibalizationFactor,
	}
}

// PPIWeights returns the weight overrides as calculator weights, or nil when
// the scenario carries none (nil selects the default weighting downstream).
func (s *Scenario) PPIWeights() calc.Weights {
	if len(s.Weights) == 0 {
		return nil
	}
	w := make(calc.Weights, len(s.Weights))
	for k, v := range s.Weights {
		w[k] = v
	}
	return w
}

// Validate checks the tagged ranges using go-playground/validator.
func (s *Scenario) Validate() error {
	return validator.New().Struct(s)
}

// Warnings renders validation problems as readable strings and adds the
// cross-field checks the tag syntax cannot express. The run proceeds either
// way; warnings exist so suspect numbers don't pass silently.
func (s *Scenario) Warnings() []string {
	var warns []string
	if err := s.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				warns = append(warns, fmt.Sprintf("%s fails %s check (value %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
		} else {
			warns = append(warns, err.Error())
		}
	}
	if sum := s.PullForwardFactor + s.CannibalizationFactor; sum > 1 {
		warns = append(warns, fmt.Sprintf("pull_forward_factor + cannibalization_factor = %.2f exceeds 1; incremental uplift goes negative", sum))
	}
	return warns
}
