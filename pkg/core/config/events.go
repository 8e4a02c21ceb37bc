package config

import (
	"strconv"
	"strings"
)

// ParseEventsText parses promo events from textarea-style lines like:
//
//	6,0.15,Retail
//	15,0.20,DTC
//
// Blank lines and lines starting with # are skipped, as are lines with fewer
// than two fields or unparseable numbers. The channel tag is optional.
func ParseEventsText(text string) []ScenarioEvent {
	var events []ScenarioEvent
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}

		week, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		depth, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		channel := ""
		if len(parts) >= 3 {
			channel = strings.TrimSpace(parts[2])
		}

		events = append(events, ScenarioEvent{Week: week, Depth: depth, Channel: channel})
	}
	return events
}
