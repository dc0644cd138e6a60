package advisory

import (
	"strings"

	"FarmShield/internal/model"
)

// Severity is the ordered LOW < MODERATE < HIGH lattice. The overall
// severity of several sub-risks is the max over this ordering.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityModerate
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "HIGH"
	case SeverityModerate:
		return "MODERATE"
	default:
		return "LOW"
	}
}

// parseSeverity maps a classifier label to a Severity. Unknown or
// missing labels are treated as LOW.
func parseSeverity(label string) Severity {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "HIGH":
		return SeverityHigh
	case "MODERATE":
		return SeverityModerate
	default:
		return SeverityLow
	}
}

// subRisk is one labeled weather dimension with its HIGH-case phrase.
type subRisk struct {
	label  string
	phrase string
}

// classifyWeather folds the sub-risk labels into one overall severity
// and collects reason phrases for the sub-risks that are individually
// HIGH, in the declared rain/heat/humidity order. A nil signal yields
// LOW with no phrases.
func classifyWeather(sig *model.WeatherSignal) (Severity, []string) {
	if sig == nil {
		return SeverityLow, nil
	}
	subs := []subRisk{
		{sig.RainRisk, "high rainfall exposure"},
		{sig.HeatRisk, "heat stress risk"},
		{sig.HumidityRisk, "high humidity risk"},
	}
	overall := SeverityLow
	var phrases []string
	for _, sr := range subs {
		sev := parseSeverity(sr.label)
		if sev > overall {
			overall = sev
		}
		if sev == SeverityHigh {
			phrases = append(phrases, sr.phrase)
		}
	}
	return overall, phrases
}

// severityScore maps an overall weather severity to a domain risk score.
func (p *Policy) severityScore(sev Severity) float64 {
	switch sev {
	case SeverityHigh:
		return p.SeverityScoreHigh
	case SeverityModerate:
		return p.SeverityScoreModerate
	default:
		return p.SeverityScoreLow
	}
}
