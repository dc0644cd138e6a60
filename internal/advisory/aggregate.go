package advisory

import (
	"math"

	"FarmShield/internal/model"
)

// clamp bounds a score to [0,100].
func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// aggregateRisk averages the three domain scores into the overall
// financial risk score, clamped to [0,100].
func aggregateRisk(b model.RiskBreakdown) float64 {
	return clamp((b.Weather + b.Market + b.Yield) / 3.0)
}

// riskLevelFor classifies an aggregate risk score. The 40 and 70
// boundary values belong to MODERATE.
func (p *Policy) riskLevelFor(score float64) model.RiskLevel {
	switch {
	case score > p.HighRiskAbove:
		return model.RiskHigh
	case score >= p.ModerateRiskFrom:
		return model.RiskModerate
	default:
		return model.RiskLow
	}
}

// healthScore converts a risk score into the displayed health score,
// rounded to the nearest integer. Internal computations keep full
// precision; only this display value is rounded.
func healthScore(riskScore float64) int {
	return int(math.Round(clamp(100 - riskScore)))
}
