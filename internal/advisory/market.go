package advisory

import (
	"fmt"
	"math"
	"strings"

	"FarmShield/internal/model"
)

// marketAssessment is the market estimator's output: a bounded risk
// score, the normalized trend label, and an evidence phrase that is
// empty when nothing signal-derived is known.
type marketAssessment struct {
	score    float64
	trend    string
	evidence string
}

func (a marketAssessment) falling() bool {
	return strings.EqualFold(a.trend, "Falling")
}

// assessMarket converts a price-forecast signal into a risk score.
// Preference order: direct volatility, then relative dispersion of the
// forecast series, then the simulated baseline. The trend nudge is
// applied last and the result stays clamped to [0,100].
func (p *Policy) assessMarket(sig *model.MarketSignal) marketAssessment {
	if sig.Empty() {
		return marketAssessment{score: p.SimulatedMarketScore, trend: "UNKNOWN"}
	}

	score := p.SimulatedMarketScore
	evidence := ""
	if sig.Volatility != nil && isFinite(*sig.Volatility) {
		score = clamp(*sig.Volatility * p.VolatilityMultiplier)
		evidence = fmt.Sprintf("forecast volatility %.2f", *sig.Volatility)
	} else if rel, ok := relativeDispersion(sig.Prices()); ok {
		score = clamp(rel * p.VolatilityMultiplier)
		evidence = "forecast variance indicates volatility"
	}

	trend := strings.TrimSpace(sig.Trend)
	switch strings.ToLower(trend) {
	case "falling":
		score = clamp(score + p.FallingTrendNudge)
	case "rising":
		score = clamp(score + p.RisingTrendNudge)
	}
	if trend == "" {
		trend = "UNKNOWN"
	}
	return marketAssessment{score: score, trend: trend, evidence: evidence}
}

// relativeDispersion returns population stddev / mean over the series.
// It needs at least two usable points; a zero or non-finite mean counts
// as no information, so degenerate series never produce NaN scores.
func relativeDispersion(prices []float64) (float64, bool) {
	if len(prices) < 2 {
		return 0, false
	}
	var sum float64
	for _, v := range prices {
		sum += v
	}
	mean := sum / float64(len(prices))
	if mean == 0 || !isFinite(mean) {
		return 0, false
	}
	var sq float64
	for _, v := range prices {
		d := v - mean
		sq += d * d
	}
	rel := math.Sqrt(sq/float64(len(prices))) / mean
	if !isFinite(rel) {
		return 0, false
	}
	return rel, true
}
