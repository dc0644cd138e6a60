package advisory

import (
	"fmt"

	"FarmShield/internal/model"
)

// yieldAssessment is the yield estimator's output. evidence is empty
// when the score is the simulated baseline.
type yieldAssessment struct {
	score    float64
	evidence string
}

// assessYield converts prediction confidence into a risk score: lower
// confidence means higher risk. Confidence is preferred over the
// adjusted variant; with neither present the simulated baseline is
// returned.
func (p *Policy) assessYield(sig *model.YieldSignal) yieldAssessment {
	if sig == nil {
		return yieldAssessment{score: p.SimulatedYieldScore}
	}
	confidence := sig.Confidence
	if confidence == nil {
		confidence = sig.ConfidenceAdjusted
	}
	if confidence == nil || !isFinite(*confidence) {
		return yieldAssessment{score: p.SimulatedYieldScore}
	}
	c := clamp(*confidence)
	return yieldAssessment{
		score:    clamp(100 - c),
		evidence: fmt.Sprintf("yield confidence %.1f%%", c),
	}
}
