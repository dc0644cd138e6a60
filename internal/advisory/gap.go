package advisory

import "strings"

// Lead sentences for the protection-gap narration.
const (
	gapLeadUninsured = "High weather exposure and no active insurance detected."
	gapLeadFalling   = "Prices are trending down; income protection and MSP options become important."
	gapLeadNeutral   = "No major protection gaps detected, but keep coverage active and review market risks weekly."
)

// buildProtectionGap composes one lead sentence plus an evidence tail.
// The tail is emitted only when at least one signal-derived fact exists;
// simulated baselines contribute nothing.
func (p *Policy) buildProtectionGap(weatherSev Severity, weatherPhrases []string, market marketAssessment, yld yieldAssessment, insured bool) string {
	lead := gapLeadNeutral
	switch {
	case weatherSev == SeverityHigh && !insured:
		lead = gapLeadUninsured
	case market.falling():
		lead = gapLeadFalling
	}

	var bits []string
	if len(weatherPhrases) > 0 {
		bits = append(bits, strings.Join(weatherPhrases, ", "))
	}
	if market.evidence != "" {
		bits = append(bits, market.evidence)
	}
	if yld.evidence != "" {
		bits = append(bits, yld.evidence)
	}
	if len(bits) == 0 {
		return lead
	}
	return lead + " Evidence: " + strings.Join(bits, "; ") + "."
}
