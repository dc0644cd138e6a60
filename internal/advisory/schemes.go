package advisory

import (
	"fmt"
	"strings"

	"FarmShield/internal/model"
)

// ruleInput is the shared context every recommendation rule sees.
// crop is already resolved (never empty) and acres is nil when no
// landholding information was supplied.
type ruleInput struct {
	weatherSev Severity
	market     marketAssessment
	prices     []float64
	acres      *float64
	crop       string
}

// rule produces at most one action; a rule whose preconditions cannot be
// met simply returns nil.
type rule func(ruleInput) *model.ProtectionAction

// recommendActions evaluates every rule unconditionally, in order, then
// drops later actions whose (type, scheme) pair was already emitted.
func (p *Policy) recommendActions(in ruleInput) []model.ProtectionAction {
	rules := []rule{
		p.weatherInsuranceRule,
		p.incomeSupportRule,
		p.mspProcurementRule,
		p.priceStrategyRule,
	}
	actions := make([]model.ProtectionAction, 0, len(rules))
	for _, r := range rules {
		if a := r(in); a != nil {
			actions = append(actions, *a)
		}
	}
	return dedupeActions(actions)
}

// weatherInsuranceRule: HIGH weather severity warrants crop insurance.
func (p *Policy) weatherInsuranceRule(in ruleInput) *model.ProtectionAction {
	if in.weatherSev != SeverityHigh {
		return nil
	}
	return &model.ProtectionAction{
		Type:       "Insurance",
		SchemeName: "PMFBY",
		Urgency:    model.UrgencyHigh,
		Reason:     "High weather/rainfall risk",
		ApplyLink:  PMFBYLink,
	}
}

// incomeSupportRule: smallholders qualify for PM-KISAN. No landholding
// information means the rule does not fire.
func (p *Policy) incomeSupportRule(in ruleInput) *model.ProtectionAction {
	if in.acres == nil || *in.acres > p.SmallholdingAcres {
		return nil
	}
	return &model.ProtectionAction{
		Type:       "Income Support",
		SchemeName: "PM-KISAN",
		Urgency:    model.UrgencyMedium,
		Reason:     fmt.Sprintf("Small landholding detected (~%.1f acres).", *in.acres),
		ApplyLink:  PMKisanLink,
	}
}

// mspProcurementRule: MSP-covered crops get a procurement suggestion,
// urgent when prices are already falling.
func (p *Policy) mspProcurementRule(in ruleInput) *model.ProtectionAction {
	if !p.MSPCovered(in.crop) {
		return nil
	}
	urgency := model.UrgencyMedium
	if in.market.falling() {
		urgency = model.UrgencyHigh
	}
	return &model.ProtectionAction{
		Type:       "MSP Procurement",
		SchemeName: "MSP",
		Urgency:    urgency,
		Reason:     fmt.Sprintf("%s is typically covered under MSP procurement channels.", in.crop),
		ApplyLink:  MSPInfoLink,
	}
}

// priceStrategyRule: a falling trend or a declining forecast series
// suggests delaying the sale.
func (p *Policy) priceStrategyRule(in ruleInput) *model.ProtectionAction {
	if !in.market.falling() && !p.forecastDeclining(in.prices) {
		return nil
	}
	urgency := model.UrgencyMedium
	if p.MSPCovered(in.crop) {
		urgency = model.UrgencyHigh
	}
	return &model.ProtectionAction{
		Type:       "Price Strategy",
		SchemeName: "Delayed Selling",
		Urgency:    urgency,
		Reason:     "Forecast indicates weakening prices; consider MSP procurement or delaying sale if storage allows.",
		ApplyLink:  MSPInfoLink,
	}
}

// forecastDeclining reports whether a usable series ends meaningfully
// below where it started.
func (p *Policy) forecastDeclining(prices []float64) bool {
	if len(prices) < 2 {
		return false
	}
	return prices[len(prices)-1] < prices[0]*p.DecliningPriceRatio
}

// dedupeActions keeps the first action seen for each (type, scheme)
// pair, preserving order.
func dedupeActions(actions []model.ProtectionAction) []model.ProtectionAction {
	seen := make(map[string]bool, len(actions))
	deduped := actions[:0]
	for _, a := range actions {
		key := a.Type + "\x00" + a.SchemeName
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, a)
	}
	return deduped
}

// landholdingAcres resolves the farmer's landholding in acres: the
// explicit acres field wins, hectares are converted, and with neither
// present nil is returned.
func (p *Policy) landholdingAcres(farmer *model.FarmerProfile) *float64 {
	if farmer.LandholdingAcres != nil && isFinite(*farmer.LandholdingAcres) {
		v := *farmer.LandholdingAcres
		return &v
	}
	if farmer.LandholdingHectares != nil && isFinite(*farmer.LandholdingHectares) {
		v := *farmer.LandholdingHectares * p.AcresPerHectare
		return &v
	}
	return nil
}

func normalizeCrop(crop string) string {
	return strings.ToUpper(strings.TrimSpace(crop))
}
