package advisory

import (
	"strings"

	"FarmShield/internal/model"
)

// Engine is the financial exposure and protection advisory engine: a
// stateless, deterministic function of its inputs. It never fails:
// absent signals trigger the documented simulated defaults at each
// stage. Safe for concurrent use.
type Engine struct {
	policy Policy
}

// New creates an Engine with the given policy.
func New(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Analyze runs the full advisory pipeline: classify weather severity,
// estimate market and yield risk, aggregate, narrate the protection
// gap, and evaluate the scheme recommendation rules.
func (e *Engine) Analyze(in *model.AdvisoryInput) *model.AdvisoryResult {
	if in == nil {
		in = &model.AdvisoryInput{}
	}
	p := &e.policy

	weatherSev, weatherPhrases := classifyWeather(in.Weather)
	market := p.assessMarket(in.Market)
	yld := p.assessYield(in.Yield)

	breakdown := model.RiskBreakdown{
		Weather: p.severityScore(weatherSev),
		Market:  market.score,
		Yield:   yld.score,
	}
	riskScore := aggregateRisk(breakdown)

	crop := e.ResolvedCrop(&in.Farmer)

	actions := p.recommendActions(ruleInput{
		weatherSev: weatherSev,
		market:     market,
		prices:     in.Market.Prices(),
		acres:      p.landholdingAcres(&in.Farmer),
		crop:       crop,
	})

	return &model.AdvisoryResult{
		FinancialHealthScore: healthScore(riskScore),
		RiskLevel:            p.riskLevelFor(riskScore),
		RiskBreakdown:        breakdown,
		ProtectionGap:        p.buildProtectionGap(weatherSev, weatherPhrases, market, yld, in.Farmer.InsuranceDetected()),
		RecommendedActions:   actions,
	}
}

// ResolvedCrop returns the crop the rule engine evaluates against: the
// farmer's declared crop, or the policy default when none is set.
func (e *Engine) ResolvedCrop(farmer *model.FarmerProfile) string {
	if farmer != nil {
		if crop := strings.TrimSpace(farmer.Crop); crop != "" {
			return crop
		}
	}
	return e.policy.DefaultCrop
}

// Analyze runs the pipeline under the default policy.
func Analyze(in *model.AdvisoryInput) *model.AdvisoryResult {
	return New(DefaultPolicy()).Analyze(in)
}
