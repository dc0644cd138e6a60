package model

// RiskLevel classifies an aggregate risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

// Urgency expresses how soon a farmer should act on a recommendation.
type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

// RiskBreakdown holds the three domain risk scores, each in [0,100],
// higher meaning greater exposure.
type RiskBreakdown struct {
	Weather float64 `json:"weather_risk_score"`
	Market  float64 `json:"market_risk_score"`
	Yield   float64 `json:"yield_risk_score"`
}

// ProtectionAction is one recommended protection measure. Identity for
// deduplication is the (Type, SchemeName) pair.
type ProtectionAction struct {
	Type       string  `json:"type"`
	SchemeName string  `json:"scheme_name"`
	Urgency    Urgency `json:"urgency"`
	Reason     string  `json:"reason"`
	ApplyLink  string  `json:"apply_link"`
}

// AdvisoryResult is the engine's complete output for one evaluation.
type AdvisoryResult struct {
	FinancialHealthScore int                `json:"financial_health_score"`
	RiskLevel            RiskLevel          `json:"risk_level"`
	RiskBreakdown        RiskBreakdown      `json:"risk_breakdown"`
	ProtectionGap        string             `json:"protection_gap"`
	RecommendedActions   []ProtectionAction `json:"recommended_protection_actions"`
}
