package notifier

import (
	"fmt"
	"strings"
	"time"

	"FarmShield/internal/model"
)

func riskEmoji(level model.RiskLevel) string {
	switch level {
	case model.RiskHigh:
		return "🔴"
	case model.RiskModerate:
		return "🟡"
	default:
		return "🟢"
	}
}

// FormatAdvisoryReport formats an advisory result into a Telegram
// message. crop is the resolved crop the engine evaluated against, so
// the header stays consistent with the rule input even under a policy
// default override.
func FormatAdvisoryReport(crop string, in *model.AdvisoryInput, res *model.AdvisoryResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🌾 <b>FarmShield Advisory</b> | %s\n\n", time.Now().Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Crop: %s", crop))
	if in.Farmer.District != "" {
		b.WriteString(fmt.Sprintf(" | District: %s", in.Farmer.District))
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s <b>Risk level:</b> %s\n", riskEmoji(res.RiskLevel), res.RiskLevel))
	b.WriteString(fmt.Sprintf("💪 <b>Financial health:</b> %d/100\n\n", res.FinancialHealthScore))

	b.WriteString("📉 <b>Risk breakdown:</b>\n")
	b.WriteString(fmt.Sprintf("  weather: %.0f | market: %.0f | yield: %.0f\n\n",
		res.RiskBreakdown.Weather, res.RiskBreakdown.Market, res.RiskBreakdown.Yield))

	b.WriteString(fmt.Sprintf("🛡 <b>Protection gap:</b>\n%s\n", res.ProtectionGap))

	if len(res.RecommendedActions) > 0 {
		b.WriteString("\n✅ <b>Recommended actions:</b>\n")
		for _, a := range res.RecommendedActions {
			b.WriteString(fmt.Sprintf("  [%s] %s (%s)\n      %s\n      %s\n",
				a.Urgency, a.SchemeName, a.Type, a.Reason, a.ApplyLink))
		}
	}

	return b.String()
}

// FormatHighRiskAlert formats the short alert pushed when an evaluation
// comes back HIGH.
func FormatHighRiskAlert(res *model.AdvisoryResult) string {
	var b strings.Builder
	b.WriteString("🚨 <b>High financial risk detected</b>\n\n")
	b.WriteString(fmt.Sprintf("Financial health: %d/100\n", res.FinancialHealthScore))
	b.WriteString(res.ProtectionGap)
	return b.String()
}
