package advisory

// Scheme apply links surfaced with recommendations.
const (
	PMFBYLink   = "https://pmfby.gov.in"
	PMKisanLink = "https://pmkisan.gov.in"
	MSPInfoLink = "https://dfpd.gov.in/Price-Support.htm"
)

// defaultMSPCrops are the crops typically covered by MSP procurement
// channels, upper-cased for case-insensitive lookup.
var defaultMSPCrops = []string{
	"RICE", "PADDY", "WHEAT", "MAIZE", "JOWAR", "BAJRA", "RAGI",
	"GRAM", "TUR", "MOONG", "URAD", "LENTIL",
	"GROUNDNUT", "SOYBEAN", "SUNFLOWER", "SESAMUM",
	"COTTON", "SUGARCANE", "ONION", "POTATO",
}

// Policy holds every tunable the engine uses. Values are fixed at
// construction; the engine never mutates them.
type Policy struct {
	// Simulated baselines used when an upstream signal is wholly absent.
	// They represent median uncertainty and must not read as
	// artificially low or high.
	SimulatedMarketScore float64
	SimulatedYieldScore  float64

	// VolatilityMultiplier maps the empirically expected 0–0.4
	// volatility range onto 0–100 with headroom.
	VolatilityMultiplier float64

	// Additive trend nudges, applied after the base market score.
	FallingTrendNudge float64
	RisingTrendNudge  float64

	// Severity-to-score mapping for the weather domain.
	SeverityScoreLow      float64
	SeverityScoreModerate float64
	SeverityScoreHigh     float64

	// Aggregate risk-level thresholds: score > HighRiskAbove is HIGH,
	// score >= ModerateRiskFrom is MODERATE, anything below is LOW.
	HighRiskAbove    float64
	ModerateRiskFrom float64

	// Rule-engine tunables.
	SmallholdingAcres   float64
	AcresPerHectare     float64
	DecliningPriceRatio float64
	DefaultCrop         string
	MSPCrops            map[string]bool
}

// DefaultPolicy returns the policy constants the engine shipped with.
// The volatility multiplier and the (100 − confidence) yield mapping are
// preserved verbatim for compatibility with the upstream models.
func DefaultPolicy() Policy {
	msp := make(map[string]bool, len(defaultMSPCrops))
	for _, c := range defaultMSPCrops {
		msp[c] = true
	}
	return Policy{
		SimulatedMarketScore:  55,
		SimulatedYieldScore:   50,
		VolatilityMultiplier:  250,
		FallingTrendNudge:     10,
		RisingTrendNudge:      -5,
		SeverityScoreLow:      30,
		SeverityScoreModerate: 60,
		SeverityScoreHigh:     80,
		HighRiskAbove:         70,
		ModerateRiskFrom:      40,
		SmallholdingAcres:     2.0,
		AcresPerHectare:       2.47105,
		DecliningPriceRatio:   0.98,
		DefaultCrop:           "Rice",
		MSPCrops:              msp,
	}
}

// MSPCovered reports whether the crop name is in the MSP set,
// case-insensitively.
func (p *Policy) MSPCovered(crop string) bool {
	return p.MSPCrops[normalizeCrop(crop)]
}
