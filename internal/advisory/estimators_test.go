package advisory

import (
	"math"
	"testing"

	"FarmShield/internal/model"
)

func TestClassifyWeather(t *testing.T) {
	tests := []struct {
		name        string
		sig         *model.WeatherSignal
		wantSev     Severity
		wantPhrases []string
	}{
		{"nil signal", nil, SeverityLow, nil},
		{"all empty", &model.WeatherSignal{}, SeverityLow, nil},
		{"all low", &model.WeatherSignal{RainRisk: "LOW", HeatRisk: "LOW", HumidityRisk: "LOW"}, SeverityLow, nil},
		{"moderate heat", &model.WeatherSignal{HeatRisk: "MODERATE"}, SeverityModerate, nil},
		{"high rain only", &model.WeatherSignal{RainRisk: "HIGH"}, SeverityHigh, []string{"high rainfall exposure"}},
		{"case insensitive", &model.WeatherSignal{RainRisk: "high"}, SeverityHigh, []string{"high rainfall exposure"}},
		{"unknown label treated low", &model.WeatherSignal{RainRisk: "SEVERE"}, SeverityLow, nil},
		{
			"all high keeps declared order",
			&model.WeatherSignal{RainRisk: "HIGH", HeatRisk: "HIGH", HumidityRisk: "HIGH"},
			SeverityHigh,
			[]string{"high rainfall exposure", "heat stress risk", "high humidity risk"},
		},
		{
			"moderate rain high humidity",
			&model.WeatherSignal{RainRisk: "MODERATE", HumidityRisk: "HIGH"},
			SeverityHigh,
			[]string{"high humidity risk"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, phrases := classifyWeather(tt.sig)
			if sev != tt.wantSev {
				t.Errorf("severity = %s, want %s", sev, tt.wantSev)
			}
			if len(phrases) != len(tt.wantPhrases) {
				t.Fatalf("phrases = %v, want %v", phrases, tt.wantPhrases)
			}
			for i := range phrases {
				if phrases[i] != tt.wantPhrases[i] {
					t.Errorf("phrase %d = %q, want %q", i, phrases[i], tt.wantPhrases[i])
				}
			}
		})
	}
}

func TestAssessMarket(t *testing.T) {
	p := DefaultPolicy()
	series := func(vals ...float64) []model.PricePoint {
		pts := make([]model.PricePoint, len(vals))
		for i, v := range vals {
			val := v
			pts[i] = model.PricePoint{Price: &val}
		}
		return pts
	}

	tests := []struct {
		name      string
		sig       *model.MarketSignal
		wantScore float64
		wantTrend string
	}{
		{"nil signal", nil, 55, "UNKNOWN"},
		{"empty signal", &model.MarketSignal{}, 55, "UNKNOWN"},
		{"volatility mapped", &model.MarketSignal{Volatility: fp(0.20)}, 50, "UNKNOWN"},
		{"volatility clamped high", &model.MarketSignal{Volatility: fp(0.80)}, 100, "UNKNOWN"},
		{"volatility clamped low", &model.MarketSignal{Volatility: fp(-0.10)}, 0, "UNKNOWN"},
		{"falling nudge", &model.MarketSignal{Volatility: fp(0.20), Trend: "Falling"}, 60, "Falling"},
		{"rising nudge", &model.MarketSignal{Volatility: fp(0.20), Trend: "Rising"}, 45, "Rising"},
		{"stable no nudge", &model.MarketSignal{Volatility: fp(0.20), Trend: "Stable"}, 50, "Stable"},
		{"nudge clamps at 100", &model.MarketSignal{Volatility: fp(0.38), Trend: "Falling"}, 100, "Falling"},
		{"trend only uses baseline", &model.MarketSignal{Trend: "Falling"}, 65, "Falling"},
		{"flat series zero dispersion", &model.MarketSignal{Forecast: series(2000, 2000, 2000)}, 0, "UNKNOWN"},
		{"single point falls back", &model.MarketSignal{Forecast: series(2000)}, 55, "UNKNOWN"},
		{"zero mean falls back", &model.MarketSignal{Forecast: series(100, -100)}, 55, "UNKNOWN"},
		{"nan volatility falls back", &model.MarketSignal{Volatility: fp(math.NaN())}, 55, "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.assessMarket(tt.sig)
			if math.Abs(got.score-tt.wantScore) > 1e-9 {
				t.Errorf("score = %.4f, want %.4f", got.score, tt.wantScore)
			}
			if got.trend != tt.wantTrend {
				t.Errorf("trend = %q, want %q", got.trend, tt.wantTrend)
			}
		})
	}
}

func TestAssessMarket_SeriesDispersion(t *testing.T) {
	p := DefaultPolicy()
	// Population stddev of [90, 110] is 10, mean is 100: rel = 0.1,
	// score = 0.1 * 250 = 25.
	sig := &model.MarketSignal{Forecast: []model.PricePoint{
		{Price: fp(90)},
		{Price: fp(110)},
	}}
	got := p.assessMarket(sig)
	if math.Abs(got.score-25) > 1e-9 {
		t.Errorf("score = %.4f, want 25", got.score)
	}
	if got.evidence == "" {
		t.Error("series-derived score should carry evidence")
	}
}

func TestAssessMarket_SkipsMalformedPoints(t *testing.T) {
	p := DefaultPolicy()
	sig := &model.MarketSignal{Forecast: []model.PricePoint{
		{Price: nil},
		{Price: fp(90)},
		{Price: fp(math.NaN())},
		{Price: fp(110)},
	}}
	got := p.assessMarket(sig)
	if math.Abs(got.score-25) > 1e-9 {
		t.Errorf("score = %.4f, want 25 (malformed points skipped)", got.score)
	}
}

func TestAssessYield(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		name         string
		sig          *model.YieldSignal
		wantScore    float64
		wantEvidence bool
	}{
		{"nil signal", nil, 50, false},
		{"both absent", &model.YieldSignal{}, 50, false},
		{"confidence preferred", &model.YieldSignal{Confidence: fp(80), ConfidenceAdjusted: fp(20)}, 20, true},
		{"adjusted fallback", &model.YieldSignal{ConfidenceAdjusted: fp(70)}, 30, true},
		{"zero confidence is real", &model.YieldSignal{Confidence: fp(0)}, 100, true},
		{"overshoot clamped", &model.YieldSignal{Confidence: fp(130)}, 0, true},
		{"negative clamped", &model.YieldSignal{Confidence: fp(-20)}, 100, true},
		{"nan treated absent", &model.YieldSignal{Confidence: fp(math.NaN())}, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.assessYield(tt.sig)
			if math.Abs(got.score-tt.wantScore) > 1e-9 {
				t.Errorf("score = %.4f, want %.4f", got.score, tt.wantScore)
			}
			if (got.evidence != "") != tt.wantEvidence {
				t.Errorf("evidence = %q, want present=%v", got.evidence, tt.wantEvidence)
			}
		})
	}
}
