package advisory

import (
	"strings"
	"testing"

	"FarmShield/internal/model"
)

func TestIncomeSupportRule(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		name  string
		acres *float64
		fires bool
	}{
		{"no landholding", nil, false},
		{"exactly two acres", fp(2.0), true},
		{"just above threshold", fp(2.1), false},
		{"smallholding", fp(0.5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := p.incomeSupportRule(ruleInput{acres: tt.acres, crop: "RICE"})
			if (a != nil) != tt.fires {
				t.Errorf("fires = %v, want %v", a != nil, tt.fires)
			}
			if a != nil && a.SchemeName != "PM-KISAN" {
				t.Errorf("scheme = %s, want PM-KISAN", a.SchemeName)
			}
		})
	}
}

func TestLandholdingAcres_HectareConversion(t *testing.T) {
	p := DefaultPolicy()

	acres := p.landholdingAcres(&model.FarmerProfile{LandholdingHectares: fp(0.5)})
	if acres == nil {
		t.Fatal("expected converted acreage")
	}
	if want := 0.5 * 2.47105; *acres != want {
		t.Errorf("acres = %.5f, want %.5f", *acres, want)
	}

	// Explicit acres wins over hectares.
	acres = p.landholdingAcres(&model.FarmerProfile{LandholdingAcres: fp(3), LandholdingHectares: fp(0.1)})
	if acres == nil || *acres != 3 {
		t.Errorf("acres = %v, want 3", acres)
	}

	if got := p.landholdingAcres(&model.FarmerProfile{}); got != nil {
		t.Errorf("acres = %v, want nil for empty profile", got)
	}
}

func TestMSPProcurementRule(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		name    string
		crop    string
		trend   string
		fires   bool
		urgency model.Urgency
	}{
		{"msp crop stable", "Rice", "Stable", true, model.UrgencyMedium},
		{"msp crop falling", "Wheat", "Falling", true, model.UrgencyHigh},
		{"case insensitive crop", "cotton", "", true, model.UrgencyMedium},
		{"non-msp crop", "Cabbage", "Falling", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ruleInput{crop: tt.crop, market: marketAssessment{trend: tt.trend}}
			a := p.mspProcurementRule(in)
			if (a != nil) != tt.fires {
				t.Fatalf("fires = %v, want %v", a != nil, tt.fires)
			}
			if a != nil && a.Urgency != tt.urgency {
				t.Errorf("urgency = %s, want %s", a.Urgency, tt.urgency)
			}
		})
	}
}

func TestPriceStrategyRule(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		name    string
		trend   string
		prices  []float64
		crop    string
		fires   bool
		urgency model.Urgency
	}{
		{"falling trend msp crop", "Falling", nil, "Rice", true, model.UrgencyHigh},
		{"falling trend other crop", "falling", nil, "Cabbage", true, model.UrgencyMedium},
		{"declining series", "", []float64{2000, 1980, 1940}, "Cabbage", true, model.UrgencyMedium},
		{"series within tolerance", "", []float64{2000, 1990}, "Rice", false, ""},
		{"rising trend flat series", "Rising", []float64{2000, 2010}, "Rice", false, ""},
		{"single point no trend", "", []float64{1500}, "Rice", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ruleInput{crop: tt.crop, prices: tt.prices, market: marketAssessment{trend: tt.trend}}
			a := p.priceStrategyRule(in)
			if (a != nil) != tt.fires {
				t.Fatalf("fires = %v, want %v", a != nil, tt.fires)
			}
			if a != nil && a.Urgency != tt.urgency {
				t.Errorf("urgency = %s, want %s", a.Urgency, tt.urgency)
			}
		})
	}
}

func TestDedupeActions(t *testing.T) {
	first := model.ProtectionAction{Type: "MSP Procurement", SchemeName: "MSP", Urgency: model.UrgencyHigh}
	dup := model.ProtectionAction{Type: "MSP Procurement", SchemeName: "MSP", Urgency: model.UrgencyMedium}
	other := model.ProtectionAction{Type: "Insurance", SchemeName: "PMFBY", Urgency: model.UrgencyHigh}

	got := dedupeActions([]model.ProtectionAction{first, other, dup})
	if len(got) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(got))
	}
	if got[0].Urgency != model.UrgencyHigh {
		t.Error("dedup must keep the first-seen entry")
	}
	if got[1].SchemeName != "PMFBY" {
		t.Error("dedup must preserve order")
	}
}

func TestBuildProtectionGap(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		name       string
		sev        Severity
		phrases    []string
		market     marketAssessment
		yld        yieldAssessment
		insured    bool
		wantLead   string
		wantInTail []string
		noTail     bool
	}{
		{
			name:     "high weather uninsured wins",
			sev:      SeverityHigh,
			phrases:  []string{"high rainfall exposure"},
			market:   marketAssessment{trend: "Falling"},
			wantLead: "High weather exposure and no active insurance detected.",
			wantInTail: []string{
				"high rainfall exposure",
			},
		},
		{
			name:     "insured high weather falls to trend lead",
			sev:      SeverityHigh,
			phrases:  []string{"heat stress risk"},
			market:   marketAssessment{trend: "Falling"},
			insured:  true,
			wantLead: "Prices are trending down; income protection and MSP options become important.",
		},
		{
			name:     "neutral with no facts",
			sev:      SeverityLow,
			market:   marketAssessment{trend: "UNKNOWN"},
			wantLead: "No major protection gaps detected, but keep coverage active and review market risks weekly.",
			noTail:   true,
		},
		{
			name:       "yield evidence only",
			sev:        SeverityModerate,
			market:     marketAssessment{trend: "Stable"},
			yld:        yieldAssessment{score: 28, evidence: "yield confidence 72.0%"},
			wantLead:   "No major protection gaps detected, but keep coverage active and review market risks weekly.",
			wantInTail: []string{"yield confidence 72.0%"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.buildProtectionGap(tt.sev, tt.phrases, tt.market, tt.yld, tt.insured)
			if !strings.HasPrefix(got, tt.wantLead) {
				t.Errorf("gap = %q, want lead %q", got, tt.wantLead)
			}
			if tt.noTail {
				if strings.Contains(got, "Evidence:") {
					t.Errorf("unexpected tail: %q", got)
				}
				if strings.HasSuffix(got, ";") || strings.HasSuffix(got, "; .") {
					t.Errorf("trailing punctuation artifact: %q", got)
				}
				return
			}
			for _, frag := range tt.wantInTail {
				if !strings.Contains(got, frag) {
					t.Errorf("gap %q missing %q", got, frag)
				}
			}
		})
	}
}

func TestInsuranceDetection(t *testing.T) {
	tests := []struct {
		name string
		p    model.FarmerProfile
		want bool
	}{
		{"no flags", model.FarmerProfile{}, false},
		{"bool true", model.FarmerProfile{HasInsurance: model.Flag{Raw: "true", Set: true}}, true},
		{"string yes", model.FarmerProfile{PMFBYActive: model.Flag{Raw: "YES", Set: true}}, true},
		{"string one", model.FarmerProfile{ActiveInsurance: model.Flag{Raw: "1", Set: true}}, true},
		{"string no", model.FarmerProfile{InsuranceActive: model.Flag{Raw: "no", Set: true}}, false},
		{"bool false", model.FarmerProfile{HasInsurance: model.Flag{Raw: "false", Set: true}}, false},
		{"unrelated string", model.FarmerProfile{HasInsurance: model.Flag{Raw: "enrolled", Set: true}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.InsuranceDetected(); got != tt.want {
				t.Errorf("detected = %v, want %v", got, tt.want)
			}
		})
	}
}
