package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Flag is a JSON value that app contexts store as either a boolean or a
// string ("yes"/"true"/"1"). Anything else decodes as not set.
type Flag struct {
	Raw string
	Set bool
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		f.Raw = "false"
		if b {
			f.Raw = "true"
		}
		f.Set = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Raw = s
		f.Set = true
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Raw)
}

// True reports whether the flag is set to a truthy value.
func (f Flag) True() bool {
	if !f.Set {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(f.Raw)) {
	case "yes", "true", "1":
		return true
	}
	return false
}

// FarmerProfile is the landholding and crop context assembled by the
// caller. Landholding fields are nil when the profile doesn't carry
// them; the insurance flags cover the keys different app contexts use.
type FarmerProfile struct {
	LandholdingAcres    *float64 `json:"landholding_acres"`
	LandholdingHectares *float64 `json:"landholding_hectares"`
	Crop                string   `json:"crop"`
	District            string   `json:"district"`
	HasInsurance        Flag     `json:"has_insurance"`
	InsuranceActive     Flag     `json:"insurance_active"`
	PMFBYActive         Flag     `json:"pmfby_active"`
	ActiveInsurance     Flag     `json:"active_insurance"`
}

// InsuranceDetected reports whether any of the known insurance flags is
// truthy.
func (p *FarmerProfile) InsuranceDetected() bool {
	if p == nil {
		return false
	}
	for _, f := range []Flag{p.HasInsurance, p.InsuranceActive, p.PMFBYActive, p.ActiveInsurance} {
		if f.True() {
			return true
		}
	}
	return false
}

// AdvisoryInput bundles the collaborator outputs for one evaluation.
// Any signal pointer may be nil; the engine substitutes its documented
// simulated defaults.
type AdvisoryInput struct {
	Weather *WeatherSignal `json:"weather"`
	Market  *MarketSignal  `json:"market"`
	Yield   *YieldSignal   `json:"yield"`
	Farmer  FarmerProfile  `json:"farmer"`
}
