package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// WeatherSignal carries the weather-risk classifier's output.
// Each sub-risk is "LOW", "MODERATE", "HIGH" or empty when the
// classifier produced nothing for that dimension.
type WeatherSignal struct {
	RainRisk     string `json:"rain_risk"`
	HeatRisk     string `json:"heat_risk"`
	HumidityRisk string `json:"humidity_risk"`
}

// PricePoint is one entry of a price forecast series. Price is nil when
// the upstream emitted a missing or non-numeric value.
type PricePoint struct {
	Date  string   `json:"date"`
	Price *float64 `json:"price"`
}

// UnmarshalJSON tolerates price values sent as numbers or numeric
// strings; anything else leaves Price nil instead of failing the decode.
func (p *PricePoint) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date  string          `json:"date"`
		Price json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Date = raw.Date
	p.Price = nil
	if len(raw.Price) == 0 || bytes.Equal(raw.Price, []byte("null")) {
		return nil
	}
	var num float64
	if err := json.Unmarshal(raw.Price, &num); err == nil {
		p.Price = &num
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.Price, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			p.Price = &v
		}
	}
	return nil
}

// Valid reports whether the point carries a usable finite price.
func (p PricePoint) Valid() bool {
	return p.Price != nil && !math.IsNaN(*p.Price) && !math.IsInf(*p.Price, 0)
}

// MarketSignal carries the price-forecast model's output. Any subset of
// the fields may be absent.
type MarketSignal struct {
	Volatility *float64     `json:"volatility"`
	Trend      string       `json:"trend"`
	Forecast   []PricePoint `json:"forecast"`
}

// Prices returns the usable values of the forecast series, in order.
func (m *MarketSignal) Prices() []float64 {
	if m == nil {
		return nil
	}
	var out []float64
	for _, p := range m.Forecast {
		if p.Valid() {
			out = append(out, *p.Price)
		}
	}
	return out
}

// Empty reports whether the signal carries no information at all.
func (m *MarketSignal) Empty() bool {
	return m == nil || (m.Volatility == nil && strings.TrimSpace(m.Trend) == "" && len(m.Forecast) == 0)
}

// YieldSignal carries the yield-prediction model's confidence output.
// An absent confidence is distinct from a confidence of zero.
type YieldSignal struct {
	Confidence         *float64 `json:"confidence"`
	ConfidenceAdjusted *float64 `json:"confidence_adjusted"`
}
