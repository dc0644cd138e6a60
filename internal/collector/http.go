package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"FarmShield/internal/model"
)

// HTTPSource fetches the snapshot document from a collaborator gateway
// endpoint.
type HTTPSource struct {
	BaseURL  string
	APIKey   string
	FarmerID string
	Client   *http.Client
}

// NewHTTPSource creates a source with optional proxy support.
func NewHTTPSource(baseURL, apiKey, farmerID, proxyURL string) *HTTPSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPSource{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		FarmerID: farmerID,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (s *HTTPSource) Name() string { return "http" }

func (s *HTTPSource) Load() (*model.AdvisoryInput, error) {
	endpoint := fmt.Sprintf("%s/api/v1/signals", s.BaseURL)
	if s.FarmerID != "" {
		endpoint += "?farmer_id=" + url.QueryEscape(s.FarmerID)
	}
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch snapshot: status %d, body: %s", resp.StatusCode, string(body))
	}
	var in model.AdvisoryInput
	if err := json.NewDecoder(resp.Body).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &in, nil
}
