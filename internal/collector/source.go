package collector

import "FarmShield/internal/model"

// Source loads the signal snapshot the upstream collaborators (weather
// classifier, price forecaster, yield predictor) publish for a farmer.
// Sources only decode collaborator outputs; no classification or model
// fitting happens on this side.
type Source interface {
	Load() (*model.AdvisoryInput, error)
	Name() string
}

// MockSource returns fixed data for development and testing.
type MockSource struct {
	Input *model.AdvisoryInput
	Err   error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Load() (*model.AdvisoryInput, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Input != nil {
		return m.Input, nil
	}
	return &model.AdvisoryInput{}, nil
}
