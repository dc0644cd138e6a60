package recorder

import "FarmShield/internal/model"

// AdvisorySnapshot holds all data for one advisory evaluation record.
type AdvisorySnapshot struct {
	Crop     string
	District string
	Source   string
	Result   *model.AdvisoryResult
}

// Recorder persists advisory history for later review. The engine
// itself stays stateless; recording happens around it.
type Recorder interface {
	RecordAdvisory(snap *AdvisorySnapshot) error
	Close() error
}
