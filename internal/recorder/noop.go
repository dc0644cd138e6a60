package recorder

// NoopRecorder discards all records. Used when no database is configured
// or the SQLite recorder fails to open.
type NoopRecorder struct{}

// NewNoopRecorder creates a recorder that does nothing.
func NewNoopRecorder() *NoopRecorder {
	return &NoopRecorder{}
}

func (n *NoopRecorder) RecordAdvisory(_ *AdvisorySnapshot) error { return nil }

func (n *NoopRecorder) Close() error { return nil }
