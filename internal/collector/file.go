package collector

import (
	"encoding/json"
	"fmt"
	"os"

	"FarmShield/internal/model"
)

// FileSource reads the snapshot document from a JSON file that the
// collaborator pipeline refreshes on disk.
type FileSource struct {
	Path string
}

// NewFileSource creates a source backed by the given snapshot file.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Name() string { return "file" }

func (f *FileSource) Load() (*model.AdvisoryInput, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var in model.AdvisoryInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &in, nil
}
