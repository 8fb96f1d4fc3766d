package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"testkit/internal/domain"
)

// Save writes the run manifest to the configured JSON file.
func (s *JSONStorage) Save(manifest *domain.RunManifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetManifestPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run manifest from the configured JSON file.
func (s *JSONStorage) Load() (*domain.RunManifest, error) {
	path := s.cfg.GetManifestPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var manifest domain.RunManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &manifest, nil
}
