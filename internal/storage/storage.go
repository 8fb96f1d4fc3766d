package storage

import (
	"testkit/internal/config"
	"testkit/internal/domain"
)

// Storage persists and loads the manifest of the last run (e.g. for the report and view commands).
// The manifest lives in the run directory and is wiped with it.
type Storage interface {
	Save(manifest *domain.RunManifest) error
	Load() (*domain.RunManifest, error)
}

// JSONStorage stores the manifest in a JSON file in the run directory.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's manifest path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
