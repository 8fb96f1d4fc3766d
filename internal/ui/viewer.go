package ui

import "testkit/internal/domain"

// Viewer displays run results interactively
type Viewer interface {
	View(manifest *domain.RunManifest) error
}
