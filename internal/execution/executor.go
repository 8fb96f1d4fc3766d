package execution

import (
	"context"
	"time"

	"testkit/internal/domain"
)

// Executor runs grouped tests and collects their images
type Executor interface {
	Execute(ctx context.Context, groups domain.TestGroups, repoRoot string) (*domain.ResultTable, time.Duration, error)
}
