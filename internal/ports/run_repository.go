package ports

import (
	"context"

	"github.com/renato0307/prinbox/internal/domain"
)

// RunRecorder persists refresh cycle history
type RunRecorder interface {
	Record(ctx context.Context, run domain.RefreshRun) error
}

// RunReader lists refresh cycle history
type RunReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.RefreshRun, error)
}

// RunRepository combines all run history operations
type RunRepository interface {
	RunReader
	RunRecorder
	Close() error
}
