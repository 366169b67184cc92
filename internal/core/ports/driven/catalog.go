package driven

import (
	"context"

	"github.com/plansift/plansift-cli/internal/core/domain"
)

// PlanCatalog persists collector runs for post-hoc audit queries.
type PlanCatalog interface {
	// RecordRun stores an aggregate as a new run and returns the run ID.
	RecordRun(ctx context.Context, agg *domain.Aggregate) (string, error)

	// Runs lists recorded runs, most recent first.
	Runs(ctx context.Context) ([]domain.RunRecord, error)

	// PlansForRun returns the plans recorded under one run, in the order
	// they were stored. Returns domain.ErrNotFound for an unknown run.
	PlansForRun(ctx context.Context, runID string) ([]domain.Plan, error)

	// Close releases the underlying storage.
	Close() error
}
