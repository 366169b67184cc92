package driving

import (
	"context"

	"github.com/plansift/plansift-cli/internal/core/domain"
)

// Collector turns a plan tree into the full aggregate and its condensed
// projection. Collection never aborts on per-file or per-thought defects;
// diagnostics accumulate in the aggregate's error list.
type Collector interface {
	// Collect walks the source tree and builds both artifacts.
	// The returned error covers infrastructure failures only.
	Collect(ctx context.Context) (*domain.Aggregate, []domain.ShortRecord, error)
}
