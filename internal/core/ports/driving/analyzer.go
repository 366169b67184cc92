package driving

import "github.com/plansift/plansift-cli/internal/core/domain"

// Analyzer computes frequency histograms over a short aggregate.
type Analyzer interface {
	// Analyze counts content strings and factors across the records.
	Analyze(records []domain.ShortRecord) *domain.FrequencyReport
}
