package services

import (
	"strings"

	"github.com/plansift/plansift-cli/internal/core/domain"
	"github.com/plansift/plansift-cli/internal/core/ports/driving"
	"github.com/plansift/plansift-cli/internal/logger"
)

// Ensure AnalyzerService implements the interface.
var _ driving.Analyzer = (*AnalyzerService)(nil)

// AnalyzerService counts distinct content strings and factors across a
// short aggregate. It carries no state between calls; both counters are
// local to Analyze.
type AnalyzerService struct{}

// NewAnalyzerService creates an analyzer.
func NewAnalyzerService() *AnalyzerService {
	return &AnalyzerService{}
}

// Analyze builds both histograms, ordered from highest count to lowest.
// Keys with equal counts keep the order in which they were first seen.
// Content and factors are stripped again here even though the collector
// already stripped them; analyzer input may come from elsewhere.
func (a *AnalyzerService) Analyze(records []domain.ShortRecord) *domain.FrequencyReport {
	logger.Info("Analyzing %d records", len(records))

	contentCounts := domain.NewOrdered[int]()
	factorCounts := domain.NewOrdered[int]()

	for _, record := range records {
		content := strings.TrimSpace(record.C)
		n, _ := contentCounts.Get(content)
		contentCounts.Set(content, n+1)

		for _, factor := range record.R {
			factor = strings.TrimSpace(factor)
			n, _ := factorCounts.Get(factor)
			factorCounts.Set(factor, n+1)
		}
	}

	domain.SortByCountDesc(contentCounts)
	domain.SortByCountDesc(factorCounts)

	return &domain.FrequencyReport{
		ContentCounts: contentCounts,
		FactorCounts:  factorCounts,
	}
}
