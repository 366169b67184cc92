package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/plansift/plansift-cli/internal/core/domain"
	"github.com/plansift/plansift-cli/internal/core/ports/driven"
	"github.com/plansift/plansift-cli/internal/core/ports/driving"
	"github.com/plansift/plansift-cli/internal/logger"
)

// Ensure CollectorService implements the interface.
var _ driving.Collector = (*CollectorService)(nil)

// processedAtLayout renders the run timestamp in the aggregate metadata.
const processedAtLayout = "2006-01-02T15:04:05.000000"

// CollectorService walks a plan tree and builds the full aggregate and
// its condensed projection. Per-file and per-thought defects never abort
// a run; they are recorded in the aggregate's error list.
type CollectorService struct {
	source driven.PlanSource
	rules  domain.ExclusionRules
	now    func() time.Time
}

// NewCollectorService creates a collector over the given source.
func NewCollectorService(source driven.PlanSource, rules domain.ExclusionRules) *CollectorService {
	return &CollectorService{
		source: source,
		rules:  rules,
		now:    time.Now,
	}
}

// Collect builds both artifacts in one pass over the tree.
func (c *CollectorService) Collect(ctx context.Context) (*domain.Aggregate, []domain.ShortRecord, error) {
	agg := domain.NewAggregate()

	names, err := c.source.Directories(ctx)
	if err != nil {
		record(&agg.Errors, "Directory error: %v", err)
	}
	dirs, diags := sortPlanDirectories(names)
	for _, d := range diags {
		record(&agg.Errors, "%s", d)
	}

	logger.Info("Found %d directories", len(dirs))

	totalPlans := 0
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		logger.Section("Processing directory: " + dir)

		files, err := c.source.Files(ctx, dir)
		if err != nil {
			record(&agg.Errors, "Error listing directory %s: %v", dir, err)
			continue
		}
		logger.Info("Found %d JSON files", len(files))

		dirPlans := domain.NewOrdered[domain.Plan]()
		for _, file := range files {
			logger.Debug("Processing file: %s", file.Name)
			plan, ok := c.parsePlanFile(ctx, file, &agg.Errors)
			if ok {
				dirPlans.Set(file.Name, plan)
				totalPlans++
			}
		}

		if dirPlans.Len() > 0 {
			agg.Plans.Set(dir, dirPlans)
		}
	}

	agg.Metadata = domain.Metadata{
		TotalDirectories: agg.Plans.Len(),
		TotalPlans:       totalPlans,
		BaseDirectory:    c.source.Root(),
		ProcessedAt:      c.now().Format(processedAtLayout),
	}

	return agg, Condense(agg), nil
}

// record appends a diagnostic to the run's error list and echoes it to
// the console immediately.
func record(errs *[]string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("%s", msg)
	*errs = append(*errs, msg)
}

// parsePlanFile reads and normalises one leaf file. The second return is
// false when the file contributes no plan, either because it failed to
// parse (recorded in errs) or because no thought survived filtering.
func (c *CollectorService) parsePlanFile(ctx context.Context, file driven.PlanFile, errs *[]string) (domain.Plan, bool) {
	data, err := c.source.Read(ctx, file)
	if err != nil {
		record(errs, "Error processing file %s: %v", file.Path, err)
		return domain.Plan{}, false
	}

	var raw domain.RawPlan
	if err := json.Unmarshal(data, &raw); err != nil {
		record(errs, "Error processing file %s: %v", file.Path, err)
		return domain.Plan{}, false
	}

	type parsedThought struct {
		at      time.Time
		thought domain.Thought
	}
	var thoughts []parsedThought

	for _, msg := range raw.Thoughts {
		at, thought, keep, err := c.normalizeThought(msg)
		if err != nil {
			record(errs, "Error processing thought in %s: %v", file.Name, err)
			continue
		}
		if !keep {
			continue
		}
		thoughts = append(thoughts, parsedThought{at: at, thought: thought})
	}

	// Stable: equal timestamps keep their file order.
	sort.SliceStable(thoughts, func(i, j int) bool {
		return thoughts[i].at.Before(thoughts[j].at)
	})

	if len(thoughts) == 0 {
		return domain.Plan{}, false
	}

	plan := domain.Plan{
		PlanID:   raw.ID,
		Folder:   file.Dir,
		FileName: file.Name,
		Thoughts: make([]domain.Thought, len(thoughts)),
	}
	for i, t := range thoughts {
		plan.Thoughts[i] = t.thought
	}
	return plan, true
}

// normalizeThought validates one raw thought and parses its timestamp.
// Exclusion is decided on the stripped content before any other field is
// touched, so an excluded thought is skipped silently even when its
// remaining fields are defective. keep is false for excluded thoughts.
func (c *CollectorService) normalizeThought(msg json.RawMessage) (at time.Time, thought domain.Thought, keep bool, err error) {
	var raw domain.RawThought
	if err := json.Unmarshal(msg, &raw); err != nil {
		return time.Time{}, domain.Thought{}, false, err
	}

	if raw.Content == nil {
		return time.Time{}, domain.Thought{}, false, fmt.Errorf("%w: content", domain.ErrMissingField)
	}
	content := strings.TrimSpace(*raw.Content)
	if c.rules.Excludes(content) {
		return time.Time{}, domain.Thought{}, false, nil
	}

	switch {
	case raw.Timestamp == nil:
		return time.Time{}, domain.Thought{}, false, fmt.Errorf("%w: timestamp", domain.ErrMissingField)
	case raw.RealTimeFactors == nil:
		return time.Time{}, domain.Thought{}, false, fmt.Errorf("%w: real_time_factors", domain.ErrMissingField)
	case raw.RelevanceScore == nil:
		return time.Time{}, domain.Thought{}, false, fmt.Errorf("%w: relevance_score", domain.ErrMissingField)
	case raw.ConfidenceScore == nil:
		return time.Time{}, domain.Thought{}, false, fmt.Errorf("%w: confidence_score", domain.ErrMissingField)
	}

	at, err = domain.ParseTimestamp(*raw.Timestamp)
	if err != nil {
		return time.Time{}, domain.Thought{}, false, err
	}

	return at, domain.Thought{
		Timestamp:       domain.FormatTimestamp(at),
		Content:         content,
		RealTimeFactors: raw.RealTimeFactors,
		RelevanceScore:  *raw.RelevanceScore,
		ConfidenceScore: *raw.ConfidenceScore,
	}, true, nil
}

// Condense flattens an aggregate into short records, in the aggregate's
// own directory/file/thought order. Only exact matches of the built-in
// literal are re-excluded here; parse-time filtering already applied the
// wider rules, so this second check deliberately stays narrow.
func Condense(agg *domain.Aggregate) []domain.ShortRecord {
	condensed := []domain.ShortRecord{}

	for _, dir := range agg.Plans.Keys() {
		dirPlans, _ := agg.Plans.Get(dir)
		for _, name := range dirPlans.Keys() {
			plan, _ := dirPlans.Get(name)
			for _, thought := range plan.Thoughts {
				content := strings.TrimSpace(thought.Content)
				if content == domain.CondensedExclusion {
					continue
				}
				condensed = append(condensed, domain.ShortRecord{
					C: content,
					R: thought.RealTimeFactors,
				})
			}
		}
	}

	return condensed
}

// sortPlanDirectories orders directory names by their integer value,
// ascending. Plan trees conventionally use integer names; anything else
// sorts lexicographically after the numeric ones, with a diagnostic, and
// the run continues rather than aborting.
func sortPlanDirectories(names []string) ([]string, []string) {
	var numeric, other []string
	var diags []string

	for _, name := range names {
		if _, err := strconv.Atoi(name); err == nil {
			numeric = append(numeric, name)
		} else {
			other = append(other, name)
			diags = append(diags, fmt.Sprintf("Directory error: non-numeric directory name %q ordered lexicographically", name))
		}
	}

	sort.Slice(numeric, func(i, j int) bool {
		ni, _ := strconv.Atoi(numeric[i])
		nj, _ := strconv.Atoi(numeric[j])
		return ni < nj
	})
	sort.Strings(other)

	return append(numeric, other...), diags
}
