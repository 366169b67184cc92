package domain

// Plan is the filtered, sorted aggregate of one leaf file's thoughts.
// A Plan is only ever constructed when at least one thought survives
// filtering; a file whose thoughts are all excluded contributes nothing.
type Plan struct {
	// PlanID is the file's declared "id" field, or nil when absent.
	PlanID any `json:"plan_id"`

	// Folder is the name of the directory containing the file.
	Folder string `json:"folder"`

	// FileName is the leaf file's own name.
	FileName string `json:"file_name"`

	// Thoughts are the surviving observations, ascending by parsed
	// timestamp. The sort is stable: equal timestamps keep input order.
	Thoughts []Thought `json:"thoughts"`
}

// Metadata describes one collector run.
type Metadata struct {
	TotalDirectories int    `json:"total_directories"`
	TotalPlans       int    `json:"total_plans"`
	BaseDirectory    string `json:"base_directory"`
	ProcessedAt      string `json:"processed_at"`
}

// Aggregate is the full collector output: directory name -> file name ->
// Plan, plus run metadata and the flat diagnostic list. Both mapping
// levels iterate in the order directories and files were processed.
// Built once per run and never mutated afterwards.
type Aggregate struct {
	Plans    *Ordered[*Ordered[Plan]] `json:"plans"`
	Metadata Metadata                 `json:"metadata"`
	Errors   []string                 `json:"errors"`
}

// NewAggregate returns an empty aggregate with a non-nil error list so it
// serialises as [] rather than null.
func NewAggregate() *Aggregate {
	return &Aggregate{
		Plans:  NewOrdered[*Ordered[Plan]](),
		Errors: []string{},
	}
}

// ShortRecord is the flattened projection of one thought: its stripped
// content and factor list. The short aggregate is the concatenation of
// these records in directory/file/thought order.
type ShortRecord struct {
	C string   `json:"c"`
	R []string `json:"r"`
}

// RunRecord summarises one catalogued collector run.
type RunRecord struct {
	ID               string
	BaseDirectory    string
	ProcessedAt      string
	TotalDirectories int
	TotalPlans       int
	ErrorCount       int
}
