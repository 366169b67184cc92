package domain

import "encoding/json"

// Thought is one observation inside a plan, in display form.
// The timestamp is rendered back to a string after sorting so the
// aggregate serialises without loss.
type Thought struct {
	// Timestamp is the rendered observation time, e.g.
	// "2024-01-01 00:00:00.123456".
	Timestamp string `json:"timestamp"`

	// Content is the observation text with surrounding whitespace stripped.
	Content string `json:"content"`

	// RealTimeFactors are the contextual factor strings, in input order.
	RealTimeFactors []string `json:"real_time_factors"`

	// RelevanceScore is carried through from the input unchanged.
	RelevanceScore float64 `json:"relevance_score"`

	// ConfidenceScore is carried through from the input unchanged.
	ConfidenceScore float64 `json:"confidence_score"`
}

// RawPlan is the on-disk shape of a leaf plan file.
// Thoughts are kept as raw JSON so a malformed entry can be skipped
// without losing the rest of the file.
type RawPlan struct {
	ID       any               `json:"id"`
	Thoughts []json.RawMessage `json:"thoughts"`
}

// RawThought mirrors one entry of a plan file's thoughts list.
// Pointer fields distinguish a missing field from a zero value.
type RawThought struct {
	Timestamp       *string  `json:"timestamp"`
	Content         *string  `json:"content"`
	RealTimeFactors []string `json:"real_time_factors"`
	RelevanceScore  *float64 `json:"relevance_score"`
	ConfidenceScore *float64 `json:"confidence_score"`
}
