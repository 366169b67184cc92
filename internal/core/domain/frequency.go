package domain

import "sort"

// FrequencyReport holds descending-count histograms over the short
// aggregate's two dimensions. Entry order is part of the contract:
// highest count first, ties in first-seen order.
type FrequencyReport struct {
	ContentCounts *Ordered[int] `json:"content_counts"`
	FactorCounts  *Ordered[int] `json:"factor_counts"`
}

// SortByCountDesc reorders a histogram from highest count to lowest.
// The sort is stable, so keys with equal counts keep the relative order
// in which they were first counted.
func SortByCountDesc(counts *Ordered[int]) {
	keys := append([]string(nil), counts.Keys()...)
	sort.SliceStable(keys, func(i, j int) bool {
		ci, _ := counts.Get(keys[i])
		cj, _ := counts.Get(keys[j])
		return ci > cj
	})
	counts.Reorder(keys)
}
