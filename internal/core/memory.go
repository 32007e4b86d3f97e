package core

import (
	"sort"

	"rtutor/pkg/schema"
)

// HistoryWindowSize is the number of trailing turns an agent sees.
const HistoryWindowSize = 10

// NormalizeHistory returns a copy of turns in ascending chronological order.
// Storage layers may hand back history newest-first; consumers rely on
// oldest-first, so ordering is re-established here. The sort is stable, so
// turns with equal timestamps keep their supplied order.
func NormalizeHistory(turns []schema.Turn) []schema.Turn {
	normalized := make([]schema.Turn, len(turns))
	copy(normalized, turns)

	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].Timestamp.Before(normalized[j].Timestamp)
	})

	return normalized
}

// HistoryWindow returns up to the last n turns of an ascending history,
// preserving order.
func HistoryWindow(turns []schema.Turn, n int) []schema.Turn {
	if n <= 0 || len(turns) == 0 {
		return nil
	}
	if len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}
