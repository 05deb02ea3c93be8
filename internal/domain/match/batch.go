package match

import "time"

// Batch is one cycle's summaries keyed by match id, as stored in history.
type Batch struct {
	Timestamp    string             `json:"timestamp"`
	TotalMatches int                `json:"total_matches"`
	Matches      map[string]Summary `json:"matches"`
}

// NewBatch keys summaries by match id. Summaries without an id never reach
// this point; a duplicate id keeps the last occurrence.
func NewBatch(summaries []Summary, at time.Time) Batch {
	grouped := make(map[string]Summary, len(summaries))
	for _, summary := range summaries {
		if summary.MatchID == "" {
			continue
		}
		grouped[summary.MatchID] = summary
	}
	return Batch{
		Timestamp:    at.Format(time.RFC3339Nano),
		TotalMatches: len(grouped),
		Matches:      grouped,
	}
}
