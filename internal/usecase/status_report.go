package usecase

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/match-center/internal/domain/match"
	"github.com/riskibarqy/match-center/internal/platform/payload"
)

// StatusCount is one status code's share of the live feed.
type StatusCount struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Formatted   string `json:"formatted"`
}

// StatusReport summarizes how the live feed splits across status codes.
type StatusReport struct {
	TotalMatches         int            `json:"total_matches_fetched"`
	MatchesWithStatus    int            `json:"matches_with_status"`
	MatchesWithoutStatus int            `json:"matches_without_status"`
	InPlayMatches        int            `json:"in_play_matches"`
	Breakdown            []StatusCount  `json:"status_breakdown"`
	FormattedSummary     []string       `json:"formatted_summary"`
	CountsByDescription  map[string]int `json:"status_counts"`
}

// StatusGroup collects the match ids sharing one status.
type StatusGroup struct {
	StatusID int      `json:"status_id"`
	Count    int      `json:"count"`
	MatchIDs []string `json:"match_ids"`
}

// BuildStatusReport counts raw live stubs per status code. Only matches
// with a resolvable status participate; the in-play total uses the strict
// in-play subset.
func BuildStatusReport(stubs []payload.Object) StatusReport {
	counts := map[int]int{}
	withStatus := 0
	for _, stub := range stubs {
		id, ok := payload.StatusID(stub)
		if !ok {
			continue
		}
		withStatus++
		counts[id]++
	}
	return buildStatusReport(len(stubs), withStatus, counts)
}

// BuildStatusReportFromSummaries is the summary-side variant; every summary
// carries a status code.
func BuildStatusReportFromSummaries(summaries []match.Summary) StatusReport {
	counts := map[int]int{}
	for _, s := range summaries {
		counts[s.Status.ID]++
	}
	return buildStatusReport(len(summaries), len(summaries), counts)
}

func buildStatusReport(total, withStatus int, counts map[int]int) StatusReport {
	report := StatusReport{
		TotalMatches:        total,
		MatchesWithStatus:   withStatus,
		CountsByDescription: map[string]int{},
	}
	report.MatchesWithoutStatus = report.TotalMatches - report.MatchesWithStatus

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		description := match.DescribeStatusDetailed(id)
		entry := StatusCount{
			ID:          id,
			Description: description,
			Count:       counts[id],
			Formatted:   fmt.Sprintf("%s (ID: %d): %d", description, id, counts[id]),
		}
		report.Breakdown = append(report.Breakdown, entry)
		report.FormattedSummary = append(report.FormattedSummary, entry.Formatted)
		report.CountsByDescription[description] = entry.Count
		if match.IsInPlay(id) {
			report.InPlayMatches += entry.Count
		}
	}
	report.FormattedSummary = append(report.FormattedSummary, fmt.Sprintf("IN-PLAY MATCHES: %d", report.InPlayMatches))
	return report
}

// MapMatchesByStatus groups live-feed match ids under their status
// description, for the operator-facing detailed breakdown.
func MapMatchesByStatus(stubs []payload.Object) map[string]StatusGroup {
	groups := make(map[string]StatusGroup)
	for _, stub := range stubs {
		id, ok := payload.StatusID(stub)
		if !ok {
			continue
		}
		matchID := payload.String(stub["id"])
		if matchID == "" {
			matchID = "NO_ID"
		}
		description := match.DescribeStatusDetailed(id)
		group := groups[description]
		group.StatusID = id
		group.Count++
		group.MatchIDs = append(group.MatchIDs, matchID)
		groups[description] = group
	}
	return groups
}
