package usecase

import (
	"sort"

	"github.com/riskibarqy/match-center/internal/domain/country"
	"github.com/riskibarqy/match-center/internal/domain/match"
)

// CompetitionGroup is one competition's matches, ordered for display.
type CompetitionGroup struct {
	Competition string          `json:"competition"`
	Country     string          `json:"country"`
	Matches     []match.Summary `json:"matches"`
}

// GroupByCompetition buckets summaries by competition name, orders matches
// inside a group by in-play phase then match id, and orders groups by
// country then competition name. A group's country comes from its first
// match, with heuristic inference when the source gives none.
//
// Grouping keys on the display name, so distinct competitions sharing a
// name collapse into one group. Known limitation carried from the feed's
// data model.
func GroupByCompetition(summaries []match.Summary) []CompetitionGroup {
	index := make(map[string]int)
	groups := make([]CompetitionGroup, 0)

	for _, summary := range summaries {
		name := summary.Competition.Name
		if name == "" {
			name = match.UnknownCompetition
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, CompetitionGroup{
				Competition: name,
				Country:     groupCountry(summary),
			})
		}
		groups[i].Matches = append(groups[i].Matches, summary)
	}

	for i := range groups {
		matches := groups[i].Matches
		sort.SliceStable(matches, func(a, b int) bool {
			ra, rb := match.StatusRank(matches[a].Status.ID), match.StatusRank(matches[b].Status.ID)
			if ra != rb {
				return ra < rb
			}
			return matches[a].MatchID < matches[b].MatchID
		})
	}

	sort.SliceStable(groups, func(a, b int) bool {
		if groups[a].Country != groups[b].Country {
			return groups[a].Country < groups[b].Country
		}
		return groups[a].Competition < groups[b].Competition
	})
	return groups
}

func groupCountry(summary match.Summary) string {
	name := summary.Competition.Country
	if name != "" && name != "None" && name != country.Unknown {
		return name
	}
	return country.Infer(summary.Teams.Home.Name, summary.Teams.Away.Name, summary.Competition.Name)
}
