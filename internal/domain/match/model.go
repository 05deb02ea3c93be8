// Package match holds the canonical per-match summary model and the status
// classification tables for the provider's football feed.
package match

import (
	"github.com/riskibarqy/match-center/internal/domain/environment"
	"github.com/riskibarqy/match-center/internal/domain/odds"
	"github.com/riskibarqy/match-center/internal/platform/payload"
)

// Placeholders used when a side table cannot resolve an entity name.
const (
	UnknownHomeTeam    = "Unknown Home Team"
	UnknownAwayTeam    = "Unknown Away Team"
	UnknownCompetition = "Unknown Competition"
)

// Summary is the normalized record one enrichment cycle produces per match.
type Summary struct {
	MatchID     string              `json:"match_id"`
	Status      Status              `json:"status"`
	Teams       Teams               `json:"teams"`
	Competition Competition         `json:"competition"`
	Round       payload.Object      `json:"round"`
	Venue       string              `json:"venue"`
	Referee     string              `json:"referee"`
	Neutral     bool                `json:"neutral"`
	Coverage    payload.Object      `json:"coverage"`
	StartTime   int64               `json:"start_time"`
	Odds        odds.Resolved       `json:"odds"`
	Environment environment.Reading `json:"environment"`
	Events      []Event             `json:"events"`
	FetchedAt   string              `json:"fetched_at"`
}

// Status carries the raw code plus its rendered description and the running
// match clock.
type Status struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	MatchTime   int    `json:"match_time"`
}

type Teams struct {
	Home TeamSide `json:"home"`
	Away TeamSide `json:"away"`
}

type TeamSide struct {
	Name     string    `json:"name"`
	Score    ScoreLine `json:"score"`
	Position string    `json:"position"`
	Country  string    `json:"country"`
	LogoURL  string    `json:"logo_url"`
}

// ScoreLine keeps the current and halftime totals plus the provider's raw
// per-period breakdown.
type ScoreLine struct {
	Current  int   `json:"current"`
	Halftime int   `json:"halftime"`
	Detailed []any `json:"detailed"`
}

type Competition struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	Country string `json:"country"`
	LogoURL string `json:"logo_url"`
}

// Event is one timeline incident worth surfacing.
type Event struct {
	Type   string `json:"type"`
	Time   any    `json:"time"`
	Team   any    `json:"team"`
	Player any    `json:"player"`
	Detail any    `json:"detail"`
}

// surfacedEventTypes is the allow-set of timeline incidents kept on a
// summary; everything else the feed emits is dropped.
var surfacedEventTypes = map[string]struct{}{
	"goal":         {},
	"yellowcard":   {},
	"redcard":      {},
	"penalty":      {},
	"substitution": {},
}

// FilterEvents keeps only the surfaced incident types from a raw timeline.
func FilterEvents(raw []any) []Event {
	events := make([]Event, 0, len(raw))
	for _, item := range raw {
		obj := payload.Map(item)
		if obj == nil {
			continue
		}
		kind := payload.String(obj["type"])
		if _, ok := surfacedEventTypes[kind]; !ok {
			continue
		}
		events = append(events, Event{
			Type:   kind,
			Time:   obj["time"],
			Team:   obj["team"],
			Player: obj["player"],
			Detail: obj["detail"],
		})
	}
	return events
}

// ExtractScores reads both score lines from a merged match object. The
// primary source is the score array (slots 2 and 3 hold per-team
// [current, halftime, ...] lists); when that yields zero, the flat
// home_scores/away_scores lists act as a fallback.
func ExtractScores(m payload.Object) (home, away ScoreLine) {
	if score := payload.List(m["score"]); len(score) > 3 {
		home = scoreLineFrom(payload.List(score[2]))
		away = scoreLineFrom(payload.List(score[3]))
	}

	homeDetailed := payload.List(m["home_scores"])
	awayDetailed := payload.List(m["away_scores"])
	home.Detailed = homeDetailed
	away.Detailed = awayDetailed

	if home.Current == 0 && len(homeDetailed) > 0 {
		if v, ok := payload.Int(homeDetailed[0]); ok {
			home.Current = v
		}
	}
	if away.Current == 0 && len(awayDetailed) > 0 {
		if v, ok := payload.Int(awayDetailed[0]); ok {
			away.Current = v
		}
	}
	return home, away
}

func scoreLineFrom(slots []any) ScoreLine {
	var line ScoreLine
	if len(slots) > 1 {
		line.Current, _ = payload.Int(slots[0])
		line.Halftime, _ = payload.Int(slots[1])
	}
	return line
}
