// Package odds resolves a match's raw odds time series into one
// representative snapshot per betting market.
package odds

// Canonical market keys used by the provider's odds payload.
const (
	MarketFullTimeResult = "eu"
	MarketSpread         = "asia"
	MarketOverUnder      = "bs"
)

// Entry is one raw odds tick: [timestamp, minute_marker, values...].
// Prices are carried as the provider sends them, numbers or strings.
type Entry = []any

// Resolved is the per-match odds block on a summary. Nil market pointers
// mean the market had no usable snapshot this cycle.
type Resolved struct {
	FullTimeResult   *FullTimeResult          `json:"full_time_result"`
	BothTeamsToScore map[string]any           `json:"both_teams_to_score"`
	OverUnder        map[string]OverUnderLine `json:"over_under"`
	Spread           *Spread                  `json:"spread"`
	PrimaryOverUnder *OverUnderLine           `json:"primary_over_under,omitempty"`
	Raw              map[string]any           `json:"raw"`
}

// FullTimeResult holds 1X2 prices from one snapshot.
type FullTimeResult struct {
	Home      any `json:"home"`
	Draw      any `json:"draw"`
	Away      any `json:"away"`
	Timestamp any `json:"timestamp"`
	MatchTime any `json:"match_time"`
}

// Spread holds the Asian handicap line and prices from one snapshot.
type Spread struct {
	Handicap  any `json:"handicap"`
	Home      any `json:"home"`
	Away      any `json:"away"`
	Timestamp any `json:"timestamp"`
	MatchTime any `json:"match_time"`
}

// OverUnderLine holds one total line with its over/under prices.
type OverUnderLine struct {
	Line      any `json:"line"`
	Over      any `json:"over"`
	Under     any `json:"under"`
	Timestamp any `json:"timestamp"`
	MatchTime any `json:"match_time"`
}
