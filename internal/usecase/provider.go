package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/match-center/internal/platform/payload"
)

// LiveDataProvider fetches one full enrichment cycle's worth of raw data
// from the sports feed.
type LiveDataProvider interface {
	FetchLiveBundle(ctx context.Context) (LiveBundle, error)
}

// LiveBundle is the raw payload set for one cycle: the live feed plus every
// side table needed to enrich it. All payloads keep the provider's loose
// shapes; the accessor helpers normalize on read.
type LiveBundle struct {
	Timestamp time.Time

	// LiveMatches is the raw live-feed envelope.
	LiveMatches payload.Object

	// Per-match enrichment payloads keyed by match id.
	MatchDetails map[string]any
	MatchOdds    map[string]payload.Object

	// Reference side tables keyed by entity id; values are raw envelopes.
	TeamInfo        map[string]any
	CompetitionInfo map[string]any

	// Countries is the raw country-list envelope.
	Countries payload.Object
}

// LiveStubs returns the raw match stubs of the live feed. Both envelope
// spellings the feed uses are accepted.
func (b LiveBundle) LiveStubs() []payload.Object {
	if stubs := payload.ResultList(b.LiveMatches); stubs != nil {
		return stubs
	}
	if items := payload.List(b.LiveMatches["matches"]); items != nil {
		stubs := make([]payload.Object, 0, len(items))
		for _, item := range items {
			if obj := payload.Map(item); obj != nil {
				stubs = append(stubs, obj)
			}
		}
		return stubs
	}
	return nil
}

// CountryNames builds the id to name lookup from the raw country envelope.
func (b LiveBundle) CountryNames() map[string]string {
	names := make(map[string]string)
	for _, entry := range payload.ResultList(b.Countries) {
		id := payload.String(entry["id"])
		name := payload.String(entry["name"])
		if id != "" && name != "" {
			names[id] = name
		}
	}
	return names
}
