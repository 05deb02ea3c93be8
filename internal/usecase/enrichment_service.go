package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/match-center/internal/domain/environment"
	"github.com/riskibarqy/match-center/internal/domain/match"
	"github.com/riskibarqy/match-center/internal/domain/odds"
	"github.com/riskibarqy/match-center/internal/platform/logging"
	"github.com/riskibarqy/match-center/internal/platform/payload"
)

const fetchedAtLayout = "01/02/2006 03:04:05 PM EST"

// SummarySink persists one cycle's batch of summaries.
type SummarySink interface {
	Append(ctx context.Context, batch match.Batch) error
}

// EnrichmentService turns one raw live bundle into normalized match
// summaries and records them.
type EnrichmentService struct {
	logger   *logging.Logger
	provider LiveDataProvider
	sink     SummarySink
	now      func() time.Time
	eastern  *time.Location
}

func NewEnrichmentService(logger *logging.Logger, provider LiveDataProvider, sink SummarySink) *EnrichmentService {
	if logger == nil {
		logger = logging.Default()
	}
	eastern, err := time.LoadLocation("America/New_York")
	if err != nil {
		eastern = time.UTC
	}
	return &EnrichmentService{
		logger:   logger,
		provider: provider,
		sink:     sink,
		now:      time.Now,
		eastern:  eastern,
	}
}

// CycleResult is the output of one enrichment cycle.
type CycleResult struct {
	Summaries []match.Summary
	Batch     match.Batch
	Report    StatusReport
}

// RunCycle fetches the live bundle, builds summaries and appends the batch
// to the sink. A sink failure does not discard the cycle's summaries.
func (s *EnrichmentService) RunCycle(ctx context.Context) (CycleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "enrichment.RunCycle")
	defer span.End()

	bundle, err := s.provider.FetchLiveBundle(ctx)
	if err != nil {
		return CycleResult{}, fmt.Errorf("fetch live bundle: %w", err)
	}

	stubs := bundle.LiveStubs()
	summaries := s.BuildSummaries(bundle)
	report := BuildStatusReport(stubs)

	batch := match.NewBatch(summaries, bundle.Timestamp)
	if s.sink != nil && len(summaries) > 0 {
		if err := s.sink.Append(ctx, batch); err != nil {
			s.logger.ErrorContext(ctx, "append summary batch failed", "error", err, "matches", len(summaries))
		}
	}

	s.logger.InfoContext(ctx, "enrichment cycle completed",
		"matches", len(stubs),
		"summaries", len(summaries),
		"in_play", report.InPlayMatches,
	)
	return CycleResult{Summaries: summaries, Batch: batch, Report: report}, nil
}

// BuildSummaries merges and summarizes every stub in the bundle. Stubs
// without a resolvable match id are dropped; every other defect degrades
// to a placeholder field.
func (s *EnrichmentService) BuildSummaries(bundle LiveBundle) []match.Summary {
	stubs := bundle.LiveStubs()
	countries := bundle.CountryNames()

	summaries := make([]match.Summary, 0, len(stubs))
	for _, stub := range stubs {
		merged, ok := mergeMatch(stub, bundle, countries)
		if !ok {
			continue
		}
		summaries = append(summaries, s.summarize(merged))
	}
	return summaries
}

// mergeMatch joins a live stub with its detail, odds, team, competition and
// country records. Detail values override stub values. The second return is
// false only when no match id can be resolved.
func mergeMatch(stub payload.Object, bundle LiveBundle, countries map[string]string) (payload.Object, bool) {
	id := payload.String(stub["id"])
	if id == "" {
		id = payload.String(stub["match_id"])
	}
	if id == "" {
		return nil, false
	}

	detail := payload.FirstResult(bundle.MatchDetails[id])

	merged := make(payload.Object, len(stub)+len(detail)+12)
	for k, v := range stub {
		merged[k] = v
	}
	for k, v := range detail {
		merged[k] = v
	}
	merged["match_id"] = id

	merged["odds"] = flattenOddsWrap(bundle.MatchOdds[id])

	if _, ok := detail["environment"]; !ok {
		merged["environment"] = stub["environment"]
	}
	if _, ok := detail["events"]; !ok {
		merged["events"] = stub["events"]
	}

	homeID := firstNonEmpty(payload.String(stub["home_team_id"]), payload.String(detail["home_team_id"]))
	awayID := firstNonEmpty(payload.String(stub["away_team_id"]), payload.String(detail["away_team_id"]))
	compID := firstNonEmpty(payload.String(stub["competition_id"]), payload.String(detail["competition_id"]))

	home := payload.LookupFirst(bundle.TeamInfo, homeID)
	away := payload.LookupFirst(bundle.TeamInfo, awayID)
	comp := payload.LookupFirst(bundle.CompetitionInfo, compID)

	merged["home_team"] = firstNonEmpty(payload.String(home["name"]), payload.String(stub["home_name"]))
	merged["home_logo"] = payload.String(home["logo"])
	merged["home_country"] = resolveCountry(home, countries)

	merged["away_team"] = firstNonEmpty(payload.String(away["name"]), payload.String(stub["away_name"]))
	merged["away_logo"] = payload.String(away["logo"])
	merged["away_country"] = resolveCountry(away, countries)

	merged["competition"] = firstNonEmpty(payload.String(comp["name"]), payload.String(stub["competition_name"]))
	merged["competition_id"] = compID
	merged["competition_logo"] = payload.String(comp["logo"])
	merged["country"] = resolveCountry(comp, countries)

	return merged, true
}

// resolveCountry reads an entity's own country name, falling back to the
// country table keyed by the entity's country_id.
func resolveCountry(entity payload.Object, countries map[string]string) string {
	if name := payload.String(entity["country"]); name != "" {
		return name
	}
	return countries[payload.String(entity["country_id"])]
}

// flattenOddsWrap collapses the odds envelope's per-bookmaker blocks into a
// single market to series mapping. Later bookmakers win on overlap.
func flattenOddsWrap(wrap payload.Object) payload.Object {
	flattened := payload.Object{}
	for _, block := range payload.Map(wrap["results"]) {
		for market, series := range payload.Map(block) {
			flattened[market] = series
		}
	}
	return flattened
}

func (s *EnrichmentService) summarize(merged payload.Object) match.Summary {
	statusID, hasStatus := payload.StatusID(merged)
	statusDescription := match.DescribeStatus(statusID)
	if !hasStatus {
		statusDescription = fmt.Sprintf("Unknown (%d)", statusID)
	}
	matchTime, _ := payload.Int(merged["match_time"])
	startTime, _ := payload.Int(merged["scheduled"])
	neutral, _ := payload.Int(merged["neutral"])
	homeScore, awayScore := match.ExtractScores(merged)

	homeName := payload.String(merged["home_team"])
	if homeName == "" {
		homeName = match.UnknownHomeTeam
	}
	awayName := payload.String(merged["away_team"])
	if awayName == "" {
		awayName = match.UnknownAwayTeam
	}
	compName := payload.String(merged["competition"])
	if compName == "" {
		compName = match.UnknownCompetition
	}

	round := payload.Map(merged["round"])
	if round == nil {
		round = payload.Object{}
	}
	coverage := payload.Map(merged["coverage"])
	if coverage == nil {
		coverage = payload.Object{}
	}

	return match.Summary{
		MatchID: payload.String(merged["match_id"]),
		Status: match.Status{
			ID:          statusID,
			Description: statusDescription,
			MatchTime:   matchTime,
		},
		Teams: match.Teams{
			Home: match.TeamSide{
				Name:     homeName,
				Score:    homeScore,
				Position: payload.String(merged["home_position"]),
				Country:  payload.String(merged["home_country"]),
				LogoURL:  payload.String(merged["home_logo"]),
			},
			Away: match.TeamSide{
				Name:     awayName,
				Score:    awayScore,
				Position: payload.String(merged["away_position"]),
				Country:  payload.String(merged["away_country"]),
				LogoURL:  payload.String(merged["away_logo"]),
			},
		},
		Competition: match.Competition{
			Name:    compName,
			ID:      payload.String(merged["competition_id"]),
			Country: payload.String(merged["country"]),
			LogoURL: payload.String(merged["competition_logo"]),
		},
		Round:       round,
		Venue:       payload.String(merged["venue_id"]),
		Referee:     payload.String(merged["referee_id"]),
		Neutral:     neutral == 1,
		Coverage:    coverage,
		StartTime:   int64(startTime),
		Odds:        odds.Resolve(merged),
		Environment: environment.Interpret(payload.Map(merged["environment"])),
		Events:      match.FilterEvents(payload.List(merged["events"])),
		FetchedAt:   s.now().In(s.eastern).Format(fetchedAtLayout),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
