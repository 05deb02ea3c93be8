// Package thesports is the HTTP client for TheSports football API. It
// fetches the live feed plus the per-match and reference side tables one
// enrichment cycle needs.
package thesports

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/match-center/internal/platform/logging"
	"github.com/riskibarqy/match-center/internal/platform/payload"
	"github.com/riskibarqy/match-center/internal/platform/resilience"
	"github.com/riskibarqy/match-center/internal/usecase"
)

const (
	defaultBaseURL     = "https://api.thesports.com/v1/football"
	defaultWorkerCount = 8

	pathLive        = "/match/detail_live"
	pathDetails     = "/match/recent/list"
	pathOdds        = "/odds/history"
	pathTeam        = "/team/additional/list"
	pathCompetition = "/competition/additional/list"
	pathCountry     = "/country/list"
)

var errTheSportsTransient = crerr.New("thesports transient failure")
var secretParamRegex = regexp.MustCompile(`secret=[^&\s"']+`)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	User           string
	Secret         string
	Timeout        time.Duration
	MaxRetries     int
	WorkerCount    int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	user           string
	secret         string
	maxRetries     int
	workerCount    int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	workerCount := cfg.WorkerCount
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		user:           strings.TrimSpace(cfg.User),
		secret:         strings.TrimSpace(cfg.Secret),
		maxRetries:     max(cfg.MaxRetries, 0),
		workerCount:    workerCount,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchLiveBundle pulls the live feed, then fans out over the returned
// matches for detail and odds payloads, then fetches every referenced team
// and competition once, plus the country list. Individual payload failures
// degrade to empty objects; only a dead live feed fails the bundle.
func (c *Client) FetchLiveBundle(ctx context.Context) (usecase.LiveBundle, error) {
	started := time.Now()

	live, err := c.doJSON(ctx, pathLive, nil)
	if err != nil {
		return usecase.LiveBundle{}, fmt.Errorf("fetch live feed: %w", err)
	}

	bundle := usecase.LiveBundle{
		Timestamp:       started,
		LiveMatches:     live,
		MatchDetails:    map[string]any{},
		MatchOdds:       map[string]payload.Object{},
		TeamInfo:        map[string]any{},
		CompetitionInfo: map[string]any{},
	}

	stubs := bundle.LiveStubs()
	if err := c.fetchMatchPayloads(ctx, stubs, &bundle); err != nil {
		return usecase.LiveBundle{}, err
	}
	c.fetchSideTables(ctx, stubs, &bundle)
	bundle.Countries = c.fetchOrEmpty(ctx, pathCountry, nil)

	c.logger.InfoContext(ctx, "live bundle fetched",
		"matches", len(stubs),
		"teams", len(bundle.TeamInfo),
		"competitions", len(bundle.CompetitionInfo),
		"elapsed", time.Since(started).String(),
	)
	return bundle, nil
}

// fetchMatchPayloads fans detail and odds requests out over a worker pool,
// one task per match.
func (c *Client) fetchMatchPayloads(ctx context.Context, stubs []payload.Object, bundle *usecase.LiveBundle) error {
	workers, err := ants.NewPool(c.workerCount)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, stub := range stubs {
		id := payload.String(stub["id"])
		if id == "" {
			continue
		}
		wg.Add(1)
		task := func() {
			defer wg.Done()
			detail := c.fetchOrEmpty(ctx, pathDetails, map[string]string{"uuid": id})
			odds := c.fetchOrEmpty(ctx, pathOdds, map[string]string{"uuid": id})
			mu.Lock()
			bundle.MatchDetails[id] = detail
			bundle.MatchOdds[id] = odds
			mu.Unlock()
		}
		if err := workers.Submit(task); err != nil {
			wg.Done()
			return fmt.Errorf("submit match task: %w", err)
		}
	}
	wg.Wait()
	return nil
}

// fetchSideTables collects every team and competition id referenced by the
// cycle and fetches each entity exactly once.
func (c *Client) fetchSideTables(ctx context.Context, stubs []payload.Object, bundle *usecase.LiveBundle) {
	teamIDs := map[string]struct{}{}
	compIDs := map[string]struct{}{}
	for _, stub := range stubs {
		id := payload.String(stub["id"])
		detail := payload.FirstResult(bundle.MatchDetails[id])
		for _, key := range []string{"home_team_id", "away_team_id"} {
			if v := firstID(stub[key], detail[key]); v != "" {
				teamIDs[v] = struct{}{}
			}
		}
		if v := firstID(stub["competition_id"], detail["competition_id"]); v != "" {
			compIDs[v] = struct{}{}
		}
	}

	var mu sync.Mutex
	workers := pool.New().WithMaxGoroutines(c.workerCount)
	for id := range teamIDs {
		id := id
		workers.Go(func() {
			entity := c.fetchOrEmpty(ctx, pathTeam, map[string]string{"uuid": id})
			mu.Lock()
			bundle.TeamInfo[id] = entity
			mu.Unlock()
		})
	}
	for id := range compIDs {
		id := id
		workers.Go(func() {
			entity := c.fetchOrEmpty(ctx, pathCompetition, map[string]string{"uuid": id})
			mu.Lock()
			bundle.CompetitionInfo[id] = entity
			mu.Unlock()
		})
	}
	workers.Wait()
}

func firstID(values ...any) string {
	for _, v := range values {
		if s := payload.String(v); s != "" {
			return s
		}
	}
	return ""
}

// fetchOrEmpty degrades any request failure to an empty payload; the merge
// layer treats missing payloads as absent side-table entries.
func (c *Client) fetchOrEmpty(ctx context.Context, path string, query map[string]string) payload.Object {
	out, err := c.doJSON(ctx, path, query)
	if err != nil {
		c.logger.WarnContext(ctx, "thesports payload degraded to empty", "path", path, "error", err)
		return payload.Object{}
	}
	return out
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string) (payload.Object, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "thesports circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: sports feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("user", c.user)
	values.Set("secret", c.secret)
	fullURL := c.baseURL + path + "?" + values.Encode()

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isTransient(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	var decoded map[string]any
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}
	return decoded, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errTheSportsTransient, redactSecret(err.Error()))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errTheSportsTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d", errTheSportsTransient, resp.StatusCode)
			} else {
				return nil, fmt.Errorf("provider status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(1<<attempt) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "thesports request failed", "url", redactSecret(fullURL), "error", lastErr)
	return nil, lastErr
}

func isTransient(err error) bool {
	return err != nil && stderrors.Is(err, errTheSportsTransient)
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// redactSecret strips the API secret from anything that may be logged.
func redactSecret(text string) string {
	return secretParamRegex.ReplaceAllString(text, "secret=***")
}
