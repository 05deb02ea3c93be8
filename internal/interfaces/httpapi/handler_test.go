package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/match-center/internal/domain/match"
)

type stubSource struct {
	batch match.Batch
	ok    bool
	err   error
}

func (s stubSource) Latest(context.Context) (match.Batch, bool, error) {
	return s.batch, s.ok, s.err
}

func seededBatch() match.Batch {
	return match.NewBatch([]match.Summary{
		{
			MatchID:     "m1",
			Status:      match.Status{ID: 2, Description: "First half"},
			Competition: match.Competition{Name: "Premier League", Country: "England"},
		},
		{
			MatchID:     "m2",
			Status:      match.Status{ID: 8, Description: "End"},
			Competition: match.Competition{Name: "Premier League", Country: "England"},
		},
		{
			MatchID:     "m3",
			Status:      match.Status{ID: 6, Description: "Overtime (deprecated)"},
			Competition: match.Competition{Name: "Serie A", Country: "Italy"},
		},
	}, time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC))
}

func doRequest(t *testing.T, handler *Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	router := NewRouter(handler, slog.New(slog.DiscardHandler), nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	if err := jsoniter.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %s: %v", target, err)
	}
	return recorder, body
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	handler := NewHandler(stubSource{}, nil)
	recorder, body := doRequest(t, handler, "/healthz")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	data := body["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("body: %v", body)
	}
}

func TestListMatches(t *testing.T) {
	t.Parallel()

	handler := NewHandler(stubSource{batch: seededBatch(), ok: true}, nil)

	recorder, body := doRequest(t, handler, "/v1/matches")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	data := body["data"].(map[string]any)
	if data["total"] != float64(3) {
		t.Fatalf("total: %v", data["total"])
	}
}

func TestListMatches_LiveFilterKeepsDeprecatedOvertime(t *testing.T) {
	t.Parallel()

	handler := NewHandler(stubSource{batch: seededBatch(), ok: true}, nil)

	recorder, body := doRequest(t, handler, "/v1/matches?live=true")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	data := body["data"].(map[string]any)
	// m1 (first half) and m3 (deprecated overtime) are live; m2 ended.
	if data["total"] != float64(2) {
		t.Fatalf("total: %v", data["total"])
	}
}

func TestListMatches_RejectsBadLiveFlag(t *testing.T) {
	t.Parallel()

	handler := NewHandler(stubSource{batch: seededBatch(), ok: true}, nil)

	recorder, body := doRequest(t, handler, "/v1/matches?live=maybe")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", recorder.Code)
	}
	errBody := body["error"].(map[string]any)
	if errBody["status"] != "INVALID_ARGUMENT" {
		t.Fatalf("error body: %v", errBody)
	}
}

func TestListGroupedMatches(t *testing.T) {
	t.Parallel()

	handler := NewHandler(stubSource{batch: seededBatch(), ok: true}, nil)

	recorder, body := doRequest(t, handler, "/v1/matches/grouped")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	data := body["data"].(map[string]any)
	groups := data["groups"].([]any)
	if len(groups) != 2 {
		t.Fatalf("groups: %d", len(groups))
	}
	first := groups[0].(map[string]any)
	if first["competition"] != "Premier League" || first["country"] != "England" {
		t.Fatalf("first group: %v", first)
	}
}

func TestGetStatusSummary(t *testing.T) {
	t.Parallel()

	handler := NewHandler(stubSource{batch: seededBatch(), ok: true}, nil)

	recorder, body := doRequest(t, handler, "/v1/status-summary")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	data := body["data"].(map[string]any)
	report := data["report"].(map[string]any)
	if report["total_matches_fetched"] != float64(3) {
		t.Fatalf("report totals: %v", report)
	}
	// Strict in-play membership: first half counts, deprecated overtime not.
	if report["in_play_matches"] != float64(1) {
		t.Fatalf("in-play: %v", report["in_play_matches"])
	}
}

func TestEndpoints_WithoutHistory(t *testing.T) {
	t.Parallel()

	handler := NewHandler(stubSource{ok: false}, nil)
	recorder, _ := doRequest(t, handler, "/v1/matches")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status: %d", recorder.Code)
	}

	broken := NewHandler(stubSource{err: errors.New("disk gone")}, nil)
	recorder, _ = doRequest(t, broken, "/v1/matches")
	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: %d", recorder.Code)
	}
}
