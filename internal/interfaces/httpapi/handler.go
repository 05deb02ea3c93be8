package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/match-center/internal/domain/match"
	"github.com/riskibarqy/match-center/internal/usecase"
)

// BatchSource serves the latest persisted summary batch.
type BatchSource interface {
	Latest(ctx context.Context) (match.Batch, bool, error)
}

type Handler struct {
	source    BatchSource
	logger    *slog.Logger
	validator *validator.Validate
}

func NewHandler(source BatchSource, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		source:    source,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type listMatchesQuery struct {
	Live string `validate:"omitempty,oneof=true false"`
}

type matchListDTO struct {
	GeneratedAt string          `json:"generated_at"`
	Total       int             `json:"total"`
	Matches     []match.Summary `json:"matches"`
}

// ListMatches returns the latest cycle's summaries. With live=true only
// matches in a running phase are kept.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := listMatchesQuery{Live: r.URL.Query().Get("live")}
	if err := h.validator.StructCtx(ctx, query); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: live must be true or false", usecase.ErrInvalidInput))
		return
	}

	batch, ok, err := h.latestBatch(ctx, w)
	if !ok || err != nil {
		return
	}

	summaries := sortedSummaries(batch)
	if query.Live == "true" {
		filtered := summaries[:0]
		for _, s := range summaries {
			if match.IsLive(s.Status.ID) {
				filtered = append(filtered, s)
			}
		}
		summaries = filtered
	}

	writeSuccess(ctx, w, http.StatusOK, matchListDTO{
		GeneratedAt: batch.Timestamp,
		Total:       len(summaries),
		Matches:     summaries,
	})
}

type groupedMatchesDTO struct {
	GeneratedAt string                     `json:"generated_at"`
	Groups      []usecase.CompetitionGroup `json:"groups"`
}

// ListGroupedMatches returns the latest summaries bucketed by competition.
func (h *Handler) ListGroupedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroupedMatches")
	defer span.End()

	batch, ok, err := h.latestBatch(ctx, w)
	if !ok || err != nil {
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupedMatchesDTO{
		GeneratedAt: batch.Timestamp,
		Groups:      usecase.GroupByCompetition(sortedSummaries(batch)),
	})
}

type statusSummaryDTO struct {
	GeneratedAt string               `json:"generated_at"`
	Report      usecase.StatusReport `json:"report"`
}

// GetStatusSummary returns the status breakdown of the latest cycle.
func (h *Handler) GetStatusSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatusSummary")
	defer span.End()

	batch, ok, err := h.latestBatch(ctx, w)
	if !ok || err != nil {
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statusSummaryDTO{
		GeneratedAt: batch.Timestamp,
		Report:      usecase.BuildStatusReportFromSummaries(sortedSummaries(batch)),
	})
}

// latestBatch loads the newest batch, writing the error response itself
// when there is nothing to serve.
func (h *Handler) latestBatch(ctx context.Context, w http.ResponseWriter) (match.Batch, bool, error) {
	batch, ok, err := h.source.Latest(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "load latest batch failed", "error", err)
		writeError(ctx, w, fmt.Errorf("%w: history unavailable", usecase.ErrDependencyUnavailable))
		return match.Batch{}, false, err
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no enrichment cycle recorded yet", usecase.ErrNotFound))
		return match.Batch{}, false, nil
	}
	return batch, true, nil
}

func sortedSummaries(batch match.Batch) []match.Summary {
	summaries := make([]match.Summary, 0, len(batch.Matches))
	for _, s := range batch.Matches {
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(a, b int) bool {
		return summaries[a].MatchID < summaries[b].MatchID
	})
	return summaries
}
