package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/fixturehub/football-data/internal/usecase"
)

type ingestionRequest struct {
	LeagueIDs []int64 `json:"league_ids" validate:"omitempty,dive,gt=0"`
}

type resyncRequest struct {
	LeagueIDs  []int64  `json:"league_ids" validate:"omitempty,dive,gt=0"`
	SyncData   []string `json:"sync_data" validate:"omitempty,dive,required"`
	MaxWorkers int      `json:"max_workers" validate:"omitempty,gte=1,lte=32"`
}

// decodeBody tolerates an absent or empty request body. Ingestion runs are
// usually fired by a scheduler that sends no payload at all.
func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(target)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err)
}

// resolveLeagueIDs substitutes the configured ingestion scope when the
// request does not name leagues.
func (h *Handler) resolveLeagueIDs(requested []int64) []int64 {
	if len(requested) > 0 {
		return requested
	}
	return h.ingestLeagueIDs
}

func (h *Handler) parseIngestionRequest(ctx context.Context, r *http.Request) ([]int64, error) {
	var req ingestionRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return nil, err
	}
	return h.resolveLeagueIDs(req.LeagueIDs), nil
}

func (h *Handler) runIngestion(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	jobName string,
	run func(ctx context.Context, leagueIDs []int64) (usecase.SyncSummary, error),
) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	leagueIDs, err := h.parseIngestionRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := run(ctx, leagueIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "ingestion failed", "job", jobName, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "ingestion finished",
		"job", jobName,
		"league_ids", leagueIDs,
		"inserted", summary.Inserted,
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) IngestLeagues(w http.ResponseWriter, r *http.Request) {
	h.runIngestion(w, r, "httpapi.Handler.IngestLeagues", "leagues",
		func(ctx context.Context, _ []int64) (usecase.SyncSummary, error) {
			return h.services.LeagueSync.SyncLeagues(ctx)
		})
}

func (h *Handler) IngestTeams(w http.ResponseWriter, r *http.Request) {
	h.runIngestion(w, r, "httpapi.Handler.IngestTeams", "teams",
		h.services.TeamSync.SyncTeams)
}

func (h *Handler) IngestPlayers(w http.ResponseWriter, r *http.Request) {
	h.runIngestion(w, r, "httpapi.Handler.IngestPlayers", "players",
		h.services.PlayerSync.SyncPlayers)
}

func (h *Handler) IngestPlayerStatistics(w http.ResponseWriter, r *http.Request) {
	h.runIngestion(w, r, "httpapi.Handler.IngestPlayerStatistics", "player_statistics",
		h.services.PlayerSync.SyncPlayerStatistics)
}

func (h *Handler) IngestFixtures(w http.ResponseWriter, r *http.Request) {
	h.runIngestion(w, r, "httpapi.Handler.IngestFixtures", "fixtures",
		h.services.FixtureSync.SyncFixtures)
}

func (h *Handler) IngestFixtureData(w http.ResponseWriter, r *http.Request) {
	h.runIngestion(w, r, "httpapi.Handler.IngestFixtureData", "fixture_data",
		h.services.FixtureDataSync.SyncFixtureData)
}

func (h *Handler) IngestOdds(w http.ResponseWriter, r *http.Request) {
	h.runIngestion(w, r, "httpapi.Handler.IngestOdds", "odds",
		h.services.FixtureDataSync.SyncOdds)
}

func (h *Handler) IngestPredictions(w http.ResponseWriter, r *http.Request) {
	h.runIngestion(w, r, "httpapi.Handler.IngestPredictions", "predictions",
		h.services.FixtureDataSync.SyncPredictions)
}

func (h *Handler) Resync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Resync")
	defer span.End()

	var req resyncRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	maxWorkers := req.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = h.resyncMaxWorkers
	}

	result, err := h.services.Resync.Resync(ctx, usecase.ResyncInput{
		LeagueIDs:  h.resolveLeagueIDs(req.LeagueIDs),
		SyncData:   req.SyncData,
		MaxWorkers: maxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "resync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "resync finished",
		"league_count", result.LeagueCount,
		"task_count", result.TaskCount,
		"success_count", result.SuccessCount,
		"failed_count", result.FailedCount,
		"skipped_count", result.SkippedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
