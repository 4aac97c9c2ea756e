package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/fixturehub/football-data/internal/platform/logging"
)

type ResyncInput struct {
	// LeagueIDs narrows the run; empty means every configured league.
	LeagueIDs  []int64
	SyncData   []string
	MaxWorkers int
}

type ResyncResult struct {
	LeagueCount   int                `json:"league_count"`
	TaskCount     int                `json:"task_count"`
	SuccessCount  int                `json:"success_count"`
	FailedCount   int                `json:"failed_count"`
	SkippedCount  int                `json:"skipped_count"`
	WorkerCount   int                `json:"worker_count"`
	Tasks         []ResyncTaskResult `json:"tasks"`
	RequestedData []string           `json:"requested_data"`
	Summary       SyncSummary        `json:"summary"`
}

type ResyncTaskResult struct {
	LeagueID   int64       `json:"league_id"`
	SyncData   string      `json:"sync_data"`
	Status     string      `json:"status"`
	Summary    SyncSummary `json:"summary"`
	DurationMs int64       `json:"duration_ms"`
	Message    string      `json:"message,omitempty"`
}

type resyncDataKind string

const (
	resyncStatusSuccess = "success"
	resyncStatusFailed  = "failed"
	resyncStatusSkipped = "skipped"

	resyncDataLeagues          resyncDataKind = "leagues"
	resyncDataTeams            resyncDataKind = "teams"
	resyncDataPlayers          resyncDataKind = "players"
	resyncDataPlayerStatistics resyncDataKind = "player_statistics"
	resyncDataFixtures         resyncDataKind = "fixtures"
	resyncDataOdds             resyncDataKind = "odds"
	resyncDataPredictions      resyncDataKind = "predictions"
	resyncDataMatchStatistics  resyncDataKind = "match_statistics"
	resyncDataMatchEvents      resyncDataKind = "match_events"
)

type resyncTask struct {
	leagueID int64
	kind     resyncDataKind
}

// ResyncService fans selected sync kinds out across leagues on a bounded
// worker pool. It exists for repair runs: a normal full ingestion goes
// through the individual sync endpoints in dependency order.
type ResyncService struct {
	leagues     *LeagueSyncService
	teams       *TeamSyncService
	players     *PlayerSyncService
	fixtures    *FixtureSyncService
	fixtureData *FixtureDataSyncService
	cfg         LeagueSyncConfig
	logger      *logging.Logger
}

func NewResyncService(
	leagues *LeagueSyncService,
	teams *TeamSyncService,
	players *PlayerSyncService,
	fixtures *FixtureSyncService,
	fixtureData *FixtureDataSyncService,
	cfg LeagueSyncConfig,
	logger *logging.Logger,
) *ResyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ResyncService{
		leagues:     leagues,
		teams:       teams,
		players:     players,
		fixtures:    fixtures,
		fixtureData: fixtureData,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *ResyncService) Resync(ctx context.Context, input ResyncInput) (ResyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResyncService.Resync")
	defer span.End()

	if s.leagues == nil || s.teams == nil || s.players == nil || s.fixtures == nil || s.fixtureData == nil {
		return ResyncResult{}, fmt.Errorf("%w: resync is not fully configured", ErrDependencyUnavailable)
	}

	kinds, rawKinds, err := normalizeResyncKinds(input.SyncData)
	if err != nil {
		return ResyncResult{}, err
	}

	leagueIDs := input.LeagueIDs
	if len(leagueIDs) == 0 {
		leagueIDs = s.cfg.LeagueIDs
	}
	if len(leagueIDs) == 0 {
		return ResyncResult{}, fmt.Errorf("%w: no league ids configured", ErrInvalidInput)
	}

	tasks := make([]resyncTask, 0, len(leagueIDs)*len(kinds))
	for _, leagueID := range leagueIDs {
		for _, kind := range kinds {
			tasks = append(tasks, resyncTask{leagueID: leagueID, kind: kind})
		}
	}

	workerCount := normalizeResyncWorkerCount(input.MaxWorkers, len(tasks))
	result := ResyncResult{
		LeagueCount:   len(leagueIDs),
		TaskCount:     len(tasks),
		WorkerCount:   workerCount,
		RequestedData: rawKinds,
		Tasks:         make([]ResyncTaskResult, 0, len(tasks)),
	}
	if len(tasks) == 0 {
		return result, nil
	}

	results := make(chan ResyncTaskResult, len(tasks))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ResyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := ResyncTaskResult{
				LeagueID: task.leagueID,
				SyncData: string(task.kind),
			}

			summary, err := s.runResyncTask(ctx, task.leagueID, task.kind)
			row.Summary = summary
			row.DurationMs = time.Since(start).Milliseconds()

			switch {
			case err != nil:
				row.Status = resyncStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			case summary.Total() == 0:
				row.Status = resyncStatusSkipped
				row.Message = "no records matched"
				skippedCount.Add(1)
			default:
				row.Status = resyncStatusSuccess
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return ResyncResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
		result.Summary.Merge(row.Summary)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].LeagueID != result.Tasks[j].LeagueID {
			return result.Tasks[i].LeagueID < result.Tasks[j].LeagueID
		}
		return result.Tasks[i].SyncData < result.Tasks[j].SyncData
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	return result, nil
}

func (s *ResyncService) runResyncTask(ctx context.Context, leagueID int64, kind resyncDataKind) (SyncSummary, error) {
	ids := []int64{leagueID}
	switch kind {
	case resyncDataLeagues:
		return s.leagues.SyncLeague(ctx, leagueID)
	case resyncDataTeams:
		return s.teams.SyncTeams(ctx, ids)
	case resyncDataPlayers:
		return s.players.SyncPlayers(ctx, ids)
	case resyncDataPlayerStatistics:
		return s.players.SyncPlayerStatistics(ctx, ids)
	case resyncDataFixtures:
		return s.fixtures.SyncFixtures(ctx, ids)
	case resyncDataOdds:
		return s.fixtureData.SyncOdds(ctx, ids)
	case resyncDataPredictions:
		return s.fixtureData.SyncPredictions(ctx, ids)
	case resyncDataMatchStatistics:
		return s.fixtureData.SyncMatchStatistics(ctx, ids)
	case resyncDataMatchEvents:
		return s.fixtureData.SyncMatchEvents(ctx, ids)
	default:
		return SyncSummary{}, fmt.Errorf("%w: unsupported sync_data=%s", ErrInvalidInput, kind)
	}
}

func normalizeResyncKinds(raw []string) ([]resyncDataKind, []string, error) {
	if len(raw) == 0 {
		return nil, nil, fmt.Errorf("%w: sync_data is required", ErrInvalidInput)
	}

	seen := make(map[resyncDataKind]struct{}, len(raw))
	kinds := make([]resyncDataKind, 0, len(raw))
	requested := make([]string, 0, len(raw))
	for _, item := range raw {
		normalized := normalizeResyncKey(item)
		if normalized == "" {
			continue
		}
		kind, ok := toResyncDataKind(normalized)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unsupported sync_data=%s", ErrInvalidInput, item)
		}
		if _, exists := seen[kind]; exists {
			continue
		}
		seen[kind] = struct{}{}
		kinds = append(kinds, kind)
		requested = append(requested, normalized)
	}
	if len(kinds) == 0 {
		return nil, nil, fmt.Errorf("%w: sync_data is required", ErrInvalidInput)
	}
	return kinds, requested, nil
}

func toResyncDataKind(value string) (resyncDataKind, bool) {
	switch value {
	case "leagues", "league", "seasons":
		return resyncDataLeagues, true
	case "teams", "team":
		return resyncDataTeams, true
	case "players", "player":
		return resyncDataPlayers, true
	case "player_statistics", "player_stats":
		return resyncDataPlayerStatistics, true
	case "fixtures", "fixture":
		return resyncDataFixtures, true
	case "odds":
		return resyncDataOdds, true
	case "predictions", "prediction":
		return resyncDataPredictions, true
	case "match_statistics", "match_stats", "statistics":
		return resyncDataMatchStatistics, true
	case "match_events", "events":
		return resyncDataMatchEvents, true
	default:
		return "", false
	}
}

func normalizeResyncKey(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, "-", "_")
	value = strings.ReplaceAll(value, " ", "_")
	return value
}

// Worker count stays small on purpose: tasks hit the provider, and its rate
// limit is the shared bottleneck.
func normalizeResyncWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > 2 {
		value = 2
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
