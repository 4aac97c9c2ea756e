package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/fixturehub/football-data/internal/platform/logging"
	"github.com/fixturehub/football-data/internal/usecase"
)

// Services groups everything the HTTP layer calls into. Read services serve
// the public routes, sync services the token-guarded ingestion routes.
type Services struct {
	League     *usecase.LeagueService
	Team       *usecase.TeamService
	Player     *usecase.PlayerService
	Fixture    *usecase.FixtureService
	Standing   *usecase.StandingService
	Prediction *usecase.PredictionService

	LeagueSync      *usecase.LeagueSyncService
	TeamSync        *usecase.TeamSyncService
	PlayerSync      *usecase.PlayerSyncService
	FixtureSync     *usecase.FixtureSyncService
	FixtureDataSync *usecase.FixtureDataSyncService
	Resync          *usecase.ResyncService
}

type Handler struct {
	services Services
	// ingestLeagueIDs is the configured default scope for ingestion runs
	// that do not name leagues explicitly.
	ingestLeagueIDs  []int64
	resyncMaxWorkers int
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(services Services, ingestLeagueIDs []int64, resyncMaxWorkers int, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		services:         services,
		ingestLeagueIDs:  ingestLeagueIDs,
		resyncMaxWorkers: resyncMaxWorkers,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parseInt64Path(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

// parseIntQuery returns fallback when the parameter is absent or blank.
func parseIntQuery(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func parseInt64Query(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

// parseTimeQuery accepts RFC 3339 timestamps or plain dates.
func parseTimeQuery(r *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	if value, err := time.Parse(time.RFC3339, raw); err == nil {
		return &value, nil
	}
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be RFC 3339 or YYYY-MM-DD", usecase.ErrInvalidInput, name)
	}
	return &value, nil
}
