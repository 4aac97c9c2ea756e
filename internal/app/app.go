package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/fixturehub/football-data/external/apifootball"
	"github.com/fixturehub/football-data/internal/config"
	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/team"
	cacherepo "github.com/fixturehub/football-data/internal/infrastructure/repository/cache"
	"github.com/fixturehub/football-data/internal/infrastructure/repository/postgres"
	"github.com/fixturehub/football-data/internal/interfaces/httpapi"
	"github.com/fixturehub/football-data/internal/platform/cache"
	"github.com/fixturehub/football-data/internal/platform/logging"
	"github.com/fixturehub/football-data/internal/platform/resilience"
	"github.com/fixturehub/football-data/internal/usecase"
)

// App wires the database, provider client, services and HTTP surface.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	leagueRepo := league.Repository(postgres.NewLeagueRepository(db))
	teamRepo := team.Repository(postgres.NewTeamRepository(db))
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
		leagueRepo = cacherepo.NewLeagueRepository(leagueRepo, store)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, store)
	}

	playerRepo := postgres.NewPlayerRepository(db)
	statsRepo := postgres.NewPlayerStatsRepository(db)
	fixtureRepo := postgres.NewFixtureRepository(db)
	oddsRepo := postgres.NewOddsRepository(db)
	predictionRepo := postgres.NewPredictionRepository(db)
	matchDataRepo := postgres.NewMatchDataRepository(db)

	provider := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.APIFootballBaseURL,
		APIKey:     cfg.APIFootballAPIKey,
		Timeout:    cfg.APIFootballTimeout,
		MaxRetries: cfg.APIFootballMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
		},
	})

	leagueSyncCfg := usecase.LeagueSyncConfig{LeagueIDs: cfg.IngestLeagueIDs}
	leagueSync := usecase.NewLeagueSyncService(provider, leagueRepo, leagueSyncCfg, logger)
	teamSync := usecase.NewTeamSyncService(provider, leagueRepo, teamRepo, logger)
	playerSync := usecase.NewPlayerSyncService(
		provider,
		leagueRepo,
		teamRepo,
		playerRepo,
		statsRepo,
		usecase.PlayerSyncConfig{PageDelay: cfg.IngestPageDelay},
		logger,
	)
	fixtureSync := usecase.NewFixtureSyncService(provider, leagueRepo, teamRepo, fixtureRepo, logger)
	fixtureDataSync := usecase.NewFixtureDataSyncService(
		provider,
		leagueRepo,
		fixtureRepo,
		oddsRepo,
		predictionRepo,
		matchDataRepo,
		usecase.FixtureDataSyncConfig{
			PastWindow:   cfg.IngestPastWindow,
			FutureWindow: cfg.IngestFutureWindow,
			PageDelay:    cfg.IngestPageDelay,
		},
		logger,
	)
	resync := usecase.NewResyncService(
		leagueSync,
		teamSync,
		playerSync,
		fixtureSync,
		fixtureDataSync,
		leagueSyncCfg,
		logger,
	)

	services := httpapi.Services{
		League:     usecase.NewLeagueService(leagueRepo, teamRepo, logger),
		Team:       usecase.NewTeamService(teamRepo, fixtureRepo, statsRepo, logger),
		Player:     usecase.NewPlayerService(playerRepo, statsRepo, logger),
		Fixture:    usecase.NewFixtureService(fixtureRepo, teamRepo, oddsRepo, predictionRepo, matchDataRepo, logger),
		Standing:   usecase.NewStandingService(leagueRepo, teamRepo, fixtureRepo, store, logger),
		Prediction: usecase.NewPredictionService(leagueRepo, fixtureRepo, predictionRepo, logger),

		LeagueSync:      leagueSync,
		TeamSync:        teamSync,
		PlayerSync:      playerSync,
		FixtureSync:     fixtureSync,
		FixtureDataSync: fixtureDataSync,
		Resync:          resync,
	}

	handler := httpapi.NewHandler(services, cfg.IngestLeagueIDs, cfg.ResyncMaxWorkers, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
