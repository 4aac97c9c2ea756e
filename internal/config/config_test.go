package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "football-data-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "football-data-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}

func TestLoad_APIFootballConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.APIFootballBaseURL != "https://v3.football.api-sports.io" {
			t.Fatalf("unexpected default base url: %q", cfg.APIFootballBaseURL)
		}
		if cfg.APIFootballTimeout != 20*time.Second {
			t.Fatalf("unexpected default timeout: %s", cfg.APIFootballTimeout)
		}
		if cfg.APIFootballMaxRetries != 1 {
			t.Fatalf("unexpected default max retries: %d", cfg.APIFootballMaxRetries)
		}
		if !cfg.APIFootballCircuitEnabled {
			t.Fatalf("expected circuit breaker enabled by default")
		}
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("API_FOOTBALL_API_KEY", " key-123 ")
		t.Setenv("API_FOOTBALL_TIMEOUT", "15s")
		t.Setenv("API_FOOTBALL_MAX_RETRIES", "3")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.APIFootballAPIKey != "key-123" {
			t.Fatalf("unexpected api key: %q", cfg.APIFootballAPIKey)
		}
		if cfg.APIFootballTimeout != 15*time.Second {
			t.Fatalf("unexpected timeout: %s", cfg.APIFootballTimeout)
		}
		if cfg.APIFootballMaxRetries != 3 {
			t.Fatalf("unexpected max retries: %d", cfg.APIFootballMaxRetries)
		}
	})

	t.Run("invalid retries", func(t *testing.T) {
		t.Setenv("API_FOOTBALL_MAX_RETRIES", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative API_FOOTBALL_MAX_RETRIES")
		}
	})
}

func TestLoad_IngestionConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("league id list", func(t *testing.T) {
		t.Setenv("INGEST_LEAGUE_IDS", " 39, 140 ,135 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.IngestLeagueIDs) != 3 {
			t.Fatalf("unexpected league ids length: %d", len(cfg.IngestLeagueIDs))
		}
		if cfg.IngestLeagueIDs[0] != 39 || cfg.IngestLeagueIDs[1] != 140 || cfg.IngestLeagueIDs[2] != 135 {
			t.Fatalf("unexpected league ids: %+v", cfg.IngestLeagueIDs)
		}
	})

	t.Run("invalid league id", func(t *testing.T) {
		t.Setenv("INGEST_LEAGUE_IDS", "39,zero")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-numeric league id")
		}
	})

	t.Run("window defaults", func(t *testing.T) {
		t.Setenv("INGEST_LEAGUE_IDS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.IngestPageDelay != 500*time.Millisecond {
			t.Fatalf("unexpected default page delay: %s", cfg.IngestPageDelay)
		}
		if cfg.IngestPastWindow != 72*time.Hour {
			t.Fatalf("unexpected default past window: %s", cfg.IngestPastWindow)
		}
		if cfg.IngestFutureWindow != 168*time.Hour {
			t.Fatalf("unexpected default future window: %s", cfg.IngestFutureWindow)
		}
		if cfg.ResyncMaxWorkers != 4 {
			t.Fatalf("unexpected default resync workers: %d", cfg.ResyncMaxWorkers)
		}
	})

	t.Run("invalid past window", func(t *testing.T) {
		t.Setenv("INGEST_PAST_WINDOW", "0s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-positive INGEST_PAST_WINDOW")
		}
	})
}
