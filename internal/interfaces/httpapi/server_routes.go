package httpapi

import "net/http"

func registerRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.HandleFunc("GET /healthz", handler.Healthz)

	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListLeagueTeams)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.GetStandings)

	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/statistics", handler.GetTeamStatistics)
	mux.HandleFunc("GET /v1/teams/{teamID}/form", handler.GetRecentForm)
	mux.HandleFunc("GET /v1/teams/{teamID}/topplayers", handler.GetTopPlayers)
	mux.HandleFunc("GET /v1/head-to-head", handler.GetHeadToHead)

	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}", handler.GetFixture)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/odds", handler.GetFixtureOdds)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/predictions", handler.GetFixturePrediction)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/statistics", handler.GetFixtureStatistics)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/events", handler.GetFixtureEvents)
	mux.HandleFunc("GET /v1/bookmakers", handler.ListBookmakers)

	mux.HandleFunc("GET /v1/players/rankings", handler.GetPlayerRankings)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)

	mux.HandleFunc("GET /v1/predictions/accuracy", handler.GetPredictionAccuracy)

	ingestion := http.NewServeMux()
	ingestion.HandleFunc("POST /v1/internal/ingestion/leagues", handler.IngestLeagues)
	ingestion.HandleFunc("POST /v1/internal/ingestion/teams", handler.IngestTeams)
	ingestion.HandleFunc("POST /v1/internal/ingestion/players", handler.IngestPlayers)
	ingestion.HandleFunc("POST /v1/internal/ingestion/player-statistics", handler.IngestPlayerStatistics)
	ingestion.HandleFunc("POST /v1/internal/ingestion/fixtures", handler.IngestFixtures)
	ingestion.HandleFunc("POST /v1/internal/ingestion/fixture-data", handler.IngestFixtureData)
	ingestion.HandleFunc("POST /v1/internal/ingestion/odds", handler.IngestOdds)
	ingestion.HandleFunc("POST /v1/internal/ingestion/predictions", handler.IngestPredictions)
	ingestion.HandleFunc("POST /v1/internal/ingestion/resync", handler.Resync)
	mux.Handle("/v1/internal/ingestion/", RequireInternalJobToken(internalJobToken, ingestion))
}
