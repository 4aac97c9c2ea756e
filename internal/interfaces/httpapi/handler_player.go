package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/fixturehub/football-data/internal/usecase"
)

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := parseInt64Path(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonYear, err := parseIntQuery(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.services.Player.GetPlayer(ctx, playerID, seasonYear)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed",
			"player_id", playerID,
			"season_year", seasonYear,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerWithStatisticsResponse(result))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	teamID, err := parseInt64Query(r, "team")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if teamID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: team is required", usecase.ErrInvalidInput))
		return
	}
	seasonYear, err := parseIntQuery(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.services.Player.ListPlayers(ctx, teamID, seasonYear)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed",
			"team_id", teamID,
			"season_year", seasonYear,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerResponse, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayerResponse(p))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayerRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRankings")
	defer span.End()

	leagueID, err := parseInt64Query(r, "league")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonYear, err := parseIntQuery(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	stat := strings.TrimSpace(r.URL.Query().Get("stat"))

	rankings, err := h.services.Player.Rankings(ctx, leagueID, seasonYear, stat, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get player rankings failed",
			"league_id", leagueID,
			"season_year", seasonYear,
			"stat", stat,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankings)
}

func (h *Handler) GetPredictionAccuracy(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPredictionAccuracy")
	defer span.End()

	leagueID, err := parseInt64Query(r, "league")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonYear, err := parseIntQuery(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	accuracy, err := h.services.Prediction.Accuracy(ctx, leagueID, seasonYear)
	if err != nil {
		h.logger.WarnContext(ctx, "get prediction accuracy failed",
			"league_id", leagueID,
			"season_year", seasonYear,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, accuracy)
}
