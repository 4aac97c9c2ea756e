package httpapi

import "net/http"

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := parseInt64Path(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := h.services.Team.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamResponse(t))
}

func (h *Handler) GetTeamStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStatistics")
	defer span.End()

	teamID, err := parseInt64Path(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonYear, err := parseIntQuery(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.services.Team.Statistics(ctx, teamID, seasonYear)
	if err != nil {
		h.logger.WarnContext(ctx, "get team statistics failed",
			"team_id", teamID,
			"season_year", seasonYear,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}

func (h *Handler) GetRecentForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRecentForm")
	defer span.End()

	teamID, err := parseInt64Path(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	form, err := h.services.Fixture.RecentForm(ctx, teamID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get recent form failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, form)
}

func (h *Handler) GetTopPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopPlayers")
	defer span.End()

	teamID, err := parseInt64Path(r, "teamID")
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

	players, err := h.services.Player.TopPlayers(ctx, teamID, seasonYear, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get top players failed",
			"team_id", teamID,
			"season_year", seasonYear,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, players)
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	team1ID, err := parseInt64Query(r, "team1")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	team2ID, err := parseInt64Query(r, "team2")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.services.Fixture.HeadToHead(ctx, team1ID, team2ID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get head to head failed",
			"team1_id", team1ID,
			"team2_id", team2ID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headToHeadResponse{
		Team1ID:   result.Team1ID,
		Team2ID:   result.Team2ID,
		Team1Wins: result.Team1Wins,
		Team2Wins: result.Team2Wins,
		Draws:     result.Draws,
		Matches:   toFixtureResponses(result.Matches),
	})
}
