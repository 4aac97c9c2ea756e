package httpapi

import "net/http"

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.services.League.ListLeagues(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]leagueResponse, 0, len(leagues))
	for _, l := range leagues {
		out = append(out, toLeagueResponse(l))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID, err := parseInt64Path(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.services.League.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := leagueDetailsResponse{
		League:  toLeagueResponse(details.League),
		Seasons: make([]seasonResponse, 0, len(details.Seasons)),
	}
	for _, s := range details.Seasons {
		out.Seasons = append(out.Seasons, toSeasonResponse(s))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListLeagueTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueTeams")
	defer span.End()

	leagueID, err := parseInt64Path(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonYear, err := parseIntQuery(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.services.League.ListTeams(ctx, leagueID, seasonYear)
	if err != nil {
		h.logger.WarnContext(ctx, "list league teams failed",
			"league_id", leagueID,
			"season_year", seasonYear,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, toTeamResponse(t))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	leagueID, err := parseInt64Path(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonYear, err := parseIntQuery(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.services.Standing.Standings(ctx, leagueID, seasonYear)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed",
			"league_id", leagueID,
			"season_year", seasonYear,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}
