package httpapi

import (
	"net/http"
	"strings"

	"github.com/fixturehub/football-data/internal/domain/fixture"
)

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	leagueID, err := parseInt64Query(r, "league")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := parseInt64Query(r, "team")
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
	from, err := parseTimeQuery(r, "from")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	to, err := parseTimeQuery(r, "to")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := fixture.ListFilter{
		LeagueID:   leagueID,
		SeasonYear: seasonYear,
		TeamID:     teamID,
		Status:     strings.TrimSpace(r.URL.Query().Get("status")),
		From:       from,
		To:         to,
		Limit:      limit,
	}

	fixtures, err := h.services.Fixture.ListFixtures(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toFixtureResponses(fixtures))
}

func (h *Handler) GetFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixture")
	defer span.End()

	fixtureID, err := parseInt64Path(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.services.Fixture.GetFixture(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := fixtureDetailsResponse{
		Fixture:    toFixtureResponse(details.Fixture),
		Statistics: toFixtureTeamStatsResponses(details.Statistics),
		Events:     toFixtureEventResponses(details.Events),
	}
	if details.Odds != nil {
		odds := toFixtureOddsResponse(*details.Odds)
		out.Odds = &odds
	}
	if details.Prediction != nil {
		pred := toPredictionResponse(*details.Prediction)
		out.Prediction = &pred
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetFixtureOdds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureOdds")
	defer span.End()

	fixtureID, err := parseInt64Path(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tree, err := h.services.Fixture.FixtureOdds(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture odds failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toFixtureOddsResponse(tree))
}

func (h *Handler) GetFixturePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixturePrediction")
	defer span.End()

	fixtureID, err := parseInt64Path(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	pred, err := h.services.Fixture.FixturePrediction(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture prediction failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPredictionResponse(pred))
}

func (h *Handler) GetFixtureStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureStatistics")
	defer span.End()

	fixtureID, err := parseInt64Path(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.services.Fixture.FixtureStatistics(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture statistics failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toFixtureTeamStatsResponses(rows))
}

func (h *Handler) GetFixtureEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureEvents")
	defer span.End()

	fixtureID, err := parseInt64Path(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.services.Fixture.FixtureEvents(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture events failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toFixtureEventResponses(events))
}

func (h *Handler) ListBookmakers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBookmakers")
	defer span.End()

	bookmakers, err := h.services.Fixture.ListBookmakers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list bookmakers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]bookmakerResponse, 0, len(bookmakers))
	for _, b := range bookmakers {
		out = append(out, bookmakerResponse{ID: b.ID, Name: b.Name})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
