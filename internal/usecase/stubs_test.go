package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/matchdata"
	"github.com/fixturehub/football-data/internal/domain/odds"
	"github.com/fixturehub/football-data/internal/domain/player"
	"github.com/fixturehub/football-data/internal/domain/playerstats"
	"github.com/fixturehub/football-data/internal/domain/prediction"
	"github.com/fixturehub/football-data/internal/domain/team"
)

var errDuplicateKey = errors.New("duplicate key value violates unique constraint")

func intPtr(v int) *int             { return &v }
func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

// stubProvider lets each test wire only the fetches it exercises; everything
// else reports nothing available.
type stubProvider struct {
	fetchLeague            func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error)
	fetchTeams             func(ctx context.Context, leagueID int64, seasonYear int) ([]ExternalTeam, error)
	fetchPlayersPage       func(ctx context.Context, teamID int64, seasonYear, page int) ([]ExternalPlayer, Paging, error)
	fetchFixtures          func(ctx context.Context, leagueID int64, seasonYear int) ([]ExternalFixture, error)
	fetchOddsPage          func(ctx context.Context, leagueID int64, seasonYear, page int) ([]ExternalFixtureOdds, Paging, error)
	fetchPrediction        func(ctx context.Context, fixtureID int64) (ExternalPrediction, bool, error)
	fetchFixtureStatistics func(ctx context.Context, fixtureID int64) ([]ExternalTeamStatistics, error)
	fetchFixtureEvents     func(ctx context.Context, fixtureID int64) ([]ExternalFixtureEvent, error)
}

func (p *stubProvider) FetchLeague(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
	if p.fetchLeague == nil {
		return ExternalLeague{}, false, nil
	}
	return p.fetchLeague(ctx, leagueID)
}

func (p *stubProvider) FetchTeams(ctx context.Context, leagueID int64, seasonYear int) ([]ExternalTeam, error) {
	if p.fetchTeams == nil {
		return nil, nil
	}
	return p.fetchTeams(ctx, leagueID, seasonYear)
}

func (p *stubProvider) FetchPlayersPage(ctx context.Context, teamID int64, seasonYear, page int) ([]ExternalPlayer, Paging, error) {
	if p.fetchPlayersPage == nil {
		return nil, Paging{}, nil
	}
	return p.fetchPlayersPage(ctx, teamID, seasonYear, page)
}

func (p *stubProvider) FetchFixtures(ctx context.Context, leagueID int64, seasonYear int) ([]ExternalFixture, error) {
	if p.fetchFixtures == nil {
		return nil, nil
	}
	return p.fetchFixtures(ctx, leagueID, seasonYear)
}

func (p *stubProvider) FetchOddsPage(ctx context.Context, leagueID int64, seasonYear, page int) ([]ExternalFixtureOdds, Paging, error) {
	if p.fetchOddsPage == nil {
		return nil, Paging{}, nil
	}
	return p.fetchOddsPage(ctx, leagueID, seasonYear, page)
}

func (p *stubProvider) FetchPrediction(ctx context.Context, fixtureID int64) (ExternalPrediction, bool, error) {
	if p.fetchPrediction == nil {
		return ExternalPrediction{}, false, nil
	}
	return p.fetchPrediction(ctx, fixtureID)
}

func (p *stubProvider) FetchFixtureStatistics(ctx context.Context, fixtureID int64) ([]ExternalTeamStatistics, error) {
	if p.fetchFixtureStatistics == nil {
		return nil, nil
	}
	return p.fetchFixtureStatistics(ctx, fixtureID)
}

func (p *stubProvider) FetchFixtureEvents(ctx context.Context, fixtureID int64) ([]ExternalFixtureEvent, error) {
	if p.fetchFixtureEvents == nil {
		return nil, nil
	}
	return p.fetchFixtureEvents(ctx, fixtureID)
}

type memLeagueRepo struct {
	leagues map[int64]league.League
	seasons map[string]league.Season

	leagueInserts int
	leagueUpdates int
	seasonInserts int
	seasonUpdates int

	beforeInsertLeague func(l league.League) error
	beforeInsertSeason func(s league.Season) error
}

func newMemLeagueRepo() *memLeagueRepo {
	return &memLeagueRepo{
		leagues: make(map[int64]league.League),
		seasons: make(map[string]league.Season),
	}
}

func seasonKey(leagueID int64, year int) string {
	return fmt.Sprintf("%d:%d", leagueID, year)
}

func (r *memLeagueRepo) ListLeagues(ctx context.Context) ([]league.League, error) {
	out := make([]league.League, 0, len(r.leagues))
	for _, l := range r.leagues {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memLeagueRepo) GetLeagueByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	l, ok := r.leagues[leagueID]
	return l, ok, nil
}

func (r *memLeagueRepo) InsertLeague(ctx context.Context, l league.League) error {
	if r.beforeInsertLeague != nil {
		if err := r.beforeInsertLeague(l); err != nil {
			return err
		}
	}
	if _, ok := r.leagues[l.ID]; ok {
		return errDuplicateKey
	}
	r.leagueInserts++
	r.leagues[l.ID] = l
	return nil
}

func (r *memLeagueRepo) UpdateLeague(ctx context.Context, l league.League) error {
	r.leagueUpdates++
	r.leagues[l.ID] = l
	return nil
}

func (r *memLeagueRepo) ListSeasonsByLeague(ctx context.Context, leagueID int64) ([]league.Season, error) {
	out := make([]league.Season, 0)
	for _, s := range r.seasons {
		if s.LeagueID == leagueID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func (r *memLeagueRepo) GetSeasonByLeagueAndYear(ctx context.Context, leagueID int64, year int) (league.Season, bool, error) {
	s, ok := r.seasons[seasonKey(leagueID, year)]
	return s, ok, nil
}

func (r *memLeagueRepo) GetCurrentSeason(ctx context.Context, leagueID int64) (league.Season, bool, error) {
	for _, s := range r.seasons {
		if s.LeagueID == leagueID && s.Current {
			return s, true, nil
		}
	}
	return league.Season{}, false, nil
}

func (r *memLeagueRepo) InsertSeason(ctx context.Context, s league.Season) error {
	if r.beforeInsertSeason != nil {
		if err := r.beforeInsertSeason(s); err != nil {
			return err
		}
	}
	if _, ok := r.seasons[seasonKey(s.LeagueID, s.Year)]; ok {
		return errDuplicateKey
	}
	r.seasonInserts++
	r.storeSeason(s)
	return nil
}

func (r *memLeagueRepo) UpdateSeason(ctx context.Context, s league.Season) error {
	r.seasonUpdates++
	r.storeSeason(s)
	return nil
}

// storeSeason mirrors the Postgres repository's single-current guarantee.
func (r *memLeagueRepo) storeSeason(s league.Season) {
	if s.Current {
		for key, other := range r.seasons {
			if other.LeagueID == s.LeagueID && other.Year != s.Year && other.Current {
				other.Current = false
				r.seasons[key] = other
			}
		}
	}
	r.seasons[seasonKey(s.LeagueID, s.Year)] = s
}

func (r *memLeagueRepo) currentSeasonCount(leagueID int64) int {
	count := 0
	for _, s := range r.seasons {
		if s.LeagueID == leagueID && s.Current {
			count++
		}
	}
	return count
}

// seedCurrentSeason installs a league with one current season, the baseline
// state every downstream sync depends on.
func (r *memLeagueRepo) seedCurrentSeason(leagueID int64, year int) {
	r.leagues[leagueID] = league.League{ID: leagueID, Name: fmt.Sprintf("League %d", leagueID)}
	r.storeSeason(league.Season{LeagueID: leagueID, Year: year, Current: true})
}

type memTeamRepo struct {
	teams map[int64]team.Team
	links map[string]team.SeasonLink

	teamInserts int
	teamUpdates int
	linkInserts int

	beforeInsertTeam func(t team.Team) error
	beforeInsertLink func(l team.SeasonLink) error
}

func newMemTeamRepo() *memTeamRepo {
	return &memTeamRepo{
		teams: make(map[int64]team.Team),
		links: make(map[string]team.SeasonLink),
	}
}

func linkKey(teamID, leagueID int64, seasonYear int) string {
	return fmt.Sprintf("%d:%d:%d", teamID, leagueID, seasonYear)
}

func (r *memTeamRepo) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	t, ok := r.teams[teamID]
	return t, ok, nil
}

func (r *memTeamRepo) Insert(ctx context.Context, t team.Team) error {
	if r.beforeInsertTeam != nil {
		if err := r.beforeInsertTeam(t); err != nil {
			return err
		}
	}
	if _, ok := r.teams[t.ID]; ok {
		return errDuplicateKey
	}
	r.teamInserts++
	r.teams[t.ID] = t
	return nil
}

func (r *memTeamRepo) Update(ctx context.Context, t team.Team) error {
	r.teamUpdates++
	r.teams[t.ID] = t
	return nil
}

func (r *memTeamRepo) ListByLeagueSeason(ctx context.Context, leagueID int64, seasonYear int) ([]team.Team, error) {
	out := make([]team.Team, 0)
	for _, link := range r.links {
		if link.LeagueID != leagueID || link.SeasonYear != seasonYear {
			continue
		}
		if t, ok := r.teams[link.TeamID]; ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTeamRepo) GetSeasonLink(ctx context.Context, teamID, leagueID int64, seasonYear int) (team.SeasonLink, bool, error) {
	l, ok := r.links[linkKey(teamID, leagueID, seasonYear)]
	return l, ok, nil
}

func (r *memTeamRepo) InsertSeasonLink(ctx context.Context, l team.SeasonLink) error {
	if r.beforeInsertLink != nil {
		if err := r.beforeInsertLink(l); err != nil {
			return err
		}
	}
	key := linkKey(l.TeamID, l.LeagueID, l.SeasonYear)
	if _, ok := r.links[key]; ok {
		return errDuplicateKey
	}
	r.linkInserts++
	r.links[key] = l
	return nil
}

func (r *memTeamRepo) ListSeasonLinksByLeague(ctx context.Context, leagueID int64, seasonYear int) ([]team.SeasonLink, error) {
	out := make([]team.SeasonLink, 0)
	for _, l := range r.links {
		if l.LeagueID == leagueID && l.SeasonYear == seasonYear {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

// seedTeam stores a team and links it to the league season.
func (r *memTeamRepo) seedTeam(t team.Team, leagueID int64, seasonYear int) {
	r.teams[t.ID] = t
	r.links[linkKey(t.ID, leagueID, seasonYear)] = team.SeasonLink{
		TeamID:     t.ID,
		LeagueID:   leagueID,
		SeasonYear: seasonYear,
	}
}

type memPlayerRepo struct {
	players map[string]player.Player

	inserts int
	updates int

	beforeInsert func(p player.Player) error
}

func newMemPlayerRepo() *memPlayerRepo {
	return &memPlayerRepo{players: make(map[string]player.Player)}
}

func playerKey(playerID int64, seasonYear int) string {
	return fmt.Sprintf("%d:%d", playerID, seasonYear)
}

func (r *memPlayerRepo) GetByIDAndSeason(ctx context.Context, playerID int64, seasonYear int) (player.Player, bool, error) {
	p, ok := r.players[playerKey(playerID, seasonYear)]
	return p, ok, nil
}

func (r *memPlayerRepo) Insert(ctx context.Context, p player.Player) error {
	if r.beforeInsert != nil {
		if err := r.beforeInsert(p); err != nil {
			return err
		}
	}
	key := playerKey(p.ID, p.SeasonYear)
	if _, ok := r.players[key]; ok {
		return errDuplicateKey
	}
	r.inserts++
	r.players[key] = p
	return nil
}

func (r *memPlayerRepo) Update(ctx context.Context, p player.Player) error {
	r.updates++
	r.players[playerKey(p.ID, p.SeasonYear)] = p
	return nil
}

func (r *memPlayerRepo) ListByTeamSeason(ctx context.Context, teamID int64, seasonYear int) ([]player.Player, error) {
	out := make([]player.Player, 0)
	for _, p := range r.players {
		if p.TeamID == teamID && p.SeasonYear == seasonYear {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPlayerRepo) ListBySeason(ctx context.Context, seasonYear int) ([]player.Player, error) {
	out := make([]player.Player, 0)
	for _, p := range r.players {
		if p.SeasonYear == seasonYear {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memStatsRepo struct {
	rows map[string]playerstats.Statistics

	inserts int
	updates int
}

func newMemStatsRepo() *memStatsRepo {
	return &memStatsRepo{rows: make(map[string]playerstats.Statistics)}
}

func statsKey(playerID, teamID, leagueID int64, seasonYear int) string {
	return fmt.Sprintf("%d:%d:%d:%d", playerID, teamID, leagueID, seasonYear)
}

func (r *memStatsRepo) GetByNaturalKey(ctx context.Context, playerID, teamID, leagueID int64, seasonYear int) (playerstats.Statistics, bool, error) {
	s, ok := r.rows[statsKey(playerID, teamID, leagueID, seasonYear)]
	return s, ok, nil
}

func (r *memStatsRepo) Insert(ctx context.Context, s playerstats.Statistics) error {
	key := statsKey(s.PlayerID, s.TeamID, s.LeagueID, s.SeasonYear)
	if _, ok := r.rows[key]; ok {
		return errDuplicateKey
	}
	r.inserts++
	r.rows[key] = s
	return nil
}

func (r *memStatsRepo) Update(ctx context.Context, s playerstats.Statistics) error {
	r.updates++
	r.rows[statsKey(s.PlayerID, s.TeamID, s.LeagueID, s.SeasonYear)] = s
	return nil
}

func (r *memStatsRepo) ListByPlayerSeason(ctx context.Context, playerID int64, seasonYear int) ([]playerstats.Statistics, error) {
	return r.list(func(s playerstats.Statistics) bool {
		return s.PlayerID == playerID && s.SeasonYear == seasonYear
	}), nil
}

func (r *memStatsRepo) ListByTeamSeason(ctx context.Context, teamID int64, seasonYear int) ([]playerstats.Statistics, error) {
	return r.list(func(s playerstats.Statistics) bool {
		return s.TeamID == teamID && s.SeasonYear == seasonYear
	}), nil
}

func (r *memStatsRepo) ListByLeagueSeason(ctx context.Context, leagueID int64, seasonYear int) ([]playerstats.Statistics, error) {
	return r.list(func(s playerstats.Statistics) bool {
		return s.LeagueID == leagueID && s.SeasonYear == seasonYear
	}), nil
}

func (r *memStatsRepo) list(match func(playerstats.Statistics) bool) []playerstats.Statistics {
	out := make([]playerstats.Statistics, 0)
	for _, s := range r.rows {
		if match(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

type memFixtureRepo struct {
	fixtures map[int64]fixture.Fixture
	venues   map[int64]fixture.Venue

	fixtureInserts int
	fixtureUpdates int
	venueInserts   int

	beforeInsertVenue func(v fixture.Venue) error
}

func newMemFixtureRepo() *memFixtureRepo {
	return &memFixtureRepo{
		fixtures: make(map[int64]fixture.Fixture),
		venues:   make(map[int64]fixture.Venue),
	}
}

func (r *memFixtureRepo) GetByID(ctx context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	f, ok := r.fixtures[fixtureID]
	return f, ok, nil
}

func (r *memFixtureRepo) Insert(ctx context.Context, f fixture.Fixture) error {
	if _, ok := r.fixtures[f.ID]; ok {
		return errDuplicateKey
	}
	r.fixtureInserts++
	r.fixtures[f.ID] = f
	return nil
}

func (r *memFixtureRepo) Update(ctx context.Context, f fixture.Fixture) error {
	r.fixtureUpdates++
	r.fixtures[f.ID] = f
	return nil
}

func (r *memFixtureRepo) List(ctx context.Context, filter fixture.ListFilter) ([]fixture.Fixture, error) {
	out := make([]fixture.Fixture, 0)
	for _, f := range r.fixtures {
		if filter.LeagueID > 0 && f.LeagueID != filter.LeagueID {
			continue
		}
		if filter.SeasonYear > 0 && f.SeasonYear != filter.SeasonYear {
			continue
		}
		if filter.TeamID > 0 && f.HomeTeamID != filter.TeamID && f.AwayTeamID != filter.TeamID {
			continue
		}
		if filter.Status != "" && f.StatusShort != filter.Status {
			continue
		}
		if filter.From != nil && f.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && f.Date.After(*filter.To) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *memFixtureRepo) ListHeadToHead(ctx context.Context, teamID1, teamID2 int64, limit int) ([]fixture.Fixture, error) {
	out := r.settledNewestFirst(func(f fixture.Fixture) bool {
		return (f.HomeTeamID == teamID1 && f.AwayTeamID == teamID2) ||
			(f.HomeTeamID == teamID2 && f.AwayTeamID == teamID1)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memFixtureRepo) ListRecentByTeam(ctx context.Context, teamID int64, limit int) ([]fixture.Fixture, error) {
	out := r.settledNewestFirst(func(f fixture.Fixture) bool {
		return f.HomeTeamID == teamID || f.AwayTeamID == teamID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memFixtureRepo) settledNewestFirst(match func(fixture.Fixture) bool) []fixture.Fixture {
	out := make([]fixture.Fixture, 0)
	for _, f := range r.fixtures {
		if f.IsFinal && match(f) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *memFixtureRepo) GetVenueByID(ctx context.Context, venueID int64) (fixture.Venue, bool, error) {
	v, ok := r.venues[venueID]
	return v, ok, nil
}

func (r *memFixtureRepo) InsertVenue(ctx context.Context, v fixture.Venue) error {
	if r.beforeInsertVenue != nil {
		if err := r.beforeInsertVenue(v); err != nil {
			return err
		}
	}
	if _, ok := r.venues[v.ID]; ok {
		return errDuplicateKey
	}
	r.venueInserts++
	r.venues[v.ID] = v
	return nil
}

func (r *memFixtureRepo) UpdateVenue(ctx context.Context, v fixture.Venue) error {
	r.venues[v.ID] = v
	return nil
}

type memOddsRepo struct {
	trees      map[int64]odds.FixtureOdds
	bookmakers map[int64]odds.Bookmaker
	betTypes   map[int64]odds.BetType

	replaceCalls int
}

func newMemOddsRepo() *memOddsRepo {
	return &memOddsRepo{
		trees:      make(map[int64]odds.FixtureOdds),
		bookmakers: make(map[int64]odds.Bookmaker),
		betTypes:   make(map[int64]odds.BetType),
	}
}

func (r *memOddsRepo) Replace(ctx context.Context, o odds.FixtureOdds) error {
	r.replaceCalls++
	for _, bm := range o.Bookmakers {
		r.bookmakers[bm.BookmakerID] = odds.Bookmaker{ID: bm.BookmakerID, Name: bm.BookmakerName}
		for _, bet := range bm.Bets {
			r.betTypes[bet.BetTypeID] = odds.BetType{ID: bet.BetTypeID, Name: bet.BetTypeName}
		}
	}
	r.trees[o.FixtureID] = o
	return nil
}

func (r *memOddsRepo) GetByFixture(ctx context.Context, fixtureID int64) (odds.FixtureOdds, bool, error) {
	o, ok := r.trees[fixtureID]
	return o, ok, nil
}

func (r *memOddsRepo) ListBookmakers(ctx context.Context) ([]odds.Bookmaker, error) {
	out := make([]odds.Bookmaker, 0, len(r.bookmakers))
	for _, bm := range r.bookmakers {
		out = append(out, bm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOddsRepo) ListBetTypes(ctx context.Context) ([]odds.BetType, error) {
	out := make([]odds.BetType, 0, len(r.betTypes))
	for _, bt := range r.betTypes {
		out = append(out, bt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memPredictionRepo struct {
	byFixture map[int64]prediction.Prediction

	inserts int
	updates int

	beforeInsert func(p prediction.Prediction) error
}

func newMemPredictionRepo() *memPredictionRepo {
	return &memPredictionRepo{byFixture: make(map[int64]prediction.Prediction)}
}

func (r *memPredictionRepo) GetByFixture(ctx context.Context, fixtureID int64) (prediction.Prediction, bool, error) {
	p, ok := r.byFixture[fixtureID]
	return p, ok, nil
}

func (r *memPredictionRepo) Insert(ctx context.Context, p prediction.Prediction) error {
	if r.beforeInsert != nil {
		if err := r.beforeInsert(p); err != nil {
			return err
		}
	}
	if _, ok := r.byFixture[p.FixtureID]; ok {
		return errDuplicateKey
	}
	r.inserts++
	r.byFixture[p.FixtureID] = p
	return nil
}

func (r *memPredictionRepo) Update(ctx context.Context, p prediction.Prediction) error {
	r.updates++
	r.byFixture[p.FixtureID] = p
	return nil
}

func (r *memPredictionRepo) ListByFixtureIDs(ctx context.Context, fixtureIDs []int64) ([]prediction.Prediction, error) {
	out := make([]prediction.Prediction, 0)
	for _, id := range fixtureIDs {
		if p, ok := r.byFixture[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type memMatchDataRepo struct {
	stats  map[int64][]matchdata.TeamStatistics
	events map[int64][]matchdata.Event

	statsReplaces  int
	eventsReplaces int
}

func newMemMatchDataRepo() *memMatchDataRepo {
	return &memMatchDataRepo{
		stats:  make(map[int64][]matchdata.TeamStatistics),
		events: make(map[int64][]matchdata.Event),
	}
}

func (r *memMatchDataRepo) ReplaceStatistics(ctx context.Context, fixtureID int64, stats []matchdata.TeamStatistics) error {
	r.statsReplaces++
	r.stats[fixtureID] = stats
	return nil
}

func (r *memMatchDataRepo) ListStatisticsByFixture(ctx context.Context, fixtureID int64) ([]matchdata.TeamStatistics, error) {
	return r.stats[fixtureID], nil
}

func (r *memMatchDataRepo) ReplaceEvents(ctx context.Context, fixtureID int64, events []matchdata.Event) error {
	r.eventsReplaces++
	r.events[fixtureID] = events
	return nil
}

func (r *memMatchDataRepo) ListEventsByFixture(ctx context.Context, fixtureID int64) ([]matchdata.Event, error) {
	return r.events[fixtureID], nil
}
