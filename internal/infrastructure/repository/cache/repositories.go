// Package cache decorates the Postgres repositories with a TTL store for the
// read-heavy lookups. Writes pass through and invalidate the affected keys,
// so ingestion keeps the cache honest without coordinating with readers.
// Natural-key point lookups used by the reconciliation loop are never cached:
// the loop must see rows written by a concurrent syncer between its first
// lookup and its post-conflict re-read.
package cache

import (
	"context"
	"strconv"

	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/team"
	basecache "github.com/fixturehub/football-data/internal/platform/cache"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) ListLeagues(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, "league:list", func(ctx context.Context) (any, error) {
		items, err := r.next.ListLeagues(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

// GetLeagueByID feeds the reconciliation loop, which re-reads after a lost
// insert race and must see the concurrent writer's row. It stays uncached:
// a cached miss would turn that race into a failure.
func (r *LeagueRepository) GetLeagueByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	return r.next.GetLeagueByID(ctx, leagueID)
}

func (r *LeagueRepository) InsertLeague(ctx context.Context, l league.League) error {
	if err := r.next.InsertLeague(ctx, l); err != nil {
		return err
	}
	r.invalidateLeague(ctx, l.ID)
	return nil
}

func (r *LeagueRepository) UpdateLeague(ctx context.Context, l league.League) error {
	if err := r.next.UpdateLeague(ctx, l); err != nil {
		return err
	}
	r.invalidateLeague(ctx, l.ID)
	return nil
}

func (r *LeagueRepository) ListSeasonsByLeague(ctx context.Context, leagueID int64) ([]league.Season, error) {
	key := "league:seasons:" + strconv.FormatInt(leagueID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListSeasonsByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]league.Season(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.Season)
	return append([]league.Season(nil), items...), nil
}

// GetSeasonByLeagueAndYear feeds the reconciliation loop, which must see its
// own writes. It stays uncached.
func (r *LeagueRepository) GetSeasonByLeagueAndYear(ctx context.Context, leagueID int64, year int) (league.Season, bool, error) {
	return r.next.GetSeasonByLeagueAndYear(ctx, leagueID, year)
}

func (r *LeagueRepository) GetCurrentSeason(ctx context.Context, leagueID int64) (league.Season, bool, error) {
	key := "league:current:" + strconv.FormatInt(leagueID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetCurrentSeason(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedSeason{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.Season{}, false, err
	}

	cached, _ := v.(cachedSeason)
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) InsertSeason(ctx context.Context, s league.Season) error {
	if err := r.next.InsertSeason(ctx, s); err != nil {
		return err
	}
	r.invalidateSeasons(ctx, s.LeagueID)
	return nil
}

func (r *LeagueRepository) UpdateSeason(ctx context.Context, s league.Season) error {
	if err := r.next.UpdateSeason(ctx, s); err != nil {
		return err
	}
	r.invalidateSeasons(ctx, s.LeagueID)
	return nil
}

func (r *LeagueRepository) invalidateLeague(ctx context.Context, _ int64) {
	r.cache.Delete(ctx, "league:list")
}

func (r *LeagueRepository) invalidateSeasons(ctx context.Context, leagueID int64) {
	id := strconv.FormatInt(leagueID, 10)
	r.cache.Delete(ctx, "league:seasons:"+id)
	r.cache.Delete(ctx, "league:current:"+id)
}

type cachedSeason struct {
	value  league.Season
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

// GetByID feeds the reconciliation loop, which re-reads after a lost insert
// race and must see the concurrent writer's row. It stays uncached.
func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return r.next.GetByID(ctx, teamID)
}

func (r *TeamRepository) Insert(ctx context.Context, t team.Team) error {
	if err := r.next.Insert(ctx, t); err != nil {
		return err
	}
	r.invalidateTeam(ctx, t.ID)
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	if err := r.next.Update(ctx, t); err != nil {
		return err
	}
	r.invalidateTeam(ctx, t.ID)
	return nil
}

func (r *TeamRepository) ListByLeagueSeason(ctx context.Context, leagueID int64, seasonYear int) ([]team.Team, error) {
	key := "team:list:" + strconv.FormatInt(leagueID, 10) + ":" + strconv.Itoa(seasonYear)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeagueSeason(ctx, leagueID, seasonYear)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

// Season links are only touched on the ingestion path and stay uncached.
func (r *TeamRepository) GetSeasonLink(ctx context.Context, teamID, leagueID int64, seasonYear int) (team.SeasonLink, bool, error) {
	return r.next.GetSeasonLink(ctx, teamID, leagueID, seasonYear)
}

func (r *TeamRepository) InsertSeasonLink(ctx context.Context, l team.SeasonLink) error {
	if err := r.next.InsertSeasonLink(ctx, l); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:list:"+strconv.FormatInt(l.LeagueID, 10)+":")
	return nil
}

func (r *TeamRepository) ListSeasonLinksByLeague(ctx context.Context, leagueID int64, seasonYear int) ([]team.SeasonLink, error) {
	return r.next.ListSeasonLinksByLeague(ctx, leagueID, seasonYear)
}

func (r *TeamRepository) invalidateTeam(ctx context.Context, _ int64) {
	r.cache.DeletePrefix(ctx, "team:list:")
}
