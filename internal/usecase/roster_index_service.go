package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/portalwatch/portal-api/internal/domain/roster"
	"github.com/portalwatch/portal-api/internal/domain/team"
	"github.com/portalwatch/portal-api/internal/platform/cache"
	"github.com/portalwatch/portal-api/internal/platform/logging"
	"github.com/portalwatch/portal-api/internal/platform/ratelimit"
)

// RosterIndexService fetches and indexes rosters for the teams a transfer
// batch references. Rosters are cached per (team, year); the rate limiter
// paces only actual upstream fetches, never cache hits.
type RosterIndexService struct {
	provider StatsProvider
	limiter  ratelimit.Limiter
	store    *cache.Store
	logger   *logging.Logger
}

func NewRosterIndexService(provider StatsProvider, limiter ratelimit.Limiter, store *cache.Store, logger *logging.Logger) *RosterIndexService {
	if logger == nil {
		logger = logging.Default()
	}
	if limiter == nil {
		limiter = ratelimit.Unlimited()
	}
	return &RosterIndexService{
		provider: provider,
		limiter:  limiter,
		store:    store,
		logger:   logger,
	}
}

// BuildIndex maps each canonical team to its roster. A team whose fetch
// fails gets an empty roster; one bad team never aborts the batch.
func (s *RosterIndexService) BuildIndex(ctx context.Context, teams []string, year int) (map[string][]roster.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "RosterIndexService.BuildIndex")
	defer span.End()

	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	index := make(map[string][]roster.Member, len(teams))
	for _, name := range teams {
		if _, ok := index[name]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		members, err := s.rosterFor(ctx, name, year)
		if err != nil {
			s.logger.WarnContext(ctx, "roster fetch failed, indexing empty roster",
				"team", name,
				"year", year,
				"error", err,
			)
			members = nil
		}
		index[name] = members
	}
	return index, nil
}

// GetRoster returns one canonical team's roster sorted by position group.
// Unknown teams are an error; the roster year falls back to the previous
// season when the requested one is empty.
func (s *RosterIndexService) GetRoster(ctx context.Context, teamName string, year int) ([]roster.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "RosterIndexService.GetRoster")
	defer span.End()

	canonical := team.Normalize(teamName)
	if !team.IsKnown(canonical) {
		return nil, fmt.Errorf("%w: team %q", ErrNotFound, teamName)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	members, err := s.rosterFor(ctx, canonical, year)
	if err != nil {
		return nil, fmt.Errorf("%w: roster for %s: %v", ErrUpstreamFailure, canonical, err)
	}

	sorted := make([]roster.Member, len(members))
	copy(sorted, members)
	roster.SortByPosition(sorted)
	return sorted, nil
}

func (s *RosterIndexService) rosterFor(ctx context.Context, canonical string, year int) ([]roster.Member, error) {
	key := "roster:" + canonical + ":" + strconv.Itoa(year)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		members, err := s.provider.FetchRoster(ctx, canonical, year)
		if err != nil {
			return nil, err
		}
		// Next season's roster is often not published yet; fall back one year.
		if len(members) == 0 {
			members, err = s.provider.FetchRoster(ctx, canonical, year-1)
			if err != nil {
				return nil, err
			}
		}
		return members, nil
	})
	if err != nil {
		return nil, err
	}

	members, ok := value.([]roster.Member)
	if !ok {
		return nil, fmt.Errorf("unexpected cached roster type %T", value)
	}
	return members, nil
}
