package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/portalwatch/portal-api/internal/domain/stats"
	"github.com/portalwatch/portal-api/internal/domain/team"
	"github.com/portalwatch/portal-api/internal/platform/cache"
	"github.com/portalwatch/portal-api/internal/platform/logging"
	"github.com/portalwatch/portal-api/internal/platform/ratelimit"
)

// StatsService serves per-team season statistics: the basic surface
// aggregates raw stat lines by player, the advanced surface merges usage
// and predicted-points records. Both are cached per (team, year).
type StatsService struct {
	provider SeasonStatsProvider
	limiter  ratelimit.Limiter
	store    *cache.Store
	logger   *logging.Logger
}

func NewStatsService(provider SeasonStatsProvider, limiter ratelimit.Limiter, store *cache.Store, logger *logging.Logger) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	if limiter == nil {
		limiter = ratelimit.Unlimited()
	}
	return &StatsService{
		provider: provider,
		limiter:  limiter,
		store:    store,
		logger:   logger,
	}
}

// GetTeamStats returns a team's aggregated player statistics for a season.
func (s *StatsService) GetTeamStats(ctx context.Context, teamName string, year int) (string, []stats.PlayerSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.GetTeamStats")
	defer span.End()

	canonical, err := s.validateTeamYear(teamName, year)
	if err != nil {
		return "", nil, err
	}

	key := "stats:" + canonical + ":" + strconv.Itoa(year)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		lines, err := s.provider.FetchSeasonStats(ctx, canonical, year)
		if err != nil {
			return nil, fmt.Errorf("%w: season stats team=%q year=%d: %v", ErrUpstreamFailure, canonical, year, err)
		}
		return stats.AggregateSeason(canonical, lines), nil
	})
	if err != nil {
		return "", nil, err
	}

	players, ok := value.([]stats.PlayerSeason)
	if !ok {
		return "", nil, fmt.Errorf("unexpected cached stats type %T", value)
	}
	return canonical, players, nil
}

// GetAdvancedStats returns a team's merged usage and predicted-points
// records for a season. Either upstream listing may fail independently;
// the merge then carries only the other half.
func (s *StatsService) GetAdvancedStats(ctx context.Context, teamName string, year int) (string, []stats.AdvancedPlayerSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.GetAdvancedStats")
	defer span.End()

	canonical, err := s.validateTeamYear(teamName, year)
	if err != nil {
		return "", nil, err
	}

	key := "advanced:" + canonical + ":" + strconv.Itoa(year)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		usage, err := s.provider.FetchPlayerUsage(ctx, canonical, year)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.WarnContext(ctx, "player usage fetch failed, merging without it",
				"team", canonical,
				"year", year,
				"error", err,
			)
			usage = nil
		}

		ppa, err := s.provider.FetchPlayerPPA(ctx, canonical, year)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.WarnContext(ctx, "player ppa fetch failed, merging without it",
				"team", canonical,
				"year", year,
				"error", err,
			)
			ppa = nil
		}

		return stats.MergeAdvanced(canonical, usage, ppa), nil
	})
	if err != nil {
		return "", nil, err
	}

	players, ok := value.([]stats.AdvancedPlayerSeason)
	if !ok {
		return "", nil, fmt.Errorf("unexpected cached advanced stats type %T", value)
	}
	return canonical, players, nil
}

func (s *StatsService) validateTeamYear(teamName string, year int) (string, error) {
	if year <= 0 {
		return "", fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}
	canonical := team.Normalize(teamName)
	if !team.IsKnown(canonical) {
		return "", fmt.Errorf("%w: team %q", ErrNotFound, teamName)
	}
	return canonical, nil
}
