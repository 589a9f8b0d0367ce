package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/portalwatch/portal-api/internal/domain/career"
	"github.com/portalwatch/portal-api/internal/domain/identity"
	"github.com/portalwatch/portal-api/internal/domain/team"
	"github.com/portalwatch/portal-api/internal/platform/cache"
	"github.com/portalwatch/portal-api/internal/platform/logging"
	"github.com/portalwatch/portal-api/internal/platform/ratelimit"
)

// searchYearSpan bounds the career search window: the current season plus
// this many prior seasons. One more than the season cap, so a redshirt year
// at the known team does not hide a fifth playing season.
const searchYearSpan = career.MaxSeasons + 1

// CareerService reconstructs a player's season-by-season team history from
// statistical evidence. Results are cached per (player, team, depth) and
// loaded through single-flight, so a second request inside the TTL issues
// no upstream calls.
type CareerService struct {
	provider StatsProvider
	limiter  ratelimit.Limiter
	store    *cache.Store
	logger   *logging.Logger
	now      func() time.Time
}

func NewCareerService(provider StatsProvider, limiter ratelimit.Limiter, store *cache.Store, logger *logging.Logger) *CareerService {
	return NewCareerServiceWithClock(provider, limiter, store, logger, time.Now)
}

// NewCareerServiceWithClock injects the clock that anchors the search
// window. Tests pin it so window boundaries do not drift with the wall
// clock.
func NewCareerServiceWithClock(provider StatsProvider, limiter ratelimit.Limiter, store *cache.Store, logger *logging.Logger, now func() time.Time) *CareerService {
	if logger == nil {
		logger = logging.Default()
	}
	if limiter == nil {
		limiter = ratelimit.Unlimited()
	}
	if now == nil {
		now = time.Now
	}
	return &CareerService{
		provider: provider,
		limiter:  limiter,
		store:    store,
		logger:   logger,
		now:      now,
	}
}

// GetCareerHistory resolves a player's career. knownTeam seeds the search;
// deep widens it to the whole team universe once the known team is
// exhausted.
func (s *CareerService) GetCareerHistory(ctx context.Context, playerName, knownTeam string, deep bool) (career.History, error) {
	ctx, span := startUsecaseSpan(ctx, "CareerService.GetCareerHistory")
	defer span.End()

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return career.History{}, fmt.Errorf("%w: player name must not be empty", ErrInvalidInput)
	}

	key := "career:" + strings.ToLower(playerName) + ":" + team.Normalize(knownTeam) + ":" + strconv.FormatBool(deep)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.resolve(ctx, playerName, knownTeam, deep)
	})
	if err != nil {
		return career.History{}, err
	}

	history, ok := value.(career.History)
	if !ok {
		return career.History{}, fmt.Errorf("unexpected cached career type %T", value)
	}
	return history, nil
}

// resolve walks candidate teams in priority order, years descending within
// each team. The iteration order is load-bearing: the first team evidenced
// for a year claims that year.
func (s *CareerService) resolve(ctx context.Context, playerName, knownTeam string, deep bool) (career.History, error) {
	teams := s.candidateTeams(knownTeam, deep)
	years := s.searchYears()

	var history career.History
	for _, candidate := range teams {
		if history.Full() {
			break
		}
		// Paced per team probe; year probes within a team are not delayed.
		if err := s.limiter.Wait(ctx); err != nil {
			return history, err
		}

		for _, year := range years {
			if history.Full() {
				break
			}
			if history.HasYear(year) {
				continue
			}

			names, err := s.provider.PlayerNamesWithStats(ctx, candidate, year)
			if err != nil {
				if ctx.Err() != nil {
					return history, ctx.Err()
				}
				// Absence of evidence, not a failed search.
				s.logger.DebugContext(ctx, "career probe failed, treating as no evidence",
					"player", playerName,
					"team", candidate,
					"year", year,
					"error", err,
				)
				continue
			}

			for _, name := range names {
				if identity.FullNamesEquivalent(playerName, name) {
					history.Add(candidate, year)
					break
				}
			}
		}
	}
	return history, nil
}

// candidateTeams builds the search priority list: the known team first,
// then, for a deep search, the rest of the universe alphabetically.
func (s *CareerService) candidateTeams(knownTeam string, deep bool) []string {
	seed := team.Normalize(knownTeam)
	if !team.IsKnown(seed) {
		seed = ""
	}

	teams := make([]string, 0, 1)
	if seed != "" {
		teams = append(teams, seed)
	}
	if !deep {
		return teams
	}
	for _, name := range team.Names() {
		if name != seed {
			teams = append(teams, name)
		}
	}
	return teams
}

func (s *CareerService) searchYears() []int {
	current := CurrentSeasonYear(s.now())
	years := make([]int, 0, searchYearSpan)
	for year := current; year > current-searchYearSpan; year-- {
		years = append(years, year)
	}
	return years
}
