package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/portalwatch/portal-api/internal/domain/career"
	"github.com/portalwatch/portal-api/internal/domain/identity"
	"github.com/portalwatch/portal-api/internal/domain/roster"
	"github.com/portalwatch/portal-api/internal/domain/team"
	"github.com/portalwatch/portal-api/internal/domain/transfer"
	"github.com/portalwatch/portal-api/internal/platform/cache"
	"github.com/portalwatch/portal-api/internal/platform/logging"
)

// TransferAggregate is one fully enriched aggregation run, keyed into the
// transfer cache by season.
type TransferAggregate struct {
	Season      int                            `json:"season"`
	Buckets     map[string]transfer.TeamBucket `json:"buckets"`
	LastUpdated time.Time                      `json:"lastUpdated"`
}

// TotalPlayersOut counts departures across all buckets. Every portal entry
// with a known origin appears exactly once as a departure, so this is also
// the distinct-player total.
func (a TransferAggregate) TotalPlayersOut() int {
	total := 0
	for _, bucket := range a.Buckets {
		total += len(bucket.PlayersOut)
	}
	return total
}

// TotalMovement counts both views of every transfer.
func (a TransferAggregate) TotalMovement() int {
	total := 0
	for _, bucket := range a.Buckets {
		total += len(bucket.PlayersOut) + len(bucket.PlayersIn)
	}
	return total
}

// CacheStatus is what the health endpoint reports about the transfer cache.
type CacheStatus struct {
	HasData    bool
	AgeSeconds int
	TeamCount  int
}

// TransferService runs the aggregation pipeline: fetch the portal listing,
// normalize and bucket by team, build the roster index, match identities,
// resolve careers, publish through the transfer cache.
type TransferService struct {
	provider StatsProvider
	rosters  *RosterIndexService
	careers  *CareerService
	store    *cache.Store
	logger   *logging.Logger
	now      func() time.Time
}

func NewTransferService(provider StatsProvider, rosters *RosterIndexService, careers *CareerService, store *cache.Store, logger *logging.Logger) *TransferService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TransferService{
		provider: provider,
		rosters:  rosters,
		careers:  careers,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// GetTransfersByTeam returns the season's team-bucketed aggregate, running
// the pipeline on a cache miss. Concurrent misses may both run it; the
// later publish wins. That race is accepted, the data is idempotent.
func (s *TransferService) GetTransfersByTeam(ctx context.Context, year int) (TransferAggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "TransferService.GetTransfersByTeam")
	defer span.End()

	if year <= 0 {
		return TransferAggregate{}, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	key := transferCacheKey(year)
	if value, ok := s.store.Get(ctx, key); ok {
		if aggregate, ok := value.(TransferAggregate); ok {
			return aggregate, nil
		}
	}

	aggregate, err := s.runPipeline(ctx, year)
	if err != nil {
		return TransferAggregate{}, err
	}
	s.store.Set(ctx, key, aggregate)
	return aggregate, nil
}

// GetTeamBucket returns one team's view of the portal. Unknown team is an
// error; a known team absent from the aggregate gets an empty bucket.
func (s *TransferService) GetTeamBucket(ctx context.Context, teamName string, year int) (string, transfer.TeamBucket, error) {
	ctx, span := startUsecaseSpan(ctx, "TransferService.GetTeamBucket")
	defer span.End()

	canonical := team.Normalize(teamName)
	if !team.IsKnown(canonical) {
		return "", transfer.TeamBucket{}, fmt.Errorf("%w: team %q", ErrNotFound, teamName)
	}

	aggregate, err := s.GetTransfersByTeam(ctx, year)
	if err != nil {
		return "", transfer.TeamBucket{}, err
	}

	bucket, ok := aggregate.Buckets[canonical]
	if !ok {
		bucket = transfer.TeamBucket{
			PlayersOut: []transfer.ResolvedPlayer{},
			PlayersIn:  []transfer.ResolvedPlayer{},
		}
	}
	return canonical, bucket, nil
}

// ForceRefresh invalidates the transfer cache unconditionally and re-runs
// the pipeline.
func (s *TransferService) ForceRefresh(ctx context.Context, year int) (TransferAggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "TransferService.ForceRefresh")
	defer span.End()

	s.store.Flush(ctx)
	return s.GetTransfersByTeam(ctx, year)
}

// Status reports the transfer cache state for the health endpoint.
func (s *TransferService) Status(ctx context.Context, year int) CacheStatus {
	key := transferCacheKey(year)
	value, ok := s.store.Get(ctx, key)
	if !ok {
		return CacheStatus{}
	}
	aggregate, ok := value.(TransferAggregate)
	if !ok {
		return CacheStatus{}
	}

	status := CacheStatus{HasData: true, TeamCount: len(aggregate.Buckets)}
	if age, ok := s.store.Age(ctx, key); ok {
		status.AgeSeconds = int(age / time.Second)
	}
	return status
}

// ProviderConfigured reports whether upstream credentials are present.
func (s *TransferService) ProviderConfigured() bool {
	return s.provider.Configured()
}

func (s *TransferService) runPipeline(ctx context.Context, year int) (TransferAggregate, error) {
	started := s.now()

	entries, err := s.provider.FetchPortal(ctx, year)
	if err != nil {
		return TransferAggregate{}, fmt.Errorf("%w: portal listing year=%d: %v", ErrUpstreamFailure, year, err)
	}

	// Normalize team names up front; unresolved names stay out of buckets.
	for i := range entries {
		entries[i].Origin = canonicalOrEmpty(entries[i].Origin)
		entries[i].Destination = canonicalOrEmpty(entries[i].Destination)
	}

	originTeams := collectOriginTeams(entries)
	index, err := s.rosters.BuildIndex(ctx, originTeams, year)
	if err != nil {
		return TransferAggregate{}, err
	}

	histories, err := s.resolveCareers(ctx, entries)
	if err != nil {
		return TransferAggregate{}, err
	}

	buckets := make(map[string]transfer.TeamBucket, len(entries))
	for _, entry := range entries {
		resolved := transfer.Resolve(entry)
		enrichIdentity(&resolved, entry, index)
		history := histories[historyKey(entry.Name())]

		// Each bucket view carries its own history copy; the two views of
		// one transfer must not share state.
		if entry.Origin != "" {
			outView := resolved
			outView.From = ""
			outView.Destination = entry.Destination
			attachHistory(&outView, history)
			bucket := buckets[entry.Origin]
			bucket.PlayersOut = append(bucket.PlayersOut, outView)
			buckets[entry.Origin] = bucket
		}
		if entry.Destination != "" {
			inView := resolved
			inView.From = entry.Origin
			inView.Destination = ""
			attachHistory(&inView, history)
			bucket := buckets[entry.Destination]
			bucket.PlayersIn = append(bucket.PlayersIn, inView)
			buckets[entry.Destination] = bucket
		}
	}

	aggregate := TransferAggregate{
		Season:      year,
		Buckets:     buckets,
		LastUpdated: s.now(),
	}
	s.logger.InfoContext(ctx, "transfer aggregation run complete",
		"season", year,
		"entries", len(entries),
		"teams", len(buckets),
		"elapsed", s.now().Sub(started),
	)
	return aggregate, nil
}

// resolveCareers resolves each distinct player name once and shares the
// result across duplicate occurrences in the batch.
func (s *TransferService) resolveCareers(ctx context.Context, entries []transfer.Entry) (map[string]career.History, error) {
	if s.careers == nil {
		return nil, nil
	}

	type request struct {
		name string
		seed string
	}
	requests := make([]request, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if name == "" {
			continue
		}
		key := historyKey(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		seed := entry.Origin
		if seed == "" {
			seed = entry.Destination
		}
		requests = append(requests, request{name: name, seed: seed})
	}

	histories := make(map[string]career.History, len(requests))
	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		history, err := s.careers.GetCareerHistory(ctx, req.name, req.seed, false)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.WarnContext(ctx, "career resolution failed, leaving history empty",
				"player", req.name,
				"error", err,
			)
			continue
		}
		histories[historyKey(req.name)] = history
	}
	return histories, nil
}

func enrichIdentity(resolved *transfer.ResolvedPlayer, entry transfer.Entry, index map[string][]roster.Member) {
	if entry.Origin == "" {
		return
	}
	match, ok := identity.Match(entry.FirstName, entry.LastName, entry.Position, index[entry.Origin])
	if !ok {
		return
	}
	resolved.PlayerID = match.ID
	resolved.Height = match.Height
	resolved.Weight = match.Weight
	resolved.Hometown = match.Hometown()
}

func attachHistory(resolved *transfer.ResolvedPlayer, history career.History) {
	if len(history.Seasons) == 0 {
		return
	}
	copied := career.History{Seasons: append([]career.Season(nil), history.Seasons...)}
	resolved.History = &copied
}

func collectOriginTeams(entries []transfer.Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	teams := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Origin == "" {
			continue
		}
		if _, ok := seen[entry.Origin]; ok {
			continue
		}
		seen[entry.Origin] = struct{}{}
		teams = append(teams, entry.Origin)
	}
	sort.Strings(teams)
	return teams
}

func canonicalOrEmpty(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	canonical := team.Normalize(raw)
	if !team.IsKnown(canonical) {
		return ""
	}
	return canonical
}

func historyKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func transferCacheKey(year int) string {
	return "transfers:" + strconv.Itoa(year)
}
