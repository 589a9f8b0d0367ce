package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/portalwatch/portal-api/internal/domain/roster"
	"github.com/portalwatch/portal-api/internal/domain/transfer"
)

// stubProvider is a hand-rolled StatsProvider for service tests. Keys are
// "team:year".
type stubProvider struct {
	mu sync.Mutex

	portal    []transfer.Entry
	portalErr error

	rosters   map[string][]roster.Member
	rosterErr map[string]error

	statNames map[string][]string
	statsErr  map[string]error

	portalCalls int
	rosterCalls int
	statsCalls  int
}

func statKey(teamName string, year int) string {
	return teamName + ":" + strconv.Itoa(year)
}

func (s *stubProvider) FetchPortal(_ context.Context, _ int) ([]transfer.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portalCalls++
	if s.portalErr != nil {
		return nil, s.portalErr
	}
	return append([]transfer.Entry(nil), s.portal...), nil
}

func (s *stubProvider) FetchRoster(_ context.Context, teamName string, year int) ([]roster.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rosterCalls++
	key := statKey(teamName, year)
	if err, ok := s.rosterErr[key]; ok {
		return nil, err
	}
	return append([]roster.Member(nil), s.rosters[key]...), nil
}

func (s *stubProvider) PlayerNamesWithStats(_ context.Context, teamName string, year int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statsCalls++
	key := statKey(teamName, year)
	if err, ok := s.statsErr[key]; ok {
		return nil, err
	}
	names, ok := s.statNames[key]
	if !ok {
		return nil, nil
	}
	return append([]string(nil), names...), nil
}

func (s *stubProvider) Configured() bool { return true }

func (s *stubProvider) counts() (portal, rosterN, stats int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portalCalls, s.rosterCalls, s.statsCalls
}

var errStubUpstream = fmt.Errorf("stub upstream failure")
