package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/portalwatch/portal-api/internal/domain/career"
	"github.com/portalwatch/portal-api/internal/platform/cache"
	"github.com/portalwatch/portal-api/internal/platform/logging"
	"github.com/portalwatch/portal-api/internal/platform/ratelimit"
)

// December 2025 is inside the 2025 season, so the search window is
// 2025 down to 2020.
var careerTestNow = time.Date(2025, time.December, 1, 12, 0, 0, 0, time.UTC)

func newCareerServiceForTest(provider StatsProvider, store *cache.Store) *CareerService {
	return NewCareerServiceWithClock(provider, ratelimit.Unlimited(), store, logging.NewNop(), func() time.Time { return careerTestNow })
}

func TestGetCareerHistory_KnownTeamOnly(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		statNames: map[string][]string{
			statKey("Alabama", 2025): {"Cam Calhoun", "Other Player"},
			statKey("Alabama", 2024): {"Cameron Calhoun"},
			statKey("Alabama", 2022): {"Cam Calhoun"},
		},
	}
	svc := newCareerServiceForTest(provider, cache.NewStore(time.Hour))

	history, err := svc.GetCareerHistory(context.Background(), "Cam Calhoun", "Alabama", false)
	if err != nil {
		t.Fatalf("GetCareerHistory: %v", err)
	}

	want := []career.Season{
		{Team: "Alabama", Year: 2025},
		{Team: "Alabama", Year: 2024},
		{Team: "Alabama", Year: 2022},
	}
	if len(history.Seasons) != len(want) {
		t.Fatalf("seasons = %+v, want %+v", history.Seasons, want)
	}
	for i := range want {
		if history.Seasons[i] != want[i] {
			t.Fatalf("seasons = %+v, want %+v", history.Seasons, want)
		}
	}
}

func TestGetCareerHistory_SecondCallWithinTTLIssuesNoUpstreamCalls(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		statNames: map[string][]string{
			statKey("Alabama", 2024): {"Cam Calhoun"},
		},
	}
	svc := newCareerServiceForTest(provider, cache.NewStore(time.Hour))

	ctx := context.Background()
	if _, err := svc.GetCareerHistory(ctx, "Cam Calhoun", "Alabama", false); err != nil {
		t.Fatalf("first call: %v", err)
	}
	_, _, after := provider.counts()

	if _, err := svc.GetCareerHistory(ctx, "Cam Calhoun", "Alabama", false); err != nil {
		t.Fatalf("second call: %v", err)
	}
	_, _, again := provider.counts()

	if again != after {
		t.Fatalf("second call issued %d extra upstream calls", again-after)
	}
}

func TestGetCareerHistory_DeepSearchFindsPriorTeams(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		statNames: map[string][]string{
			statKey("Alabama", 2025):  {"Cam Calhoun"},
			statKey("Auburn", 2024):   {"Cameron Calhoun"},
			statKey("Michigan", 2023): {"Cam Calhoun"},
		},
	}
	svc := newCareerServiceForTest(provider, cache.NewStore(time.Hour))

	history, err := svc.GetCareerHistory(context.Background(), "Cam Calhoun", "Alabama", true)
	if err != nil {
		t.Fatalf("GetCareerHistory: %v", err)
	}

	byYear := map[int]string{}
	for _, s := range history.Seasons {
		byYear[s.Year] = s.Team
	}
	if byYear[2025] != "Alabama" || byYear[2024] != "Auburn" || byYear[2023] != "Michigan" {
		t.Fatalf("unexpected history: %+v", history.Seasons)
	}
}

func TestGetCareerHistory_OneTeamPerYear(t *testing.T) {
	t.Parallel()

	// Both teams report the player for 2024; the known team is probed first
	// and claims the year.
	provider := &stubProvider{
		statNames: map[string][]string{
			statKey("Alabama", 2024): {"Cam Calhoun"},
			statKey("Auburn", 2024):  {"Cam Calhoun"},
		},
	}
	svc := newCareerServiceForTest(provider, cache.NewStore(time.Hour))

	history, err := svc.GetCareerHistory(context.Background(), "Cam Calhoun", "Alabama", true)
	if err != nil {
		t.Fatalf("GetCareerHistory: %v", err)
	}

	count := 0
	for _, s := range history.Seasons {
		if s.Year == 2024 {
			count++
			if s.Team != "Alabama" {
				t.Fatalf("2024 claimed by %q, want Alabama", s.Team)
			}
		}
	}
	if count != 1 {
		t.Fatalf("year 2024 recorded %d times", count)
	}
}

func TestGetCareerHistory_ProbeFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		statNames: map[string][]string{
			statKey("Alabama", 2023): {"Cam Calhoun"},
		},
		statsErr: map[string]error{
			statKey("Alabama", 2025): errStubUpstream,
			statKey("Alabama", 2024): errStubUpstream,
		},
	}
	svc := newCareerServiceForTest(provider, cache.NewStore(time.Hour))

	history, err := svc.GetCareerHistory(context.Background(), "Cam Calhoun", "Alabama", false)
	if err != nil {
		t.Fatalf("probe failures must not abort the search: %v", err)
	}
	if len(history.Seasons) != 1 || history.Seasons[0].Year != 2023 {
		t.Fatalf("unexpected history: %+v", history.Seasons)
	}
}

func TestGetCareerHistory_RateLimitedPerTeamProbe(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		statNames: map[string][]string{
			statKey("Alabama", 2025): {"Cam Calhoun"},
		},
	}

	limiter := &countingLimiter{}
	svc := NewCareerServiceWithClock(provider, limiter, cache.NewStore(time.Hour), logging.NewNop(), func() time.Time { return careerTestNow })

	if _, err := svc.GetCareerHistory(context.Background(), "Cam Calhoun", "Alabama", false); err != nil {
		t.Fatalf("GetCareerHistory: %v", err)
	}

	// One team probed, many years: exactly one permit taken.
	if limiter.waits != 1 {
		t.Fatalf("limiter waits = %d, want 1", limiter.waits)
	}
}

func TestGetCareerHistory_EmptyNameRejected(t *testing.T) {
	t.Parallel()

	svc := newCareerServiceForTest(&stubProvider{}, cache.NewStore(time.Hour))
	if _, err := svc.GetCareerHistory(context.Background(), "  ", "Alabama", false); err == nil {
		t.Fatal("empty player name should be rejected")
	}
}

type countingLimiter struct {
	waits int
}

func (l *countingLimiter) Wait(_ context.Context) error {
	l.waits++
	return nil
}

func TestCurrentSeasonYear(t *testing.T) {
	t.Parallel()

	cases := []struct {
		at   time.Time
		want int
	}{
		{time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), 2025},
		{time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), 2025},
		{time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), 2025},
		{time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC), 2025},
		{time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), 2026},
	}
	for _, tc := range cases {
		if got := CurrentSeasonYear(tc.at); got != tc.want {
			t.Errorf("CurrentSeasonYear(%s) = %d, want %d", tc.at.Format(time.RFC3339), got, tc.want)
		}
	}
}

func TestAvailableStatYears(t *testing.T) {
	t.Parallel()

	years := AvailableStatYears(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC))
	if years[0] != 2025 || years[len(years)-1] != 2013 {
		t.Fatalf("years = %v", years)
	}
	for i := 1; i < len(years); i++ {
		if years[i-1]-years[i] != 1 {
			t.Fatalf("years not contiguous descending: %v", years)
		}
	}
}
