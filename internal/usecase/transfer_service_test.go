package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/portalwatch/portal-api/internal/domain/roster"
	"github.com/portalwatch/portal-api/internal/domain/transfer"
	"github.com/portalwatch/portal-api/internal/platform/cache"
	"github.com/portalwatch/portal-api/internal/platform/logging"
	"github.com/portalwatch/portal-api/internal/platform/ratelimit"
)

func newTransferServiceForTest(provider StatsProvider) (*TransferService, *cache.Store) {
	store := cache.NewStore(time.Hour)
	rosters := NewRosterIndexService(provider, ratelimit.Unlimited(), cache.NewStore(time.Hour), logging.NewNop())
	careers := NewCareerServiceWithClock(provider, ratelimit.Unlimited(), cache.NewStore(time.Hour), logging.NewNop(), func() time.Time { return careerTestNow })
	svc := NewTransferService(provider, rosters, careers, store, logging.NewNop())
	return svc, store
}

func portalFixture() *stubProvider {
	rating := 0.91
	return &stubProvider{
		portal: []transfer.Entry{
			{
				FirstName:   "Cam",
				LastName:    "Calhoun",
				Position:    "S",
				Rating:      &rating,
				Stars:       4,
				Eligibility: "JR",
				Origin:      "Alabama",
				Destination: "Wisconsin",
			},
			{
				FirstName: "Devon",
				LastName:  "Ghost",
				Position:  "WR",
				Origin:    "Fake State",
			},
			{
				FirstName:   "Troy",
				LastName:    "Walker",
				Position:    "LB",
				Eligibility: "SR",
				Origin:      "Georgia",
			},
		},
		rosters: map[string][]roster.Member{
			statKey("Alabama", 2026): {
				{
					ID: "42", FirstName: "Cameron", LastName: "Calhoun", Position: "CB",
					Height: 72, Weight: 185, HomeCity: "Cincinnati", HomeState: "OH",
				},
			},
			statKey("Georgia", 2026): {
				{ID: "7", FirstName: "Troy", LastName: "Walker", Position: "LB"},
			},
		},
		statNames: map[string][]string{
			statKey("Alabama", 2025): {"Cam Calhoun"},
			statKey("Alabama", 2024): {"Cameron Calhoun"},
		},
	}
}

func TestGetTransfersByTeam_EndToEnd(t *testing.T) {
	t.Parallel()

	svc, _ := newTransferServiceForTest(portalFixture())

	aggregate, err := svc.GetTransfersByTeam(context.Background(), 2026)
	if err != nil {
		t.Fatalf("GetTransfersByTeam: %v", err)
	}

	if _, ok := aggregate.Buckets["Fake State"]; ok {
		t.Fatal("unrecognized team must not appear as a bucket key")
	}

	alabama := aggregate.Buckets["Alabama"]
	if len(alabama.PlayersOut) != 1 {
		t.Fatalf("Alabama playersOut = %+v", alabama.PlayersOut)
	}
	out := alabama.PlayersOut[0]
	if out.Name != "Cam Calhoun" || out.Destination != "Wisconsin" || out.From != "" {
		t.Fatalf("departure view wrong: %+v", out)
	}
	if out.PlayerID != "42" || out.Height != 72 || out.Weight != 185 || out.Hometown != "Cincinnati, OH" {
		t.Fatalf("identity enrichment missing: %+v", out)
	}
	if out.Rating == nil || *out.Rating != 91 {
		t.Fatalf("rating = %v, want 91", out.Rating)
	}
	if out.Year != "Jr" || out.Status != transfer.StatusCommitted {
		t.Fatalf("display fields wrong: %+v", out)
	}
	if out.History == nil || len(out.History.Seasons) != 2 {
		t.Fatalf("career history not attached: %+v", out.History)
	}

	wisconsin := aggregate.Buckets["Wisconsin"]
	if len(wisconsin.PlayersIn) != 1 {
		t.Fatalf("Wisconsin playersIn = %+v", wisconsin.PlayersIn)
	}
	in := wisconsin.PlayersIn[0]
	if in.From != "Alabama" || in.Destination != "" {
		t.Fatalf("arrival view wrong: %+v", in)
	}
	if in.PlayerID != "42" {
		t.Fatalf("arrival view lost enrichment: %+v", in)
	}

	georgia := aggregate.Buckets["Georgia"]
	if len(georgia.PlayersOut) != 1 || georgia.PlayersOut[0].Status != transfer.StatusEntered {
		t.Fatalf("entered-only player wrong: %+v", georgia.PlayersOut)
	}

	if aggregate.TotalPlayersOut() != 2 {
		t.Fatalf("totalPlayersOut = %d, want 2", aggregate.TotalPlayersOut())
	}
	if aggregate.TotalMovement() != 3 {
		t.Fatalf("totalMovement = %d, want 3", aggregate.TotalMovement())
	}
}

func TestGetTransfersByTeam_ViewsDoNotShareHistory(t *testing.T) {
	t.Parallel()

	svc, _ := newTransferServiceForTest(portalFixture())

	aggregate, err := svc.GetTransfersByTeam(context.Background(), 2026)
	if err != nil {
		t.Fatalf("GetTransfersByTeam: %v", err)
	}

	out := aggregate.Buckets["Alabama"].PlayersOut[0]
	in := aggregate.Buckets["Wisconsin"].PlayersIn[0]
	if out.History == nil || in.History == nil {
		t.Fatalf("both views need a history: out=%v in=%v", out.History, in.History)
	}
	if out.History == in.History {
		t.Fatal("departure and arrival views must carry independent history copies")
	}
	if len(out.History.Seasons) != len(in.History.Seasons) {
		t.Fatalf("view histories diverge: out=%+v in=%+v", out.History.Seasons, in.History.Seasons)
	}
}

func TestGetTransfersByTeam_SecondCallServedFromCache(t *testing.T) {
	t.Parallel()

	provider := portalFixture()
	svc, _ := newTransferServiceForTest(provider)

	ctx := context.Background()
	if _, err := svc.GetTransfersByTeam(ctx, 2026); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := svc.GetTransfersByTeam(ctx, 2026); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if portal, _, _ := provider.counts(); portal != 1 {
		t.Fatalf("portal fetched %d times, want 1", portal)
	}
}

func TestForceRefresh_InvalidatesAndRecomputes(t *testing.T) {
	t.Parallel()

	provider := portalFixture()
	svc, _ := newTransferServiceForTest(provider)

	ctx := context.Background()
	if _, err := svc.GetTransfersByTeam(ctx, 2026); err != nil {
		t.Fatalf("initial run: %v", err)
	}
	if _, err := svc.ForceRefresh(ctx, 2026); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if portal, _, _ := provider.counts(); portal != 2 {
		t.Fatalf("portal fetched %d times, want 2 after refresh", portal)
	}
}

func TestGetTeamBucket(t *testing.T) {
	t.Parallel()

	svc, _ := newTransferServiceForTest(portalFixture())
	ctx := context.Background()

	t.Run("alias resolves to canonical bucket", func(t *testing.T) {
		canonical, bucket, err := svc.GetTeamBucket(ctx, "alabama", 2026)
		if err != nil {
			t.Fatalf("GetTeamBucket: %v", err)
		}
		if canonical != "Alabama" || len(bucket.PlayersOut) != 1 {
			t.Fatalf("canonical=%q bucket=%+v", canonical, bucket)
		}
	})

	t.Run("unknown team is ErrNotFound", func(t *testing.T) {
		if _, _, err := svc.GetTeamBucket(ctx, "Fake State", 2026); !errors.Is(err, ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("known team without activity gets empty bucket", func(t *testing.T) {
		_, bucket, err := svc.GetTeamBucket(ctx, "Wyoming", 2026)
		if err != nil {
			t.Fatalf("GetTeamBucket: %v", err)
		}
		if len(bucket.PlayersOut) != 0 || len(bucket.PlayersIn) != 0 {
			t.Fatalf("expected empty bucket, got %+v", bucket)
		}
		if bucket.PlayersOut == nil || bucket.PlayersIn == nil {
			t.Fatal("empty bucket slices must be non-nil for JSON output")
		}
	})
}

func TestGetTransfersByTeam_PortalFailureIsFatal(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{portalErr: errStubUpstream}
	svc, _ := newTransferServiceForTest(provider)

	if _, err := svc.GetTransfersByTeam(context.Background(), 2026); !errors.Is(err, ErrUpstreamFailure) {
		t.Fatalf("err = %v, want ErrUpstreamFailure", err)
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newTransferServiceForTest(portalFixture())
	ctx := context.Background()

	if status := svc.Status(ctx, 2026); status.HasData {
		t.Fatal("status before any run should report no data")
	}

	if _, err := svc.GetTransfersByTeam(ctx, 2026); err != nil {
		t.Fatalf("run: %v", err)
	}

	status := svc.Status(ctx, 2026)
	if !status.HasData || status.TeamCount != 3 {
		t.Fatalf("status = %+v", status)
	}
}
