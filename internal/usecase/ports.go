package usecase

import (
	"context"

	"github.com/portalwatch/portal-api/internal/domain/roster"
	"github.com/portalwatch/portal-api/internal/domain/stats"
	"github.com/portalwatch/portal-api/internal/domain/transfer"
)

// StatsProvider is the external statistics capability the services consume.
// Implemented by the cfbd client; tests substitute stubs.
type StatsProvider interface {
	// FetchPortal returns the season's portal listing. Its failure is fatal
	// to an aggregation run.
	FetchPortal(ctx context.Context, year int) ([]transfer.Entry, error)

	// FetchRoster returns one team's roster for a year.
	FetchRoster(ctx context.Context, teamName string, year int) ([]roster.Member, error)

	// PlayerNamesWithStats returns the distinct player names with any
	// recorded statistic for (team, year).
	PlayerNamesWithStats(ctx context.Context, teamName string, year int) ([]string, error)

	// Configured reports whether provider credentials are present.
	Configured() bool
}

// SeasonStatsProvider is the statistics detail capability behind the team
// stats surface. Also implemented by the cfbd client.
type SeasonStatsProvider interface {
	// FetchSeasonStats returns every raw stat line for (team, year) across
	// all categories.
	FetchSeasonStats(ctx context.Context, teamName string, year int) ([]stats.Line, error)

	// FetchPlayerUsage returns per-player usage shares for (team, year).
	FetchPlayerUsage(ctx context.Context, teamName string, year int) ([]stats.PlayerUsage, error)

	// FetchPlayerPPA returns per-player predicted-points records for
	// (team, year).
	FetchPlayerPPA(ctx context.Context, teamName string, year int) ([]stats.PlayerPPA, error)
}
