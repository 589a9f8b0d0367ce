package stats

// Line is one raw player-season statistic as the provider reports it: a
// single (category, statType) value for a player.
type Line struct {
	PlayerID string
	Player   string
	Team     string
	Category string
	StatType string
	Value    float64
}

// PlayerSeason is one player's season aggregated across statistic
// categories. Category maps are keyed by display stat names and omitted
// entirely when the player has no line in that category.
type PlayerSeason struct {
	PlayerID    string             `json:"playerId"`
	Name        string             `json:"name"`
	Team        string             `json:"team"`
	Passing     map[string]float64 `json:"passing,omitempty"`
	Rushing     map[string]float64 `json:"rushing,omitempty"`
	Receiving   map[string]float64 `json:"receiving,omitempty"`
	Defensive   map[string]float64 `json:"defensive,omitempty"`
	Kicking     map[string]float64 `json:"kicking,omitempty"`
	Punting     map[string]float64 `json:"punting,omitempty"`
	KickReturns map[string]float64 `json:"kickReturns,omitempty"`
	PuntReturns map[string]float64 `json:"puntReturns,omitempty"`
}

// TotalYards is the offensive production used for the default sort order.
func (p PlayerSeason) TotalYards() float64 {
	return p.Passing["yards"] + p.Rushing["yards"] + p.Receiving["yards"]
}

// UsageBreakdown is a player's share of team plays, overall and by split.
type UsageBreakdown struct {
	Overall       float64  `json:"overall"`
	Pass          float64  `json:"pass"`
	Rush          float64  `json:"rush"`
	FirstDown     *float64 `json:"firstDown"`
	SecondDown    *float64 `json:"secondDown"`
	ThirdDown     *float64 `json:"thirdDown"`
	StandardDowns *float64 `json:"standardDowns"`
	PassingDowns  *float64 `json:"passingDowns"`
}

// PPASplit is predicted-points-added broken down by play situation.
type PPASplit struct {
	All           *float64 `json:"all"`
	Pass          *float64 `json:"pass"`
	Rush          *float64 `json:"rush"`
	FirstDown     *float64 `json:"firstDown"`
	SecondDown    *float64 `json:"secondDown"`
	ThirdDown     *float64 `json:"thirdDown"`
	StandardDowns *float64 `json:"standardDowns"`
	PassingDowns  *float64 `json:"passingDowns"`
}

// PPABreakdown pairs per-play averages with season totals.
type PPABreakdown struct {
	CountablePlays int      `json:"countablePlays"`
	Averages       PPASplit `json:"averages"`
	Totals         PPASplit `json:"totals"`
}

// PlayerUsage is one player's usage record from the provider.
type PlayerUsage struct {
	PlayerID string
	Name     string
	Position string
	Usage    UsageBreakdown
}

// PlayerPPA is one player's predicted-points record from the provider.
type PlayerPPA struct {
	PlayerID string
	Name     string
	Position string
	PPA      PPABreakdown
}

// AdvancedPlayerSeason merges usage and PPA for one player. Either half may
// be absent when the provider reported only the other.
type AdvancedPlayerSeason struct {
	PlayerID string          `json:"playerId"`
	Name     string          `json:"name"`
	Team     string          `json:"team"`
	Position string          `json:"position,omitempty"`
	Usage    *UsageBreakdown `json:"usage,omitempty"`
	PPA      *PPABreakdown   `json:"ppa,omitempty"`
}

// TotalPPA is the sort key for advanced stats, zero when PPA is absent.
func (p AdvancedPlayerSeason) TotalPPA() float64 {
	if p.PPA == nil || p.PPA.Totals.All == nil {
		return 0
	}
	return *p.PPA.Totals.All
}
