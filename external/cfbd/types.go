package cfbd

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/portalwatch/portal-api/internal/domain/roster"
	"github.com/portalwatch/portal-api/internal/domain/stats"
	"github.com/portalwatch/portal-api/internal/domain/transfer"
)

// portalItem is one row of the provider's portal listing.
type portalItem struct {
	Season       int      `json:"season"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Position     string   `json:"position"`
	Origin       string   `json:"origin"`
	Destination  string   `json:"destination"`
	TransferDate string   `json:"transferDate"`
	Rating       *float64 `json:"rating"`
	Stars        int      `json:"stars"`
	Eligibility  string   `json:"eligibility"`
}

func (p portalItem) toEntry() transfer.Entry {
	return transfer.Entry{
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		Position:     strings.TrimSpace(p.Position),
		Rating:       p.Rating,
		Stars:        p.Stars,
		Eligibility:  strings.TrimSpace(p.Eligibility),
		TransferDate: strings.TrimSpace(p.TransferDate),
		Origin:       strings.TrimSpace(p.Origin),
		Destination:  strings.TrimSpace(p.Destination),
	}
}

// rosterItem tolerates both field spellings the provider has used across
// API versions.
type rosterItem struct {
	ID             json.Number `json:"id"`
	FirstName      string      `json:"firstName"`
	FirstNameAlt   string      `json:"first_name"`
	LastName       string      `json:"lastName"`
	LastNameAlt    string      `json:"last_name"`
	Position       string      `json:"position"`
	Jersey         int         `json:"jersey"`
	Year           json.Number `json:"year"`
	Height         int         `json:"height"`
	Weight         int         `json:"weight"`
	HomeCity       string      `json:"homeCity"`
	HomeCityAlt    string      `json:"home_city"`
	HomeState      string      `json:"homeState"`
	HomeStateAlt   string      `json:"home_state"`
	HomeCountry    string      `json:"homeCountry"`
	HomeCountryAlt string      `json:"home_country"`
}

func (r rosterItem) toMember() roster.Member {
	return roster.Member{
		ID:          r.ID.String(),
		FirstName:   strings.TrimSpace(firstNonEmpty(r.FirstName, r.FirstNameAlt)),
		LastName:    strings.TrimSpace(firstNonEmpty(r.LastName, r.LastNameAlt)),
		Position:    strings.TrimSpace(r.Position),
		Jersey:      r.Jersey,
		Year:        r.Year.String(),
		Height:      r.Height,
		Weight:      r.Weight,
		HomeCity:    strings.TrimSpace(firstNonEmpty(r.HomeCity, r.HomeCityAlt)),
		HomeState:   strings.TrimSpace(firstNonEmpty(r.HomeState, r.HomeStateAlt)),
		HomeCountry: strings.TrimSpace(firstNonEmpty(r.HomeCountry, r.HomeCountryAlt)),
	}
}

// statLineItem is one player-season statistic row on the wire. The career
// search only needs the player name; the stats surface exposes the rest.
type statLineItem struct {
	PlayerID    json.Number `json:"playerId"`
	PlayerIDAlt json.Number `json:"player_id"`
	Player      string      `json:"player"`
	Team        string      `json:"team"`
	Category    string      `json:"category"`
	StatType    string      `json:"statType"`
	StatTypeAlt string      `json:"stat_type"`
	Stat        string      `json:"stat"`
}

func (s statLineItem) toLine(category string) stats.Line {
	if s.Category != "" {
		category = s.Category
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s.Stat), 64)
	if err != nil {
		value = 0
	}
	return stats.Line{
		PlayerID: firstNonEmpty(s.PlayerID.String(), s.PlayerIDAlt.String()),
		Player:   strings.TrimSpace(s.Player),
		Team:     strings.TrimSpace(s.Team),
		Category: category,
		StatType: firstNonEmpty(s.StatType, s.StatTypeAlt),
		Value:    value,
	}
}

// usageItem is one row of the provider's player usage listing.
type usageItem struct {
	ID       json.Number `json:"id"`
	Name     string      `json:"name"`
	Position string      `json:"position"`
	Usage    struct {
		Overall       float64  `json:"overall"`
		Pass          float64  `json:"pass"`
		Rush          float64  `json:"rush"`
		FirstDown     *float64 `json:"firstDown"`
		SecondDown    *float64 `json:"secondDown"`
		ThirdDown     *float64 `json:"thirdDown"`
		StandardDowns *float64 `json:"standardDowns"`
		PassingDowns  *float64 `json:"passingDowns"`
	} `json:"usage"`
}

func (u usageItem) toPlayerUsage() stats.PlayerUsage {
	return stats.PlayerUsage{
		PlayerID: u.ID.String(),
		Name:     strings.TrimSpace(u.Name),
		Position: strings.TrimSpace(u.Position),
		Usage: stats.UsageBreakdown{
			Overall:       u.Usage.Overall,
			Pass:          u.Usage.Pass,
			Rush:          u.Usage.Rush,
			FirstDown:     u.Usage.FirstDown,
			SecondDown:    u.Usage.SecondDown,
			ThirdDown:     u.Usage.ThirdDown,
			StandardDowns: u.Usage.StandardDowns,
			PassingDowns:  u.Usage.PassingDowns,
		},
	}
}

// ppaItem is one row of the provider's season predicted-points listing.
type ppaItem struct {
	ID             json.Number `json:"id"`
	Name           string      `json:"name"`
	Position       string      `json:"position"`
	CountablePlays int         `json:"countablePlays"`
	AveragePPA     ppaSplit    `json:"averagePPA"`
	TotalPPA       ppaSplit    `json:"totalPPA"`
}

type ppaSplit struct {
	All           *float64 `json:"all"`
	Pass          *float64 `json:"pass"`
	Rush          *float64 `json:"rush"`
	FirstDown     *float64 `json:"firstDown"`
	SecondDown    *float64 `json:"secondDown"`
	ThirdDown     *float64 `json:"thirdDown"`
	StandardDowns *float64 `json:"standardDowns"`
	PassingDowns  *float64 `json:"passingDowns"`
}

func (p ppaItem) toPlayerPPA() stats.PlayerPPA {
	return stats.PlayerPPA{
		PlayerID: p.ID.String(),
		Name:     strings.TrimSpace(p.Name),
		Position: strings.TrimSpace(p.Position),
		PPA: stats.PPABreakdown{
			CountablePlays: p.CountablePlays,
			Averages:       p.AveragePPA.toStatsSplit(),
			Totals:         p.TotalPPA.toStatsSplit(),
		},
	}
}

func (s ppaSplit) toStatsSplit() stats.PPASplit {
	return stats.PPASplit{
		All:           s.All,
		Pass:          s.Pass,
		Rush:          s.Rush,
		FirstDown:     s.FirstDown,
		SecondDown:    s.SecondDown,
		ThirdDown:     s.ThirdDown,
		StandardDowns: s.StandardDowns,
		PassingDowns:  s.PassingDowns,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
