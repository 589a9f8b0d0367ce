package roster

import (
	"fmt"
	"sort"
	"strings"
)

// Member is one player on a team-year roster as reported by the provider.
// Records are fetched fresh per (team, year) and never mutated.
type Member struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Position    string `json:"position"`
	Jersey      int    `json:"jersey"`
	Year        string `json:"year"`
	Height      int    `json:"height"`
	Weight      int    `json:"weight"`
	HomeCity    string `json:"city,omitempty"`
	HomeState   string `json:"state,omitempty"`
	HomeCountry string `json:"country,omitempty"`
}

// Name returns the display name, "Unknown" when the provider sent neither part.
func (m Member) Name() string {
	name := strings.TrimSpace(m.FirstName + " " + m.LastName)
	if name == "" {
		return "Unknown"
	}
	return name
}

// Hometown formats the home city and state for display. Either part may be
// missing in provider data.
func (m Member) Hometown() string {
	switch {
	case m.HomeCity != "" && m.HomeState != "":
		return fmt.Sprintf("%s, %s", m.HomeCity, m.HomeState)
	case m.HomeCity != "":
		return m.HomeCity
	default:
		return m.HomeState
	}
}

// positionRank orders roster listings by unit: offense, defense, special
// teams, then the generic athlete tag. Unknown positions sort last.
var positionRank = map[string]int{}

func init() {
	order := []string{
		"QB", "RB", "WR", "TE", "OL", "OT", "OG", "C",
		"DL", "DE", "DT", "NT", "LB", "ILB", "OLB", "CB", "S", "DB",
		"K", "P", "LS", "ATH",
	}
	for i, pos := range order {
		positionRank[pos] = i
	}
}

func rank(position string) int {
	if r, ok := positionRank[position]; ok {
		return r
	}
	return len(positionRank)
}

// SortByPosition orders members by position group, then by name within a
// group. The sort is stable so provider order breaks remaining ties.
func SortByPosition(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		ri, rj := rank(members[i].Position), rank(members[j].Position)
		if ri != rj {
			return ri < rj
		}
		return members[i].Name() < members[j].Name()
	})
}
