package career

import "sort"

// MaxSeasons caps a reconstructed career. Search stops once a player has
// this many evidenced seasons.
const MaxSeasons = 5

// Season is one (team, year) pair at which statistical evidence of the
// player's participation was found.
type Season struct {
	Team string `json:"team"`
	Year int    `json:"year"`
}

// History is a reconstructed career timeline: strictly year-descending, at
// most one team per year, at most MaxSeasons entries. It is not guaranteed
// complete; it only holds what the search window evidenced.
type History struct {
	Seasons []Season `json:"seasons"`
}

// Add records an evidenced season. It refuses entries for a year already
// recorded (first found wins) and entries beyond the season cap, and keeps
// the list year-descending.
func (h *History) Add(team string, year int) bool {
	if h.Full() || h.HasYear(year) {
		return false
	}
	h.Seasons = append(h.Seasons, Season{Team: team, Year: year})
	sort.Slice(h.Seasons, func(i, j int) bool { return h.Seasons[i].Year > h.Seasons[j].Year })
	return true
}

// HasYear reports whether a season is already recorded for year.
func (h *History) HasYear(year int) bool {
	for _, s := range h.Seasons {
		if s.Year == year {
			return true
		}
	}
	return false
}

// Full reports whether the season cap has been reached.
func (h *History) Full() bool {
	return len(h.Seasons) >= MaxSeasons
}
