package usecase

import "time"

// earliestStatsYear is how far back the provider serves season statistics.
const earliestStatsYear = 2013

// CurrentSeasonYear maps a wall-clock instant to the season it belongs to.
// The college season starts in August; before that, "current" still means
// the previous season.
func CurrentSeasonYear(now time.Time) int {
	if now.Month() >= time.August {
		return now.Year()
	}
	return now.Year() - 1
}

// AvailableStatYears lists seasons with provider statistics, newest first.
func AvailableStatYears(now time.Time) []int {
	current := CurrentSeasonYear(now)
	years := make([]int, 0, current-earliestStatsYear+1)
	for year := current; year >= earliestStatsYear; year-- {
		years = append(years, year)
	}
	return years
}
