package stats

import (
	"sort"
	"strings"
)

// Display names per category, keyed by the provider's stat codes. Codes
// missing here are dropped; the provider emits bookkeeping rows the output
// does not carry.
var statDisplayNames = map[string]map[string]string{
	"passing": {
		"COMPLETIONS": "completions",
		"ATT":         "attempts",
		"YDS":         "yards",
		"TD":          "touchdowns",
		"INT":         "interceptions",
		"YPA":         "yardsPerAttempt",
		"QBR":         "qbRating",
		"PCT":         "completionPercentage",
		"LONG":        "long",
	},
	"rushing": {
		"CAR":  "carries",
		"YDS":  "yards",
		"TD":   "touchdowns",
		"YPC":  "yardsPerCarry",
		"LONG": "long",
	},
	"receiving": {
		"REC":  "receptions",
		"YDS":  "yards",
		"TD":   "touchdowns",
		"YPR":  "yardsPerReception",
		"LONG": "long",
	},
	"defensive": {
		"TOT":     "totalTackles",
		"TACKLES": "totalTackles",
		"SOLO":    "soloTackles",
		"SACKS":   "sacks",
		"TFL":     "tacklesForLoss",
		"PD":      "passesDefended",
		"QB HUR":  "qbHurries",
		"QBH":     "qbHurries",
		"TD":      "defensiveTDs",
	},
	"kicking": {
		"FGM":  "fgMade",
		"FGA":  "fgAttempts",
		"PCT":  "fgPercentage",
		"XPM":  "xpMade",
		"XPA":  "xpAttempts",
		"PTS":  "points",
		"LONG": "long",
	},
	"punting": {
		"NO":    "punts",
		"YDS":   "yards",
		"YPP":   "average",
		"AVG":   "average",
		"LONG":  "long",
		"IN 20": "inside20",
		"IN20":  "inside20",
		"TB":    "touchbacks",
	},
	"kickReturns": {
		"NO":   "returns",
		"YDS":  "yards",
		"AVG":  "average",
		"TD":   "touchdowns",
		"LONG": "long",
	},
	"puntReturns": {
		"NO":   "returns",
		"YDS":  "yards",
		"AVG":  "average",
		"TD":   "touchdowns",
		"LONG": "long",
	},
}

// Interceptions and fumbles are separate provider categories but fold into
// the defensive block of the output.
var foldedIntoDefensive = map[string]map[string]string{
	"interceptions": {
		"INT": "interceptions",
		"YDS": "intYards",
		"TD":  "intTDs",
	},
	"fumbles": {
		"REC": "fumblesRecovered",
		"TD":  "fumblesTDs",
	},
}

// AggregateSeason folds raw stat lines into one record per player, sorted
// by offensive yardage descending, name ascending on ties.
func AggregateSeason(team string, lines []Line) []PlayerSeason {
	byPlayer := make(map[string]*PlayerSeason)
	order := make([]string, 0)

	for _, line := range lines {
		key := playerKey(line.PlayerID, line.Player, team)
		if key == "" {
			continue
		}

		player, ok := byPlayer[key]
		if !ok {
			player = &PlayerSeason{PlayerID: line.PlayerID, Name: line.Player, Team: team}
			if player.PlayerID == "" {
				player.PlayerID = key
			}
			byPlayer[key] = player
			order = append(order, key)
		}

		category, display := resolveStat(line.Category, line.StatType)
		if display == "" {
			continue
		}
		target := player.categoryMap(category)
		if target == nil {
			continue
		}
		target[display] = line.Value
	}

	players := make([]PlayerSeason, 0, len(order))
	for _, key := range order {
		players = append(players, *byPlayer[key])
	}
	sort.SliceStable(players, func(i, j int) bool {
		iYards, jYards := players[i].TotalYards(), players[j].TotalYards()
		if iYards != jYards {
			return iYards > jYards
		}
		return players[i].Name < players[j].Name
	})
	return players
}

// MergeAdvanced joins usage and PPA records by player, sorted by total PPA
// descending, name ascending on ties.
func MergeAdvanced(team string, usage []PlayerUsage, ppa []PlayerPPA) []AdvancedPlayerSeason {
	byPlayer := make(map[string]*AdvancedPlayerSeason)
	order := make([]string, 0, len(usage)+len(ppa))

	ensure := func(id, name, position string) *AdvancedPlayerSeason {
		key := playerKey(id, name, team)
		if key == "" {
			return nil
		}
		player, ok := byPlayer[key]
		if !ok {
			player = &AdvancedPlayerSeason{PlayerID: id, Name: name, Team: team, Position: position}
			if player.PlayerID == "" {
				player.PlayerID = key
			}
			byPlayer[key] = player
			order = append(order, key)
		}
		if player.Position == "" {
			player.Position = position
		}
		return player
	}

	for _, record := range usage {
		if player := ensure(record.PlayerID, record.Name, record.Position); player != nil {
			breakdown := record.Usage
			player.Usage = &breakdown
		}
	}
	for _, record := range ppa {
		if player := ensure(record.PlayerID, record.Name, record.Position); player != nil {
			breakdown := record.PPA
			player.PPA = &breakdown
		}
	}

	players := make([]AdvancedPlayerSeason, 0, len(order))
	for _, key := range order {
		players = append(players, *byPlayer[key])
	}
	sort.SliceStable(players, func(i, j int) bool {
		iPPA, jPPA := players[i].TotalPPA(), players[j].TotalPPA()
		if iPPA != jPPA {
			return iPPA > jPPA
		}
		return players[i].Name < players[j].Name
	})
	return players
}

func (p *PlayerSeason) categoryMap(category string) map[string]float64 {
	var target *map[string]float64
	switch category {
	case "passing":
		target = &p.Passing
	case "rushing":
		target = &p.Rushing
	case "receiving":
		target = &p.Receiving
	case "defensive":
		target = &p.Defensive
	case "kicking":
		target = &p.Kicking
	case "punting":
		target = &p.Punting
	case "kickReturns":
		target = &p.KickReturns
	case "puntReturns":
		target = &p.PuntReturns
	default:
		return nil
	}
	if *target == nil {
		*target = make(map[string]float64)
	}
	return *target
}

func resolveStat(category, statType string) (string, string) {
	code := strings.ToUpper(strings.TrimSpace(statType))
	if folded, ok := foldedIntoDefensive[category]; ok {
		return "defensive", folded[code]
	}
	names, ok := statDisplayNames[category]
	if !ok {
		return "", ""
	}
	return category, names[code]
}

func playerKey(id, name, team string) string {
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		return trimmed
	}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed + "-" + team
	}
	return ""
}
