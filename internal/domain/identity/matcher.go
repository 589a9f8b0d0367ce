package identity

import (
	"strings"

	"github.com/portalwatch/portal-api/internal/domain/roster"
)

// PositionWildcard is the provider's generic tag for players without a
// fixed position.
const PositionWildcard = "ATH"

// secondary is the defensive-back group: portal listings and rosters label
// the same player CB, S, or DB interchangeably.
var secondary = map[string]bool{"CB": true, "S": true, "DB": true}

// PositionsCompatible reports whether two reported positions could describe
// the same player.
func PositionsCompatible(a, b string) bool {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	if a == b {
		return true
	}
	if a == PositionWildcard || b == PositionWildcard {
		return true
	}
	return secondary[a] && secondary[b]
}

// Match finds the roster record for a portal entry, or reports none. Three
// tiers, first hit wins:
//
//  1. exact first and last name (case-insensitive);
//  2. exact last name, compatible position, equivalent first name;
//  3. a last name shared by exactly one roster candidate.
//
// Deterministic for a given roster ordering. Never matches across different
// last names, and returns none rather than guessing while ambiguity
// remains: two same-surname candidates fail tier 3.
func Match(firstName, lastName, position string, candidates []roster.Member) (roster.Member, bool) {
	for _, c := range candidates {
		if strings.EqualFold(c.FirstName, firstName) && strings.EqualFold(c.LastName, lastName) {
			return c, true
		}
	}

	for _, c := range candidates {
		if !strings.EqualFold(c.LastName, lastName) {
			continue
		}
		if !PositionsCompatible(c.Position, position) {
			continue
		}
		if FirstNamesEquivalent(c.FirstName, firstName) {
			return c, true
		}
	}

	var only roster.Member
	found := 0
	for _, c := range candidates {
		if strings.EqualFold(c.LastName, lastName) {
			only = c
			found++
		}
	}
	if found == 1 {
		return only, true
	}
	return roster.Member{}, false
}

// FullNamesEquivalent applies the matcher's name logic to whole display
// names: last token exact, first token equivalent. Used by the career
// search when testing provider stat lines against a portal name. Names
// without a separable last name fall back to whole-string comparison.
func FullNamesEquivalent(a, b string) bool {
	fa := strings.Fields(a)
	fb := strings.Fields(b)
	if len(fa) < 2 || len(fb) < 2 {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	if !strings.EqualFold(fa[len(fa)-1], fb[len(fb)-1]) {
		return false
	}
	return FirstNamesEquivalent(fa[0], fb[0])
}
