package team

import (
	"sort"
	"strings"
)

// Info is the static metadata carried for every canonical team.
type Info struct {
	Conference   string `json:"conference"`
	State        string `json:"state"`
	City         string `json:"city"`
	PrimaryColor string `json:"primaryColor"`
}

// Team pairs a canonical name with its metadata for list responses.
type Team struct {
	Name string `json:"name"`
	Info
}

// Normalize maps any known spelling of a team name to its canonical form.
// Alias lookup first, then the canonical table itself, both case-insensitive
// exact matches. Unrecognized names come back unchanged; callers must treat
// those as "not a known team" and keep them out of team-keyed collections.
func Normalize(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return raw
	}

	for canonical, variants := range aliasesByCanonical {
		for _, alias := range variants {
			if strings.EqualFold(alias, name) {
				return canonical
			}
		}
	}

	for canonical := range infoByName {
		if strings.EqualFold(canonical, name) {
			return canonical
		}
	}

	return raw
}

// IsKnown reports whether name is a canonical team.
func IsKnown(name string) bool {
	_, ok := infoByName[name]
	return ok
}

// Lookup returns the metadata for a canonical team.
func Lookup(name string) (Info, bool) {
	info, ok := infoByName[name]
	return info, ok
}

// All returns every canonical team sorted by name.
func All() []Team {
	out := make([]Team, 0, len(infoByName))
	for name, info := range infoByName {
		out = append(out, Team{Name: name, Info: info})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns every canonical team name sorted alphabetically. The career
// resolver uses this as the deep-search universe.
func Names() []string {
	out := make([]string, 0, len(infoByName))
	for name := range infoByName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
