package identity

import "strings"

// nicknameClusters groups given-name variants that should be treated as the
// same first name. Clusters are data: adding a variant means extending a
// row, never touching matching logic.
var nicknameClusters = [][]string{
	{"mike", "michael", "mick", "mickey"},
	{"cam", "cameron", "kam", "kamron"},
	{"tj", "t.j."},
	{"aj", "a.j."},
	{"cj", "c.j."},
	{"dj", "d.j."},
	{"jj", "j.j."},
	{"kj", "k.j."},
	{"rj", "r.j."},
	{"will", "william", "bill", "billy", "liam"},
	{"rob", "robert", "bob", "bobby"},
	{"jim", "james", "jimmy", "jamie"},
	{"joe", "joseph", "joey"},
	{"jack", "john", "johnny", "jon"},
	{"nick", "nicholas", "nico"},
	{"alex", "alexander", "xander"},
	{"chris", "christopher", "topher"},
	{"matt", "matthew"},
	{"dan", "daniel", "danny"},
	{"dave", "david"},
	{"tony", "anthony"},
	{"drew", "andrew", "andy"},
	{"zach", "zachary", "zack", "zac"},
	{"josh", "joshua"},
	{"jake", "jacob"},
	{"ben", "benjamin", "benny"},
	{"sam", "samuel", "sammy"},
	{"tom", "thomas", "tommy"},
	{"ken", "kenneth", "kenny"},
	{"steve", "steven", "stephen"},
	{"greg", "gregory"},
	{"nate", "nathan", "nathaniel"},
	{"ed", "edward", "eddie"},
	{"ted", "theodore", "teddy"},
	{"ray", "raymond"},
	{"rich", "richard", "rick", "ricky"},
	{"isaiah", "zay"},
	{"marcus", "marc", "mark"},
	{"demetrius", "meech"},
}

// clusterByVariant maps each lowercase variant to its cluster index.
var clusterByVariant = func() map[string]int {
	m := make(map[string]int)
	for i, cluster := range nicknameClusters {
		for _, variant := range cluster {
			m[variant] = i
		}
	}
	return m
}()

// FirstNamesEquivalent reports whether two first names should be treated as
// the same player's name. True on exact match, when one is a prefix of the
// other, or when both belong to the same nickname cluster. Symmetric.
func FirstNamesEquivalent(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if strings.HasPrefix(a, b) || strings.HasPrefix(b, a) {
		return true
	}
	ca, okA := clusterByVariant[a]
	cb, okB := clusterByVariant[b]
	return okA && okB && ca == cb
}
