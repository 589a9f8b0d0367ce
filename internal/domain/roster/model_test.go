package roster

import "testing"

func TestMemberName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		member Member
		want   string
	}{
		{Member{FirstName: "Cameron", LastName: "Calhoun"}, "Cameron Calhoun"},
		{Member{FirstName: "Cameron"}, "Cameron"},
		{Member{LastName: "Calhoun"}, "Calhoun"},
		{Member{}, "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.member.Name(); got != tc.want {
			t.Errorf("Name() = %q, want %q", got, tc.want)
		}
	}
}

func TestMemberHometown(t *testing.T) {
	t.Parallel()

	cases := []struct {
		member Member
		want   string
	}{
		{Member{HomeCity: "Cincinnati", HomeState: "OH"}, "Cincinnati, OH"},
		{Member{HomeCity: "Cincinnati"}, "Cincinnati"},
		{Member{HomeState: "OH"}, "OH"},
		{Member{}, ""},
	}
	for _, tc := range cases {
		if got := tc.member.Hometown(); got != tc.want {
			t.Errorf("Hometown() = %q, want %q", got, tc.want)
		}
	}
}

func TestSortByPosition(t *testing.T) {
	t.Parallel()

	members := []Member{
		{FirstName: "Al", LastName: "Kicker", Position: "K"},
		{FirstName: "Bo", LastName: "Corner", Position: "CB"},
		{FirstName: "Cy", LastName: "Passer", Position: "QB"},
		{FirstName: "Dee", LastName: "Mystery", Position: "XX"},
		{FirstName: "Ed", LastName: "Receiver", Position: "WR"},
		{FirstName: "Abe", LastName: "Receiver", Position: "WR"},
	}
	SortByPosition(members)

	gotOrder := make([]string, len(members))
	for i, m := range members {
		gotOrder[i] = m.Position
	}
	wantOrder := []string{"QB", "WR", "WR", "CB", "K", "XX"}
	for i := range wantOrder {
		if gotOrder[i] != wantOrder[i] {
			t.Fatalf("position order = %v, want %v", gotOrder, wantOrder)
		}
	}

	// Within the WR group names decide.
	if members[1].FirstName != "Abe" || members[2].FirstName != "Ed" {
		t.Fatalf("WR group not name-sorted: %q then %q", members[1].Name(), members[2].Name())
	}
}
