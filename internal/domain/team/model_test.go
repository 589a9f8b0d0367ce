package team

import "testing"

func TestNormalize_Aliases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Ole Miss", "Ole Miss"},
		{"ole miss", "Ole Miss"},
		{"Mississippi", "Ole Miss"},
		{"MISSISSIPPI", "Ole Miss"},
		{"Southern California", "USC"},
		{"Brigham Young", "BYU"},
		{"UL Monroe", "Louisiana Monroe"},
		{"Louisiana-Lafayette", "Louisiana"},
		{"alabama", "Alabama"},
		{"Wisconsin", "Wisconsin"},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_UnknownPassesThrough(t *testing.T) {
	t.Parallel()

	got := Normalize("Fake State")
	if got != "Fake State" {
		t.Fatalf("Normalize(Fake State) = %q, want unchanged", got)
	}
	if IsKnown(got) {
		t.Fatal("Fake State must not be a known team")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Mississippi", "ole miss", "Fake State", "Alabama", "san josé state"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestAll_SortedAndComplete(t *testing.T) {
	t.Parallel()

	items := All()
	if len(items) != len(infoByName) {
		t.Fatalf("All() returned %d teams, want %d", len(items), len(infoByName))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Name >= items[i].Name {
			t.Fatalf("All() not sorted at %d: %q >= %q", i, items[i-1].Name, items[i].Name)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	info, ok := Lookup("Wisconsin")
	if !ok {
		t.Fatal("Wisconsin should be known")
	}
	if info.Conference != "Big Ten" || info.City != "Madison" {
		t.Fatalf("unexpected info: %+v", info)
	}

	if _, ok := Lookup("Fake State"); ok {
		t.Fatal("Fake State should not resolve")
	}
}
