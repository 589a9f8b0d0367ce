package career

import "testing"

func TestHistoryAdd_RejectsDuplicateYear(t *testing.T) {
	t.Parallel()

	var h History
	if !h.Add("Alabama", 2024) {
		t.Fatal("first add for 2024 should succeed")
	}
	if h.Add("Wisconsin", 2024) {
		t.Fatal("second add for 2024 must be rejected")
	}
	if len(h.Seasons) != 1 || h.Seasons[0].Team != "Alabama" {
		t.Fatalf("unexpected seasons: %+v", h.Seasons)
	}
}

func TestHistoryAdd_CapsAtMaxSeasons(t *testing.T) {
	t.Parallel()

	var h History
	for year := 2025; year >= 2019; year-- {
		h.Add("Alabama", year)
	}
	if len(h.Seasons) != MaxSeasons {
		t.Fatalf("got %d seasons, want %d", len(h.Seasons), MaxSeasons)
	}
	if !h.Full() {
		t.Fatal("history should report full")
	}
}

func TestHistoryAdd_KeepsYearsDescending(t *testing.T) {
	t.Parallel()

	var h History
	h.Add("Alabama", 2022)
	h.Add("Wisconsin", 2025)
	h.Add("Ohio State", 2023)

	for i := 1; i < len(h.Seasons); i++ {
		if h.Seasons[i-1].Year <= h.Seasons[i].Year {
			t.Fatalf("not strictly descending: %+v", h.Seasons)
		}
	}
}
