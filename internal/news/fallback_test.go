package news

import "testing"

func TestFallbackIsFixedAndNewestFirst(t *testing.T) {
	first := Fallback()
	if len(first) != 3 {
		t.Fatalf("expected 3 fallback posts, got %d", len(first))
	}

	wantIDs := []int{1, 2, 3}
	wantDates := []string{"2024-10-01", "2024-09-01", "2024-08-01"}
	for i := range first {
		if first[i].ID != wantIDs[i] || first[i].Date != wantDates[i] {
			t.Fatalf("entry %d: unexpected %#v", i, first[i])
		}
		if first[i].Image != nil {
			t.Fatalf("entry %d: expected nil image", i)
		}
	}

	first[0].Title = "mutated"
	if second := Fallback(); second[0].Title != "New AAMI Standards Released" {
		t.Fatalf("expected a fresh table per call, got %q", second[0].Title)
	}
}
