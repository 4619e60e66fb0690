package ranking

import (
	"testing"
	"time"

	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/entities"
)

func stream(id string, live bool, viewers int, updated time.Time) entities.Stream {
	return entities.Stream{ID: id, IsLive: live, ViewerCount: viewers, UpdatedAt: updated}
}

func ids(streams []entities.Stream) []string {
	out := make([]string, len(streams))
	for i, s := range streams {
		out[i] = s.ID
	}
	return out
}

func assertOrder(t *testing.T, streams []entities.Stream, want []string) {
	t.Helper()
	got := ids(streams)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLiveAlwaysRanksFirst(t *testing.T) {
	now := time.Now()
	streams := []entities.Stream{
		stream("offline-popular", false, 9000, now),
		stream("live-quiet", true, 1, now.Add(-time.Hour)),
	}

	Order(streams, SortViewers)
	assertOrder(t, streams, []string{"live-quiet", "offline-popular"})

	Order(streams, SortRecent)
	assertOrder(t, streams, []string{"live-quiet", "offline-popular"})
}

func TestViewersIsDefaultSecondaryKey(t *testing.T) {
	now := time.Now()
	streams := []entities.Stream{
		stream("b", true, 50, now),
		stream("a", true, 200, now),
		stream("c", true, 100, now),
	}

	Order(streams, "")
	assertOrder(t, streams, []string{"a", "c", "b"})
}

func TestRecentOrdersByUpdateTime(t *testing.T) {
	now := time.Now()
	streams := []entities.Stream{
		stream("old", true, 900, now.Add(-2*time.Hour)),
		stream("new", true, 1, now),
		stream("mid", true, 500, now.Add(-time.Hour)),
	}

	Order(streams, SortRecent)
	assertOrder(t, streams, []string{"new", "mid", "old"})
}

func TestUpdatedAtBreaksViewerTies(t *testing.T) {
	now := time.Now()
	streams := []entities.Stream{
		stream("stale", false, 0, now.Add(-time.Hour)),
		stream("fresh", false, 0, now),
	}

	Order(streams, SortViewers)
	assertOrder(t, streams, []string{"fresh", "stale"})
}

func TestOrderIsDeterministic(t *testing.T) {
	now := time.Now()
	build := func() []entities.Stream {
		return []entities.Stream{
			stream("a", true, 100, now),
			stream("b", false, 0, now.Add(-time.Minute)),
			stream("c", true, 100, now),
			stream("d", true, 50, now.Add(-2*time.Minute)),
			stream("e", false, 0, now.Add(-time.Minute)),
		}
	}

	first := build()
	second := build()
	Order(first, SortViewers)
	Order(second, SortViewers)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("two runs disagree at %d: %v vs %v", i, ids(first), ids(second))
		}
	}
}

func TestOrderIsStableForFullTies(t *testing.T) {
	now := time.Now()
	streams := []entities.Stream{
		stream("first", true, 100, now),
		stream("second", true, 100, now),
	}

	Order(streams, SortViewers)
	assertOrder(t, streams, []string{"first", "second"})
}

func TestNormalize(t *testing.T) {
	if Normalize("") != SortViewers {
		t.Error("empty key must default to viewers")
	}
	if Normalize("bogus") != SortViewers {
		t.Error("unknown key must default to viewers")
	}
	if Normalize(SortRecent) != SortRecent {
		t.Error("recent must stay recent")
	}
}
