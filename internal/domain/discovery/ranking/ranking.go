package ranking

import (
	"sort"

	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/entities"
)

// SortKey selects the secondary ordering applied after live-first.
type SortKey string

const (
	// SortViewers orders by viewer count descending (default)
	SortViewers SortKey = "viewers"
	// SortRecent orders by update time descending
	SortRecent SortKey = "recent"
)

// Normalize maps unknown keys to the default
func Normalize(key SortKey) SortKey {
	if key == SortRecent {
		return SortRecent
	}
	return SortViewers
}

// Order sorts streams in place: live before offline, then the secondary
// key, then updatedAt descending as the deterministic tiebreak. The sort
// is stable so equal rows keep their input order. The postgres repository
// mirrors this exact order via Clause; the two must never diverge.
func Order(streams []entities.Stream, key SortKey) {
	key = Normalize(key)
	sort.SliceStable(streams, func(i, j int) bool {
		return Less(streams[i], streams[j], key)
	})
}

// Less reports whether a ranks strictly before b under the given key
func Less(a, b entities.Stream, key SortKey) bool {
	if a.IsLive != b.IsLive {
		return a.IsLive
	}

	if key == SortViewers && a.ViewerCount != b.ViewerCount {
		return a.ViewerCount > b.ViewerCount
	}

	return a.UpdatedAt.After(b.UpdatedAt)
}

// Clause returns the SQL ORDER BY expression equivalent to Order
func Clause(key SortKey) string {
	if Normalize(key) == SortRecent {
		return "is_live DESC, updated_at DESC"
	}
	return "is_live DESC, viewer_count DESC, updated_at DESC"
}
