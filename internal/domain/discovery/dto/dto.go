package dto

import (
	"time"

	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/ranking"
)

// SearchFilters are the conjunctive predicates of a discovery query.
// Zero values mean "no restriction"; an unresolvable category or tag slug
// yields an empty result set, not an error.
type SearchFilters struct {
	Term         string
	CategorySlug string
	TagSlug      string
	LiveOnly     bool
	SortBy       ranking.SortKey
}

// OwnerSummary is the flat owner shape exposed on stream summaries
type OwnerSummary struct {
	Username string `json:"username"`
	ImageURL string `json:"imageUrl"`
}

// StreamSummary is the projection returned by every discovery view:
// nested category and tag rows flattened into plain fields.
type StreamSummary struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ThumbnailURL string       `json:"thumbnailUrl"`
	IsLive       bool         `json:"isLive"`
	ViewerCount  int          `json:"viewerCount"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	Owner        OwnerSummary `json:"owner"`
	CategoryName string       `json:"categoryName,omitempty"`
	CategorySlug string       `json:"categorySlug,omitempty"`
	TagNames     []string     `json:"tagNames"`
}

// UserSummary is the projection returned by the recommended view
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"imageUrl"`
	IsLive   bool   `json:"isLive"`
}

// MediaStatusEvent is the media provider's report for a stream, consumed
// from the stream-status topic. The engine stores these fields verbatim
// and never computes them.
type MediaStatusEvent struct {
	StreamID    string `json:"stream_id"`
	IsLive      bool   `json:"is_live"`
	ViewerCount int    `json:"viewer_count"`
}

// SetCategoryRequest is the body for the stream category update.
// ByName selects free-text resolution (get-or-create); otherwise the
// value is treated as an existing category id.
type SetCategoryRequest struct {
	Category string `json:"category"`
	ByName   bool   `json:"byName"`
}
