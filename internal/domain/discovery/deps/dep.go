package deps

import (
	"context"

	catdto "github.com/CodesofAkash/twitch-clone/internal/domain/category/dto"
	catentities "github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/entities"
)

// StreamRepository defines the interface for stream discovery data access
type StreamRepository interface {
	// Search retrieves eligible streams for the viewer under the given
	// filters, ordered by the ranking policy. Owner, category and tag
	// relations are populated.
	Search(ctx context.Context, viewerID string, filters dto.SearchFilters) ([]entities.Stream, error)

	// FeedFor retrieves eligible streams owned by users the viewer
	// follows, ordered by the ranking policy
	FeedFor(ctx context.Context, viewerID string) ([]entities.Stream, error)

	// GetByOwner retrieves the stream owned by a user
	GetByOwner(ctx context.Context, ownerID string) (*entities.Stream, error)

	// SetCategory assigns a category to a stream
	SetCategory(ctx context.Context, streamID string, categoryID *string) error

	// UpdateLiveStatus applies a media provider report: live flag, viewer
	// count (zeroed when offline) and the peak watermark
	UpdateLiveStatus(ctx context.Context, streamID string, isLive bool, viewerCount int) error
}

// UserRepository defines the interface for recommended-user data access
type UserRepository interface {
	// Recommended retrieves candidate users for the viewer: not the viewer,
	// not already followed, not blocking the viewer; live streamers first,
	// then by viewer count, then newest accounts. An empty viewerID returns
	// all users in the same order.
	Recommended(ctx context.Context, viewerID string, limit int) ([]entities.User, error)
}

// CategoryResolver resolves tagged category references through the
// category registry
type CategoryResolver interface {
	Resolve(ctx context.Context, ref catdto.CategoryRef) (*catentities.Category, error)
}

// TagReplacer replaces a stream's full tag set through the tag registry
type TagReplacer interface {
	ReplaceForStream(ctx context.Context, streamID string, names []string) error
}
