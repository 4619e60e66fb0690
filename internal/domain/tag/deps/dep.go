package deps

import (
	"context"

	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/entities"
)

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// Create inserts a new tag; a slug collision returns a conflict error
	Create(ctx context.Context, tag *entities.Tag) error

	// GetBySlug retrieves a tag by slug
	GetBySlug(ctx context.Context, slug string) (*entities.Tag, error)

	// ListAll retrieves all tags ordered by name
	ListAll(ctx context.Context) ([]entities.Tag, error)

	// Search retrieves tags whose name contains the query
	Search(ctx context.Context, query string, limit int) ([]entities.Tag, error)

	// Popular retrieves tags ordered by linked-stream count descending
	Popular(ctx context.Context, limit int) ([]dto.TagWithCount, error)

	// ReplaceStreamTags deletes all tag links of a stream and inserts the
	// given tag ids as the new full set
	ReplaceStreamTags(ctx context.Context, streamID string, tagIDs []string) error

	// GetStreamTags retrieves the tags currently linked to a stream
	GetStreamTags(ctx context.Context, streamID string) ([]entities.Tag, error)
}
