package deps

import (
	"context"

	"github.com/CodesofAkash/twitch-clone/internal/domain/category/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// Create inserts a new category; a slug collision returns a conflict error
	Create(ctx context.Context, category *entities.Category) error

	// GetByID retrieves an active category by id
	GetByID(ctx context.Context, id string) (*entities.Category, error)

	// GetBySlug retrieves an active category by slug
	GetBySlug(ctx context.Context, slug string) (*entities.Category, error)

	// FindBySlug retrieves a category by slug regardless of active state.
	// The get-or-create path uses it: the unique slug index spans inactive
	// rows too, so the pre-check and the duplicate re-read must see them.
	FindBySlug(ctx context.Context, slug string) (*entities.Category, error)

	// ListActive retrieves active categories, predefined first then by name
	ListActive(ctx context.Context) ([]entities.Category, error)

	// ListWithStats retrieves active categories with stream counts and live
	// viewer sums, ordered by live viewers descending, capped to limit
	ListWithStats(ctx context.Context, limit int) ([]dto.CategoryWithStats, error)

	// Search retrieves active categories whose name contains the query
	Search(ctx context.Context, query string, limit int) ([]entities.Category, error)
}

// ListingCache caches the active-category listing with a TTL.
// Set replaces the cached listing, Invalidate drops it; the registry's
// write path calls Invalidate synchronously after every create.
type ListingCache interface {
	Get() ([]entities.Category, bool)
	Set(categories []entities.Category)
	Invalidate()
}
