package buissines

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/CodesofAkash/twitch-clone/internal/domain/category/deps"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/category/errors"
	"github.com/CodesofAkash/twitch-clone/pkg/slug"
)

// defaultCategoryImage is the placeholder for custom categories created
// from a creator's free text.
const defaultCategoryImage = "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=600&h=800&fit=crop"

const searchLimit = 10

// UseCase implements the category registry
type UseCase struct {
	repo   deps.CategoryRepository
	cache  deps.ListingCache
	logger zerolog.Logger
}

// NewUseCase creates a new category use case
func NewUseCase(
	repo deps.CategoryRepository,
	cache deps.ListingCache,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ResolveOrCreate returns the category for a free-text name, creating it
// when no category with the derived slug exists. Concurrent calls with the
// same name converge on one row: a duplicated-slug insert means someone
// else just created it, so the registry re-reads and returns the winner.
func (u *UseCase) ResolveOrCreate(ctx context.Context, name string) (*entities.Category, error) {
	derived := slug.Derive(name)
	if derived == "" {
		return nil, domainerrors.ErrInvalidName
	}

	// Lookup must ignore is_active: an inactive category still owns its
	// slug in the unique index, and the registry returns it rather than
	// colliding on insert.
	existing, err := u.repo.FindBySlug(ctx, derived)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrCategoryNotFound) {
		u.logger.Error().Err(err).
			Str("slug", derived).
			Msg("failed to look up category by slug")
		return nil, err
	}

	category := &entities.Category{
		Name:         strings.TrimSpace(name),
		Slug:         derived,
		ImageURL:     defaultCategoryImage,
		IsPredefined: false,
		IsActive:     true,
	}

	if err := u.repo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerrors.ErrCategoryAlreadyExists) {
			u.logger.Debug().
				Str("slug", derived).
				Msg("lost category creation race, returning existing row")
			return u.repo.FindBySlug(ctx, derived)
		}

		u.logger.Error().Err(err).
			Str("slug", derived).
			Msg("failed to create category")
		return nil, err
	}

	u.cache.Invalidate()

	u.logger.Info().
		Str("category_id", category.ID).
		Str("slug", derived).
		Msg("custom category created")

	return category, nil
}

// Resolve resolves a tagged category reference. An id reference that
// misses is a NotFound error; a name reference falls through to
// get-or-create.
func (u *UseCase) Resolve(ctx context.Context, ref dto.CategoryRef) (*entities.Category, error) {
	if ref.IsByID() {
		return u.repo.GetByID(ctx, ref.ID)
	}
	return u.ResolveOrCreate(ctx, ref.Name)
}

// GetBySlug retrieves an active category by slug
func (u *UseCase) GetBySlug(ctx context.Context, categorySlug string) (*entities.Category, error) {
	return u.repo.GetBySlug(ctx, categorySlug)
}

// ListActive returns active categories, predefined first then
// alphabetical, served from the TTL cache when fresh.
func (u *UseCase) ListActive(ctx context.Context) ([]entities.Category, error) {
	if cached, ok := u.cache.Get(); ok {
		return cached, nil
	}

	categories, err := u.repo.ListActive(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("failed to list active categories")
		return nil, err
	}

	u.cache.Set(categories)
	return categories, nil
}

// ListWithStats returns active categories with aggregate stream numbers,
// sorted by live viewers descending and capped to limit.
func (u *UseCase) ListWithStats(ctx context.Context, limit int) ([]dto.CategoryWithStats, error) {
	stats, err := u.repo.ListWithStats(ctx, limit)
	if err != nil {
		u.logger.Error().Err(err).Msg("failed to list categories with stats")
		return nil, err
	}
	return stats, nil
}

// Search returns active categories whose name contains the query
func (u *UseCase) Search(ctx context.Context, query string) ([]entities.Category, error) {
	if strings.TrimSpace(query) == "" {
		return []entities.Category{}, nil
	}

	categories, err := u.repo.Search(ctx, query, searchLimit)
	if err != nil {
		u.logger.Error().Err(err).
			Str("query", query).
			Msg("failed to search categories")
		return nil, err
	}
	return categories, nil
}
