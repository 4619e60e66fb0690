package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/deps"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/entities"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/discovery/errors"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/ranking"
)

type streamRepository struct {
	db *gorm.DB
}

// NewStreamRepository creates a new stream repository
func NewStreamRepository(db *gorm.DB) deps.StreamRepository {
	return &streamRepository{
		db: db,
	}
}

// excludeBlocked hides streams whose owner has blocked the viewer.
// Anonymous viewers see everything. The reverse direction (content of
// users the viewer blocked) is intentionally not filtered here.
func excludeBlocked(viewerID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if viewerID == "" {
			return db
		}
		return db.Where(
			"NOT EXISTS (SELECT 1 FROM blocks WHERE blocks.blocker_id = streams.user_id AND blocks.blocked_id = ?)",
			viewerID,
		)
	}
}

// withCategorySlug restricts to streams in the category with the slug.
// A slug with no matching row simply matches nothing.
func withCategorySlug(slug string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if slug == "" {
			return db
		}
		return db.Where(
			"EXISTS (SELECT 1 FROM categories WHERE categories.id = streams.category_id AND categories.slug = ?)",
			slug,
		)
	}
}

// withTagSlug restricts to streams linked to the tag with the slug
func withTagSlug(slug string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if slug == "" {
			return db
		}
		return db.Where(
			"EXISTS (SELECT 1 FROM stream_tags JOIN tags ON tags.id = stream_tags.tag_id "+
				"WHERE stream_tags.stream_id = streams.id AND tags.slug = ?)",
			slug,
		)
	}
}

// withLiveOnly restricts to live streams
func withLiveOnly(liveOnly bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !liveOnly {
			return db
		}
		return db.Where("streams.is_live = ?", true)
	}
}

// withTerm restricts to streams whose name or owner username contains the
// term, case-insensitively. Plain substring match, no tokenization.
func withTerm(term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + term + "%"
		return db.Where(
			"(streams.name ILIKE ? OR EXISTS (SELECT 1 FROM users WHERE users.id = streams.user_id AND users.username ILIKE ?))",
			pattern, pattern,
		)
	}
}

// Search composes the visibility predicate with the optional filters and
// fetches ordered, fully-populated stream rows
func (r *streamRepository) Search(ctx context.Context, viewerID string, filters dto.SearchFilters) ([]entities.Stream, error) {
	var streams []entities.Stream
	result := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Tags.Tag").
		Scopes(
			excludeBlocked(viewerID),
			withCategorySlug(filters.CategorySlug),
			withTagSlug(filters.TagSlug),
			withLiveOnly(filters.LiveOnly),
			withTerm(filters.Term),
		).
		Order(ranking.Clause(filters.SortBy)).
		Find(&streams)

	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return streams, nil
}

// FeedFor fetches eligible streams owned by users the viewer follows
func (r *streamRepository) FeedFor(ctx context.Context, viewerID string) ([]entities.Stream, error) {
	var streams []entities.Stream
	result := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Tags.Tag").
		Where(
			"EXISTS (SELECT 1 FROM follows WHERE follows.follower_id = ? AND follows.following_id = streams.user_id)",
			viewerID,
		).
		Scopes(excludeBlocked(viewerID)).
		Order(ranking.Clause(ranking.SortViewers)).
		Find(&streams)

	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return streams, nil
}

// GetByOwner retrieves the stream owned by a user
func (r *streamRepository) GetByOwner(ctx context.Context, ownerID string) (*entities.Stream, error) {
	var stream entities.Stream
	result := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		First(&stream)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrStreamNotFound
		}
		return nil, domainerrors.ErrDatabaseOperation
	}

	return &stream, nil
}

// SetCategory assigns a category to a stream
func (r *streamRepository) SetCategory(ctx context.Context, streamID string, categoryID *string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Stream{}).
		Where("id = ?", streamID).
		Update("category_id", categoryID)

	if result.Error != nil {
		return domainerrors.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrStreamNotFound
	}

	return nil
}

// UpdateLiveStatus applies a media provider report. Viewer count is
// zeroed when the stream goes offline; the peak watermark only rises.
func (r *streamRepository) UpdateLiveStatus(ctx context.Context, streamID string, isLive bool, viewerCount int) error {
	if !isLive {
		viewerCount = 0
	}

	result := r.db.WithContext(ctx).
		Model(&entities.Stream{}).
		Where("id = ?", streamID).
		Updates(map[string]interface{}{
			"is_live":           isLive,
			"viewer_count":      viewerCount,
			"peak_viewer_count": gorm.Expr("GREATEST(peak_viewer_count, ?)", viewerCount),
		})

	if result.Error != nil {
		return domainerrors.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrStreamNotFound
	}

	return nil
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) deps.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Recommended fetches candidate users for the recommended view. Live
// streamers rank first, then viewer count, then newest accounts.
func (r *userRepository) Recommended(ctx context.Context, viewerID string, limit int) ([]entities.User, error) {
	var users []entities.User
	query := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Preload("Stream").
		Joins("LEFT JOIN streams ON streams.user_id = users.id").
		Order("COALESCE(streams.is_live, FALSE) DESC").
		Order("COALESCE(streams.viewer_count, 0) DESC").
		Order("users.created_at DESC")

	if viewerID != "" {
		query = query.
			Where("users.id <> ?", viewerID).
			Where(
				"NOT EXISTS (SELECT 1 FROM follows WHERE follows.follower_id = ? AND follows.following_id = users.id)",
				viewerID,
			).
			Where(
				"NOT EXISTS (SELECT 1 FROM blocks WHERE blocks.blocker_id = users.id AND blocks.blocked_id = ?)",
				viewerID,
			)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&users)
	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return users, nil
}
