package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/deps"
	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/entities"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/tag/errors"
)

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) deps.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// Create inserts a new tag; the unique slug index rejects duplicates
func (r *tagRepository) Create(ctx context.Context, tag *entities.Tag) error {
	result := r.db.WithContext(ctx).Create(tag)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrTagAlreadyExists
		}
		return domainerrors.ErrDatabaseOperation
	}
	return nil
}

// GetBySlug retrieves a tag by slug
func (r *tagRepository) GetBySlug(ctx context.Context, slug string) (*entities.Tag, error) {
	var tag entities.Tag
	result := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&tag)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrTagNotFound
		}
		return nil, domainerrors.ErrDatabaseOperation
	}

	return &tag, nil
}

// ListAll retrieves all tags ordered by name
func (r *tagRepository) ListAll(ctx context.Context) ([]entities.Tag, error) {
	var tags []entities.Tag
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&tags)

	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return tags, nil
}

// Search retrieves tags whose name contains the query
func (r *tagRepository) Search(ctx context.Context, query string, limit int) ([]entities.Tag, error) {
	var tags []entities.Tag
	result := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&tags)

	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return tags, nil
}

// Popular retrieves tags ordered by linked-stream count descending
func (r *tagRepository) Popular(ctx context.Context, limit int) ([]dto.TagWithCount, error) {
	var tags []dto.TagWithCount
	query := r.db.WithContext(ctx).
		Model(&entities.Tag{}).
		Select("tags.*, COUNT(stream_tags.id) AS stream_count").
		Joins("LEFT JOIN stream_tags ON stream_tags.tag_id = tags.id").
		Group("tags.id").
		Order("stream_count DESC").
		Order("tags.name ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&tags)
	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return tags, nil
}

// ReplaceStreamTags swaps the full tag set of a stream in one transaction
func (r *tagRepository) ReplaceStreamTags(ctx context.Context, streamID string, tagIDs []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stream_id = ?", streamID).Delete(&entities.StreamTag{}).Error; err != nil {
			return err
		}

		if len(tagIDs) == 0 {
			return nil
		}

		links := make([]entities.StreamTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			links = append(links, entities.StreamTag{
				StreamID: streamID,
				TagID:    tagID,
			})
		}

		return tx.Create(&links).Error
	})

	if err != nil {
		return domainerrors.ErrDatabaseOperation
	}

	return nil
}

// GetStreamTags retrieves the tags currently linked to a stream
func (r *tagRepository) GetStreamTags(ctx context.Context, streamID string) ([]entities.Tag, error) {
	var tags []entities.Tag
	result := r.db.WithContext(ctx).
		Model(&entities.Tag{}).
		Joins("JOIN stream_tags ON stream_tags.tag_id = tags.id").
		Where("stream_tags.stream_id = ?", streamID).
		Order("tags.name ASC").
		Find(&tags)

	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return tags, nil
}
