package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CodesofAkash/twitch-clone/internal/domain/category/deps"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/category/errors"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) deps.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create inserts a new category; the unique slug index rejects duplicates
func (r *categoryRepository) Create(ctx context.Context, category *entities.Category) error {
	result := r.db.WithContext(ctx).Create(category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrCategoryAlreadyExists
		}
		return domainerrors.ErrDatabaseOperation
	}
	return nil
}

// GetByID retrieves an active category by id
func (r *categoryRepository) GetByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	result := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&category)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}
		return nil, domainerrors.ErrDatabaseOperation
	}

	return &category, nil
}

// GetBySlug retrieves an active category by slug
func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var category entities.Category
	result := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&category)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}
		return nil, domainerrors.ErrDatabaseOperation
	}

	return &category, nil
}

// FindBySlug retrieves a category by slug regardless of active state.
// The get-or-create path needs it: the unique slug index covers inactive
// rows, so an active-only lookup would miss the row that blocks the insert.
func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var category entities.Category
	result := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&category)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}
		return nil, domainerrors.ErrDatabaseOperation
	}

	return &category, nil
}

// ListActive retrieves active categories, predefined first then by name
func (r *categoryRepository) ListActive(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("is_predefined DESC").
		Order("name ASC").
		Find(&categories)

	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return categories, nil
}

// ListWithStats aggregates per-category stream counts and live viewer sums
func (r *categoryRepository) ListWithStats(ctx context.Context, limit int) ([]dto.CategoryWithStats, error) {
	var stats []dto.CategoryWithStats
	query := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Select("categories.*, COUNT(streams.id) AS stream_count, "+
			"COALESCE(SUM(CASE WHEN streams.is_live THEN streams.viewer_count ELSE 0 END), 0) AS live_viewer_count").
		Joins("LEFT JOIN streams ON streams.category_id = categories.id").
		Where("categories.is_active = ?", true).
		Group("categories.id").
		Order("live_viewer_count DESC").
		Order("categories.name ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&stats)
	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return stats, nil
}

// Search retrieves active categories whose name contains the query
func (r *categoryRepository) Search(ctx context.Context, query string, limit int) ([]entities.Category, error) {
	var categories []entities.Category
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&categories)

	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return categories, nil
}
