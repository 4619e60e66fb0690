package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/CodesofAkash/twitch-clone/internal/domain/category/deps"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/category/errors"
	"github.com/CodesofAkash/twitch-clone/pkg/mapfn"
)

// Repository is an in-memory category repository with the same slug
// uniqueness semantics as the postgres implementation. Used in tests.
type Repository struct {
	mu          sync.RWMutex
	byID        map[string]*entities.Category
	bySlug      map[string]*entities.Category
	statsBySlug map[string]statRow
	seq         int
}

type statRow struct {
	streamCount     int64
	liveViewerCount int64
}

// NewRepository creates an empty in-memory category repository
func NewRepository() *Repository {
	return &Repository{
		byID:        make(map[string]*entities.Category),
		bySlug:      make(map[string]*entities.Category),
		statsBySlug: make(map[string]statRow),
	}
}

var _ deps.CategoryRepository = (*Repository)(nil)

// SetStats seeds aggregate numbers for a category slug
func (r *Repository) SetStats(slug string, streamCount, liveViewerCount int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statsBySlug[slug] = statRow{streamCount: streamCount, liveViewerCount: liveViewerCount}
}

func (r *Repository) Create(ctx context.Context, category *entities.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bySlug[category.Slug]; exists {
		return domainerrors.ErrCategoryAlreadyExists
	}

	if category.ID == "" {
		r.seq++
		category.ID = fmt.Sprintf("cat-%d", r.seq)
	}

	clone := *category
	r.byID[clone.ID] = &clone
	r.bySlug[clone.Slug] = &clone
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.byID[id]
	if !ok || !category.IsActive {
		return nil, domainerrors.ErrCategoryNotFound
	}
	clone := *category
	return &clone, nil
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.bySlug[slug]
	if !ok || !category.IsActive {
		return nil, domainerrors.ErrCategoryNotFound
	}
	clone := *category
	return &clone, nil
}

func (r *Repository) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.bySlug[slug]
	if !ok {
		return nil, domainerrors.ErrCategoryNotFound
	}
	clone := *category
	return &clone, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]entities.Category, 0, len(r.byID))
	for _, c := range r.byID {
		if c.IsActive {
			categories = append(categories, *c)
		}
	}

	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].IsPredefined != categories[j].IsPredefined {
			return categories[i].IsPredefined
		}
		return categories[i].Name < categories[j].Name
	})

	return categories, nil
}

func (r *Repository) ListWithStats(ctx context.Context, limit int) ([]dto.CategoryWithStats, error) {
	active, _ := r.ListActive(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make([]dto.CategoryWithStats, 0, len(active))
	for _, c := range active {
		row := r.statsBySlug[c.Slug]
		stats = append(stats, dto.CategoryWithStats{
			Category:        c,
			StreamCount:     row.streamCount,
			LiveViewerCount: row.liveViewerCount,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].LiveViewerCount != stats[j].LiveViewerCount {
			return stats[i].LiveViewerCount > stats[j].LiveViewerCount
		}
		return stats[i].Name < stats[j].Name
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}

	return stats, nil
}

func (r *Repository) Search(ctx context.Context, query string, limit int) ([]entities.Category, error) {
	active, _ := r.ListActive(ctx)

	needle := strings.ToLower(query)
	matches := mapfn.FilterSlice(active, func(c entities.Category) bool {
		return strings.Contains(strings.ToLower(c.Name), needle)
	})

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}
