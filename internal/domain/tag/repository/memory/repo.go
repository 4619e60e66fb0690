package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/deps"
	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/entities"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/tag/errors"
	"github.com/CodesofAkash/twitch-clone/pkg/mapfn"
)

// Repository is an in-memory tag repository with the same slug uniqueness
// semantics as the postgres implementation. Used in tests.
type Repository struct {
	mu         sync.RWMutex
	bySlug     map[string]*entities.Tag
	streamTags map[string][]string
	seq        int
}

// NewRepository creates an empty in-memory tag repository
func NewRepository() *Repository {
	return &Repository{
		bySlug:     make(map[string]*entities.Tag),
		streamTags: make(map[string][]string),
	}
}

var _ deps.TagRepository = (*Repository)(nil)

func (r *Repository) Create(ctx context.Context, tag *entities.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bySlug[tag.Slug]; exists {
		return domainerrors.ErrTagAlreadyExists
	}

	if tag.ID == "" {
		r.seq++
		tag.ID = fmt.Sprintf("tag-%d", r.seq)
	}

	clone := *tag
	r.bySlug[clone.Slug] = &clone
	return nil
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*entities.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tag, ok := r.bySlug[slug]
	if !ok {
		return nil, domainerrors.ErrTagNotFound
	}
	clone := *tag
	return &clone, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]entities.Tag, 0, len(r.bySlug))
	for _, t := range r.bySlug {
		tags = append(tags, *t)
	}
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

func (r *Repository) Search(ctx context.Context, query string, limit int) ([]entities.Tag, error) {
	all, _ := r.ListAll(ctx)

	needle := strings.ToLower(query)
	matches := mapfn.FilterSlice(all, func(t entities.Tag) bool {
		return strings.Contains(strings.ToLower(t.Name), needle)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

func (r *Repository) Popular(ctx context.Context, limit int) ([]dto.TagWithCount, error) {
	all, _ := r.ListAll(ctx)

	r.mu.RLock()
	counts := make(map[string]int64)
	for _, tagIDs := range r.streamTags {
		for _, id := range tagIDs {
			counts[id]++
		}
	}
	r.mu.RUnlock()

	popular := make([]dto.TagWithCount, 0, len(all))
	for _, t := range all {
		popular = append(popular, dto.TagWithCount{Tag: t, StreamCount: counts[t.ID]})
	}

	sort.SliceStable(popular, func(i, j int) bool {
		if popular[i].StreamCount != popular[j].StreamCount {
			return popular[i].StreamCount > popular[j].StreamCount
		}
		return popular[i].Name < popular[j].Name
	})

	if limit > 0 && len(popular) > limit {
		popular = popular[:limit]
	}

	return popular, nil
}

func (r *Repository) ReplaceStreamTags(ctx context.Context, streamID string, tagIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(tagIDs) == 0 {
		delete(r.streamTags, streamID)
		return nil
	}

	r.streamTags[streamID] = append([]string(nil), tagIDs...)
	return nil
}

func (r *Repository) GetStreamTags(ctx context.Context, streamID string) ([]entities.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]entities.Tag, 0, len(r.bySlug))
	for _, t := range r.bySlug {
		all = append(all, *t)
	}
	byID := mapfn.KeyBy(all, func(t entities.Tag) string { return t.ID })

	tags := make([]entities.Tag, 0, len(r.streamTags[streamID]))
	for _, id := range r.streamTags[streamID] {
		if t, ok := byID[id]; ok {
			tags = append(tags, t)
		}
	}

	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}
