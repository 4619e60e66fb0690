package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	catentities "github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/deps"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/entities"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/discovery/errors"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/ranking"
	tagentities "github.com/CodesofAkash/twitch-clone/internal/domain/tag/entities"
)

// Repository is an in-memory stream/user repository mirroring the
// postgres filtering and ordering semantics. It shares the ranking
// package with the SQL implementation so the two order identically.
// Used in tests.
type Repository struct {
	mu         sync.RWMutex
	users      map[string]*entities.User
	streams    map[string]*entities.Stream
	categories map[string]*catentities.Category
	tags       map[string]*tagentities.Tag
	streamTags map[string][]string
	follows    []entities.Follow
	blocks     []entities.Block
}

// NewRepository creates an empty in-memory discovery repository
func NewRepository() *Repository {
	return &Repository{
		users:      make(map[string]*entities.User),
		streams:    make(map[string]*entities.Stream),
		categories: make(map[string]*catentities.Category),
		tags:       make(map[string]*tagentities.Tag),
		streamTags: make(map[string][]string),
	}
}

var (
	_ deps.StreamRepository = (*Repository)(nil)
	_ deps.UserRepository   = (*Repository)(nil)
)

// AddUser seeds a user
func (r *Repository) AddUser(user entities.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := user
	clone.Stream = nil
	r.users[clone.ID] = &clone
}

// AddStream seeds a stream
func (r *Repository) AddStream(stream entities.Stream) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := stream
	clone.User = entities.User{}
	clone.Category = nil
	clone.Tags = nil
	r.streams[clone.ID] = &clone
}

// AddCategory seeds a category
func (r *Repository) AddCategory(category catentities.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := category
	r.categories[clone.ID] = &clone
}

// AddTag seeds a tag and links it to a stream
func (r *Repository) AddTag(streamID string, tag tagentities.Tag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := tag
	r.tags[clone.ID] = &clone
	r.streamTags[streamID] = append(r.streamTags[streamID], clone.ID)
}

// AddFollow seeds a follow relation
func (r *Repository) AddFollow(followerID, followingID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.follows = append(r.follows, entities.Follow{FollowerID: followerID, FollowingID: followingID})
}

// AddBlock seeds a block relation
func (r *Repository) AddBlock(blockerID, blockedID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks = append(r.blocks, entities.Block{BlockerID: blockerID, BlockedID: blockedID})
}

func (r *Repository) isBlocked(blockerID, blockedID string) bool {
	for _, b := range r.blocks {
		if b.BlockerID == blockerID && b.BlockedID == blockedID {
			return true
		}
	}
	return false
}

func (r *Repository) isFollowing(followerID, followingID string) bool {
	for _, f := range r.follows {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			return true
		}
	}
	return false
}

// populate attaches owner, category and tag relations the way the
// postgres preloads do
func (r *Repository) populate(stream entities.Stream) entities.Stream {
	if owner, ok := r.users[stream.UserID]; ok {
		stream.User = *owner
	}
	if stream.CategoryID != nil {
		if category, ok := r.categories[*stream.CategoryID]; ok {
			clone := *category
			stream.Category = &clone
		}
	}
	for _, tagID := range r.streamTags[stream.ID] {
		if tag, ok := r.tags[tagID]; ok {
			stream.Tags = append(stream.Tags, tagentities.StreamTag{
				StreamID: stream.ID,
				TagID:    tagID,
				Tag:      *tag,
			})
		}
	}
	return stream
}

func (r *Repository) matches(stream entities.Stream, viewerID string, filters dto.SearchFilters) bool {
	if viewerID != "" && r.isBlocked(stream.UserID, viewerID) {
		return false
	}

	if filters.CategorySlug != "" {
		if stream.Category == nil || stream.Category.Slug != filters.CategorySlug {
			return false
		}
	}

	if filters.TagSlug != "" {
		found := false
		for _, link := range stream.Tags {
			if link.Tag.Slug == filters.TagSlug {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if filters.LiveOnly && !stream.IsLive {
		return false
	}

	if filters.Term != "" {
		needle := strings.ToLower(filters.Term)
		name := strings.ToLower(stream.Name)
		username := strings.ToLower(stream.User.Username)
		if !strings.Contains(name, needle) && !strings.Contains(username, needle) {
			return false
		}
	}

	return true
}

func (r *Repository) Search(ctx context.Context, viewerID string, filters dto.SearchFilters) ([]entities.Stream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]entities.Stream, 0)
	for _, stream := range r.streams {
		populated := r.populate(*stream)
		if r.matches(populated, viewerID, filters) {
			results = append(results, populated)
		}
	}

	ranking.Order(results, filters.SortBy)
	return results, nil
}

func (r *Repository) FeedFor(ctx context.Context, viewerID string) ([]entities.Stream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]entities.Stream, 0)
	for _, stream := range r.streams {
		if !r.isFollowing(viewerID, stream.UserID) {
			continue
		}
		if r.isBlocked(stream.UserID, viewerID) {
			continue
		}
		results = append(results, r.populate(*stream))
	}

	ranking.Order(results, ranking.SortViewers)
	return results, nil
}

func (r *Repository) GetByOwner(ctx context.Context, ownerID string) (*entities.Stream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stream := range r.streams {
		if stream.UserID == ownerID {
			clone := *stream
			return &clone, nil
		}
	}
	return nil, domainerrors.ErrStreamNotFound
}

func (r *Repository) SetCategory(ctx context.Context, streamID string, categoryID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stream, ok := r.streams[streamID]
	if !ok {
		return domainerrors.ErrStreamNotFound
	}
	stream.CategoryID = categoryID
	return nil
}

func (r *Repository) UpdateLiveStatus(ctx context.Context, streamID string, isLive bool, viewerCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stream, ok := r.streams[streamID]
	if !ok {
		return domainerrors.ErrStreamNotFound
	}

	if !isLive {
		viewerCount = 0
	}

	stream.IsLive = isLive
	stream.ViewerCount = viewerCount
	if viewerCount > stream.PeakViewerCount {
		stream.PeakViewerCount = viewerCount
	}
	return nil
}

func (r *Repository) Recommended(ctx context.Context, viewerID string, limit int) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := make([]entities.User, 0, len(r.users))
	for _, user := range r.users {
		if viewerID != "" {
			if user.ID == viewerID {
				continue
			}
			if r.isFollowing(viewerID, user.ID) {
				continue
			}
			if r.isBlocked(user.ID, viewerID) {
				continue
			}
		}

		clone := *user
		for _, stream := range r.streams {
			if stream.UserID == clone.ID {
				streamClone := *stream
				clone.Stream = &streamClone
				break
			}
		}
		candidates = append(candidates, clone)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		aLive, bLive := userIsLive(a), userIsLive(b)
		if aLive != bLive {
			return aLive
		}
		aViewers, bViewers := userViewers(a), userViewers(b)
		if aViewers != bViewers {
			return aViewers > bViewers
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

func userIsLive(u entities.User) bool {
	return u.Stream != nil && u.Stream.IsLive
}

func userViewers(u entities.User) int {
	if u.Stream == nil {
		return 0
	}
	return u.Stream.ViewerCount
}
