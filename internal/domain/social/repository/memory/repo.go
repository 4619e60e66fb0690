package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/entities"
	"github.com/CodesofAkash/twitch-clone/internal/domain/social/deps"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/social/errors"
)

// Repository is an in-memory social repository used in tests
type Repository struct {
	mu      sync.Mutex
	users   map[string]struct{}
	follows map[[2]string]*entities.Follow
	blocks  map[[2]string]*entities.Block
}

// NewRepository creates an empty in-memory social repository
func NewRepository() *Repository {
	return &Repository{
		users:   make(map[string]struct{}),
		follows: make(map[[2]string]*entities.Follow),
		blocks:  make(map[[2]string]*entities.Block),
	}
}

var _ deps.SocialRepository = (*Repository)(nil)

// AddUser seeds a user id
func (r *Repository) AddUser(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[userID] = struct{}{}
}

// FollowCount returns the number of stored follow relations
func (r *Repository) FollowCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.follows)
}

// HasFollow reports whether a follow relation is stored
func (r *Repository) HasFollow(followerID, followingID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.follows[[2]string{followerID, followingID}]
	return ok
}

// HasBlock reports whether a block relation is stored
func (r *Repository) HasBlock(blockerID, blockedID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.blocks[[2]string{blockerID, blockedID}]
	return ok
}

func (r *Repository) UserExists(ctx context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[userID]
	return ok, nil
}

func (r *Repository) CreateFollow(ctx context.Context, followerID, followingID string) (*entities.Follow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]string{followerID, followingID}
	if _, ok := r.follows[key]; ok {
		return nil, domainerrors.ErrAlreadyFollowing
	}

	follow := &entities.Follow{
		ID:          uuid.NewString(),
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	r.follows[key] = follow
	return follow, nil
}

func (r *Repository) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]string{followerID, followingID}
	if _, ok := r.follows[key]; !ok {
		return domainerrors.ErrFollowNotFound
	}
	delete(r.follows, key)
	return nil
}

func (r *Repository) CreateBlock(ctx context.Context, blockerID, blockedID string) (*entities.Block, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]string{blockerID, blockedID}
	if _, ok := r.blocks[key]; ok {
		return nil, domainerrors.ErrAlreadyBlocked
	}

	block := &entities.Block{
		ID:        uuid.NewString(),
		BlockerID: blockerID,
		BlockedID: blockedID,
	}
	r.blocks[key] = block
	return block, nil
}

func (r *Repository) DeleteBlock(ctx context.Context, blockerID, blockedID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]string{blockerID, blockedID}
	if _, ok := r.blocks[key]; !ok {
		return domainerrors.ErrBlockNotFound
	}
	delete(r.blocks, key)
	return nil
}

func (r *Repository) DeleteFollowsBetween(ctx context.Context, userA, userB string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.follows, [2]string{userA, userB})
	delete(r.follows, [2]string{userB, userA})
	return nil
}
