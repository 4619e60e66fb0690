package deps

import (
	"context"

	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/entities"
)

// SocialRepository defines the interface for follow and block data access
type SocialRepository interface {
	// UserExists reports whether a user row exists
	UserExists(ctx context.Context, userID string) (bool, error)

	// CreateFollow inserts a follow relation. A duplicate pair returns
	// ErrAlreadyFollowing.
	CreateFollow(ctx context.Context, followerID, followingID string) (*entities.Follow, error)

	// DeleteFollow removes a follow relation. A missing pair returns
	// ErrFollowNotFound.
	DeleteFollow(ctx context.Context, followerID, followingID string) error

	// CreateBlock inserts a block relation. A duplicate pair returns
	// ErrAlreadyBlocked.
	CreateBlock(ctx context.Context, blockerID, blockedID string) (*entities.Block, error)

	// DeleteBlock removes a block relation. A missing pair returns
	// ErrBlockNotFound.
	DeleteBlock(ctx context.Context, blockerID, blockedID string) error

	// DeleteFollowsBetween removes follow relations in both directions
	// between two users
	DeleteFollowsBetween(ctx context.Context, userA, userB string) error
}
