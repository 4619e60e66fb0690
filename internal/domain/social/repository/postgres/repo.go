package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/entities"
	"github.com/CodesofAkash/twitch-clone/internal/domain/social/deps"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/social/errors"
)

type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository creates a new social repository
func NewSocialRepository(db *gorm.DB) deps.SocialRepository {
	return &socialRepository{
		db: db,
	}
}

func (r *socialRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Count(&count)

	if result.Error != nil {
		return false, domainerrors.ErrDatabaseOperation
	}

	return count > 0, nil
}

func (r *socialRepository) CreateFollow(ctx context.Context, followerID, followingID string) (*entities.Follow, error) {
	follow := &entities.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}

	result := r.db.WithContext(ctx).Create(follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, domainerrors.ErrAlreadyFollowing
		}
		return nil, domainerrors.ErrDatabaseOperation
	}

	return follow, nil
}

func (r *socialRepository) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&entities.Follow{})

	if result.Error != nil {
		return domainerrors.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrFollowNotFound
	}

	return nil
}

func (r *socialRepository) CreateBlock(ctx context.Context, blockerID, blockedID string) (*entities.Block, error) {
	block := &entities.Block{
		BlockerID: blockerID,
		BlockedID: blockedID,
	}

	result := r.db.WithContext(ctx).Create(block)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, domainerrors.ErrAlreadyBlocked
		}
		return nil, domainerrors.ErrDatabaseOperation
	}

	return block, nil
}

func (r *socialRepository) DeleteBlock(ctx context.Context, blockerID, blockedID string) error {
	result := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&entities.Block{})

	if result.Error != nil {
		return domainerrors.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrBlockNotFound
	}

	return nil
}

func (r *socialRepository) DeleteFollowsBetween(ctx context.Context, userA, userB string) error {
	result := r.db.WithContext(ctx).
		Where(
			"(follower_id = ? AND following_id = ?) OR (follower_id = ? AND following_id = ?)",
			userA, userB, userB, userA,
		).
		Delete(&entities.Follow{})

	if result.Error != nil {
		return domainerrors.ErrDatabaseOperation
	}

	return nil
}
