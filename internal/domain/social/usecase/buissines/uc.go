package buissines

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/CodesofAkash/twitch-clone/internal/domain/social/deps"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/social/errors"
)

// UseCase implements follow and block writes. Discovery reads pick the
// relations up through their own repositories.
type UseCase struct {
	repo   deps.SocialRepository
	logger zerolog.Logger
}

// NewUseCase creates a new social use case
func NewUseCase(repo deps.SocialRepository, logger zerolog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (u *UseCase) validateTarget(ctx context.Context, viewerID, targetID string) error {
	if viewerID == "" {
		return domainerrors.ErrUnauthenticated
	}
	if viewerID == targetID {
		return domainerrors.ErrSelfRelation
	}

	exists, err := u.repo.UserExists(ctx, targetID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

// Follow makes the viewer follow the target user. Following twice is a
// no-op: the duplicate insert is absorbed.
func (u *UseCase) Follow(ctx context.Context, viewerID, targetID string) error {
	if err := u.validateTarget(ctx, viewerID, targetID); err != nil {
		return err
	}

	if _, err := u.repo.CreateFollow(ctx, viewerID, targetID); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyFollowing) {
			return nil
		}
		u.logger.Error().Err(err).
			Str("follower_id", viewerID).
			Str("following_id", targetID).
			Msg("failed to create follow")
		return err
	}

	u.logger.Info().
		Str("follower_id", viewerID).
		Str("following_id", targetID).
		Msg("follow created")

	return nil
}

// Unfollow removes the viewer's follow of the target user
func (u *UseCase) Unfollow(ctx context.Context, viewerID, targetID string) error {
	if viewerID == "" {
		return domainerrors.ErrUnauthenticated
	}
	if viewerID == targetID {
		return domainerrors.ErrSelfRelation
	}

	if err := u.repo.DeleteFollow(ctx, viewerID, targetID); err != nil {
		return err
	}

	u.logger.Info().
		Str("follower_id", viewerID).
		Str("following_id", targetID).
		Msg("follow removed")

	return nil
}

// Block makes the viewer block the target user and severs any follow
// relation between the two in both directions. Blocking twice is a no-op.
func (u *UseCase) Block(ctx context.Context, viewerID, targetID string) error {
	if err := u.validateTarget(ctx, viewerID, targetID); err != nil {
		return err
	}

	if _, err := u.repo.CreateBlock(ctx, viewerID, targetID); err != nil {
		if !errors.Is(err, domainerrors.ErrAlreadyBlocked) {
			u.logger.Error().Err(err).
				Str("blocker_id", viewerID).
				Str("blocked_id", targetID).
				Msg("failed to create block")
			return err
		}
	}

	if err := u.repo.DeleteFollowsBetween(ctx, viewerID, targetID); err != nil {
		u.logger.Error().Err(err).
			Str("blocker_id", viewerID).
			Str("blocked_id", targetID).
			Msg("failed to sever follows on block")
		return err
	}

	u.logger.Info().
		Str("blocker_id", viewerID).
		Str("blocked_id", targetID).
		Msg("block created")

	return nil
}

// Unblock removes the viewer's block of the target user
func (u *UseCase) Unblock(ctx context.Context, viewerID, targetID string) error {
	if viewerID == "" {
		return domainerrors.ErrUnauthenticated
	}

	if err := u.repo.DeleteBlock(ctx, viewerID, targetID); err != nil {
		return err
	}

	u.logger.Info().
		Str("blocker_id", viewerID).
		Str("blocked_id", targetID).
		Msg("block removed")

	return nil
}
