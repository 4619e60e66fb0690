package buissines

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/deps"
	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/entities"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/tag/errors"
	"github.com/CodesofAkash/twitch-clone/pkg/slug"
)

const (
	searchLimit         = 10
	defaultPopularLimit = 20
)

// UseCase implements the tag registry
type UseCase struct {
	repo   deps.TagRepository
	logger zerolog.Logger
}

// NewUseCase creates a new tag use case
func NewUseCase(repo deps.TagRepository, logger zerolog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// ResolveOrCreate returns the tag for a free-text name, creating it when
// no tag with the derived slug exists. A duplicated-slug insert means a
// concurrent call won the race; the registry re-reads and returns its row.
func (u *UseCase) ResolveOrCreate(ctx context.Context, name string) (*entities.Tag, error) {
	derived := slug.Derive(name)
	if derived == "" {
		return nil, domainerrors.ErrInvalidName
	}

	existing, err := u.repo.GetBySlug(ctx, derived)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrTagNotFound) {
		u.logger.Error().Err(err).
			Str("slug", derived).
			Msg("failed to look up tag by slug")
		return nil, err
	}

	tag := &entities.Tag{
		Name: strings.TrimSpace(name),
		Slug: derived,
	}

	if err := u.repo.Create(ctx, tag); err != nil {
		if errors.Is(err, domainerrors.ErrTagAlreadyExists) {
			u.logger.Debug().
				Str("slug", derived).
				Msg("lost tag creation race, returning existing row")
			return u.repo.GetBySlug(ctx, derived)
		}

		u.logger.Error().Err(err).
			Str("slug", derived).
			Msg("failed to create tag")
		return nil, err
	}

	u.logger.Info().
		Str("tag_id", tag.ID).
		Str("slug", derived).
		Msg("tag created")

	return tag, nil
}

// ReplaceForStream replaces the full tag set of a stream: every existing
// link is dropped, each name is resolved or created, and fresh links are
// inserted. Empty names clears all tags. The registry accepts any tag
// count; the per-stream cap is the presentation layer's concern.
func (u *UseCase) ReplaceForStream(ctx context.Context, streamID string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	tagIDs := make([]string, 0, len(names))

	for _, name := range names {
		tag, err := u.ResolveOrCreate(ctx, name)
		if err != nil {
			u.logger.Error().Err(err).
				Str("stream_id", streamID).
				Str("tag_name", name).
				Msg("failed to resolve tag for stream")
			return err
		}

		if _, dup := seen[tag.ID]; dup {
			continue
		}
		seen[tag.ID] = struct{}{}
		tagIDs = append(tagIDs, tag.ID)
	}

	if err := u.repo.ReplaceStreamTags(ctx, streamID, tagIDs); err != nil {
		u.logger.Error().Err(err).
			Str("stream_id", streamID).
			Int("tag_count", len(tagIDs)).
			Msg("failed to replace stream tags")
		return err
	}

	u.logger.Info().
		Str("stream_id", streamID).
		Int("tag_count", len(tagIDs)).
		Msg("stream tags replaced")

	return nil
}

// ListForStream returns the tags currently linked to a stream
func (u *UseCase) ListForStream(ctx context.Context, streamID string) ([]entities.Tag, error) {
	return u.repo.GetStreamTags(ctx, streamID)
}

// ListAll returns all tags ordered by name
func (u *UseCase) ListAll(ctx context.Context) ([]entities.Tag, error) {
	tags, err := u.repo.ListAll(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("failed to list tags")
		return nil, err
	}
	return tags, nil
}

// Popular returns tags ordered by linked-stream count descending
func (u *UseCase) Popular(ctx context.Context, limit int) ([]dto.TagWithCount, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}

	tags, err := u.repo.Popular(ctx, limit)
	if err != nil {
		u.logger.Error().Err(err).Msg("failed to list popular tags")
		return nil, err
	}
	return tags, nil
}

// Search returns tags whose name contains the query
func (u *UseCase) Search(ctx context.Context, query string) ([]entities.Tag, error) {
	if strings.TrimSpace(query) == "" {
		return []entities.Tag{}, nil
	}

	tags, err := u.repo.Search(ctx, query, searchLimit)
	if err != nil {
		u.logger.Error().Err(err).
			Str("query", query).
			Msg("failed to search tags")
		return nil, err
	}
	return tags, nil
}
