package buissines

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	catdto "github.com/CodesofAkash/twitch-clone/internal/domain/category/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/deps"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/entities"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/discovery/errors"
	tagentities "github.com/CodesofAkash/twitch-clone/internal/domain/tag/entities"
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
	"github.com/CodesofAkash/twitch-clone/pkg/mapfn"
)

const (
	// recommendedPageSize caps the recommended view
	recommendedPageSize = 10

	// maxSummaryTags caps tag names on a stream summary
	maxSummaryTags = 5
)

// UseCase implements stream discovery: search, feeds, recommended users,
// creator stream settings and media-status ingestion. Every read goes
// through the viewer visibility filter in the repository.
type UseCase struct {
	streams    deps.StreamRepository
	users      deps.UserRepository
	categories deps.CategoryResolver
	tags       deps.TagReplacer
	logger     zerolog.Logger
}

// NewUseCase creates a new discovery use case
func NewUseCase(
	streams deps.StreamRepository,
	users deps.UserRepository,
	categories deps.CategoryResolver,
	tags deps.TagReplacer,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		streams:    streams,
		users:      users,
		categories: categories,
		tags:       tags,
		logger:     logger,
	}
}

// Search returns eligible streams for the viewer under the given filters.
// An empty viewerID is an anonymous browse and applies no block filtering.
func (u *UseCase) Search(ctx context.Context, viewerID string, filters dto.SearchFilters) ([]dto.StreamSummary, error) {
	filters.Term = strings.TrimSpace(filters.Term)

	streams, err := u.streams.Search(ctx, viewerID, filters)
	if err != nil && pkgerrors.IsRetryable(err) {
		u.logger.Warn().Err(err).Msg("stream search failed, retrying once")
		streams, err = u.streams.Search(ctx, viewerID, filters)
	}
	if err != nil {
		u.logger.Error().Err(err).
			Str("term", filters.Term).
			Msg("stream search failed")
		return nil, err
	}

	return mapfn.ConvertSlice(streams, toStreamSummary), nil
}

// Feed returns the personalized feed: streams owned by users the viewer
// follows, minus any owner who blocked the viewer. Requires a viewer.
func (u *UseCase) Feed(ctx context.Context, viewerID string) ([]dto.StreamSummary, error) {
	if viewerID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	streams, err := u.streams.FeedFor(ctx, viewerID)
	if err != nil && pkgerrors.IsRetryable(err) {
		u.logger.Warn().Err(err).Msg("feed fetch failed, retrying once")
		streams, err = u.streams.FeedFor(ctx, viewerID)
	}
	if err != nil {
		u.logger.Error().Err(err).
			Str("viewer_id", viewerID).
			Msg("feed fetch failed")
		return nil, err
	}

	return mapfn.ConvertSlice(streams, toStreamSummary), nil
}

// Recommended returns up to ten candidate users for the viewer. For an
// anonymous viewer the list is simply the top users by the same ranking.
func (u *UseCase) Recommended(ctx context.Context, viewerID string) ([]dto.UserSummary, error) {
	users, err := u.users.Recommended(ctx, viewerID, recommendedPageSize)
	if err != nil && pkgerrors.IsRetryable(err) {
		u.logger.Warn().Err(err).Msg("recommended fetch failed, retrying once")
		users, err = u.users.Recommended(ctx, viewerID, recommendedPageSize)
	}
	if err != nil {
		u.logger.Error().Err(err).
			Str("viewer_id", viewerID).
			Msg("recommended fetch failed")
		return nil, err
	}

	return mapfn.ConvertSlice(users, toUserSummary), nil
}

// SetCategory assigns the owner's stream to a category. The reference is
// resolved through the category registry: an id must exist, a name is
// created on demand. An empty reference clears the assignment.
func (u *UseCase) SetCategory(ctx context.Context, ownerID string, ref catdto.CategoryRef) error {
	if ownerID == "" {
		return domainerrors.ErrUnauthenticated
	}

	stream, err := u.streams.GetByOwner(ctx, ownerID)
	if err != nil {
		return err
	}

	var categoryID *string
	if ref.IsByID() || strings.TrimSpace(ref.Name) != "" {
		category, err := u.categories.Resolve(ctx, ref)
		if err != nil {
			u.logger.Error().Err(err).
				Str("stream_id", stream.ID).
				Msg("failed to resolve category")
			return err
		}
		categoryID = &category.ID
	}

	if err := u.streams.SetCategory(ctx, stream.ID, categoryID); err != nil {
		u.logger.Error().Err(err).
			Str("stream_id", stream.ID).
			Msg("failed to set stream category")
		return err
	}

	u.logger.Info().
		Str("stream_id", stream.ID).
		Bool("cleared", categoryID == nil).
		Msg("stream category updated")

	return nil
}

// SetTags replaces the full tag set of the owner's stream
func (u *UseCase) SetTags(ctx context.Context, ownerID string, names []string) error {
	if ownerID == "" {
		return domainerrors.ErrUnauthenticated
	}

	stream, err := u.streams.GetByOwner(ctx, ownerID)
	if err != nil {
		return err
	}

	return u.tags.ReplaceForStream(ctx, stream.ID, names)
}

// ApplyMediaStatus stores a media provider report verbatim. Events for
// unknown streams are dropped with a warning; the provider may report
// before the stream record is provisioned.
func (u *UseCase) ApplyMediaStatus(ctx context.Context, event dto.MediaStatusEvent) error {
	if event.StreamID == "" {
		return domainerrors.ErrInvalidStreamID
	}

	err := u.streams.UpdateLiveStatus(ctx, event.StreamID, event.IsLive, event.ViewerCount)
	if err != nil {
		if pkgerrors.IsNotFoundError(err) {
			u.logger.Warn().
				Str("stream_id", event.StreamID).
				Msg("media status for unknown stream dropped")
			return nil
		}
		u.logger.Error().Err(err).
			Str("stream_id", event.StreamID).
			Msg("failed to apply media status")
		return err
	}

	u.logger.Info().
		Str("stream_id", event.StreamID).
		Bool("is_live", event.IsLive).
		Int("viewer_count", event.ViewerCount).
		Msg("media status applied")

	return nil
}

func toStreamSummary(stream entities.Stream) dto.StreamSummary {
	summary := dto.StreamSummary{
		ID:           stream.ID,
		Name:         stream.Name,
		ThumbnailURL: stream.ThumbnailURL,
		IsLive:       stream.IsLive,
		ViewerCount:  stream.ViewerCount,
		UpdatedAt:    stream.UpdatedAt,
		Owner: dto.OwnerSummary{
			Username: stream.User.Username,
			ImageURL: stream.User.ImageURL,
		},
		TagNames: []string{},
	}

	if stream.Category != nil {
		summary.CategoryName = stream.Category.Name
		summary.CategorySlug = stream.Category.Slug
	}

	links := stream.Tags
	if len(links) > maxSummaryTags {
		links = links[:maxSummaryTags]
	}
	summary.TagNames = mapfn.ConvertSlice(links, func(link tagentities.StreamTag) string {
		return link.Tag.Name
	})

	return summary
}

func toUserSummary(user entities.User) dto.UserSummary {
	return dto.UserSummary{
		ID:       user.ID,
		Username: user.Username,
		ImageURL: user.ImageURL,
		IsLive:   user.Stream != nil && user.Stream.IsLive,
	}
}
