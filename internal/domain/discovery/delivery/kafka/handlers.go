package kafka

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/discovery/usecase/buissines"
)

// Handlers handles Kafka messages for the discovery domain
type Handlers struct {
	uc     *buissines.UseCase
	logger zerolog.Logger
}

// NewHandlers creates new Kafka handlers
func NewHandlers(uc *buissines.UseCase, logger zerolog.Logger) *Handlers {
	return &Handlers{
		uc:     uc,
		logger: logger,
	}
}

// HandleStreamStatus handles a media provider status report
func (h *Handlers) HandleStreamStatus(ctx context.Context, message []byte) error {
	var event dto.MediaStatusEvent
	if err := json.Unmarshal(message, &event); err != nil {
		h.logger.Error().Err(err).
			Str("raw_message", string(message)).
			Msg("Failed to unmarshal stream status event")
		return err
	}

	h.logger.Debug().
		Str("stream_id", event.StreamID).
		Bool("is_live", event.IsLive).
		Int("viewer_count", event.ViewerCount).
		Msg("Processing stream status event")

	if err := h.uc.ApplyMediaStatus(ctx, event); err != nil {
		h.logger.Error().Err(err).
			Str("stream_id", event.StreamID).
			Msg("Failed to apply stream status event")
		return err
	}

	return nil
}
