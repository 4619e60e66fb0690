package kafka

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/CodesofAkash/twitch-clone/config"
	kafkaHandlers "github.com/CodesofAkash/twitch-clone/internal/domain/discovery/delivery/kafka"
	"github.com/CodesofAkash/twitch-clone/internal/infrastructure/metrics"
)

// Module provides the Kafka consumer for fx DI
var Module = fx.Module("kafka",
	fx.Invoke(registerConsumerLifecycle),
)

func registerConsumerLifecycle(
	lc fx.Lifecycle,
	cfg *config.KafkaConfig,
	handlers *kafkaHandlers.Handlers,
	m *metrics.Metrics,
	logger zerolog.Logger,
) {
	consumer := NewConsumer(cfg, handlers, m, logger.With().Str("component", "kafka-consumer").Logger())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			consumer.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return consumer.Stop()
		},
	})
}
