package kafka

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/courseflow/course-service/config"
)

var Module = fx.Module(
	"kafka",
	fx.Provide(NewProducer),
)

func NewProducer(lc fx.Lifecycle, cfg *config.KafkaConfig, log zerolog.Logger) (*Producer, error) {
	producer, err := NewSyncProducer(cfg.Brokers, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("closing kafka producer...")
			return producer.Close()
		},
	})

	return producer, nil
}
