package notification

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/courseflow/course-service/config"
	notifkafka "github.com/courseflow/course-service/internal/domain/notification/delivery/kafka"
	"github.com/courseflow/course-service/internal/domain/notification/deps"
	queuekafka "github.com/courseflow/course-service/internal/domain/notification/repository/kafka"
	kafkainfra "github.com/courseflow/course-service/internal/infrastructure/kafka"
	"github.com/courseflow/course-service/internal/infrastructure/mail"
)

var Module = fx.Module(
	"notification",
	fx.Provide(
		NewDebouncerFx,
		NewQueue,
		NewMailer,
		NewDispatcher,
		notifkafka.NewJobHandler,
	),
	fx.Invoke(registerWorker),
)

func NewDebouncerFx(cfg *config.NotificationConfig) *Debouncer {
	return NewDebouncer(cfg.DebounceWindow)
}

func NewQueue(producer *kafkainfra.Producer, cfg *config.KafkaConfig) deps.JobQueue {
	return queuekafka.NewQueue(producer, cfg.Topic)
}

func NewMailer(sender mail.Sender) deps.Mailer {
	return sender
}

// registerWorker starts the consumer that executes queued notification
// jobs and ties its lifetime to the fx app.
func registerWorker(
	lc fx.Lifecycle,
	cfg *config.KafkaConfig,
	handler *notifkafka.JobHandler,
	log zerolog.Logger,
) error {
	consumer, err := kafkainfra.NewConsumer(
		cfg.Brokers,
		cfg.GroupID,
		[]string{cfg.Topic},
		handler,
		log,
	)
	if err != nil {
		return err
	}

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			consumer.Start(consumerCtx)
			log.Info().Msg("notification worker started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping notification worker...")
			cancelConsumer()
			return consumer.Close()
		},
	})

	return nil
}
