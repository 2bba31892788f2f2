package kafka

import (
	"context"
	"strconv"

	"github.com/courseflow/course-service/internal/domain/notification/deps"
	"github.com/courseflow/course-service/internal/domain/notification/dto"
	kafkainfra "github.com/courseflow/course-service/internal/infrastructure/kafka"
)

// Queue publishes notification jobs onto the Kafka notification topic.
// The course ID keys the message so jobs for one course stay ordered
// within a partition.
type Queue struct {
	producer *kafkainfra.Producer
	topic    string
}

func NewQueue(producer *kafkainfra.Producer, topic string) deps.JobQueue {
	return &Queue{
		producer: producer,
		topic:    topic,
	}
}

func (q *Queue) Enqueue(ctx context.Context, courseID int64, job dto.Job) error {
	key := strconv.FormatInt(courseID, 10)
	return q.producer.SendToTopic(ctx, q.topic, key, job)
}
