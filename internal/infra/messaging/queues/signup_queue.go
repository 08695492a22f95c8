package queues

import (
	"fmt"
	"time"

	"github.com/moura95/credential-service/internal/infra/messaging/rabbitmq"
)

// SignupEvent is published after a registration commits. Consumers (welcome
// mail, analytics) live outside this service.
type SignupEvent struct {
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
	UserID     string    `json:"user_id"`
}

type SignupQueue struct {
	publisher *rabbitmq.Publisher
}

func NewSignupQueue(connection *rabbitmq.Connection, queueName string) *SignupQueue {
	return &SignupQueue{
		publisher: rabbitmq.NewPublisher(connection, queueName),
	}
}

func (q *SignupQueue) PublishRegistered(event SignupEvent) error {
	if q == nil {
		// Service runs without a broker; registration must not depend on it.
		return nil
	}

	if err := q.publisher.Publish(event); err != nil {
		return fmt.Errorf("signup queue: failed to publish event: %w", err)
	}
	return nil
}
