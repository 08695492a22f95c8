package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

type Publisher struct {
	connection *Connection
	queueName  string
}

func NewPublisher(connection *Connection, queueName string) *Publisher {
	return &Publisher{
		connection: connection,
		queueName:  queueName,
	}
}

func (p *Publisher) Publish(message interface{}) error {
	if p.connection == nil || !p.connection.IsConnected() {
		return fmt.Errorf("rabbitmq: connection not available")
	}

	messageBody, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("rabbitmq: failed to marshal message: %w", err)
	}

	amqpMessage := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		ContentType:  "application/json",
		Body:         messageBody,
		MessageId:    uuid.New().String(),
	}

	err = p.connection.Channel().Publish(
		"",          // exchange (empty for direct queue)
		p.queueName, // routing key = queue name
		false,       // mandatory
		false,       // immediate
		amqpMessage,
	)
	if err != nil {
		return fmt.Errorf("rabbitmq: failed to publish to %s: %w", p.queueName, err)
	}

	return nil
}
