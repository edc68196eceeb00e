package messaging

import (
	"context"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"

	amqp "github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	connection *amqp.Connection
}

func NewRabbitMQPublisher(connection *amqp.Connection) contracts.MessagePublisher {
	return &rabbitMQPublisher{connection: connection}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, queueName string, body []byte) error {
	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err)
	}

	err = channel.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err)
	}
	return nil
}
