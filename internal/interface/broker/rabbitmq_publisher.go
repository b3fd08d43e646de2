package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "recharge.events"
	ExchangeKind = "topic"
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes domain events to a durable topic exchange
type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel channel
	logger  logger.Logger
}

// NewRabbitMQPublisher dials url and declares the events exchange
func NewRabbitMQPublisher(url string, logger logger.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return &RabbitMQPublisher{conn: conn, channel: ch, logger: logger}, nil
}

// Publish sends event as persistent JSON under routingKey
func (p *RabbitMQPublisher) Publish(ctx context.Context, routingKey string, event entity.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.channel.PublishWithContext(ctx,
		ExchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         event.Type,
			Body:         body,
		},
	); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	p.logger.Debug("Event published", "exchange", ExchangeName, "routingKey", routingKey, "aggregateId", event.AggregateID)
	return nil
}

// Close releases the channel and connection
func (p *RabbitMQPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// LogPublisher is used when no broker is configured
type LogPublisher struct {
	logger logger.Logger
}

// NewLogPublisher creates a publisher that only logs events
func NewLogPublisher(logger logger.Logger) repository.EventPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, routingKey string, event entity.DomainEvent) error {
	p.logger.Info("Event (no broker configured)", "routingKey", routingKey, "aggregateId", event.AggregateID)
	return nil
}
