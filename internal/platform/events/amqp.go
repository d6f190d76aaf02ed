package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "fanout"

// channel is the subset of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes events to a durable fanout exchange.
// The routing key is the event type so topic bindings keep working if the
// exchange kind changes.
type AMQPPublisher struct {
	exchange string
	logger   *slog.Logger

	mu   sync.Mutex // amqp channels are not safe for concurrent publishing
	conn *amqp.Connection
	ch   channel
}

// DialAMQP connects to the broker and declares the exchange.
func DialAMQP(url, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		exchangeKind,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	p := newAMQPPublisher(ch, exchange, logger)
	p.conn = conn
	return p, nil
}

func newAMQPPublisher(ch channel, exchange string, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{exchange: exchange, logger: logger, ch: ch}
}

// Publish sends the event as a persistent JSON message.
func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.ID,
		Timestamp:     event.OccurredAt,
		Type:          event.Type,
		CorrelationId: event.RequestID,
		Body:          body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return errors.New("amqp publisher closed")
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, event.Type, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	if p.logger != nil {
		p.logger.DebugContext(ctx, "event published",
			"event_type", event.Type,
			"event_id", event.ID,
			"exchange", p.exchange,
		)
	}
	return nil
}

// Health reports whether the broker connection is open.
func (p *AMQPPublisher) Health(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return errors.New("amqp publisher closed")
	}
	if p.conn != nil && p.conn.IsClosed() {
		return errors.New("amqp connection closed")
	}
	return nil
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
		p.ch = nil
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
		p.conn = nil
	}
	return errors.Join(errs...)
}
