package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"ticket-seckill/internal/pkg/config"
	"ticket-seckill/internal/pkg/errs"
	"ticket-seckill/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher sends domain events to a durable topic exchange, routed by event type.
// The connection is opened lazily and re-dialed after the broker drops it.
type AMQPPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(cfg config.BrokerConfig) *AMQPPublisher {
	return &AMQPPublisher{
		url:      cfg.URL,
		exchange: cfg.Exchange,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, event shared.DomainEvent) error {
	body, err := json.Marshal(envelope{
		Type:       event.Type,
		OccurredAt: event.OccurredAt.UTC().Format(time.RFC3339Nano),
		Payload:    event.Payload,
	})
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx,
		p.exchange,
		event.Type, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt.UTC(),
			Type:         event.Type,
			Body:         body,
		},
	)
	if err != nil {
		p.reset()
		return errs.Wrap(err, "publish event")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn, p.ch = nil, nil
	return err
}

// channel must be called with mu held.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() && p.conn != nil && !p.conn.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	err = ch.ExchangeDeclare(
		p.exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
			slog.Debug("closing broker connection", "error", err)
		}
	}
	p.conn, p.ch = nil, nil
}

type envelope struct {
	Type       string `json:"type"`
	OccurredAt string `json:"occurred_at"`
	Payload    any    `json:"payload"`
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, shared.DomainEvent) error { return nil }

func NewPublisher(cfg config.BrokerConfig) shared.EventPublisher {
	if cfg.URL == "" {
		slog.Info("AMQP_URL not set, domain events are not published")
		return NopPublisher{}
	}
	return NewAMQPPublisher(cfg)
}
