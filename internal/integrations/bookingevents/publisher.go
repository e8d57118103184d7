package bookingevents

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует события бронирований в RabbitMQ
// Соединение одно на процесс, на каждую публикацию открывается отдельный канал.
type Publisher struct {
	conn        *amqp.Connection
	openChannel func() (channel, error)
	timeout     time.Duration
	log         Logger

	declareOnce sync.Once
	declareErr  error
}

// NewPublisher подключается к брокеру и объявляет durable очереди событий
func NewPublisher(url string, timeout time.Duration, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	p := newPublisher(func() (channel, error) {
		return conn.Channel()
	}, timeout, log)
	p.conn = conn

	if err := p.declareQueues(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return p, nil
}

func newPublisher(openChannel func() (channel, error), timeout time.Duration, log Logger) *Publisher {
	return &Publisher{
		openChannel: openChannel,
		timeout:     timeout,
		log:         log,
	}
}

// PublishBookingCreated публикует событие booking.created
func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreated) error {
	return p.publish(ctx, RoutingKeyBookingCreated, event)
}

// PublishBookingChanged публикует событие booking.changed
func (p *Publisher) PublishBookingChanged(ctx context.Context, event BookingChanged) error {
	return p.publish(ctx, RoutingKeyBookingChanged, event)
}

// Close закрывает соединение с брокером
func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

func (p *Publisher) declareQueues() error {
	p.declareOnce.Do(func() {
		ch, err := p.openChannel()
		if err != nil {
			p.declareErr = fmt.Errorf("%w: open channel: %v", ErrChannel, err)
			return
		}
		defer func() { _ = ch.Close() }()

		for _, queue := range []string{RoutingKeyBookingCreated, RoutingKeyBookingChanged} {
			if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
				p.declareErr = fmt.Errorf("%w: declare queue %s: %v", ErrChannel, queue, err)
				return
			}
		}
	})
	return p.declareErr
}

func (p *Publisher) publish(ctx context.Context, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	ch, err := p.openChannel()
	if err != nil {
		p.log.Error("Publish: failed to open channel, key=%s: %v", routingKey, err)
		return fmt.Errorf("%w: open channel: %v", ErrChannel, err)
	}
	defer func() { _ = ch.Close() }()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", routingKey, false, false, msg); err != nil {
		p.log.Error("Publish: failed to publish, key=%s: %v", routingKey, err)
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.log.Info("Publish: event sent, key=%s", routingKey)
	return nil
}

// NopPublisher используется, когда RabbitMQ отключен в конфигурации
type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(context.Context, BookingCreated) error { return nil }

func (NopPublisher) PublishBookingChanged(context.Context, BookingChanged) error { return nil }

func (NopPublisher) Close() error { return nil }
