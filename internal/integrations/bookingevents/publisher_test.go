package bookingevents

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type published struct {
	key string
	msg amqp.Publishing
}

type fakeChannel struct {
	mu         sync.Mutex
	declared   []string
	published  []published
	publishErr error
	closed     int
}

func (c *fakeChannel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if durable {
		c.declared = append(c.declared, name)
	}
	return amqp.Queue{Name: name}, nil
}

func (c *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.publishErr != nil {
		return c.publishErr
	}
	c.published = append(c.published, published{key: key, msg: msg})
	return nil
}

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	return nil
}

func newTestPublisher(ch *fakeChannel) *Publisher {
	return newPublisher(func() (channel, error) { return ch, nil }, time.Second, nopLogger{})
}

func TestPublisher_DeclaresDurableQueues(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)

	require.NoError(t, p.declareQueues())
	require.NoError(t, p.declareQueues())

	assert.Equal(t, []string{RoutingKeyBookingCreated, RoutingKeyBookingChanged}, ch.declared)
}

func TestPublisher_PublishBookingCreated(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)
	occurredAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	err := p.PublishBookingCreated(context.Background(), BookingCreated{
		BookingID:  10,
		UserID:     7,
		RoomID:     3,
		OccurredAt: occurredAt,
	})

	require.NoError(t, err)
	require.Len(t, ch.published, 1)

	msg := ch.published[0]
	assert.Equal(t, RoutingKeyBookingCreated, msg.key)
	assert.Equal(t, "application/json", msg.msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.msg.DeliveryMode)
	assert.JSONEq(t, `{"bookingId":10,"userId":7,"roomId":3,"occurredAt":"2026-03-01T10:00:00Z"}`, string(msg.msg.Body))
	assert.Equal(t, 1, ch.closed)
}

func TestPublisher_PublishBookingChanged(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)

	err := p.PublishBookingChanged(context.Background(), BookingChanged{
		BookingID:      10,
		UserID:         7,
		RoomID:         4,
		PreviousRoomID: 3,
	})

	require.NoError(t, err)
	require.Len(t, ch.published, 1)
	assert.Equal(t, RoutingKeyBookingChanged, ch.published[0].key)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(ch.published[0].msg.Body, &payload))
	assert.EqualValues(t, 3, payload["previousRoomId"])
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	p := newTestPublisher(ch)

	err := p.PublishBookingCreated(context.Background(), BookingCreated{BookingID: 1})

	assert.ErrorIs(t, err, ErrPublish)
	assert.Equal(t, 1, ch.closed)
}

func TestPublisher_OpenChannelError(t *testing.T) {
	p := newPublisher(func() (channel, error) {
		return nil, errors.New("connection closed")
	}, 0, nopLogger{})

	err := p.PublishBookingCreated(context.Background(), BookingCreated{BookingID: 1})

	assert.ErrorIs(t, err, ErrChannel)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher

	assert.NoError(t, p.PublishBookingCreated(context.Background(), BookingCreated{}))
	assert.NoError(t, p.PublishBookingChanged(context.Background(), BookingChanged{}))
	assert.NoError(t, p.Close())
}
