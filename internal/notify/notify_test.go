package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barter-match/internal/engine"
	"github.com/oggyb/barter-match/internal/logger"
)

type fakeChannel struct {
	exchange, key string
	msg           amqp.Publishing
	err           error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func TestEnvelopeMarshal(t *testing.T) {
	env := Envelope{
		Recipient: "u1",
		Kind:      engine.NotifyMatchCreated,
		SentAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Payload:   map[string]any{"matchId": "m1"},
	}

	body, err := env.Marshal()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "u1", decoded["recipientId"])
	assert.Equal(t, "MATCH_CREATED", decoded["kind"])
	assert.Equal(t, "2026-03-01T12:00:00Z", decoded["sentAt"])
	assert.Equal(t, map[string]any{"matchId": "m1"}, decoded["payload"])
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "notification.like_received", RoutingKey(engine.NotifyLikeReceived))
}

func TestAMQPEmitter_Publishes(t *testing.T) {
	ch := &fakeChannel{}
	e := newAMQPEmitter(AMQPConfig{URL: "amqp://x", ExchangeName: "barter.notifications"}, ch, logger.Discard())

	err := e.Emit(context.Background(), "me", engine.NotifyLikeReceived, map[string]any{"listingId": "l1"})
	require.NoError(t, err)

	assert.Equal(t, "barter.notifications", ch.exchange)
	assert.Equal(t, "notification.like_received", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, map[string]any{"listingId": "l1"}, decoded["payload"])
}

func TestAMQPEmitter_PublishErrorAndClosed(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	e := newAMQPEmitter(AMQPConfig{URL: "amqp://x", ExchangeName: "x"}, ch, logger.Discard())

	err := e.Emit(context.Background(), "me", engine.NotifyDealUpdated, nil)
	assert.ErrorContains(t, err, "failed to publish")

	require.NoError(t, e.Close())
	err = e.Emit(context.Background(), "me", engine.NotifyDealUpdated, nil)
	assert.ErrorContains(t, err, "not connected")
}

func TestAMQPConfigValidate(t *testing.T) {
	assert.Error(t, AMQPConfig{}.Validate())
	assert.Error(t, AMQPConfig{URL: "amqp://x"}.Validate())
	assert.NoError(t, AMQPConfig{URL: "amqp://x", ExchangeName: "x"}.Validate())
}
