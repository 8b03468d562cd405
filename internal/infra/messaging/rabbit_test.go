//go:build unit

package messaging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"turf-booking/internal/domain/payment"
	"turf-booking/internal/infra/messaging"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type recordingChannel struct {
	published []published
	err       error
	closed    bool
}

func (c *recordingChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.published = append(c.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (c *recordingChannel) Close() error {
	c.closed = true
	return nil
}

func TestNotifier_Notify(t *testing.T) {
	ch := &recordingChannel{}
	notifier := messaging.NewNotifier(messaging.NewPublisherWithChannel(ch, "turf.events"))

	recipient := uuid.New()
	msg := shared.Message{
		Kind:      shared.KindBookingApproved,
		BookingID: uuid.New(),
		Subject:   "Booking approved",
		Body:      "Your booking was approved.",
	}

	err := notifier.Notify(context.Background(), recipient, msg)

	require.NoError(t, err)
	require.Len(t, ch.published, 1)
	got := ch.published[0]
	assert.Equal(t, "turf.events", got.exchange)
	assert.Equal(t, "notify.booking_approved", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.NotEmpty(t, got.msg.MessageId)

	var body struct {
		RecipientID uuid.UUID      `json:"recipient_id"`
		Message     shared.Message `json:"message"`
	}
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, recipient, body.RecipientID)
	assert.Equal(t, msg, body.Message)
}

func TestBillingDispatcher_Dispatch(t *testing.T) {
	t.Run("publishes the payment request", func(t *testing.T) {
		ch := &recordingChannel{}
		dispatcher := messaging.NewBillingDispatcher(messaging.NewPublisherWithChannel(ch, "turf.events"))
		req := shared.PaymentRequest{
			BookingID:   uuid.New(),
			PaymentID:   uuid.New(),
			AmountCents: 300000,
			Method:      payment.MethodOnline,
		}

		require.NoError(t, dispatcher.Dispatch(context.Background(), req))

		require.Len(t, ch.published, 1)
		assert.Equal(t, messaging.RoutingKeyBilling, ch.published[0].key)
		assert.JSONEq(t,
			`{"booking_id":"`+req.BookingID.String()+`","payment_id":"`+req.PaymentID.String()+`","amount_cents":300000,"method":"online"}`,
			string(ch.published[0].msg.Body),
		)
	})

	t.Run("broker errors are returned", func(t *testing.T) {
		ch := &recordingChannel{err: amqp.ErrClosed}
		dispatcher := messaging.NewBillingDispatcher(messaging.NewPublisherWithChannel(ch, "turf.events"))

		err := dispatcher.Dispatch(context.Background(), shared.PaymentRequest{BookingID: uuid.New()})

		require.Error(t, err)
		assert.True(t, errors.Is(err, amqp.ErrClosed))
	})
}

func TestPublisher_Close(t *testing.T) {
	ch := &recordingChannel{}
	pub := messaging.NewPublisherWithChannel(ch, "turf.events")

	assert.NoError(t, pub.Close())
	assert.True(t, ch.closed)
}

// scriptedDialer hands out a fresh recordingChannel per dial, or fails while
// fail is set.
type scriptedDialer struct {
	mu      sync.Mutex
	fail    error
	dials   int
	links   []*recordingChannel
	closers []chan *amqp.Error
}

func (d *scriptedDialer) dial() (messaging.Channel, <-chan *amqp.Error, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dials++
	if d.fail != nil {
		return nil, nil, d.fail
	}
	ch := &recordingChannel{}
	closed := make(chan *amqp.Error, 1)
	d.links = append(d.links, ch)
	d.closers = append(d.closers, closed)
	return ch, closed, nil
}

func (d *scriptedDialer) setFail(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fail = err
}

func (d *scriptedDialer) dialCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dials
}

func (d *scriptedDialer) link(i int) (*recordingChannel, chan *amqp.Error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.links[i], d.closers[i]
}

var brokerRestart = &amqp.Error{Code: amqp.ConnectionForced, Reason: "broker restart"}

func newDialedPublisher(t *testing.T, d *scriptedDialer) *messaging.Publisher {
	t.Helper()
	pub, err := messaging.NewPublisherWithDialer(d.dial, "turf.events", slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pub.Close() })
	return pub
}

func TestPublisher_Reconnect(t *testing.T) {
	ctx := context.Background()

	t.Run("dropped connection is redialed in the background", func(t *testing.T) {
		d := &scriptedDialer{}
		pub := newDialedPublisher(t, d)
		first, closed := d.link(0)

		closed <- brokerRestart

		require.Eventually(t, func() bool { return d.dialCount() == 2 && pub.Connected() }, 2*time.Second, 10*time.Millisecond)
		require.NoError(t, pub.PublishJSON(ctx, "notify.booking_approved", map[string]string{"k": "v"}))

		second, _ := d.link(1)
		assert.Empty(t, first.published)
		require.Len(t, second.published, 1)
		assert.Equal(t, "notify.booking_approved", second.published[0].key)
	})

	t.Run("redial keeps retrying while the broker is down", func(t *testing.T) {
		d := &scriptedDialer{}
		pub := newDialedPublisher(t, d)
		_, closed := d.link(0)

		d.setFail(errors.New("connection refused"))
		closed <- brokerRestart

		require.Eventually(t, func() bool { return d.dialCount() >= 3 }, 3*time.Second, 10*time.Millisecond)
		assert.False(t, pub.Connected())

		d.setFail(nil)
		require.Eventually(t, pub.Connected, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("publish on a closed channel redials on the next publish", func(t *testing.T) {
		d := &scriptedDialer{}
		pub := newDialedPublisher(t, d)
		first, _ := d.link(0)
		first.err = amqp.ErrClosed

		err := pub.PublishJSON(ctx, messaging.RoutingKeyBilling, struct{}{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, amqp.ErrClosed))
		assert.True(t, first.closed)
		assert.False(t, pub.Connected())

		d.setFail(errors.New("connection refused"))
		err = pub.PublishJSON(ctx, messaging.RoutingKeyBilling, struct{}{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")

		d.setFail(nil)
		require.NoError(t, pub.PublishJSON(ctx, messaging.RoutingKeyBilling, struct{}{}))
		second, _ := d.link(1)
		assert.Len(t, second.published, 1)
		assert.Equal(t, 3, d.dialCount())
	})

	t.Run("closed publisher refuses to publish and never redials", func(t *testing.T) {
		d := &scriptedDialer{}
		pub := newDialedPublisher(t, d)
		first, closed := d.link(0)

		require.NoError(t, pub.Close())
		assert.True(t, first.closed)
		closed <- brokerRestart

		err := pub.PublishJSON(ctx, messaging.RoutingKeyBilling, struct{}{})
		assert.True(t, errors.Is(err, amqp.ErrClosed))
		time.Sleep(250 * time.Millisecond)
		assert.Equal(t, 1, d.dialCount())
	})

	t.Run("startup fails when the first dial fails", func(t *testing.T) {
		d := &scriptedDialer{fail: errors.New("no such host")}

		pub, err := messaging.NewPublisherWithDialer(d.dial, "turf.events", nil)

		require.Error(t, err)
		assert.Nil(t, pub)
	})
}

func TestLogSinks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	bookingID := uuid.New()
	require.NoError(t, messaging.NewLogNotifier(logger).Notify(context.Background(), uuid.New(), shared.Message{
		Kind:      shared.KindCashCollected,
		BookingID: bookingID,
	}))
	require.NoError(t, messaging.NewLogBillingDispatcher(logger).Dispatch(context.Background(), shared.PaymentRequest{
		BookingID:   bookingID,
		AmountCents: 1000,
		Method:      payment.MethodOnline,
	}))

	out := buf.String()
	assert.Contains(t, out, `"kind":"cash_collected"`)
	assert.Contains(t, out, `"msg":"billing dispatch"`)
	assert.Contains(t, out, bookingID.String())
}
