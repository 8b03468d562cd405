package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	RoutingKeyNotifyPrefix = "notify."
	RoutingKeyBilling      = "billing.initiate"
)

const (
	redialBase = 100 * time.Millisecond
	redialMax  = 30 * time.Second
)

var errDisconnected = errs.New("rabbitmq publisher is disconnected")

// Channel is the slice of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Dialer opens a publishing channel. closed receives once when the broker
// link drops, or is closed on a graceful shutdown.
type Dialer func() (ch Channel, closed <-chan *amqp.Error, err error)

// Publisher writes JSON messages to a durable topic exchange. amqp channels
// are not safe for concurrent publishing, so publishes are serialized.
//
// A dropped connection is redialed in the background with exponential
// backoff; a publish that finds no live channel dials once itself and fails
// if that does not work.
type Publisher struct {
	dial     Dialer
	exchange string
	logger   *slog.Logger

	mu      sync.Mutex
	ch      Channel
	gen     uint64
	stopped bool
	stop    chan struct{}
}

// link closes the connection together with its channel.
type link struct {
	*amqp.Channel
	conn *amqp.Connection
}

func (l link) Close() error {
	_ = l.Channel.Close()
	return l.conn.Close()
}

// AMQPDialer dials url and declares the topic exchange on every connect.
func AMQPDialer(url, exchange string) Dialer {
	return func() (Channel, <-chan *amqp.Error, error) {
		conn, err := amqp.Dial(url)
		if err != nil {
			return nil, nil, errs.Wrap(err, "dial rabbitmq")
		}
		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, nil, errs.Wrap(err, "open channel")
		}
		if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, nil, errs.Wrap(err, "declare exchange")
		}
		closed := conn.NotifyClose(make(chan *amqp.Error, 1))
		return link{Channel: ch, conn: conn}, closed, nil
	}
}

func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	return NewPublisherWithDialer(AMQPDialer(url, exchange), exchange, logger)
}

// NewPublisherWithDialer connects once up front so a bad broker address fails
// at startup.
func NewPublisherWithDialer(dial Dialer, exchange string, logger *slog.Logger) (*Publisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Publisher{dial: dial, exchange: exchange, logger: logger, stop: make(chan struct{})}

	p.mu.Lock()
	err := p.connectLocked()
	p.mu.Unlock()
	if err != nil {
		return nil, err
	}
	logger.Info("RabbitMQ publisher ready", "exchange", exchange)
	return p, nil
}

// NewPublisherWithChannel wraps a fixed channel that is never redialed.
func NewPublisherWithChannel(ch Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, logger: slog.Default(), stop: make(chan struct{})}
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "marshal message")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connectLocked(); err != nil {
		return errs.Wrapf(err, "publish %s", key)
	}
	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		if errors.Is(err, amqp.ErrClosed) && p.dial != nil {
			// the next publish dials a fresh channel
			p.dropLocked()
		}
		return errs.Wrapf(err, "publish %s", key)
	}
	return nil
}

// Connected reports whether a live channel is held.
func (p *Publisher) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch != nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return nil
	}
	p.stopped = true
	close(p.stop)
	if p.ch == nil {
		return nil
	}
	err := p.ch.Close()
	p.ch = nil
	return err
}

func (p *Publisher) connectLocked() error {
	if p.ch != nil {
		return nil
	}
	if p.stopped {
		return errs.Wrap(amqp.ErrClosed, "publisher closed")
	}
	if p.dial == nil {
		return errDisconnected
	}
	ch, closed, err := p.dial()
	if err != nil {
		return err
	}
	p.ch = ch
	p.gen++
	go p.watch(p.gen, closed)
	return nil
}

func (p *Publisher) dropLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	p.ch = nil
	p.gen++
}

// watch clears the channel of generation gen once its connection drops and
// starts redialing.
func (p *Publisher) watch(gen uint64, closed <-chan *amqp.Error) {
	var reason *amqp.Error
	select {
	case <-p.stop:
		return
	case reason = <-closed:
	}

	p.mu.Lock()
	if p.stopped || p.gen != gen {
		p.mu.Unlock()
		return
	}
	p.ch = nil
	p.mu.Unlock()

	p.logger.Warn("RabbitMQ connection lost", "exchange", p.exchange, "reason", reason)
	p.redial()
}

func (p *Publisher) redial() {
	delay := redialBase
	for attempt := 1; ; attempt++ {
		select {
		case <-p.stop:
			return
		case <-time.After(delay):
		}

		p.mu.Lock()
		if p.stopped || p.ch != nil {
			// closed, or a publish already reconnected
			p.mu.Unlock()
			return
		}
		err := p.connectLocked()
		p.mu.Unlock()

		if err == nil {
			p.logger.Info("RabbitMQ publisher reconnected", "exchange", p.exchange, "attempt", attempt)
			return
		}
		p.logger.Warn("RabbitMQ redial failed",
			"attempt", attempt,
			"wait_ms", delay.Milliseconds(),
			"error", err.Error())
		delay = min(delay*2, redialMax)
	}
}

type notificationEnvelope struct {
	RecipientID uuid.UUID      `json:"recipient_id"`
	Message     shared.Message `json:"message"`
}

type Notifier struct {
	pub *Publisher
}

func NewNotifier(pub *Publisher) *Notifier {
	return &Notifier{pub: pub}
}

func (n *Notifier) Notify(ctx context.Context, userID uuid.UUID, msg shared.Message) error {
	return n.pub.PublishJSON(ctx, RoutingKeyNotifyPrefix+string(msg.Kind), notificationEnvelope{
		RecipientID: userID,
		Message:     msg,
	})
}

type BillingDispatcher struct {
	pub *Publisher
}

func NewBillingDispatcher(pub *Publisher) *BillingDispatcher {
	return &BillingDispatcher{pub: pub}
}

func (d *BillingDispatcher) Dispatch(ctx context.Context, req shared.PaymentRequest) error {
	return d.pub.PublishJSON(ctx, RoutingKeyBilling, req)
}
