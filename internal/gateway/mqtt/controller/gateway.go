package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"locker-service/internal/entities"
	retrierconfig "locker-service/pkg/retrier"
	"locker-service/pkg/retrier/backoff_adapter"
)

const (
	connectTimeout = 5 * time.Second
	publishTimeout = 2 * time.Second
	quiesceMillis  = 250
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var (
	ErrNotConnected   = errors.New("mqtt client is not connected")
	ErrConnectTimeout = errors.New("mqtt connect timed out")
	ErrPublishTimeout = errors.New("mqtt publish timed out")
)

type Options struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         byte
}

// Notifier publishes a "command pending" hint to
// <prefix>/<lockerId>/command. Controllers still fetch the command
// itself over HTTP.
type Notifier struct {
	client  client
	retrier retrier
	prefix  string
	qos     byte
}

// Connect dials the broker and returns a Notifier on top of it.
func Connect(opts Options) (*Notifier, error) {
	clientOpts := mqtt.NewClientOptions().
		AddBroker(opts.Broker).
		SetClientID(opts.ClientID).
		SetUsername(opts.Username).
		SetPassword(opts.Password).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true)

	c := mqtt.NewClient(clientOpts)
	if err := awaitConnect(c.Connect(), connectTimeout); err != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", opts.Broker, err)
	}

	return New(c, opts.TopicPrefix, opts.QoS), nil
}

func awaitConnect(token mqtt.Token, timeout time.Duration) error {
	if !token.WaitTimeout(timeout) {
		return ErrConnectTimeout
	}
	return token.Error()
}

func New(c client, prefix string, qos byte) *Notifier {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Notifier{
		client:  c,
		retrier: backoff_adapter.New(retryConfig),
		prefix:  prefix,
		qos:     qos,
	}
}

func (n *Notifier) CommandPending(ctx context.Context, cmd entities.Command) error {
	payload, err := toMessage(cmd)
	if err != nil {
		return fmt.Errorf("encode command %s: %w", cmd.ID, err)
	}

	topic := topicFor(n.prefix, cmd.LockerID)

	var attempt uint64
	start := time.Now()

	err = n.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return n.publish(topic, payload)
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	NudgePublishDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		NudgeRetriesTotal.WithLabelValues(result).Inc()
	}

	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func (n *Notifier) publish(topic string, payload []byte) error {
	if !n.client.IsConnected() {
		return ErrNotConnected
	}

	token := n.client.Publish(topic, n.qos, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return ErrPublishTimeout
	}
	return token.Error()
}

func (n *Notifier) Close() {
	if n.client.IsConnected() {
		n.client.Disconnect(quiesceMillis)
	}
}

func isRetryable(err error) bool {
	return errors.Is(err, ErrNotConnected) || errors.Is(err, ErrPublishTimeout)
}

// Nop is used when no broker is configured.
type Nop struct{}

func (Nop) CommandPending(context.Context, entities.Command) error {
	return nil
}
