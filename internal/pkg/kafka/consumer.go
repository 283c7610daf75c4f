package kafka

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"locker-service/internal/pkg/config"
	"locker-service/pkg/logger"
	retrierconfig "locker-service/pkg/retrier"
	"locker-service/pkg/retrier/backoff_adapter"
)

const clientID = "locker-service"

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

var ErrTopicMissing = errors.New("kafka topic does not exist")

type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

// NewSaramaConfig reads from the oldest offset with round-robin group
// balancing and surfaces consumer errors on the group's Errors channel.
func NewSaramaConfig(cfg *config.Kafka) (*sarama.Config, error) {
	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.ClientID = clientID
	saramaCfg.Version = version
	saramaCfg.Consumer.Return.Errors = true
	saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaCfg.Consumer.Offsets.AutoCommit.Enable = cfg.Sarama.ConsumerOffsetsAutocommit
	saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}

	return saramaCfg, nil
}

// Brokers splits the comma separated KAFKA_BROKERS value.
func Brokers(cfg *config.Kafka) []string {
	var brokers []string
	for _, b := range strings.Split(cfg.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers := Brokers(cfg)
	topics := []string{cfg.Topic}

	saramaCfg, err := NewSaramaConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	if err := waitForTopics(ctx, kafkaLog, brokers, topics, saramaCfg); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	group, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		group:   group,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start блокирует до отмены ctx или ошибки группы.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	go func() {
		for err := range c.group.Errors() {
			c.log.Warn("consumer group error", logger.NewField("error", err))
		}
	}()

	for {
		if err := c.group.Consume(ctx, c.topics, c.handler); err != nil {
			c.log.Error("consume failed", logger.NewField("error", err))
			return fmt.Errorf("consume: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Info("context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

// waitForTopics retries until the brokers answer and list every topic.
func waitForTopics(ctx context.Context, log logger.Logger, brokers, topics []string, cfg *sarama.Config) error {
	var attempt uint64
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		Notify: func(err error, next time.Duration) {
			log.Warn("kafka is not ready yet",
				logger.NewField("attempt", attempt),
				logger.NewField("retry_in", next.String()),
				logger.NewField("error", err),
			)
		},
	})

	err := retrier.ExecuteWithContext(ctx, func(context.Context) error {
		attempt++

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Warn("close probe client", logger.NewField("error", err))
			}
		}()

		available, err := client.Topics()
		if err != nil {
			return err
		}
		if missing := missingTopics(available, topics); len(missing) > 0 {
			return fmt.Errorf("%w: %s", ErrTopicMissing, strings.Join(missing, ","))
		}
		return nil
	})
	if err != nil {
		log.Error("kafka is unreachable",
			logger.NewField("attempts", attempt),
			logger.NewField("error", err),
		)
		return err
	}

	log.Info("kafka connection established", logger.NewField("attempts", attempt))
	return nil
}

func missingTopics(available, wanted []string) []string {
	var missing []string
	for _, topic := range wanted {
		if !slices.Contains(available, topic) {
			missing = append(missing, topic)
		}
	}
	return missing
}
