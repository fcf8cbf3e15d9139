package kafka

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"walt/internal/pkg/config"
	"walt/pkg/logger"
	"walt/pkg/retrier"
	"walt/pkg/retrier/backoff_adapter"
)

const pingInitialInterval = 1 * time.Second

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := parseVersion(versionStr)
	if err != nil {
		return nil, err
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.Strategy = rebalanceStrategy

	return cfg, nil
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string, groupID string, topics []string, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, groupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", groupID),
		logger.NewField("topics", topics),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig, topics...)
	if err != nil {
		clientCloseErr := client.Close()
		if clientCloseErr != nil {
			return nil, fmt.Errorf("kafka client connection: %w (failed to close: %w)", err, clientCloseErr)
		}
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start запускает consumer (блокирующий вызов)
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		if err != nil {
			c.log.With(
				logger.NewField("error", err),
			).Error("error from consumer")
			return fmt.Errorf("consumer error: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}

// pingKafka ждет доступности брокеров и, если переданы topics, их появления в метаданных.
// Consumer group на несуществующем топике молча ничего не читает.
func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config, topics ...string) error {
	pinger := backoff_adapter.New(retrier.Connect(pingInitialInterval, func(attempt uint64, err error, next time.Duration) {
		log.Warn("Kafka is not ready, retrying",
			logger.NewField("attempt", attempt),
			logger.NewField("error", err),
			logger.NewField("next_attempt_in", next.String()),
		)
	}))

	err := pinger.ExecuteWithContext(ctx, func(ctx context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close Kafka connection", logger.NewField("error", err))
			}
		}()

		available, err := client.Topics()
		if err != nil {
			return err
		}
		if missing := missingTopics(available, topics); len(missing) > 0 {
			return fmt.Errorf("topics %v not found", missing)
		}
		return nil
	})
	if err != nil {
		log.Error("Kafka connection failed after retries", logger.NewField("error", err))
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.Info("Kafka connection established")
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

func parseVersion(versionStr string) (sarama.KafkaVersion, error) {
	if versionStr == "" {
		return sarama.DefaultVersion, nil
	}
	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return sarama.KafkaVersion{}, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	return version, nil
}

// ParseBrokers разбирает список брокеров через запятую.
func ParseBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
