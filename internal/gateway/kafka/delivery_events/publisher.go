package delivery_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"walt/internal/entities"
	"walt/internal/gateway/metrics"
	"walt/pkg/retrier"
	"walt/pkg/retrier/backoff_adapter"
)

const serviceName = "kafka"

type Publisher struct {
	producer producer
	topic    string
	retrier  retrier
	newID    func() string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		retrier: backoff_adapter.New(retrier.Config{
			InitialInterval: 50 * time.Millisecond,
			MaxInterval:     500 * time.Millisecond,
			MaxElapsedTime:  2 * time.Second,
			Randomization:   0.5,
			Multiplier:      2,
			MaxRetries:      3,
			ShouldRetry:     isRetryable,
		}),
		newID: func() string { return uuid.NewString() },
	}
}

// PublishDeliveryCreated отправляет событие с ключом city_id: события одного города попадают в одну партицию.
func (p *Publisher) PublishDeliveryCreated(ctx context.Context, assignment entities.DeliveryAssignment) error {
	event := deliveryCreatedEvent{
		EventID:      p.newID(),
		DeliveryID:   assignment.Delivery.ID,
		Driver:       assignment.Driver.Name,
		Customer:     assignment.Customer.Name,
		Restaurant:   assignment.Restaurant.Name,
		CityID:       assignment.Driver.CityID,
		DeliveryTime: assignment.Delivery.DeliveryTime,
		Distance:     assignment.Delivery.Distance,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", EventTypeDeliveryCreated, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.CityID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(EventTypeDeliveryCreated)},
			{Key: []byte("event_id"), Value: []byte(event.EventID)},
		},
	}

	err = metrics.Execute(ctx, p.retrier, serviceName, EventTypeDeliveryCreated, resultLabel, func(context.Context) error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", EventTypeDeliveryCreated, err)
	}
	return nil
}

func isRetryable(err error) bool {
	var kafkaErr sarama.KError
	if errors.As(err, &kafkaErr) {
		switch kafkaErr {
		case sarama.ErrNotLeaderForPartition,
			sarama.ErrLeaderNotAvailable,
			sarama.ErrRequestTimedOut,
			sarama.ErrNotEnoughReplicas:
			return true
		}
		return false
	}
	return errors.Is(err, sarama.ErrOutOfBrokers)
}

func resultLabel(err error) string {
	var kafkaErr sarama.KError
	if errors.As(err, &kafkaErr) {
		return kafkaErr.Error()
	}
	return "error"
}

// Disabled используется, когда топик событий не настроен.
type Disabled struct{}

func (Disabled) PublishDeliveryCreated(context.Context, entities.DeliveryAssignment) error {
	return nil
}
