package order_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	orderservice "walt/internal/service/order"
	"walt/pkg/logger"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order.requested"))

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.requested: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.requested: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать: сообщение не помечено и будет прочитано снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event requestedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.requested handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("customer", event.Customer),
		logger.NewField("restaurant", event.Restaurant),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.requested processing")

	assignment, err := h.orderService.CreateOrderByNames(ctx, event.Customer, event.Restaurant, event.DeliveryTime)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.requested handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrCustomerNotRegistered),
			errors.Is(err, orderservice.ErrRestaurantNotFound),
			errors.Is(err, orderservice.ErrCrossCityOrder),
			errors.Is(err, orderservice.ErrNoAvailableDriver):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.requested handler order rejected")

		case errors.Is(err, orderservice.ErrInvalidName),
			errors.Is(err, orderservice.ErrInvalidDeliveryTime):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.requested handler invalid order")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.requested handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("delivery_id", assignment.Delivery.ID),
		logger.NewField("driver", assignment.Driver.Name),
	).Info("order.requested: processed")

	sess.MarkMessage(message, "")
	return false
}
