package order_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	orderservice "assignment-service/internal/service/order"
	"assignment-service/pkg/logger"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

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
				h.log.Info("order.created: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// ребалансировка или остановка consumer group
			h.log.Info("order.created: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing регистрирует заказ из одного сообщения.
// Возвращает true, если контекст отменен и сообщение нужно перечитать.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event orderCreatedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.created handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	)

	if err = ctx.Err(); err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.created handler context cancelled, message will be reprocessed")
		return true
	}

	err = h.orderService.AddOrder(ctx, event.toEntity())
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderExists):
			msgLog.Warn("order.created handler duplicate order")

		case errors.Is(err, orderservice.ErrInvalidOrderID):
			msgLog.Warn("order.created handler invalid order id")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.created handler failed to add order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.created: processed")

	sess.MarkMessage(message, "")
	return false
}
