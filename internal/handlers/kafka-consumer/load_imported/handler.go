package load_imported

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	loadService              Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, loadService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "load_imported"))

	return &Handler{
		loadService:              loadService,
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
				h.log.Info("loads.imported: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("loads.imported: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim: сообщение не помечено
// и будет доставлено повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event importedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("loads.imported handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("document", event.DocumentID),
		logger.NewField("reference", event.Reference),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("loads.imported processing")

	load, err := h.loadService.Create(ctx, event.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("loads.imported handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, entities.ErrConcurrencyContention):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("loads.imported handler contention, message will be reprocessed")
			return true

		case errors.Is(err, entities.ErrValidation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("loads.imported handler rejected load")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("loads.imported handler failed to create load")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("load", load.ID),
		logger.NewField("status", string(load.Status)),
	).Info("loads.imported: processed")

	sess.MarkMessage(message, "")
	return false
}
