package messaging

import (
	"context"
	"errors"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/app/models"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type documentPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

var (
	documentPublisherInstance contracts.DocumentEventPublisher
	onceDocumentPublisher     sync.Once
	documentPublisherError    error
)

func NewDocumentPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.DocumentEventPublisher, error) {
	onceDocumentPublisher.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			documentPublisherError = err
			return
		}
		if err := channel.Confirm(false); err != nil {
			documentPublisherError = err
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			documentPublisherError = exceptions.ErrAMQPDeclareQueue(err)
			return
		}
		documentPublisherInstance = &documentPublisher{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	return documentPublisherInstance, documentPublisherError
}

func (s *documentPublisher) PublishDocumentAssembled(ctx context.Context, record *models.DocumentRecord) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("documentPublisher.PublishDocumentAssembled called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBundleIDKey, record.BundleID),
	)

	body, err := json.Marshal(record)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	confirmation, err := s.Channel.PublishWithDeferredConfirmWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("documentPublisher.PublishDocumentAssembled error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrAMQPPublish(err)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrAMQPPublish(err)
	}
	if !acked {
		s.Log.Error("documentPublisher.PublishDocumentAssembled broker rejected message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
		)
		return exceptions.ErrAMQPPublish(errors.New("message nacked by broker"))
	}

	s.Log.Info("documentPublisher.PublishDocumentAssembled succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
		zap.String(constvars.LoggingBundleIDKey, record.BundleID),
	)

	return nil
}
