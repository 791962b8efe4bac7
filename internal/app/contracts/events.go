package contracts

import (
	"context"
	"sutra-service/internal/app/models"
)

type DocumentEventPublisher interface {
	PublishDocumentAssembled(ctx context.Context, record *models.DocumentRecord) error
}
