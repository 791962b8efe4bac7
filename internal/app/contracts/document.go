package contracts

import (
	"context"
	"sutra-service/internal/app/models"
	"sutra-service/internal/pkg/dto/responses"
)

type DocumentArchiveRepository interface {
	InsertDocument(ctx context.Context, record *models.DocumentRecord) error
	FindDocuments(ctx context.Context, sessionID string, limit int) ([]models.DocumentRecord, error)
}

type DocumentUsecase interface {
	ListDocuments(ctx context.Context, sessionID string, limit int) ([]responses.DocumentRecord, error)
}
