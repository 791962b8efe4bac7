package contracts

import (
	"context"
	"mime/multipart"
	"sutra-service/internal/app/models"
	"sutra-service/internal/pkg/dto/requests"
	"sutra-service/internal/pkg/dto/responses"
)

type SessionUsecase interface {
	CreateSession(ctx context.Context, request *requests.UpdateSession) (*responses.Session, error)
	FindSessionByID(ctx context.Context, sessionID string) (*responses.Session, error)
	UpdateSession(ctx context.Context, sessionID string, request *requests.UpdateSession) (*responses.Session, error)
	DeleteSessionByID(ctx context.Context, sessionID string) error
	AddEntry(ctx context.Context, sessionID string, request *requests.ClinicalEntry) (*responses.Session, error)
	UpdateEntry(ctx context.Context, sessionID string, index int, request *requests.ClinicalEntry) (*responses.Session, error)
	RemoveEntry(ctx context.Context, sessionID string, index int) (*responses.Session, error)
	AttachFile(ctx context.Context, sessionID string, file multipart.File, fileHeader *multipart.FileHeader, title string) (*responses.UploadAttachment, error)
}

type SessionRepository interface {
	Save(ctx context.Context, session *models.Session) error
	FindByID(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteByID(ctx context.Context, sessionID string) error
}
