package documents

import (
	"context"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/pkg/assembler"
	"sutra-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type documentUsecase struct {
	DocumentArchive contracts.DocumentArchiveRepository
	Log             *zap.Logger
}

var (
	documentUsecaseInstance contracts.DocumentUsecase
	onceDocumentUsecase     sync.Once
)

func NewDocumentUsecase(documentArchive contracts.DocumentArchiveRepository, logger *zap.Logger) contracts.DocumentUsecase {
	onceDocumentUsecase.Do(func() {
		documentUsecaseInstance = &documentUsecase{
			DocumentArchive: documentArchive,
			Log:             logger,
		}
	})
	return documentUsecaseInstance
}

func (uc *documentUsecase) ListDocuments(ctx context.Context, sessionID string, limit int) ([]responses.DocumentRecord, error) {
	records, err := uc.DocumentArchive.FindDocuments(ctx, sessionID, limit)
	if err != nil {
		return nil, err
	}

	response := make([]responses.DocumentRecord, len(records))
	for i, record := range records {
		response[i] = responses.DocumentRecord{
			BundleID:    record.BundleID,
			SessionID:   record.SessionID,
			SubjectName: record.SubjectName,
			Title:       record.Title,
			Status:      record.Status,
			ObjectName:  record.ObjectName,
			EntryCount:  record.EntryCount,
			AssembledAt: assembler.FormatLocal(record.AssembledAt),
		}
	}
	return response, nil
}
