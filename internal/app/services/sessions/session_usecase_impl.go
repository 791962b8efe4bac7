package sessions

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/app/models"
	"sutra-service/internal/pkg/assembler"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/dto/requests"
	"sutra-service/internal/pkg/dto/responses"
	"sutra-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionUsecase struct {
	SessionRepository contracts.SessionRepository
	ObjectStorage     contracts.ObjectStorage
	Log               *zap.Logger
}

var (
	sessionUsecaseInstance contracts.SessionUsecase
	onceSessionUsecase     sync.Once
)

func NewSessionUsecase(
	sessionRepository contracts.SessionRepository,
	objectStorage contracts.ObjectStorage,
	logger *zap.Logger,
) contracts.SessionUsecase {
	onceSessionUsecase.Do(func() {
		sessionUsecaseInstance = &sessionUsecase{
			SessionRepository: sessionRepository,
			ObjectStorage:     objectStorage,
			Log:               logger,
		}
	})
	return sessionUsecaseInstance
}

func (uc *sessionUsecase) CreateSession(ctx context.Context, request *requests.UpdateSession) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionUsecase.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now()
	session := &models.Session{
		ID:        uuid.NewString(),
		Status:    "preliminary",
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyUpdate(session, request)

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	return uc.buildSessionResponse(session), nil
}

func (uc *sessionUsecase) FindSessionByID(ctx context.Context, sessionID string) (*responses.Session, error) {
	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.buildSessionResponse(session), nil
}

func (uc *sessionUsecase) UpdateSession(ctx context.Context, sessionID string, request *requests.UpdateSession) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionUsecase.UpdateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	applyUpdate(session, request)
	session.UpdatedAt = time.Now()

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}
	return uc.buildSessionResponse(session), nil
}

func (uc *sessionUsecase) DeleteSessionByID(ctx context.Context, sessionID string) error {
	if _, err := uc.SessionRepository.FindByID(ctx, sessionID); err != nil {
		return err
	}
	return uc.SessionRepository.DeleteByID(ctx, sessionID)
}

func (uc *sessionUsecase) AddEntry(ctx context.Context, sessionID string, request *requests.ClinicalEntry) (*responses.Session, error) {
	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Entries = append(session.Entries, convertEntry(request))
	session.UpdatedAt = time.Now()

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}
	return uc.buildSessionResponse(session), nil
}

func (uc *sessionUsecase) UpdateEntry(ctx context.Context, sessionID string, index int, request *requests.ClinicalEntry) (*responses.Session, error) {
	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(session.Entries) {
		return nil, exceptions.ErrEntryIndexOutOfRange(index)
	}
	session.Entries[index] = convertEntry(request)
	session.UpdatedAt = time.Now()

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}
	return uc.buildSessionResponse(session), nil
}

func (uc *sessionUsecase) RemoveEntry(ctx context.Context, sessionID string, index int) (*responses.Session, error) {
	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(session.Entries) {
		return nil, exceptions.ErrEntryIndexOutOfRange(index)
	}
	session.Entries = append(session.Entries[:index], session.Entries[index+1:]...)
	session.UpdatedAt = time.Now()

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}
	return uc.buildSessionResponse(session), nil
}

func (uc *sessionUsecase) AttachFile(ctx context.Context, sessionID string, file multipart.File, fileHeader *multipart.FileHeader, title string) (*responses.UploadAttachment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionUsecase.AttachFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = fileHeader.Filename
	}
	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	objectName := fmt.Sprintf("sessions/%s/attachments/%s%s", sessionID, uuid.NewString(), path.Ext(fileHeader.Filename))
	if err := uc.ObjectStorage.UploadObject(ctx, objectName, contentType, file, fileHeader.Size); err != nil {
		return nil, err
	}

	session.Attachments = append(session.Attachments, models.AttachmentMeta{
		ObjectName:  objectName,
		Title:       title,
		ContentType: contentType,
		Size:        fileHeader.Size,
	})
	session.UpdatedAt = time.Now()

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("sessionUsecase.AttachFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	return &responses.UploadAttachment{
		SessionID:  sessionID,
		ObjectName: objectName,
		Title:      title,
		Size:       fileHeader.Size,
	}, nil
}

func applyUpdate(session *models.Session, request *requests.UpdateSession) {
	if request.Subject != nil {
		session.Subject = request.Subject
	}
	if request.SelectedAddress != nil {
		session.SelectedAddress = *request.SelectedAddress
	}
	if request.AuthorID != nil {
		session.AuthorID = *request.AuthorID
	}
	if request.Title != nil {
		session.Title = *request.Title
	}
	if request.Status != nil {
		session.Status = *request.Status
	}
	if request.Recommendation != nil {
		session.Recommendation = *request.Recommendation
	}
	if request.EncounterNote != nil {
		session.EncounterNote = *request.EncounterNote
	}
	if request.CustodianName != nil {
		session.CustodianName = *request.CustodianName
	}
}

func convertEntry(request *requests.ClinicalEntry) assembler.ClinicalEntry {
	entry := assembler.ClinicalEntry{
		Kind:           request.Kind,
		Agent:          request.Agent,
		OccurrenceDate: request.OccurrenceDate,
		Status:         request.Status,
		LotNumber:      request.LotNumber,
		TestText:       request.TestText,
		TestCode:       request.TestCode,
		TestSystem:     request.TestSystem,
		Category:       request.Category,
		IssuedDate:     request.IssuedDate,
		Effective:      request.Effective,
	}
	for _, result := range request.Results {
		entry.Results = append(entry.Results, assembler.ResultEntry{
			Name:   result.Name,
			Code:   result.Code,
			System: result.System,
			Value:  result.Value,
		})
	}
	for _, specimen := range request.Specimens {
		entry.Specimens = append(entry.Specimens, assembler.SpecimenEntry{
			Type: specimen.Type,
		})
	}
	return entry
}

func (uc *sessionUsecase) buildSessionResponse(session *models.Session) *responses.Session {
	var externalAddresses interface{}
	if session.Subject != nil {
		if normalized := assembler.NormalizeExternalAddresses(session.Subject, uc.Log); len(normalized) > 0 {
			externalAddresses = normalized
		}
	}

	return &responses.Session{
		SessionID:         session.ID,
		Subject:           session.Subject,
		ExternalAddresses: externalAddresses,
		AuthorID:          session.AuthorID,
		Title:             session.Title,
		Status:            session.Status,
		Recommendation:    session.Recommendation,
		EncounterNote:     session.EncounterNote,
		CustodianName:     session.CustodianName,
		EntryCount:        len(session.Entries),
		Entries:           session.Entries,
		Attachments:       session.Attachments,
	}
}
