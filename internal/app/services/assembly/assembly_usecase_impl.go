package assembly

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/app/models"
	"sutra-service/internal/pkg/assembler"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/exceptions"
	"sutra-service/internal/pkg/fhir_dto"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type assemblyUsecase struct {
	SessionRepository    contracts.SessionRepository
	PractitionerRegistry contracts.PractitionerRegistry
	RedisRepository      contracts.RedisRepository
	ObjectStorage        contracts.ObjectStorage
	DocumentArchive      contracts.DocumentArchiveRepository
	EventPublisher       contracts.DocumentEventPublisher
	Assembler            *assembler.Assembler
	BuildLockTTL         time.Duration
	Log                  *zap.Logger
}

var (
	assemblyUsecaseInstance contracts.AssemblyUsecase
	onceAssemblyUsecase     sync.Once
)

func NewAssemblyUsecase(
	sessionRepository contracts.SessionRepository,
	practitionerRegistry contracts.PractitionerRegistry,
	redisRepository contracts.RedisRepository,
	objectStorage contracts.ObjectStorage,
	documentArchive contracts.DocumentArchiveRepository,
	eventPublisher contracts.DocumentEventPublisher,
	documentAssembler *assembler.Assembler,
	buildLockTTL time.Duration,
	logger *zap.Logger,
) contracts.AssemblyUsecase {
	onceAssemblyUsecase.Do(func() {
		assemblyUsecaseInstance = &assemblyUsecase{
			SessionRepository:    sessionRepository,
			PractitionerRegistry: practitionerRegistry,
			RedisRepository:      redisRepository,
			ObjectStorage:        objectStorage,
			DocumentArchive:      documentArchive,
			EventPublisher:       eventPublisher,
			Assembler:            documentAssembler,
			BuildLockTTL:         buildLockTTL,
			Log:                  logger,
		}
	})
	return assemblyUsecaseInstance
}

func (uc *assemblyUsecase) AssembleDocument(ctx context.Context, sessionID string) (*fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assemblyUsecase.AssembleDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	lockKey := fmt.Sprintf(constvars.RedisBuildLockKeyFormat, sessionID)
	acquired, err := uc.RedisRepository.TrySetNX(ctx, lockKey, requestID, uc.BuildLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		uc.Log.Warn("assemblyUsecase.AssembleDocument build already in progress",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		return nil, exceptions.ErrBuildInProgress()
	}
	defer func() {
		if err := uc.RedisRepository.Delete(context.WithoutCancel(ctx), lockKey); err != nil {
			uc.Log.Error("assemblyUsecase.AssembleDocument error releasing build lock",
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
		}
	}()

	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	input, err := uc.buildInput(ctx, session)
	if err != nil {
		return nil, err
	}

	bundle, err := uc.Assembler.Build(ctx, *input)
	if err != nil {
		var validationErr *assembler.ValidationError
		if errors.As(err, &validationErr) {
			return nil, exceptions.ErrAssemblyValidation(validationErr)
		}
		var decodeErr *assembler.DecodeError
		if errors.As(err, &decodeErr) {
			return nil, exceptions.ErrAttachmentDecode(decodeErr)
		}
		return nil, err
	}

	record, err := uc.persistBundle(ctx, session, bundle)
	if err != nil {
		return nil, err
	}

	if err := uc.EventPublisher.PublishDocumentAssembled(ctx, record); err != nil {
		return nil, err
	}

	uc.Log.Info("assemblyUsecase.AssembleDocument succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingBundleIDKey, bundle.ID),
		zap.Int("entry_count", len(bundle.Entry)),
	)

	return bundle, nil
}

// buildInput snapshots the session into the assembler's input: the build
// reads nothing from the session store after this point.
func (uc *assemblyUsecase) buildInput(ctx context.Context, session *models.Session) (*assembler.Input, error) {
	input := &assembler.Input{
		Title:          session.Title,
		Status:         session.Status,
		EncounterNote:  session.EncounterNote,
		CustodianName:  session.CustodianName,
		Recommendation: session.Recommendation,
		Entries:        session.Entries,
	}

	if session.Subject != nil {
		input.Subject = convertSubject(session.Subject, session.SelectedAddress)
	}

	if session.AuthorID != "" {
		author, err := uc.PractitionerRegistry.FindPractitionerByID(ctx, session.AuthorID)
		if err != nil {
			return nil, err
		}
		input.Author = author
	}

	for _, meta := range session.Attachments {
		objectName := meta.ObjectName
		input.Attachments = append(input.Attachments, assembler.AttachmentSource{
			Title:       meta.Title,
			ContentType: meta.ContentType,
			Open: func(ctx context.Context) (io.ReadCloser, error) {
				return uc.ObjectStorage.GetObject(ctx, objectName)
			},
		})
	}

	return input, nil
}

func (uc *assemblyUsecase) persistBundle(ctx context.Context, session *models.Session, bundle *fhir_dto.Bundle) (*models.DocumentRecord, error) {
	serialized, err := json.Marshal(bundle)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := fmt.Sprintf("documents/%s.json", bundle.ID)
	err = uc.ObjectStorage.UploadObject(ctx, objectName, constvars.MIMEApplicationFHIRJSON, bytes.NewReader(serialized), int64(len(serialized)))
	if err != nil {
		return nil, err
	}

	assembledAt, err := assembler.ParseLocal(bundle.Timestamp)
	if err != nil {
		assembledAt = time.Now()
	}

	record := &models.DocumentRecord{
		BundleID:    bundle.ID,
		SessionID:   session.ID,
		Title:       session.Title,
		Status:      session.Status,
		AuthorID:    session.AuthorID,
		ObjectName:  objectName,
		EntryCount:  len(bundle.Entry),
		SizeBytes:   int64(len(serialized)),
		AssembledAt: assembledAt,
	}
	if subject, ok := session.Subject["name"].(string); ok {
		record.SubjectName = subject
	}

	if err := uc.DocumentArchive.InsertDocument(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func convertSubject(raw map[string]interface{}, selectedAddress string) *assembler.Subject {
	subject := &assembler.Subject{
		Name:            stringField(raw, "name"),
		BirthDate:       stringField(raw, "birth_date"),
		Gender:          stringField(raw, "gender"),
		Phone:           stringField(raw, "phone"),
		Email:           stringField(raw, "email"),
		PrimaryID:       stringField(raw, "primary_id"),
		SecondaryID:     stringField(raw, "secondary_id"),
		SelectedAddress: selectedAddress,
		Raw:             raw,
	}
	if subject.PrimaryID == "" {
		subject.PrimaryID = stringField(raw, "id")
	}
	return subject
}

func stringField(raw map[string]interface{}, key string) string {
	value, _ := raw[key].(string)
	return value
}
