package sessions

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sutra-service/internal/app/models"
	"sutra-service/internal/pkg/dto/requests"
	"sutra-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSessionRepository struct {
	sessions map[string]*models.Session
	saveErr  error
}

func newStubSessionRepository() *stubSessionRepository {
	return &stubSessionRepository{sessions: make(map[string]*models.Session)}
}

func (s *stubSessionRepository) Save(ctx context.Context, session *models.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *stubSessionRepository) FindByID(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	copied := *session
	return &copied, nil
}

func (s *stubSessionRepository) DeleteByID(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type stubObjectStorage struct {
	objects map[string][]byte
}

func newStubObjectStorage() *stubObjectStorage {
	return &stubObjectStorage{objects: make(map[string][]byte)}
}

func (s *stubObjectStorage) UploadObject(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[objectName] = data
	return nil
}

func (s *stubObjectStorage) GetObject(ctx context.Context, objectName string) (io.ReadCloser, error) {
	data, ok := s.objects[objectName]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func newTestSessionUsecase(repo *stubSessionRepository, storage *stubObjectStorage) *sessionUsecase {
	return &sessionUsecase{
		SessionRepository: repo,
		ObjectStorage:     storage,
		Log:               zap.NewNop(),
	}
}

func strPtr(s string) *string { return &s }

func TestSessionUsecaseCreateSession(t *testing.T) {
	repo := newStubSessionRepository()
	uc := newTestSessionUsecase(repo, newStubObjectStorage())

	response, err := uc.CreateSession(context.Background(), &requests.UpdateSession{
		Title:  strPtr("Immunization Record"),
		Status: strPtr("final"),
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, response.SessionID)
	assert.Equal(t, "Immunization Record", response.Title)
	assert.Equal(t, "final", response.Status)
	assert.Equal(t, 0, response.EntryCount)

	stored, ok := repo.sessions[response.SessionID]
	assert.True(t, ok)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestSessionUsecasePartialUpdate(t *testing.T) {
	repo := newStubSessionRepository()
	uc := newTestSessionUsecase(repo, newStubObjectStorage())

	created, err := uc.CreateSession(context.Background(), &requests.UpdateSession{
		Title: strPtr("Initial Title"),
	})
	assert.NoError(t, err)

	t.Run("updates only the provided fields", func(t *testing.T) {
		updated, err := uc.UpdateSession(context.Background(), created.SessionID, &requests.UpdateSession{
			Recommendation: strPtr("follow up in two weeks"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "Initial Title", updated.Title)
		assert.Equal(t, "follow up in two weeks", updated.Recommendation)
	})

	t.Run("unknown session id", func(t *testing.T) {
		_, err := uc.UpdateSession(context.Background(), "missing", &requests.UpdateSession{})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestSessionUsecaseEntries(t *testing.T) {
	repo := newStubSessionRepository()
	uc := newTestSessionUsecase(repo, newStubObjectStorage())

	created, err := uc.CreateSession(context.Background(), &requests.UpdateSession{})
	assert.NoError(t, err)

	immunization := &requests.ClinicalEntry{Kind: "immunization", Agent: "BCG", Status: "completed"}
	diagnostic := &requests.ClinicalEntry{
		Kind:     "diagnostic",
		TestText: "Complete Blood Count",
		Results:  []requests.ResultEntry{{Name: "Hemoglobin", Value: "13.2 g/dL"}},
	}

	response, err := uc.AddEntry(context.Background(), created.SessionID, immunization)
	assert.NoError(t, err)
	assert.Equal(t, 1, response.EntryCount)

	response, err = uc.AddEntry(context.Background(), created.SessionID, diagnostic)
	assert.NoError(t, err)
	assert.Equal(t, 2, response.EntryCount)

	t.Run("entries keep their insertion order", func(t *testing.T) {
		stored := repo.sessions[created.SessionID]
		assert.Equal(t, "immunization", stored.Entries[0].Kind)
		assert.Equal(t, "diagnostic", stored.Entries[1].Kind)
		assert.Len(t, stored.Entries[1].Results, 1)
	})

	t.Run("update in place", func(t *testing.T) {
		_, err := uc.UpdateEntry(context.Background(), created.SessionID, 0, &requests.ClinicalEntry{
			Kind: "immunization", Agent: "OPV", Status: "completed",
		})
		assert.NoError(t, err)
		assert.Equal(t, "OPV", repo.sessions[created.SessionID].Entries[0].Agent)
	})

	t.Run("remove shifts later entries", func(t *testing.T) {
		response, err := uc.RemoveEntry(context.Background(), created.SessionID, 0)
		assert.NoError(t, err)
		assert.Equal(t, 1, response.EntryCount)
		assert.Equal(t, "diagnostic", repo.sessions[created.SessionID].Entries[0].Kind)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := uc.UpdateEntry(context.Background(), created.SessionID, 5, immunization)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)

		_, err = uc.RemoveEntry(context.Background(), created.SessionID, -1)
		assert.Error(t, err)
	})
}

func TestSessionUsecaseExternalAddresses(t *testing.T) {
	repo := newStubSessionRepository()
	uc := newTestSessionUsecase(repo, newStubObjectStorage())

	created, err := uc.CreateSession(context.Background(), &requests.UpdateSession{
		Subject: map[string]interface{}{
			"name": "Asha Singh",
			"externalIdentifiers": []interface{}{
				"rec-77",
				map[string]interface{}{"address": "urn:reg:42", "primary": true},
			},
		},
	})
	assert.NoError(t, err)
	assert.NotNil(t, created.ExternalAddresses)

	found, err := uc.FindSessionByID(context.Background(), created.SessionID)
	assert.NoError(t, err)
	assert.NotNil(t, found.ExternalAddresses)
}
