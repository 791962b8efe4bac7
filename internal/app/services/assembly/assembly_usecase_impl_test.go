package assembly

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sutra-service/internal/app/models"
	"sutra-service/internal/pkg/assembler"
	"sutra-service/internal/pkg/dto/responses"
	"sutra-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSessionRepository struct {
	sessions map[string]*models.Session
}

func (s *stubSessionRepository) Save(ctx context.Context, session *models.Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *stubSessionRepository) FindByID(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (s *stubSessionRepository) DeleteByID(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type stubRegistry struct {
	authors map[string]assembler.Author
}

func (s *stubRegistry) ListPractitioners(ctx context.Context) ([]responses.PractitionerEntry, error) {
	return nil, nil
}

func (s *stubRegistry) FindPractitionerByID(ctx context.Context, practitionerID string) (*assembler.Author, error) {
	author, ok := s.authors[practitionerID]
	if !ok {
		return nil, exceptions.ErrPractitionerNotFound(practitionerID)
	}
	return &author, nil
}

type stubRedis struct {
	locked  map[string]bool
	deleted []string
}

func (s *stubRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (s *stubRedis) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (s *stubRedis) Delete(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	delete(s.locked, key)
	return nil
}

func (s *stubRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if s.locked[key] {
		return false, nil
	}
	s.locked[key] = true
	return true, nil
}

type stubStorage struct {
	objects map[string][]byte
	getErr  error
}

func (s *stubStorage) UploadObject(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[objectName] = data
	return nil
}

func (s *stubStorage) GetObject(ctx context.Context, objectName string) (io.ReadCloser, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	data, ok := s.objects[objectName]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

type stubArchive struct {
	records []*models.DocumentRecord
}

func (s *stubArchive) InsertDocument(ctx context.Context, record *models.DocumentRecord) error {
	s.records = append(s.records, record)
	return nil
}

func (s *stubArchive) FindDocuments(ctx context.Context, sessionID string, limit int) ([]models.DocumentRecord, error) {
	return nil, nil
}

type stubPublisher struct {
	published []*models.DocumentRecord
}

func (s *stubPublisher) PublishDocumentAssembled(ctx context.Context, record *models.DocumentRecord) error {
	s.published = append(s.published, record)
	return nil
}

type fixture struct {
	uc        *assemblyUsecase
	sessions  *stubSessionRepository
	redis     *stubRedis
	storage   *stubStorage
	archive   *stubArchive
	publisher *stubPublisher
}

func newFixture() *fixture {
	pinned := assembler.New(zap.NewNop())
	seq := 0
	pinned.NewID = func() string {
		seq++
		return fmt.Sprintf("00000000-0000-4000-8000-%012d", seq)
	}
	buildTime := time.Date(2024, 5, 1, 10, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	pinned.Clock = func() time.Time { return buildTime }

	f := &fixture{
		sessions:  &stubSessionRepository{sessions: make(map[string]*models.Session)},
		redis:     &stubRedis{locked: make(map[string]bool)},
		storage:   &stubStorage{objects: make(map[string][]byte)},
		archive:   &stubArchive{},
		publisher: &stubPublisher{},
	}
	f.uc = &assemblyUsecase{
		SessionRepository: f.sessions,
		PractitionerRegistry: &stubRegistry{authors: map[string]assembler.Author{
			"prac-1": {ID: "prac-1", Name: "Dr. A. Verma", Qualification: "MBBS"},
		}},
		RedisRepository: f.redis,
		ObjectStorage:   f.storage,
		DocumentArchive: f.archive,
		EventPublisher:  f.publisher,
		Assembler:       pinned,
		BuildLockTTL:    time.Minute,
		Log:             zap.NewNop(),
	}
	return f
}

func seedSession(f *fixture) *models.Session {
	session := &models.Session{
		ID: "sess-1",
		Subject: map[string]interface{}{
			"id":         "pat-9",
			"name":       "Asha Singh",
			"birth_date": "15-06-1990",
			"gender":     "F",
		},
		AuthorID: "prac-1",
		Title:    "Immunization Record",
		Status:   "final",
		Entries: []assembler.ClinicalEntry{
			{Kind: "immunization", Agent: "BCG", Status: "completed", OccurrenceDate: "2024-01-10"},
		},
	}
	f.sessions.sessions[session.ID] = session
	return session
}

func TestAssembleDocument(t *testing.T) {
	f := newFixture()
	seedSession(f)

	bundle, err := f.uc.AssembleDocument(context.Background(), "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, "document", bundle.Type)
	assert.Len(t, bundle.Entry, 6)

	t.Run("bundle uploaded to object storage", func(t *testing.T) {
		objectName := fmt.Sprintf("documents/%s.json", bundle.ID)
		stored, ok := f.storage.objects[objectName]
		assert.True(t, ok)

		var parsed map[string]interface{}
		assert.NoError(t, json.Unmarshal(stored, &parsed))
		assert.Equal(t, "Bundle", parsed["resourceType"])
	})

	t.Run("archive record inserted and event published", func(t *testing.T) {
		assert.Len(t, f.archive.records, 1)
		record := f.archive.records[0]
		assert.Equal(t, bundle.ID, record.BundleID)
		assert.Equal(t, "sess-1", record.SessionID)
		assert.Equal(t, "Asha Singh", record.SubjectName)
		assert.Equal(t, 6, record.EntryCount)

		assert.Len(t, f.publisher.published, 1)
		assert.Equal(t, record, f.publisher.published[0])
	})

	t.Run("build lock released", func(t *testing.T) {
		assert.Contains(t, f.redis.deleted, "session:sess-1:build-lock")
		assert.False(t, f.redis.locked["session:sess-1:build-lock"])
	})
}

func TestAssembleDocumentLockConflict(t *testing.T) {
	f := newFixture()
	seedSession(f)
	f.redis.locked["session:sess-1:build-lock"] = true

	_, err := f.uc.AssembleDocument(context.Background(), "sess-1")
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, 409, customErr.StatusCode)

	assert.Empty(t, f.archive.records)
	assert.Empty(t, f.publisher.published)
}

func TestAssembleDocumentValidationFailure(t *testing.T) {
	f := newFixture()
	f.sessions.sessions["empty"] = &models.Session{ID: "empty"}

	_, err := f.uc.AssembleDocument(context.Background(), "empty")
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, 400, customErr.StatusCode)

	t.Run("lock still released on failure", func(t *testing.T) {
		assert.Contains(t, f.redis.deleted, "session:empty:build-lock")
	})

	t.Run("nothing persisted or published", func(t *testing.T) {
		assert.Empty(t, f.storage.objects)
		assert.Empty(t, f.archive.records)
		assert.Empty(t, f.publisher.published)
	})
}

func TestAssembleDocumentAttachmentFailure(t *testing.T) {
	f := newFixture()
	session := seedSession(f)
	session.Attachments = []models.AttachmentMeta{
		{ObjectName: "sessions/sess-1/attachments/a1.pdf", Title: "Scan", ContentType: "application/pdf", Size: 3},
	}
	f.storage.getErr = errors.New("minio unreachable")

	_, err := f.uc.AssembleDocument(context.Background(), "sess-1")
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, 502, customErr.StatusCode)
	assert.Empty(t, f.archive.records)
}
