package sessions

import (
	"context"
	"fmt"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/app/models"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type sessionRedisRepository struct {
	RedisRepository contracts.RedisRepository
	SessionTTL      time.Duration
}

func NewSessionRedisRepository(redisRepository contracts.RedisRepository, sessionTTL time.Duration) contracts.SessionRepository {
	return &sessionRedisRepository{
		RedisRepository: redisRepository,
		SessionTTL:      sessionTTL,
	}
}

func (r *sessionRedisRepository) Save(ctx context.Context, session *models.Session) error {
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, session.ID)
	return r.RedisRepository.Set(ctx, key, session, r.SessionTTL)
}

func (r *sessionRedisRepository) FindByID(ctx context.Context, sessionID string) (*models.Session, error) {
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	data, err := r.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (r *sessionRedisRepository) DeleteByID(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	return r.RedisRepository.Delete(ctx, key)
}
