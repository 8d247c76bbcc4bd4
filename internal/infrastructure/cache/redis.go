package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/RogutKuba/assemblyai-hackathon/internal/domain/repositories"
	"github.com/RogutKuba/assemblyai-hackathon/pkg/config"
)

// NewRedisClient creates a new Redis client and verifies connectivity
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// RedisLessonStore keeps one markdown value per room id. SET replaces the
// value wholesale, matching the full-overwrite persistence contract.
type RedisLessonStore struct {
	client *redis.Client
}

// NewRedisLessonStore creates a Redis-backed lesson store
func NewRedisLessonStore(client *redis.Client) *RedisLessonStore {
	return &RedisLessonStore{client: client}
}

// Load reads the full document for the room
func (s *RedisLessonStore) Load(ctx context.Context, roomID string) (string, error) {
	content, err := s.client.Get(ctx, lessonKey(roomID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repositories.ErrLessonNotFound
		}
		return "", fmt.Errorf("failed to get lesson key: %w", err)
	}
	return content, nil
}

// Save overwrites the document for the room
func (s *RedisLessonStore) Save(ctx context.Context, roomID string, content string) error {
	if err := s.client.Set(ctx, lessonKey(roomID), content, 0).Err(); err != nil {
		return fmt.Errorf("failed to set lesson key: %w", err)
	}
	return nil
}

func lessonKey(roomID string) string {
	return "lesson:" + roomID
}
