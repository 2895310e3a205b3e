package database

import (
	"context"
	"fmt"

	"freenotice/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient Redis 클라이언트를 생성한다.
// 설정이 비어 있으면 (nil, nil)을 반환하고 캐시는 비활성화된다.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	return client, nil
}
