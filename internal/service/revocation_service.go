package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked_jti:"

type ITokenRevocationService interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// tokenRevocationService keeps a deny-list of logged-out token ids in Redis.
// Entries expire together with the token itself.
type tokenRevocationService struct {
	rdb *redis.Client
}

func NewTokenRevocationService(rdb *redis.Client) ITokenRevocationService {
	return &tokenRevocationService{rdb: rdb}
}

func (s *tokenRevocationService) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return s.rdb.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func (s *tokenRevocationService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
