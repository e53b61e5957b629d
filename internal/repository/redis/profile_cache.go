package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
	goredis "github.com/redis/go-redis/v9"
)

type profileCache struct {
	client *goredis.Client
}

func NewProfileCache(client *goredis.Client) repository.ProfileCache {
	return &profileCache{client: client}
}

func profileKey(userID string) string {
	return "profile:" + userID
}

func (c *profileCache) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	data, err := c.client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	var profile domain.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached profile: %w", err)
	}
	return &profile, nil
}

// Replace swaps the cached copy in a single SET, so readers observe either
// the old or the new profile, never a partial one.
func (c *profileCache) Replace(ctx context.Context, profile *domain.UserProfile, ttl time.Duration) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	return c.client.Set(ctx, profileKey(profile.ID), data, ttl).Err()
}

func (c *profileCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, profileKey(userID)).Err()
}
