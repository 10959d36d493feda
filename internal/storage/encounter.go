package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/emberveil/adventure-engine/pkg/game"
)

// encounterTTL bounds how long an abandoned encounter lingers.
const encounterTTL = time.Hour

// EncounterCache mirrors the active enemy per character in Redis so a
// reconnecting client can restore its encounter. The turn pipeline never
// reads it back; the request stays authoritative for the current enemy.
type EncounterCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewEncounterCache creates a cache talking to the given Redis address.
func NewEncounterCache(redisURL string, logger *slog.Logger) *EncounterCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})
	return &EncounterCache{client: rdb, logger: logger}
}

func encounterKey(characterID int64) string {
	return "encounter:" + strconv.FormatInt(characterID, 10)
}

// Ping verifies the cache is reachable.
func (c *EncounterCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *EncounterCache) Close() error {
	if err := c.client.Close(); err != nil {
		c.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}

// Save stores the active enemy for a character, refreshing the TTL.
func (c *EncounterCache) Save(ctx context.Context, characterID int64, enemy *game.Enemy) error {
	data, err := json.Marshal(enemy)
	if err != nil {
		return fmt.Errorf("marshal enemy: %w", err)
	}
	if err := c.client.Set(ctx, encounterKey(characterID), string(data), encounterTTL).Err(); err != nil {
		c.logger.Error("Failed to save encounter", "character_id", characterID, "error", err)
		return fmt.Errorf("save encounter: %w", err)
	}
	return nil
}

// Load returns the cached enemy, or (nil, nil) when no encounter is active.
func (c *EncounterCache) Load(ctx context.Context, characterID int64) (*game.Enemy, error) {
	data, err := c.client.Get(ctx, encounterKey(characterID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("load encounter: %w", err)
	}

	var enemy game.Enemy
	if err := json.Unmarshal([]byte(data), &enemy); err != nil {
		return nil, fmt.Errorf("unmarshal enemy: %w", err)
	}
	return &enemy, nil
}

// Clear drops the cached encounter, typically after the enemy is defeated.
func (c *EncounterCache) Clear(ctx context.Context, characterID int64) error {
	if err := c.client.Del(ctx, encounterKey(characterID)).Err(); err != nil {
		return fmt.Errorf("clear encounter: %w", err)
	}
	return nil
}
