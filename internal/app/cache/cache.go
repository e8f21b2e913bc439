// Package cache keeps the default agent configuration in Redis so the hot
// transcription path does not hit Postgres on every request.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"notary-api/internal/app/model"
)

const (
	defaultAgentKey = "notary:agent:default"
	defaultAgentTTL = 5 * time.Minute
)

// AgentCache caches the resolved default agent.
type AgentCache interface {
	GetDefaultAgent(ctx context.Context) (*model.AgentConfiguration, bool)
	SetDefaultAgent(ctx context.Context, agent *model.AgentConfiguration)
	InvalidateDefaultAgent(ctx context.Context)
}

// RedisAgentCache implements AgentCache on Redis. Cache failures degrade to
// misses; the caller falls back to the database.
type RedisAgentCache struct {
	client *redis.Client
}

func NewRedisAgentCache(addr, password string) *RedisAgentCache {
	return &RedisAgentCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (c *RedisAgentCache) GetDefaultAgent(ctx context.Context) (*model.AgentConfiguration, bool) {
	raw, err := c.client.Get(ctx, defaultAgentKey).Bytes()
	if err != nil {
		return nil, false
	}
	var agent model.AgentConfiguration
	if err := json.Unmarshal(raw, &agent); err != nil {
		return nil, false
	}
	return &agent, true
}

func (c *RedisAgentCache) SetDefaultAgent(ctx context.Context, agent *model.AgentConfiguration) {
	raw, err := json.Marshal(agent)
	if err != nil {
		return
	}
	c.client.Set(ctx, defaultAgentKey, raw, defaultAgentTTL)
}

func (c *RedisAgentCache) InvalidateDefaultAgent(ctx context.Context) {
	c.client.Del(ctx, defaultAgentKey)
}

// NoopAgentCache satisfies AgentCache when Redis is not configured.
type NoopAgentCache struct{}

func NewNoopAgentCache() *NoopAgentCache {
	return &NoopAgentCache{}
}

func (NoopAgentCache) GetDefaultAgent(ctx context.Context) (*model.AgentConfiguration, bool) {
	return nil, false
}

func (NoopAgentCache) SetDefaultAgent(ctx context.Context, agent *model.AgentConfiguration) {}

func (NoopAgentCache) InvalidateDefaultAgent(ctx context.Context) {}
