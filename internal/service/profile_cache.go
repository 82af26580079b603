package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"dog-ocean/internal/ai"
	"dog-ocean/internal/domain"
)

// ProfileCache guarda perfiles ideales ya generados para no volver a pagar al
// proveedor por la misma combinacion de atributos. Es best-effort: un miss o
// una falla de cache nunca es error, solo fuerza regenerar.
type ProfileCache interface {
	Get(key string) (domain.Profile, bool)
	Set(key string, profile domain.Profile)
}

// IdealProfileCacheKey deriva la clave de cache de los atributos del pedido.
func IdealProfileCacheKey(req ai.IdealProfileRequest) string {
	testCount := req.TestCount
	if testCount <= 0 {
		testCount = ai.DefaultTestCount
	}
	parts := []string{
		strings.ToLower(strings.TrimSpace(req.Breed)),
		fmt.Sprintf("%d-%d", req.AgeYears, req.AgeMonths),
		strings.ToLower(strings.TrimSpace(req.Gender)),
		strings.ToLower(strings.TrimSpace(req.IntendedUse)),
		fmt.Sprintf("%d", testCount),
	}
	return strings.Join(parts, "|")
}

type memoryProfileCache struct {
	mu    sync.Mutex
	items map[string]domain.Profile
}

// NewMemoryProfileCache crea un cache en memoria (fallback sin redis).
func NewMemoryProfileCache() ProfileCache {
	return &memoryProfileCache{items: make(map[string]domain.Profile)}
}

func (c *memoryProfileCache) Get(key string) (domain.Profile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.items[key]
	return p, ok
}

func (c *memoryProfileCache) Set(key string, profile domain.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = profile
}

type redisProfileCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisProfileCache crea un cache respaldado por redis.
func NewRedisProfileCache(client *redis.Client, ttl time.Duration) ProfileCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisProfileCache{client: client, ttl: ttl, prefix: "ideal:profile:"}
}

func (c *redisProfileCache) Get(key string) (domain.Profile, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return domain.Profile{}, false
	}
	var p domain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Profile{}, false
	}
	return p, true
}

func (c *redisProfileCache) Set(key string, profile domain.Profile) {
	data, err := json.Marshal(profile)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_ = c.client.Set(ctx, c.prefix+key, data, c.ttl).Err()
}
