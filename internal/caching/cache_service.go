package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/karlseguin/ccache/v3"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every key written by this service.
const KeyPrefix = "renti:"

// CacheService stores derived snapshots (KPI blocks, rendered charts).
// Get reports a miss with found == false and a nil error.
type CacheService interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Backend() string
	Close() error
}

// GetJSON decodes a cached JSON value into dst.
func GetJSON(ctx context.Context, cache CacheService, key string, dst any) (bool, error) {
	data, found, err := cache.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes value as JSON and stores it.
func SetJSON(ctx context.Context, cache CacheService, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cache.Set(ctx, key, data, ttl)
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Parse Redis URL to extract host:port if protocol is included
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsedAddr = strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	} else {
		log.Printf("INFO: Redis cache connected at %s", parsedAddr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, KeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (r *redisCacheService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, KeyPrefix+key, value, ttl).Err()
}

func (r *redisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, KeyPrefix+key).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisCacheService) Backend() string {
	return "redis"
}

func (r *redisCacheService) Close() error {
	return r.client.Close()
}

type memoryCacheService struct {
	cache *ccache.Cache[[]byte]
}

// NewMemoryCacheService keeps entries in process with an LRU bound.
func NewMemoryCacheService(maxEntries int64) CacheService {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &memoryCacheService{
		cache: ccache.New(ccache.Configure[[]byte]().MaxSize(maxEntries)),
	}
}

func (m *memoryCacheService) Get(ctx context.Context, key string) ([]byte, bool, error) {
	item := m.cache.Get(KeyPrefix + key)
	if item == nil || item.Expired() {
		return nil, false, nil
	}
	return item.Value(), true, nil
}

func (m *memoryCacheService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.cache.Set(KeyPrefix+key, value, ttl)
	return nil
}

func (m *memoryCacheService) Delete(ctx context.Context, key string) error {
	m.cache.Delete(KeyPrefix + key)
	return nil
}

func (m *memoryCacheService) Ping(ctx context.Context) error {
	return nil
}

func (m *memoryCacheService) Backend() string {
	return "memory"
}

func (m *memoryCacheService) Close() error {
	m.cache.Stop()
	return nil
}

// NewCacheService picks Redis when an address is configured and the
// in-process cache otherwise.
func NewCacheService(redisAddr, redisPassword string, redisDB int) CacheService {
	if redisAddr == "" {
		log.Printf("INFO: REDIS_ADDR not set, using in-process cache")
		return NewMemoryCacheService(1000)
	}
	return NewRedisCacheService(redisAddr, redisPassword, redisDB)
}
