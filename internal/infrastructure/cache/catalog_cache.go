package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase/interfaces"
	"fibra_provisioning/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "fibra:catalog:"

// KV is the subset of *redis.Client the cache uses.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

var _ KV = (*redis.Client)(nil)

// NewRedisClient connects to addr. It returns nil when addr is empty or the
// server does not answer, in which case catalog caching stays disabled.
func NewRedisClient(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		logger.Warn("REDIS_ADDR not set, catalog cache disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("redis unreachable, catalog cache disabled", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return nil
	}
	logger.Info("redis connected", zap.String("addr", addr))
	return client
}

// CatalogCache is a read-through cache in front of the catalog tables.
// Unknown ids are not cached so new catalog entries show up immediately.
// Redis failures degrade to reading the source.
type CatalogCache struct {
	kv     KV
	source interfaces.ICatalogGateway
	ttl    time.Duration
}

var _ interfaces.ICatalogGateway = (*CatalogCache)(nil)

// NewCatalogCache wraps source. With a nil kv it returns source unchanged.
func NewCatalogCache(kv KV, source interfaces.ICatalogGateway, ttl time.Duration) interfaces.ICatalogGateway {
	if kv == nil {
		return source
	}
	return &CatalogCache{kv: kv, source: source, ttl: ttl}
}

func (c *CatalogCache) GetEmpresa(ctx context.Context, id int64) (entities.Empresa, error) {
	key := fmt.Sprintf("%sempresa:%d", keyPrefix, id)
	var cached entities.Empresa
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	e, err := c.source.GetEmpresa(ctx, id)
	if err != nil || e.ID == 0 {
		return e, err
	}
	c.store(ctx, key, e)
	return e, nil
}

func (c *CatalogCache) GetTipoEnlace(ctx context.Context, id int64) (entities.TipoEnlace, error) {
	key := fmt.Sprintf("%stipo_enlace:%d", keyPrefix, id)
	var cached entities.TipoEnlace
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	t, err := c.source.GetTipoEnlace(ctx, id)
	if err != nil || t.ID == 0 {
		return t, err
	}
	c.store(ctx, key, t)
	return t, nil
}

func (c *CatalogCache) lookup(ctx context.Context, key string, dst any) bool {
	raw, err := c.kv.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn("catalog cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *CatalogCache) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.kv.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
