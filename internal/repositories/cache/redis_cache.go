// Package cache holds the redis backed caches for viewer preferences and the
// marketplace rate table.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_storefront/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	rateTableKey      = "marketplace:rates"
	currentCodeSuffix = ":currentCode"
	ratesSuffix       = ":rates"
)

// KeyCurrentCode returns the key holding a device's preferred currency code.
func KeyCurrentCode(deviceID string) string {
	return deviceID + currentCodeSuffix
}

// KeyRates returns the key holding a device's rate table snapshot.
func KeyRates(deviceID string) string {
	return deviceID + ratesSuffix
}

// RedisCache implements portsrepo.CacheProvider.
type RedisCache struct {
	client        *redis.Client
	rateTTL       time.Duration
	preferenceTTL time.Duration
}

var _ portsrepo.CacheProvider = (*RedisCache)(nil)

// NewRedisCache builds the cache. A zero TTL stores keys without expiry.
func NewRedisCache(client *redis.Client, rateTTL, preferenceTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, rateTTL: rateTTL, preferenceTTL: preferenceTTL}
}

func (c *RedisCache) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	return true, nil
}

func encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cache value: %w", err)
	}
	return data, nil
}

// GetDevicePreference reads both device keys. A device with a code but no
// rates snapshot still resolves, with an empty table.
func (c *RedisCache) GetDevicePreference(ctx context.Context, deviceID string) (domain.Preferences, bool, error) {
	if deviceID == "" {
		return domain.Preferences{}, false, nil
	}
	code, err := c.client.Get(ctx, KeyCurrentCode(deviceID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Preferences{}, false, nil
		}
		return domain.Preferences{}, false, fmt.Errorf("failed to read device preference: %w", err)
	}

	var rates domain.RateTable
	if _, err := c.getJSON(ctx, KeyRates(deviceID), &rates); err != nil {
		return domain.Preferences{}, false, err
	}
	return domain.Preferences{Currency: code, Rates: rates, Source: domain.PreferenceFromDevice}, true, nil
}

// SetDevicePreference writes both keys in one transaction.
func (c *RedisCache) SetDevicePreference(ctx context.Context, deviceID, currencyCode string, rates domain.RateTable) error {
	if rates == nil {
		rates = domain.RateTable{}
	}
	data, err := encode(rates)
	if err != nil {
		return err
	}
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, KeyCurrentCode(deviceID), currencyCode, c.preferenceTTL)
		pipe.Set(ctx, KeyRates(deviceID), data, c.preferenceTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store device preference: %w", err)
	}
	return nil
}

// GetRateTable reports false on a miss.
func (c *RedisCache) GetRateTable(ctx context.Context) (domain.RateTable, bool, error) {
	var table domain.RateTable
	ok, err := c.getJSON(ctx, rateTableKey, &table)
	if err != nil || !ok {
		return nil, false, err
	}
	return table, true, nil
}

func (c *RedisCache) SetRateTable(ctx context.Context, table domain.RateTable) error {
	if table == nil {
		table = domain.RateTable{}
	}
	data, err := encode(table)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, rateTableKey, data, c.rateTTL).Err(); err != nil {
		return fmt.Errorf("failed to store rate table: %w", err)
	}
	return nil
}

func (c *RedisCache) InvalidateRateTable(ctx context.Context) error {
	if err := c.client.Del(ctx, rateTableKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate rate table: %w", err)
	}
	return nil
}

// Ping checks the redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
