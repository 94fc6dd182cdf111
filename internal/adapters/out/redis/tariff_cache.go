// Package redis provides a cache-aside decorator for tariff lookups.
// Tariffs change rarely but are read on every order creation, so entries
// are served from Redis and refreshed from the wrapped repository on miss.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// destinationEntry is the cached representation of a delivery destination.
type destinationEntry struct {
	ID            int64  `json:"id"`
	CityFrom      string `json:"cityFrom"`
	CityTo        string `json:"cityTo"`
	DaysToDeliver int64  `json:"daysToDeliver"`
	PriceInCents  string `json:"priceInCents"`
}

// orderTypeEntry is the cached representation of an order type.
type orderTypeEntry struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PriceInCents string `json:"priceInCents"`
}

// TariffCache wraps a TariffRepository with Redis caching.
// Cache failures are logged and fall through to the wrapped repository,
// so an unavailable Redis never blocks order creation.
type TariffCache struct {
	inner  ports.TariffRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewTariffCache creates a caching decorator around the given repository.
func NewTariffCache(
	inner ports.TariffRepository,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *TariffCache {
	return &TariffCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "tariff_cache"),
	}
}

// NewClient connects to the Redis server at the given address.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// GetOrderType retrieves an order type, preferring the cached entry.
func (c *TariffCache) GetOrderType(ctx context.Context, id int64) (*tariff.OrderType, error) {
	key := fmt.Sprintf("tariff:order-type:%d", id)

	var entry orderTypeEntry
	if c.lookup(ctx, key, &entry) {
		return orderTypeFromEntry(entry)
	}

	orderType, err := c.inner.GetOrderType(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, orderTypeEntry{
		ID:           orderType.ID(),
		Name:         orderType.Name(),
		PriceInCents: orderType.PriceInCents().String(),
	})
	return orderType, nil
}

// GetDestination retrieves a destination by city pair, preferring the cached entry.
func (c *TariffCache) GetDestination(ctx context.Context, cityFrom, cityTo string) (*tariff.Destination, error) {
	key := fmt.Sprintf("tariff:destination:%s:%s", cityFrom, cityTo)

	var entry destinationEntry
	if c.lookup(ctx, key, &entry) {
		return destinationFromEntry(entry)
	}

	destination, err := c.inner.GetDestination(ctx, cityFrom, cityTo)
	if err != nil {
		return nil, err
	}

	c.storeDestination(ctx, key, destination)
	return destination, nil
}

// GetDestinationByID retrieves a destination by identifier, preferring the cached entry.
func (c *TariffCache) GetDestinationByID(ctx context.Context, id int64) (*tariff.Destination, error) {
	key := fmt.Sprintf("tariff:destination:id:%d", id)

	var entry destinationEntry
	if c.lookup(ctx, key, &entry) {
		return destinationFromEntry(entry)
	}

	destination, err := c.inner.GetDestinationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.storeDestination(ctx, key, destination)
	return destination, nil
}

// lookup reads and decodes a cache entry. A miss or a Redis error both
// report false so the caller falls back to the repository.
func (c *TariffCache) lookup(ctx context.Context, key string, target any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "Tariff cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err = json.Unmarshal(data, target); err != nil {
		c.logger.WarnContext(ctx, "Tariff cache entry is corrupted", "key", key, "error", err)
		return false
	}

	return true
}

// store encodes and writes a cache entry with the configured TTL.
func (c *TariffCache) store(ctx context.Context, key string, entry any) {
	data, err := json.Marshal(entry)
	if err != nil {
		c.logger.WarnContext(ctx, "Tariff cache encode failed", "key", key, "error", err)
		return
	}

	if err = c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Tariff cache write failed", "key", key, "error", err)
	}
}

func (c *TariffCache) storeDestination(ctx context.Context, key string, destination *tariff.Destination) {
	c.store(ctx, key, destinationEntry{
		ID:            destination.ID(),
		CityFrom:      destination.CityFrom(),
		CityTo:        destination.CityTo(),
		DaysToDeliver: destination.DaysToDeliver(),
		PriceInCents:  destination.PriceInCents().String(),
	})
}

func destinationFromEntry(entry destinationEntry) (*tariff.Destination, error) {
	price, err := kernel.MoneyFromString(entry.PriceInCents)
	if err != nil {
		return nil, err
	}

	return tariff.NewDestination(entry.ID, entry.CityFrom, entry.CityTo, entry.DaysToDeliver, price)
}

func orderTypeFromEntry(entry orderTypeEntry) (*tariff.OrderType, error) {
	price, err := kernel.MoneyFromString(entry.PriceInCents)
	if err != nil {
		return nil, err
	}

	return tariff.NewOrderType(entry.ID, entry.Name, price)
}
