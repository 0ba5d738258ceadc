package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/ticket"
)

const (
	snapshotKey = "tickets:snapshot"
	snapshotTTL = 5 * time.Minute
)

// TicketCache keeps the last successful list result in Redis. It is a pure
// read accelerator: misses and Redis failures fall through to the store, and
// the snapshot is only ever refreshed from a committed store read.
type TicketCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewTicketCache wraps a redis client; a nil client disables caching.
func NewTicketCache(client *redis.Client, logger *zap.Logger) *TicketCache {
	return &TicketCache{client: client, logger: logger}
}

// StoreSnapshot replaces the cached list. Failures are logged, never returned:
// a stale or missing snapshot is harmless.
func (c *TicketCache) StoreSnapshot(ctx context.Context, tickets []domain.Ticket) {
	if c == nil || c.client == nil {
		return
	}
	records := make([]ticket.LocalRecord, 0, len(tickets))
	for i := range tickets {
		records = append(records, ticket.ToLocalRecord(&tickets[i]))
	}
	raw, err := json.Marshal(records)
	if err != nil {
		c.logger.Warn("snapshot marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, snapshotKey, raw, snapshotTTL).Err(); err != nil {
		c.logger.Warn("snapshot write failed", zap.Error(err))
	}
}

// LoadSnapshot returns the cached list, or ok=false on miss or any failure.
func (c *TicketCache) LoadSnapshot(ctx context.Context) ([]domain.Ticket, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("snapshot read failed", zap.Error(err))
		}
		return nil, false
	}
	var records []ticket.LocalRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		c.logger.Warn("snapshot decode failed", zap.Error(err))
		return nil, false
	}
	tickets := make([]domain.Ticket, 0, len(records))
	for _, record := range records {
		tickets = append(tickets, *ticket.FromLocalRecord(record))
	}
	return tickets, true
}

// Invalidate drops the cached list.
func (c *TicketCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		c.logger.Warn("snapshot invalidate failed", zap.Error(err))
	}
}
