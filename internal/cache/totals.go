package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stackboard/stackboard/internal/observability"
)

const (
	KeyExpenseTotal      = "totals:expense"
	KeyProductStockValue = "totals:product_stock_value"
)

// Totals caches the two aggregate sums. Every lookup and write is best
// effort: a nil receiver, a miss, or a redis outage all mean "ask the repo".
type Totals struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
	prom   *observability.Prom
}

func NewTotals(client *redis.Client, ttl time.Duration, log *slog.Logger, prom *observability.Prom) *Totals {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &Totals{client: client, ttl: ttl, log: log, prom: prom}
}

func (t *Totals) Get(ctx context.Context, key string) (float64, bool) {
	if t == nil || t.client == nil {
		return 0, false
	}

	raw, err := t.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil && t.log != nil {
			t.log.Warn("totals cache get failed", "key", key, "err", err)
		}
		t.miss(key)
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		t.miss(key)
		return 0, false
	}

	if t.prom != nil {
		t.prom.TotalsCacheHits.WithLabelValues(key).Inc()
	}

	return v, true
}

func (t *Totals) miss(key string) {
	if t.prom != nil {
		t.prom.TotalsCacheMisses.WithLabelValues(key).Inc()
	}
}

func (t *Totals) Set(ctx context.Context, key string, v float64) {
	if t == nil || t.client == nil {
		return
	}

	err := t.client.Set(ctx, key, strconv.FormatFloat(v, 'f', -1, 64), t.ttl).Err()
	if err != nil && t.log != nil {
		t.log.Warn("totals cache set failed", "key", key, "err", err)
	}
}

// Invalidate drops a cached total after a mutation so the next read
// recomputes from the store.
func (t *Totals) Invalidate(ctx context.Context, key string) {
	if t == nil || t.client == nil {
		return
	}

	err := t.client.Del(ctx, key).Err()
	if err != nil && t.log != nil {
		t.log.Warn("totals cache invalidate failed", "key", key, "err", err)
	}
}
