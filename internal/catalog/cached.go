package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// KV is the cache the Cached decorator writes through. pkg/redis satisfies
// it; tests use an in-memory map.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Cached wraps a Source with read-through KV caching. Cache failures are
// logged and ignored; the underlying source always answers.
type Cached struct {
	src    Source
	kv     KV
	ttl    time.Duration
	logger *zap.Logger
}

func NewCached(src Source, kv KV, ttl time.Duration, logger *zap.Logger) *Cached {
	return &Cached{src: src, kv: kv, ttl: ttl, logger: logger}
}

func (c *Cached) LookupInvoice(ctx context.Context, make, model string, year int) (*InvoiceRecord, error) {
	key := fmt.Sprintf("invoice:%s:%s:%d", make, model, year)

	if data, err := c.kv.Get(ctx, key); err == nil {
		var rec InvoiceRecord
		if err := json.Unmarshal(data, &rec); err == nil {
			return &rec, nil
		}
	}

	rec, err := c.src.LookupInvoice(ctx, make, model, year)
	if err != nil || rec == nil {
		return rec, err
	}
	c.store(ctx, key, rec)
	return rec, nil
}

func (c *Cached) LookupDealerCash(ctx context.Context, make, model string) (float64, error) {
	key := fmt.Sprintf("dealer_cash:%s:%s", make, model)

	if data, err := c.kv.Get(ctx, key); err == nil {
		var amount float64
		if err := json.Unmarshal(data, &amount); err == nil {
			return amount, nil
		}
	}

	amount, err := c.src.LookupDealerCash(ctx, make, model)
	if err != nil {
		return 0, err
	}
	c.store(ctx, key, amount)
	return amount, nil
}

func (c *Cached) LookupGVWR(ctx context.Context, make, model string, year int) (int, bool, error) {
	key := fmt.Sprintf("gvwr:%s:%s:%d", make, model, year)

	if data, err := c.kv.Get(ctx, key); err == nil {
		var gvwr int
		if err := json.Unmarshal(data, &gvwr); err == nil && gvwr > 0 {
			return gvwr, true, nil
		}
	}

	gvwr, ok, err := c.src.LookupGVWR(ctx, make, model, year)
	if err != nil || !ok {
		return gvwr, ok, err
	}
	c.store(ctx, key, gvwr)
	return gvwr, true, nil
}

func (c *Cached) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.kv.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
