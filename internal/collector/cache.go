package collector

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ilovegrooming/TradeBot/internal/model"
)

// CachingFetcher decorates a Fetcher with a short-lived in-memory cache so
// a single-ticker load during a scan does not spend another upstream
// request against the API quota. Errors are never cached.
type CachingFetcher struct {
	inner Fetcher
	store *cache.Cache
}

// NewCachingFetcher wraps inner with a per-symbol TTL cache.
func NewCachingFetcher(inner Fetcher, ttl time.Duration) *CachingFetcher {
	return &CachingFetcher{
		inner: inner,
		store: cache.New(ttl, 2*ttl),
	}
}

func (f *CachingFetcher) Name() string { return f.inner.Name() + "+cache" }

func (f *CachingFetcher) FetchHourlyBars(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	if v, found := f.store.Get(symbol); found {
		return v.(*model.PriceSeries), nil
	}
	series, err := f.inner.FetchHourlyBars(ctx, symbol)
	if err != nil {
		return nil, err
	}
	f.store.Set(symbol, series, cache.DefaultExpiration)
	return series, nil
}
