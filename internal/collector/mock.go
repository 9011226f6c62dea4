package collector

import (
	"context"
	"sync"
	"time"

	"github.com/ilovegrooming/TradeBot/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Safe for concurrent use; pipeline units fetch from goroutines.
type MockFetcher struct {
	Series map[string]*model.PriceSeries
	Errs   map[string]error

	mu    sync.Mutex
	calls []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHourlyBars(_ context.Context, symbol string) (*model.PriceSeries, error) {
	m.mu.Lock()
	m.calls = append(m.calls, symbol)
	m.mu.Unlock()
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	return SyntheticSeries(symbol, 100, 40), nil
}

// Calls reports the symbols fetched so far, in order.
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// SyntheticSeries builds count hourly bars drifting gently around basePrice.
func SyntheticSeries(symbol string, basePrice float64, count int) *model.PriceSeries {
	bars := make([]model.PriceBar, count)
	start := time.Now().Add(-time.Duration(count) * time.Hour)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceBar{
			Time:   start.Add(time.Duration(i) * time.Hour),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
}
