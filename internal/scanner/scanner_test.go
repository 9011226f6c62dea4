package scanner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ilovegrooming/TradeBot/internal/collector"
	"github.com/ilovegrooming/TradeBot/internal/event"
	"github.com/ilovegrooming/TradeBot/internal/model"
)

func trendSeries(symbol string, start, step float64, n int) *model.PriceSeries {
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	bars := make([]model.PriceBar, n)
	for i := range bars {
		c := start + step*float64(i)
		bars[i] = model.PriceBar{Time: base.Add(time.Duration(i) * time.Hour), Open: c, High: c, Low: c, Close: c, Volume: 1}
	}
	return &model.PriceSeries{Symbol: symbol, Bars: bars}
}

func TestScan_ReportsOnlyMajorityBuyTickers(t *testing.T) {
	mock := &collector.MockFetcher{Series: map[string]*model.PriceSeries{
		"UP":   trendSeries("UP", 10, 1, 21),   // EMA, SMA, MACD say BUY
		"DOWN": trendSeries("DOWN", 30, -1, 21), // only RSI says BUY
	}}
	bus := event.NewBus(4)
	s := New(mock, bus, []string{"UP", "DOWN"}, 0)

	report := s.Scan(context.Background())
	lines := strings.Split(report, "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one match line, got %d: %q", len(lines), report)
	}
	if lines[0] != "UP: 3/4 indicators say BUY" {
		t.Errorf("unexpected match line: %q", lines[0])
	}

	e := <-bus.Events()
	sr, ok := e.(event.ScanReportReady)
	if !ok {
		t.Fatalf("expected ScanReportReady, got %T", e)
	}
	if sr.Report != report {
		t.Error("published report should match the returned one")
	}
}

func TestScan_SkipsFailedTickers(t *testing.T) {
	mock := &collector.MockFetcher{
		Series: map[string]*model.PriceSeries{"UP": trendSeries("UP", 10, 1, 21)},
		Errs:   map[string]error{"BAD": errors.New("quota exceeded")},
	}
	bus := event.NewBus(4)
	s := New(mock, bus, []string{"BAD", "UP"}, 0)

	report := s.Scan(context.Background())
	if report != "UP: 3/4 indicators say BUY" {
		t.Errorf("failed ticker should be skipped, got %q", report)
	}
	if got := mock.Calls(); len(got) != 2 {
		t.Errorf("every ticker should still be attempted once, got calls %v", got)
	}
}

func TestScan_EmptyResultUsesSentinel(t *testing.T) {
	mock := &collector.MockFetcher{Series: map[string]*model.PriceSeries{
		"DOWN": trendSeries("DOWN", 30, -1, 21),
	}}
	bus := event.NewBus(4)
	report := New(mock, bus, []string{"DOWN"}, 0).Scan(context.Background())
	if report != EmptyReport {
		t.Errorf("expected sentinel %q, got %q", EmptyReport, report)
	}
}

func TestScan_StatelessBetweenRuns(t *testing.T) {
	mock := &collector.MockFetcher{Series: map[string]*model.PriceSeries{
		"UP": trendSeries("UP", 10, 1, 21),
	}}
	bus := event.NewBus(4)
	s := New(mock, bus, []string{"UP"}, 0)

	first := s.Scan(context.Background())
	second := s.Scan(context.Background())
	if first != second {
		t.Errorf("repeated scans over identical data must agree: %q vs %q", first, second)
	}
}
