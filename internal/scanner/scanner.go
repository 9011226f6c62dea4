package scanner

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ilovegrooming/TradeBot/internal/collector"
	"github.com/ilovegrooming/TradeBot/internal/event"
	"github.com/ilovegrooming/TradeBot/internal/indicator"
	"github.com/ilovegrooming/TradeBot/internal/model"
	"github.com/ilovegrooming/TradeBot/internal/signal"
)

// EmptyReport is the sentinel the presentation layer shows when no ticker
// matched; the exact wording is part of the contract.
const EmptyReport = "No strong BUY signals found."

// matchThreshold is the minimum BUY count for a watch-list match.
const matchThreshold = 3

// Scanner walks a fixed watch list and reports tickers where most
// indicators say BUY. Each run is stateless beyond its local accumulator.
type Scanner struct {
	Fetcher collector.Fetcher
	Bus     *event.Bus
	Symbols []string

	limiter *rate.Limiter
}

// New creates a Scanner. `every` is the minimum spacing between upstream
// requests, imposed to respect the API quota; zero disables pacing.
func New(fetcher collector.Fetcher, bus *event.Bus, symbols []string, every time.Duration) *Scanner {
	s := &Scanner{Fetcher: fetcher, Bus: bus, Symbols: symbols}
	if every > 0 {
		s.limiter = rate.NewLimiter(rate.Every(every), 1)
	}
	return s
}

// Scan runs fetch-compute-classify over the watch list in order. Tickers
// that fail to fetch or come back empty are skipped without retry. The
// joined report is returned and published as ScanReportReady.
func (s *Scanner) Scan(ctx context.Context) string {
	var matches []string
	for _, symbol := range s.Symbols {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				log.Printf("[WARN] scan stopped: %v", err)
				break
			}
		}
		series, err := s.Fetcher.FetchHourlyBars(ctx, symbol)
		if err != nil {
			log.Printf("[WARN] scan %s: %v", symbol, err)
			continue
		}
		if series.Empty() {
			log.Printf("[WARN] scan %s: empty series", symbol)
			continue
		}
		frame, err := indicator.Compute(series)
		if err != nil {
			log.Printf("[ERROR] scan %s: compute indicators: %v", symbol, err)
			continue
		}
		set := signal.Classify(frame)
		if n := set.BuyCount(); n >= matchThreshold {
			matches = append(matches, model.ScanMatch{Symbol: symbol, BuyCount: n}.String())
		}
	}

	report := EmptyReport
	if len(matches) > 0 {
		report = strings.Join(matches, "\n")
	}
	s.Bus.Publish(event.ScanReportReady{Report: report})
	return report
}
