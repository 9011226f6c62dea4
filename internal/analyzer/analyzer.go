package analyzer

import (
	"context"
	"log"

	"github.com/ilovegrooming/TradeBot/internal/collector"
	"github.com/ilovegrooming/TradeBot/internal/event"
	"github.com/ilovegrooming/TradeBot/internal/indicator"
	"github.com/ilovegrooming/TradeBot/internal/signal"
)

// Analyzer runs the single-ticker fetch, compute and classify pipeline and
// publishes the results on the event bus. Each Analyze call is one isolated
// unit of work with no state shared across calls; concurrent loads are
// allowed and last-to-complete wins for presentation.
type Analyzer struct {
	Fetcher collector.Fetcher
	Bus     *event.Bus
}

// New creates an Analyzer.
func New(fetcher collector.Fetcher, bus *event.Bus) *Analyzer {
	return &Analyzer{Fetcher: fetcher, Bus: bus}
}

// Analyze loads one symbol, derives indicators and signals, and emits
// IndicatorsReady, OverallReady and ChartDataReady. Any failure (or an
// empty series) emits FetchFailed and nothing else; it is never fatal.
func (a *Analyzer) Analyze(ctx context.Context, symbol string) {
	series, err := a.Fetcher.FetchHourlyBars(ctx, symbol)
	if err != nil {
		log.Printf("[WARN] fetch %s: %v", symbol, err)
		a.Bus.Publish(event.FetchFailed{Symbol: symbol})
		return
	}
	if series.Empty() {
		log.Printf("[WARN] fetch %s: empty series", symbol)
		a.Bus.Publish(event.FetchFailed{Symbol: symbol})
		return
	}

	frame, err := indicator.Compute(series)
	if err != nil {
		log.Printf("[ERROR] compute indicators for %s: %v", symbol, err)
		a.Bus.Publish(event.FetchFailed{Symbol: symbol})
		return
	}

	set := signal.Classify(frame)
	a.Bus.Publish(event.IndicatorsReady{Symbol: symbol, Signals: set})
	a.Bus.Publish(event.OverallReady{Symbol: symbol, Recommendation: signal.Overall(set)})
	a.Bus.Publish(event.ChartDataReady{Series: series, Frame: frame})
}
