package presenter

import (
	"context"
	"log"

	"github.com/ilovegrooming/TradeBot/internal/event"
)

// Loop is the single consumer of the event bus. All rendering happens here,
// one event at a time, so presentation state is only ever touched from this
// goroutine.
type Loop struct {
	Bus      *event.Bus
	Notifier *TelegramNotifier // nil when Telegram is not configured
}

// Run drains the bus until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-l.Bus.Events():
			if !ok {
				return
			}
			l.render(e)
		}
	}
}

func (l *Loop) render(e event.Event) {
	switch e := e.(type) {
	case event.IndicatorsReady:
		log.Printf("[INFO] %s signals: RSI=%s MACD=%s EMA=%s SMA=%s",
			e.Symbol, e.Signals.RSI, e.Signals.MACD, e.Signals.EMA, e.Signals.SMA)
		l.trySend(FormatSignals(e.Symbol, e.Signals))
	case event.OverallReady:
		log.Printf("[INFO] %s overall recommendation: %s", e.Symbol, e.Recommendation)
		l.trySend(FormatOverall(e.Symbol, e.Recommendation))
	case event.ScanReportReady:
		log.Printf("[INFO] scan report:\n%s", e.Report)
		l.trySend(FormatScanReport(e.Report))
	case event.ChartDataReady:
		log.Printf("[INFO] chart data ready for %s (%d bars)", e.Series.Symbol, e.Frame.Len())
		l.trySend(FormatChart(e.Series, e.Frame))
	case event.FetchFailed:
		log.Printf("[WARN] %s: error loading data", e.Symbol)
		l.trySend(FormatFetchError(e.Symbol))
	}
}

func (l *Loop) trySend(text string) {
	if l.Notifier == nil || text == "" {
		return
	}
	if err := l.Notifier.Send(text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
