package presenter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ilovegrooming/TradeBot/internal/model"
)

// FormatSignals renders the per-indicator signal set for one symbol.
func FormatSignals(symbol string, set model.SignalSet) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", symbol, time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("RSI: %s\n", set.RSI))
	b.WriteString(fmt.Sprintf("MACD: %s\n", set.MACD))
	b.WriteString(fmt.Sprintf("EMA: %s\n", set.EMA))
	b.WriteString(fmt.Sprintf("SMA: %s\n", set.SMA))
	return b.String()
}

// FormatOverall renders the aggregate recommendation.
func FormatOverall(symbol string, rec model.Recommendation) string {
	return fmt.Sprintf("💡 <b>%s</b> overall recommendation: <b>%s</b>", symbol, rec)
}

// FormatScanReport wraps the scan result lines for delivery.
func FormatScanReport(report string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔍 <b>Watch-list scan</b> | %s\n\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(report)
	return b.String()
}

// FormatFetchError renders the generic fetch failure state.
func FormatFetchError(symbol string) string {
	return fmt.Sprintf("❌ Error loading data for %s", symbol)
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// FormatChart renders the close-price series as a text sparkline, the
// stand-in for an embedded chart canvas.
func FormatChart(series *model.PriceSeries, frame *model.IndicatorFrame) string {
	closes := frame.Close
	if len(closes) == 0 {
		return ""
	}
	low, high := closes[0], closes[0]
	for _, c := range closes {
		low = math.Min(low, c)
		high = math.Max(high, c)
	}

	spark := make([]rune, len(closes))
	for i, c := range closes {
		level := 0
		if high > low {
			level = int((c - low) / (high - low) * float64(len(sparkLevels)-1))
		}
		spark[i] = sparkLevels[level]
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📈 <b>%s</b> close (60min, %d bars)\n", series.Symbol, len(closes)))
	b.WriteString(fmt.Sprintf("<pre>%s</pre>\n", string(spark)))
	b.WriteString(fmt.Sprintf("last %.2f | high %.2f | low %.2f", closes[len(closes)-1], high, low))
	return b.String()
}
