package indicator

import (
	"fmt"
	"time"

	"github.com/ilovegrooming/TradeBot/internal/model"
)

// Default parameters for the derived frame.
const (
	emaSpan   = 20
	smaWindow = 10
	rsiPeriod = 14
)

// Compute derives the full indicator frame from a price series: EMA(20) in
// the adjusted form, SMA(10), RSI(14), and MACD(12,26,9). The frame has the
// same length as the series; warm-up cells are NaN. Pure: the input is
// never mutated and identical input yields identical output.
func Compute(series *model.PriceSeries) (*model.IndicatorFrame, error) {
	closes := series.Closes()

	ema, err := EMA(closes, emaSpan)
	if err != nil {
		return nil, fmt.Errorf("ema: %w", err)
	}
	sma, err := SMA(closes, smaWindow)
	if err != nil {
		return nil, fmt.Errorf("sma: %w", err)
	}
	rsi, err := RSI(closes, rsiPeriod)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	macd, signal, err := MACD(closes)
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}

	times := make([]time.Time, len(series.Bars))
	for i, b := range series.Bars {
		times[i] = b.Time
	}

	return &model.IndicatorFrame{
		Symbol: series.Symbol,
		Times:  times,
		Close:  closes,
		EMA:    ema,
		SMA:    sma,
		RSI:    rsi,
		MACD:   macd,
		Signal: signal,
	}, nil
}
