package model

import (
	"math"
	"time"
)

// IndicatorFrame holds the per-bar indicator values derived from a price
// series. All slices have the same length as the source series; math.NaN
// marks cells where the indicator's warm-up window is not yet satisfied.
type IndicatorFrame struct {
	Symbol string
	Times  []time.Time
	Close  []float64
	EMA    []float64
	SMA    []float64
	RSI    []float64
	MACD   []float64
	Signal []float64
}

// Len returns the number of bars in the frame.
func (f *IndicatorFrame) Len() int {
	return len(f.Close)
}

// FrameRow is one fully-aligned row across the frame.
type FrameRow struct {
	Time   time.Time
	Close  float64
	EMA    float64
	SMA    float64
	RSI    float64
	MACD   float64
	Signal float64
}

// LastComplete returns the most recent row where every indicator is defined.
// Warm-up rows and rows with an undefined RSI never qualify.
func (f *IndicatorFrame) LastComplete() (FrameRow, bool) {
	for i := f.Len() - 1; i >= 0; i-- {
		row := FrameRow{
			Time:   f.Times[i],
			Close:  f.Close[i],
			EMA:    f.EMA[i],
			SMA:    f.SMA[i],
			RSI:    f.RSI[i],
			MACD:   f.MACD[i],
			Signal: f.Signal[i],
		}
		if row.complete() {
			return row, true
		}
	}
	return FrameRow{}, false
}

func (r FrameRow) complete() bool {
	for _, v := range []float64{r.Close, r.EMA, r.SMA, r.RSI, r.MACD, r.Signal} {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}
