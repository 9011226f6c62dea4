package model

import "time"

// PriceBar represents a single hourly OHLCV candlestick.
type PriceBar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the ordered hourly bars for one symbol.
// Bars are strictly increasing by timestamp with no duplicates.
type PriceSeries struct {
	Symbol    string
	Bars      []PriceBar
	FetchedAt time.Time
}

// Closes returns the close prices in chronological order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Empty reports whether the series carries no bars.
func (s *PriceSeries) Empty() bool {
	return s == nil || len(s.Bars) == 0
}
