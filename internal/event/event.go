package event

import "github.com/ilovegrooming/TradeBot/internal/model"

// Event is a notification from a background pipeline to the presentation
// layer. One tagged variant exists per contract event; no value flows back.
type Event interface {
	isEvent()
}

// IndicatorsReady carries the per-indicator signal set for one symbol.
type IndicatorsReady struct {
	Symbol  string
	Signals model.SignalSet
}

// OverallReady carries the aggregate recommendation for one symbol.
type OverallReady struct {
	Symbol         string
	Recommendation model.Recommendation
}

// ScanReportReady carries the joined watch-list scan report.
type ScanReportReady struct {
	Report string
}

// ChartDataReady carries the series and derived frame for chart rendering.
type ChartDataReady struct {
	Series *model.PriceSeries
	Frame  *model.IndicatorFrame
}

// FetchFailed signals a generic fetch/parse failure for one symbol.
type FetchFailed struct {
	Symbol string
}

func (IndicatorsReady) isEvent() {}
func (OverallReady) isEvent()    {}
func (ScanReportReady) isEvent() {}
func (ChartDataReady) isEvent()  {}
func (FetchFailed) isEvent()     {}
