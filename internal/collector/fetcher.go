package collector

import (
	"context"

	"github.com/ilovegrooming/TradeBot/internal/model"
)

// Fetcher retrieves the hourly price series for a ticker symbol. Network
// errors, bad payloads and upstream quota notes all collapse into a single
// generic error; callers do not differentiate causes.
type Fetcher interface {
	FetchHourlyBars(ctx context.Context, symbol string) (*model.PriceSeries, error)
	Name() string
}
