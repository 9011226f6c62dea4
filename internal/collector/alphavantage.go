package collector

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ilovegrooming/TradeBot/internal/model"
)

const avTimeLayout = "2006-01-02 15:04:05"

// AlphaVantageFetcher implements Fetcher against the Alpha Vantage
// TIME_SERIES_INTRADAY endpoint (60min interval, compact output).
type AlphaVantageFetcher struct {
	client *resty.Client
	apiKey string
}

// NewAlphaVantageFetcher creates a fetcher with the injected API key and
// optional proxy. baseURL is overridable for tests.
func NewAlphaVantageFetcher(baseURL, apiKey, proxyURL string) *AlphaVantageFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &AlphaVantageFetcher{client: client, apiKey: apiKey}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

// avBar is the per-timestamp payload; Alpha Vantage encodes values as strings.
type avBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

type avResponse struct {
	Note        string           `json:"Note"`
	Information string           `json:"Information"`
	ErrorMsg    string           `json:"Error Message"`
	TimeSeries  map[string]avBar `json:"Time Series (60min)"`
}

// FetchHourlyBars retrieves the compact hourly series for symbol, sorted
// chronologically.
func (f *AlphaVantageFetcher) FetchHourlyBars(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	var payload avResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function":   "TIME_SERIES_INTRADAY",
			"symbol":     symbol,
			"interval":   "60min",
			"outputsize": "compact",
			"apikey":     f.apiKey,
		}).
		SetResult(&payload).
		Get("/query")
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("alphavantage: status %d", resp.StatusCode())
	}
	// The API reports quota limits and bad symbols inside a 200 response.
	if payload.ErrorMsg != "" {
		return nil, fmt.Errorf("alphavantage api error: %s", payload.ErrorMsg)
	}
	if payload.Note != "" {
		return nil, fmt.Errorf("alphavantage rate limit: %s", payload.Note)
	}
	if len(payload.TimeSeries) == 0 {
		if payload.Information != "" {
			return nil, fmt.Errorf("alphavantage: %s", payload.Information)
		}
		return nil, fmt.Errorf("alphavantage: no hourly series for %s", symbol)
	}

	bars := make([]model.PriceBar, 0, len(payload.TimeSeries))
	for ts, raw := range payload.TimeSeries {
		bar, err := parseAvBar(ts, raw)
		if err != nil {
			return nil, fmt.Errorf("alphavantage decode %s: %w", ts, err)
		}
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	return &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
}

func parseAvBar(ts string, raw avBar) (model.PriceBar, error) {
	t, err := time.Parse(avTimeLayout, ts)
	if err != nil {
		return model.PriceBar{}, err
	}
	fields := [5]float64{}
	for i, s := range []string{raw.Open, raw.High, raw.Low, raw.Close, raw.Volume} {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.PriceBar{}, err
		}
		fields[i] = v
	}
	return model.PriceBar{
		Time:   t,
		Open:   fields[0],
		High:   fields[1],
		Low:    fields[2],
		Close:  fields[3],
		Volume: fields[4],
	}, nil
}
