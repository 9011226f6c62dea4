package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleIntraday = `{
	"Meta Data": {
		"1. Information": "Intraday (60min) open, high, low, close prices and volume",
		"2. Symbol": "AAPL"
	},
	"Time Series (60min)": {
		"2024-03-04 11:00:00": {
			"1. open": "181.10", "2. high": "182.00", "3. low": "180.90", "4. close": "181.75", "5. volume": "1200345"
		},
		"2024-03-04 10:00:00": {
			"1. open": "180.00", "2. high": "181.20", "3. low": "179.80", "4. close": "181.10", "5. volume": "2400901"
		}
	}
}`

func TestAlphaVantage_ParsesAndSortsBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "TIME_SERIES_INTRADAY" {
			t.Errorf("unexpected function param: %s", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "demo" {
			t.Errorf("api key not forwarded, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleIntraday))
	}))
	defer srv.Close()

	f := NewAlphaVantageFetcher(srv.URL, "demo", "")
	series, err := f.FetchHourlyBars(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(series.Bars))
	}
	if !series.Bars[0].Time.Before(series.Bars[1].Time) {
		t.Error("bars must be sorted chronologically")
	}
	if series.Bars[0].Close != 181.10 || series.Bars[1].Close != 181.75 {
		t.Errorf("unexpected closes: %.2f, %.2f", series.Bars[0].Close, series.Bars[1].Close)
	}
}

func TestAlphaVantage_RateLimitNoteIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Note": "Thank you for using Alpha Vantage! Our standard API call frequency is 25 requests per day."}`))
	}))
	defer srv.Close()

	f := NewAlphaVantageFetcher(srv.URL, "demo", "")
	if _, err := f.FetchHourlyBars(context.Background(), "AAPL"); err == nil {
		t.Fatal("expected error for rate-limit note payload")
	}
}

func TestAlphaVantage_UnknownPayloadIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer srv.Close()

	f := NewAlphaVantageFetcher(srv.URL, "demo", "")
	if _, err := f.FetchHourlyBars(context.Background(), "ZZZZ"); err == nil {
		t.Fatal("expected error for unrecognized payload shape")
	}
}
