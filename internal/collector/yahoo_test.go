package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleChart = `{
	"chart": {
		"result": [{
			"timestamp": [1709560800, 1709557200, 1709564400],
			"indicators": {
				"quote": [{
					"open":   [181.10, 180.00, null],
					"high":   [182.00, 181.20, null],
					"low":    [180.90, 179.80, null],
					"close":  [181.75, 181.10, null],
					"volume": [1200345, 2400901, null]
				}]
			}
		}],
		"error": null
	}
}`

func yahooServer(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v8/finance/chart/") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
}

func TestYahoo_ParsesSortsAndSkipsNullBars(t *testing.T) {
	srv := yahooServer(t, sampleChart)
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "")
	series, err := f.FetchHourlyBars(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Bars) != 2 {
		t.Fatalf("null bars should be skipped: expected 2 bars, got %d", len(series.Bars))
	}
	if !series.Bars[0].Time.Before(series.Bars[1].Time) {
		t.Error("bars must be sorted chronologically")
	}
	if series.Bars[0].Close != 181.10 || series.Bars[1].Close != 181.75 {
		t.Errorf("unexpected closes: %.2f, %.2f", series.Bars[0].Close, series.Bars[1].Close)
	}
}

func TestYahoo_APIErrorPayload(t *testing.T) {
	srv := yahooServer(t, `{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}}}`)
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "")
	if _, err := f.FetchHourlyBars(context.Background(), "ZZZZ"); err == nil {
		t.Fatal("expected error for api error payload")
	}
}

func TestYahoo_EmptyResult(t *testing.T) {
	srv := yahooServer(t, `{"chart": {"result": [], "error": null}}`)
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "")
	if _, err := f.FetchHourlyBars(context.Background(), "AAPL"); err == nil {
		t.Fatal("expected error for empty result payload")
	}
}

func TestYahoo_MissingQuoteDataIsAnError(t *testing.T) {
	srv := yahooServer(t, `{"chart": {"result": [{"timestamp": [1709560800], "indicators": {"quote": []}}]}}`)
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "")
	_, err := f.FetchHourlyBars(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error when the quote array is empty")
	}
	if !strings.Contains(err.Error(), "malformed payload") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestYahoo_ShortQuoteArraysAreAnError(t *testing.T) {
	srv := yahooServer(t, `{
		"chart": {
			"result": [{
				"timestamp": [1709557200, 1709560800],
				"indicators": {
					"quote": [{
						"open": [180.00], "high": [181.20], "low": [179.80], "close": [181.10], "volume": [2400901]
					}]
				}
			}]
		}
	}`)
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "")
	_, err := f.FetchHourlyBars(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error when quote arrays are shorter than timestamps")
	}
	if !strings.Contains(err.Error(), "malformed payload") {
		t.Errorf("unexpected error: %v", err)
	}
}
