package collector

import (
	"context"
	"sync"
	"testing"
)

func TestMockFetcher_ConcurrentCallsAreRecorded(t *testing.T) {
	mock := &MockFetcher{}
	symbols := []string{"AAPL", "MSFT", "GOOG", "AMZN"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for _, sym := range symbols {
			wg.Add(1)
			go func(sym string) {
				defer wg.Done()
				if _, err := mock.FetchHourlyBars(context.Background(), sym); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}(sym)
		}
	}
	wg.Wait()

	if got := mock.Calls(); len(got) != 8*len(symbols) {
		t.Errorf("expected %d recorded calls, got %d", 8*len(symbols), len(got))
	}
}
