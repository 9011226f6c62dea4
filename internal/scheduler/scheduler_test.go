package scheduler

import (
	"context"
	"strings"
	"testing"

	"github.com/ilovegrooming/TradeBot/internal/analyzer"
	"github.com/ilovegrooming/TradeBot/internal/collector"
	"github.com/ilovegrooming/TradeBot/internal/event"
	"github.com/ilovegrooming/TradeBot/internal/scanner"
)

func newTestScheduler() *Scheduler {
	bus := event.NewBus(16)
	mock := &collector.MockFetcher{}
	an := analyzer.New(mock, bus)
	sc := scanner.New(mock, bus, []string{"AAPL", "MSFT"}, 0)
	return NewScheduler(context.Background(), an, sc)
}

func TestHandleCommand_Load(t *testing.T) {
	s := newTestScheduler()
	reply := s.HandleCommand("/load aapl")
	if reply != "Loading AAPL..." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestHandleCommand_LoadWithoutSymbol(t *testing.T) {
	s := newTestScheduler()
	if reply := s.HandleCommand("/load"); !strings.HasPrefix(reply, "usage:") {
		t.Errorf("expected usage reply, got %q", reply)
	}
}

func TestHandleCommand_Watchlist(t *testing.T) {
	s := newTestScheduler()
	if reply := s.HandleCommand("/watchlist"); reply != "AAPL MSFT" {
		t.Errorf("unexpected watchlist reply: %q", reply)
	}
}

func TestHandleCommand_UnknownShowsHelp(t *testing.T) {
	s := newTestScheduler()
	if reply := s.HandleCommand("/bogus"); !strings.Contains(reply, "/load SYMBOL") {
		t.Errorf("expected help text, got %q", reply)
	}
}

func TestRegisterScan_RejectsBadSpec(t *testing.T) {
	s := newTestScheduler()
	if err := s.RegisterScan("not a cron spec"); err == nil {
		t.Error("expected error for invalid cron spec")
	}
	if err := s.RegisterScan("0 0 * * * 1-5"); err != nil {
		t.Errorf("valid spec rejected: %v", err)
	}
}
