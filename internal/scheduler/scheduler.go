package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/ilovegrooming/TradeBot/internal/analyzer"
	"github.com/ilovegrooming/TradeBot/internal/scanner"
)

// Scheduler owns the cron-driven periodic scans and dispatches user
// commands into background pipeline units.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Scanner  *scanner.Scanner
	Ctx      context.Context
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, an *analyzer.Analyzer, sc *scanner.Scanner) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: an,
		Scanner:  sc,
		Ctx:      ctx,
	}
}

// RegisterScan schedules the periodic watch-list scan.
func (s *Scheduler) RegisterScan(spec string) error {
	if _, err := s.Cron.AddFunc(spec, func() {
		log.Println("[INFO] running scheduled scan")
		s.Scanner.Scan(s.Ctx)
	}); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow launches a scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	go s.Scanner.Scan(s.Ctx)
}

// HandleCommand processes a user command and returns an immediate reply.
// Pipeline results arrive asynchronously through the event loop; commands
// never block on fetches.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	switch fields[0] {
	case "/load":
		if len(fields) < 2 {
			return "usage: /load SYMBOL"
		}
		symbol := strings.ToUpper(fields[1])
		go s.Analyzer.Analyze(s.Ctx, symbol)
		return fmt.Sprintf("Loading %s...", symbol)
	case "/scan":
		s.RunScanNow()
		return "Scanning watch list..."
	case "/watchlist":
		return strings.Join(s.Scanner.Symbols, " ")
	default:
		return "Commands:\n• /load SYMBOL\n• /scan\n• /watchlist"
	}
}
