package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilovegrooming/TradeBot/internal/analyzer"
	"github.com/ilovegrooming/TradeBot/internal/collector"
	"github.com/ilovegrooming/TradeBot/internal/config"
	"github.com/ilovegrooming/TradeBot/internal/event"
	"github.com/ilovegrooming/TradeBot/internal/presenter"
	"github.com/ilovegrooming/TradeBot/internal/scanner"
	"github.com/ilovegrooming/TradeBot/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TradeBot starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "alphavantage":
		fetcher = collector.NewAlphaVantageFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "yahoo":
		fetcher = collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	default:
		fetcher = &collector.MockFetcher{}
	}
	if ttl := time.Duration(cfg.DataSource.CacheTTLMinutes) * time.Minute; ttl > 0 {
		fetcher = collector.NewCachingFetcher(fetcher, ttl)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Event bus and pipelines
	bus := event.NewBus(64)
	an := analyzer.New(fetcher, bus)
	sc := scanner.New(fetcher, bus, cfg.Scan.Watchlist, time.Duration(cfg.Scan.DelaySeconds)*time.Second)

	// Presentation: single consumer loop, optionally mirrored to Telegram
	var tn *presenter.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = presenter.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		log.Println("[INFO] Telegram delivery enabled")
	}
	loop := &presenter.Loop{Bus: bus, Notifier: tn}
	go loop.Run(ctx)

	// Scheduler: periodic scans + command dispatch
	sched := scheduler.NewScheduler(ctx, an, sc)
	if cfg.Scan.Cron != "" {
		if err := sched.RegisterScan(cfg.Scan.Cron); err != nil {
			log.Fatalf("[FATAL] register scan task: %v", err)
		}
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.Poll(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Load the default symbol on start, like the interactive app did
	go an.Analyze(ctx, cfg.DataSource.Symbol)

	if os.Getenv("SCAN_ON_START") == "true" {
		log.Println("[INFO] SCAN_ON_START enabled, scanning watch list now")
		sched.RunScanNow()
	}

	log.Println("[INFO] TradeBot is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TradeBot stopped")
}
