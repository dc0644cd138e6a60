package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"FarmShield/internal/advisory"
	"FarmShield/internal/collector"
	"FarmShield/internal/config"
	"FarmShield/internal/notifier"
	"FarmShield/internal/recorder"
	"FarmShield/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] FarmShield starting...")

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

	// Init signal source
	var src collector.Source
	if cfg.Signals.Source == "http" {
		src = collector.NewHTTPSource(cfg.Signals.BaseURL, cfg.Signals.APIKey, cfg.Signals.FarmerID, cfg.Proxy)
	} else {
		src = collector.NewFileSource(cfg.Signals.Path)
	}
	log.Printf("[INFO] signal source: %s", src.Name())

	// Init advisory engine
	engine := advisory.New(buildPolicy(cfg))

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, src, engine, tn, rec)
	if err := sched.RegisterAll(cfg.Schedule.AdvisoryCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing advisory task now")
		go sched.RunAdvisoryNow()
	}

	log.Println("[INFO] FarmShield is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] FarmShield stopped")
}

// buildPolicy applies config overrides on top of the default policy.
func buildPolicy(cfg *config.Config) advisory.Policy {
	p := advisory.DefaultPolicy()
	for _, crop := range cfg.Policy.ExtraMSPCrops {
		crop = strings.ToUpper(strings.TrimSpace(crop))
		if crop != "" {
			p.MSPCrops[crop] = true
		}
	}
	if cfg.Policy.SmallholdingAcres > 0 {
		p.SmallholdingAcres = cfg.Policy.SmallholdingAcres
	}
	if cfg.Policy.DefaultCrop != "" {
		p.DefaultCrop = cfg.Policy.DefaultCrop
	}
	return p
}
