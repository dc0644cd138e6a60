package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"FarmShield/internal/advisory"
	"FarmShield/internal/collector"
	"FarmShield/internal/model"
	"FarmShield/internal/notifier"
	"FarmShield/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the periodic advisory runs.
type Scheduler struct {
	Cron     *cron.Cron
	Source   collector.Source
	Engine   *advisory.Engine
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Ctx      context.Context

	mu   sync.Mutex
	last *model.AdvisoryResult
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, src collector.Source, eng *advisory.Engine, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Source:   src,
		Engine:   eng,
		Notifier: tn,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// RegisterAll registers the periodic advisory task.
func (s *Scheduler) RegisterAll(advisoryCron string) error {
	if _, err := s.Cron.AddFunc(advisoryCron, s.advisoryTask); err != nil {
		return fmt.Errorf("register advisory task: %w", err)
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

// RunAdvisoryNow executes the advisory task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunAdvisoryNow() {
	s.advisoryTask()
}

func (s *Scheduler) advisoryTask() {
	log.Println("[INFO] running advisory task")
	in, err := s.Source.Load()
	if err != nil {
		log.Printf("[ERROR] load signals: %v", err)
		s.trySend(fmt.Sprintf("❌ advisory signal load failed: %v", err))
		return
	}

	result := s.Engine.Analyze(in)
	crop := s.Engine.ResolvedCrop(&in.Farmer)

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	report := notifier.FormatAdvisoryReport(crop, in, result)
	s.trySend(report)

	if result.RiskLevel == model.RiskHigh {
		s.trySend(notifier.FormatHighRiskAlert(result))
	}

	if err := s.Recorder.RecordAdvisory(&recorder.AdvisorySnapshot{
		Crop:     crop,
		District: in.Farmer.District,
		Source:   s.Source.Name(),
		Result:   result,
	}); err != nil {
		log.Printf("[ERROR] record advisory: %v", err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case notifier.CmdAdvice:
		s.advisoryTask()
		return ""
	case notifier.CmdStatus:
		s.mu.Lock()
		last := s.last
		s.mu.Unlock()
		if last == nil {
			return "No advisory has run yet. Use /advice to run one now."
		}
		return fmt.Sprintf("Last advisory: %s risk | health %d/100\n%s",
			last.RiskLevel, last.FinancialHealthScore, last.ProtectionGap)
	default:
		return "Available commands:\n• /advice: run an advisory now\n• /status: show the last result"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
