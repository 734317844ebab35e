package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"toolhire-pricing/internal/config"
	"toolhire-pricing/internal/credit"
	"toolhire-pricing/internal/domain"
	"toolhire-pricing/internal/jobs"
	"toolhire-pricing/internal/logger"
	"toolhire-pricing/internal/pricing"
	"toolhire-pricing/internal/report"
	"toolhire-pricing/internal/repository"
	"toolhire-pricing/internal/repository/csv"
	"toolhire-pricing/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting tool hire pricing run...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Model directory", "dir", cfg.Model.Dir)

	// Load rate tables
	var store repository.RateSource = csv.NewStore(cfg.Model)

	memberships, err := store.Memberships()
	if err != nil {
		log.Fatalf("Failed to load membership table: %v", err)
	}
	tools, err := store.Tools()
	if err != nil {
		log.Fatalf("Failed to load tool table: %v", err)
	}
	seasons, err := store.Seasons()
	if err != nil {
		log.Fatalf("Failed to load season table: %v", err)
	}
	windows, err := store.TimeWindows()
	if err != nil {
		log.Fatalf("Failed to load time window table: %v", err)
	}
	lateFees, err := store.LateFees()
	if err != nil {
		log.Fatalf("Failed to load late fee table: %v", err)
	}

	logger.Info("Rate tables loaded",
		"memberships", len(memberships),
		"tools", len(tools),
		"seasons", len(seasons),
		"time_windows", len(windows),
		"late_fee_bands", len(lateFees))

	// Compose the pricing core. Pipeline order is contractual:
	// membership, seasonal, time window, behavior bonus.
	rules := pricing.BonusRules{
		EarlyReturnPercent:    decimal.NewFromFloat(cfg.Credits.EarlyReturnPercent),
		EarlyReturnMultiplier: decimal.NewFromInt(int64(cfg.Credits.EarlyReturnMultiplier)),
		CleanReturnBonus:      domain.Credits(cfg.Credits.CleanReturnBonus),
	}
	pipeline := pricing.NewPipeline(
		pricing.NewMembershipStage(memberships),
		pricing.NewSeasonalStage(seasons),
		pricing.NewTimeWindowStage(windows),
		pricing.NewBehaviorBonusStage(rules),
	)

	ledger := credit.NewLedger()
	engine, err := pricing.NewEngine(pricing.NewPriceBook(tools), pipeline, pricing.NewLateFeeTable(lateFees), ledger)
	if err != nil {
		log.Fatalf("Failed to assemble pricing engine: %v", err)
	}

	// Optionally start the monthly credit grant scheduler
	if cfg.Scheduler.Enabled {
		runner := jobs.NewJobRunner(ledger, memberships, cfg)
		sched := scheduler.NewScheduler(runner)
		sched.Start()
		defer sched.Stop()
	}

	// Demo rental: Plus member, Tier 3 tool over a November weekend,
	// returned early and clean, weekend delivery, premium insurance,
	// three hours late.
	start := time.Date(2025, time.November, 7, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.November, 9, 20, 0, 0, 0, time.UTC)
	rental := domain.NewRental(domain.MembershipPlus, domain.Tier3, domain.WindowWeekend, start, end, true)

	logger.Info("Rental created",
		"id", rental.ID,
		"member", rental.Membership.String(),
		"tier", rental.Tier.String(),
		"window", rental.Window.String(),
		"duration_hours", end.Sub(start).Hours())

	// Drive the full lifecycle
	steps := []struct {
		name string
		run  func() error
	}{
		{"activate", rental.Activate},
		{"return", rental.Return},
		{"inspect", func() error { return rental.Inspect(true, true) }},
		{"close", rental.Close},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Fatalf("Lifecycle step %s failed: %v", step.name, err)
		}
		logger.Info("Lifecycle transition", "op", step.name, "state", rental.State().String())
	}

	late := 3 * time.Hour
	summary := engine.QuoteAndApply(rental, true, domain.InsurancePremium, &late)

	report.WriteSummary(os.Stdout, summary)
	report.WriteLedger(os.Stdout, ledger)
}
