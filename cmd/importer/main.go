package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/latenitesite/mattermost-mobile/internal/client"
	"github.com/latenitesite/mattermost-mobile/internal/config"
	"github.com/latenitesite/mattermost-mobile/internal/logger"
	"github.com/latenitesite/mattermost-mobile/internal/metrics"
	"github.com/latenitesite/mattermost-mobile/internal/service"
	"github.com/latenitesite/mattermost-mobile/internal/store"
	"github.com/latenitesite/mattermost-mobile/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("importer")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled
	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.Server.URL, log)
	if err != nil {
		return fmt.Errorf("create local storages: %w", err)
	}
	defer storages.Manager.Close()

	registry := prometheus.NewRegistry()
	services := service.NewClientServices(storages, metrics.NewCommitMetrics(registry))

	app, err := client.NewApp(services, cfg.Import, log)
	if err != nil {
		return fmt.Errorf("init importer: %w", err)
	}

	if err = app.Run(ctx); err != nil {
		return err
	}

	logCounters(registry, log)
	return nil
}

// logCounters reports the commit counters collected during the run.
func logCounters(registry *prometheus.Registry, log *logger.Logger) {
	families, err := registry.Gather()
	if err != nil {
		log.Warn().Err(err).Msg("failed to gather metrics")
		return
	}

	for _, family := range families {
		for _, m := range family.GetMetric() {
			event := log.Debug().Str("metric", family.GetName())
			for _, label := range m.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			event.Float64("value", m.GetCounter().GetValue()).Msg("commit counter")
		}
	}
}

// printBuildInfo writes to stderr, stdout carries the import summary.
func printBuildInfo(info models.AppBuildInfo) {
	version, date, commit := info.BuildVersion(), info.BuildDate(), info.BuildCommit()
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", version)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", date)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", commit)
}
