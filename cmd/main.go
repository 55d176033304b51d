package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/geocoord/internal/config"
	"github.com/UnknownOlympus/geocoord/internal/geocoding"
	"github.com/UnknownOlympus/geocoord/internal/geometry"
	"github.com/UnknownOlympus/geocoord/internal/metrics"
	"github.com/UnknownOlympus/geocoord/internal/models"
	"github.com/UnknownOlympus/geocoord/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

var errUsage = errors.New("usage: geocoord ADDRESS ADDRESS [ADDRESS]")

// main is the entry point of the application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run geocodes args, prints the legs between consecutive addresses to out
// and optionally dumps the collected metrics.
func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 2 {
		return errUsage
	}

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	workers := max(1, cfg.Workers)
	provider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(cfg.ProviderType),
		APIKey:    cfg.APIKey,
		RateLimit: cfg.RateLimit / workers,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create geocoding provider: %w", err)
	}
	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.ProviderType)

	factory := geometry.NewFactory(logger, appMetrics)
	surveyor := service.NewSurveyor(logger, provider, cfg.ProviderType, factory, appMetrics, workers, cfg.SphereRadius)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	locations, err := surveyor.Locate(ctx, args)
	if err != nil {
		return fmt.Errorf("survey failed: %w", err)
	}
	legs, err := surveyor.Legs(locations)
	if err != nil {
		return fmt.Errorf("failed to measure legs: %w", err)
	}

	if err = printSurvey(out, locations, legs); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err = prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.InfoContext(ctx, "Metrics written", "file", cfg.MetricsFile)
	}

	return nil
}

// printSurvey writes one line per location followed by one line per leg.
func printSurvey(out io.Writer, locations []*models.Location, legs []service.Leg) error {
	for _, loc := range locations {
		if _, err := fmt.Fprintf(out, "%s\t%v\n", loc.Label, loc.Coordinate()); err != nil {
			return err
		}
	}
	for _, leg := range legs {
		_, err := fmt.Fprintf(out, "%s -> %s\tdistance=%.3f\tangle=%.6f rad\n",
			leg.From.Label, leg.To.Label, leg.Distance, leg.CentralAngle)
		if err != nil {
			return err
		}
	}
	return nil
}

// setupLogger initializes and returns a logger based on the environment provided.
// Logs go to stderr so that stdout carries only the survey.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:       slog.LevelError,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
