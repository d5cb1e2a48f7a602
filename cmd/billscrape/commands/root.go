package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"congress-scraper/lib/telemetry"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("billscrape")

var (
	verbose    bool
	configPath string
)

// shutdownTelemetry is replaced once telemetry has been set up.
var shutdownTelemetry = func(context.Context) error { return nil }

var rootCmd = &cobra.Command{
	Use:           "billscrape",
	Short:         "billscrape collects the bills listed by the congress.gov legislation search.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		tel, err := telemetry.SetupFromEnv(cmd.Context(), "billscrape")
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("no telemetry config found, traces and metrics are disabled")
			return nil
		}
		if err != nil {
			return err
		}
		shutdownTelemetry = tel.Shutdown
		telemetry.InstrumentPerfStats(cmd.Context(), time.Second*30)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "billscrape.json5", "The config file to read, a <name>.local.json5 next to it overrides it.")
}

// runTraced runs fn inside a span named after the command.
func runTraced(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(cmd.Context(), "billscrape:"+cmd.Name())
	defer span.End()

	for _, flag := range []string{"page", "page-size", "chamber", "format"} {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			span.SetAttributes(attribute.String("flag."+flag, f.Value.String()))
		}
	}

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	shutdownErr := shutdownTelemetry(shutdownCtx)
	if shutdownErr != nil {
		slog.Warn("failed to shutdown telemetry", "err", shutdownErr)
	}

	return err
}
