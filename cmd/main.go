package main

//
//  @title           stockdash API
//  @version         1.0
//  @description     Stock price history aggregation & dashboard service.
//  @termsOfService  https://github.com/guttosm/stockdash
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/stockdash
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        prices
//  @tag.description Combined OHLCV price table per ticker list
//
//  @tag.name        metrics
//  @tag.description Last price and period variation per ticker
//
//  @tag.name        export
//  @tag.description CSV and spreadsheet downloads of the price table
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/stockdash/config"
	_ "github.com/guttosm/stockdash/docs" // swagger docs
	"github.com/guttosm/stockdash/internal/aggregator"
	"github.com/guttosm/stockdash/internal/app"
	"github.com/guttosm/stockdash/internal/cache"
	"github.com/guttosm/stockdash/internal/export"
	"github.com/guttosm/stockdash/internal/logger"
	"github.com/guttosm/stockdash/internal/provider"
	"github.com/guttosm/stockdash/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runExport performs a one-shot aggregation and writes dados_acoes.csv and
// dados_acoes.xlsx into outDir.
func runExport(ctx context.Context, cfg config.Config, tickers []string, start, end time.Time, computeMA bool, maWindow int, outDir string) error {
	hist := provider.NewYahooProvider(cfg.Provider.BaseURL, cfg.Provider.Timeout, cfg.Provider.MaxParallel)
	svc := service.NewDashboardService(aggregator.New(hist), cache.Noop{})

	req := aggregator.Request{
		Tickers:   tickers,
		Start:     start,
		End:       end,
		ComputeMA: computeMA,
		MAWindow:  maWindow,
	}

	csvData, err := svc.ExportCSV(ctx, req)
	if err != nil {
		return err
	}
	xlsxData, err := svc.ExportXLSX(ctx, req)
	if err != nil {
		return err
	}

	csvPath := filepath.Join(outDir, export.CSVFileName)
	if err := os.WriteFile(csvPath, csvData, 0o644); err != nil {
		return err
	}
	xlsxPath := filepath.Join(outDir, export.XLSXFileName)
	if err := os.WriteFile(xlsxPath, xlsxData, 0o644); err != nil {
		return err
	}

	logger.L().Info().Str("csv", csvPath).Str("xlsx", xlsxPath).Msg("export written")
	return nil
}

// main is the entry point of the stockdash application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API exposing prices, metrics and exports.
//   - export: One-shot fetch of the requested tickers, writing
//     dados_acoes.csv and dados_acoes.xlsx to --out.
//
// Flags:
//   - --mode:      Execution mode ("api" or "export"). Default: "api".
//   - --port:      Port for API mode. Defaults to value from config (SERVER_PORT).
//   - --tickers:   Comma-separated tickers for export mode.
//   - --start:     Start date (YYYY-MM-DD) for export mode.
//   - --end:       End date (YYYY-MM-DD) for export mode.
//   - --ma:        Compute the trailing moving average in export mode.
//   - --ma-window: Moving-average window (default 20).
//   - --out:       Output directory for export mode. Default: ".".
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or export")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	tickers := flag.String("tickers", "PETR4.SA,VALE3.SA,ITUB4.SA", "Comma-separated tickers for export mode")
	start := flag.String("start", "2020-01-01", "Start date (YYYY-MM-DD) for export mode")
	end := flag.String("end", "2025-01-01", "End date (YYYY-MM-DD) for export mode")
	computeMA := flag.Bool("ma", false, "Compute moving average in export mode")
	maWindow := flag.Int("ma-window", aggregator.DefaultMAWindow, "Moving-average window (days)")
	outDir := flag.String("out", ".", "Output directory for export mode")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "export":
		// Export mode: aggregate once and write both download artifacts
		logger.L().Info().Msg("running export")

		startDate, err := time.Parse("2006-01-02", *start)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("invalid --start")
		}
		endDate, err := time.Parse("2006-01-02", *end)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("invalid --end")
		}

		list := strings.Split(*tickers, ",")
		if err := runExport(ctx, config.AppConfig, list, startDate, endDate, *computeMA, *maWindow, *outDir); err != nil {
			logger.L().Fatal().Err(err).Msg("export failed")
		}
		logger.L().Info().Msg("export completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
