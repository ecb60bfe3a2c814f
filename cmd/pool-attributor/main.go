package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/csvsource"
	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/pooltags"
	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/service"
	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/sink"
	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/metrics"
	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/progress"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type config struct {
	Input          string `long:"input" env:"POOL_ATTRIBUTOR_INPUT" description:"directory of CSV exports or a single CSV file" default:"./YearlyCoinbaseTransactions"`
	PoolTags       string `long:"pool-tags" env:"POOL_ATTRIBUTOR_POOL_TAGS" description:"JSON file with a coinbase_tags object" default:"./coinbase_tags_clean.json"`
	OutputXLSX     string `long:"output-xlsx" env:"POOL_ATTRIBUTOR_OUTPUT_XLSX" description:"spreadsheet export path" default:"./Export/allcoinbase_final.xlsx"`
	OutputCSV      string `long:"output-csv" env:"POOL_ATTRIBUTOR_OUTPUT_CSV" description:"CSV export path" default:"./Export/allcoinbase_final.csv"`
	Sheet          string `long:"sheet" env:"POOL_ATTRIBUTOR_SHEET" description:"spreadsheet sheet name" default:"Sheet1"`
	Workers        int    `long:"workers" env:"POOL_ATTRIBUTOR_WORKERS" description:"decode and match workers" default:"20"`
	DecodedColumns bool   `long:"decoded-columns" env:"POOL_ATTRIBUTOR_DECODED_COLUMNS" description:"append decoded script views to the export"`
	NoProgress     bool   `long:"no-progress" env:"POOL_ATTRIBUTOR_NO_PROGRESS" description:"disable the terminal progress indicator"`
	MetricsFile    string `long:"metrics-file" env:"POOL_ATTRIBUTOR_METRICS_FILE" description:"write prometheus metrics to this file after the run"`
	LogJSON        bool   `long:"log-json" env:"POOL_ATTRIBUTOR_LOG_JSON" description:"log in JSON instead of the console format"`
}

func main() {
	cfg := config{}

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, "failed to parse flags:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Fatal("pool attribution failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger, out io.Writer) error {
	m := metrics.NewAttribution(filepath.Base(filepath.Clean(cfg.Input)))

	spinner := progress.NewSpinner(out,
		"Processing... (This may take a couple of minutes, coffee time!)",
		!cfg.NoProgress && progress.Interactive(out),
	)

	svc, err := service.NewAttributionService(
		pooltags.NewFileLoader(cfg.PoolTags),
		csvsource.New(cfg.Input, logger),
		[]service.Sink{
			sink.NewXLSX(cfg.OutputXLSX, cfg.Sheet),
			sink.NewCSV(cfg.OutputCSV),
		},
		spinner,
		m,
		service.Config{
			WorkerCount:    cfg.Workers,
			DecodedColumns: cfg.DecodedColumns,
		},
		logger,
	)
	if err != nil {
		return err
	}

	summary, runErr := svc.Run(ctx)
	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("failed to write metrics file", zap.String("path", cfg.MetricsFile), zap.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	printSummary(out, summary)
	return nil
}

func printSummary(out io.Writer, summary service.Summary) {
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(out, "Attributed %d of %d records (%d unattributed, %d undecodable)\n",
		summary.Attributed, summary.Records, summary.Unattributed, summary.DecodeFailures)
	for _, pool := range summary.Pools {
		_, _ = p.Fprintf(out, "  %-32s %10d\n", pool.Name, pool.Records)
	}
}
