package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dealscout/internal/catalog"
	"dealscout/internal/config"
	"dealscout/internal/engine"
	"dealscout/internal/export"
	"dealscout/internal/refdata"
	"dealscout/internal/report"
	"dealscout/internal/tax"
	"dealscout/pkg/logger"
	"dealscout/pkg/redis"
)

// ENTRY POINT

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	tables, err := loadTables(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to load reference data", zap.Error(err))
	}

	switch os.Args[1] {
	case "score":
		err = runScore(ctx, cfg, tables, zapLogger, os.Args[2:])
	case "tax":
		err = runTax(tables, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		zapLogger.Fatal("Command failed", zap.Error(err))
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  dealscout score -asking <price> -msrp <price> -make <make> -model <model> -year <year> [-days N] [-rebates N] [-export]
  dealscout tax -price <price> [-model <model>] [-gvwr <lbs>] [-business-use pct] [-bracket pct] [-state-rate pct] [-down N] [-apr pct] [-term months] [-tax-year YYYY]`)
}

func loadTables(cfg *config.Config, log *zap.Logger) (*refdata.Store, error) {
	if cfg.RefDataFile == "" {
		return refdata.Default(), nil
	}
	tables, err := refdata.LoadFile(cfg.RefDataFile)
	if err != nil {
		return nil, fmt.Errorf("load reference data overlay: %w", err)
	}
	log.Info("Loaded reference data overlay", zap.String("file", cfg.RefDataFile))
	return tables, nil
}

// buildSource assembles the invoice catalog: the remote client when a
// provider is configured, the built-in seed otherwise, with an optional
// redis read-through cache in front.
func buildSource(ctx context.Context, cfg *config.Config, log *zap.Logger) (catalog.Source, func()) {
	var src catalog.Source
	if cfg.CatalogBaseURL != "" {
		src = catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey, cfg.HTTPRequestTimeout, log)
	} else {
		src = catalog.Seed()
	}

	if cfg.RedisAddr == "" {
		return src, func() {}
	}

	rdb := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
	if err := rdb.Ping(ctx); err != nil {
		log.Warn("Redis unreachable, running without cache", zap.Error(err))
		rdb.Close()
		return src, func() {}
	}
	return catalog.NewCached(src, rdb, cfg.CacheTTL, log), rdb.Close
}

func runScore(ctx context.Context, cfg *config.Config, tables *refdata.Store, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	var (
		asking    = fs.Float64("asking", 0, "asking price")
		msrp      = fs.Float64("msrp", 0, "MSRP")
		makeName  = fs.String("make", "", "vehicle make")
		modelName = fs.String("model", "", "vehicle model")
		year      = fs.Int("year", 0, "model year")
		days      = fs.Int("days", 0, "days on lot")
		rebates   = fs.Float64("rebates", 0, "available rebates, total dollars")
		doExport  = fs.Bool("export", false, "write the evaluation to an xlsx report")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	listing := engine.Listing{
		AskingPrice:      *asking,
		MSRP:             *msrp,
		Make:             *makeName,
		Model:            *modelName,
		Year:             *year,
		DaysOnLot:        *days,
		RebatesAvailable: *rebates,
	}

	src, closeSrc := buildSource(ctx, cfg, log)
	defer closeSrc()

	eng := engine.New(tables, src)
	ev, err := eng.Evaluate(ctx, listing, time.Now())
	if err != nil {
		return err
	}

	fmt.Print(report.RenderEvaluation(ev))

	if *doExport {
		path, err := export.EvaluationToExcel(ev, "reports")
		if err != nil {
			return err
		}
		log.Info("Report written", zap.String("path", path))
		fmt.Printf("\nReport written to %s\n", path)
	}

	return nil
}

func runTax(tables *refdata.Store, args []string) error {
	fs := flag.NewFlagSet("tax", flag.ExitOnError)
	var (
		price     = fs.Float64("price", 0, "vehicle price")
		model     = fs.String("model", "", "vehicle model for GVWR lookup")
		gvwr      = fs.Int("gvwr", 0, "GVWR override, pounds")
		business  = fs.Float64("business-use", 100, "business use percentage")
		bracket   = fs.Float64("bracket", 0, "federal tax bracket percentage")
		stateRate = fs.Float64("state-rate", 0, "state tax rate percentage")
		down      = fs.Float64("down", 0, "down payment")
		apr       = fs.Float64("apr", 0, "loan APR percentage")
		term      = fs.Int("term", 0, "loan term in months")
		taxYear   = fs.Int("tax-year", 0, "tax year, defaults to the latest table year")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := tax.Calculate(tables, tax.Input{
		VehiclePrice:     *price,
		BusinessUsePct:   *business,
		TaxBracket:       *bracket,
		StateTaxRate:     *stateRate,
		DownPayment:      *down,
		LoanInterestRate: *apr,
		LoanTermMonths:   *term,
		Model:            *model,
		GVWROverrideLbs:  *gvwr,
		TaxYear:          *taxYear,
	})
	if err != nil {
		return err
	}

	fmt.Print(report.RenderTax(result))
	return nil
}
