// Command datavalidate checks user data quality, removes placeholder rows,
// refreshes the stored analytics and prunes stale weather cache entries,
// then writes a plain-text report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harvestnet/platform/internal/platform/service"
	"github.com/harvestnet/platform/internal/platform/store/drivers/sqlite"
	"github.com/harvestnet/platform/pkg/slogx"
)

func main() {
	var (
		dbPath  = flag.String("db", envOr("DATABASE_FILE", "harvestnet.db"), "path to the SQLite database")
		outPath = flag.String("out", "validation_report.txt", "where to write the report")
		dryRun  = flag.Bool("dry-run", false, "validate and count, but roll back every change")
		maxAge  = flag.Duration("cache-max-age", service.DefaultCacheWindow, "weather cache rows older than this are removed")
	)
	flag.Parse()

	logger := slogx.New(slogx.Config{
		Service: "harvestnet-datavalidate",
		Env:     envOr("ENV", "dev"),
		Level:   envOr("LOG_LEVEL", "info"),
		Format:  envOr("LOG_FORMAT", "text"),
		Output:  os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = slogx.WithContext(ctx, logger)

	if err := run(ctx, *dbPath, *outPath, *dryRun, *maxAge); err != nil {
		log.Fatalf("datavalidate: %v", err)
	}
}

func run(ctx context.Context, dbPath, outPath string, dryRun bool, maxAge time.Duration) error {
	l := slogx.FromContext(ctx)

	st, err := sqlite.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = st.Close() }()

	if err := st.ApplyMigrations(); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	svc := &service.ValidationService{
		Store:       st,
		Validate:    service.NewValidator(),
		CacheMaxAge: maxAge,
		DryRun:      dryRun,
	}

	report, err := svc.Report(ctx, time.Now())
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, []byte(report), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Print(report)

	l.Info("validation report written", "path", outPath, "dry_run", dryRun)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
