// migrate applies the SQL files under migrations/ to the configured database through atlas.
// The atlas CLI must be on PATH.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"ticket-seckill/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		dir     string
		url     string
		bin     string
		dryRun  bool
		status  bool
		timeout time.Duration
	)

	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flagSet.StringVar(&dir, "dir", "migrations", "directory holding the migration files and atlas.sum")
	flagSet.StringVar(&url, "url", "", "database URL (default: built from DB_* environment variables)")
	flagSet.StringVar(&bin, "atlas", "atlas", "atlas executable")
	flagSet.BoolVar(&dryRun, "dry-run", false, "print pending statements without executing them")
	flagSet.BoolVar(&status, "status", false, "report migration status and exit")
	flagSet.DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if url == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		url = cfg.DB.BuildDSN()
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return fmt.Errorf("load migrations from %s: %w", dir, err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if status {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url})
		if err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
		slog.Info("migration status",
			"current", st.Current,
			"next", st.Next,
			"pending", len(st.Pending),
			"applied", len(st.Applied),
		)
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    url,
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("migrate apply: %w", err)
	}

	for _, f := range res.Applied {
		slog.Info("applied migration", "file", f.Name, "statements", len(f.Applied))
	}
	slog.Info("migrations complete",
		"from", res.Current,
		"to", res.Target,
		"applied", len(res.Applied),
		"dry_run", dryRun,
	)
	return nil
}
