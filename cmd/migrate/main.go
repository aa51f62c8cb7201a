package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"hotel-backoffice/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// Applies the versioned SQL files under -dir with the atlas CLI.
// The directory needs an atlas.sum (atlas migrate hash).
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending files without applying them")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to read database config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", *atlasBin)
	if err != nil {
		logger.Error("failed to init atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: "file://" + *dir,
		DryRun: *dryRun,
	})
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"dry_run", *dryRun)
}
