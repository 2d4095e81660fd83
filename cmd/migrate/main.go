package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"storeradar/config"
	logs "storeradar/internal/infra/log"
	"storeradar/internal/infra/persistence/migration"
	"storeradar/internal/infra/persistence/postgres"
)

func main() {
	rollback := flag.Bool("rollback", false, "revert the most recently applied migration instead of migrating up")
	flag.Parse()

	if err := run(*rollback); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(rollback bool) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	if rollback {
		return migration.RollbackLast(db, logger)
	}

	return migration.Migrate(db, logger)
}
