package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bookshelf/internal/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	loadEnvFiles()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dir := migrationsDir()

	if *command == "create" {
		if *name == "" {
			log.Fatal("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			log.Fatal("create migration", zap.Error(err))
		}
		log.Info("migration created", zap.String("name", *name))
		return
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseDSN())
	if err != nil {
		log.Fatal("connect to database", zap.Error(err))
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("set dialect", zap.Error(err))
	}

	switch *command {
	case "up":
		if err := goose.UpContext(ctx, db, dir); err != nil {
			log.Fatal("run migrations", zap.Error(err))
		}
		log.Info("migrations applied")
	case "down":
		if err := goose.DownContext(ctx, db, dir); err != nil {
			log.Fatal("roll back migration", zap.Error(err))
		}
		log.Info("migration rolled back")
	case "status":
		if err := goose.StatusContext(ctx, db, dir); err != nil {
			log.Fatal("migration status", zap.Error(err))
		}
	default:
		log.Fatal("unknown command, use: up, down, status, create", zap.String("command", *command))
	}
}
