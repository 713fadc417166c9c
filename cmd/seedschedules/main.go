package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/fideslex/booking-service/internal/config"
	scheduleRepo "github.com/fideslex/booking-service/internal/infra/storage/schedule"
	schedulesService "github.com/fideslex/booking-service/internal/service/schedules"
	"github.com/fideslex/booking-service/migrations"
	"github.com/fideslex/booking-service/pkg/dbmetrics"
	"github.com/fideslex/booking-service/pkg/logger"
	"github.com/fideslex/booking-service/pkg/migrator"
)

// Заполняет каталог слотов стандартной сеткой 09:00-16:00.
// Повторный запуск не создает дубликатов.
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	if _, err := migrator.Up(db, migrations.FS, "."); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	repo := scheduleRepo.NewRepository(dbmetrics.Wrap(db, nil))
	slots := schedulesService.DefaultSlots()

	inserted, err := repo.SeedDefaults(ctx, slots)
	if err != nil {
		log.Fatal("Failed to seed schedules: %v", err)
	}

	log.Info("Schedules seeded: %d inserted, %d already present", inserted, int64(len(slots))-inserted)
}
