package migrator

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Up применяет все непримененные миграции из files и возвращает текущую версию схемы.
// Соединение db не закрывается.
func Up(db *sql.DB, files fs.FS, dir string) (uint, error) {
	src, err := iofs.New(files, dir)
	if err != nil {
		return 0, fmt.Errorf("migrator: open source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, fmt.Errorf("migrator: init driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return 0, fmt.Errorf("migrator: init: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migrator: up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("migrator: version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("migrator: schema version %d is dirty", version)
	}
	return version, nil
}
