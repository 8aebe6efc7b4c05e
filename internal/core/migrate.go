// AngelaMos | 2026
// migrate.go

package core

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/config"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies the embedded schema migrations.
//
// Postgres migrations run on a dedicated pool because the migrate driver
// pins a connection and closes its handle on Close. SQLite reuses the
// application handle, which is the only way to reach an in-memory database.
func Migrate(d *Database, dsn string) (uint, error) {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return 0, fmt.Errorf("open migration source: %w", err)
	}

	var (
		driver database.Driver
		owned  *sqlx.DB
	)

	switch d.Driver {
	case config.DriverSQLite:
		driver, err = sqlitemigrate.WithInstance(d.DB.DB, &sqlitemigrate.Config{})
	case config.DriverPostgres:
		owned, err = sqlx.Open(config.DriverPostgres, dsn)
		if err != nil {
			return 0, fmt.Errorf("open migration pool: %w", err)
		}
		driver, err = pgxmigrate.WithInstance(owned.DB, &pgxmigrate.Config{})
	default:
		return 0, fmt.Errorf("migrate: unsupported driver %q", d.Driver)
	}
	if err != nil {
		if owned != nil {
			_ = owned.Close() //nolint:errcheck // cleanup on driver failure
		}
		return 0, fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, d.Driver, driver)
	if err != nil {
		return 0, fmt.Errorf("create migrator: %w", err)
	}
	if owned != nil {
		defer func() {
			_, _ = m.Close() //nolint:errcheck // closes the dedicated pool
		}()
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("read migration version: %w", err)
	}

	return version, nil
}
