package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaign-loader/db/migrations"
)

// ErrDirtySchema means a previous migration stopped half way. The schema
// must be repaired by hand before the service can start.
var ErrDirtySchema = errors.New("database schema is dirty")

// Migrate brings the campaign_jobs schema at addr to migrations.Version and
// returns the version found before migrating, zero for an empty database.
func Migrate(addr string) (from uint, err error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open embedded migrations: %w", err)
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return 0, fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return 0, fmt.Errorf("read schema version: %w", err)
	case dirty:
		return from, fmt.Errorf("%w at version %d", ErrDirtySchema, from)
	case from > migrations.Version:
		return from, fmt.Errorf("schema version %d is newer than supported %d", from, migrations.Version)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, fmt.Errorf("migrate to %d: %w", migrations.Version, err)
	}
	return from, nil
}
