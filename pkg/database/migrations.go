package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/SscSPs/comandas_backend/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/rs/zerolog"
)

// MigrationsTable tracks the applied set.
const MigrationsTable = "schema_migrations"

// MigrationFile is one named, ordered migration with its forward and reverse scripts.
type MigrationFile struct {
	Version    uint
	Identifier string
	UpFile     string
	DownFile   string
}

// ListMigrations returns the migrations found in fsys in ascending version order.
// Every version must provide both an up and a down script.
func ListMigrations(fsys fs.FS) ([]MigrationFile, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	byVersion := map[uint]*MigrationFile{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m, err := source.DefaultParse(e.Name())
		if err != nil {
			// Non-migration files (the embedding Go file) are skipped.
			continue
		}
		p, ok := byVersion[m.Version]
		if !ok {
			p = &MigrationFile{Version: m.Version, Identifier: m.Identifier}
			byVersion[m.Version] = p
		}
		if p.Identifier != m.Identifier {
			return nil, fmt.Errorf("version %d has conflicting names %q and %q", m.Version, p.Identifier, m.Identifier)
		}
		switch m.Direction {
		case source.Up:
			p.UpFile = e.Name()
		case source.Down:
			p.DownFile = e.Name()
		}
	}

	pairs := make([]MigrationFile, 0, len(byVersion))
	for _, p := range byVersion {
		if p.UpFile == "" || p.DownFile == "" {
			return nil, fmt.Errorf("migration %d_%s must have both up and down scripts", p.Version, p.Identifier)
		}
		pairs = append(pairs, *p)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Version < pairs[j].Version })
	return pairs, nil
}

// Migrator applies the embedded migrations. The pgx driver takes an advisory
// lock, so concurrent runs against the same database are serialized.
type Migrator struct {
	m      *migrate.Migrate
	db     *sql.DB
	fsys   fs.FS
	logger zerolog.Logger
}

// NewMigrator opens a dedicated database/sql handle (pgx stdlib driver) for migrate.
func NewMigrator(ctx context.Context, databaseURL string) (*Migrator, error) {
	return newMigrator(ctx, databaseURL, migrations.FS)
}

func newMigrator(ctx context.Context, databaseURL string, fsys fs.FS) (*Migrator, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "migrator").Logger()

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{MigrationsTable: MigrationsTable})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not create pgx driver instance for migrations: %w", err)
	}

	src, err := iofs.New(fsys, ".")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	m.Log = migrateLogger{logger: logger}

	return &Migrator{m: m, db: db, fsys: fsys, logger: logger}, nil
}

// List returns the embedded migrations in the order Up applies them.
func (mg *Migrator) List() ([]MigrationFile, error) {
	return ListMigrations(mg.fsys)
}

// Up applies every pending migration in version order. Having nothing to apply is not an error.
func (mg *Migrator) Up() error {
	return mg.run("up", mg.m.Up)
}

// Down reverts every applied migration in reverse order.
func (mg *Migrator) Down() error {
	return mg.run("down", mg.m.Down)
}

// Steps applies n migrations forward (n > 0) or reverts -n migrations (n < 0).
func (mg *Migrator) Steps(n int) error {
	return mg.run(fmt.Sprintf("steps(%d)", n), func() error { return mg.m.Steps(n) })
}

// Force sets the recorded version without running anything and clears the dirty flag.
func (mg *Migrator) Force(version int) error {
	if err := mg.m.Force(version); err != nil {
		return fmt.Errorf("failed to force migration version %d: %w", version, err)
	}
	mg.logger.Warn().Int("version", version).Msg("Migration version forced")
	return nil
}

// Version reports the last applied version and whether it was left dirty by a failed run.
// A database with no migrations applied reports version 0.
func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read migration version: %w", err)
	}
	return v, dirty, nil
}

// Close releases the source, the driver and the database handle.
func (mg *Migrator) Close() error {
	sourceErr, dbErr := mg.m.Close()
	closeErr := mg.db.Close()
	if errors.Is(closeErr, sql.ErrConnDone) {
		closeErr = nil
	}
	return errors.Join(sourceErr, dbErr, closeErr)
}

func (mg *Migrator) run(name string, fn func() error) error {
	err := fn()
	if errors.Is(err, migrate.ErrNoChange) {
		mg.logger.Info().Str("direction", name).Msg("No migrations to apply")
		return nil
	}
	if err != nil {
		// migrate stops at the failing step and leaves the version dirty.
		v, dirty, _ := mg.Version()
		mg.logger.Error().Err(err).Str("direction", name).Uint("version", v).Bool("dirty", dirty).Msg("Migration batch aborted")
		return fmt.Errorf("failed to apply migrations (%s): %w", name, err)
	}
	v, _, _ := mg.Version()
	mg.logger.Info().Str("direction", name).Uint("version", v).Msg("Database migrations applied")
	return nil
}

// RunMigrations applies all pending migrations and closes the migrator.
func RunMigrations(ctx context.Context, databaseURL string) (err error) {
	mg, err := NewMigrator(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := mg.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close migrator: %w", cerr)
		}
	}()
	return mg.Up()
}

type migrateLogger struct {
	logger zerolog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug().Msgf(format, v...)
}

func (l migrateLogger) Verbose() bool {
	return l.logger.GetLevel() <= zerolog.DebugLevel
}
