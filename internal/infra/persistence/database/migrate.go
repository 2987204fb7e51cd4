package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"userapi/config"
	"userapi/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// goose keeps its base FS, dialect and logger in package globals.
var gooseMu sync.Mutex

var gooseUpContext = goose.UpContext

type migrationSource struct {
	dialect string
	dir     string
}

func migrationSourceFor(driver string) (migrationSource, error) {
	switch driver {
	case config.DriverPostgres:
		return migrationSource{dialect: "postgres", dir: "migrations/postgres"}, nil
	case config.DriverSQLite:
		return migrationSource{dialect: "sqlite3", dir: "migrations/sqlite"}, nil
	default:
		return migrationSource{}, errors.Errorf("unsupported database driver: %q", driver)
	}
}

// Migrate applies the embedded migrations for driver to sqlDB.
func Migrate(ctx context.Context, sqlDB *sql.DB, driver string, logger *slog.Logger) error {
	src, err := migrationSourceFor(driver)
	if err != nil {
		return err
	}

	sub, err := fs.Sub(migrationsFS, src.dir)
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(src.dialect); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}
	if logger != nil {
		goose.SetLogger(&gooseSlogLogger{logger: logger})
	} else {
		goose.SetLogger(goose.NopLogger())
	}

	if err := gooseUpContext(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// gooseSlogLogger routes goose progress lines to slog.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	l.logger.Info("goose", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}

// Fatalf must not exit the process; errors are returned to the caller instead.
func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	l.logger.Error("goose", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}
