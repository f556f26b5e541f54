package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const (
	databaseURLFlag   = "database-url"
	migrationPathFlag = "migrations-path"
	downFlag          = "down"
)

func main() {
	databaseURL, migrationsPath, down := getFlagsValues()
	validateFlags(databaseURL, migrationsPath)
	makeMigrations(databaseURL, migrationsPath, down)
}

type MigrationLogger struct {
	logger  *slog.Logger
	verbose bool
}

func NewMigrationLogger() *MigrationLogger {
	return &MigrationLogger{
		logger:  slog.Default(),
		verbose: true,
	}
}

func (ml *MigrationLogger) Printf(format string, v ...any) {
	ml.logger.Info(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
}

func (ml *MigrationLogger) Verbose() bool {
	return ml.verbose
}

func getFlagsValues() (databaseURL, migrations string, down bool) {
	urlFlag := pflag.StringP(databaseURLFlag, "d", "",
		"mongodb URI including the database name, e.g. mongodb://localhost:27017/catalog")
	migrationsPath := pflag.StringP(migrationPathFlag, "m", "", "migrations directory")
	downAll := pflag.Bool(downFlag, false, "revert all migrations")
	pflag.Parse()
	return *urlFlag, *migrationsPath, *downAll
}

func validateFlags(databaseURL, migrationsPath string) {
	var errs []error

	if databaseURL == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", databaseURLFlag))
	} else if !strings.HasPrefix(databaseURL, "mongodb://") &&
		!strings.HasPrefix(databaseURL, "mongodb+srv://") {
		errs = append(errs, fmt.Errorf("--%s flag: mongodb URI expected", databaseURLFlag))
	}

	if migrationsPath == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", migrationPathFlag))
	}

	if len(errs) != 0 {
		slog.Error("invalid args", "err", errors.Join(errs...))
		fallDown()
	}
}

func makeMigrations(databaseURL, migrationsPath string, down bool) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		databaseURL,
	)
	if err != nil {
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	defer m.Close()

	m.Log = NewMigrationLogger()

	apply, result := m.Up, "migrations applied"
	if down {
		apply, result = m.Down, "migrations reverted"
	}

	if err := apply(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("no migrations to apply")
			return
		}
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	m.Log.Printf("%s", result)
}

func fallDown() {
	os.Exit(2)
}
