package database

import (
	"fmt"
	"os"

	"github.com/Gobusters/ectologger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationLogger adapts the service logger to the migrate logging interface.
type MigrationLogger struct {
	ectologger.Logger
}

func (l MigrationLogger) Verbose() bool {
	return true
}

func (l MigrationLogger) Printf(format string, v ...any) {
	l.Infof(format, v...)
}

type MigrationService struct {
	folderPath string
	logger     ectologger.Logger
}

func NewMigrationService(logger ectologger.Logger, folderPath string) *MigrationService {
	return &MigrationService{
		folderPath: folderPath,
		logger:     logger,
	}
}

// Migrate applies every pending up migration. An up-to-date schema is not an
// error.
func (ms *MigrationService) Migrate(databaseName string, databaseInstance database.Driver) error {
	folder := ms.resolveMigrationFolder()
	if _, err := os.Stat(folder); err != nil {
		return fmt.Errorf("migration folder %s does not exist: %w", folder, err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+folder, databaseName, databaseInstance)
	if err != nil {
		ms.logger.WithError(err).Error("Failed to create migrate instance")
		return err
	}
	m.Log = MigrationLogger{Logger: ms.logger}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			ms.logger.Info("No new migrations to apply")
			return nil
		}
		version, dirty, _ := m.Version()
		ms.logger.WithError(err).Errorf("Failed to apply migrations. Database is dirty=%t at version %d", dirty, version)
		return err
	}

	ms.logger.Info("Successfully applied migrations")
	return nil
}

// resolveMigrationFolder tries the configured path as-is and relative to the
// working directory.
func (ms *MigrationService) resolveMigrationFolder() string {
	if _, err := os.Stat(ms.folderPath); err == nil {
		return ms.folderPath
	}
	wd, _ := os.Getwd()
	return wd + "/" + ms.folderPath
}
