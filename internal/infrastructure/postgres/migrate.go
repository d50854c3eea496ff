package postgres

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // driver postgres
	_ "github.com/golang-migrate/migrate/v4/source/file"       // source file://
	"github.com/jhoicas/Manufactura-api/pkg/logger"
)

// RunMigrations aplica las migraciones SQL pendientes al arrancar.
func RunMigrations(dbURL, migrationsDir string, log *logger.Logger) error {
	absPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		return fmt.Errorf("ruta de migraciones: %w", err)
	}

	m, err := migrate.New("file://"+absPath, dbURL)
	if err != nil {
		return fmt.Errorf("abrir migraciones: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("migraciones: sin cambios")
			return nil
		}
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	log.Info().Str("dir", absPath).Msg("migraciones aplicadas")
	return nil
}
