package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ansnew/facetrack/internal/config"
	"github.com/ansnew/facetrack/internal/database"
	"github.com/ansnew/facetrack/internal/detect"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage registered employees",
}

func init() {
	rootCmd.AddCommand(employeeCmd)
}

// openStore opens the SQLite database and applies pending migrations. The
// returned cleanup must be deferred.
func openStore(ctx context.Context, cfg *config.Config) (*database.EmployeeRepository, func(), error) {
	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return database.NewEmployeeRepository(db), func() { db.Close() }, nil
}

// newDetector builds the pigo face detector from configuration.
func newDetector(cfg *config.Config) (detect.Detector, error) {
	detector, err := detect.NewPigo(cfg.Detector)
	if err != nil {
		return nil, fmt.Errorf("failed to load face detector: %w", err)
	}
	return detector, nil
}
