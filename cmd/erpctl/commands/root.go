package commands

import (
	"context"
	"fmt"
	"os"

	"go-retail-erp/cmd/erpctl/output"
	"go-retail-erp/internal/bootstrap"
	"go-retail-erp/internal/config"
	"go-retail-erp/pkg/kvstore"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// globalOptions override the environment configuration for one invocation.
type globalOptions struct {
	driver     string
	dsn        string
	sqlitePath string
	jsonOutput bool
}

// NewRootCmd builds the erpctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "erpctl",
		Short: "Maintenance commands for the clothing ERP store",
		Long: `erpctl works directly on the ERP key-value store, using the same
STORE_DRIVER / DATABASE_URL / SQLITE_PATH settings as the API server.

Commands:
  export   - Write every stored document to a backup file
  clear    - Erase all data
  stats    - Print dashboard statistics
  catalog  - List or edit product types, suppliers and platforms`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.driver, "driver", "", "Store driver: postgres, sqlite or memory (default from STORE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "PostgreSQL connection string (default from DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.sqlitePath, "sqlite", "", "SQLite database file (default from SQLITE_PATH)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(
		newExportCmd(opts),
		newClearCmd(opts),
		newStatsCmd(opts),
		newCatalogCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := godotenv.Load(); err != nil {
		output.Muted(".env file not found, using system env")
	}
	if err := NewRootCmd().Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

func (o *globalOptions) config() config.Config {
	cfg := config.Load()
	if o.driver != "" {
		cfg.StoreDriver = o.driver
	}
	if o.dsn != "" {
		cfg.DatabaseURL = o.dsn
	}
	if o.sqlitePath != "" {
		cfg.SQLitePath = o.sqlitePath
	}
	return cfg
}

// withServices opens the configured store, runs fn and closes the store.
func (o *globalOptions) withServices(fn func(ctx context.Context, svc bootstrap.Services) error) error {
	cfg := o.config()
	store, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer func(s kvstore.Store) {
		if err := s.Close(); err != nil {
			output.Warning("closing store: %v", err)
		}
	}(store)

	return fn(context.Background(), bootstrap.NewServices(cfg, store, nil))
}
