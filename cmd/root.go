// Package cmd wires the catalog CLI: config loading, database setup
// and the ingestion subcommands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/motorlab/ephys-catalog/internal/config"
	"github.com/motorlab/ephys-catalog/internal/database"
)

var (
	cfgPath string
	dbDSN   string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:           "ephys-catalog",
	Short:         "Catalog raw acquisition data into a queryable database",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbDSN, "db", "", "override the catalog database DSN")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log SQL queries")
}

func loadConfig() (config.Config, error) {
	cfg := config.DefaultConfig()
	if cfgPath != "" {
		loaded, err := config.LoadFile(cfgPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if dbDSN != "" {
		cfg.Database.DSN = dbDSN
	}
	if debug {
		cfg.Database.Debug = true
	}
	return cfg, nil
}

func openDB(cfg config.Config) (*bun.DB, error) {
	return database.NewDB(cfg.Database.DSN, cfg.Database.Debug)
}

func newLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
