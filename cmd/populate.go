package cmd

import (
	"github.com/spf13/cobra"

	"github.com/motorlab/ephys-catalog/internal/ingest"
	"github.com/motorlab/ephys-catalog/internal/repositories"
	"github.com/motorlab/ephys-catalog/internal/storage"
)

var (
	behaviorTier string
	ephysTier    string
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Record behavior and ephys data for cataloged sessions",
}

var behaviorCmd = &cobra.Command{
	Use:   "behavior",
	Short: "Record behavior summary files for sessions without one",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		tier := behaviorTier
		if tier == "" {
			tier = cfg.Storage.DefaultTier
		}

		ingestor := ingest.NewBehaviorIngestor(
			repositories.NewCatalog(db),
			storage.FromConfig(cfg.Storage),
			tier,
			log,
		)
		return ingestor.PopulateAll(cmd.Context())
	},
}

var ephysCmd = &cobra.Command{
	Use:   "ephys",
	Short: "Record vendor recording files and channels for sessions without them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		tier := ephysTier
		if tier == "" {
			tier = cfg.Storage.DefaultTier
		}

		ingestor := ingest.NewEphysIngestor(
			repositories.NewCatalog(db),
			storage.FromConfig(cfg.Storage),
			tier,
			log,
		)
		return ingestor.PopulateAll(cmd.Context())
	},
}

func init() {
	behaviorCmd.Flags().StringVar(&behaviorTier, "tier", "", "storage tier to read from (defaults to the configured tier)")
	ephysCmd.Flags().StringVar(&ephysTier, "tier", "", "storage tier to read from (defaults to the configured tier)")

	populateCmd.AddCommand(behaviorCmd, ephysCmd)
	rootCmd.AddCommand(populateCmd)
}
