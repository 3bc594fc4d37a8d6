package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/motorlab/ephys-catalog/internal/ingest"
	"github.com/motorlab/ephys-catalog/internal/repositories"
	"github.com/motorlab/ephys-catalog/internal/storage"
)

var (
	sessionsMonkey      string
	sessionsRig         string
	sessionsTask        string
	sessionsTaskVersion string
	sessionsProcessor   string
	sessionsDates       []string
	sessionsTier        string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Scan the raw-data tree and record new sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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

		monkey, err := repositories.FindMonkey(ctx, db, sessionsMonkey)
		if err != nil {
			return err
		}
		rig, err := repositories.FindRig(ctx, db, sessionsRig)
		if err != nil {
			return err
		}
		task, err := repositories.FindTask(ctx, db, sessionsTask, sessionsTaskVersion)
		if err != nil {
			return err
		}
		processor, err := repositories.FindHardware(ctx, db, sessionsProcessor)
		if err != nil {
			return err
		}

		tier := sessionsTier
		if tier == "" {
			tier = cfg.Storage.DefaultTier
		}

		ingestor := ingest.NewSessionIngestor(
			repositories.NewCatalog(db),
			storage.FromConfig(cfg.Storage),
			tier,
			log,
		)
		count, err := ingestor.Run(ctx, ingest.Selection{
			Monkey:          monkey,
			Rig:             rig,
			Task:            task,
			SignalProcessor: processor,
		}, sessionsDates)
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %d new sessions\n", count)
		return nil
	},
}

func init() {
	sessionsCmd.Flags().StringVar(&sessionsMonkey, "monkey", "", "subject name")
	sessionsCmd.Flags().StringVar(&sessionsRig, "rig", "", "rig name")
	sessionsCmd.Flags().StringVar(&sessionsTask, "task", "", "task name")
	sessionsCmd.Flags().StringVar(&sessionsTaskVersion, "task-version", "", "task version (optional when the name is unique)")
	sessionsCmd.Flags().StringVar(&sessionsProcessor, "nsp", "Cerebus", "neural signal processor name")
	sessionsCmd.Flags().StringArrayVar(&sessionsDates, "date", nil, "restrict the scan to these dates (repeatable)")
	sessionsCmd.Flags().StringVar(&sessionsTier, "tier", "", "storage tier to scan (defaults to the configured tier)")

	_ = sessionsCmd.MarkFlagRequired("monkey")
	_ = sessionsCmd.MarkFlagRequired("rig")
	_ = sessionsCmd.MarkFlagRequired("task")

	rootCmd.AddCommand(sessionsCmd)
}
