package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/motorlab/ephys-catalog/internal/models"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return SeedLookups(ctx, db)
	}, func(ctx context.Context, db *bun.DB) error {
		for _, stmt := range []string{
			"DELETE FROM tasks",
			"DELETE FROM software",
			"DELETE FROM hardware",
		} {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

// SeedLookups inserts the immutable hardware, software and task
// reference rows. Idempotent: rows already present are skipped.
func SeedLookups(ctx context.Context, db *bun.DB) error {
	hardware := []*models.Hardware{
		{Name: "Speedgoat", Category: models.CategoryTaskController},
		{Name: "Cerebus", Category: models.CategoryNeuralSignalProcessor},
		{Name: "CerePlex E", Category: models.CategoryAmplifier},
	}
	if _, err := db.NewInsert().
		Model(&hardware).
		On("CONFLICT (name) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("seed hardware: %w", err)
	}

	software := []*models.Software{
		{Name: "Simulink", Version: ""},
		{Name: "Psychtoolbox", Version: "3.0"},
		{Name: "Unity 3D", Version: ""},
	}
	if _, err := db.NewInsert().
		Model(&software).
		On("CONFLICT (name, version) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("seed software: %w", err)
	}

	// Re-read ids so task rows reference the seeded rows even when the
	// inserts above were skipped as duplicates.
	ids := make(map[string]int64)
	for _, h := range hardware {
		hw := new(models.Hardware)
		if err := db.NewSelect().Model(hw).Where("name = ?", h.Name).Scan(ctx); err != nil {
			return fmt.Errorf("fetch hardware %s: %w", h.Name, err)
		}
		ids["hw:"+h.Name] = hw.ID
	}
	for _, s := range software {
		sw := new(models.Software)
		if err := db.NewSelect().Model(sw).
			Where("name = ?", s.Name).
			Where("version = ?", s.Version).
			Scan(ctx); err != nil {
			return fmt.Errorf("fetch software %s: %w", s.Name, err)
		}
		ids["sw:"+s.Name] = sw.ID
	}

	tasks := []*models.Task{
		{
			Name:                 "pacman",
			Version:              "1.0",
			ControllerHardwareID: ids["hw:Speedgoat"],
			ControllerSoftwareID: ids["sw:Simulink"],
			GraphicsSoftwareID:   ids["sw:Psychtoolbox"],
			Description:          "1-dimensional force tracking",
		},
		{
			Name:                 "two target",
			Version:              "1.0",
			ControllerHardwareID: ids["hw:Speedgoat"],
			ControllerSoftwareID: ids["sw:Simulink"],
			GraphicsSoftwareID:   ids["sw:Unity 3D"],
		},
		{
			Name:                 "reaching",
			Version:              "1.0",
			ControllerHardwareID: ids["hw:Speedgoat"],
			ControllerSoftwareID: ids["sw:Simulink"],
			GraphicsSoftwareID:   ids["sw:Psychtoolbox"],
		},
	}
	if _, err := db.NewInsert().
		Model(&tasks).
		On("CONFLICT (name, version) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}

	return nil
}
