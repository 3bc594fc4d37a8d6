package migrations

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/motorlab/ephys-catalog/internal/models"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		modelsList := []interface{}{
			(*models.Monkey)(nil),
			(*models.Rig)(nil),
			(*models.User)(nil),
			(*models.Hardware)(nil),
			(*models.Software)(nil),
			(*models.Task)(nil),
			(*models.Session)(nil),
			(*models.SessionHardware)(nil),
			(*models.SessionUser)(nil),
			(*models.SessionNote)(nil),
			(*models.BehaviorRecording)(nil),
			(*models.EphysRecording)(nil),
			(*models.EphysChannel)(nil),
			(*models.BrainChannelGroup)(nil),
			(*models.BrainGroupChannel)(nil),
			(*models.EmgChannelGroup)(nil),
			(*models.EmgGroupChannel)(nil),
		}

		for _, model := range modelsList {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		modelsList := []interface{}{
			(*models.EmgGroupChannel)(nil),
			(*models.EmgChannelGroup)(nil),
			(*models.BrainGroupChannel)(nil),
			(*models.BrainChannelGroup)(nil),
			(*models.EphysChannel)(nil),
			(*models.EphysRecording)(nil),
			(*models.BehaviorRecording)(nil),
			(*models.SessionNote)(nil),
			(*models.SessionUser)(nil),
			(*models.SessionHardware)(nil),
			(*models.Session)(nil),
			(*models.Task)(nil),
			(*models.Software)(nil),
			(*models.Hardware)(nil),
			(*models.User)(nil),
			(*models.Rig)(nil),
			(*models.Monkey)(nil),
		}

		for _, model := range modelsList {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	})
}
